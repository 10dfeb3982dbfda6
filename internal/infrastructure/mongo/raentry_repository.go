package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fieldpulse/daily-pulse-services/api/internal/admin/application"
	admindomain "github.com/fieldpulse/daily-pulse-services/api/internal/admin/domain"
)

// RAEntryRepository は RA 記帳エントリの Mongo 実装。
type RAEntryRepository struct {
	collection *mongo.Collection
}

// NewRAEntryRepository は ra_entries コレクションを束縛したリポジトリを生成する。
func NewRAEntryRepository(db *mongo.Database, collection string) *RAEntryRepository {
	return &RAEntryRepository{collection: db.Collection(collection)}
}

// Create は記帳エントリを追加し、採番した ID をドメインモデルへ反映する。
func (r *RAEntryRepository) Create(ctx context.Context, entry *admindomain.RAEntry) error {
	doc := RAEntryDocument{
		ID:           primitive.NewObjectID(),
		Date:         entry.Date,
		OOWConsumed:  entry.OOWConsumed,
		OOWCollected: entry.OOWCollected,
		UserID:       entry.UserID,
		UserName:     entry.UserName,
		UserRole:     entry.UserRole,
		SubmittedBy:  entry.SubmittedBy,
		CreatedAt:    entry.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	entry.ID = doc.ID.Hex()
	return nil
}

// Find は記帳エントリを日付の降順で返す。
func (r *RAEntryRepository) Find(ctx context.Context, filter application.RAEntryFilter, paging application.Paging) ([]admindomain.RAEntry, error) {
	mongoFilter := bson.M{}
	if filter.UserID != "" {
		mongoFilter["userId"] = filter.UserID
	}

	limit := paging.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]admindomain.RAEntry, 0)
	for cursor.Next(ctx) {
		var doc RAEntryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		entries = append(entries, admindomain.RAEntry{
			ID:           doc.ID.Hex(),
			Date:         doc.Date,
			OOWConsumed:  doc.OOWConsumed,
			OOWCollected: doc.OOWCollected,
			UserID:       doc.UserID,
			UserName:     doc.UserName,
			UserRole:     doc.UserRole,
			SubmittedBy:  doc.SubmittedBy,
			CreatedAt:    doc.CreatedAt,
		})
	}
	return entries, cursor.Err()
}
