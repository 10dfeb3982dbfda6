package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fieldpulse/daily-pulse-services/api/internal/public/application"
	"github.com/fieldpulse/daily-pulse-services/api/internal/public/domain"
)

// InboxRepository はアプリ内通知の Mongo 実装。
type InboxRepository struct {
	collection *mongo.Collection
}

// NewInboxRepository は notifications コレクションを束縛したリポジトリを生成する。
func NewInboxRepository(db *mongo.Database, collection string) *InboxRepository {
	return &InboxRepository{collection: db.Collection(collection)}
}

// Create はアプリ内通知を追加し、採番した ID をドメインモデルへ反映する。
func (r *InboxRepository) Create(ctx context.Context, n *domain.InboxNotification) error {
	doc := InboxNotificationDocument{
		ID:        primitive.NewObjectID(),
		UserID:    n.UserID,
		Message:   n.Message,
		ReportID:  n.ReportID,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	n.ID = doc.ID.Hex()
	return nil
}

// FindByUser は本人宛の通知を新しい順で返す。
func (r *InboxRepository) FindByUser(ctx context.Context, userID string, paging application.Paging) ([]domain.InboxNotification, error) {
	limit := paging.Limit
	if limit <= 0 {
		limit = 30
	}
	if limit > 100 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := make([]domain.InboxNotification, 0)
	for cursor.Next(ctx) {
		var doc InboxNotificationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		notifications = append(notifications, domain.InboxNotification{
			ID:        doc.ID.Hex(),
			UserID:    doc.UserID,
			Message:   doc.Message,
			ReportID:  doc.ReportID,
			Type:      domain.InboxNotificationType(doc.Type),
			IsRead:    doc.IsRead,
			CreatedAt: doc.CreatedAt,
		})
	}
	return notifications, cursor.Err()
}

// MarkRead は本人の通知 1 件を既読化する。他人の通知は userId 条件で弾く。
func (r *InboxRepository) MarkRead(ctx context.Context, id, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "userId": userID},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
