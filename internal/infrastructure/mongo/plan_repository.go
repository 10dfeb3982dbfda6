package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fieldpulse/daily-pulse-services/api/internal/public/application"
	"github.com/fieldpulse/daily-pulse-services/api/internal/public/domain"
)

// VisitPlanRepository は PJP 集約の Mongo 実装。
type VisitPlanRepository struct {
	collection *mongo.Collection
}

// NewVisitPlanRepository は pjp_plans コレクションを束縛したリポジトリを生成する。
func NewVisitPlanRepository(db *mongo.Database, collection string) *VisitPlanRepository {
	return &VisitPlanRepository{collection: db.Collection(collection)}
}

// Create は訪問計画を追加し、採番した ID をドメインモデルへ反映する。
func (r *VisitPlanRepository) Create(ctx context.Context, plan *domain.VisitPlan) error {
	doc := VisitPlanDocument{
		ID:        primitive.NewObjectID(),
		UserID:    plan.UserID,
		UserName:  plan.UserName,
		Region:    plan.Region,
		PlanDate:  plan.PlanDate,
		SCName:    plan.SCName,
		Remarks:   plan.Remarks,
		CreatedAt: plan.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	plan.ID = doc.ID.Hex()
	return nil
}

// Find は地域・ユーザーで絞り込んだ訪問計画を計画日の降順で返す。
func (r *VisitPlanRepository) Find(ctx context.Context, filter application.VisitPlanFilter, paging application.Paging) ([]domain.VisitPlan, error) {
	mongoFilter := bson.M{}
	if filter.Region != "" {
		mongoFilter["userRegion"] = filter.Region
	}
	if filter.UserID != "" {
		mongoFilter["userId"] = filter.UserID
	}

	limit := paging.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	skip := 0
	if paging.Page > 1 {
		skip = (paging.Page - 1) * limit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "planDate", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := make([]domain.VisitPlan, 0)
	for cursor.Next(ctx) {
		var doc VisitPlanDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		plans = append(plans, domain.VisitPlan{
			ID:        doc.ID.Hex(),
			UserID:    doc.UserID,
			UserName:  doc.UserName,
			Region:    doc.Region,
			PlanDate:  doc.PlanDate,
			SCName:    doc.SCName,
			Remarks:   doc.Remarks,
			CreatedAt: doc.CreatedAt,
		})
	}
	return plans, cursor.Err()
}
