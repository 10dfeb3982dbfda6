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

// ReportRepository は日次レポート集約の Mongo 実装。
// Public の読み書きと Admin の削除を同じコレクションに対して提供する。
type ReportRepository struct {
	collection *mongo.Collection
}

// NewReportRepository は reports コレクションを束縛したリポジトリを生成する。
func NewReportRepository(db *mongo.Database, collection string) *ReportRepository {
	return &ReportRepository{collection: db.Collection(collection)}
}

// Create はレポートを追加し、採番した ID をドメインモデルへ反映する。
func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	doc := mapReportToDocument(report)
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	report.ID = doc.ID.Hex()
	return nil
}

// Find は地域・投稿者・日付範囲の複合条件を Mongo クエリへ落とし込む。
func (r *ReportRepository) Find(ctx context.Context, filter application.ReportFilter, paging application.Paging) ([]domain.Report, error) {
	mongoFilter := bson.M{}
	if filter.Region != "" {
		mongoFilter["submittedByRegion"] = filter.Region
	}
	if filter.SubmittedBy != "" {
		mongoFilter["submittedBy"] = filter.SubmittedBy
	}
	dateClause := bson.M{}
	if !filter.DateFrom.IsZero() {
		dateClause["$gte"] = filter.DateFrom
	}
	if !filter.DateTo.IsZero() {
		dateClause["$lte"] = filter.DateTo
	}
	if len(dateClause) > 0 {
		mongoFilter["date"] = dateClause
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
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := make([]domain.Report, 0)
	for cursor.Next(ctx) {
		var doc ReportDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reports = append(reports, mapReportDocument(doc))
	}
	return reports, cursor.Err()
}

// FindByID は 1 レポートを取得する。
func (r *ReportRepository) FindByID(ctx context.Context, id string) (*domain.Report, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	var doc ReportDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	report := mapReportDocument(doc)
	return &report, nil
}

// AppendRemark は所見を $push で追記し、追記後のレポートを返す。
func (r *ReportRepository) AppendRemark(ctx context.Context, id string, remark domain.Remark) (*domain.Report, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	update := bson.M{"$push": bson.M{"remarks": RemarkDocument{
		Text:   remark.Text,
		ByID:   remark.ByID,
		ByName: remark.ByName,
		Date:   remark.Date,
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc ReportDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	report := mapReportDocument(doc)
	return &report, nil
}

// Delete は管理者によるレポート削除。
func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func mapReportToDocument(report *domain.Report) ReportDocument {
	remarks := make([]RemarkDocument, 0, len(report.Remarks))
	for _, remark := range report.Remarks {
		remarks = append(remarks, RemarkDocument{
			Text:   remark.Text,
			ByID:   remark.ByID,
			ByName: remark.ByName,
			Date:   remark.Date,
		})
	}
	return ReportDocument{
		Date:    report.Date,
		ASCName: report.LocationName,
		Metrics: ReportMetricsDocument{
			OutstandingAmount:        report.Metrics.OutstandingAmount,
			OOWCollection:            report.Metrics.OOWCollection,
			GoodInventoryRealme:      report.Metrics.GoodInventoryRealme,
			DefectiveInventoryRealme: report.Metrics.DefectiveInventoryRealme,
			RealmeAgreementDispatch:  report.Metrics.RealmeAgreementDispatch,
			RealmeSDCollection:       report.Metrics.RealmeSDCollection,
			MultibrandSTNDispatched:  report.Metrics.MultibrandSTNDispatched,
			MultibrandPendingSTNs:    report.Metrics.MultibrandPendingSTNs,
		},
		SubmittedBy:       report.SubmittedBy,
		SubmittedByName:   report.SubmittedByName,
		SubmittedByRole:   report.SubmittedByRole,
		SubmittedByRegion: report.Region,
		Remarks:           remarks,
		CreatedAt:         report.CreatedAt,
	}
}

// mapReportDocument は Mongo ドキュメントをドメイン Report へ変換する。
func mapReportDocument(doc ReportDocument) domain.Report {
	remarks := make([]domain.Remark, 0, len(doc.Remarks))
	for _, remark := range doc.Remarks {
		remarks = append(remarks, domain.Remark{
			Text:   remark.Text,
			ByID:   remark.ByID,
			ByName: remark.ByName,
			Date:   remark.Date,
		})
	}
	return domain.Report{
		ID:           doc.ID.Hex(),
		Date:         doc.Date,
		LocationName: doc.ASCName,
		Metrics: domain.ReportMetrics{
			OutstandingAmount:        doc.Metrics.OutstandingAmount,
			OOWCollection:            doc.Metrics.OOWCollection,
			GoodInventoryRealme:      doc.Metrics.GoodInventoryRealme,
			DefectiveInventoryRealme: doc.Metrics.DefectiveInventoryRealme,
			RealmeAgreementDispatch:  doc.Metrics.RealmeAgreementDispatch,
			RealmeSDCollection:       doc.Metrics.RealmeSDCollection,
			MultibrandSTNDispatched:  doc.Metrics.MultibrandSTNDispatched,
			MultibrandPendingSTNs:    doc.Metrics.MultibrandPendingSTNs,
		},
		SubmittedBy:     doc.SubmittedBy,
		SubmittedByName: doc.SubmittedByName,
		SubmittedByRole: doc.SubmittedByRole,
		Region:          doc.SubmittedByRegion,
		Remarks:         remarks,
		CreatedAt:       doc.CreatedAt,
	}
}
