package application

import (
	"context"
	"time"

	"github.com/fieldpulse/daily-pulse-services/api/internal/notification"
	"github.com/fieldpulse/daily-pulse-services/api/internal/public/domain"
)

// ReportRepository handles report reads/writes.
// ReportRepository は Public コンテキストのレポート永続化ポート。
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	Find(ctx context.Context, filter ReportFilter, paging Paging) ([]domain.Report, error)
	FindByID(ctx context.Context, id string) (*domain.Report, error)
	AppendRemark(ctx context.Context, id string, remark domain.Remark) (*domain.Report, error)
}

// VisitPlanRepository handles PJP reads/writes.
type VisitPlanRepository interface {
	Create(ctx context.Context, plan *domain.VisitPlan) error
	Find(ctx context.Context, filter VisitPlanFilter, paging Paging) ([]domain.VisitPlan, error)
}

// InboxRepository はアプリ内通知の永続化ポート。
type InboxRepository interface {
	Create(ctx context.Context, n *domain.InboxNotification) error
	FindByUser(ctx context.Context, userID string, paging Paging) ([]domain.InboxNotification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

// PushTokenRegistry registers device tokens onto the caller's account.
type PushTokenRegistry interface {
	AddPushToken(ctx context.Context, accountID, token string) error
}

// ReportNotifier はレポート作成イベントを受け取る通知パイプラインへのポート。
type ReportNotifier interface {
	HandleReportCreated(ctx context.Context, ev notification.ReportEvent) notification.Summary
}

// ReportFilter expresses search criteria for reports.
type ReportFilter struct {
	Region      string
	SubmittedBy string
	DateFrom    time.Time
	DateTo      time.Time
}

// VisitPlanFilter expresses search criteria for visit plans.
type VisitPlanFilter struct {
	Region string
	UserID string
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
	Sort  string
}

// ReportQueryService describes report read use-cases.
type ReportQueryService interface {
	List(ctx context.Context, filter ReportFilter, paging Paging) ([]domain.Report, error)
	Detail(ctx context.Context, id string) (*domain.Report, error)
}

// ReportCommandService handles report writing use-cases.
// Submit は保存成功後に通知パイプラインを fire-and-forget で起動する。
type ReportCommandService interface {
	Submit(ctx context.Context, cmd SubmitReportCommand) (*domain.Report, error)
	AppendRemark(ctx context.Context, cmd AppendRemarkCommand) (*domain.Report, error)
}

// VisitPlanService describes PJP use-cases.
type VisitPlanService interface {
	Submit(ctx context.Context, cmd SubmitVisitPlanCommand) (*domain.VisitPlan, error)
	List(ctx context.Context, filter VisitPlanFilter, paging Paging) ([]domain.VisitPlan, error)
}

// InboxService describes in-app notification use-cases.
type InboxService interface {
	List(ctx context.Context, userID string, paging Paging) ([]domain.InboxNotification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

// SubmitReportCommand captures one daily submission.
type SubmitReportCommand struct {
	Date            time.Time
	LocationName    string
	Metrics         domain.ReportMetrics
	SubmittedBy     string
	SubmittedByName string
	SubmittedByRole string
	Region          string
}

// AppendRemarkCommand appends one attributed remark to a report.
type AppendRemarkCommand struct {
	ReportID string
	Text     string
	ByID     string
	ByName   string
}

// SubmitVisitPlanCommand captures one PJP submission.
type SubmitVisitPlanCommand struct {
	UserID   string
	UserName string
	Region   string
	PlanDate time.Time
	SCName   string
	Remarks  string
}
