package application

import (
	"context"
	"strings"
	"time"

	"github.com/fieldpulse/daily-pulse-services/api/internal/public/domain"
)

// NewVisitPlanService は PJP の投稿・一覧ユースケースを返す。
func NewVisitPlanService(repo VisitPlanRepository) VisitPlanService {
	return &visitPlanService{repo: repo}
}

type visitPlanService struct {
	repo VisitPlanRepository
}

func (s *visitPlanService) Submit(ctx context.Context, cmd SubmitVisitPlanCommand) (*domain.VisitPlan, error) {
	plan := &domain.VisitPlan{
		UserID:    cmd.UserID,
		UserName:  strings.TrimSpace(cmd.UserName),
		Region:    strings.TrimSpace(cmd.Region),
		PlanDate:  cmd.PlanDate,
		SCName:    strings.TrimSpace(cmd.SCName),
		Remarks:   strings.TrimSpace(cmd.Remarks),
		CreatedAt: time.Now().UTC(),
	}
	return plan, s.repo.Create(ctx, plan)
}

func (s *visitPlanService) List(ctx context.Context, filter VisitPlanFilter, paging Paging) ([]domain.VisitPlan, error) {
	return s.repo.Find(ctx, filter, paging)
}

// NewInboxService はアプリ内通知の参照・既読ユースケースを返す。
func NewInboxService(repo InboxRepository) InboxService {
	return &inboxService{repo: repo}
}

type inboxService struct {
	repo InboxRepository
}

func (s *inboxService) List(ctx context.Context, userID string, paging Paging) ([]domain.InboxNotification, error) {
	return s.repo.FindByUser(ctx, userID, paging)
}

func (s *inboxService) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}
