package application

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/fieldpulse/daily-pulse-services/api/internal/notification"
	"github.com/fieldpulse/daily-pulse-services/api/internal/public/domain"
)

// NewReportQueryService は読み取り専用のレポート参照サービスを返す。
func NewReportQueryService(repo ReportRepository) ReportQueryService {
	return &reportQueryService{repo: repo}
}

type reportQueryService struct {
	repo ReportRepository
}

func (s *reportQueryService) List(ctx context.Context, filter ReportFilter, paging Paging) ([]domain.Report, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *reportQueryService) Detail(ctx context.Context, id string) (*domain.Report, error) {
	return s.repo.FindByID(ctx, id)
}

// NewReportCommandService はレポート書き込みユースケースを組み立てる。
// notifier が nil の場合は通知を行わない (seed 等のオフライン用途)。
func NewReportCommandService(logger *log.Logger, repo ReportRepository, inbox InboxRepository, notifier ReportNotifier) ReportCommandService {
	return &reportCommandService{
		logger:   logger,
		repo:     repo,
		inbox:    inbox,
		notifier: notifier,
	}
}

type reportCommandService struct {
	logger   *log.Logger
	repo     ReportRepository
	inbox    InboxRepository
	notifier ReportNotifier
}

// Submit はレポートを保存し、成功した場合のみ通知パイプラインを起動する。
// 通知はバックグラウンド処理であり、投稿レスポンスの成否には影響させない。
func (s *reportCommandService) Submit(ctx context.Context, cmd SubmitReportCommand) (*domain.Report, error) {
	now := time.Now().UTC()
	report := &domain.Report{
		Date:            cmd.Date,
		LocationName:    strings.TrimSpace(cmd.LocationName),
		Metrics:         cmd.Metrics,
		SubmittedBy:     cmd.SubmittedBy,
		SubmittedByName: strings.TrimSpace(cmd.SubmittedByName),
		SubmittedByRole: cmd.SubmittedByRole,
		Region:          strings.TrimSpace(cmd.Region),
		CreatedAt:       now,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		ev := notification.ReportEvent{
			ReportID:        report.ID,
			SubmittedBy:     report.SubmittedBy,
			SubmittedByName: report.SubmittedByName,
			Region:          report.Region,
			LocationName:    report.LocationName,
		}
		go s.notifier.HandleReportCreated(context.Background(), ev)
	}

	return report, nil
}

// AppendRemark は所見を追記し、投稿者と過去の所見者 (本人を除く) へアプリ内通知を作成する。
// 通知作成は best-effort で、失敗してもレポート更新自体は成功として返す。
func (s *reportCommandService) AppendRemark(ctx context.Context, cmd AppendRemarkCommand) (*domain.Report, error) {
	remark := domain.Remark{
		Text:   strings.TrimSpace(cmd.Text),
		ByID:   cmd.ByID,
		ByName: strings.TrimSpace(cmd.ByName),
		Date:   time.Now().UTC(),
	}

	report, err := s.repo.AppendRemark(ctx, cmd.ReportID, remark)
	if err != nil {
		return nil, err
	}

	s.notifyRemarkParticipants(ctx, report, remark)
	return report, nil
}

// notifyRemarkParticipants は所見スレッドの参加者集合を組み立ててアプリ内通知を配る。
func (s *reportCommandService) notifyRemarkParticipants(ctx context.Context, report *domain.Report, remark domain.Remark) {
	if s.inbox == nil || report == nil {
		return
	}

	participants := make(map[string]struct{})
	participants[report.SubmittedBy] = struct{}{}
	for _, r := range report.Remarks {
		participants[r.ByID] = struct{}{}
	}
	delete(participants, remark.ByID)

	message := remark.ByName + " commented on the report for \"" + report.LocationName + "\""
	for id := range participants {
		if id == "" {
			continue
		}
		n := &domain.InboxNotification{
			UserID:    id,
			Message:   message,
			ReportID:  report.ID,
			Type:      domain.InboxTypeComment,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.inbox.Create(ctx, n); err != nil && s.logger != nil {
			s.logger.Printf("アプリ内通知の作成に失敗: userId=%s err=%v", id, err)
		}
	}
}
