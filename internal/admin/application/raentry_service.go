package application

import (
	"context"
	"errors"
	"time"

	admindomain "github.com/fieldpulse/daily-pulse-services/api/internal/admin/domain"
)

// NewRAEntryService は RA 記帳ユースケースを返す。
// 記帳対象を検証するため台帳リポジトリも受け取る。
func NewRAEntryService(repo RAEntryRepository, accounts AccountRepository) RAEntryService {
	return &raEntryService{repo: repo, accounts: accounts}
}

type raEntryService struct {
	repo     RAEntryRepository
	accounts AccountRepository
}

func (s *raEntryService) Record(ctx context.Context, cmd RecordRAEntryCommand) (*admindomain.RAEntry, error) {
	if cmd.OOWConsumed < 0 || cmd.OOWCollected < 0 {
		return nil, errors.New("OOW の数値は0以上で入力してください")
	}
	if cmd.Date.IsZero() {
		return nil, errors.New("日付を指定してください")
	}

	target, err := s.accounts.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.New("記帳対象のアカウントが見つかりません")
	}
	if target.Role != admindomain.RoleASM && target.Role != admindomain.RoleRSM {
		return nil, errors.New("記帳対象は ASM または RSM に限ります")
	}

	entry := &admindomain.RAEntry{
		Date:         cmd.Date,
		OOWConsumed:  cmd.OOWConsumed,
		OOWCollected: cmd.OOWCollected,
		UserID:       target.ID,
		UserName:     target.Name,
		UserRole:     string(target.Role),
		SubmittedBy:  cmd.SubmittedBy,
		CreatedAt:    time.Now().UTC(),
	}
	return entry, s.repo.Create(ctx, entry)
}

func (s *raEntryService) List(ctx context.Context, filter RAEntryFilter, paging Paging) ([]admindomain.RAEntry, error) {
	return s.repo.Find(ctx, filter, paging)
}

// ListTargets は記帳対象候補 (ASM/RSM) を返す。
func (s *raEntryService) ListTargets(ctx context.Context) ([]admindomain.Account, error) {
	return s.accounts.FindByRoles(ctx, []admindomain.Role{admindomain.RoleASM, admindomain.RoleRSM})
}
