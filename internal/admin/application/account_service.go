package application

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	admindomain "github.com/fieldpulse/daily-pulse-services/api/internal/admin/domain"
)

// NewAccountService は台帳 CRUD のユースケース実装を返す。
func NewAccountService(repo AccountRepository) AccountService {
	return &accountService{repo: repo}
}

type accountService struct {
	repo AccountRepository
}

func (s *accountService) List(ctx context.Context, filter AccountFilter, paging Paging) ([]admindomain.Account, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *accountService) Detail(ctx context.Context, id string) (*admindomain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *accountService) Create(ctx context.Context, cmd UpsertAccountCommand) (*admindomain.Account, error) {
	account, err := buildAccount(cmd)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	return account, s.repo.Create(ctx, account)
}

func (s *accountService) Update(ctx context.Context, id string, cmd UpsertAccountCommand) (*admindomain.Account, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := buildAccount(cmd)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.PushTokens = existing.PushTokens
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	return updated, s.repo.Update(ctx, updated)
}

// buildAccount は入力コマンドを検証してドメイン Account を組み立てる。
func buildAccount(cmd UpsertAccountCommand) (*admindomain.Account, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.New("氏名は必須です")
	}

	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		return nil, errors.New("メールアドレスは必須です")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.New("メールアドレスの形式が正しくありません")
	}

	if !cmd.Role.Valid() {
		return nil, errors.New("役割の指定が不正です")
	}

	regions := make([]string, 0, len(cmd.Regions))
	for _, region := range cmd.Regions {
		region = strings.TrimSpace(region)
		if region != "" {
			regions = append(regions, region)
		}
	}

	return &admindomain.Account{
		Email:   email,
		Name:    name,
		Role:    cmd.Role,
		Regions: regions,
	}, nil
}
