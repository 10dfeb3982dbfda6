package application

import (
	"context"
	"time"

	admindomain "github.com/fieldpulse/daily-pulse-services/api/internal/admin/domain"
)

// AccountRepository exposes admin operations on the staff roster.
type AccountRepository interface {
	Find(ctx context.Context, filter AccountFilter, paging Paging) ([]admindomain.Account, error)
	FindByID(ctx context.Context, id string) (*admindomain.Account, error)
	FindByRoles(ctx context.Context, roles []admindomain.Role) ([]admindomain.Account, error)
	Create(ctx context.Context, account *admindomain.Account) error
	Update(ctx context.Context, account *admindomain.Account) error
}

// ReportAdminRepository exposes admin-only operations on reports.
type ReportAdminRepository interface {
	Delete(ctx context.Context, id string) error
}

// RAEntryRepository handles RA 記帳 reads/writes.
type RAEntryRepository interface {
	Create(ctx context.Context, entry *admindomain.RAEntry) error
	Find(ctx context.Context, filter RAEntryFilter, paging Paging) ([]admindomain.RAEntry, error)
}

// AccountFilter expresses admin roster search criteria.
type AccountFilter struct {
	Role    admindomain.Role
	Region  string
	Keyword string
}

// RAEntryFilter expresses RA entry search criteria.
type RAEntryFilter struct {
	UserID string
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
	Sort  string
}

// AccountService describes roster management use-cases.
type AccountService interface {
	List(ctx context.Context, filter AccountFilter, paging Paging) ([]admindomain.Account, error)
	Detail(ctx context.Context, id string) (*admindomain.Account, error)
	Create(ctx context.Context, cmd UpsertAccountCommand) (*admindomain.Account, error)
	Update(ctx context.Context, id string, cmd UpsertAccountCommand) (*admindomain.Account, error)
}

// RAEntryService describes RA entry use-cases.
// 記帳対象者は ASM/RSM のいずれかである必要がある。
type RAEntryService interface {
	Record(ctx context.Context, cmd RecordRAEntryCommand) (*admindomain.RAEntry, error)
	List(ctx context.Context, filter RAEntryFilter, paging Paging) ([]admindomain.RAEntry, error)
	ListTargets(ctx context.Context) ([]admindomain.Account, error)
}

// UpsertAccountCommand contains inputs for roster CRUD.
type UpsertAccountCommand struct {
	Email   string
	Name    string
	Role    admindomain.Role
	Regions []string
}

// RecordRAEntryCommand contains inputs for one RA entry.
type RecordRAEntryCommand struct {
	Date         time.Time
	OOWConsumed  int
	OOWCollected int
	UserID       string
	SubmittedBy  string
}
