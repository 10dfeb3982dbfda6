package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	admindomain "github.com/fieldpulse/daily-pulse-services/api/internal/admin/domain"
)

type fakeAccountRepo struct {
	byID        map[string]*admindomain.Account
	byRoles     []admindomain.Account
	byRolesArgs []admindomain.Role

	created []*admindomain.Account
	updated []*admindomain.Account
}

func (r *fakeAccountRepo) Find(context.Context, AccountFilter, Paging) ([]admindomain.Account, error) {
	return nil, nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*admindomain.Account, error) {
	account, ok := r.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return account, nil
}

func (r *fakeAccountRepo) FindByRoles(_ context.Context, roles []admindomain.Role) ([]admindomain.Account, error) {
	r.byRolesArgs = roles
	return r.byRoles, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *admindomain.Account) error {
	account.ID = "acc-new"
	r.created = append(r.created, account)
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *admindomain.Account) error {
	r.updated = append(r.updated, account)
	return nil
}

type fakeRAEntryRepo struct {
	created []*admindomain.RAEntry
}

func (r *fakeRAEntryRepo) Create(_ context.Context, entry *admindomain.RAEntry) error {
	entry.ID = "ra-new"
	r.created = append(r.created, entry)
	return nil
}

func (r *fakeRAEntryRepo) Find(context.Context, RAEntryFilter, Paging) ([]admindomain.RAEntry, error) {
	return nil, nil
}

func TestRecordSnapshotsTargetIdentity(t *testing.T) {
	accounts := &fakeAccountRepo{
		byID: map[string]*admindomain.Account{
			"rsm-1": {ID: "rsm-1", Name: "Kavita Rao", Role: admindomain.RoleRSM},
		},
	}
	entries := &fakeRAEntryRepo{}
	svc := NewRAEntryService(entries, accounts)

	entry, err := svc.Record(context.Background(), RecordRAEntryCommand{
		Date:         time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		OOWConsumed:  5,
		OOWCollected: 3,
		UserID:       "rsm-1",
		SubmittedBy:  "admin-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ra-new", entry.ID)
	assert.Equal(t, "Kavita Rao", entry.UserName)
	assert.Equal(t, "RSM", entry.UserRole)
	assert.Equal(t, "admin-1", entry.SubmittedBy)
	assert.Len(t, entries.created, 1)
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	accounts := &fakeAccountRepo{
		byID: map[string]*admindomain.Account{
			"user-1": {ID: "user-1", Name: "Amit", Role: admindomain.RoleUser},
			"rsm-1":  {ID: "rsm-1", Name: "Kavita", Role: admindomain.RoleRSM},
		},
	}
	svc := NewRAEntryService(&fakeRAEntryRepo{}, accounts)
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cmd  RecordRAEntryCommand
	}{
		{name: "negative oow consumed", cmd: RecordRAEntryCommand{Date: date, OOWConsumed: -1, UserID: "rsm-1"}},
		{name: "negative oow collected", cmd: RecordRAEntryCommand{Date: date, OOWCollected: -1, UserID: "rsm-1"}},
		{name: "zero date", cmd: RecordRAEntryCommand{UserID: "rsm-1"}},
		{name: "unknown target", cmd: RecordRAEntryCommand{Date: date, UserID: "ghost"}},
		{name: "target is plain user", cmd: RecordRAEntryCommand{Date: date, UserID: "user-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), tt.cmd)
			assert.Error(t, err)
		})
	}
}

func TestListTargetsQueriesFieldManagerRoles(t *testing.T) {
	accounts := &fakeAccountRepo{
		byRoles: []admindomain.Account{{ID: "asm-1", Role: admindomain.RoleASM}},
	}
	svc := NewRAEntryService(&fakeRAEntryRepo{}, accounts)

	targets, err := svc.ListTargets(context.Background())

	assert.NoError(t, err)
	assert.Len(t, targets, 1)
	assert.Equal(t, []admindomain.Role{admindomain.RoleASM, admindomain.RoleRSM}, accounts.byRolesArgs)
}
