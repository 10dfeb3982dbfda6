package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	admindomain "github.com/fieldpulse/daily-pulse-services/api/internal/admin/domain"
)

func TestAccountCreateValidation(t *testing.T) {
	svc := NewAccountService(&fakeAccountRepo{})

	tests := []struct {
		name    string
		cmd     UpsertAccountCommand
		wantErr bool
	}{
		{
			name: "valid",
			cmd:  UpsertAccountCommand{Email: "rsm@example.com", Name: "Kavita Rao", Role: admindomain.RoleRSM, Regions: []string{"North"}},
		},
		{
			name:    "missing name",
			cmd:     UpsertAccountCommand{Email: "rsm@example.com", Role: admindomain.RoleRSM},
			wantErr: true,
		},
		{
			name:    "missing email",
			cmd:     UpsertAccountCommand{Name: "Kavita Rao", Role: admindomain.RoleRSM},
			wantErr: true,
		},
		{
			name:    "malformed email",
			cmd:     UpsertAccountCommand{Email: "not-an-email", Name: "Kavita Rao", Role: admindomain.RoleRSM},
			wantErr: true,
		},
		{
			name:    "unknown role",
			cmd:     UpsertAccountCommand{Email: "rsm@example.com", Name: "Kavita Rao", Role: admindomain.Role("Boss")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.cmd)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAccountUpdatePreservesTokensAndCreatedAt(t *testing.T) {
	existing := &admindomain.Account{
		ID:         "acc-1",
		Email:      "old@example.com",
		Name:       "Old Name",
		Role:       admindomain.RoleUser,
		PushTokens: []string{"tok-1", "tok-2"},
	}
	repo := &fakeAccountRepo{byID: map[string]*admindomain.Account{"acc-1": existing}}
	svc := NewAccountService(repo)

	updated, err := svc.Update(context.Background(), "acc-1", UpsertAccountCommand{
		Email:   "new@example.com",
		Name:    "New Name",
		Role:    admindomain.RoleASM,
		Regions: []string{" South ", ""},
	})

	assert.NoError(t, err)
	assert.Equal(t, "acc-1", updated.ID)
	assert.Equal(t, []string{"tok-1", "tok-2"}, updated.PushTokens)
	assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
	assert.Equal(t, []string{"South"}, updated.Regions)
	assert.Len(t, repo.updated, 1)
}
