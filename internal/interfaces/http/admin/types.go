package admin

import (
	"time"

	admindomain "github.com/fieldpulse/daily-pulse-services/api/internal/admin/domain"
)

type accountResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Regions    []string  `json:"regions,omitempty"`
	TokenCount int       `json:"tokenCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type upsertAccountRequest struct {
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Regions []string `json:"regions"`
}

type raEntryResponse struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	OOWConsumed  int       `json:"oowConsumed"`
	OOWCollected int       `json:"oowCollected"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName,omitempty"`
	UserRole     string    `json:"userRole,omitempty"`
	SubmittedBy  string    `json:"submittedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

type createRAEntryRequest struct {
	Date         string `json:"date"`
	OOWConsumed  int    `json:"oowConsumed"`
	OOWCollected int    `json:"oowCollected"`
	UserID       string `json:"userId"`
}

// accountDomainToResponse はドメイン Account を Admin UI 用レスポンスへ変換する。
// 登録済みトークンそのものは露出せず件数のみ返す。
func accountDomainToResponse(account admindomain.Account, loc *time.Location) accountResponse {
	return accountResponse{
		ID:         account.ID,
		Email:      account.Email,
		Name:       account.Name,
		Role:       string(account.Role),
		Regions:    account.Regions,
		TokenCount: len(account.PushTokens),
		CreatedAt:  account.CreatedAt.In(loc),
		UpdatedAt:  account.UpdatedAt.In(loc),
	}
}

func raEntryDomainToResponse(entry admindomain.RAEntry, loc *time.Location) raEntryResponse {
	return raEntryResponse{
		ID:           entry.ID,
		Date:         entry.Date.In(loc),
		OOWConsumed:  entry.OOWConsumed,
		OOWCollected: entry.OOWCollected,
		UserID:       entry.UserID,
		UserName:     entry.UserName,
		UserRole:     entry.UserRole,
		SubmittedBy:  entry.SubmittedBy,
		CreatedAt:    entry.CreatedAt.In(loc),
	}
}
