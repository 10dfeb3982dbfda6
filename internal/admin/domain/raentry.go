package domain

import "time"

// RAEntry は管理者が記帳する OOW の消費/回収エントリ。
// UserID には対象となる ASM/RSM のアカウントを紐付ける。
type RAEntry struct {
	ID           string
	Date         time.Time
	OOWConsumed  int
	OOWCollected int
	UserID       string
	UserName     string
	UserRole     string
	SubmittedBy  string
	CreatedAt    time.Time
}
