package domain

import "time"

// InboxNotificationType はアプリ内通知の種別。
type InboxNotificationType string

const (
	// InboxTypeComment はレポートへの所見追記で生成される通知。
	InboxTypeComment InboxNotificationType = "comment"
	// InboxTypeReminder は運用リマインダー通知。
	InboxTypeReminder InboxNotificationType = "reminder"
)

// InboxNotification はダッシュボードのベルに表示するアプリ内通知 1 件分。
// プッシュ配信とは独立した永続データで、既読フラグのみ後から変更される。
type InboxNotification struct {
	ID        string
	UserID    string
	Message   string
	ReportID  string
	Type      InboxNotificationType
	IsRead    bool
	CreatedAt time.Time
}
