package notification

import "context"

// ReportEvent は新規レポート作成イベントのうち通知に必要な項目だけを切り出した値。
// HTTP ハンドラやバッチなど呼び出し元の形に依存しないよう、このパッケージ専用の入力型にしている。
type ReportEvent struct {
	ReportID        string
	SubmittedBy     string
	SubmittedByName string
	Region          string
	LocationName    string
}

// Account is the directory's view of a notifiable staff member.
type Account struct {
	ID         string
	Name       string
	PushTokens []string
}

// Directory はユーザー台帳への読み取りポート。
// 2 つのクエリは独立しており、片方の失敗がもう片方へ波及しない前提で呼び出される。
type Directory interface {
	FindAdmins(ctx context.Context) ([]Account, error)
	FindRegionalManagers(ctx context.Context, region string) ([]Account, error)
}

// Dispatcher delivers one payload to many device tokens in a single batched call.
// The returned results must be ordered exactly like the input token list.
type Dispatcher interface {
	SendMulticast(ctx context.Context, payload Payload, tokens []string) ([]DeliveryResult, error)
}

// DeliveryResult is the per-token outcome of a multicast send.
type DeliveryResult struct {
	OK  bool
	Err error
}

// Summary counts per-token outcomes for one pipeline cycle.
type Summary struct {
	Success int
	Failure int
}
