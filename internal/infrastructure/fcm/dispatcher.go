// Package fcm は Firebase Cloud Messaging で通知パイプラインの Dispatcher ポートを実装する。
package fcm

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/fieldpulse/daily-pulse-services/api/internal/notification"
)

// Dispatcher wraps a messaging client behind the pipeline's Dispatcher port.
type Dispatcher struct {
	client *messaging.Client
}

// NewApp は認証情報ファイルから Firebase Admin SDK アプリを初期化する。
func NewApp(ctx context.Context, projectID, credentialsFile string) (*firebase.App, error) {
	if credentialsFile == "" {
		return nil, errors.New("firebase の認証情報ファイルが設定されていません")
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase アプリの初期化に失敗: %w", err)
	}
	return app, nil
}

// NewDispatcher obtains a messaging client from an initialised Firebase app.
func NewDispatcher(ctx context.Context, app *firebase.App) (*Dispatcher, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("messaging クライアントの取得に失敗: %w", err)
	}
	return &Dispatcher{client: client}, nil
}

// SendMulticast は全トークンへ 1 回のバッチ呼び出しで配信する。
// 返却する結果列は入力トークン列と同じ並びで、呼び出し側が index からトークンを逆引きできる。
func (d *Dispatcher) SendMulticast(ctx context.Context, payload notification.Payload, tokens []string) ([]notification.DeliveryResult, error) {
	title, body := payload.Notification()
	message := &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:   payload.Data(),
		Tokens: tokens,
	}

	response, err := d.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, err
	}

	results := make([]notification.DeliveryResult, 0, len(response.Responses))
	for _, r := range response.Responses {
		results = append(results, notification.DeliveryResult{
			OK:  r.Success,
			Err: r.Error,
		})
	}
	return results, nil
}
