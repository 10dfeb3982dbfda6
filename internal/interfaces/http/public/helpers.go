package public

import (
	"context"
	"net/http"
	"time"
)

// contextWithTimeout はリクエストコンテキストへハンドラ共通のタイムアウトを載せる。
func contextWithTimeout(r *http.Request, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), d)
}
