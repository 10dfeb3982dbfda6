package public

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fieldpulse/daily-pulse-services/api/internal/interfaces/http/common"
)

type registerTokenRequest struct {
	Token string `json:"token"`
}

// pushTokenRegisterHandler は端末のプッシュトークンを本人のアカウントへ登録する API。
// クライアントは起動時に現在のトークンを送り、サーバ側は集合として追加する。
func (h *Handler) pushTokenRegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		defer r.Body.Close()

		var req registerTokenRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
			})
			return
		}

		token := strings.TrimSpace(req.Token)
		if token == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "トークンを指定してください"})
			return
		}
		if len(token) > common.MaxPushTokenLength {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "トークンが長すぎます"})
			return
		}

		ctx, cancel := contextWithTimeout(r, 5*time.Second)
		defer cancel()

		if err := h.tokens.AddPushToken(ctx, user.ID, token); err != nil {
			h.logger.Printf("プッシュトークンの登録に失敗: userId=%s err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "トークンの登録に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
