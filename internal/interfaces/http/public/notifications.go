package public

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fieldpulse/daily-pulse-services/api/internal/interfaces/http/common"
	publicapp "github.com/fieldpulse/daily-pulse-services/api/internal/public/application"
)

// inboxListHandler は本人宛のアプリ内通知一覧 API。
func (h *Handler) inboxListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		ctx, cancel := contextWithTimeout(r, 5*time.Second)
		defer cancel()

		paging := publicapp.Paging{}
		paging.Limit, _ = common.ParsePositiveInt(r.URL.Query().Get("limit"), 30)

		notifications, err := h.inbox.List(ctx, user.ID, paging)
		if err != nil {
			h.logger.Printf("アプリ内通知の取得に失敗: userId=%s err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "通知の取得に失敗しました"})
			return
		}

		responses := make([]inboxResponse, 0, len(notifications))
		for _, n := range notifications {
			responses = append(responses, buildInboxResponse(n, h.location))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"notifications": responses})
	}
}

// inboxMarkReadHandler は通知 1 件の既読化 API。
func (h *Handler) inboxMarkReadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		ctx, cancel := contextWithTimeout(r, 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		err := h.inbox.MarkRead(ctx, id, user.ID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "通知が見つかりません"})
			return
		}
		if err != nil {
			h.logger.Printf("通知の既読化に失敗: id=%s err=%v", id, err)
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "通知IDの形式が不正です"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
