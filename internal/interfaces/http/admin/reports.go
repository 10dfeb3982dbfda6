package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fieldpulse/daily-pulse-services/api/internal/interfaces/http/common"
)

// reportDeleteHandler は管理者によるレポート削除 API。
// レポートは投稿者による削除を許さず、ここが唯一の削除経路。
func (h *Handler) reportDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		err := h.reports.Delete(ctx, id)
		if errors.Is(err, mongo.ErrNoDocuments) {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "レポートが見つかりません"})
			return
		}
		if err != nil {
			h.logger.Printf("レポートの削除に失敗: id=%s err=%v", id, err)
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "レポートIDの形式が不正です"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
