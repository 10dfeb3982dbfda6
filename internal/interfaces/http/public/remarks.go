package public

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fieldpulse/daily-pulse-services/api/internal/interfaces/http/common"
	publicapp "github.com/fieldpulse/daily-pulse-services/api/internal/public/application"
)

type createRemarkRequest struct {
	Text string `json:"text"`
}

// remarkCreateHandler はレポートへの所見追記 API。
// 追記に成功するとスレッド参加者へアプリ内通知が配られる。
func (h *Handler) remarkCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		defer r.Body.Close()

		var req createRemarkRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
			})
			return
		}

		text := strings.TrimSpace(req.Text)
		if text == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "所見を入力してください"})
			return
		}
		if utf8.RuneCountInString(text) > common.MaxRemarkRunes {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("所見は%d文字以内で入力してください", common.MaxRemarkRunes),
			})
			return
		}

		ctx, cancel := contextWithTimeout(r, 5*time.Second)
		defer cancel()

		report, err := h.reportCommands.AppendRemark(ctx, publicapp.AppendRemarkCommand{
			ReportID: strings.TrimSpace(chi.URLParam(r, "id")),
			Text:     text,
			ByID:     user.ID,
			ByName:   user.Name,
		})
		if errors.Is(err, mongo.ErrNoDocuments) {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "レポートが見つかりません"})
			return
		}
		if err != nil {
			h.logger.Printf("所見の追記に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "所見の追記に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildReportResponse(*report, h.location))
	}
}
