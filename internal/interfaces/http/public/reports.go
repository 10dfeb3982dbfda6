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

// reportListHandler はレポート一覧 API。閲覧範囲の制御はクライアント側の
// ビュー設定に委ねており、ここでは検索条件をそのままクエリへ渡す。
func (h *Handler) reportListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := contextWithTimeout(r, 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := publicapp.ReportFilter{
			Region:      common.CanonicalRegion(query.Get("region")),
			SubmittedBy: strings.TrimSpace(query.Get("submittedBy")),
		}
		if from := strings.TrimSpace(query.Get("from")); from != "" {
			if t, err := time.ParseInLocation("2006-01-02", from, h.location); err == nil {
				filter.DateFrom = t
			}
		}
		if to := strings.TrimSpace(query.Get("to")); to != "" {
			if t, err := time.ParseInLocation("2006-01-02", to, h.location); err == nil {
				filter.DateTo = t
			}
		}

		paging := publicapp.Paging{}
		paging.Page, _ = common.ParsePositiveInt(query.Get("page"), 1)
		paging.Limit, _ = common.ParsePositiveInt(query.Get("limit"), 20)

		reports, err := h.reportQueries.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("レポート一覧の取得に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "レポートの取得に失敗しました"})
			return
		}

		responses := make([]reportResponse, 0, len(reports))
		for _, report := range reports {
			responses = append(responses, buildReportResponse(report, h.location))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"reports": responses,
			"page":    paging.Page,
		})
	}
}

// reportDetailHandler はレポート詳細 API。
func (h *Handler) reportDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := contextWithTimeout(r, 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		report, err := h.reportQueries.Detail(ctx, id)
		if errors.Is(err, mongo.ErrNoDocuments) {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "レポートが見つかりません"})
			return
		}
		if err != nil {
			h.logger.Printf("レポート詳細の取得に失敗: id=%s err=%v", id, err)
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "レポートIDの形式が不正です"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildReportResponse(*report, h.location))
	}
}
