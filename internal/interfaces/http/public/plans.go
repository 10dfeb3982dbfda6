package public

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fieldpulse/daily-pulse-services/api/internal/interfaces/http/common"
	publicapp "github.com/fieldpulse/daily-pulse-services/api/internal/public/application"
)

type createPlanRequest struct {
	PlanDate string `json:"planDate"`
	SCName   string `json:"scName"`
	Remarks  string `json:"remarks"`
}

func (req *createPlanRequest) validate() error {
	req.SCName = strings.TrimSpace(req.SCName)
	if req.SCName == "" {
		return errors.New("訪問先 (SC) 名は必須です")
	}
	if strings.TrimSpace(req.PlanDate) == "" {
		return errors.New("計画日を指定してください")
	}
	return nil
}

// planCreateHandler は PJP (訪問計画) の投稿 API。
func (h *Handler) planCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		defer r.Body.Close()

		var req createPlanRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
			})
			return
		}

		if err := req.validate(); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		planDate, err := parseReportDate(req.PlanDate, h.location)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := contextWithTimeout(r, 5*time.Second)
		defer cancel()

		plan, err := h.plans.Submit(ctx, publicapp.SubmitVisitPlanCommand{
			UserID:   user.ID,
			UserName: user.Name,
			Region:   common.CanonicalRegion(user.PrimaryRegion()),
			PlanDate: planDate,
			SCName:   req.SCName,
			Remarks:  req.Remarks,
		})
		if err != nil {
			h.logger.Printf("訪問計画の保存に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "訪問計画の保存に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, map[string]any{
			"status": "ok",
			"plan":   buildPlanResponse(*plan, h.location),
		})
	}
}

// planListHandler は訪問計画の一覧 API。
func (h *Handler) planListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := contextWithTimeout(r, 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := publicapp.VisitPlanFilter{
			Region: common.CanonicalRegion(query.Get("region")),
			UserID: strings.TrimSpace(query.Get("userId")),
		}
		paging := publicapp.Paging{}
		paging.Page, _ = common.ParsePositiveInt(query.Get("page"), 1)
		paging.Limit, _ = common.ParsePositiveInt(query.Get("limit"), 20)

		plans, err := h.plans.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("訪問計画一覧の取得に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "訪問計画の取得に失敗しました"})
			return
		}

		responses := make([]planResponse, 0, len(plans))
		for _, plan := range plans {
			responses = append(responses, buildPlanResponse(plan, h.location))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"plans": responses})
	}
}
