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
	"github.com/fieldpulse/daily-pulse-services/api/internal/public/domain"
)

type createReportRequest struct {
	Date    string               `json:"date"`
	ASCName string               `json:"ascName"`
	Metrics reportMetricsPayload `json:"metrics"`
}

type createReportResponse struct {
	Status string         `json:"status"`
	Report reportResponse `json:"report"`
}

func (req *createReportRequest) validate() error {
	req.ASCName = strings.TrimSpace(req.ASCName)
	if req.ASCName == "" {
		return errors.New("訪問先 (ASC) 名は必須です")
	}
	if strings.TrimSpace(req.Date) == "" {
		return errors.New("日付を指定してください")
	}
	m := req.Metrics
	if m.OutstandingAmount < 0 || m.OOWCollection < 0 {
		return errors.New("金額は0以上で入力してください")
	}
	if m.GoodInventoryRealme < 0 || m.DefectiveInventoryRealme < 0 ||
		m.RealmeAgreementDispatch < 0 || m.RealmeSDCollection < 0 ||
		m.MultibrandSTNDispatched < 0 || m.MultibrandPendingSTNs < 0 {
		return errors.New("在庫・台数は0以上で入力してください")
	}
	return nil
}

// reportCreateHandler はスタッフの日次レポート投稿 API。
// 保存に成功するとアプリケーション層がプッシュ通知パイプラインを起動する。
func (h *Handler) reportCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		defer r.Body.Close()

		var req createReportRequest
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

		date, err := parseReportDate(req.Date, h.location)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := contextWithTimeout(r, 5*time.Second)
		defer cancel()

		cmd := publicapp.SubmitReportCommand{
			Date:         date,
			LocationName: req.ASCName,
			Metrics: domain.ReportMetrics{
				OutstandingAmount:        req.Metrics.OutstandingAmount,
				OOWCollection:            req.Metrics.OOWCollection,
				GoodInventoryRealme:      req.Metrics.GoodInventoryRealme,
				DefectiveInventoryRealme: req.Metrics.DefectiveInventoryRealme,
				RealmeAgreementDispatch:  req.Metrics.RealmeAgreementDispatch,
				RealmeSDCollection:       req.Metrics.RealmeSDCollection,
				MultibrandSTNDispatched:  req.Metrics.MultibrandSTNDispatched,
				MultibrandPendingSTNs:    req.Metrics.MultibrandPendingSTNs,
			},
			SubmittedBy:     user.ID,
			SubmittedByName: user.Name,
			SubmittedByRole: user.Role,
			Region:          common.CanonicalRegion(user.PrimaryRegion()),
		}

		report, err := h.reportCommands.Submit(ctx, cmd)
		if err != nil {
			h.logger.Printf("レポートの保存に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "レポートの保存に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, createReportResponse{
			Status: "ok",
			Report: buildReportResponse(*report, h.location),
		})
	}
}

// parseReportDate は日付文字列 (YYYY-MM-DD) をサーバのタイムゾーンで解釈する。
func parseReportDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("日付の形式が不正です (YYYY-MM-DD): %w", err)
	}
	return t, nil
}
