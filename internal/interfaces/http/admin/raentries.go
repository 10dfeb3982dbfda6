package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	adminapp "github.com/fieldpulse/daily-pulse-services/api/internal/admin/application"
	"github.com/fieldpulse/daily-pulse-services/api/internal/interfaces/http/common"
)

// raEntryListHandler は RA 記帳エントリの一覧 API。
func (h *Handler) raEntryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		filter := adminapp.RAEntryFilter{
			UserID: strings.TrimSpace(r.URL.Query().Get("userId")),
		}
		paging := adminapp.Paging{}
		paging.Limit, _ = common.ParsePositiveInt(r.URL.Query().Get("limit"), 50)

		entries, err := h.raEntries.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("RA 記帳一覧の取得に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "記帳エントリの取得に失敗しました"})
			return
		}

		responses := make([]raEntryResponse, 0, len(entries))
		for _, entry := range entries {
			responses = append(responses, raEntryDomainToResponse(entry, h.location))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"entries": responses})
	}
}

// raEntryCreateHandler は RA 記帳エントリの登録 API。
func (h *Handler) raEntryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		defer r.Body.Close()

		var req createRAEntryRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
			})
			return
		}

		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(req.Date), h.location)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "日付の形式が不正です (YYYY-MM-DD)"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entry, err := h.raEntries.Record(ctx, adminapp.RecordRAEntryCommand{
			Date:         date,
			OOWConsumed:  req.OOWConsumed,
			OOWCollected: req.OOWCollected,
			UserID:       strings.TrimSpace(req.UserID),
			SubmittedBy:  user.ID,
		})
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, raEntryDomainToResponse(*entry, h.location))
	}
}

// raEntryTargetsHandler は記帳対象候補 (ASM/RSM) の一覧 API。
func (h *Handler) raEntryTargetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		targets, err := h.raEntries.ListTargets(ctx)
		if err != nil {
			h.logger.Printf("記帳対象候補の取得に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "対象候補の取得に失敗しました"})
			return
		}

		responses := make([]accountResponse, 0, len(targets))
		for _, account := range targets {
			responses = append(responses, accountDomainToResponse(account, h.location))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"accounts": responses})
	}
}
