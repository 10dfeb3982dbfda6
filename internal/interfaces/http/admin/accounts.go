package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/fieldpulse/daily-pulse-services/api/internal/admin/application"
	admindomain "github.com/fieldpulse/daily-pulse-services/api/internal/admin/domain"
	"github.com/fieldpulse/daily-pulse-services/api/internal/interfaces/http/common"
)

// accountListHandler は台帳の検索 API。
func (h *Handler) accountListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.AccountFilter{
			Role:    admindomain.Role(strings.TrimSpace(query.Get("role"))),
			Region:  common.CanonicalRegion(query.Get("region")),
			Keyword: strings.TrimSpace(query.Get("q")),
		}
		paging := adminapp.Paging{}
		paging.Page, _ = common.ParsePositiveInt(query.Get("page"), 1)
		paging.Limit, _ = common.ParsePositiveInt(query.Get("limit"), 50)

		accounts, err := h.accounts.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("台帳の検索に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "アカウントの取得に失敗しました"})
			return
		}

		responses := make([]accountResponse, 0, len(accounts))
		for _, account := range accounts {
			responses = append(responses, accountDomainToResponse(account, h.location))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"accounts": responses})
	}
}

// accountDetailHandler は 1 アカウントの詳細 API。
func (h *Handler) accountDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		account, err := h.accounts.Detail(ctx, id)
		if errors.Is(err, mongo.ErrNoDocuments) {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "アカウントが見つかりません"})
			return
		}
		if err != nil {
			h.logger.Printf("アカウント詳細の取得に失敗: id=%s err=%v", id, err)
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "アカウントIDの形式が不正です"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, accountDomainToResponse(*account, h.location))
	}
}

// accountCreateHandler は台帳への新規登録 API。
func (h *Handler) accountCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, ok := h.decodeUpsertAccount(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		account, err := h.accounts.Create(ctx, cmd)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, accountDomainToResponse(*account, h.location))
	}
}

// accountUpdateHandler は台帳更新 API。トークンは更新対象外。
func (h *Handler) accountUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, ok := h.decodeUpsertAccount(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		account, err := h.accounts.Update(ctx, id, cmd)
		if errors.Is(err, mongo.ErrNoDocuments) {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "アカウントが見つかりません"})
			return
		}
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, accountDomainToResponse(*account, h.location))
	}
}

// decodeUpsertAccount はリクエストボディを検証込みでコマンドへ変換する共通処理。
func (h *Handler) decodeUpsertAccount(w http.ResponseWriter, r *http.Request) (adminapp.UpsertAccountCommand, bool) {
	defer r.Body.Close()

	var req upsertAccountRequest
	decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
		})
		return adminapp.UpsertAccountCommand{}, false
	}

	regions, err := common.NormalizeRegionList(req.Regions)
	if err != nil {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return adminapp.UpsertAccountCommand{}, false
	}

	return adminapp.UpsertAccountCommand{
		Email:   req.Email,
		Name:    req.Name,
		Role:    admindomain.Role(strings.TrimSpace(req.Role)),
		Regions: regions,
	}, true
}
