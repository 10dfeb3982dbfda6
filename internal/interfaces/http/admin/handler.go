package admin

import (
	"log"
	"time"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/fieldpulse/daily-pulse-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger    *log.Logger
	accounts  adminapp.AccountService
	reports   adminapp.ReportAdminRepository
	raEntries adminapp.RAEntryService
	location  *time.Location
}

// Config provides dependencies for Handler.
type Config struct {
	Logger    *log.Logger
	Accounts  adminapp.AccountService
	Reports   adminapp.ReportAdminRepository
	RAEntries adminapp.RAEntryService
	Location  *time.Location
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:    cfg.Logger,
		accounts:  cfg.Accounts,
		reports:   cfg.Reports,
		raEntries: cfg.RAEntries,
		location:  cfg.Location,
	}
}

// Register mounts admin routes onto router. 役割チェックは Server 側のミドルウェアで行う。
func (h *Handler) Register(r chi.Router) {
	r.Get("/accounts", h.accountListHandler())
	r.Get("/accounts/{id}", h.accountDetailHandler())
	r.Post("/accounts", h.accountCreateHandler())
	r.Patch("/accounts/{id}", h.accountUpdateHandler())
	r.Delete("/reports/{id}", h.reportDeleteHandler())
	r.Get("/ra-entries", h.raEntryListHandler())
	r.Post("/ra-entries", h.raEntryCreateHandler())
	r.Get("/ra-entries/targets", h.raEntryTargetsHandler())
}
