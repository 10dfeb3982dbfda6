package public

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/fieldpulse/daily-pulse-services/api/internal/public/application"
)

// Handler wires staff-facing HTTP endpoints to application services.
type Handler struct {
	logger         *log.Logger
	reportQueries  publicapp.ReportQueryService
	reportCommands publicapp.ReportCommandService
	plans          publicapp.VisitPlanService
	inbox          publicapp.InboxService
	tokens         publicapp.PushTokenRegistry
	location       *time.Location
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         *log.Logger
	ReportQueries  publicapp.ReportQueryService
	ReportCommands publicapp.ReportCommandService
	Plans          publicapp.VisitPlanService
	Inbox          publicapp.InboxService
	Tokens         publicapp.PushTokenRegistry
	Location       *time.Location
}

// NewHandler constructs the staff-facing HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:         cfg.Logger,
		reportQueries:  cfg.ReportQueries,
		reportCommands: cfg.ReportCommands,
		plans:          cfg.Plans,
		inbox:          cfg.Inbox,
		tokens:         cfg.Tokens,
		location:       cfg.Location,
	}
}

// Register mounts all staff routes onto the router. 全ルートが認証必須。
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/reports", h.reportListHandler())
		r.Get("/reports/{id}", h.reportDetailHandler())
		r.Post("/reports", h.reportCreateHandler())
		r.Post("/reports/{id}/remarks", h.remarkCreateHandler())
		r.Get("/plans", h.planListHandler())
		r.Post("/plans", h.planCreateHandler())
		r.Post("/push-tokens", h.pushTokenRegisterHandler())
		r.Get("/notifications", h.inboxListHandler())
		r.Post("/notifications/{id}/read", h.inboxMarkReadHandler())
		r.Get("/auth/verify", h.authVerifyHandler())
	})
}
