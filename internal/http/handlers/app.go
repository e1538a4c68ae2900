package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"server/internal/capture"
	"server/internal/comments"
	"server/internal/domain"
	"server/internal/donors"
	"server/internal/geo"
	"server/internal/infra"
	"server/internal/ledger"
	"server/internal/notify"
	"server/internal/stats"
)

// CampaignSource resolves campaigns for the query surface.
type CampaignSource interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetBySlug(ctx context.Context, slug string) (*domain.Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
}

// JobEnqueuer queues a notification batch for background dispatch.
type JobEnqueuer interface {
	Enqueue(ctx context.Context, campaignID uuid.UUID, excludeEmail string, payload notify.JobPayload) (uuid.UUID, error)
}

// App is the handler container; collaborators are injected so tests can swap
// in memory stores and fake mailers.
type App struct {
	Logger     infra.Logger
	Campaigns  CampaignSource
	Ledger     ledger.Store
	Stats      *stats.Aggregator
	Donors     *donors.Registry
	Gate       *comments.Gate
	Capture    *capture.Adapter
	Dispatcher *notify.Dispatcher
	Queue      JobEnqueuer
	Countries  geo.CountryResolver
}

// NewApp wires the default service graph over one ledger store.
func NewApp(logger infra.Logger, campaignRepo CampaignSource, store ledger.Store, dispatcher *notify.Dispatcher, queue JobEnqueuer, countries geo.CountryResolver) *App {
	registry := donors.NewRegistry(store)
	return &App{
		Logger:     logger,
		Campaigns:  campaignRepo,
		Ledger:     store,
		Stats:      stats.NewAggregator(store),
		Donors:     registry,
		Gate:       comments.NewGate(registry),
		Capture:    capture.NewAdapter(campaignRepo, store, logger),
		Dispatcher: dispatcher,
		Queue:      queue,
		Countries:  countries,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// domainError maps the error taxonomy onto HTTP statuses. Duplicate captures
// are a conflict payload, not a failure: callers treat them as already
// processed.
func (a *App) domainError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		a.error(w, http.StatusBadRequest, "bad_request", ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "campaign not found")
	case errors.Is(err, domain.ErrNotDonationDrive):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrDuplicateTransaction):
		a.json(w, http.StatusConflict, map[string]string{"status": "already_processed"})
	case errors.Is(err, domain.ErrMailerNotConfigured):
		a.error(w, http.StatusServiceUnavailable, "mailer_not_configured", "notification sending is not configured")
	default:
		a.Logger.Error().Err(err).Msg("internal error")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
