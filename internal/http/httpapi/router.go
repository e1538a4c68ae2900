package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

func NewRouter(app *handlers.App, logger infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer, middleware.Logger(logger))

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/campaigns", func(r chi.Router) {
		r.Post("/", app.CampaignsCreate)
		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/stats", app.CampaignStats)
			r.Get("/report", app.CampaignReport)
			r.Get("/donations", app.DonationsList)
			r.Get("/expenses", app.ExpensesList)
			r.Post("/expenses", app.ExpensesCreate)
			r.Post("/donor-check", app.DonorCheck)
		})
	})

	r.Post("/v1/payments/capture", app.PaymentsCapture)
	r.Post("/v1/notifications/dispatch", app.NotificationsDispatch)

	return r
}
