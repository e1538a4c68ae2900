package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

// DonationsList serves the public donation list for a campaign, newest
// first. Anonymous donors keep their email and real name off the wire.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	campaign, err := a.Campaigns.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	donations, err := a.Ledger.ListDonations(r.Context(), campaign.ID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": donationItems(campaign, donations)})
}

func donationItems(campaign *domain.Campaign, donations []domain.DonationEntry) []map[string]any {
	items := make([]map[string]any, 0, len(donations))
	for _, d := range donations {
		items = append(items, map[string]any{
			"id":         d.ID,
			"donor":      d.DisplayName(),
			"amount":     d.Amount.StringFixed(2),
			"currency":   campaign.Currency,
			"message":    d.Message,
			"country":    d.DonorCountry,
			"created_at": d.CreatedAt,
		})
	}
	return items
}
