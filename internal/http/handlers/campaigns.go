package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"server/internal/domain"
	"server/internal/stats"
)

type campaignCreateRequest struct {
	Slug       string          `json:"slug"`
	Title      string          `json:"title"`
	Currency   string          `json:"currency"`
	Goal       decimal.Decimal `json:"goal"`
	DonorGated bool            `json:"donor_gated"`
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	campaign := &domain.Campaign{
		Slug:       req.Slug,
		Title:      req.Title,
		Currency:   req.Currency,
		Goal:       req.Goal,
		DonorGated: req.DonorGated,
		IsDrive:    true,
	}
	if err := a.Campaigns.Create(r.Context(), campaign); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"id":   campaign.ID,
		"slug": campaign.Slug,
	})
}

func (a *App) CampaignStats(w http.ResponseWriter, r *http.Request) {
	campaign, err := a.Campaigns.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	computed, err := a.Stats.Compute(r.Context(), campaign)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, statsPayload(campaign, computed))
}

// CampaignReport is the transparency report: derived stats plus the full
// newest-first donation and expense lists in one response.
func (a *App) CampaignReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaign, err := a.Campaigns.GetBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	computed, err := a.Stats.Compute(ctx, campaign)
	if err != nil {
		a.domainError(w, err)
		return
	}
	donations, err := a.Ledger.ListDonations(ctx, campaign.ID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	expenses, err := a.Ledger.ListExpenses(ctx, campaign.ID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"stats":     statsPayload(campaign, computed),
		"donations": donationItems(campaign, donations),
		"expenses":  expenseItems(expenses),
	})
}

func statsPayload(campaign *domain.Campaign, s domain.CampaignStats) map[string]any {
	return map[string]any{
		"slug":              campaign.Slug,
		"title":             campaign.Title,
		"currency":          campaign.Currency,
		"goal":              campaign.Goal.StringFixed(2),
		"total_donations":   s.TotalDonations.StringFixed(2),
		"total_expenses":    s.TotalExpenses.StringFixed(2),
		"remaining_balance": s.RemainingBalance.StringFixed(2),
		"donor_count":       s.DonorCount,
		"percent_complete":  s.PercentComplete,
		"formatted": map[string]string{
			"goal":              stats.FormatAmount(campaign.Currency, campaign.Goal),
			"total_donations":   stats.FormatAmount(campaign.Currency, s.TotalDonations),
			"total_expenses":    stats.FormatAmount(campaign.Currency, s.TotalExpenses),
			"remaining_balance": stats.FormatAmount(campaign.Currency, s.RemainingBalance),
		},
	}
}
