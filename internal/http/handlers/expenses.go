package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"server/internal/domain"
	"server/internal/notify"
	"server/internal/stats"
)

func (a *App) ExpensesList(w http.ResponseWriter, r *http.Request) {
	campaign, err := a.Campaigns.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	expenses, err := a.Ledger.ListExpenses(r.Context(), campaign.ID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": expenseItems(expenses)})
}

type expenseCreateRequest struct {
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	Beneficiaries string          `json:"beneficiaries"`
	ReceiptURLs   []string        `json:"receipt_urls"`
	SpentAt       string          `json:"spent_at"`
}

// ExpensesCreate records a distribution of funds and queues the
// expense-posted notification batch. The queue write sits outside the ledger
// append; a failed enqueue leaves the expense recorded and is reported as
// job_id null.
func (a *App) ExpensesCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaign, err := a.Campaigns.GetBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		a.domainError(w, err)
		return
	}

	var req expenseCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title must not be empty")
		return
	}
	if !req.Amount.IsPositive() {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive")
		return
	}
	spentAt := time.Now().UTC()
	if req.SpentAt != "" {
		parsed, err := time.Parse("2006-01-02", req.SpentAt)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "spent_at must be YYYY-MM-DD")
			return
		}
		spentAt = parsed
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = campaign.Currency
	}

	entry := &domain.ExpenseEntry{
		CampaignID:    campaign.ID,
		Title:         strings.TrimSpace(req.Title),
		Amount:        req.Amount,
		Currency:      currency,
		Description:   req.Description,
		Beneficiaries: req.Beneficiaries,
		ReceiptURLs:   req.ReceiptURLs,
		SpentAt:       spentAt,
	}
	if err := a.Ledger.AppendExpense(ctx, entry); err != nil {
		a.domainError(w, err)
		return
	}

	var jobID any
	if a.Queue != nil {
		payload := notify.JobPayload{Event: notify.Event{
			Kind:          notify.KindExpensePosted,
			CampaignTitle: campaign.Title,
			CampaignSlug:  campaign.Slug,
			Detail:        entry.Title,
			Amount:        stats.FormatAmount(currency, entry.Amount),
		}}
		id, err := a.Queue.Enqueue(ctx, campaign.ID, "", payload)
		if err != nil {
			a.Logger.Error().Err(err).Str("campaign", campaign.Slug).Msg("enqueue expense notification failed")
		} else {
			jobID = id
		}
	}

	a.json(w, http.StatusCreated, map[string]any{
		"id":     entry.ID,
		"job_id": jobID,
	})
}

func expenseItems(expenses []domain.ExpenseEntry) []map[string]any {
	items := make([]map[string]any, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, map[string]any{
			"id":            e.ID,
			"title":         e.Title,
			"amount":        e.Amount.StringFixed(2),
			"currency":      e.Currency,
			"description":   e.Description,
			"beneficiaries": e.Beneficiaries,
			"receipt_urls":  e.ReceiptURLs,
			"spent_at":      e.SpentAt.Format("2006-01-02"),
			"created_at":    e.CreatedAt,
		})
	}
	return items
}
