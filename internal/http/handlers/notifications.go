package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"server/internal/domain"
	"server/internal/notify"
)

type dispatchRequest struct {
	CampaignSlug string              `json:"campaign_slug"`
	Kind         string              `json:"kind"`
	Actor        string              `json:"actor"`
	Detail       string              `json:"detail"`
	Amount       string              `json:"amount"`
	ExcludeEmail string              `json:"exclude_email"`
	Recipients   []domain.Subscriber `json:"recipients"`
}

// NotificationsDispatch runs one batch synchronously. The background worker
// is the normal path; this endpoint exists for administrative resends and
// keeps the same partial-failure accounting.
func (a *App) NotificationsDispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.CampaignSlug) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "campaign_slug must not be empty")
		return
	}

	ctx := r.Context()
	campaign, err := a.Campaigns.GetBySlug(ctx, req.CampaignSlug)
	if err != nil {
		a.domainError(w, err)
		return
	}

	subscribers := req.Recipients
	if len(subscribers) == 0 {
		subscribers, err = a.Ledger.ListUpdateSubscribers(ctx, campaign.ID)
		if err != nil {
			a.domainError(w, err)
			return
		}
	}

	event := notify.Event{
		Kind:          notify.Kind(req.Kind),
		CampaignTitle: campaign.Title,
		CampaignSlug:  campaign.Slug,
		Actor:         req.Actor,
		Detail:        req.Detail,
		Amount:        req.Amount,
	}
	result, err := a.Dispatcher.Dispatch(ctx, subscribers, event, req.ExcludeEmail)
	if err != nil {
		a.domainError(w, err)
		return
	}
	if result.Errors == nil {
		result.Errors = []notify.SendError{}
	}
	a.json(w, http.StatusOK, result)
}
