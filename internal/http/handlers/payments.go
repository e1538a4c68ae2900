package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"server/internal/capture"
	"server/internal/domain"
	"server/internal/geo"
)

type captureRequest struct {
	CampaignID      uuid.UUID       `json:"campaign_id"`
	ExternalTxID    string          `json:"external_tx_id"`
	Amount          decimal.Decimal `json:"amount"`
	DonorEmail      string          `json:"donor_email"`
	DonorName       string          `json:"donor_name"`
	Message         string          `json:"message"`
	IsAnonymous     bool            `json:"is_anonymous"`
	NotifyOnUpdates bool            `json:"notify_on_updates"`
}

// PaymentsCapture is the gateway capture callback: it records an approved
// payment as a donation entry. Retries with the same external transaction id
// come back as a 409 already_processed payload, which callers treat as
// success.
func (a *App) PaymentsCapture(w http.ResponseWriter, r *http.Request) {
	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	entry, err := a.Capture.Capture(r.Context(), capture.Request{
		CampaignID:      req.CampaignID,
		ExternalTxID:    req.ExternalTxID,
		Amount:          req.Amount,
		DonorEmail:      req.DonorEmail,
		DonorName:       req.DonorName,
		Message:         req.Message,
		IsAnonymous:     req.IsAnonymous,
		NotifyOnUpdates: req.NotifyOnUpdates,
		DonorCountry:    geo.DonorCountry(a.Countries, clientIP(r)),
	})
	if errors.Is(err, domain.ErrDuplicateTransaction) {
		existing, lookupErr := a.Ledger.GetDonationByExternalTxID(r.Context(), strings.TrimSpace(req.ExternalTxID))
		if lookupErr != nil {
			a.domainError(w, err)
			return
		}
		a.json(w, http.StatusConflict, map[string]any{
			"status": "already_processed",
			"id":     existing.ID,
		})
		return
	}
	if err != nil {
		a.domainError(w, err)
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"id":         entry.ID,
		"created_at": entry.CreatedAt,
	})
}

// clientIP trusts chi's RealIP middleware, which rewrites RemoteAddr from
// the forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
