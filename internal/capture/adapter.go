// Package capture turns an approved external payment into a ledger entry.
// The gateway's captured amount is trusted verbatim; the only protection this
// adapter adds is validation and the idempotency guard on the external
// transaction id.
package capture

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"server/internal/domain"
	"server/internal/ledger"
)

// CampaignGetter resolves the campaign a capture is recorded against.
type CampaignGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
}

type Adapter struct {
	campaigns CampaignGetter
	store     ledger.Store
	logger    zerolog.Logger
}

func NewAdapter(campaigns CampaignGetter, store ledger.Store, logger zerolog.Logger) *Adapter {
	return &Adapter{campaigns: campaigns, store: store, logger: logger}
}

// Request carries the fields of one approved payment.
type Request struct {
	CampaignID      uuid.UUID
	ExternalTxID    string
	Amount          decimal.Decimal
	DonorEmail      string
	DonorName       string
	Message         string
	IsAnonymous     bool
	NotifyOnUpdates bool
	DonorCountry    string
}

// Capture validates the request and appends a donation entry. A duplicate
// external transaction id returns domain.ErrDuplicateTransaction and leaves
// the ledger untouched; callers treat that as "already processed", which is
// what makes gateway webhook redelivery and client double submission safe.
func (a *Adapter) Capture(ctx context.Context, req Request) (*domain.DonationEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if strings.TrimSpace(req.ExternalTxID) == "" {
		return nil, &domain.ValidationError{Field: "external_tx_id", Reason: "must not be empty"}
	}
	email := strings.TrimSpace(req.DonorEmail)
	if email == "" {
		return nil, &domain.ValidationError{Field: "donor_email", Reason: "must not be empty"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &domain.ValidationError{Field: "donor_email", Reason: "malformed address"}
	}

	campaign, err := a.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.IsDrive {
		return nil, domain.ErrNotDonationDrive
	}

	entry := &domain.DonationEntry{
		CampaignID:      campaign.ID,
		DonorName:       strings.TrimSpace(req.DonorName),
		DonorEmail:      email,
		Amount:          req.Amount,
		Message:         req.Message,
		IsAnonymous:     req.IsAnonymous,
		NotifyOnUpdates: req.NotifyOnUpdates,
		DonorCountry:    strings.ToUpper(strings.TrimSpace(req.DonorCountry)),
		ExternalTxID:    strings.TrimSpace(req.ExternalTxID),
	}
	if err := a.store.AppendDonation(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			a.logger.Info().
				Str("external_tx_id", entry.ExternalTxID).
				Msg("capture retried for already recorded transaction")
			return nil, domain.ErrDuplicateTransaction
		}
		return nil, err
	}

	a.logger.Info().
		Str("campaign", campaign.Slug).
		Str("external_tx_id", entry.ExternalTxID).
		Str("amount", entry.Amount.String()).
		Msg("donation recorded")
	return entry, nil
}
