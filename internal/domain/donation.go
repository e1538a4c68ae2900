package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationEntry is one recorded contribution. Entries are append-only: they
// are never mutated or deleted, and the external transaction id is unique
// across all campaigns.
type DonationEntry struct {
	ID              uuid.UUID
	CampaignID      uuid.UUID
	DonorName       string
	DonorEmail      string
	Amount          decimal.Decimal
	Message         string
	IsAnonymous     bool
	NotifyOnUpdates bool
	DonorCountry    string
	ExternalTxID    string
	CreatedAt       time.Time
}

// DisplayName is the name shown on public transparency pages. Anonymity
// affects display only, never donor rights.
func (d DonationEntry) DisplayName() string {
	if d.IsAnonymous || d.DonorName == "" {
		return "Anonymous"
	}
	return d.DonorName
}
