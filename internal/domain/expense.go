package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEntry is one recorded distribution of campaign funds. Like
// donations, expenses are never edited; corrections are new entries.
type ExpenseEntry struct {
	ID            uuid.UUID
	CampaignID    uuid.UUID
	Title         string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	Beneficiaries string
	ReceiptURLs   []string
	SpentAt       time.Time
	CreatedAt     time.Time
}
