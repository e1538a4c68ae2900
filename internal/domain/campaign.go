package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign is a blog post flagged as a donation drive. The slug is immutable
// once published; informational fields like the title may change without
// affecting ledger math.
type Campaign struct {
	ID         uuid.UUID
	Slug       string
	Title      string
	Currency   string
	Goal       decimal.Decimal
	DonorGated bool
	IsDrive    bool
	CreatedAt  time.Time
}
