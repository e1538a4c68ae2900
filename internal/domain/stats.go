package domain

import "github.com/shopspring/decimal"

// CampaignStats is derived from the ledger on demand. Totals are never cached
// as mutable counters, so concurrent captures cannot produce lost updates.
type CampaignStats struct {
	TotalDonations   decimal.Decimal
	TotalExpenses    decimal.Decimal
	RemainingBalance decimal.Decimal
	DonorCount       int
	PercentComplete  int
}
