// Package stats derives campaign statistics from the ledger. Every call
// recomputes totals from the full entry set; nothing here mutates state, so
// the aggregator is safe under concurrent requests.
package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"server/internal/domain"
	"server/internal/ledger"
)

var oneHundred = decimal.NewFromInt(100)

type Aggregator struct {
	store ledger.Store
}

func NewAggregator(store ledger.Store) *Aggregator {
	return &Aggregator{store: store}
}

// Compute returns the derived statistics for a campaign over the current
// ledger snapshot. The remaining balance is not clamped: over-distribution
// shows as a negative balance on the transparency report.
func (a *Aggregator) Compute(ctx context.Context, campaign *domain.Campaign) (domain.CampaignStats, error) {
	donations, err := a.store.ListDonations(ctx, campaign.ID)
	if err != nil {
		return domain.CampaignStats{}, fmt.Errorf("compute stats: %w", err)
	}
	expenses, err := a.store.ListExpenses(ctx, campaign.ID)
	if err != nil {
		return domain.CampaignStats{}, fmt.Errorf("compute stats: %w", err)
	}

	totalDonations := decimal.Zero
	donorEmails := make(map[string]struct{})
	for _, d := range donations {
		totalDonations = totalDonations.Add(d.Amount)
		donorEmails[strings.ToLower(d.DonorEmail)] = struct{}{}
	}

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	return domain.CampaignStats{
		TotalDonations:   totalDonations,
		TotalExpenses:    totalExpenses,
		RemainingBalance: totalDonations.Sub(totalExpenses),
		DonorCount:       len(donorEmails),
		PercentComplete:  percentComplete(totalDonations, campaign.Goal),
	}, nil
}

// percentComplete rounds to the nearest integer and caps at 100. Campaigns
// are created with a positive goal; a non-positive goal reports 0 until any
// donation exists and 100 after.
func percentComplete(total, goal decimal.Decimal) int {
	if !goal.IsPositive() {
		if total.IsPositive() {
			return 100
		}
		return 0
	}
	pct := total.Div(goal).Mul(oneHundred).Round(0).IntPart()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return int(pct)
}
