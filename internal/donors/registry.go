// Package donors answers whether an email address qualifies as a donor of a
// campaign. Any past donation qualifies, regardless of amount or anonymity;
// anonymity affects display only.
package donors

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"server/internal/ledger"
)

type Registry struct {
	store ledger.Store
}

func NewRegistry(store ledger.Store) *Registry {
	return &Registry{store: store}
}

// IsDonor reports whether the email matches the donor email of any donation
// entry for the campaign. Matching is case-insensitive and exact.
func (r *Registry) IsDonor(ctx context.Context, campaignID uuid.UUID, email string) (bool, error) {
	needle := strings.ToLower(strings.TrimSpace(email))
	if needle == "" {
		return false, nil
	}
	donations, err := r.store.ListDonations(ctx, campaignID)
	if err != nil {
		return false, err
	}
	for _, d := range donations {
		if strings.ToLower(d.DonorEmail) == needle {
			return true, nil
		}
	}
	return false, nil
}
