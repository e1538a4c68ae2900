// Package ledger provides append-only persistence for campaign donation and
// expense entries. Entries are never updated or removed; corrections are
// modeled as new entries.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"server/internal/domain"
)

// Store is the append-only ledger contract. AppendDonation returns
// domain.ErrDuplicateTransaction when the external transaction id has already
// been recorded for any campaign; that uniqueness constraint is the sole
// idempotency guard against duplicate payment-capture retries.
// GetDonationByExternalTxID resolves the previously recorded entry so retry
// responses can reference it, returning domain.ErrNotFound when the id has
// never been captured.
type Store interface {
	AppendDonation(ctx context.Context, entry *domain.DonationEntry) error
	AppendExpense(ctx context.Context, entry *domain.ExpenseEntry) error
	GetDonationByExternalTxID(ctx context.Context, externalTxID string) (*domain.DonationEntry, error)
	ListDonations(ctx context.Context, campaignID uuid.UUID) ([]domain.DonationEntry, error)
	ListExpenses(ctx context.Context, campaignID uuid.UUID) ([]domain.ExpenseEntry, error)
	ListUpdateSubscribers(ctx context.Context, campaignID uuid.UUID) ([]domain.Subscriber, error)
}
