package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"server/internal/domain"
)

func donation(campaignID uuid.UUID, email, txID, amount string) *domain.DonationEntry {
	return &domain.DonationEntry{
		CampaignID:   campaignID,
		DonorName:    "Donor",
		DonorEmail:   email,
		Amount:       decimal.RequireFromString(amount),
		ExternalTxID: txID,
	}
}

func TestMemoryStoreRejectsDuplicateTransaction(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	campaignID := uuid.New()

	if err := store.AppendDonation(ctx, donation(campaignID, "a@example.com", "tx-1", "25")); err != nil {
		t.Fatalf("first append: %v", err)
	}

	// Same external transaction id against a different campaign still
	// conflicts: uniqueness is campaign-independent.
	err := store.AppendDonation(ctx, donation(uuid.New(), "b@example.com", "tx-1", "10"))
	if !errors.Is(err, domain.ErrDuplicateTransaction) {
		t.Fatalf("expected ErrDuplicateTransaction, got %v", err)
	}

	entries, err := store.ListDonations(ctx, campaignID)
	if err != nil {
		t.Fatalf("list donations: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestMemoryStoreGetDonationByExternalTxID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	campaignID := uuid.New()

	recorded := donation(campaignID, "a@example.com", "tx-1", "25")
	if err := store.AppendDonation(ctx, recorded); err != nil {
		t.Fatalf("append: %v", err)
	}

	entry, err := store.GetDonationByExternalTxID(ctx, "tx-1")
	if err != nil {
		t.Fatalf("get by external tx id: %v", err)
	}
	if entry.ID != recorded.ID {
		t.Fatalf("entry id = %s, want %s", entry.ID, recorded.ID)
	}

	_, err = store.GetDonationByExternalTxID(ctx, "tx-unknown")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown tx id, got %v", err)
	}
}

func TestMemoryStoreListsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	campaignID := uuid.New()

	for _, txID := range []string{"tx-1", "tx-2", "tx-3"} {
		if err := store.AppendDonation(ctx, donation(campaignID, "a@example.com", txID, "5")); err != nil {
			t.Fatalf("append %s: %v", txID, err)
		}
	}

	entries, err := store.ListDonations(ctx, campaignID)
	if err != nil {
		t.Fatalf("list donations: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ExternalTxID != "tx-3" || entries[2].ExternalTxID != "tx-1" {
		t.Fatalf("expected newest first, got %s..%s", entries[0].ExternalTxID, entries[2].ExternalTxID)
	}
}

func TestMemoryStoreUpdateSubscribers(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	campaignID := uuid.New()

	first := donation(campaignID, "Jane@Example.com", "tx-1", "5")
	first.NotifyOnUpdates = true
	second := donation(campaignID, "jane@example.com", "tx-2", "5")
	second.NotifyOnUpdates = true
	third := donation(campaignID, "quiet@example.com", "tx-3", "5")

	for _, d := range []*domain.DonationEntry{first, second, third} {
		if err := store.AppendDonation(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	subs, err := store.ListUpdateSubscribers(ctx, campaignID)
	if err != nil {
		t.Fatalf("list subscribers: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 subscriber (case-insensitive dedupe, opt-in only), got %d", len(subs))
	}
	if subs[0].Email != "Jane@Example.com" {
		t.Fatalf("expected first-seen email preserved, got %q", subs[0].Email)
	}
}

func TestMemoryStoreExpenses(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	campaignID := uuid.New()

	for _, title := range []string{"first", "second"} {
		entry := &domain.ExpenseEntry{
			CampaignID: campaignID,
			Title:      title,
			Amount:     decimal.RequireFromString("12.50"),
			Currency:   "USD",
		}
		if err := store.AppendExpense(ctx, entry); err != nil {
			t.Fatalf("append expense: %v", err)
		}
		if entry.ID == uuid.Nil {
			t.Fatal("expected expense id to be assigned")
		}
	}

	entries, err := store.ListExpenses(ctx, campaignID)
	if err != nil {
		t.Fatalf("list expenses: %v", err)
	}
	if len(entries) != 2 || entries[0].Title != "second" {
		t.Fatalf("expected newest first, got %#v", entries)
	}
}
