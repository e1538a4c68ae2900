package donors

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"server/internal/domain"
	"server/internal/ledger"
)

func TestIsDonorCaseInsensitive(t *testing.T) {
	store := ledger.NewMemoryStore()
	registry := NewRegistry(store)
	campaignID := uuid.New()

	err := store.AppendDonation(context.Background(), &domain.DonationEntry{
		CampaignID:   campaignID,
		DonorEmail:   "Jane@Example.com",
		Amount:       decimal.RequireFromString("5"),
		ExternalTxID: "tx-1",
		IsAnonymous:  true,
	})
	if err != nil {
		t.Fatalf("seed donation: %v", err)
	}

	ok, err := registry.IsDonor(context.Background(), campaignID, "jane@example.com")
	if err != nil {
		t.Fatalf("IsDonor: %v", err)
	}
	if !ok {
		t.Fatal("expected jane@example.com to qualify; matching is case-insensitive and anonymity does not affect rights")
	}
}

func TestIsDonorUnknownEmail(t *testing.T) {
	store := ledger.NewMemoryStore()
	registry := NewRegistry(store)
	campaignID := uuid.New()

	ok, err := registry.IsDonor(context.Background(), campaignID, "nobody@example.com")
	if err != nil {
		t.Fatalf("IsDonor: %v", err)
	}
	if ok {
		t.Fatal("expected unknown email to not qualify")
	}
}

func TestIsDonorScopedToCampaign(t *testing.T) {
	store := ledger.NewMemoryStore()
	registry := NewRegistry(store)
	donatedTo := uuid.New()
	other := uuid.New()

	err := store.AppendDonation(context.Background(), &domain.DonationEntry{
		CampaignID:   donatedTo,
		DonorEmail:   "jane@example.com",
		Amount:       decimal.RequireFromString("5"),
		ExternalTxID: "tx-1",
	})
	if err != nil {
		t.Fatalf("seed donation: %v", err)
	}

	ok, err := registry.IsDonor(context.Background(), other, "jane@example.com")
	if err != nil {
		t.Fatalf("IsDonor: %v", err)
	}
	if ok {
		t.Fatal("donor status must be scoped to the campaign donated to")
	}
}

func TestIsDonorEmptyEmail(t *testing.T) {
	registry := NewRegistry(ledger.NewMemoryStore())

	ok, err := registry.IsDonor(context.Background(), uuid.New(), "  ")
	if err != nil {
		t.Fatalf("IsDonor: %v", err)
	}
	if ok {
		t.Fatal("blank email must never qualify")
	}
}
