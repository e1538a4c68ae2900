package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"server/internal/domain"
	"server/internal/ledger"
)

type fakeCampaigns struct {
	byID map[uuid.UUID]*domain.Campaign
}

func (f *fakeCampaigns) GetByID(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func newTestAdapter(t *testing.T) (*Adapter, *ledger.MemoryStore, *domain.Campaign) {
	t.Helper()
	campaign := &domain.Campaign{
		ID:       uuid.New(),
		Slug:     "clean-water",
		Title:    "Clean Water Drive",
		Currency: "USD",
		Goal:     decimal.RequireFromString("1000"),
		IsDrive:  true,
	}
	store := ledger.NewMemoryStore()
	campaigns := &fakeCampaigns{byID: map[uuid.UUID]*domain.Campaign{campaign.ID: campaign}}
	return NewAdapter(campaigns, store, zerolog.Nop()), store, campaign
}

func validRequest(campaignID uuid.UUID, txID string) Request {
	return Request{
		CampaignID:      campaignID,
		ExternalTxID:    txID,
		Amount:          decimal.RequireFromString("25.00"),
		DonorEmail:      "jane@example.com",
		DonorName:       "Jane",
		NotifyOnUpdates: true,
	}
}

func TestCaptureRecordsDonation(t *testing.T) {
	adapter, store, campaign := newTestAdapter(t)

	entry, err := adapter.Capture(context.Background(), validRequest(campaign.ID, "tx-1"))
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if entry.ID == uuid.Nil {
		t.Fatal("expected entry id to be assigned")
	}
	entries, err := store.ListDonations(context.Background(), campaign.ID)
	if err != nil {
		t.Fatalf("list donations: %v", err)
	}
	if len(entries) != 1 || entries[0].ExternalTxID != "tx-1" {
		t.Fatalf("unexpected ledger contents: %#v", entries)
	}
}

func TestCaptureIsIdempotentOnExternalTxID(t *testing.T) {
	adapter, store, campaign := newTestAdapter(t)
	ctx := context.Background()

	if _, err := adapter.Capture(ctx, validRequest(campaign.ID, "tx-1")); err != nil {
		t.Fatalf("first capture: %v", err)
	}
	_, err := adapter.Capture(ctx, validRequest(campaign.ID, "tx-1"))
	if !errors.Is(err, domain.ErrDuplicateTransaction) {
		t.Fatalf("expected ErrDuplicateTransaction, got %v", err)
	}

	entries, err := store.ListDonations(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("list donations: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("retry must not create a second entry, got %d", len(entries))
	}
}

func TestCaptureValidation(t *testing.T) {
	adapter, _, campaign := newTestAdapter(t)
	ctx := context.Background()

	cases := map[string]func(Request) Request{
		"non-positive amount": func(r Request) Request {
			r.Amount = decimal.Zero
			return r
		},
		"missing email": func(r Request) Request {
			r.DonorEmail = "  "
			return r
		},
		"malformed email": func(r Request) Request {
			r.DonorEmail = "not-an-address"
			return r
		},
		"missing external tx id": func(r Request) Request {
			r.ExternalTxID = ""
			return r
		},
	}
	for name, mutate := range cases {
		_, err := adapter.Capture(ctx, mutate(validRequest(campaign.ID, "tx-1")))
		if !domain.IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %v", name, err)
		}
	}
}

func TestCaptureUnknownCampaign(t *testing.T) {
	adapter, _, _ := newTestAdapter(t)

	_, err := adapter.Capture(context.Background(), validRequest(uuid.New(), "tx-1"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCaptureRejectsNonDriveCampaign(t *testing.T) {
	adapter, _, campaign := newTestAdapter(t)
	campaign.IsDrive = false

	_, err := adapter.Capture(context.Background(), validRequest(campaign.ID, "tx-1"))
	if !errors.Is(err, domain.ErrNotDonationDrive) {
		t.Fatalf("expected ErrNotDonationDrive, got %v", err)
	}
}
