package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
)

// MemoryStore is an in-memory Store with the same semantics as the Postgres
// implementation, including the external transaction id uniqueness guard. It
// backs tests and local development without a database.
type MemoryStore struct {
	mu        sync.Mutex
	donations []domain.DonationEntry
	expenses  []domain.ExpenseEntry
	seenTxIDs map[string]struct{}
	clock     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seenTxIDs: make(map[string]struct{}),
		clock:     time.Now,
	}
}

func (m *MemoryStore) AppendDonation(ctx context.Context, entry *domain.DonationEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.seenTxIDs[entry.ExternalTxID]; exists {
		return domain.ErrDuplicateTransaction
	}
	entry.ID = uuid.New()
	entry.CreatedAt = m.clock()
	m.seenTxIDs[entry.ExternalTxID] = struct{}{}
	m.donations = append(m.donations, *entry)
	return nil
}

func (m *MemoryStore) AppendExpense(ctx context.Context, entry *domain.ExpenseEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry.ID = uuid.New()
	entry.CreatedAt = m.clock()
	m.expenses = append(m.expenses, *entry)
	return nil
}

func (m *MemoryStore) GetDonationByExternalTxID(ctx context.Context, externalTxID string) (*domain.DonationEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.donations {
		if m.donations[i].ExternalTxID == externalTxID {
			entry := m.donations[i]
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MemoryStore) ListDonations(ctx context.Context, campaignID uuid.UUID) ([]domain.DonationEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Newest first; entries were appended in insertion order.
	var entries []domain.DonationEntry
	for i := len(m.donations) - 1; i >= 0; i-- {
		if m.donations[i].CampaignID == campaignID {
			entries = append(entries, m.donations[i])
		}
	}
	return entries, nil
}

func (m *MemoryStore) ListExpenses(ctx context.Context, campaignID uuid.UUID) ([]domain.ExpenseEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []domain.ExpenseEntry
	for i := len(m.expenses) - 1; i >= 0; i-- {
		if m.expenses[i].CampaignID == campaignID {
			entries = append(entries, m.expenses[i])
		}
	}
	return entries, nil
}

func (m *MemoryStore) ListUpdateSubscribers(ctx context.Context, campaignID uuid.UUID) ([]domain.Subscriber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]struct{})
	var subs []domain.Subscriber
	for _, d := range m.donations {
		if d.CampaignID != campaignID || !d.NotifyOnUpdates {
			continue
		}
		key := strings.ToLower(d.DonorEmail)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		subs = append(subs, domain.Subscriber{Name: d.DonorName, Email: d.DonorEmail})
	}
	return subs, nil
}

var _ Store = (*MemoryStore)(nil)
