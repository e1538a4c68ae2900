package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// PostgresStore implements Store on top of Postgres. The unique index on
// donations.external_tx_id enforces the idempotency invariant at the
// persistence layer, so concurrent captures need no application-level lock.
type PostgresStore struct {
	sql infra.SQLExecutor
}

func NewPostgresStore(sql infra.SQLExecutor) *PostgresStore {
	return &PostgresStore{sql: sql}
}

func (s *PostgresStore) AppendDonation(ctx context.Context, entry *domain.DonationEntry) error {
	row := s.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		entry.CampaignID,
		entry.DonorName,
		entry.DonorEmail,
		entry.Amount,
		entry.Message,
		entry.IsAnonymous,
		entry.NotifyOnUpdates,
		entry.DonorCountry,
		entry.ExternalTxID,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		if infra.IsUniqueViolation(err) {
			return domain.ErrDuplicateTransaction
		}
		return fmt.Errorf("append donation: %w", err)
	}
	return nil
}

func (s *PostgresStore) AppendExpense(ctx context.Context, entry *domain.ExpenseEntry) error {
	row := s.sql.QueryRow(ctx, sqlinline.QInsertExpense,
		entry.CampaignID,
		entry.Title,
		entry.Amount,
		entry.Currency,
		entry.Description,
		entry.Beneficiaries,
		entry.ReceiptURLs,
		entry.SpentAt,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("append expense: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetDonationByExternalTxID(ctx context.Context, externalTxID string) (*domain.DonationEntry, error) {
	row := s.sql.QueryRow(ctx, sqlinline.QSelectDonationByExternalTxID, externalTxID)
	var e domain.DonationEntry
	if err := row.Scan(
		&e.ID,
		&e.CampaignID,
		&e.DonorName,
		&e.DonorEmail,
		&e.Amount,
		&e.Message,
		&e.IsAnonymous,
		&e.NotifyOnUpdates,
		&e.DonorCountry,
		&e.ExternalTxID,
		&e.CreatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get donation by external tx id: %w", err)
	}
	return &e, nil
}

func (s *PostgresStore) ListDonations(ctx context.Context, campaignID uuid.UUID) ([]domain.DonationEntry, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QListDonationsByCampaign, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	var entries []domain.DonationEntry
	for rows.Next() {
		var e domain.DonationEntry
		if err := rows.Scan(
			&e.ID,
			&e.CampaignID,
			&e.DonorName,
			&e.DonorEmail,
			&e.Amount,
			&e.Message,
			&e.IsAnonymous,
			&e.NotifyOnUpdates,
			&e.DonorCountry,
			&e.ExternalTxID,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return entries, nil
}

func (s *PostgresStore) ListExpenses(ctx context.Context, campaignID uuid.UUID) ([]domain.ExpenseEntry, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QListExpensesByCampaign, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var entries []domain.ExpenseEntry
	for rows.Next() {
		var e domain.ExpenseEntry
		if err := rows.Scan(
			&e.ID,
			&e.CampaignID,
			&e.Title,
			&e.Amount,
			&e.Currency,
			&e.Description,
			&e.Beneficiaries,
			&e.ReceiptURLs,
			&e.SpentAt,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return entries, nil
}

// ListUpdateSubscribers returns one subscriber per distinct donor email whose
// donations opted into updates, in first-donation order.
func (s *PostgresStore) ListUpdateSubscribers(ctx context.Context, campaignID uuid.UUID) ([]domain.Subscriber, error) {
	rows, err := s.sql.Query(ctx, sqlinline.QListUpdateSubscribers, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscriber
	for rows.Next() {
		var sub domain.Subscriber
		if err := rows.Scan(&sub.Name, &sub.Email); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, nil
}

var _ Store = (*PostgresStore)(nil)
