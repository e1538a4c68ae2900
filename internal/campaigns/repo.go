// Package campaigns persists the donation-drive rows that ledger entries
// attach to. Campaigns are immutable after creation except for informational
// fields, which never affect ledger math.
package campaigns

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

type Repo struct {
	sql infra.SQLExecutor
}

func NewRepo(sql infra.SQLExecutor) *Repo {
	return &Repo{sql: sql}
}

// Create validates and inserts a new campaign. A non-positive goal is
// rejected here so downstream percent-complete math never divides by zero.
func (r *Repo) Create(ctx context.Context, c *domain.Campaign) error {
	c.Slug = strings.TrimSpace(c.Slug)
	if c.Slug == "" {
		return &domain.ValidationError{Field: "slug", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.Title) == "" {
		return &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !c.Goal.IsPositive() {
		return &domain.ValidationError{Field: "goal", Reason: "must be positive"}
	}
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if len(c.Currency) != 3 {
		return &domain.ValidationError{Field: "currency", Reason: "must be a 3-letter ISO code"}
	}

	row := r.sql.QueryRow(ctx, sqlinline.QInsertCampaign,
		c.Slug, c.Title, c.Currency, c.Goal, c.DonorGated, c.IsDrive)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Campaign, error) {
	return r.get(ctx, sqlinline.QSelectCampaignBySlug, slug)
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return r.get(ctx, sqlinline.QSelectCampaignByID, id)
}

func (r *Repo) get(ctx context.Context, query string, arg any) (*domain.Campaign, error) {
	row := r.sql.QueryRow(ctx, query, arg)
	var c domain.Campaign
	if err := row.Scan(
		&c.ID,
		&c.Slug,
		&c.Title,
		&c.Currency,
		&c.Goal,
		&c.DonorGated,
		&c.IsDrive,
		&c.CreatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}
