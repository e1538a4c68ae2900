// Package comments implements the donor gate for comment threads. Comment
// posting and storage live elsewhere; this package only decides capability.
package comments

import (
	"context"

	"github.com/google/uuid"

	"server/internal/domain"
)

// ThreadType distinguishes public threads from donor-gated ones.
type ThreadType string

const (
	ThreadPublic     ThreadType = "public"
	ThreadDonorGated ThreadType = "donor-gated"
)

// State of a visitor with respect to a thread. Verified is sticky for
// whatever session scope the caller maintains; the gate itself is stateless.
type State string

const (
	StateUnverified State = "unverified"
	StateVerified   State = "verified"
)

// Access is the capability decision for one (visitor, campaign, thread type)
// triple. On gated threads an unverified visitor can neither write nor read:
// the existing comment list is hidden, not just the composer.
type Access struct {
	State           State
	CanComment      bool
	CanViewComments bool
}

// DonorChecker is the single collaborator the gate needs.
type DonorChecker interface {
	IsDonor(ctx context.Context, campaignID uuid.UUID, email string) (bool, error)
}

type Gate struct {
	donors DonorChecker
}

func NewGate(donors DonorChecker) *Gate {
	return &Gate{donors: donors}
}

// Evaluate decides comment capability for a visitor. For public threads every
// visitor is verified. For donor-gated threads the supplied email must belong
// to a donor of the campaign; an empty email stays unverified without a
// registry lookup.
func (g *Gate) Evaluate(ctx context.Context, campaign *domain.Campaign, thread ThreadType, email string) (Access, error) {
	if thread == ThreadPublic {
		return Access{State: StateVerified, CanComment: true, CanViewComments: true}, nil
	}
	if email == "" {
		return Access{State: StateUnverified}, nil
	}
	ok, err := g.donors.IsDonor(ctx, campaign.ID, email)
	if err != nil {
		return Access{}, err
	}
	if !ok {
		return Access{State: StateUnverified}, nil
	}
	return Access{State: StateVerified, CanComment: true, CanViewComments: true}, nil
}

// ThreadFor maps a campaign to the thread type its comment section uses.
func ThreadFor(campaign *domain.Campaign) ThreadType {
	if campaign.DonorGated {
		return ThreadDonorGated
	}
	return ThreadPublic
}
