// Package notify fans notification emails out to subscribers, one at a time,
// absorbing per-recipient failures into a batch result.
package notify

import (
	"context"

	"server/internal/domain"
)

// Message is one fully rendered email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer is the external email collaborator. The core renders subject and
// body and treats delivery as a black box.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	Enabled() bool
}

// Disabled is the null-object mailer used when no provider credentials are
// configured. Dispatching against it fails fast without attempting partial
// sends; ledger and comment-gate behavior never depends on it.
type Disabled struct{}

func (Disabled) Send(context.Context, Message) error {
	return domain.ErrMailerNotConfigured
}

func (Disabled) Enabled() bool { return false }

var _ Mailer = Disabled{}
