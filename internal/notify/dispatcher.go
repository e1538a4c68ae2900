package notify

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain"
)

// SendError records one failed recipient. Failures are expected, recoverable
// occurrences; they never abort the batch and are never retried automatically.
type SendError struct {
	Recipient string `json:"recipient"`
	Reason    string `json:"reason"`
}

// Result accumulates per-recipient outcomes for one dispatch batch.
type Result struct {
	Successful int         `json:"successful"`
	Failed     int         `json:"failed"`
	Errors     []SendError `json:"errors"`
}

// Dispatcher sends one notification per subscriber, sequentially. Parallel
// sends would trip the provider's rate limiter and make the failure list
// nondeterministic, so the loop is single-threaded with a fixed pause
// between sends.
type Dispatcher struct {
	mailer   Mailer
	interval time.Duration
	logger   zerolog.Logger
}

func NewDispatcher(mailer Mailer, interval time.Duration, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{mailer: mailer, interval: interval, logger: logger}
}

// Dispatch iterates subscribers in the given order, skipping the excluded
// email case-insensitively so people are not notified of their own actions.
// Cancellation stops before the next send and returns the partial result with
// ctx.Err(); completed sends are not rolled back.
func (d *Dispatcher) Dispatch(ctx context.Context, subscribers []domain.Subscriber, event Event, excludeEmail string) (Result, error) {
	var result Result
	if len(subscribers) == 0 {
		return result, nil
	}
	if d.mailer == nil || !d.mailer.Enabled() {
		return result, domain.ErrMailerNotConfigured
	}

	exclude := strings.ToLower(strings.TrimSpace(excludeEmail))
	subject := event.Subject()
	sent := false
	for _, sub := range subscribers {
		if exclude != "" && strings.ToLower(sub.Email) == exclude {
			continue
		}
		if sent {
			if err := sleepContext(ctx, d.interval); err != nil {
				return result, err
			}
		} else if err := ctx.Err(); err != nil {
			return result, err
		}
		sent = true

		msg := Message{To: sub.Email, Subject: subject, HTMLBody: event.HTMLBody(sub)}
		if err := d.mailer.Send(ctx, msg); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, SendError{Recipient: sub.Email, Reason: err.Error()})
			d.logger.Warn().Err(err).
				Str("recipient", sub.Email).
				Str("kind", string(event.Kind)).
				Msg("notification send failed")
			continue
		}
		result.Successful++
	}

	d.logger.Info().
		Str("kind", string(event.Kind)).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Msg("notification batch dispatched")
	return result, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
