package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ErrNoJob indicates the queue is empty.
var ErrNoJob = errors.New("no notification job available")

// JobPayload is the persisted jsonb body of a queued notification. Expense
// jobs derive their recipients from the donation ledger at dispatch time;
// comment jobs carry their recipients, since commenter storage lives outside
// this subsystem.
type JobPayload struct {
	Event      Event               `json:"event"`
	Recipients []domain.Subscriber `json:"recipients,omitempty"`
}

// Job is one claimed notification batch.
type Job struct {
	ID           uuid.UUID
	CampaignID   uuid.UUID
	Kind         Kind
	ExcludeEmail string
	Payload      JobPayload
}

// Job statuses. PARTIAL marks a batch that completed with at least one
// per-recipient failure recorded.
const (
	JobStatusSucceeded = "SUCCEEDED"
	JobStatusPartial   = "PARTIAL"
	JobStatusFailed    = "FAILED"
)

// Queue persists notification jobs so dispatch runs outside the ledger write
// path as a long-running, cancellable background task.
type Queue struct {
	sql infra.SQLExecutor
}

func NewQueue(sql infra.SQLExecutor) *Queue {
	return &Queue{sql: sql}
}

func (q *Queue) Enqueue(ctx context.Context, campaignID uuid.UUID, excludeEmail string, payload JobPayload) (uuid.UUID, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode job payload: %w", err)
	}
	row := q.sql.QueryRow(ctx, sqlinline.QEnqueueNotificationJob,
		campaignID, string(payload.Event.Kind), excludeEmail, raw)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("enqueue notification job: %w", err)
	}
	return id, nil
}

// Claim pops the oldest queued job, marking it RUNNING. Concurrent workers
// are safe: the claim uses FOR UPDATE SKIP LOCKED.
func (q *Queue) Claim(ctx context.Context) (*Job, error) {
	row := q.sql.QueryRow(ctx, sqlinline.QClaimNotificationJob)
	var (
		job  Job
		kind string
		raw  []byte
	)
	if err := row.Scan(&job.ID, &job.CampaignID, &kind, &job.ExcludeEmail, &raw); err != nil {
		if infra.IsNoRows(err) {
			return nil, ErrNoJob
		}
		return nil, fmt.Errorf("claim notification job: %w", err)
	}
	job.Kind = Kind(kind)
	if err := json.Unmarshal(raw, &job.Payload); err != nil {
		return nil, fmt.Errorf("decode job payload: %w", err)
	}
	return &job, nil
}

// Complete records the batch outcome on the job row.
func (q *Queue) Complete(ctx context.Context, id uuid.UUID, result Result, runErr error) error {
	status := JobStatusSucceeded
	lastError := ""
	switch {
	case runErr != nil:
		status = JobStatusFailed
		lastError = runErr.Error()
	case result.Failed > 0:
		status = JobStatusPartial
		lastError = result.Errors[len(result.Errors)-1].Reason
	}
	_, err := q.sql.Exec(ctx, sqlinline.QCompleteNotificationJob,
		id, status, result.Successful, result.Failed, lastError)
	if err != nil {
		return fmt.Errorf("complete notification job: %w", err)
	}
	return nil
}
