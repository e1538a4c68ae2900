package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/ledger"
	"server/internal/notify"
)

const jobPollInterval = 2 * time.Second

type notifyWorker struct {
	ctx        context.Context
	queue      *notify.Queue
	store      ledger.Store
	dispatcher *notify.Dispatcher
	logger     infra.Logger
}

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if !cfg.MailConfigured() {
		logger.Fatal().Msg("worker: MAIL_API_KEY is required, refusing to consume notification jobs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)

	mailer, err := notify.NewHTTPMailer(notify.HTTPMailerOptions{
		APIKey:      cfg.MailAPIKey,
		BaseURL:     cfg.MailBaseURL,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: failed to configure mailer")
	}

	worker := &notifyWorker{
		ctx:        ctx,
		queue:      notify.NewQueue(runner),
		store:      ledger.NewPostgresStore(runner),
		dispatcher: notify.NewDispatcher(mailer, cfg.MailSendInterval, logger),
		logger:     logger,
	}

	if err := worker.Run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("worker: stopped with error")
	}
	logger.Info().Msg("worker: stopped")
}

func (w *notifyWorker) Run() error {
	w.logger.Info().Msg("worker: started")
	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		job, err := w.queue.Claim(w.ctx)
		if err != nil {
			if errors.Is(err, notify.ErrNoJob) {
				if err := w.pause(jobPollInterval); err != nil {
					return err
				}
				continue
			}
			if w.ctx.Err() != nil {
				return w.ctx.Err()
			}
			w.logger.Error().Err(err).Msg("worker: failed to claim job")
			if err := w.pause(jobPollInterval); err != nil {
				return err
			}
			continue
		}

		w.handleJob(job)
	}
}

// pause waits out the poll interval but wakes immediately on shutdown.
func (w *notifyWorker) pause(d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (w *notifyWorker) handleJob(job *notify.Job) {
	w.logger.Info().
		Str("job_id", job.ID.String()).
		Str("kind", string(job.Kind)).
		Msg("worker: picked job")

	subscribers, err := w.subscribersFor(job)
	var result notify.Result
	if err == nil {
		result, err = w.dispatcher.Dispatch(w.ctx, subscribers, job.Payload.Event, job.ExcludeEmail)
	}
	if err != nil {
		w.logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("worker: job failed")
	}

	// Completion writes through a fresh context: a cancelled run must still
	// record its partial result.
	completeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := w.queue.Complete(completeCtx, job.ID, result, err); err != nil {
		w.logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("worker: record outcome failed")
	}
}

// subscribersFor resolves the recipient set. Expense batches derive it from
// the donation ledger; comment batches carry it in the payload because
// commenter storage lives outside this subsystem.
func (w *notifyWorker) subscribersFor(job *notify.Job) ([]domain.Subscriber, error) {
	if len(job.Payload.Recipients) > 0 {
		return job.Payload.Recipients, nil
	}
	return w.store.ListUpdateSubscribers(w.ctx, job.CampaignID)
}
