package service

import (
	"context"
	"time"

	"payment-log/internal/core/domain"
	"payment-log/internal/core/ports"
	"payment-log/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Worker drains the intake queue. Each payment is logged, submitted to the
// first processor that accepts it, and attributed to that processor.
type Worker struct {
	queue       <-chan domain.Payment
	repo        ports.PaymentLogRepository
	client      ports.ProcessorClient
	targets     []ports.ProcessorTarget
	maxInFlight int
	retryWait   time.Duration
	attrTimeout time.Duration
	log         zerolog.Logger
}

// WorkerOptions bounds a Worker.
type WorkerOptions struct {
	MaxInFlight int
	RetryWait   time.Duration
	// AttributeTimeout bounds attribution once a processor has accepted a
	// payment. It outlives cancellation of Run's ctx. Zero means 5s.
	AttributeTimeout time.Duration
}

const defaultAttributeTimeout = 5 * time.Second

// NewWorker creates a Worker. targets must not be empty.
func NewWorker(
	queue <-chan domain.Payment,
	repo ports.PaymentLogRepository,
	client ports.ProcessorClient,
	targets []ports.ProcessorTarget,
	opts WorkerOptions,
	log zerolog.Logger,
) *Worker {
	if opts.MaxInFlight < 1 {
		opts.MaxInFlight = 1
	}
	if opts.AttributeTimeout <= 0 {
		opts.AttributeTimeout = defaultAttributeTimeout
	}
	return &Worker{
		queue:       queue,
		repo:        repo,
		client:      client,
		targets:     targets,
		maxInFlight: opts.MaxInFlight,
		retryWait:   opts.RetryWait,
		attrTimeout: opts.AttributeTimeout,
		log:         log,
	}
}

// Run processes payments until ctx is cancelled or the queue is closed.
// At most maxInFlight payments are handled at once. Run waits for in-flight
// payments before returning; they stop retrying once ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	var g errgroup.Group
	g.SetLimit(w.maxInFlight)

	w.log.Info().Int("max_in_flight", w.maxInFlight).Int("processors", len(w.targets)).Msg("payment worker started")
	defer w.log.Info().Msg("payment worker stopped")

	for {
		if ctx.Err() != nil {
			return g.Wait()
		}
		select {
		case <-ctx.Done():
			return g.Wait()
		case payment, ok := <-w.queue:
			if !ok {
				return g.Wait()
			}
			g.Go(func() error {
				w.process(ctx, payment)
				return nil
			})
		}
	}
}

func (w *Worker) process(ctx context.Context, payment domain.Payment) {
	log := w.log.With().Str("correlation_id", payment.CorrelationID.String()).Logger()

	if !w.insert(ctx, payment, log) {
		return
	}

	processor, ok := w.submit(ctx, payment, log)
	if !ok {
		log.Warn().Msg("stopped before a processor accepted the payment")
		return
	}

	w.attribute(ctx, payment, processor, log)
}

// insert retries until the row is written. A duplicate id drops the payment.
func (w *Worker) insert(ctx context.Context, payment domain.Payment, log zerolog.Logger) bool {
	for {
		err := w.repo.Insert(ctx, payment.LogEntry())
		switch {
		case err == nil:
			return true
		case apperror.HasCode(err, apperror.CodeDuplicatePayment):
			log.Info().Msg("payment already logged, dropping")
			return false
		case apperror.HasCode(err, apperror.CodeMissingField):
			log.Error().Err(err).Msg("payment rejected by log table, dropping")
			return false
		}

		log.Error().Err(err).Msg("failed inserting payment into log, retrying")
		if !sleep(ctx, w.retryWait) {
			return false
		}
	}
}

// submit walks the processors round-robin until one accepts. The wait between
// attempts grows by a millisecond per attempt and never drops below retryWait.
func (w *Worker) submit(ctx context.Context, payment domain.Payment, log zerolog.Logger) (string, bool) {
	for attempts := 0; ; {
		target := w.targets[attempts%len(w.targets)]
		attempts++

		err := w.client.Submit(ctx, target, payment)
		if err == nil {
			return target.Name, true
		}
		log.Warn().Err(err).Str("processor", target.Name).Int("attempts", attempts).Msg("processor rejected payment")

		if !sleep(ctx, backoff(attempts, w.retryWait)) {
			return "", false
		}
	}
}

// attribute retries SetProcessedBy until it succeeds. The processor has
// already taken the payment, so cancelling ctx does not stop it; only
// attrTimeout does.
func (w *Worker) attribute(ctx context.Context, payment domain.Payment, processor string, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.attrTimeout)
	defer cancel()

	for {
		err := w.repo.SetProcessedBy(ctx, payment.CorrelationID, processor)
		if err == nil {
			log.Info().Str("processor", processor).Msg("payment processed")
			return
		}
		if apperror.HasCode(err, apperror.CodeNotFound) {
			log.Error().Str("processor", processor).Msg("logged payment disappeared before attribution")
			return
		}

		log.Error().Err(err).Str("processor", processor).Msg("failed setting processed_by, retrying")
		if !sleep(ctx, w.retryWait) {
			log.Error().Str("processor", processor).Msg("gave up setting processed_by, payment left unattributed")
			return
		}
	}
}

func backoff(attempts int, floor time.Duration) time.Duration {
	d := time.Duration(attempts) * time.Millisecond
	if d < floor {
		return floor
	}
	return d
}

// sleep waits for d or until ctx is done. It reports whether the full wait elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
