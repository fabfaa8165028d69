package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"payment-log/internal/core/domain"
	"payment-log/internal/core/ports"
	"payment-log/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService. Accepted payments are
// buffered in a bounded queue that the Worker drains.
type PaymentServiceImpl struct {
	mu       sync.RWMutex
	closed   bool
	queue    chan domain.Payment
	guard    ports.IntakeGuard
	guardTTL time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewPaymentService creates a PaymentServiceImpl with a queue of queueSize.
// guard may be nil, in which case duplicates are only caught by the table's primary key.
func NewPaymentService(queueSize int, guard ports.IntakeGuard, guardTTL time.Duration, log zerolog.Logger) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		queue:    make(chan domain.Payment, queueSize),
		guard:    guard,
		guardTTL: guardTTL,
		now:      time.Now,
		log:      log,
	}
}

// Queue is the receive side consumed by the Worker.
func (s *PaymentServiceImpl) Queue() <-chan domain.Payment {
	return s.queue
}

// Close stops intake and closes the queue, so the Worker returns once the
// buffered payments are done. Submit fails with ErrQueueFull afterwards.
func (s *PaymentServiceImpl) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
}

// Submit stamps requested_at and enqueues the payment. It never blocks.
func (s *PaymentServiceImpl) Submit(ctx context.Context, req ports.PaymentRequest) (*domain.Payment, error) {
	if req.CorrelationID == uuid.Nil {
		return nil, apperror.Validation("correlationId is required")
	}

	guarded := false
	if s.guard != nil {
		first, err := s.guard.FirstSeen(ctx, req.CorrelationID, s.guardTTL)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("correlation_id", req.CorrelationID.String()).Msg("intake guard unavailable, relying on primary key")
		case !first:
			return nil, apperror.ErrDuplicatePayment(fmt.Errorf("correlation id %s already submitted", req.CorrelationID))
		default:
			guarded = true
		}
	}

	payment := domain.Payment{
		CorrelationID: req.CorrelationID,
		Amount:        req.Amount,
		RequestedAt:   s.now().UTC(),
	}

	if s.enqueue(payment) {
		return &payment, nil
	}

	if guarded {
		if err := s.guard.Forget(ctx, req.CorrelationID); err != nil {
			s.log.Warn().Err(err).Str("correlation_id", req.CorrelationID.String()).Msg("failed to release intake guard")
		}
	}
	s.log.Warn().Int("queue_size", cap(s.queue)).Msg("payment queue full or closed, rejecting")
	return nil, apperror.ErrQueueFull()
}

func (s *PaymentServiceImpl) enqueue(payment domain.Payment) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.queue <- payment:
		return true
	default:
		return false
	}
}
