package ports

import (
	"context"
	"time"

	"payment-log/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Infrastructure Ports ---

// ProcessorTarget is an external payment processor.
type ProcessorTarget struct {
	Name     string
	Endpoint string
}

// ProcessorClient submits a payment to one external processor.
// A nil error means the processor accepted it.
type ProcessorClient interface {
	Submit(ctx context.Context, target ProcessorTarget, payment domain.Payment) error
}

// IntakeGuard drops repeated correlation ids before they reach the queue.
type IntakeGuard interface {
	// FirstSeen atomically records the id. Returns true if it was not seen within ttl.
	FirstSeen(ctx context.Context, id uuid.UUID, ttl time.Duration) (bool, error)
	// Forget releases an id that was recorded but never enqueued.
	Forget(ctx context.Context, id uuid.UUID) error
}

// --- Service Ports (Business Logic) ---

// PaymentService accepts payment requests for background processing.
type PaymentService interface {
	Submit(ctx context.Context, req PaymentRequest) (*domain.Payment, error)
}

// PaymentRequest holds validated intake input.
type PaymentRequest struct {
	CorrelationID uuid.UUID
	Amount        decimal.Decimal
}

// ReportingService reads payments.log.
type ReportingService interface {
	GetPayment(ctx context.Context, id uuid.UUID) (*domain.PaymentLogEntry, error)
	ListPayments(ctx context.Context, from, to *time.Time, limit int) ([]domain.PaymentLogEntry, error)
	Summary(ctx context.Context, from, to *time.Time) (domain.Summary, error)
}
