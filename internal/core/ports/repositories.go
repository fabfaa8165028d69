package ports

import (
	"context"
	"time"

	"payment-log/internal/core/domain"

	"github.com/google/uuid"
)

// PaymentLogRepository defines persistence operations on payments.log.
// There is no delete path; retention is handled outside this service.
type PaymentLogRepository interface {
	// Insert writes a new unprocessed entry. A reused id is rejected by the
	// primary key and surfaces as apperror.CodeDuplicatePayment.
	Insert(ctx context.Context, entry *domain.PaymentLogEntry) error
	// SetProcessedBy attributes an existing entry to a processor. Only
	// processed_by is touched.
	SetProcessedBy(ctx context.Context, id uuid.UUID, processor string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentLogEntry, error)
	ListByRequestedAt(ctx context.Context, params PaymentLogListParams) ([]domain.PaymentLogEntry, error)
	Summary(ctx context.Context, processors []string, from, to time.Time) (domain.Summary, error)
}

// PaymentLogListParams selects entries with requested_at in [From, To).
type PaymentLogListParams struct {
	From  time.Time
	To    time.Time
	Limit int
}

// SchemaMigrator applies the payments namespace and log table.
type SchemaMigrator interface {
	// Apply declares both objects in one transaction under an advisory lock.
	Apply(ctx context.Context) error
	// ApplySteps declares them one after the other without a transaction.
	ApplySteps(ctx context.Context) error
}
