package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-log/internal/core/domain"
	"payment-log/internal/core/ports"
	"payment-log/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// SQLSTATE codes the repository translates.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

const defaultListLimit = 100

// PaymentLogRepo implements ports.PaymentLogRepository.
type PaymentLogRepo struct {
	pool Pool
}

// NewPaymentLogRepo creates a new PaymentLogRepo.
func NewPaymentLogRepo(pool Pool) *PaymentLogRepo {
	return &PaymentLogRepo{pool: pool}
}

// Insert writes an unprocessed entry. processed_by is never written here.
// A zero RequestedAt is sent as NULL so the store's not-null constraint rejects it.
func (r *PaymentLogRepo) Insert(ctx context.Context, e *domain.PaymentLogEntry) error {
	query := `INSERT INTO payments.log (id, amount, requested_at) VALUES ($1, $2, $3)`

	var requestedAt any
	if !e.RequestedAt.IsZero() {
		requestedAt = e.RequestedAt
	}

	_, err := r.pool.Exec(ctx, query, e.ID, e.Amount, requestedAt)
	if err != nil {
		return mapWriteError("insert payment log", err)
	}
	return nil
}

// SetProcessedBy attributes an entry to a processor. amount and requested_at are untouched.
func (r *PaymentLogRepo) SetProcessedBy(ctx context.Context, id uuid.UUID, processor string) error {
	query := `UPDATE payments.log SET processed_by = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, processor)
	if err != nil {
		return mapWriteError("set processed_by", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("Payment")
	}
	return nil
}

// GetByID fetches an entry by id. Returns nil, nil if absent.
func (r *PaymentLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentLogEntry, error) {
	query := `SELECT id, amount, requested_at, processed_by FROM payments.log WHERE id = $1`

	e := &domain.PaymentLogEntry{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&e.ID, &e.Amount, &e.RequestedAt, &e.ProcessedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment log by id: %w", err)
	}
	return e, nil
}

// ListByRequestedAt returns entries with requested_at in [From, To), oldest first.
func (r *PaymentLogRepo) ListByRequestedAt(ctx context.Context, params ports.PaymentLogListParams) ([]domain.PaymentLogEntry, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT id, amount, requested_at, processed_by FROM payments.log
		WHERE requested_at >= $1 AND requested_at < $2
		ORDER BY requested_at LIMIT $3`

	rows, err := r.pool.Query(ctx, query, params.From, params.To, limit)
	if err != nil {
		return nil, fmt.Errorf("list payment log: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.PaymentLogEntry, 0)
	for rows.Next() {
		e := domain.PaymentLogEntry{}
		if err := rows.Scan(&e.ID, &e.Amount, &e.RequestedAt, &e.ProcessedBy); err != nil {
			return nil, fmt.Errorf("scan payment log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment log rows: %w", err)
	}
	return entries, nil
}

// Summary totals requests and amounts per processor over [from, to).
// Every processor in the list is present in the result, zeroed when it has no rows.
func (r *PaymentLogRepo) Summary(ctx context.Context, processors []string, from, to time.Time) (domain.Summary, error) {
	query := `SELECT processed_by, COUNT(*) AS total_requests, COALESCE(SUM(amount), 0) AS total_amount
		FROM payments.log
		WHERE processed_by = ANY($1) AND requested_at >= $2 AND requested_at < $3
		GROUP BY processed_by`

	summary := domain.NewSummary(processors)

	rows, err := r.pool.Query(ctx, query, processors, from, to)
	if err != nil {
		return nil, fmt.Errorf("summarize payment log: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			count int64
			total decimal.Decimal
		)
		if err := rows.Scan(&name, &count, &total); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		summary[name] = domain.ProcessorSummary{TotalRequests: count, TotalAmount: total}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary rows: %w", err)
	}
	return summary, nil
}

// mapWriteError turns constraint violations into typed errors for the writer.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.ErrDuplicatePayment(fmt.Errorf("%s: %w", op, err))
		case pgNotNullViolation:
			return apperror.ErrMissingField(fmt.Errorf("%s: %w", op, err))
		}
	}
	return apperror.ErrDatabaseError(fmt.Errorf("%s: %w", op, err))
}
