package integration

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"payment-log/internal/core/domain"
	"payment-log/internal/core/ports"
	"payment-log/pkg/apperror"

	"github.com/google/uuid"
)

// inMemoryPaymentLogRepo mirrors payments.log: id is the primary key, amount
// and requested_at are required, processed_by is nullable.
type inMemoryPaymentLogRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]domain.PaymentLogEntry
}

var _ ports.PaymentLogRepository = (*inMemoryPaymentLogRepo)(nil)

func newInMemoryPaymentLogRepo() *inMemoryPaymentLogRepo {
	return &inMemoryPaymentLogRepo{entries: make(map[uuid.UUID]domain.PaymentLogEntry)}
}

func (r *inMemoryPaymentLogRepo) Insert(_ context.Context, e *domain.PaymentLogEntry) error {
	if e.RequestedAt.IsZero() {
		return apperror.ErrMissingField(errors.New("requested_at is null"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[e.ID]; exists {
		return apperror.ErrDuplicatePayment(errors.New("duplicate key value violates unique constraint \"log_pkey\""))
	}
	r.entries[e.ID] = domain.PaymentLogEntry{ID: e.ID, Amount: e.Amount, RequestedAt: e.RequestedAt}
	return nil
}

func (r *inMemoryPaymentLogRepo) SetProcessedBy(_ context.Context, id uuid.UUID, processor string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return apperror.ErrNotFound("Payment")
	}
	e.ProcessedBy = &processor
	r.entries[id] = e
	return nil
}

func (r *inMemoryPaymentLogRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.PaymentLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *inMemoryPaymentLogRepo) ListByRequestedAt(_ context.Context, params ports.PaymentLogListParams) ([]domain.PaymentLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PaymentLogEntry, 0)
	for _, e := range r.entries {
		if inWindow(e.RequestedAt, params.From, params.To) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedAt.Before(out[j].RequestedAt) })
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (r *inMemoryPaymentLogRepo) Summary(_ context.Context, processors []string, from, to time.Time) (domain.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	summary := domain.NewSummary(processors)
	for _, e := range r.entries {
		if e.ProcessedBy == nil || !inWindow(e.RequestedAt, from, to) {
			continue
		}
		totals, ok := summary[*e.ProcessedBy]
		if !ok {
			continue
		}
		totals.TotalRequests++
		totals.TotalAmount = totals.TotalAmount.Add(e.Amount)
		summary[*e.ProcessedBy] = totals
	}
	return summary, nil
}

func (r *inMemoryPaymentLogRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *inMemoryPaymentLogRepo) unprocessed() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.entries {
		if !e.IsProcessed() {
			n++
		}
	}
	return n
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
