package service

import (
	"context"
	"fmt"
	"time"

	"payment-log/internal/core/domain"
	"payment-log/internal/core/ports"
	"payment-log/pkg/apperror"

	"github.com/google/uuid"
)

const maxListLimit = 1000

// reportingService implements ports.ReportingService.
type reportingService struct {
	repo       ports.PaymentLogRepository
	processors []string
}

// NewReportingService creates a new reporting service. processors are the
// names every summary reports, in configuration order.
func NewReportingService(repo ports.PaymentLogRepository, processors []string) ports.ReportingService {
	return &reportingService{
		repo:       repo,
		processors: processors,
	}
}

// GetPayment returns a single log entry.
func (s *reportingService) GetPayment(ctx context.Context, id uuid.UUID) (*domain.PaymentLogEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if entry == nil {
		return nil, apperror.ErrNotFound("Payment")
	}
	return entry, nil
}

// ListPayments returns entries requested in [from, to), oldest first.
func (s *reportingService) ListPayments(ctx context.Context, from, to *time.Time, limit int) ([]domain.PaymentLogEntry, error) {
	start, end := window(from, to)
	if end.Before(start) {
		return nil, apperror.Validation("from must not be after to")
	}
	if limit < 0 {
		return nil, apperror.Validation("limit must not be negative")
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, err := s.repo.ListByRequestedAt(ctx, ports.PaymentLogListParams{From: start, To: end, Limit: limit})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payments: %w", err))
	}
	return entries, nil
}

// Summary totals processed payments per processor over [from, to).
func (s *reportingService) Summary(ctx context.Context, from, to *time.Time) (domain.Summary, error) {
	start, end := window(from, to)

	summary, err := s.repo.Summary(ctx, s.processors, start, end)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("payments summary: %w", err))
	}
	return summary, nil
}

// window fills missing bounds with the widest representable range.
func window(from, to *time.Time) (time.Time, time.Time) {
	start, end := domain.SummaryFromDefault, domain.SummaryToDefault
	if from != nil {
		start = from.UTC()
	}
	if to != nil {
		end = to.UTC()
	}
	return start, end
}
