package dto

import (
	"encoding/json"
	"time"

	"payment-log/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRequest is the request body for POST /payments.
// CorrelationID takes any form uuid.Parse does: hyphenated or not, any case.
// Amount accepts a JSON number or a numeric string.
type PaymentRequest struct {
	CorrelationID uuid.UUID        `json:"correlationId" binding:"required"`
	Amount        *decimal.Decimal `json:"amount" binding:"required"`
}

// PaymentAcceptedResponse echoes an enqueued payment.
type PaymentAcceptedResponse struct {
	CorrelationID string      `json:"correlationId"`
	Amount        json.Number `json:"amount"`
	RequestedAt   string      `json:"requestedAt"`
}

// PaymentLogEntryResponse is one row of payments.log.
type PaymentLogEntryResponse struct {
	ID          string      `json:"id"`
	Amount      json.Number `json:"amount"`
	RequestedAt string      `json:"requestedAt"`
	ProcessedBy *string     `json:"processedBy"`
}

// PaymentLogListResponse wraps a page of log entries.
type PaymentLogListResponse struct {
	Items []PaymentLogEntryResponse `json:"items"`
	Count int                       `json:"count"`
}

// ProcessorSummaryResponse holds one processor's totals.
type ProcessorSummaryResponse struct {
	TotalRequests int64       `json:"totalRequests"`
	TotalAmount   json.Number `json:"totalAmount"`
}

// SummaryResponse maps processor name to totals. It is written without the
// response envelope.
type SummaryResponse map[string]ProcessorSummaryResponse

// Number renders a decimal as a JSON number without losing precision.
func Number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// Timestamp formats t the way every response does.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// NewPaymentAcceptedResponse converts an enqueued payment.
func NewPaymentAcceptedResponse(p *domain.Payment) PaymentAcceptedResponse {
	return PaymentAcceptedResponse{
		CorrelationID: p.CorrelationID.String(),
		Amount:        Number(p.Amount),
		RequestedAt:   Timestamp(p.RequestedAt),
	}
}

// NewPaymentLogEntryResponse converts a log entry.
func NewPaymentLogEntryResponse(e *domain.PaymentLogEntry) PaymentLogEntryResponse {
	return PaymentLogEntryResponse{
		ID:          e.ID.String(),
		Amount:      Number(e.Amount),
		RequestedAt: Timestamp(e.RequestedAt),
		ProcessedBy: e.ProcessedBy,
	}
}

// NewSummaryResponse converts a domain summary.
func NewSummaryResponse(s domain.Summary) SummaryResponse {
	out := make(SummaryResponse, len(s))
	for name, totals := range s {
		out[name] = ProcessorSummaryResponse{
			TotalRequests: totals.TotalRequests,
			TotalAmount:   Number(totals.TotalAmount),
		}
	}
	return out
}
