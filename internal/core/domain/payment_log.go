package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentLogEntry is one row of payments.log: a payment request and, once
// processed, the processor that handled it.
//
// ID, Amount and RequestedAt are fixed at creation. ProcessedBy starts nil and
// is set once by the worker; the table itself does not enforce that.
type PaymentLogEntry struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	RequestedAt time.Time       `json:"requested_at"`
	ProcessedBy *string         `json:"processed_by,omitempty"`
}

// NewPaymentLogEntry builds an unprocessed entry.
func NewPaymentLogEntry(id uuid.UUID, amount decimal.Decimal, requestedAt time.Time) *PaymentLogEntry {
	return &PaymentLogEntry{
		ID:          id,
		Amount:      amount,
		RequestedAt: requestedAt,
	}
}

// IsProcessed returns true once a processor has been attributed.
func (e *PaymentLogEntry) IsProcessed() bool {
	return e.ProcessedBy != nil && *e.ProcessedBy != ""
}

// Payment is a payment request travelling from intake through the worker
// to an external processor.
type Payment struct {
	CorrelationID uuid.UUID
	Amount        decimal.Decimal
	RequestedAt   time.Time
}

// LogEntry converts the payment into the row the worker inserts.
func (p Payment) LogEntry() *PaymentLogEntry {
	return NewPaymentLogEntry(p.CorrelationID, p.Amount, p.RequestedAt)
}
