package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Window bounds used when a summary request omits from/to.
var (
	SummaryFromDefault = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)
	SummaryToDefault   = time.Date(9999, time.December, 31, 23, 59, 59, 999_000_000, time.UTC)
)

// ProcessorSummary aggregates the payments attributed to one processor.
type ProcessorSummary struct {
	TotalRequests int64
	TotalAmount   decimal.Decimal
}

// Summary maps processor name to its totals.
type Summary map[string]ProcessorSummary

// NewSummary returns a summary with a zero entry for every processor, so
// processors without rows in the window still appear.
func NewSummary(processors []string) Summary {
	s := make(Summary, len(processors))
	for _, name := range processors {
		s[name] = ProcessorSummary{TotalAmount: decimal.Zero}
	}
	return s
}
