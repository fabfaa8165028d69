package dto

import (
	"encoding/json"
	"testing"
	"time"

	"payment-log/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRequest_AmountForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"correlationId":"4a7901b8-7d26-4d9d-aa19-4dc1c7cf60b3","amount":19.90}`, "19.9"},
		{"string", `{"correlationId":"4a7901b8-7d26-4d9d-aa19-4dc1c7cf60b3","amount":"0.000000000000000001"}`, "0.000000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PaymentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			require.NotNil(t, req.Amount)
			assert.Equal(t, tt.want, req.Amount.String())
		})
	}
}

func TestNewPaymentLogEntryResponse(t *testing.T) {
	name := "fallback"
	e := &domain.PaymentLogEntry{
		ID:          uuid.MustParse("4a7901b8-7d26-4d9d-aa19-4dc1c7cf60b3"),
		Amount:      decimal.RequireFromString("12345678901234567890.123456789"),
		RequestedAt: time.Date(2025, 7, 15, 12, 0, 0, 500_000_000, time.FixedZone("BRT", -3*60*60)),
		ProcessedBy: &name,
	}

	body, err := json.Marshal(NewPaymentLogEntryResponse(e))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "4a7901b8-7d26-4d9d-aa19-4dc1c7cf60b3",
		"amount": 12345678901234567890.123456789,
		"requestedAt": "2025-07-15T15:00:00.5Z",
		"processedBy": "fallback"
	}`, string(body))
	assert.Contains(t, string(body), `"amount":12345678901234567890.123456789`)
}

func TestNewPaymentLogEntryResponse_Unprocessed(t *testing.T) {
	e := domain.NewPaymentLogEntry(uuid.New(), decimal.NewFromInt(3), time.Now())

	body, err := json.Marshal(NewPaymentLogEntryResponse(e))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"processedBy":null`)
}

func TestNewSummaryResponse(t *testing.T) {
	s := domain.NewSummary([]string{"default", "fallback"})
	s["default"] = domain.ProcessorSummary{TotalRequests: 2, TotalAmount: decimal.RequireFromString("39.80")}

	body, err := json.Marshal(NewSummaryResponse(s))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"default": {"totalRequests": 2, "totalAmount": 39.8},
		"fallback": {"totalRequests": 0, "totalAmount": 0}
	}`, string(body))
}
