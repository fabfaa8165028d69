package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"payment-log/internal/core/domain"
	"payment-log/internal/core/ports"
	"payment-log/pkg/apperror"

	"github.com/google/uuid"
)

const defaultTimeout = 5 * time.Second

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// submitPayload is the body external processors accept.
type submitPayload struct {
	CorrelationID uuid.UUID   `json:"correlationId"`
	Amount        json.Number `json:"amount"`
	RequestedAt   time.Time   `json:"requestedAt"`
}

// HTTPClient implements ports.ProcessorClient over JSON/HTTP.
type HTTPClient struct {
	doer Doer
}

// NewHTTPClient wraps doer. A nil doer gets an *http.Client with a short timeout.
func NewHTTPClient(doer Doer) *HTTPClient {
	if doer == nil {
		doer = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPClient{doer: doer}
}

// Submit posts the payment to target. Any non-2xx status is an error.
func (c *HTTPClient) Submit(ctx context.Context, target ports.ProcessorTarget, payment domain.Payment) error {
	body, err := json.Marshal(submitPayload{
		CorrelationID: payment.CorrelationID,
		Amount:        json.Number(payment.Amount.String()),
		RequestedAt:   payment.RequestedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal payment for %s: %w", target.Name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request for %s: %w", target.Name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return apperror.ErrProcessorUnavailable(fmt.Errorf("%s: %w", target.Name, err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.ErrProcessorUnavailable(fmt.Errorf("%s responded %d", target.Name, resp.StatusCode))
	}
	return nil
}
