package dto

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func bindPayment(body string) error {
	req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	var p PaymentRequest
	return binding.JSON.Bind(req, &p)
}

func TestBindingMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"both fields missing", bindPayment(`{}`), "correlationId is required; amount is required"},
		{"array body", bindPayment(`[]`), "request body must be a JSON object"},
		{"empty body", io.EOF, "request body is empty"},
		{"unknown", errors.New("boom"), "request body has an invalid value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BindingMessage(tt.err))
		})
	}
}

func TestPaymentRequest_UppercaseUUID(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "/payments",
		bytes.NewBufferString(`{"correlationId":"550E8400E29B41D4A716446655440000","amount":1}`))
	req.Header.Set("Content-Type", "application/json")

	var p PaymentRequest
	assert.NoError(t, binding.JSON.Bind(req, &p))
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", p.CorrelationID.String())
}
