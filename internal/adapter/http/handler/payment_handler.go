package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"payment-log/internal/adapter/http/dto"
	"payment-log/internal/core/ports"
	"payment-log/pkg/apperror"
	"payment-log/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles the payment intake and payment log endpoints.
type PaymentHandler struct {
	paymentSvc   ports.PaymentService
	reportingSvc ports.ReportingService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService, reportingSvc ports.ReportingService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, reportingSvc: reportingSvc}
}

// Submit handles POST /payments.
func (h *PaymentHandler) Submit(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge(tooLarge.Limit))
			return
		}
		response.Error(c, apperror.Validation(dto.BindingMessage(err)))
		return
	}

	payment, err := h.paymentSvc.Submit(c.Request.Context(), ports.PaymentRequest{
		CorrelationID: req.CorrelationID,
		Amount:        *req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewPaymentAcceptedResponse(payment))
}

// Get handles GET /payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	entry, err := h.reportingSvc.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewPaymentLogEntryResponse(entry))
}

// List handles GET /payments?from&to&limit.
func (h *PaymentHandler) List(c *gin.Context) {
	from, to, err := parseWindow(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	limit := 0
	if l := c.Query("limit"); l != "" {
		if limit, err = strconv.Atoi(l); err != nil {
			response.Error(c, apperror.Validation("limit must be an integer"))
			return
		}
	}

	entries, err := h.reportingSvc.ListPayments(c.Request.Context(), from, to, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PaymentLogEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewPaymentLogEntryResponse(&entries[i]))
	}

	response.OK(c, dto.PaymentLogListResponse{Items: items, Count: len(items)})
}

// Summary handles GET /payments-summary?from&to. The body is the bare
// processor map, not the response envelope.
func (h *PaymentHandler) Summary(c *gin.Context) {
	from, to, err := parseWindow(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.reportingSvc.Summary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}

// parseWindow reads optional RFC 3339 from/to query parameters.
func parseWindow(c *gin.Context) (*time.Time, *time.Time, error) {
	from, err := parseTimeParam(c, "from")
	if err != nil {
		return nil, nil, err
	}
	to, err := parseTimeParam(c, "to")
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, apperror.Validation(name + " must be an RFC 3339 timestamp")
	}
	return &t, nil
}
