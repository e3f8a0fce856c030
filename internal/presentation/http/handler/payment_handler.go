package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/internal/application/service"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/request"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/response"
	"github.com/relocaid/relocaid-api/pkg/apperror"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService  *service.PaymentService
	activityService *service.ActivityService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService, activityService *service.ActivityService) *PaymentHandler {
	return &PaymentHandler{
		paymentService:  paymentService,
		activityService: activityService,
	}
}

// Record handles appending a payment to an invoice
func (h *PaymentHandler) Record(c *gin.Context) {
	invoiceID, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var fieldErrs []apperror.FieldError
	amount := parseDecimal("amount", req.Amount, &fieldErrs)
	paymentDate := parseDate("payment_date", req.PaymentDate, &fieldErrs)
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	input := &service.RecordPaymentInput{
		Amount:      amount,
		PaymentDate: paymentDate,
		Method:      enum.PaymentMethod(req.Method),
		Reference:   req.Reference,
		Notes:       req.Notes,
		RecordedBy:  GetUserID(c),
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), invoiceID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	details := payment.Amount.StringFixed(2) + " via " + string(payment.Method)
	h.activityService.Record(GetUserID(c), GetUserEmail(c), "payment_recorded", "invoice", strconv.FormatUint(uint64(invoiceID), 10), &details)
	response.Created(c, "Payment recorded successfully", payment)
}

// List handles retrieving the payment history of an invoice
func (h *PaymentHandler) List(c *gin.Context) {
	invoiceID, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), invoiceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}
