package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/internal/application/service"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/request"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/response"
	"github.com/relocaid/relocaid-api/pkg/apperror"
	"github.com/relocaid/relocaid-api/pkg/pagination"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService  *service.InvoiceService
	activityService *service.ActivityService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, activityService *service.ActivityService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		activityService: activityService,
	}
}

func parseLineItems(reqs []request.LineItemRequest, errs *[]apperror.FieldError) []service.LineItemInput {
	items := make([]service.LineItemInput, 0, len(reqs))
	for i, item := range reqs {
		quantity := parseDecimal(fmt.Sprintf("items[%d].quantity", i), item.Quantity, errs)
		unitPrice := parseDecimal(fmt.Sprintf("items[%d].unit_price", i), item.UnitPrice, errs)
		if quantity.Sign() <= 0 {
			*errs = append(*errs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must be positive",
			})
		}
		if unitPrice.Sign() < 0 {
			*errs = append(*errs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "must not be negative",
			})
		}
		items = append(items, service.LineItemInput{
			Description: item.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}
	return items
}

// Create handles invoice creation
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var fieldErrs []apperror.FieldError
	input := &service.CreateInvoiceInput{
		SubmissionID:  req.SubmissionID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientAddress: req.ClientAddress,
		IssueDate:     parseDate("issue_date", req.IssueDate, &fieldErrs),
		DueDate:       parseDate("due_date", req.DueDate, &fieldErrs),
		ServiceDate:   parseDate("service_date", req.ServiceDate, &fieldErrs),
		Currency:      req.Currency,
		Notes:         req.Notes,
		Terms:         req.Terms,
		Items:         parseLineItems(req.Items, &fieldErrs),
		CreatedBy:     GetUserID(c),
	}
	if req.TaxRate != nil {
		rate := parseDecimal("tax_rate", *req.TaxRate, &fieldErrs)
		input.TaxRate = &rate
	}
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(GetUserID(c), GetUserEmail(c), "created", "invoice", strconv.FormatUint(uint64(invoice.ID), 10), nil)
	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles retrieving a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// List handles listing invoices with filters
func (h *InvoiceHandler) List(c *gin.Context) {
	var req request.InvoiceFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
		ClientName: req.ClientName,
	}

	if req.Status != "" {
		status := enum.InvoiceStatus(req.Status)
		if err := status.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		params.Status = &status
	}

	if req.IssuedFrom != "" {
		if from, err := time.Parse("2006-01-02", req.IssuedFrom); err == nil {
			params.IssuedFrom = &from
		}
	}
	if req.IssuedTo != "" {
		if to, err := time.Parse("2006-01-02", req.IssuedTo); err == nil {
			params.IssuedTo = &to
		}
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Update handles invoice updates
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var fieldErrs []apperror.FieldError
	input := &service.UpdateInvoiceInput{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientAddress: req.ClientAddress,
		Currency:      req.Currency,
		Notes:         req.Notes,
		Terms:         req.Terms,
	}
	if req.IssueDate != nil {
		input.IssueDate = parseDate("issue_date", *req.IssueDate, &fieldErrs)
	}
	if req.DueDate != nil {
		input.DueDate = parseDate("due_date", *req.DueDate, &fieldErrs)
	}
	if req.ServiceDate != nil {
		input.ServiceDate = parseDate("service_date", *req.ServiceDate, &fieldErrs)
	}
	if req.TaxRate != nil {
		rate := parseDecimal("tax_rate", *req.TaxRate, &fieldErrs)
		input.TaxRate = &rate
	}
	if req.Status != nil {
		status := enum.InvoiceStatus(*req.Status)
		input.Status = &status
	}
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Status != nil {
		details := "status set to " + *req.Status
		h.activityService.Record(GetUserID(c), GetUserEmail(c), "status_changed", "invoice", strconv.FormatUint(uint64(id), 10), &details)
	} else {
		h.activityService.Record(GetUserID(c), GetUserEmail(c), "updated", "invoice", strconv.FormatUint(uint64(id), 10), nil)
	}
	response.OK(c, "Invoice updated successfully", invoice)
}

// ReplaceItems handles swapping the full set of line items
func (h *InvoiceHandler) ReplaceItems(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.ReplaceItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var fieldErrs []apperror.FieldError
	items := parseLineItems(req.Items, &fieldErrs)
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	invoice, err := h.invoiceService.ReplaceItems(c.Request.Context(), id, items)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(GetUserID(c), GetUserEmail(c), "items_replaced", "invoice", strconv.FormatUint(uint64(id), 10), nil)
	response.OK(c, "Invoice items replaced successfully", invoice)
}

// Delete handles invoice deletion
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(GetUserID(c), GetUserEmail(c), "deleted", "invoice", strconv.FormatUint(uint64(id), 10), nil)
	response.OK(c, "Invoice deleted successfully", nil)
}

// SendEmail handles delivering the invoice to the client by email
func (h *InvoiceHandler) SendEmail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.SendInvoiceEmail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(GetUserID(c), GetUserEmail(c), "emailed", "invoice", strconv.FormatUint(uint64(id), 10), nil)
	response.OK(c, "Invoice email sent successfully", invoice)
}
