package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/internal/application/service"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/request"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/response"
	"github.com/relocaid/relocaid-api/pkg/apperror"
)

// SettingsHandler handles company settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
	activityService *service.ActivityService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService, activityService *service.ActivityService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		activityService: activityService,
	}
}

// Get handles retrieving the company settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles company settings updates
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var fieldErrs []apperror.FieldError
	input := &service.UpdateSettingsInput{
		CompanyName:     req.CompanyName,
		Street:          req.Street,
		City:            req.City,
		PostalCode:      req.PostalCode,
		Country:         req.Country,
		Email:           req.Email,
		Phone:           req.Phone,
		VATNumber:       req.VATNumber,
		PaymentTermDays: req.PaymentTermDays,
		Currency:        req.Currency,
		DefaultTerms:    req.DefaultTerms,
		BankName:        req.BankName,
		IBAN:            req.IBAN,
		BIC:             req.BIC,
	}
	if req.DefaultTaxRate != nil {
		rate := parseDecimal("default_tax_rate", *req.DefaultTaxRate, &fieldErrs)
		input.DefaultTaxRate = &rate
	}
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(GetUserID(c), GetUserEmail(c), "updated", "settings", "1", nil)
	response.OK(c, "Settings updated successfully", settings)
}
