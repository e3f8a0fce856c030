package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/internal/application/service"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/request"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/response"
)

// TemplateHandler handles email template HTTP requests
type TemplateHandler struct {
	templateService *service.TemplateService
	activityService *service.ActivityService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *service.TemplateService, activityService *service.ActivityService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		activityService: activityService,
	}
}

// Create handles email template creation
func (h *TemplateHandler) Create(c *gin.Context) {
	var req request.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), &service.TemplateInput{
		Slug:    req.Slug,
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(GetUserID(c), GetUserEmail(c), "created", "email_template", strconv.FormatUint(uint64(template.ID), 10), nil)
	response.Created(c, "Template created successfully", template)
}

// Get handles retrieving a single template
func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template retrieved successfully", template)
}

// List handles listing all templates
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Templates retrieved successfully", templates)
}

// Update handles template updates
func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	var req request.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), id, &service.TemplateInput{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(GetUserID(c), GetUserEmail(c), "updated", "email_template", strconv.FormatUint(uint64(id), 10), nil)
	response.OK(c, "Template updated successfully", template)
}

// Delete handles template deletion
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(GetUserID(c), GetUserEmail(c), "deleted", "email_template", strconv.FormatUint(uint64(id), 10), nil)
	response.OK(c, "Template deleted successfully", nil)
}
