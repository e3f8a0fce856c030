package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/internal/application/service"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/request"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/response"
)

// FAQHandler handles FAQ HTTP requests
type FAQHandler struct {
	faqService *service.FAQService
}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler(faqService *service.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

// ListPublic handles the public FAQ listing, published entries only
func (h *FAQHandler) ListPublic(c *gin.Context) {
	faqs, err := h.faqService.ListFAQs(c.Request.Context(), true)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "FAQs retrieved successfully", faqs)
}

// List handles the dashboard FAQ listing, including unpublished entries
func (h *FAQHandler) List(c *gin.Context) {
	faqs, err := h.faqService.ListFAQs(c.Request.Context(), false)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "FAQs retrieved successfully", faqs)
}

// Get handles retrieving a single FAQ entry
func (h *FAQHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid FAQ ID")
		return
	}

	faq, err := h.faqService.GetFAQ(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "FAQ retrieved successfully", faq)
}

// Create handles FAQ creation
func (h *FAQHandler) Create(c *gin.Context) {
	var req request.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	faq, err := h.faqService.CreateFAQ(c.Request.Context(), &service.FAQInput{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		SortOrder: req.SortOrder,
		Published: req.Published,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "FAQ created successfully", faq)
}

// Update handles FAQ updates
func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid FAQ ID")
		return
	}

	var req request.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	faq, err := h.faqService.UpdateFAQ(c.Request.Context(), id, &service.FAQInput{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		SortOrder: req.SortOrder,
		Published: req.Published,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "FAQ updated successfully", faq)
}

// Delete handles FAQ deletion
func (h *FAQHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid FAQ ID")
		return
	}

	if err := h.faqService.DeleteFAQ(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "FAQ deleted successfully", nil)
}
