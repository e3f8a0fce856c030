package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/internal/application/service"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/response"
	"github.com/relocaid/relocaid-api/pkg/pagination"
)

// ActivityHandler handles activity log HTTP requests
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List handles listing the activity log
func (h *ActivityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	entityType := c.Query("entity_type")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.activityService.ListActivity(c.Request.Context(), params, entityType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Activity retrieved successfully", result)
}
