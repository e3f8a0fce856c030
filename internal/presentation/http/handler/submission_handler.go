package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/internal/application/service"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/request"
	"github.com/relocaid/relocaid-api/internal/presentation/http/dto/response"
	"github.com/relocaid/relocaid-api/pkg/pagination"
)

// SubmissionHandler handles contact submission HTTP requests
type SubmissionHandler struct {
	submissionService *service.SubmissionService
	activityService   *service.ActivityService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService *service.SubmissionService, activityService *service.ActivityService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		activityService:   activityService,
	}
}

// Create handles the public contact form endpoint
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req request.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateSubmissionInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Street:      req.Street,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	}

	submission, err := h.submissionService.CreateSubmission(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The public form only gets the reference back
	response.Created(c, "Submission received", gin.H{
		"reference": submission.Reference,
	})
}

// Get handles retrieving a single submission
func (h *SubmissionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid submission ID")
		return
	}

	submission, err := h.submissionService.GetSubmission(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Submission retrieved successfully", submission)
}

// List handles listing submissions with filters
func (h *SubmissionHandler) List(c *gin.Context) {
	var req request.SubmissionFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SubmissionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
		Search: req.Search,
	}

	if req.Status != "" {
		status := enum.SubmissionStatus(req.Status)
		if err := status.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		params.Status = &status
	}

	result, err := h.submissionService.ListSubmissions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Submissions retrieved successfully", result)
}

// UpdateStatus handles moving a submission through its workflow
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid submission ID")
		return
	}

	var req request.UpdateSubmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	submission, err := h.submissionService.UpdateSubmissionStatus(c.Request.Context(), id, enum.SubmissionStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	details := "status set to " + req.Status
	h.activityService.Record(GetUserID(c), GetUserEmail(c), "status_changed", "submission", strconv.FormatUint(uint64(id), 10), &details)
	response.OK(c, "Submission updated successfully", submission)
}

// Delete handles submission deletion
func (h *SubmissionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid submission ID")
		return
	}

	if err := h.submissionService.DeleteSubmission(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(GetUserID(c), GetUserEmail(c), "deleted", "submission", strconv.FormatUint(uint64(id), 10), nil)
	response.OK(c, "Submission deleted successfully", nil)
}
