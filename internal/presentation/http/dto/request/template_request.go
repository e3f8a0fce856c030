package request

// CreateTemplateRequest represents an email template creation request
type CreateTemplateRequest struct {
	Slug    string `json:"slug" binding:"required,min=1,max=100"`
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Subject string `json:"subject" binding:"required,min=1,max=255"`
	Body    string `json:"body" binding:"required"`
}

// UpdateTemplateRequest represents an email template update request. The
// slug cannot be changed.
type UpdateTemplateRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Subject string `json:"subject" binding:"required,min=1,max=255"`
	Body    string `json:"body" binding:"required"`
}
