package request

// CreateSubmissionRequest represents a public contact form submission
type CreateSubmissionRequest struct {
	FirstName   string  `json:"first_name" binding:"required,min=1,max=255"`
	LastName    string  `json:"last_name" binding:"required,min=1,max=255"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Street      *string `json:"street" binding:"omitempty,max=255"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	PostalCode  *string `json:"postal_code" binding:"omitempty,max=20"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
	ServiceType string  `json:"service_type" binding:"omitempty,max=100"`
	Message     string  `json:"message" binding:"required,max=5000"`
}

// UpdateSubmissionStatusRequest represents a submission status change
type UpdateSubmissionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmissionFilterRequest represents submission filter parameters
type SubmissionFilterRequest struct {
	Status  string `form:"status"`
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
