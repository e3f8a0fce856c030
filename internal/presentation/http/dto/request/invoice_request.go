package request

// LineItemRequest represents one line item of an invoice request. Quantity
// and unit price arrive as strings so client-side float formatting never
// leaks into the stored amounts.
type LineItemRequest struct {
	Description string `json:"description" binding:"required,min=1"`
	Quantity    string `json:"quantity" binding:"required"`
	UnitPrice   string `json:"unit_price" binding:"required"`
}

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	SubmissionID  *uint             `json:"submission_id"`
	ClientName    string            `json:"client_name" binding:"omitempty,max=255"`
	ClientEmail   string            `json:"client_email" binding:"omitempty,email"`
	ClientAddress string            `json:"client_address"`
	IssueDate     string            `json:"issue_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate       string            `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ServiceDate   string            `json:"service_date" binding:"omitempty,datetime=2006-01-02"`
	TaxRate       *string           `json:"tax_rate"`
	Currency      string            `json:"currency" binding:"omitempty,len=3"`
	Notes         *string           `json:"notes"`
	Terms         *string           `json:"terms"`
	Items         []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents an invoice update request
type UpdateInvoiceRequest struct {
	ClientName    *string `json:"client_name" binding:"omitempty,min=1,max=255"`
	ClientEmail   *string `json:"client_email" binding:"omitempty,email"`
	ClientAddress *string `json:"client_address"`
	IssueDate     *string `json:"issue_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate       *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ServiceDate   *string `json:"service_date" binding:"omitempty,datetime=2006-01-02"`
	TaxRate       *string `json:"tax_rate"`
	Currency      *string `json:"currency" binding:"omitempty,len=3"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
	Terms         *string `json:"terms"`
}

// ReplaceItemsRequest represents a full line item replacement request
type ReplaceItemsRequest struct {
	Items []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceFilterRequest represents invoice filter parameters
type InvoiceFilterRequest struct {
	Status     string `form:"status"`
	ClientName string `form:"client_name"`
	IssuedFrom string `form:"issued_from"`
	IssuedTo   string `form:"issued_to"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
