package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/relocaid/relocaid-api/internal/domain/enum"
)

// Invoice represents a billing document issued to a client
type Invoice struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	InvoiceNumber string `gorm:"size:100;uniqueIndex;not null" json:"invoice_number"`
	SubmissionID  *uint  `gorm:"index" json:"submission_id,omitempty"`

	// Client snapshot, copied from the submission at creation time and not
	// kept in sync afterwards.
	ClientName    string `gorm:"size:255;not null" json:"client_name"`
	ClientEmail   string `gorm:"size:255" json:"client_email"`
	ClientAddress string `gorm:"type:text" json:"client_address"`

	IssueDate   time.Time  `gorm:"type:date;not null" json:"issue_date"`
	DueDate     time.Time  `gorm:"type:date;not null" json:"due_date"`
	ServiceDate *time.Time `gorm:"type:date" json:"service_date,omitempty"`

	Subtotal  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tax_rate"`
	TaxAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"tax_amount"`
	Total     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total"`
	Currency  string          `gorm:"size:3;default:'EUR'" json:"currency"`

	Status      enum.InvoiceStatus `gorm:"size:20;default:'draft';index" json:"status"`
	PaidAmount  decimal.Decimal    `gorm:"type:decimal(15,2);not null;default:0" json:"paid_amount"`
	PaidAt      *time.Time         `json:"paid_at,omitempty"`
	EmailSentAt *time.Time         `json:"email_sent_at,omitempty"`

	Notes *string `gorm:"type:text" json:"notes,omitempty"`
	Terms *string `gorm:"type:text" json:"terms,omitempty"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationships
	Submission *Submission `gorm:"foreignKey:SubmissionID" json:"submission,omitempty"`
	Items      []LineItem  `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	Payments   []Payment   `gorm:"foreignKey:InvoiceID" json:"-"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// LineItem represents a priced row on an invoice
type LineItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	InvoiceID   uint            `gorm:"not null;index" json:"invoice_id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	SortOrder   int             `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "invoice_line_items"
}
