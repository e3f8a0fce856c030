package entity

import "time"

// Well-known template slugs seeded at startup
const (
	TemplateInvoiceIssued   = "invoice-issued"
	TemplatePaymentReceived = "payment-received"
)

// EmailTemplate stores an editable email template keyed by slug
type EmailTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the EmailTemplate model
func (EmailTemplate) TableName() string {
	return "email_templates"
}
