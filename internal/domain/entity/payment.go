package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/relocaid/relocaid-api/internal/domain/enum"
)

// Payment represents one recorded transfer of money against an invoice.
// Payments are append-only; there is no update or void operation.
type Payment struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	InvoiceID   uint               `gorm:"not null;index" json:"invoice_id"`
	Amount      decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaymentDate time.Time          `gorm:"type:date;not null" json:"payment_date"`
	Method      enum.PaymentMethod `gorm:"size:30;not null" json:"method"`
	Reference   *string            `gorm:"size:255" json:"reference,omitempty"`
	Notes       *string            `gorm:"type:text" json:"notes,omitempty"`
	RecordedBy  *uuid.UUID         `gorm:"type:uuid" json:"recorded_by,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
