package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanySettings holds the single row of company-wide configuration used
// to pre-fill new invoices and render documents.
type CompanySettings struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	CompanyName string  `gorm:"size:255;not null" json:"company_name"`
	Street      string  `gorm:"size:255" json:"street"`
	City        string  `gorm:"size:100" json:"city"`
	PostalCode  string  `gorm:"size:20" json:"postal_code"`
	Country     string  `gorm:"size:100" json:"country"`
	Email       string  `gorm:"size:255" json:"email"`
	Phone       string  `gorm:"size:50" json:"phone"`
	VATNumber   *string `gorm:"size:50" json:"vat_number,omitempty"`

	DefaultTaxRate  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:19" json:"default_tax_rate"`
	PaymentTermDays int             `gorm:"not null;default:14" json:"payment_term_days"`
	Currency        string          `gorm:"size:3;default:'EUR'" json:"currency"`
	DefaultTerms    *string         `gorm:"type:text" json:"default_terms,omitempty"`

	BankName *string `gorm:"size:255" json:"bank_name,omitempty"`
	IBAN     *string `gorm:"size:50" json:"iban,omitempty"`
	BIC      *string `gorm:"size:20" json:"bic,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultCompanySettings returns the settings row written on first startup
func DefaultCompanySettings() *CompanySettings {
	return &CompanySettings{
		CompanyName:     "Relocaid GmbH",
		Country:         "Germany",
		DefaultTaxRate:  decimal.NewFromInt(19),
		PaymentTermDays: 14,
		Currency:        "EUR",
	}
}

// TableName returns the table name for the CompanySettings model
func (CompanySettings) TableName() string {
	return "company_settings"
}
