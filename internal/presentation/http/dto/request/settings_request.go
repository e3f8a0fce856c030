package request

// UpdateSettingsRequest represents a company settings update request
type UpdateSettingsRequest struct {
	CompanyName     *string `json:"company_name" binding:"omitempty,min=1,max=255"`
	Street          *string `json:"street" binding:"omitempty,max=255"`
	City            *string `json:"city" binding:"omitempty,max=100"`
	PostalCode      *string `json:"postal_code" binding:"omitempty,max=20"`
	Country         *string `json:"country" binding:"omitempty,max=100"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone" binding:"omitempty,max=50"`
	VATNumber       *string `json:"vat_number" binding:"omitempty,max=50"`
	DefaultTaxRate  *string `json:"default_tax_rate"`
	PaymentTermDays *int    `json:"payment_term_days" binding:"omitempty,min=0,max=365"`
	Currency        *string `json:"currency" binding:"omitempty,len=3"`
	DefaultTerms    *string `json:"default_terms"`
	BankName        *string `json:"bank_name" binding:"omitempty,max=255"`
	IBAN            *string `json:"iban" binding:"omitempty,max=50"`
	BIC             *string `json:"bic" binding:"omitempty,max=20"`
}
