package request

// RecordPaymentRequest represents a payment recording request
type RecordPaymentRequest struct {
	Amount      string  `json:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	Method      string  `json:"method" binding:"required"`
	Reference   *string `json:"reference" binding:"omitempty,max=255"`
	Notes       *string `json:"notes"`
}
