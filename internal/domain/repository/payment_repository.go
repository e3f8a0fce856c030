package repository

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment data operations.
// Payments are append-only; there is no update method.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// GetByInvoiceID returns all payments for the invoice, newest payment
	// date first.
	GetByInvoiceID(ctx context.Context, invoiceID uint) ([]entity.Payment, error)
	DeleteByInvoiceID(ctx context.Context, invoiceID uint) error
}
