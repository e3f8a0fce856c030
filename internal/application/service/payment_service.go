package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// PaymentService records payments and keeps the invoice paid state in sync
type PaymentService struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	txManager   repository.TxManager
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	txManager repository.TxManager,
) *PaymentService {
	return &PaymentService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
	}
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	Amount      decimal.Decimal
	PaymentDate *time.Time
	Method      enum.PaymentMethod
	Reference   *string
	Notes       *string
	RecordedBy  *uuid.UUID
}

// RecordPayment appends a payment to an invoice and recomputes its paid
// amount from all payments on file. The invoice flips to paid, with paid_at
// stamped, once the paid amount covers the total. Overpayment is accepted.
func (s *PaymentService) RecordPayment(ctx context.Context, invoiceID uint, input *RecordPaymentInput) (*entity.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}
	if err := input.Method.Validate(); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	paymentDate := time.Now().Truncate(24 * time.Hour)
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}

	payment := &entity.Payment{
		InvoiceID:   invoiceID,
		Amount:      input.Amount.Round(2),
		PaymentDate: paymentDate,
		Method:      input.Method,
		Reference:   input.Reference,
		Notes:       input.Notes,
		RecordedBy:  input.RecordedBy,
	}

	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		invoice, err := s.invoiceRepo.GetByIDForUpdate(txCtx, invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}
		if invoice.Status == enum.InvoiceStatusCancelled {
			return apperror.NewBadRequestError("Cannot record a payment on a cancelled invoice")
		}

		if err := s.paymentRepo.Create(txCtx, payment); err != nil {
			return err
		}

		return s.recomputePaidState(txCtx, invoice)
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// recomputePaidState derives paid_amount and the paid transition from the
// full payment history, so the stored state is always a pure function of
// the payments on file.
func (s *PaymentService) recomputePaidState(ctx context.Context, invoice *entity.Invoice) error {
	payments, err := s.paymentRepo.GetByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return err
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	invoice.PaidAmount = paid

	if paid.GreaterThanOrEqual(invoice.Total) {
		if invoice.Status != enum.InvoiceStatusPaid {
			invoice.Status = enum.InvoiceStatusPaid
			now := time.Now()
			invoice.PaidAt = &now
		}
	}

	return s.invoiceRepo.Update(ctx, invoice)
}

// ListPayments returns the payment history of an invoice, newest first
func (s *PaymentService) ListPayments(ctx context.Context, invoiceID uint) ([]entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return s.paymentRepo.GetByInvoiceID(ctx, invoiceID)
}
