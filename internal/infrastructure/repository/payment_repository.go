package repository

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	domainRepo "github.com/relocaid/relocaid-api/internal/domain/repository"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetByInvoiceID(ctx context.Context, invoiceID uint) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date DESC, id DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uint) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).
		Delete(&entity.Payment{}, "invoice_id = ?", invoiceID).Error
}
