package repository

import (
	"context"
	"errors"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	domainRepo "github.com/relocaid/relocaid-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uint) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByIDForUpdate(ctx context.Context, id uint) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&invoice, "invoice_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&entity.Invoice{}).
		Where("invoice_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Invoice{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.ClientName != "" {
		// LOWER + LIKE instead of ILIKE so the query also runs on sqlite
		query = query.Where("LOWER(client_name) LIKE LOWER(?)", "%"+params.ClientName+"%")
	}

	if params.IssuedFrom != nil {
		query = query.Where("issue_date >= ?", *params.IssuedFrom)
	}

	if params.IssuedTo != nil {
		query = query.Where("issue_date <= ?", *params.IssuedTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).
		Omit("Items", "Payments", "Submission").
		Save(invoice).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.Invoice{}, "id = ?", id).Error
}

type lineItemRepository struct {
	db *gorm.DB
}

// NewLineItemRepository creates a new line item repository
func NewLineItemRepository(db *gorm.DB) domainRepo.LineItemRepository {
	return &lineItemRepository{db: db}
}

func (r *lineItemRepository) CreateBatch(ctx context.Context, items []entity.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(&items).Error
}

func (r *lineItemRepository) GetByInvoiceID(ctx context.Context, invoiceID uint) ([]entity.LineItem, error) {
	var items []entity.LineItem
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("sort_order ASC").
		Find(&items).Error
	return items, err
}

func (r *lineItemRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uint) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).
		Delete(&entity.LineItem{}, "invoice_id = ?", invoiceID).Error
}
