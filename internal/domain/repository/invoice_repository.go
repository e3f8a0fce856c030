package repository

import (
	"context"
	"time"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID returns the invoice with its line items ordered by sort_order,
	// or (nil, nil) when no such invoice exists.
	GetByID(ctx context.Context, id uint) (*entity.Invoice, error)
	// GetByIDForUpdate locks the invoice row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	// List returns one page of invoices, newest-created-first, together with
	// the total count under the same filters.
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uint) error
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.InvoiceStatus
	ClientName string
	IssuedFrom *time.Time
	IssuedTo   *time.Time
}

// LineItemRepository defines the interface for invoice line item operations
type LineItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.LineItem) error
	GetByInvoiceID(ctx context.Context, invoiceID uint) ([]entity.LineItem, error)
	DeleteByInvoiceID(ctx context.Context, invoiceID uint) error
}
