package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	domainRepo "github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Submission{},
		&entity.Invoice{},
		&entity.LineItem{},
		&entity.Payment{},
	))
	return db
}

func testInvoice(number, clientName string, status enum.InvoiceStatus, issueDate time.Time) *entity.Invoice {
	return &entity.Invoice{
		InvoiceNumber: number,
		ClientName:    clientName,
		IssueDate:     issueDate,
		DueDate:       issueDate.AddDate(0, 0, 14),
		Subtotal:      decimal.RequireFromString("100.00"),
		TaxRate:       decimal.NewFromInt(19),
		TaxAmount:     decimal.RequireFromString("19.00"),
		Total:         decimal.RequireFromString("119.00"),
		PaidAmount:    decimal.Zero,
		Currency:      "EUR",
		Status:        status,
	}
}

func TestInvoiceRepositoryGetByIDOrdersItems(t *testing.T) {
	db := setupTestDB(t)
	invoiceRepo := NewInvoiceRepository(db)
	itemRepo := NewLineItemRepository(db)
	ctx := context.Background()

	invoice := testInvoice("INV-20240315-AAAA", "Amara Osei", enum.InvoiceStatusDraft, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, invoiceRepo.Create(ctx, invoice))

	// Inserted out of order on purpose
	items := []entity.LineItem{
		{InvoiceID: invoice.ID, Description: "Second", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("25.00"), Amount: decimal.RequireFromString("25.00"), SortOrder: 1},
		{InvoiceID: invoice.ID, Description: "First", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("50.00"), Amount: decimal.RequireFromString("100.00"), SortOrder: 0},
	}
	require.NoError(t, itemRepo.CreateBatch(ctx, items))

	found, err := invoiceRepo.GetByID(ctx, invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Items, 2)
	assert.Equal(t, "First", found.Items[0].Description)
	assert.Equal(t, "Second", found.Items[1].Description)
}

func TestInvoiceRepositoryGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	invoiceRepo := NewInvoiceRepository(db)

	found, err := invoiceRepo.GetByID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestInvoiceRepositoryUniqueNumber(t *testing.T) {
	db := setupTestDB(t)
	invoiceRepo := NewInvoiceRepository(db)
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, invoiceRepo.Create(ctx, testInvoice("INV-20240315-BBBB", "Amara Osei", enum.InvoiceStatusDraft, day)))

	err := invoiceRepo.Create(ctx, testInvoice("INV-20240315-BBBB", "Lukas Brandt", enum.InvoiceStatusDraft, day))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestInvoiceRepositoryExistsByNumber(t *testing.T) {
	db := setupTestDB(t)
	invoiceRepo := NewInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, invoiceRepo.Create(ctx, testInvoice("INV-20240315-CCCC", "Amara Osei", enum.InvoiceStatusDraft, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))))

	exists, err := invoiceRepo.ExistsByNumber(ctx, "INV-20240315-CCCC")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = invoiceRepo.ExistsByNumber(ctx, "INV-20240315-ZZZZ")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInvoiceRepositoryListFilters(t *testing.T) {
	db := setupTestDB(t)
	invoiceRepo := NewInvoiceRepository(db)
	ctx := context.Background()

	march := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, invoiceRepo.Create(ctx, testInvoice("INV-1", "Amara Osei", enum.InvoiceStatusSent, march)))
	require.NoError(t, invoiceRepo.Create(ctx, testInvoice("INV-2", "Lukas Brandt", enum.InvoiceStatusPaid, march)))
	require.NoError(t, invoiceRepo.Create(ctx, testInvoice("INV-3", "Amara Osei", enum.InvoiceStatusSent, april)))

	t.Run("by status", func(t *testing.T) {
		status := enum.InvoiceStatusSent
		invoices, total, err := invoiceRepo.List(ctx, &domainRepo.InvoiceFilterParams{
			Pagination: pagination.DefaultPagination(),
			Status:     &status,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, invoices, 2)
	})

	t.Run("by client name case insensitive", func(t *testing.T) {
		invoices, total, err := invoiceRepo.List(ctx, &domainRepo.InvoiceFilterParams{
			Pagination: pagination.DefaultPagination(),
			ClientName: "amara",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, invoices, 2)
	})

	t.Run("by issue date range", func(t *testing.T) {
		from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		invoices, total, err := invoiceRepo.List(ctx, &domainRepo.InvoiceFilterParams{
			Pagination: pagination.DefaultPagination(),
			IssuedFrom: &from,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, invoices, 1)
		assert.Equal(t, "INV-3", invoices[0].InvoiceNumber)
	})

	t.Run("pagination caps the page", func(t *testing.T) {
		invoices, total, err := invoiceRepo.List(ctx, &domainRepo.InvoiceFilterParams{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, invoices, 2)
	})
}

func TestLineItemRepositoryDeleteByInvoiceID(t *testing.T) {
	db := setupTestDB(t)
	invoiceRepo := NewInvoiceRepository(db)
	itemRepo := NewLineItemRepository(db)
	ctx := context.Background()

	invoice := testInvoice("INV-20240315-DDDD", "Amara Osei", enum.InvoiceStatusDraft, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, invoiceRepo.Create(ctx, invoice))
	require.NoError(t, itemRepo.CreateBatch(ctx, []entity.LineItem{
		{InvoiceID: invoice.ID, Description: "Consulting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("80.00"), Amount: decimal.RequireFromString("80.00")},
	}))

	require.NoError(t, itemRepo.DeleteByInvoiceID(ctx, invoice.ID))

	items, err := itemRepo.GetByInvoiceID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTxManagerRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	invoiceRepo := NewInvoiceRepository(db)
	txManager := NewTxManager(db)
	ctx := context.Background()

	sentinel := errors.New("abort")
	err := txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := invoiceRepo.Create(txCtx, testInvoice("INV-20240315-EEEE", "Amara Osei", enum.InvoiceStatusDraft, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	exists, err := invoiceRepo.ExistsByNumber(ctx, "INV-20240315-EEEE")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPaymentRepositoryNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	invoiceRepo := NewInvoiceRepository(db)
	paymentRepo := NewPaymentRepository(db)
	ctx := context.Background()

	invoice := testInvoice("INV-20240315-FFFF", "Amara Osei", enum.InvoiceStatusSent, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, invoiceRepo.Create(ctx, invoice))

	older := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	for _, date := range []time.Time{older, newer} {
		require.NoError(t, paymentRepo.Create(ctx, &entity.Payment{
			InvoiceID:   invoice.ID,
			Amount:      decimal.RequireFromString("50.00"),
			PaymentDate: date,
			Method:      enum.PaymentMethodBankTransfer,
		}))
	}

	payments, err := paymentRepo.GetByInvoiceID(ctx, invoice.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.True(t, payments[0].PaymentDate.After(payments[1].PaymentDate))
}
