package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/pkg/apperror"
	"github.com/relocaid/relocaid-api/pkg/email"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInvoiceTestService(t *testing.T) (*InvoiceService, *fakeStore, *fakeInvoiceRepo) {
	t.Helper()
	store := newFakeStore()
	invoiceRepo := &fakeInvoiceRepo{store: store}
	svc := NewInvoiceService(
		invoiceRepo,
		&fakeLineItemRepo{store: store},
		&fakePaymentRepo{store: store},
		&fakeSubmissionRepo{store: store},
		&fakeSettingsRepo{store: store},
		&fakeTemplateRepo{store: store},
		fakeTxManager{},
		email.NewEmailService(email.EmailConfig{}),
	)
	return svc, store, invoiceRepo
}

func twoItems() []LineItemInput {
	return []LineItemInput{
		{Description: "Visa application support", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("50.00")},
		{Description: "Document translation", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("25.00")},
	}
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientName: "Amara Osei",
		Items:      twoItems(),
	})
	require.NoError(t, err)
	require.NotNil(t, invoice)

	assert.True(t, invoice.Subtotal.Equal(decimal.RequireFromString("125.00")), "subtotal %s", invoice.Subtotal)
	assert.True(t, invoice.TaxAmount.Equal(decimal.RequireFromString("23.75")), "tax %s", invoice.TaxAmount)
	assert.True(t, invoice.Total.Equal(decimal.RequireFromString("148.75")), "total %s", invoice.Total)
	assert.Equal(t, enum.InvoiceStatusDraft, invoice.Status)
	assert.Equal(t, "EUR", invoice.Currency)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	assert.Equal(t, invoice.IssueDate.AddDate(0, 0, 14), invoice.DueDate)

	require.Len(t, invoice.Items, 2)
	assert.Equal(t, 0, invoice.Items[0].SortOrder)
	assert.True(t, invoice.Items[0].Amount.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, invoice.Items[1].Amount.Equal(decimal.RequireFromString("25.00")))
}

func TestCreateInvoiceRequiresItems(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{ClientName: "Amara Osei"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateInvoiceRequiresClientName(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{Items: twoItems()})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateInvoiceUsesSettingsDefaults(t *testing.T) {
	svc, store, _ := newInvoiceTestService(t)
	terms := "Payable within 30 days net."
	store.settings = &entity.CompanySettings{
		ID:              1,
		CompanyName:     "Relocaid GmbH",
		DefaultTaxRate:  decimal.NewFromInt(7),
		PaymentTermDays: 30,
		Currency:        "CHF",
		DefaultTerms:    &terms,
	}

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientName: "Amara Osei",
		Items:      twoItems(),
	})
	require.NoError(t, err)

	assert.True(t, invoice.TaxRate.Equal(decimal.NewFromInt(7)))
	assert.True(t, invoice.TaxAmount.Equal(decimal.RequireFromString("8.75")))
	assert.Equal(t, "CHF", invoice.Currency)
	assert.Equal(t, invoice.IssueDate.AddDate(0, 0, 30), invoice.DueDate)
	require.NotNil(t, invoice.Terms)
	assert.Equal(t, terms, *invoice.Terms)
}

func TestCreateInvoicePrefillsFromSubmission(t *testing.T) {
	svc, store, _ := newInvoiceTestService(t)
	street := "Hauptstrasse 12"
	city := "Berlin"
	postal := "10115"
	store.nextSubmissionID++
	store.submissions[1] = &entity.Submission{
		ID:         1,
		Reference:  "REF-20240101-AB12",
		FirstName:  "Amara",
		LastName:   "Osei",
		Email:      "amara@example.com",
		Street:     &street,
		City:       &city,
		PostalCode: &postal,
		Status:     enum.SubmissionStatusNew,
	}

	submissionID := uint(1)
	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		SubmissionID: &submissionID,
		Items:        twoItems(),
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-20240101-AB12", invoice.InvoiceNumber)
	assert.Equal(t, "Amara Osei", invoice.ClientName)
	assert.Equal(t, "amara@example.com", invoice.ClientEmail)
	assert.Equal(t, "Hauptstrasse 12\n10115 Berlin", invoice.ClientAddress)
}

func TestCreateInvoiceMissingSubmission(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)

	submissionID := uint(77)
	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		SubmissionID: &submissionID,
		ClientName:   "Amara Osei",
		Items:        twoItems(),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCreateInvoiceRetriesGeneratedNumberOnCollision(t *testing.T) {
	svc, _, invoiceRepo := newInvoiceTestService(t)
	invoiceRepo.createErrs = []error{gorm.ErrDuplicatedKey}

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientName: "Amara Osei",
		Items:      twoItems(),
	})
	require.NoError(t, err)
	require.NotNil(t, invoice)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	require.Len(t, invoice.Items, 2)
}

func TestCreateInvoiceDerivedNumberConflict(t *testing.T) {
	svc, store, _ := newInvoiceTestService(t)
	store.nextInvoiceID++
	store.invoices[1] = &entity.Invoice{
		ID:            1,
		InvoiceNumber: "INV-20240101-AB12",
		ClientName:    "Earlier Client",
		Total:         decimal.RequireFromString("10.00"),
	}
	store.nextSubmissionID++
	store.submissions[1] = &entity.Submission{
		ID:        1,
		Reference: "REF-20240101-AB12",
		FirstName: "Amara",
		LastName:  "Osei",
		Email:     "amara@example.com",
	}

	submissionID := uint(1)
	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		SubmissionID: &submissionID,
		Items:        twoItems(),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestUpdateInvoiceTaxRateRecomputesTotals(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	created, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientName: "Amara Osei",
		Items:      twoItems(),
	})
	require.NoError(t, err)

	newRate := decimal.NewFromInt(7)
	updated, err := svc.UpdateInvoice(context.Background(), created.ID, &UpdateInvoiceInput{TaxRate: &newRate})
	require.NoError(t, err)

	assert.True(t, updated.Subtotal.Equal(decimal.RequireFromString("125.00")))
	assert.True(t, updated.TaxAmount.Equal(decimal.RequireFromString("8.75")))
	assert.True(t, updated.Total.Equal(decimal.RequireFromString("133.75")))
}

func TestUpdateInvoiceRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	created, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientName: "Amara Osei",
		Items:      twoItems(),
	})
	require.NoError(t, err)

	bogus := enum.InvoiceStatus("shredded")
	_, err = svc.UpdateInvoice(context.Background(), created.ID, &UpdateInvoiceInput{Status: &bogus})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestReplaceItemsRecomputesTotals(t *testing.T) {
	svc, store, _ := newInvoiceTestService(t)
	created, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientName: "Amara Osei",
		Items:      twoItems(),
	})
	require.NoError(t, err)

	replaced, err := svc.ReplaceItems(context.Background(), created.ID, []LineItemInput{
		{Description: "Relocation consulting", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.RequireFromString("75.00")},
	})
	require.NoError(t, err)

	assert.True(t, replaced.Subtotal.Equal(decimal.RequireFromString("300.00")))
	assert.True(t, replaced.TaxAmount.Equal(decimal.RequireFromString("57.00")))
	assert.True(t, replaced.Total.Equal(decimal.RequireFromString("357.00")))
	require.Len(t, replaced.Items, 1)
	assert.Equal(t, "Relocation consulting", replaced.Items[0].Description)
	assert.Len(t, store.items[created.ID], 1)
}

func TestReplaceItemsRequiresItems(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)

	_, err := svc.ReplaceItems(context.Background(), 1, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestDeleteInvoiceRemovesItemsAndPayments(t *testing.T) {
	svc, store, _ := newInvoiceTestService(t)
	created, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientName: "Amara Osei",
		Items:      twoItems(),
	})
	require.NoError(t, err)

	store.payments[created.ID] = []entity.Payment{{
		ID:          1,
		InvoiceID:   created.ID,
		Amount:      decimal.RequireFromString("10.00"),
		PaymentDate: time.Now(),
		Method:      enum.PaymentMethodCash,
	}}

	require.NoError(t, svc.DeleteInvoice(context.Background(), created.ID))
	assert.Nil(t, store.invoices[created.ID])
	assert.Empty(t, store.items[created.ID])
	assert.Empty(t, store.payments[created.ID])
}

func TestSendInvoiceEmailRequiresConfiguredMailer(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	created, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientName:  "Amara Osei",
		ClientEmail: "amara@example.com",
		Items:       twoItems(),
	})
	require.NoError(t, err)

	_, err = svc.SendInvoiceEmail(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, apperror.GetAppError(err).Code)
}

func TestSendInvoiceEmailRequiresClientEmail(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	created, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientName: "Amara Osei",
		Items:      twoItems(),
	})
	require.NoError(t, err)

	_, err = svc.SendInvoiceEmail(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
