package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentTestService(t *testing.T) (*PaymentService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	invoiceRepo := &fakeInvoiceRepo{store: store}
	paymentRepo := &fakePaymentRepo{store: store}
	return NewPaymentService(invoiceRepo, paymentRepo, fakeTxManager{}), store
}

func seedInvoice(store *fakeStore, total string, status enum.InvoiceStatus) *entity.Invoice {
	store.nextInvoiceID++
	invoice := &entity.Invoice{
		ID:            store.nextInvoiceID,
		InvoiceNumber: "INV-20240315-SEED",
		ClientName:    "Amara Osei",
		IssueDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC),
		Total:         decimal.RequireFromString(total),
		PaidAmount:    decimal.Zero,
		Currency:      "EUR",
		Status:        status,
	}
	store.invoices[invoice.ID] = invoice
	return invoice
}

func TestRecordPaymentAccumulatesUntilPaid(t *testing.T) {
	svc, store := newPaymentTestService(t)
	invoice := seedInvoice(store, "120.00", enum.InvoiceStatusSent)

	_, err := svc.RecordPayment(context.Background(), invoice.ID, &RecordPaymentInput{
		Amount: decimal.RequireFromString("50.00"),
		Method: enum.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)

	stored := store.invoices[invoice.ID]
	assert.True(t, stored.PaidAmount.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, enum.InvoiceStatusSent, stored.Status)
	assert.Nil(t, stored.PaidAt)

	_, err = svc.RecordPayment(context.Background(), invoice.ID, &RecordPaymentInput{
		Amount: decimal.RequireFromString("70.00"),
		Method: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	stored = store.invoices[invoice.ID]
	assert.True(t, stored.PaidAmount.Equal(decimal.RequireFromString("120.00")))
	assert.Equal(t, enum.InvoiceStatusPaid, stored.Status)
	require.NotNil(t, stored.PaidAt)
}

func TestRecordPaymentAcceptsOverpayment(t *testing.T) {
	svc, store := newPaymentTestService(t)
	invoice := seedInvoice(store, "100.00", enum.InvoiceStatusSent)

	payment, err := svc.RecordPayment(context.Background(), invoice.ID, &RecordPaymentInput{
		Amount: decimal.RequireFromString("150.00"),
		Method: enum.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("150.00")))

	stored := store.invoices[invoice.ID]
	assert.True(t, stored.PaidAmount.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, enum.InvoiceStatusPaid, stored.Status)
}

func TestRecordPaymentRejectsCancelledInvoice(t *testing.T) {
	svc, store := newPaymentTestService(t)
	invoice := seedInvoice(store, "100.00", enum.InvoiceStatusCancelled)

	_, err := svc.RecordPayment(context.Background(), invoice.ID, &RecordPaymentInput{
		Amount: decimal.RequireFromString("10.00"),
		Method: enum.PaymentMethodBankTransfer,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	assert.Empty(t, store.payments[invoice.ID])
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, store := newPaymentTestService(t)
	invoice := seedInvoice(store, "100.00", enum.InvoiceStatusSent)

	for _, amount := range []string{"0", "-5.00"} {
		_, err := svc.RecordPayment(context.Background(), invoice.ID, &RecordPaymentInput{
			Amount: decimal.RequireFromString(amount),
			Method: enum.PaymentMethodBankTransfer,
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	}
	assert.Empty(t, store.payments[invoice.ID])
}

func TestRecordPaymentRejectsUnknownMethod(t *testing.T) {
	svc, store := newPaymentTestService(t)
	invoice := seedInvoice(store, "100.00", enum.InvoiceStatusSent)

	_, err := svc.RecordPayment(context.Background(), invoice.ID, &RecordPaymentInput{
		Amount: decimal.RequireFromString("10.00"),
		Method: enum.PaymentMethod("barter"),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestRecordPaymentMissingInvoice(t *testing.T) {
	svc, _ := newPaymentTestService(t)

	_, err := svc.RecordPayment(context.Background(), 999, &RecordPaymentInput{
		Amount: decimal.RequireFromString("10.00"),
		Method: enum.PaymentMethodBankTransfer,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestRecordPaymentDoesNotRevertPaidStatus(t *testing.T) {
	svc, store := newPaymentTestService(t)
	invoice := seedInvoice(store, "100.00", enum.InvoiceStatusSent)

	_, err := svc.RecordPayment(context.Background(), invoice.ID, &RecordPaymentInput{
		Amount: decimal.RequireFromString("100.00"),
		Method: enum.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)
	firstPaidAt := store.invoices[invoice.ID].PaidAt
	require.NotNil(t, firstPaidAt)

	_, err = svc.RecordPayment(context.Background(), invoice.ID, &RecordPaymentInput{
		Amount: decimal.RequireFromString("1.00"),
		Method: enum.PaymentMethodOther,
	})
	require.NoError(t, err)

	stored := store.invoices[invoice.ID]
	assert.Equal(t, enum.InvoiceStatusPaid, stored.Status)
	assert.Equal(t, firstPaidAt, stored.PaidAt)
}

func TestListPaymentsNewestFirst(t *testing.T) {
	svc, store := newPaymentTestService(t)
	invoice := seedInvoice(store, "300.00", enum.InvoiceStatusSent)

	older := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, date := range []time.Time{older, newer} {
		d := date
		_, err := svc.RecordPayment(context.Background(), invoice.ID, &RecordPaymentInput{
			Amount:      decimal.RequireFromString("100.00"),
			PaymentDate: &d,
			Method:      enum.PaymentMethodBankTransfer,
		})
		require.NoError(t, err)
	}

	payments, err := svc.ListPayments(context.Background(), invoice.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, newer, payments[0].PaymentDate)
	assert.Equal(t, older, payments[1].PaymentDate)
}

func TestListPaymentsMissingInvoice(t *testing.T) {
	svc, _ := newPaymentTestService(t)

	_, err := svc.ListPayments(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
