package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/relocaid/relocaid-api/internal/domain/enum"
)

// StatusCount holds the number of invoices in one status
type StatusCount struct {
	Status enum.InvoiceStatus `json:"status"`
	Count  int64              `json:"count"`
}

// MonthlyRevenue holds total payments received within one calendar month
type MonthlyRevenue struct {
	Month   time.Time       `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// AnalyticsRepository defines aggregate queries backing the dashboard
type AnalyticsRepository interface {
	CountInvoicesByStatus(ctx context.Context) ([]StatusCount, error)
	// RevenueByMonth returns payment totals for the last n calendar months,
	// oldest month first. Months without payments are included with zero.
	RevenueByMonth(ctx context.Context, months int) ([]MonthlyRevenue, error)
	// OutstandingTotal is the sum of total minus paid amount over all
	// invoices in sent or overdue status.
	OutstandingTotal(ctx context.Context) (decimal.Decimal, error)
	CountSubmissionsByStatus(ctx context.Context) (map[enum.SubmissionStatus]int64, error)
}
