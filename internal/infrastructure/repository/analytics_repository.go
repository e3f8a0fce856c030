package repository

import (
	"context"
	"time"

	"github.com/relocaid/relocaid-api/internal/domain/enum"
	domainRepo "github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountInvoicesByStatus(ctx context.Context) ([]domainRepo.StatusCount, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM invoices
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.InvoiceStatus]int64, len(rows))
	for _, row := range rows {
		counts[enum.InvoiceStatus(row.Status)] = row.Count
	}

	// Every status appears in the result, even with zero invoices
	all := []enum.InvoiceStatus{
		enum.InvoiceStatusDraft,
		enum.InvoiceStatusSent,
		enum.InvoiceStatusPaid,
		enum.InvoiceStatusOverdue,
		enum.InvoiceStatusCancelled,
	}
	results := make([]domainRepo.StatusCount, 0, len(all))
	for _, status := range all {
		results = append(results, domainRepo.StatusCount{Status: status, Count: counts[status]})
	}
	return results, nil
}

func (r *analyticsRepository) RevenueByMonth(ctx context.Context, months int) ([]domainRepo.MonthlyRevenue, error) {
	results := make([]domainRepo.MonthlyRevenue, 0, months)
	now := time.Now()

	for i := months - 1; i >= 0; i-- {
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		endOfMonth := startOfMonth.AddDate(0, 1, 0)

		var revenue decimal.NullDecimal
		err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(amount), 0)
			FROM payments
			WHERE payment_date >= ? AND payment_date < ?
		`, startOfMonth, endOfMonth).Scan(&revenue).Error
		if err != nil {
			return nil, err
		}

		rev := decimal.Zero
		if revenue.Valid {
			rev = revenue.Decimal
		}

		results = append(results, domainRepo.MonthlyRevenue{
			Month:   startOfMonth,
			Revenue: rev,
		})
	}

	return results, nil
}

func (r *analyticsRepository) OutstandingTotal(ctx context.Context) (decimal.Decimal, error) {
	var outstanding decimal.NullDecimal
	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total - paid_amount), 0)
		FROM invoices
		WHERE status IN (?, ?)
	`, enum.InvoiceStatusSent, enum.InvoiceStatusOverdue).Scan(&outstanding).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !outstanding.Valid {
		return decimal.Zero, nil
	}
	return outstanding.Decimal, nil
}

func (r *analyticsRepository) CountSubmissionsByStatus(ctx context.Context) (map[enum.SubmissionStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM submissions
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.SubmissionStatus]int64, len(rows))
	for _, row := range rows {
		counts[enum.SubmissionStatus(row.Status)] = row.Count
	}
	return counts, nil
}
