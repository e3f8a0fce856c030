package service

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates the numbers shown on the ops dashboard
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	invoiceRepo   repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	invoiceRepo repository.InvoiceRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		invoiceRepo:   invoiceRepo,
	}
}

// DashboardSummary holds the dashboard headline figures
type DashboardSummary struct {
	InvoicesByStatus    []repository.StatusCount        `json:"invoices_by_status"`
	OutstandingTotal    decimal.Decimal                 `json:"outstanding_total"`
	RevenueByMonth      []repository.MonthlyRevenue     `json:"revenue_by_month"`
	SubmissionsByStatus map[enum.SubmissionStatus]int64 `json:"submissions_by_status"`
	RecentInvoices      []entity.Invoice                `json:"recent_invoices"`
}

// GetSummary builds the dashboard summary. Revenue covers the last twelve
// calendar months.
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	statusCounts, err := s.analyticsRepo.CountInvoicesByStatus(ctx)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.analyticsRepo.OutstandingTotal(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.analyticsRepo.RevenueByMonth(ctx, 12)
	if err != nil {
		return nil, err
	}

	submissionCounts, err := s.analyticsRepo.CountSubmissionsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recent, _, err := s.invoiceRepo.List(ctx, &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 5},
	})
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		InvoicesByStatus:    statusCounts,
		OutstandingTotal:    outstanding,
		RevenueByMonth:      revenue,
		SubmissionsByStatus: submissionCounts,
		RecentInvoices:      recent,
	}, nil
}
