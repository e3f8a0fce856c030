package repository

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/pkg/pagination"
)

// SubmissionRepository defines the interface for contact submission operations
type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	GetByID(ctx context.Context, id uint) (*entity.Submission, error)
	GetByReference(ctx context.Context, reference string) (*entity.Submission, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	List(ctx context.Context, params *SubmissionFilterParams) ([]entity.Submission, int64, error)
	UpdateStatus(ctx context.Context, id uint, status enum.SubmissionStatus) error
	Delete(ctx context.Context, id uint) error
}

// SubmissionFilterParams contains filtering parameters for submission queries
type SubmissionFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.SubmissionStatus
	Search     string
}
