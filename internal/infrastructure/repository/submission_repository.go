package repository

import (
	"context"
	"errors"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	domainRepo "github.com/relocaid/relocaid-api/internal/domain/repository"
	"gorm.io/gorm"
)

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) domainRepo.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) GetByID(ctx context.Context, id uint) (*entity.Submission, error) {
	var submission entity.Submission
	err := dbFromContext(ctx, r.db).WithContext(ctx).First(&submission, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &submission, err
}

func (r *submissionRepository) GetByReference(ctx context.Context, reference string) (*entity.Submission, error) {
	var submission entity.Submission
	err := dbFromContext(ctx, r.db).WithContext(ctx).First(&submission, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &submission, err
}

func (r *submissionRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&entity.Submission{}).
		Where("reference = ?", reference).
		Count(&count).Error
	return count > 0, err
}

func (r *submissionRepository) List(ctx context.Context, params *domainRepo.SubmissionFilterParams) ([]entity.Submission, int64, error) {
	var submissions []entity.Submission
	var total int64

	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Submission{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(reference) LIKE LOWER(?)",
			like, like, like, like,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&submissions).Error

	return submissions, total, err
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id uint, status enum.SubmissionStatus) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&entity.Submission{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *submissionRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.Submission{}, "id = ?", id).Error
}
