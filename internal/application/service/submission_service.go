package service

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/pkg/apperror"
	"github.com/relocaid/relocaid-api/pkg/pagination"
)

// SubmissionService handles contact form submissions
type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	references     *NumberGenerator
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(submissionRepo repository.SubmissionRepository) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		references:     NewSubmissionReferenceGenerator(submissionRepo.ExistsByReference),
	}
}

// CreateSubmissionInput represents an inbound contact form submission
type CreateSubmissionInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	Street      *string
	City        *string
	PostalCode  *string
	Country     *string
	ServiceType string
	Message     string
}

// CreateSubmission stores a contact form submission and assigns it a
// reference number.
func (s *SubmissionService) CreateSubmission(ctx context.Context, input *CreateSubmissionInput) (*entity.Submission, error) {
	reference, err := s.references.Generate(ctx)
	if err != nil {
		return nil, err
	}

	submission := &entity.Submission{
		Reference:   reference,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		Street:      input.Street,
		City:        input.City,
		PostalCode:  input.PostalCode,
		Country:     input.Country,
		ServiceType: input.ServiceType,
		Message:     input.Message,
		Status:      enum.SubmissionStatusNew,
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// GetSubmission retrieves a submission by ID
func (s *SubmissionService) GetSubmission(ctx context.Context, id uint) (*entity.Submission, error) {
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, apperror.NewNotFoundError("Submission")
	}
	return submission, nil
}

// ListSubmissions lists submissions with filtering
func (s *SubmissionService) ListSubmissions(ctx context.Context, params *repository.SubmissionFilterParams) (*pagination.PaginatedResult[entity.Submission], error) {
	submissions, total, err := s.submissionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(submissions, pag), nil
}

// UpdateSubmissionStatus moves a submission through its workflow states
func (s *SubmissionService) UpdateSubmissionStatus(ctx context.Context, id uint, status enum.SubmissionStatus) (*entity.Submission, error) {
	if err := status.Validate(); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, apperror.NewNotFoundError("Submission")
	}

	if err := s.submissionRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	submission.Status = status
	return submission, nil
}

// DeleteSubmission removes a submission
func (s *SubmissionService) DeleteSubmission(ctx context.Context, id uint) error {
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if submission == nil {
		return apperror.NewNotFoundError("Submission")
	}
	return s.submissionRepo.Delete(ctx, id)
}
