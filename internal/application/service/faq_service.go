package service

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/pkg/apperror"
)

// FAQService manages the published FAQ entries
type FAQService struct {
	faqRepo repository.FAQRepository
}

// NewFAQService creates a new FAQ service
func NewFAQService(faqRepo repository.FAQRepository) *FAQService {
	return &FAQService{faqRepo: faqRepo}
}

// FAQInput represents the create or update FAQ input
type FAQInput struct {
	Question  string
	Answer    string
	Category  string
	SortOrder int
	Published bool
}

// CreateFAQ stores a new FAQ entry
func (s *FAQService) CreateFAQ(ctx context.Context, input *FAQInput) (*entity.FAQ, error) {
	faq := &entity.FAQ{
		Question:  input.Question,
		Answer:    input.Answer,
		Category:  input.Category,
		SortOrder: input.SortOrder,
		Published: input.Published,
	}
	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// GetFAQ retrieves an FAQ entry by ID
func (s *FAQService) GetFAQ(ctx context.Context, id uint) (*entity.FAQ, error) {
	faq, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, apperror.NewNotFoundError("FAQ")
	}
	return faq, nil
}

// ListFAQs returns FAQ entries in display order. Public callers only see
// published entries.
func (s *FAQService) ListFAQs(ctx context.Context, publishedOnly bool) ([]entity.FAQ, error) {
	return s.faqRepo.List(ctx, publishedOnly)
}

// UpdateFAQ updates an existing FAQ entry
func (s *FAQService) UpdateFAQ(ctx context.Context, id uint, input *FAQInput) (*entity.FAQ, error) {
	faq, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, apperror.NewNotFoundError("FAQ")
	}

	faq.Question = input.Question
	faq.Answer = input.Answer
	faq.Category = input.Category
	faq.SortOrder = input.SortOrder
	faq.Published = input.Published

	if err := s.faqRepo.Update(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// DeleteFAQ removes an FAQ entry
func (s *FAQService) DeleteFAQ(ctx context.Context, id uint) error {
	faq, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if faq == nil {
		return apperror.NewNotFoundError("FAQ")
	}
	return s.faqRepo.Delete(ctx, id)
}
