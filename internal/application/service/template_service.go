package service

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/pkg/apperror"
	"github.com/relocaid/relocaid-api/pkg/email"
)

// TemplateService manages email templates
type TemplateService struct {
	templateRepo repository.EmailTemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.EmailTemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// TemplateInput represents the create or update template input
type TemplateInput struct {
	Slug    string
	Name    string
	Subject string
	Body    string
}

// validateTemplate renders the subject and body against empty data to catch
// malformed template syntax before it is stored.
func validateTemplate(input *TemplateInput) error {
	if _, err := email.RenderTemplate(input.Subject, map[string]string{}); err != nil {
		return apperror.NewBadRequestError("Invalid subject template: " + err.Error())
	}
	if _, err := email.RenderTemplate(input.Body, map[string]string{}); err != nil {
		return apperror.NewBadRequestError("Invalid body template: " + err.Error())
	}
	return nil
}

// CreateTemplate stores a new email template
func (s *TemplateService) CreateTemplate(ctx context.Context, input *TemplateInput) (*entity.EmailTemplate, error) {
	if err := validateTemplate(input); err != nil {
		return nil, err
	}

	existing, err := s.templateRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Template slug already exists")
	}

	template := &entity.EmailTemplate{
		Slug:    input.Slug,
		Name:    input.Name,
		Subject: input.Subject,
		Body:    input.Body,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uint) (*entity.EmailTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Email template")
	}
	return template, nil
}

// ListTemplates returns all email templates
func (s *TemplateService) ListTemplates(ctx context.Context) ([]entity.EmailTemplate, error) {
	return s.templateRepo.List(ctx)
}

// UpdateTemplate updates an existing template. The slug is immutable so the
// built-in templates stay resolvable.
func (s *TemplateService) UpdateTemplate(ctx context.Context, id uint, input *TemplateInput) (*entity.EmailTemplate, error) {
	if err := validateTemplate(input); err != nil {
		return nil, err
	}

	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Email template")
	}

	template.Name = input.Name
	template.Subject = input.Subject
	template.Body = input.Body

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// DeleteTemplate removes a template. The built-in templates cannot be
// deleted.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uint) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NewNotFoundError("Email template")
	}
	if template.Slug == entity.TemplateInvoiceIssued || template.Slug == entity.TemplatePaymentReceived {
		return apperror.NewBadRequestError("Built-in templates cannot be deleted")
	}
	return s.templateRepo.Delete(ctx, id)
}
