package repository

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
)

// EmailTemplateRepository defines the interface for email template operations
type EmailTemplateRepository interface {
	Create(ctx context.Context, template *entity.EmailTemplate) error
	GetByID(ctx context.Context, id uint) (*entity.EmailTemplate, error)
	GetBySlug(ctx context.Context, slug string) (*entity.EmailTemplate, error)
	List(ctx context.Context) ([]entity.EmailTemplate, error)
	Update(ctx context.Context, template *entity.EmailTemplate) error
	Delete(ctx context.Context, id uint) error
}
