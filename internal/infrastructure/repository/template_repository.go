package repository

import (
	"context"
	"errors"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	domainRepo "github.com/relocaid/relocaid-api/internal/domain/repository"
	"gorm.io/gorm"
)

type emailTemplateRepository struct {
	db *gorm.DB
}

// NewEmailTemplateRepository creates a new email template repository
func NewEmailTemplateRepository(db *gorm.DB) domainRepo.EmailTemplateRepository {
	return &emailTemplateRepository{db: db}
}

func (r *emailTemplateRepository) Create(ctx context.Context, template *entity.EmailTemplate) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(template).Error
}

func (r *emailTemplateRepository) GetByID(ctx context.Context, id uint) (*entity.EmailTemplate, error) {
	var template entity.EmailTemplate
	err := dbFromContext(ctx, r.db).WithContext(ctx).First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *emailTemplateRepository) GetBySlug(ctx context.Context, slug string) (*entity.EmailTemplate, error) {
	var template entity.EmailTemplate
	err := dbFromContext(ctx, r.db).WithContext(ctx).First(&template, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *emailTemplateRepository) List(ctx context.Context) ([]entity.EmailTemplate, error) {
	var templates []entity.EmailTemplate
	err := dbFromContext(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&templates).Error
	return templates, err
}

func (r *emailTemplateRepository) Update(ctx context.Context, template *entity.EmailTemplate) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(template).Error
}

func (r *emailTemplateRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.EmailTemplate{}, "id = ?", id).Error
}
