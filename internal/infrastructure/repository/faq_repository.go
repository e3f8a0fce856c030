package repository

import (
	"context"
	"errors"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	domainRepo "github.com/relocaid/relocaid-api/internal/domain/repository"
	"gorm.io/gorm"
)

type faqRepository struct {
	db *gorm.DB
}

// NewFAQRepository creates a new FAQ repository
func NewFAQRepository(db *gorm.DB) domainRepo.FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(faq).Error
}

func (r *faqRepository) GetByID(ctx context.Context, id uint) (*entity.FAQ, error) {
	var faq entity.FAQ
	err := dbFromContext(ctx, r.db).WithContext(ctx).First(&faq, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &faq, err
}

func (r *faqRepository) List(ctx context.Context, publishedOnly bool) ([]entity.FAQ, error) {
	var faqs []entity.FAQ
	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.FAQ{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Order("sort_order ASC, id ASC").Find(&faqs).Error
	return faqs, err
}

func (r *faqRepository) Update(ctx context.Context, faq *entity.FAQ) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(faq).Error
}

func (r *faqRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.FAQ{}, "id = ?", id).Error
}
