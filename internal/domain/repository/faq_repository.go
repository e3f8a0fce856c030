package repository

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
)

// FAQRepository defines the interface for FAQ data operations
type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	GetByID(ctx context.Context, id uint) (*entity.FAQ, error)
	// List returns FAQs ordered by sort_order. When publishedOnly is true,
	// unpublished entries are excluded.
	List(ctx context.Context, publishedOnly bool) ([]entity.FAQ, error)
	Update(ctx context.Context, faq *entity.FAQ) error
	Delete(ctx context.Context, id uint) error
}
