package repository

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
)

// SettingsRepository manages the single company settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Update(ctx context.Context, settings *entity.CompanySettings) error
}
