package service

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SettingsService manages the company settings row
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the company settings, creating the default row when
// none exists yet.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultCompanySettings()
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input. Nil fields keep
// their stored value.
type UpdateSettingsInput struct {
	CompanyName     *string
	Street          *string
	City            *string
	PostalCode      *string
	Country         *string
	Email           *string
	Phone           *string
	VATNumber       *string
	DefaultTaxRate  *decimal.Decimal
	PaymentTermDays *int
	Currency        *string
	DefaultTerms    *string
	BankName        *string
	IBAN            *string
	BIC             *string
}

// UpdateSettings merges the input into the settings row
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.CompanySettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		settings.CompanyName = *input.CompanyName
	}
	if input.Street != nil {
		settings.Street = *input.Street
	}
	if input.City != nil {
		settings.City = *input.City
	}
	if input.PostalCode != nil {
		settings.PostalCode = *input.PostalCode
	}
	if input.Country != nil {
		settings.Country = *input.Country
	}
	if input.Email != nil {
		settings.Email = *input.Email
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.VATNumber != nil {
		settings.VATNumber = input.VATNumber
	}
	if input.DefaultTaxRate != nil {
		settings.DefaultTaxRate = *input.DefaultTaxRate
	}
	if input.PaymentTermDays != nil {
		settings.PaymentTermDays = *input.PaymentTermDays
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.DefaultTerms != nil {
		settings.DefaultTerms = input.DefaultTerms
	}
	if input.BankName != nil {
		settings.BankName = input.BankName
	}
	if input.IBAN != nil {
		settings.IBAN = input.IBAN
	}
	if input.BIC != nil {
		settings.BIC = input.BIC
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
