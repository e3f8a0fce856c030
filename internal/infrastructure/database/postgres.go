package database

import (
	"fmt"
	"log"

	"github.com/relocaid/relocaid-api/internal/config"
	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Translate driver errors into gorm sentinel errors, so unique
		// violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// HealthCheck pings the database
func HealthCheck(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Submission{},
		&entity.Invoice{},
		&entity.LineItem{},
		&entity.Payment{},
		&entity.CompanySettings{},
		&entity.EmailTemplate{},
		&entity.FAQ{},
		&entity.ActivityLog{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the company settings row, the built-in email
// templates, and an admin user when one is configured via environment
// variables.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Single company settings row
	var settingsCount int64
	if err := db.Model(&entity.CompanySettings{}).Count(&settingsCount).Error; err != nil {
		return fmt.Errorf("failed to check company settings: %w", err)
	}
	if settingsCount == 0 {
		settings := entity.DefaultCompanySettings()
		if err := db.Create(settings).Error; err != nil {
			log.Printf("Warning: failed to seed company settings: %v", err)
		}
	}

	// Built-in email templates
	templates := []entity.EmailTemplate{
		{
			Slug:    entity.TemplateInvoiceIssued,
			Name:    "Invoice issued",
			Subject: "Invoice {{.InvoiceNumber}} from {{.CompanyName}}",
			Body: "<p>Dear {{.ClientName}},</p>" +
				"<p>Please find your invoice <strong>{{.InvoiceNumber}}</strong> over {{.Total}} {{.Currency}} attached below.</p>" +
				"<p>Payment is due by {{.DueDate}}.</p>" +
				"<p>Kind regards,<br>{{.CompanyName}}</p>",
		},
		{
			Slug:    entity.TemplatePaymentReceived,
			Name:    "Payment received",
			Subject: "Payment received for invoice {{.InvoiceNumber}}",
			Body: "<p>Dear {{.ClientName}},</p>" +
				"<p>We have received your payment of {{.Amount}} {{.Currency}} for invoice <strong>{{.InvoiceNumber}}</strong>. Thank you.</p>" +
				"<p>Kind regards,<br>{{.CompanyName}}</p>",
		},
	}
	for i := range templates {
		var existing entity.EmailTemplate
		if err := db.Where("slug = ?", templates[i].Slug).First(&existing).Error; err != nil {
			if err := db.Create(&templates[i]).Error; err != nil {
				log.Printf("Warning: failed to seed email template %s: %v", templates[i].Slug, err)
			}
		}
	}

	// Admin user from environment
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Admin"
				}
				firstName := adminName
				lastName := ""
				for i, c := range adminName {
					if c == ' ' {
						firstName = adminName[:i]
						lastName = adminName[i+1:]
						break
					}
				}
				adminUser := entity.User{
					FirstName: firstName,
					LastName:  lastName,
					Email:     adminEmail,
					Password:  string(hashedPassword),
					Role:      entity.RoleAdmin,
					Provider:  "local",
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
