package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/internal/application/service"
	"github.com/relocaid/relocaid-api/internal/config"
	"github.com/relocaid/relocaid-api/internal/infrastructure/database"
	"github.com/relocaid/relocaid-api/internal/infrastructure/repository"
	"github.com/relocaid/relocaid-api/internal/presentation/http/handler"
	"github.com/relocaid/relocaid-api/internal/presentation/http/routes"
	"github.com/relocaid/relocaid-api/pkg/email"
	"github.com/relocaid/relocaid-api/pkg/oauth"
	"github.com/relocaid/relocaid-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	lineItemRepo := repository.NewLineItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	templateRepo := repository.NewEmailTemplateRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, lineItemRepo, paymentRepo, submissionRepo, settingsRepo, templateRepo, txManager, emailService)
	paymentService := service.NewPaymentService(invoiceRepo, paymentRepo, txManager)
	submissionService := service.NewSubmissionService(submissionRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	templateService := service.NewTemplateService(templateRepo)
	faqService := service.NewFAQService(faqRepo)
	activityService := service.NewActivityService(activityRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, invoiceRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService, googleOAuthService),
		Invoice:    handler.NewInvoiceHandler(invoiceService, activityService),
		Payment:    handler.NewPaymentHandler(paymentService, activityService),
		Submission: handler.NewSubmissionHandler(submissionService, activityService),
		Settings:   handler.NewSettingsHandler(settingsService, activityService),
		Template:   handler.NewTemplateHandler(templateService, activityService),
		FAQ:        handler.NewFAQHandler(faqService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Activity:   handler.NewActivityHandler(activityService),
		User:       handler.NewUserHandler(userService, activityService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		HealthCheck:     func() error { return database.HealthCheck(db) },
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
