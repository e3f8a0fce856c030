package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/relocaid/relocaid-api/internal/config"
	"github.com/relocaid/relocaid-api/internal/domain/entity"
	domainRepo "github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/internal/presentation/http/handler"
	"github.com/relocaid/relocaid-api/internal/presentation/http/middleware"
	"github.com/relocaid/relocaid-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Invoice    *handler.InvoiceHandler
	Payment    *handler.PaymentHandler
	Submission *handler.SubmissionHandler
	Settings   *handler.SettingsHandler
	Template   *handler.TemplateHandler
	FAQ        *handler.FAQHandler
	Dashboard  *handler.DashboardHandler
	Activity   *handler.ActivityHandler
	User       *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	HealthCheck     func() error
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(); err != nil {
				c.JSON(503, gin.H{
					"status":  "unavailable",
					"service": deps.Cfg.App.Name,
				})
				return
			}
		}
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Rate limiter shared by the public form and the authenticated API
	rateLimiter := middleware.NewKeyedRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerPublicRoutes(v1, h, rateLimiter)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, rateLimiter *middleware.KeyedRateLimiter) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	// Public website endpoints
	v1.POST("/contact", rateLimiter.Middleware(), h.Submission.Create)
	v1.GET("/faqs", h.FAQ.ListPublic)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}

	// Profile
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetSummary)

	// Invoices
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", middleware.Idempotency(idempotency), h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.PUT("/:id/items", h.Invoice.ReplaceItems)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.POST("/:id/send", h.Invoice.SendEmail)

		// Payments ride on the invoice they belong to
		invoices.GET("/:id/payments", h.Payment.List)
		invoices.POST("/:id/payments", middleware.IdempotencyRequired(idempotency), h.Payment.Record)
	}

	// Submissions
	submissions := protected.Group("/submissions")
	{
		submissions.GET("", h.Submission.List)
		submissions.GET("/:id", h.Submission.Get)
		submissions.PUT("/:id/status", h.Submission.UpdateStatus)
		submissions.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Submission.Delete)
	}

	// Settings (admin only)
	settings := protected.Group("/settings")
	settings.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
	}

	// Email templates (admin only)
	templates := protected.Group("/templates")
	templates.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		templates.GET("", h.Template.List)
		templates.POST("", h.Template.Create)
		templates.GET("/:id", h.Template.Get)
		templates.PUT("/:id", h.Template.Update)
		templates.DELETE("/:id", h.Template.Delete)
	}

	// FAQs (dashboard management; the public listing lives at /faqs)
	faqs := protected.Group("/admin/faqs")
	{
		faqs.GET("", h.FAQ.List)
		faqs.POST("", middleware.RequireRole(entity.RoleAdmin), h.FAQ.Create)
		faqs.GET("/:id", h.FAQ.Get)
		faqs.PUT("/:id", middleware.RequireRole(entity.RoleAdmin), h.FAQ.Update)
		faqs.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.FAQ.Delete)
	}

	// Activity log
	protected.GET("/activity", h.Activity.List)

	// Users (admin only)
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
