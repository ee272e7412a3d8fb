// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lifesync/backend/config"
	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/application/usecase/auth"
	"github.com/lifesync/backend/internal/application/usecase/category"
	"github.com/lifesync/backend/internal/application/usecase/dashboard"
	"github.com/lifesync/backend/internal/application/usecase/note"
	usecasereport "github.com/lifesync/backend/internal/application/usecase/report"
	infradb "github.com/lifesync/backend/internal/infra/db"
	"github.com/lifesync/backend/internal/infra/server/router"
	"github.com/lifesync/backend/internal/integration/adapters"
	"github.com/lifesync/backend/internal/integration/email"
	"github.com/lifesync/backend/internal/integration/email/templates"
	"github.com/lifesync/backend/internal/integration/entrypoint/controller"
	"github.com/lifesync/backend/internal/integration/entrypoint/middleware"
	"github.com/lifesync/backend/internal/integration/persistence"
	"github.com/lifesync/backend/internal/integration/report"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Redis        *redis.Client
	Router       *router.Router
	EmailWorker  *email.Worker
	ReportWorker *report.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	noteRepo := persistence.NewNoteRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	verificationTokenService := adapters.NewVerificationTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo)

	var insightService adapter.InsightService
	if cfg.AI.Enabled && cfg.AI.GeminiAPIKey != "" {
		insightService = adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	} else {
		slog.Info("AI insights disabled, reports will be generated without insights")
	}

	// Create auth use cases
	signUpUseCase := auth.NewSignUpUseCase(userRepo, categoryRepo, passwordService, tokenService, verificationTokenService, emailService, cfg.Email.AppBaseURL)
	signInUseCase := auth.NewSignInUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	signOutUseCase := auth.NewSignOutUseCase(tokenService)
	verifyEmailUseCase := auth.NewVerifyEmailUseCase(userRepo, verificationTokenService)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, noteRepo)

	// Create note use cases
	createNoteUseCase := note.NewCreateNoteUseCase(noteRepo, categoryRepo)
	listNotesUseCase := note.NewListNotesUseCase(noteRepo)
	updateNoteUseCase := note.NewUpdateNoteUseCase(noteRepo, categoryRepo)
	deleteNoteUseCase := note.NewDeleteNoteUseCase(noteRepo)

	// Create dashboard use case
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(dashboardRepo, noteRepo)

	// Create report use cases
	generateReportUseCase := usecasereport.NewGenerateReportUseCase(reportRepo, noteRepo, categoryRepo, userRepo, insightService, emailService, cfg.Email.AppBaseURL)
	listReportsUseCase := usecasereport.NewListReportsUseCase(reportRepo)
	generateWeeklyReportsUseCase := usecasereport.NewGenerateWeeklyReportsUseCase(userRepo, generateReportUseCase, slog.Default())

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return redisClient != nil && infradb.RedisHealthCheck(redisClient)
		},
	)

	authController := controller.NewAuthController(
		signUpUseCase,
		signInUseCase,
		refreshTokenUseCase,
		signOutUseCase,
		verifyEmailUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	noteController := controller.NewNoteController(
		createNoteUseCase,
		listNotesUseCase,
		updateNoteUseCase,
		deleteNoteUseCase,
	)

	dashboardController := controller.NewDashboardController(getDashboardUseCase)

	reportController := controller.NewReportController(generateReportUseCase, listReportsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var signInRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		signInRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "sign-in", 1000, 1*time.Minute)
	} else {
		signInRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "sign-in", cfg.RateLimit.MaxAttempts, cfg.RateLimit.WindowDuration)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		noteController,
		dashboardController,
		reportController,
		signInRateLimiter,
		authMiddleware,
	)

	// Create workers
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create email template renderer: %w", err)
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
		sender = email.NewMockEmailSender()
	}

	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	reportWorker := report.NewWorker(generateWeeklyReportsUseCase, report.WorkerConfig{
		CheckInterval: cfg.Report.CheckInterval,
	}, slog.Default())

	return &Injector{
		Config:       cfg,
		DB:           db,
		Redis:        redisClient,
		Router:       r,
		EmailWorker:  emailWorker,
		ReportWorker: reportWorker,
	}, nil
}
