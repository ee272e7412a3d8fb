// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lifesync/backend/internal/integration/entrypoint/controller"
	"github.com/lifesync/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	categoryController  *controller.CategoryController
	noteController      *controller.NoteController
	dashboardController *controller.DashboardController
	reportController    *controller.ReportController
	signInRateLimiter   *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	noteController *controller.NoteController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	signInRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		categoryController:  categoryController,
		noteController:      noteController,
		dashboardController: dashboardController,
		reportController:    reportController,
		signInRateLimiter:   signInRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.signInRateLimiter != nil {
			auth := api.Group("/auth")
			{
				auth.POST("/sign-up", r.authController.SignUp)
				auth.POST("/sign-in", r.signInRateLimiter.Middleware(), r.authController.SignIn)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/sign-out", r.authController.SignOut)
				auth.POST("/verify-email", r.authController.VerifyEmail)
				auth.POST("/password-strength", r.authController.PasswordStrength)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := api.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Note routes (require authentication)
		if r.noteController != nil && r.authMiddleware != nil {
			notes := api.Group("/notes")
			notes.Use(r.authMiddleware.Authenticate())
			{
				notes.GET("", r.noteController.List)
				notes.POST("", r.noteController.Create)
				notes.PATCH("/:id", r.noteController.Update)
				notes.DELETE("/:id", r.noteController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := api.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Get)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := api.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.List)
				reports.POST("/generate", r.reportController.Generate)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
