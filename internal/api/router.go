package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"

	"github.com/duhduh/blog-api/internal/api/handler"
	"github.com/duhduh/blog-api/internal/api/middleware"
	"github.com/duhduh/blog-api/internal/core/service"
	"github.com/duhduh/blog-api/internal/infrastructure/config"
	"github.com/duhduh/blog-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *bun.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, tokens, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)
	requireAuth := middleware.Auth(authService)

	// --- Root, health and metrics (no auth required) ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- User routes ---
	e.POST("/user/signup", authHandler.Signup)
	e.POST("/user/login", authHandler.Login)

	// --- Post routes ---
	e.GET("/posts", postHandler.List)
	e.GET("/posts/:id", postHandler.Get)
	e.POST("/posts", postHandler.Create, requireAuth)
	e.PUT("/posts/:id", postHandler.Update, requireAuth)
	e.DELETE("/posts/:id", postHandler.Delete, requireAuth)

	return e
}
