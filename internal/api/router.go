package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/bookshelf/books-api/docs"
	"github.com/bookshelf/books-api/internal/api/handler"
	"github.com/bookshelf/books-api/internal/api/middleware"
	"github.com/bookshelf/books-api/internal/core/service"
	"github.com/bookshelf/books-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("books_api"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(pool)
	authService := service.NewAuthService(authRepo, jwtSecret, tokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	bookRepo := postgres.NewBookRepository(pool)
	bookService := service.NewBookService(bookRepo, log)
	bookHandler := handler.NewBookHandler(bookService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Book routes (bearer token required) ---
	book := e.Group("/book", authMiddleware)
	book.GET("", bookHandler.List)
	book.POST("", bookHandler.Create)
	book.PUT("/:id", bookHandler.Update)
	book.DELETE("/:id", bookHandler.Delete)

	// --- Health probes and smoke test (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/test", healthHandler.Status)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
