package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bilgisen/uknews/internal/middleware"
)

// AppOptions configures the Fiber app.
type AppOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ErrorHandler fiber.ErrorHandler
}

// NewApp creates the Fiber app with the settings the routes rely on.
func NewApp(opts AppOptions) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: opts.ErrorHandler,
		// slugs and city names may arrive percent-encoded
		UnescapePath:          true,
		DisableStartupMessage: true,
	})
}

// RouteOptions carries what the routes need besides the handlers.
type RouteOptions struct {
	AdminAPIKey string
	StaticPath  string
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, h *Handlers, opts RouteOptions) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.Language())
	app.Use(middleware.RequestLogger())

	if opts.StaticPath != "" {
		app.Static("/static", opts.StaticPath)
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API group with versioning
	api := app.Group("/api/v1")

	// Health check endpoint
	api.Get("/health", h.HealthCheck)

	// Admin endpoints
	admin := api.Group("/admin", middleware.AdminOnly(opts.AdminAPIKey))
	{
		admin.Post("/cache/purge", h.PurgeCache)
	}

	// Pages
	app.Get("/", h.Home)
	app.Get("/article/:slug", h.Article)
	app.Get("/category/:category", middleware.ValidateQuery[PageQuery](), h.Category)
	app.Get("/city/:city", middleware.ValidateQuery[PageQuery](), h.City)
	app.Get("/categories", h.Categories)
	app.Get("/cities", h.Cities)
	app.Get("/lang/:lang", h.SwitchLanguage)

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
