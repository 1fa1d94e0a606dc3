package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Products       *handlers.ProductsHandler
	Uploads        *handlers.UploadsHandler
	Customizations *handlers.CustomizationsHandler
	Quotes         *handlers.QuotesHandler
	AuthMiddleware *auth.Middleware
	UploadDir      string
}

// RegisterRoutes wires HTTP routes. Uploaded assets are served statically
// under /uploads.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")
	api.Get("/health", cfg.Health.Check)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	api.Get("/products", cfg.Products.List)
	api.Get("/products/:id", cfg.Products.Get)

	api.Post("/upload", cfg.Uploads.Upload)

	api.Post("/customizations", cfg.AuthMiddleware.Handle, cfg.Customizations.Save)
	api.Get("/customizations", cfg.AuthMiddleware.Handle, cfg.Customizations.List)

	// Quote submission is deliberately open; only listing is gated.
	api.Post("/quotes", cfg.Quotes.Submit)
	api.Get("/quotes", cfg.AuthMiddleware.Handle, cfg.Quotes.List)
}
