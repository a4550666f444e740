package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/stablewise/stablewise-backend/internal/config"
	"github.com/stablewise/stablewise-backend/internal/handlers"
	"github.com/stablewise/stablewise-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	catalogHandler *handlers.CatalogHandler,
	contactHandler *handlers.ContactHandler,
	waitlistHandler *handlers.WaitlistHandler,
	listingHandler *handlers.ListingHandler,
	profileHandler *handlers.ProfileHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public catalogue
	api.Get("/listings", catalogHandler.BrowseListings)
	api.Get("/animals/search", catalogHandler.SearchAnimals)
	api.Get("/animals/:id", catalogHandler.AnimalProfile)
	api.Post("/animals/:id/summary", catalogHandler.GenerateSummary)

	// Waitlist
	api.Post("/waitlist", waitlistHandler.Signup)

	// Mail relay: stricter limit, POST only (OPTIONS is absorbed by the
	// CORS middleware before routing)
	relayLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/relay/contact", relayLimiter, contactHandler.Relay)
	api.Post("/animals/:id/contact", relayLimiter, contactHandler.ContactSeller)

	// Auth — public, stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Seller dashboard (JWT required)
	seller := api.Group("/seller", middleware.JWTProtected(cfg))
	seller.Get("/profile", profileHandler.Get)
	seller.Put("/profile", profileHandler.Upsert)
	seller.Get("/listings", listingHandler.List)
	seller.Post("/listings", listingHandler.Create)
	seller.Put("/listings/:id", listingHandler.Update)
	seller.Delete("/listings/:id", listingHandler.Deactivate)
}
