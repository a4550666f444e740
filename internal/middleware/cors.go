package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stablewise/stablewise-backend/internal/config"
)

const (
	allowedHeaders = "Origin, Content-Type, Accept, Authorization"
	allowedMethods = "GET, POST, PUT, DELETE, PATCH, OPTIONS"
)

// SelectOrigin picks the origin to echo for a request. A wildcard entry wins
// outright; a listed origin is echoed back; anything else falls back to the
// first configured entry so an untrusted origin is never reflected.
func SelectOrigin(allowList []string, requested string) string {
	for _, o := range allowList {
		if o == "*" {
			return "*"
		}
	}
	for _, o := range allowList {
		if o == requested && requested != "" {
			return requested
		}
	}
	if len(allowList) > 0 {
		return allowList[0]
	}
	return "*"
}

// ParseOrigins splits the comma-separated allow-list from configuration.
func ParseOrigins(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// CORS resolves the response origin per request and short-circuits preflight
// with no body processing. Vary: Origin keeps caches keyed correctly.
func CORS(cfg *config.Config) fiber.Handler {
	allowList := ParseOrigins(cfg.CORSOrigins)
	return func(c *fiber.Ctx) error {
		origin := SelectOrigin(allowList, c.Get(fiber.HeaderOrigin))
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderAccessControlAllowHeaders, allowedHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, allowedMethods)
		c.Set(fiber.HeaderVary, fiber.HeaderOrigin)

		if c.Method() == fiber.MethodOptions {
			return c.SendString("ok")
		}
		return c.Next()
	}
}
