package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablewise/stablewise-backend/internal/config"
)

func TestSelectOrigin(t *testing.T) {
	allowList := []string{"https://stablewise.org", "https://staging.stablewise.org"}

	t.Run("should short-circuit on a wildcard entry", func(t *testing.T) {
		assert.Equal(t, "*", SelectOrigin([]string{"*"}, "https://evil.example"))
		assert.Equal(t, "*", SelectOrigin([]string{"https://stablewise.org", "*"}, "https://evil.example"))
	})

	t.Run("should echo a listed origin", func(t *testing.T) {
		assert.Equal(t, "https://staging.stablewise.org",
			SelectOrigin(allowList, "https://staging.stablewise.org"))
	})

	t.Run("should fall back to the first entry for unlisted origins", func(t *testing.T) {
		assert.Equal(t, "https://stablewise.org", SelectOrigin(allowList, "https://evil.example"))
	})

	t.Run("should fall back to the first entry when no origin is sent", func(t *testing.T) {
		assert.Equal(t, "https://stablewise.org", SelectOrigin(allowList, ""))
	})

	t.Run("should allow everything when the list is empty", func(t *testing.T) {
		assert.Equal(t, "*", SelectOrigin(nil, "https://anywhere.example"))
	})
}

func TestParseOrigins(t *testing.T) {
	t.Run("should split and trim entries", func(t *testing.T) {
		got := ParseOrigins(" https://a.example , https://b.example,")
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, got)
	})

	t.Run("should return nothing for an empty value", func(t *testing.T) {
		assert.Empty(t, ParseOrigins(""))
	})
}

func TestCORSMiddleware(t *testing.T) {
	cfg := &config.Config{CORSOrigins: "https://stablewise.org,https://staging.stablewise.org"}

	newApp := func() *fiber.App {
		app := fiber.New()
		app.Use(CORS(cfg))
		app.Get("/ping", func(c *fiber.Ctx) error {
			return c.SendString("pong")
		})
		return app
	}

	t.Run("should echo a listed origin and vary on it", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://staging.stablewise.org")

		resp, err := newApp().Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "https://staging.stablewise.org", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", resp.Header.Get("Vary"))
	})

	t.Run("should never reflect an unlisted origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://evil.example")

		resp, err := newApp().Test(req)
		require.NoError(t, err)
		assert.Equal(t, "https://stablewise.org", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("should answer preflight without reaching the route", func(t *testing.T) {
		app := newApp()
		req := httptest.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "https://stablewise.org")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "GET, POST, PUT, DELETE, PATCH, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Origin, Content-Type, Accept, Authorization", resp.Header.Get("Access-Control-Allow-Headers"))
	})
}
