package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablewise/stablewise-backend/internal/mailer"
	"github.com/stablewise/stablewise-backend/internal/models"
	"github.com/stablewise/stablewise-backend/internal/services"
)

type stubMailer struct {
	sent []*mailer.Message
	err  error
}

func (s *stubMailer) Send(ctx context.Context, msg *mailer.Message) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, msg)
	return "stub-id", nil
}

func relayApp(relay mailer.Mailer) *fiber.App {
	app := fiber.New()
	h := NewContactHandler(relay, nil)
	app.Post("/api/relay/contact", h.Relay)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]any) (int, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func validRelayBody() map[string]any {
	return map[string]any{
		"toEmail":   "seller@example.com",
		"fromName":  "Jane Buyer",
		"fromEmail": "jane@example.com",
		"message":   "Is Caspian still available?",
	}
}

func TestRelay(t *testing.T) {
	t.Run("should relay a valid inquiry and return the message id", func(t *testing.T) {
		relay := &stubMailer{}
		status, body := postJSON(t, relayApp(relay), "/api/relay/contact", validRelayBody())

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "stub-id", body["id"])

		require.Len(t, relay.sent, 1)
		msg := relay.sent[0]
		assert.Equal(t, "seller@example.com", msg.To)
		assert.Equal(t, "Jane Buyer", msg.FromName)
		assert.Contains(t, msg.HTML, "Is Caspian still available?")
	})

	t.Run("should escape markup in the rendered inquiry", func(t *testing.T) {
		relay := &stubMailer{}
		reqBody := validRelayBody()
		reqBody["message"] = "<script>alert(1)</script>"
		status, _ := postJSON(t, relayApp(relay), "/api/relay/contact", reqBody)

		assert.Equal(t, fiber.StatusOK, status)
		require.Len(t, relay.sent, 1)
		assert.NotContains(t, relay.sent[0].HTML, "<script>")
		assert.Contains(t, relay.sent[0].HTML, "&lt;script&gt;")
	})

	t.Run("should reject missing fields before touching the transport", func(t *testing.T) {
		for _, field := range []string{"toEmail", "fromName", "fromEmail", "message"} {
			relay := &stubMailer{}
			reqBody := validRelayBody()
			delete(reqBody, field)

			status, body := postJSON(t, relayApp(relay), "/api/relay/contact", reqBody)
			assert.Equal(t, fiber.StatusBadRequest, status, "missing %s", field)
			assert.Equal(t, "Missing required fields", body["message"])
			assert.Empty(t, relay.sent)
		}
	})

	t.Run("should reject a malformed sender address", func(t *testing.T) {
		relay := &stubMailer{}
		reqBody := validRelayBody()
		reqBody["fromEmail"] = "not-an-email"

		status, _ := postJSON(t, relayApp(relay), "/api/relay/contact", reqBody)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Empty(t, relay.sent)
	})

	t.Run("should hide transport diagnostics behind a generic error", func(t *testing.T) {
		relay := &stubMailer{err: mailer.ErrSendFailed}
		status, body := postJSON(t, relayApp(relay), "/api/relay/contact", validRelayBody())

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Email send failed", body["message"])
	})

	t.Run("should report an unconfigured transport distinctly", func(t *testing.T) {
		relay := &stubMailer{err: mailer.ErrNotConfigured}
		status, body := postJSON(t, relayApp(relay), "/api/relay/contact", validRelayBody())

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Email service unavailable", body["message"])
	})
}

// stubDirectory resolves every animal to a single configured contact. An
// empty contact means no active listing.
type stubDirectory struct {
	contact string
}

func (s *stubDirectory) ActiveListing(ctx context.Context, animalID string) (*models.Listing, error) {
	if s.contact == "" {
		return nil, nil
	}
	return &models.Listing{SellerID: uuid.New(), ContactInfo: &s.contact}, nil
}

func (s *stubDirectory) SellerProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return nil, nil
}

func TestContactSeller(t *testing.T) {
	newApp := func(relay mailer.Mailer, dir services.ContactDirectory) *fiber.App {
		app := fiber.New()
		h := NewContactHandler(relay, services.NewContactService(dir))
		app.Post("/api/animals/:id/contact", h.ContactSeller)
		return app
	}

	t.Run("should resolve the recipient server-side", func(t *testing.T) {
		relay := &stubMailer{}
		app := newApp(relay, &stubDirectory{contact: "owner@stable.example"})

		status, body := postJSON(t, app, "/api/animals/abc123/contact", map[string]any{
			"fromName":  "Jane Buyer",
			"fromEmail": "jane@example.com",
			"message":   "Interested in a viewing",
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["ok"])
		require.Len(t, relay.sent, 1)
		assert.Equal(t, "owner@stable.example", relay.sent[0].To)
	})

	t.Run("should return 404 when nobody can be contacted", func(t *testing.T) {
		relay := &stubMailer{}
		app := newApp(relay, &stubDirectory{})

		status, body := postJSON(t, app, "/api/animals/abc123/contact", map[string]any{
			"fromName":  "Jane Buyer",
			"fromEmail": "jane@example.com",
			"message":   "Interested in a viewing",
		})

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "No contact available for this listing", body["message"])
		assert.Empty(t, relay.sent)
	})
}
