package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablewise/stablewise-backend/internal/mailer"
	"github.com/stablewise/stablewise-backend/internal/models"
	"github.com/stablewise/stablewise-backend/internal/services"
)

type stubSignupStore struct {
	created []*models.WaitlistSignup
	err     error
}

func (s *stubSignupStore) Create(ctx context.Context, signup *models.WaitlistSignup) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, signup)
	return nil
}

func waitlistApp(store services.SignupStore, relay mailer.Mailer) *fiber.App {
	app := fiber.New()
	h := NewWaitlistHandler(services.NewWaitlistService(store, relay, "https://stablewise.org"))
	app.Post("/api/waitlist", h.Signup)
	return app
}

func TestWaitlistSignup(t *testing.T) {
	validBody := func() map[string]any {
		return map[string]any{"full_name": "Jane Rider", "email": "jane@example.com", "country": "Ireland"}
	}

	t.Run("should create the signup and confirm the email", func(t *testing.T) {
		store := &stubSignupStore{}
		app := waitlistApp(store, &stubMailer{})

		status, body := postJSON(t, app, "/api/waitlist", validBody())
		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, true, body["email_sent"])

		require.Len(t, store.created, 1)
		assert.Equal(t, "Jane Rider", store.created[0].FullName)
		require.NotNil(t, store.created[0].Country)
		assert.Equal(t, "Ireland", *store.created[0].Country)
	})

	t.Run("should still report success when only the email fails", func(t *testing.T) {
		store := &stubSignupStore{}
		app := waitlistApp(store, &stubMailer{err: mailer.ErrSendFailed})

		status, body := postJSON(t, app, "/api/waitlist", validBody())
		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, false, body["email_sent"])
		assert.Len(t, store.created, 1)
	})

	t.Run("should fail the request when the signup cannot be saved", func(t *testing.T) {
		store := &stubSignupStore{err: errors.New("connection refused")}
		relay := &stubMailer{}
		app := waitlistApp(store, relay)

		status, _ := postJSON(t, app, "/api/waitlist", validBody())
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Empty(t, relay.sent)
	})

	t.Run("should reject a signup without a usable email", func(t *testing.T) {
		store := &stubSignupStore{}
		app := waitlistApp(store, &stubMailer{})

		status, body := postJSON(t, app, "/api/waitlist", map[string]any{
			"full_name": "Jane Rider", "email": "not-an-email",
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Full name and a valid email are required", body["message"])
		assert.Empty(t, store.created)
	})
}
