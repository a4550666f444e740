package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mail "github.com/wneessen/go-mail"

	"github.com/stablewise/stablewise-backend/internal/config"
)

func validMessage() *Message {
	return &Message{
		To:        "seller@example.com",
		FromName:  "Jane Buyer",
		FromEmail: "jane@example.com",
		HTML:      "<p>Is this horse still for sale?</p>",
	}
}

func TestMessageValidate(t *testing.T) {
	t.Run("should accept a complete message", func(t *testing.T) {
		assert.NoError(t, validMessage().validate())
	})

	t.Run("should reject an empty required field", func(t *testing.T) {
		for _, mutate := range []func(*Message){
			func(m *Message) { m.To = "" },
			func(m *Message) { m.FromName = "" },
			func(m *Message) { m.FromEmail = "" },
			func(m *Message) { m.HTML = "" },
		} {
			m := validMessage()
			mutate(m)
			assert.ErrorIs(t, m.validate(), ErrInvalidMessage)
		}
	})

	t.Run("should not require phone, subject or reply-to", func(t *testing.T) {
		m := validMessage()
		m.Phone, m.Subject, m.ReplyTo = "", "", ""
		assert.NoError(t, m.validate())
	})
}

func TestMessageApplyDefaults(t *testing.T) {
	t.Run("should default the subject to the sender name", func(t *testing.T) {
		m := validMessage()
		m.applyDefaults()
		assert.Equal(t, "New message from Jane Buyer via StableWise", m.Subject)
	})

	t.Run("should point reply-to at the sender", func(t *testing.T) {
		m := validMessage()
		m.applyDefaults()
		assert.Equal(t, "Jane Buyer <jane@example.com>", m.ReplyTo)
	})

	t.Run("should leave explicit values alone", func(t *testing.T) {
		m := validMessage()
		m.Subject = "Re: Caspian"
		m.ReplyTo = "agent@example.com"
		m.applyDefaults()
		assert.Equal(t, "Re: Caspian", m.Subject)
		assert.Equal(t, "agent@example.com", m.ReplyTo)
	})
}

func TestNew(t *testing.T) {
	t.Run("should pick the resend backend", func(t *testing.T) {
		assert.IsType(t, &ResendMailer{}, New("resend"))
	})

	t.Run("should default to smtp", func(t *testing.T) {
		assert.IsType(t, &SMTPMailer{}, New("smtp"))
		assert.IsType(t, &SMTPMailer{}, New(""))
		assert.IsType(t, &SMTPMailer{}, New("carrier-pigeon"))
	})
}

func TestSMTPMailerSend(t *testing.T) {
	t.Run("should fail fast on an invalid message", func(t *testing.T) {
		m := validMessage()
		m.To = ""
		_, err := (&SMTPMailer{}).Send(context.Background(), m)
		assert.ErrorIs(t, err, ErrInvalidMessage)
	})

	t.Run("should report missing credentials without attempting delivery", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "")
		t.Setenv("SMTP_USER", "")
		t.Setenv("SMTP_PASS", "")

		_, err := (&SMTPMailer{}).Send(context.Background(), validMessage())
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestComposeSMTP(t *testing.T) {
	cfg := config.MailConfig{FromName: "StableWise", FromEmail: "relay@stablewise.org"}

	t.Run("should keep an explicit reply-to on the envelope", func(t *testing.T) {
		m := validMessage()
		m.ReplyTo = "Agent Smith <agent@example.com>"
		m.applyDefaults()

		env, _, err := composeSMTP(cfg, m)
		require.NoError(t, err)

		header := env.GetGenHeader(mail.HeaderReplyTo)
		require.Len(t, header, 1)
		assert.Contains(t, header[0], "agent@example.com")
		assert.NotContains(t, header[0], "jane@example.com")
	})

	t.Run("should default reply-to to the sender", func(t *testing.T) {
		m := validMessage()
		m.applyDefaults()

		env, _, err := composeSMTP(cfg, m)
		require.NoError(t, err)

		header := env.GetGenHeader(mail.HeaderReplyTo)
		require.Len(t, header, 1)
		assert.Contains(t, header[0], "jane@example.com")
	})

	t.Run("should send from the relay identity, not the inquirer", func(t *testing.T) {
		m := validMessage()
		m.applyDefaults()

		env, _, err := composeSMTP(cfg, m)
		require.NoError(t, err)

		from := env.GetAddrHeader(mail.HeaderFrom)
		require.Len(t, from, 1)
		assert.Equal(t, "relay@stablewise.org", from[0].Address)
	})

	t.Run("should return the generated message id", func(t *testing.T) {
		m := validMessage()
		m.applyDefaults()

		_, id, err := composeSMTP(cfg, m)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})
}

func TestResendMailerSend(t *testing.T) {
	t.Run("should fail fast on an invalid message", func(t *testing.T) {
		m := validMessage()
		m.HTML = ""
		_, err := (&ResendMailer{}).Send(context.Background(), m)
		assert.ErrorIs(t, err, ErrInvalidMessage)
	})

	t.Run("should report a missing API key", func(t *testing.T) {
		t.Setenv("RESEND_API_KEY", "")

		_, err := (&ResendMailer{}).Send(context.Background(), validMessage())
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
