package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/stablewise/stablewise-backend/internal/config"
)

// ResendMailer delivers through the Resend HTTP API.
type ResendMailer struct{}

func (r *ResendMailer) Send(ctx context.Context, msg *Message) (string, error) {
	if err := msg.validate(); err != nil {
		return "", err
	}
	msg.applyDefaults()

	cfg := config.Mail()
	if cfg.ResendKey == "" {
		return "", ErrNotConfigured
	}

	client := resend.NewClient(cfg.ResendKey)
	sent, err := client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return sent.Id, nil
}
