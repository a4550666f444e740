package mailer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	mail "github.com/wneessen/go-mail"

	"github.com/stablewise/stablewise-backend/internal/config"
)

// SMTPMailer submits mail directly over authenticated SMTP. Settings are
// resolved from the environment per send, so credential rotation does not
// require a restart. Port 465 uses implicit TLS; any other port upgrades via
// STARTTLS.
type SMTPMailer struct{}

func (s *SMTPMailer) Send(ctx context.Context, msg *Message) (string, error) {
	if err := msg.validate(); err != nil {
		return "", err
	}
	msg.applyDefaults()

	cfg := config.Mail()
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return "", ErrNotConfigured
	}

	m, id, err := composeSMTP(cfg, msg)
	if err != nil {
		return "", err
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return id, nil
}

// composeSMTP renders a resolved Message into an SMTP envelope. Reply-To
// carries the message's value, which applyDefaults has already pointed at the
// sender unless the caller supplied an explicit address.
func composeSMTP(cfg config.MailConfig, msg *Message) (*mail.Msg, string, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(cfg.FromName, cfg.FromEmail); err != nil {
		return nil, "", fmt.Errorf("%w: invalid from address", ErrNotConfigured)
	}
	if err := m.To(msg.To); err != nil {
		return nil, "", fmt.Errorf("%w: invalid recipient address", ErrInvalidMessage)
	}
	if err := m.ReplyTo(msg.ReplyTo); err != nil {
		return nil, "", fmt.Errorf("%w: invalid reply-to address", ErrInvalidMessage)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	id := uuid.NewString()
	m.SetMessageIDWithValue(id)
	return m, id, nil
}
