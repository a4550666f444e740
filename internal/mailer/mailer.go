// Package mailer relays buyer inquiries and transactional mail through one of
// several interchangeable transports. The backend is a deployment-time choice;
// every backend honors the same contract: validate before any network I/O,
// attempt delivery exactly once, and fold transport diagnostics into
// ErrSendFailed so they are logged but never shown to callers.
package mailer

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidMessage means a required field is empty. No network attempt
	// is made.
	ErrInvalidMessage = errors.New("mailer: missing required message field")
	// ErrNotConfigured means transport credentials are absent from the
	// environment.
	ErrNotConfigured = errors.New("mailer: transport not configured")
	// ErrSendFailed wraps any transport-level failure.
	ErrSendFailed = errors.New("mailer: send failed")
)

// Message is a single outbound email. It is constructed at submission time,
// consumed once, and discarded.
type Message struct {
	To        string
	FromName  string
	FromEmail string
	Phone     string
	Subject   string
	ReplyTo   string
	HTML      string
}

// Mailer delivers a message and returns the transport-assigned message id.
type Mailer interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// New returns the backend selected by MAIL_BACKEND. Unknown values fall back
// to direct SMTP submission.
func New(backend string) Mailer {
	if backend == "resend" {
		return &ResendMailer{}
	}
	return &SMTPMailer{}
}

func (m *Message) validate() error {
	if m.To == "" || m.FromName == "" || m.FromEmail == "" || m.HTML == "" {
		return ErrInvalidMessage
	}
	return nil
}

// applyDefaults fills the subject and reply-to the way the contact form
// always has: replies go to the person who asked, not to the relay account.
func (m *Message) applyDefaults() {
	if m.Subject == "" {
		m.Subject = fmt.Sprintf("New message from %s via StableWise", m.FromName)
	}
	if m.ReplyTo == "" {
		m.ReplyTo = fmt.Sprintf("%s <%s>", m.FromName, m.FromEmail)
	}
}
