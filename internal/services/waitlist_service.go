package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/stablewise/stablewise-backend/internal/config"
	"github.com/stablewise/stablewise-backend/internal/mailer"
	"github.com/stablewise/stablewise-backend/internal/models"
)

var (
	// ErrSignupPersist means the signup was NOT saved.
	ErrSignupPersist = errors.New("waitlist signup could not be saved")
	// ErrSignupEmail means the signup WAS saved but the confirmation email
	// failed. The two failure domains are deliberately independent.
	ErrSignupEmail = errors.New("waitlist confirmation email failed")
)

// SignupStore persists waitlist signups.
type SignupStore interface {
	Create(ctx context.Context, signup *models.WaitlistSignup) error
}

// WaitlistService records a signup, then sends a best-effort welcome email.
// Persistence failure aborts; email failure never rolls the signup back.
type WaitlistService struct {
	store   SignupStore
	mail    mailer.Mailer
	siteURL string
}

func NewWaitlistService(store SignupStore, mail mailer.Mailer, siteURL string) *WaitlistService {
	return &WaitlistService{store: store, mail: mail, siteURL: siteURL}
}

func (s *WaitlistService) Submit(ctx context.Context, signup *models.WaitlistSignup) error {
	if err := s.store.Create(ctx, signup); err != nil {
		return fmt.Errorf("%w: %v", ErrSignupPersist, err)
	}

	from := config.Mail()
	msg := &mailer.Message{
		To:        signup.Email,
		FromName:  from.FromName,
		FromEmail: from.FromEmail,
		ReplyTo:   fmt.Sprintf("%s <%s>", from.FromName, from.FromEmail),
		Subject:   "Welcome to the StableWise Waitlist 🎉",
		HTML:      s.welcomeBody(signup.FullName),
	}

	if _, err := s.mail.Send(ctx, msg); err != nil {
		slog.Error("waitlist confirmation email failed", "email", signup.Email, "error", err)
		return fmt.Errorf("%w: %v", ErrSignupEmail, err)
	}
	return nil
}

func (s *WaitlistService) welcomeBody(fullName string) string {
	return fmt.Sprintf(`
        <div style="font-family: Inter, system-ui, Arial, sans-serif; color: #111; line-height: 1.6; font-size: 14px;">
          <p>Hi %s,</p>
          <p>Thanks for joining the <strong>StableWise</strong> waitlist! 🎉</p>
          <p>As an early signup, you’ll receive <strong>€100 in credits</strong> at launch.</p>
          <p>You can follow our progress or invite friends here:</p>
          <p><a href="%s" target="_blank" rel="noopener noreferrer">%s</a></p>
          <p>Welcome aboard,<br/>The StableWise Team</p>
        </div>`, fullName, s.siteURL, s.siteURL)
}

// GormSignupStore is the database-backed signup store.
type GormSignupStore struct {
	db *gorm.DB
}

func NewGormSignupStore(db *gorm.DB) *GormSignupStore {
	return &GormSignupStore{db: db}
}

func (g *GormSignupStore) Create(ctx context.Context, signup *models.WaitlistSignup) error {
	return g.db.WithContext(ctx).Create(signup).Error
}
