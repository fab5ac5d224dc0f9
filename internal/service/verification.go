package service

import (
	"bitwise74/chores-api/internal/model"
	"bitwise74/chores-api/internal/store"
	"bitwise74/chores-api/pkg/security"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultVerificationTTL = 24 * time.Hour
	DefaultResendCooldown  = 2 * time.Minute
)

type Mailer interface {
	SendVerificationMail(ctx context.Context, t *model.VerificationToken) error
}

// VerificationService owns the email verification token lifecycle:
// issued -> consumed, or issued -> expired. Expired tokens are never
// accepted, whether or not the sweeper has removed them yet.
type VerificationService struct {
	repo     store.Repository
	mailer   Mailer
	ttl      time.Duration
	cooldown time.Duration
	now      func() time.Time
}

func NewVerificationService(repo store.Repository, mailer Mailer, ttl, cooldown time.Duration) *VerificationService {
	if ttl <= 0 {
		ttl = DefaultVerificationTTL
	}

	if cooldown <= 0 {
		cooldown = DefaultResendCooldown
	}

	return &VerificationService{
		repo:     repo,
		mailer:   mailer,
		ttl:      ttl,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Issue creates and stores a new token for email
func (s *VerificationService) Issue(ctx context.Context, email string) (*model.VerificationToken, error) {
	expires := s.now().Add(s.ttl)

	t, err := security.MakeVerificationToken(&security.VerificationTokenOpts{
		Identifier: email,
		ExpiresAt:  &expires,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	if err := s.repo.CreateVerificationToken(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Send issues a token for email and mails it
func (s *VerificationService) Send(ctx context.Context, email string) error {
	t, err := s.Issue(ctx, email)
	if err != nil {
		return err
	}

	if err := s.mailer.SendVerificationMail(ctx, t); err != nil {
		return fmt.Errorf("failed to send verification mail: %w", err)
	}

	return nil
}

// Consume marks the owner of token as verified and deletes the token.
// Unknown or already used tokens give ErrTokenInvalid, expired ones
// ErrTokenExpired and are left untouched.
func (s *VerificationService) Consume(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	t, err := s.repo.FindVerificationToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find verification token: %w", err)
	}

	now := s.now()
	if t.Expired(now) {
		return nil, ErrTokenExpired
	}

	var u *model.User

	err = s.repo.Transaction(ctx, func(tx store.Repository) error {
		// Deleting first means a concurrent consume of the same token finds
		// nothing to delete and rolls back
		if err := tx.DeleteVerificationToken(ctx, token); err != nil {
			return err
		}

		if err := tx.MarkEmailVerified(ctx, t.Identifier, now); err != nil {
			return err
		}

		found, err := tx.FindUserByEmail(ctx, t.Identifier)
		if err != nil {
			return err
		}

		u = found
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to consume verification token: %w", err)
	}

	return u, nil
}

// Resend mails a fresh token to an unverified user. Unknown and already
// verified emails are silently ignored so the endpoint can't be used to
// probe for accounts.
func (s *VerificationService) Resend(ctx context.Context, email string) error {
	u, err := s.repo.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if u.Verified() {
		return nil
	}

	now := s.now()

	r, err := s.repo.FindResendRequest(ctx, u.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to find resend request: %w", err)
	}

	if r != nil && now.Before(r.Cooldown) {
		return ErrResendCooldown
	}

	if err := s.Send(ctx, u.Email); err != nil {
		return err
	}

	err = s.repo.SaveResendRequest(ctx, &model.ResendRequest{
		UserID:     u.ID,
		LastResend: now,
		Cooldown:   now.Add(s.cooldown),
	})
	if err != nil {
		// The mail is already out, a missing cooldown only loosens the throttle
		zap.L().Warn("Failed to save resend request", zap.String("userID", u.ID), zap.Error(err))
	}

	return nil
}
