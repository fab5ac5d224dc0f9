package service

import (
	"bitwise74/chores-api/internal/model"
	"bitwise74/chores-api/internal/store"
	"bitwise74/chores-api/pkg/security"
	"bitwise74/chores-api/pkg/util"
	"context"
	"errors"
	"fmt"
	"time"
)

const DefaultSessionTTL = 30 * 24 * time.Hour

// SessionService issues the auth_token cookie. Every token is backed by a
// session row, deleting the row logs the token out.
type SessionService struct {
	repo   store.Repository
	signer *security.JWTSigner
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionService(repo store.Repository, signer *security.JWTSigner, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &SessionService{
		repo:   repo,
		signer: signer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Create starts a session for userID and returns the signed token
func (s *SessionService) Create(ctx context.Context, userID string) (string, *model.Session, error) {
	sessionToken, err := util.GenerateToken(32)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := s.now()
	sess := &model.Session{
		SessionToken: sessionToken,
		UserID:       userID,
		Expires:      now.Add(s.ttl),
	}

	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return "", nil, err
	}

	signed, err := s.signer.Sign(sessionToken, userID, now, sess.Expires)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, sess, nil
}

// Authenticate returns the live session behind a signed token
func (s *SessionService) Authenticate(ctx context.Context, signed string) (*model.Session, error) {
	claims, err := s.signer.Parse(signed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	sess, err := s.repo.FindSession(ctx, claims.SessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	if sess.Expired(s.now()) || sess.UserID != claims.UserID {
		return nil, ErrSessionInvalid
	}

	return sess, nil
}

func (s *SessionService) Revoke(ctx context.Context, sessionToken string) error {
	return s.repo.DeleteSession(ctx, sessionToken)
}
