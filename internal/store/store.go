// Package store is the data access layer. It hides gorm from the services and
// turns driver failures into the typed errors below.
package store

import (
	"bitwise74/chores-api/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrUniqueViolation is returned when a write hits a unique constraint
	ErrUniqueViolation = errors.New("unique constraint violation")
	ErrNotFound        = errors.New("record not found")
)

// Repository is everything the services need from the credential store
type Repository interface {
	CreateUser(ctx context.Context, u *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id string) (*model.User, error)
	MarkEmailVerified(ctx context.Context, email string, at time.Time) error
	SetUserImage(ctx context.Context, id, image string) error

	CreateAccount(ctx context.Context, a *model.Account) error
	FindAccount(ctx context.Context, provider, providerAccountID string) (*model.Account, error)

	CreateSession(ctx context.Context, s *model.Session) error
	FindSession(ctx context.Context, sessionToken string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionToken string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)

	CreateVerificationToken(ctx context.Context, t *model.VerificationToken) error
	FindVerificationToken(ctx context.Context, token string) (*model.VerificationToken, error)
	DeleteVerificationToken(ctx context.Context, token string) error
	DeleteExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error)

	FindResendRequest(ctx context.Context, userID string) (*model.ResendRequest, error)
	SaveResendRequest(ctx context.Context, r *model.ResendRequest) error

	ListAchievements(ctx context.Context) ([]model.Achievement, error)

	// Transaction runs fn against a repository bound to a single database
	// transaction. Returning an error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}

type Store struct {
	db *gorm.DB
}

var _ Repository = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// classify maps gorm errors to the package sentinels while keeping the
// original error in the chain
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	}

	return err
}

func (s *Store) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
