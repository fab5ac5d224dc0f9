// Package service contains the business rules of the auth core
package service

import (
	"bitwise74/chores-api/internal/model"
	"bitwise74/chores-api/internal/store"
	"bitwise74/chores-api/pkg/validators"
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

// PublicUser is the part of a user that may leave the service
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewPublicUser(u *model.User) *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PasswordHasher interface {
	GenerateFromPassword(p string) (string, error)
	VerifyPasswd(p, e string) (bool, error)
}

type UserService struct {
	repo   store.Repository
	hasher PasswordHasher
	now    func() time.Time
}

func NewUserService(repo store.Repository, hasher PasswordHasher) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

// CreateUser registers a credential user. Email is validated before the
// password and neither failure reaches the store. Errors are always *AuthError.
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (*PublicUser, error) {
	if err := validators.EmailValidator(email); err != nil {
		return nil, &AuthError{Code: CodeInvalidEmail, Message: "Invalid email format", Err: err}
	}

	if err := validators.PasswordValidator(password); err != nil {
		return nil, &AuthError{Code: CodeInvalidPassword, Message: sentence(err.Error()), Err: err}
	}

	hash, err := s.hasher.GenerateFromPassword(password)
	if err != nil {
		return nil, &AuthError{Code: CodeServerError, Message: "An unexpected error occurred", Err: err}
	}

	u := &model.User{
		Name:             name,
		Email:            email,
		Password:         &hash,
		Points:           0,
		Level:            1,
		IsHouseholdAdmin: false,
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			return nil, &AuthError{Code: CodeEmailExists, Message: "Email already exists", Err: err}
		}

		return nil, &AuthError{Code: CodeServerError, Message: "An unexpected error occurred", Err: err}
	}

	return NewPublicUser(u), nil
}

// VerifyPassword reports whether password belongs to the user registered
// under email. Unknown emails and OAuth-only users are a plain false.
func (s *UserService) VerifyPassword(ctx context.Context, email, password string) (bool, error) {
	u, err := s.authenticate(ctx, email, password)
	if err != nil {
		return false, err
	}

	return u != nil, nil
}

// Authorize is the credentials sign in contract: the identity on success,
// nil without an error when the credentials don't match.
func (s *UserService) Authorize(ctx context.Context, c Credentials) (*PublicUser, error) {
	if c.Email == "" || c.Password == "" {
		return nil, nil
	}

	u, err := s.authenticate(ctx, c.Email, c.Password)
	if err != nil || u == nil {
		return nil, err
	}

	return NewPublicUser(u), nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", id, err)
	}

	return u, nil
}

func (s *UserService) authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if !u.HasPassword() {
		return nil, nil
	}

	ok, err := s.hasher.VerifyPasswd(password, *u.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return u, nil
}

// sentence upper-cases the first letter of an error message
func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}

	return string(unicode.ToUpper(r)) + msg[size:]
}
