package service

import (
	"bitwise74/chores-api/internal/model"
	"bitwise74/chores-api/internal/store"
	"context"
	"errors"
	"fmt"
)

// OAuthProfile is all the core takes from a provider callback
type OAuthProfile struct {
	Provider          string `json:"provider"`
	ProviderAccountID string `json:"providerAccountId"`
	Email             string `json:"email"`
	Name              string `json:"name"`
}

// CreateFromOAuth creates a verified user together with the account linking
// it to the provider identity. Both rows are written in one transaction.
// Returns ErrOAuthEmailExists if the email is already registered.
func (s *UserService) CreateFromOAuth(ctx context.Context, p OAuthProfile) (*model.User, error) {
	_, err := s.repo.FindUserByEmail(ctx, p.Email)
	if err == nil {
		return nil, ErrOAuthEmailExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	now := s.now()
	u := &model.User{
		Name:             p.Name,
		Email:            p.Email,
		EmailVerified:    &now,
		Points:           0,
		Level:            1,
		IsHouseholdAdmin: false,
	}

	err = s.repo.Transaction(ctx, func(tx store.Repository) error {
		if err := tx.CreateUser(ctx, u); err != nil {
			return err
		}

		return tx.CreateAccount(ctx, &model.Account{
			UserID:            u.ID,
			Type:              "oauth",
			Provider:          p.Provider,
			ProviderAccountID: p.ProviderAccountID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}

	return u, nil
}

// SignInWithOAuth resolves a provider callback to a user. Identities that
// are already linked sign in as their owner, new ones go through
// CreateFromOAuth. created reports which of the two happened.
func (s *UserService) SignInWithOAuth(ctx context.Context, p OAuthProfile) (u *model.User, created bool, err error) {
	if p.Provider == "" || p.ProviderAccountID == "" {
		return nil, false, errors.New("provider and provider account id are required")
	}

	acc, err := s.repo.FindAccount(ctx, p.Provider, p.ProviderAccountID)
	switch {
	case err == nil:
		u, err = s.repo.FindUserByID(ctx, acc.UserID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to find linked user: %w", err)
		}

		return u, false, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, false, fmt.Errorf("failed to find account: %w", err)
	}

	u, err = s.CreateFromOAuth(ctx, p)
	if err != nil {
		return nil, false, err
	}

	return u, true, nil
}
