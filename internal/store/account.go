package store

import (
	"bitwise74/chores-api/internal/model"
	"context"
	"fmt"
)

func (s *Store) CreateAccount(ctx context.Context, a *model.Account) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", classify(err))
	}

	return nil
}

func (s *Store) FindAccount(ctx context.Context, provider, providerAccountID string) (*model.Account, error) {
	var a model.Account

	err := s.db.WithContext(ctx).
		Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		First(&a).
		Error
	if err != nil {
		return nil, classify(err)
	}

	return &a, nil
}
