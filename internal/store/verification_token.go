package store

import (
	"bitwise74/chores-api/internal/model"
	"context"
	"fmt"
	"time"
)

func (s *Store) CreateVerificationToken(ctx context.Context, t *model.VerificationToken) error {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create verification token: %w", classify(err))
	}

	return nil
}

func (s *Store) FindVerificationToken(ctx context.Context, token string) (*model.VerificationToken, error) {
	var t model.VerificationToken

	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&t).Error; err != nil {
		return nil, classify(err)
	}

	return &t, nil
}

// DeleteVerificationToken removes a token. Returns ErrNotFound if it was
// already gone, which makes consuming a token a single-use operation.
func (s *Store) DeleteVerificationToken(ctx context.Context, token string) error {
	r := s.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.VerificationToken{})
	if r.Error != nil {
		return fmt.Errorf("failed to delete verification token: %w", classify(r.Error))
	}

	if r.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Store) DeleteExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error) {
	r := s.db.WithContext(ctx).
		Where("expires < ?", now).
		Delete(&model.VerificationToken{})
	if r.Error != nil {
		return 0, fmt.Errorf("failed to delete expired verification tokens: %w", classify(r.Error))
	}

	return r.RowsAffected, nil
}
