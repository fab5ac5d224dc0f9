package store

import (
	"bitwise74/chores-api/internal/model"
	"context"
	"fmt"
	"time"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", classify(err))
	}

	return nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, classify(err)
	}

	return &u, nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User

	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, classify(err)
	}

	return &u, nil
}

// MarkEmailVerified sets emailVerified on the user owning email. Returns
// ErrNotFound if there's no such user.
func (s *Store) MarkEmailVerified(ctx context.Context, email string, at time.Time) error {
	r := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Update("email_verified", at)
	if r.Error != nil {
		return fmt.Errorf("failed to mark email verified: %w", classify(r.Error))
	}

	if r.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Store) SetUserImage(ctx context.Context, id, image string) error {
	r := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("image", image)
	if r.Error != nil {
		return fmt.Errorf("failed to update user image: %w", classify(r.Error))
	}

	if r.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
