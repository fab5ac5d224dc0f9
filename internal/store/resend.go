package store

import (
	"bitwise74/chores-api/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm/clause"
)

func (s *Store) FindResendRequest(ctx context.Context, userID string) (*model.ResendRequest, error) {
	var r model.ResendRequest

	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&r).Error; err != nil {
		return nil, classify(err)
	}

	return &r, nil
}

// SaveResendRequest upserts the resend record of r.UserID
func (s *Store) SaveResendRequest(ctx context.Context, r *model.ResendRequest) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_resend", "cooldown"}),
		}).
		Create(r).
		Error
	if err != nil {
		return fmt.Errorf("failed to save resend request: %w", classify(err))
	}

	return nil
}
