package store

import (
	"bitwise74/chores-api/internal/model"
	"context"
	"fmt"
)

func (s *Store) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	var out []model.Achievement

	if err := s.db.WithContext(ctx).Order("points asc, name asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", classify(err))
	}

	return out, nil
}
