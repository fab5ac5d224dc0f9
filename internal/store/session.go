package store

import (
	"bitwise74/chores-api/internal/model"
	"context"
	"fmt"
	"time"
)

func (s *Store) CreateSession(ctx context.Context, sess *model.Session) error {
	if err := s.db.WithContext(ctx).Create(sess).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", classify(err))
	}

	return nil
}

func (s *Store) FindSession(ctx context.Context, sessionToken string) (*model.Session, error) {
	var sess model.Session

	if err := s.db.WithContext(ctx).Where("session_token = ?", sessionToken).First(&sess).Error; err != nil {
		return nil, classify(err)
	}

	return &sess, nil
}

func (s *Store) DeleteSession(ctx context.Context, sessionToken string) error {
	err := s.db.WithContext(ctx).
		Where("session_token = ?", sessionToken).
		Delete(&model.Session{}).
		Error
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", classify(err))
	}

	return nil
}

func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	r := s.db.WithContext(ctx).
		Where("expires < ?", now).
		Delete(&model.Session{})
	if r.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", classify(r.Error))
	}

	return r.RowsAffected, nil
}
