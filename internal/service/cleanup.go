package service

import (
	"bitwise74/chores-api/internal/store"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SweepExpired deletes verification tokens and sessions that expired before now
func SweepExpired(ctx context.Context, repo store.Repository, now time.Time) (tokens, sessions int64, err error) {
	tokens, err = repo.DeleteExpiredVerificationTokens(ctx, now)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	sessions, err = repo.DeleteExpiredSessions(ctx, now)
	if err != nil {
		return tokens, 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return tokens, sessions, nil
}

// Cleanup periodically sweeps expired tokens and sessions until ctx is done
func Cleanup(ctx context.Context, t time.Duration, repo store.Repository) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Cleanup attached", zap.Duration("tick_every", t))

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				tokens, sessions, err := SweepExpired(ctx, repo, now)
				if err != nil {
					zap.L().Error("Failed to cleanup database", zap.Error(err))
					continue
				}

				if tokens > 0 || sessions > 0 {
					zap.L().Debug("Cleaned up expired rows",
						zap.Int64("tokens", tokens),
						zap.Int64("sessions", sessions),
					)
				}
			}
		}
	}()
}
