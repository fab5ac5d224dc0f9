package model

import "time"

// ResendRequest throttles how often a verification mail can be re-sent to a user
type ResendRequest struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	UserID     string `gorm:"uniqueIndex;not null"`
	LastResend time.Time
	Cooldown   time.Time
}
