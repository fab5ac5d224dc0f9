package model

import (
	"time"

	"gorm.io/gorm"
)

type Session struct {
	ID           string    `gorm:"primaryKey"`
	SessionToken string    `gorm:"uniqueIndex;not null"`
	UserID       string    `gorm:"index;not null"`
	Expires      time.Time `gorm:"index;not null"`
	CreatedAt    time.Time
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	return assignID(&s.ID)
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.Expires)
}
