package model

import (
	"time"

	"gorm.io/gorm"
)

type Achievement struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Points      int    `gorm:"not null;default:0" json:"points"`
	// JSON document, e.g. {"type":"chore_count","count":1}
	Requirement string    `json:"requirement"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	return assignID(&a.ID)
}

type UserAchievement struct {
	ID            string    `gorm:"primaryKey"`
	UserID        string    `gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementID string    `gorm:"not null;uniqueIndex:idx_user_achievement"`
	EarnedAt      time.Time `gorm:"autoCreateTime"`

	Achievement Achievement `gorm:"foreignKey:AchievementID;constraint:OnDelete:CASCADE"`
}

func (u *UserAchievement) BeforeCreate(tx *gorm.DB) error {
	return assignID(&u.ID)
}
