package model

import (
	"time"

	"gorm.io/gorm"
)

type Chore struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	Frequency   string    `json:"frequency"` // daily, weekly, ...
	HouseholdID string    `gorm:"index;not null" json:"householdId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Completions []ChoreCompletion `gorm:"foreignKey:ChoreID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Chore) BeforeCreate(tx *gorm.DB) error {
	return assignID(&c.ID)
}

type ChoreCompletion struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ChoreID     string    `gorm:"index;not null" json:"choreId"`
	UserID      string    `gorm:"index;not null" json:"userId"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (c *ChoreCompletion) BeforeCreate(tx *gorm.DB) error {
	return assignID(&c.ID)
}
