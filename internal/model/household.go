package model

import (
	"time"

	"gorm.io/gorm"
)

type Household struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Members []User  `gorm:"foreignKey:HouseholdID;constraint:OnDelete:SET NULL" json:"members,omitempty"`
	Chores  []Chore `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE" json:"chores,omitempty"`
}

func (h *Household) BeforeCreate(tx *gorm.DB) error {
	return assignID(&h.ID)
}
