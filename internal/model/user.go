// Package model defines database models
package model

import (
	"bitwise74/chores-api/pkg/util"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Bcrypt hash. Nil for users that only ever signed in through an OAuth provider
	Password      *string    `json:"-"`
	EmailVerified *time.Time `json:"emailVerified"`
	Image         *string    `json:"image"`

	HouseholdID      *string `gorm:"index" json:"householdId"`
	IsHouseholdAdmin bool    `gorm:"not null;default:false" json:"isHouseholdAdmin"`
	Points           int     `gorm:"not null;default:0;check:points >= 0" json:"points"`
	Level            int     `gorm:"not null;default:1;check:level >= 1" json:"level"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Accounts      []Account         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sessions      []Session         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ResendRequest *ResendRequest    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Completions   []ChoreCompletion `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Achievements  []UserAchievement `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	return assignID(&u.ID)
}

// HasPassword reports whether the user can sign in with credentials
func (u *User) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}

func (u *User) Verified() bool {
	return u.EmailVerified != nil
}

func assignID(id *string) error {
	if *id != "" {
		return nil
	}

	v, err := util.NewID()
	if err != nil {
		return err
	}

	*id = v
	return nil
}
