package model

import (
	"time"

	"gorm.io/gorm"
)

// Account links a user to an identity at an external OAuth provider. A
// (provider, provider account id) pair identifies exactly one user.
type Account struct {
	ID                string      `gorm:"primaryKey" json:"id"`
	UserID            string      `gorm:"index;not null" json:"userId"`
	Type              string      `gorm:"not null" json:"type"`
	Provider          string      `gorm:"not null;uniqueIndex:idx_provider_account" json:"provider"`
	ProviderAccountID string      `gorm:"not null;uniqueIndex:idx_provider_account" json:"providerAccountId"`
	RefreshToken      *string     `json:"-"`
	AccessToken       *string     `json:"-"`
	ExpiresAt         *int64      `json:"expiresAt,omitempty"`
	TokenType         *string     `json:"tokenType,omitempty"`
	Scope             StringSlice `json:"scope,omitempty"`
	IDToken           *string     `json:"-"`
	SessionState      *string     `json:"-"`
	CreatedAt         time.Time   `json:"createdAt"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	return assignID(&a.ID)
}
