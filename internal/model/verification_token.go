package model

import "time"

// VerificationToken proves control of the email address in Identifier.
// It is deleted once consumed.
type VerificationToken struct {
	ID         int       `gorm:"primaryKey;autoIncrement"`
	Identifier string    `gorm:"not null;uniqueIndex:idx_identifier_token"`
	Token      string    `gorm:"not null;uniqueIndex;uniqueIndex:idx_identifier_token"`
	Expires    time.Time `gorm:"index;not null"`
	CreatedAt  time.Time
}

func (t *VerificationToken) Expired(now time.Time) bool {
	return now.After(t.Expires)
}
