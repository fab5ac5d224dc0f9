package validators

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// PasswordSymbols is the set a password has to draw at least one symbol from
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

var (
	ErrPasswordEmpty     = errors.New("no password provided")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong   = errors.New("password can't be longer than 72 bytes")
	ErrPasswordNoUpper   = errors.New("password must contain an uppercase letter")
	ErrPasswordNoLower   = errors.New("password must contain a lowercase letter")
	ErrPasswordNoDigit   = errors.New("password must contain a number")
	ErrPasswordNoSpecial = errors.New(`password must contain a special character (!@#$%^&*(),.?":{}|<>)`)
)

// PasswordValidator checks the rules in a fixed order and returns the first
// one that isn't met
func PasswordValidator(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if utf8.RuneCountInString(p) < minPasswordLength {
		return ErrPasswordTooShort
	}

	if len(p) > maxPasswordBytes {
		return ErrPasswordTooLong
	}

	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}

	switch {
	case !upper:
		return ErrPasswordNoUpper
	case !lower:
		return ErrPasswordNoLower
	case !digit:
		return ErrPasswordNoDigit
	case !strings.ContainsAny(p, PasswordSymbols):
		return ErrPasswordNoSpecial
	}

	return nil
}
