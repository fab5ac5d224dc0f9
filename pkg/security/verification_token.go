package security

import (
	"bitwise74/chores-api/internal/model"
	"bitwise74/chores-api/pkg/util"
	"errors"
	"time"
)

const (
	tokenSize = 32
)

type VerificationTokenOpts struct {
	// Email address the token proves control of
	Identifier string
	ExpiresAt  *time.Time
}

func MakeVerificationToken(o *VerificationTokenOpts) (*model.VerificationToken, error) {
	if o == nil {
		return nil, errors.New("no token options provided")
	}

	if o.Identifier == "" {
		return nil, errors.New("no identifier provided")
	}

	if o.ExpiresAt == nil {
		return nil, errors.New("no expiry provided")
	}

	token, err := util.GenerateToken(tokenSize)
	if err != nil {
		return nil, err
	}

	return &model.VerificationToken{
		Identifier: o.Identifier,
		Token:      token,
		Expires:    *o.ExpiresAt,
	}, nil
}
