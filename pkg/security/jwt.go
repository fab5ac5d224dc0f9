package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("authorization token invalid")

// SessionClaims is what gets signed into the auth_token cookie. The session
// ID points at a server side session row so logging out revokes the token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

type JWTSigner struct {
	Secret []byte
}

func NewJWTSigner(secret string) *JWTSigner {
	return &JWTSigner{Secret: []byte(secret)}
}

func (s *JWTSigner) Sign(sessionID, userID string, issuedAt, expiresAt time.Time) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
		Type:      "auth",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	return t.SignedString(s.Secret)
}

func (s *JWTSigner) Parse(tokenStr string) (*SessionClaims, error) {
	var claims SessionClaims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return s.Secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if !token.Valid || claims.Type != "auth" || claims.SessionID == "" {
		return nil, ErrTokenInvalid
	}

	return &claims, nil
}
