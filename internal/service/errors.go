package service

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	CodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	CodeEmailExists     ErrorCode = "EMAIL_EXISTS"
	CodeServerError     ErrorCode = "SERVER_ERROR"
)

// AuthError is the structured failure returned by UserService.CreateUser.
// Message is safe to show to users, Err is for logs.
type AuthError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the AuthError in err's chain, or SERVER_ERROR
func CodeOf(err error) ErrorCode {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}

	return CodeServerError
}

var (
	// ErrOAuthEmailExists stops an OAuth sign in from silently taking over a
	// user that registered the same email another way
	ErrOAuthEmailExists = errors.New("user already exists")

	ErrTokenInvalid   = errors.New("verification token invalid")
	ErrTokenExpired   = errors.New("verification token expired")
	ErrResendCooldown = errors.New("verification mail was sent recently")

	ErrSessionInvalid = errors.New("session invalid or expired")
)
