// Package response writes the JSON envelopes shared by every endpoint
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeRateLimited        = "RATE_LIMITED"
	CodeNotFound           = "NOT_FOUND"
	CodeTooLarge           = "PAYLOAD_TOO_LARGE"
	CodeUnavailable        = "UNAVAILABLE"
	CodeServerError        = "SERVER_ERROR"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Failure struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

func failure(code, message string) Failure {
	return Failure{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	}
}

// Error writes a failure envelope without stopping the handler chain
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, failure(code, message))
}

// Abort writes a failure envelope and stops the handler chain
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, failure(code, message))
}

// ServerError is the answer to anything the client can't fix
func ServerError(c *gin.Context) {
	Abort(c, http.StatusInternalServerError, CodeServerError, "An unexpected error occurred")
}

var statuses = map[string]int{
	CodeValidation:         http.StatusBadRequest,
	"INVALID_EMAIL":        http.StatusBadRequest,
	"INVALID_PASSWORD":     http.StatusBadRequest,
	"EMAIL_EXISTS":         http.StatusConflict,
	CodeInvalidCredentials: http.StatusUnauthorized,
	CodeUnauthorized:       http.StatusUnauthorized,
	CodeTokenInvalid:       http.StatusNotFound,
	CodeTokenExpired:       http.StatusBadRequest,
	CodeRateLimited:        http.StatusTooManyRequests,
	CodeNotFound:           http.StatusNotFound,
	CodeTooLarge:           http.StatusRequestEntityTooLarge,
	CodeUnavailable:        http.StatusServiceUnavailable,
}

// StatusFor maps an error code to its HTTP status. Unknown codes are a 500.
func StatusFor(code string) int {
	if s, ok := statuses[code]; ok {
		return s
	}

	return http.StatusInternalServerError
}
