package middleware

import (
	"bitwise74/chores-api/pkg/response"
	"bitwise74/chores-api/pkg/validators"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RegistrationKey is where the sanitized registration payload is stored in
// the gin context
const RegistrationKey = "registration"

type RegistrationInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateUserInput checks the shape of a registration payload. A malformed
// email wins over missing fields. On success the returned copy has every
// field trimmed.
func ValidateUserInput(in RegistrationInput) (RegistrationInput, *ValidationError) {
	if in.Email != "" && !validators.IsEmail(in.Email) {
		return RegistrationInput{}, &ValidationError{Message: "Invalid email format"}
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"password", in.Password},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return RegistrationInput{}, &ValidationError{
			Message: "Missing required fields: " + strings.Join(missing, ", "),
		}
	}

	return RegistrationInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: strings.TrimSpace(in.Password),
	}, nil
}

// NewUserValidationMiddleware gates registration requests. The body is read
// through gin's body cache so handlers further down can still bind it.
func NewUserValidationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in RegistrationInput
		if err := c.ShouldBindBodyWith(&in, binding.JSON); err != nil {
			response.Abort(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
			return
		}

		clean, verr := ValidateUserInput(in)
		if verr != nil {
			response.Abort(c, http.StatusBadRequest, response.CodeValidation, verr.Message)
			return
		}

		c.Set(RegistrationKey, clean)
		c.Next()
	}
}
