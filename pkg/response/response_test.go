package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := map[string]int{
		"VALIDATION_ERROR":    http.StatusBadRequest,
		"INVALID_EMAIL":       http.StatusBadRequest,
		"INVALID_PASSWORD":    http.StatusBadRequest,
		"EMAIL_EXISTS":        http.StatusConflict,
		"INVALID_CREDENTIALS": http.StatusUnauthorized,
		"TOKEN_INVALID":       http.StatusNotFound,
		"TOKEN_EXPIRED":       http.StatusBadRequest,
		"RATE_LIMITED":        http.StatusTooManyRequests,
		"SERVER_ERROR":        http.StatusInternalServerError,
		"SOMETHING_ELSE":      http.StatusInternalServerError,
	}

	for code, want := range tests {
		assert.Equal(t, want, StatusFor(code), code)
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, http.StatusBadRequest, CodeValidation, "Invalid email format")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{
		"success": false,
		"error": map[string]any{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid email format",
		},
	}, body)
}
