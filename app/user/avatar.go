package user

import (
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/pkg/response"
	"bitwise74/chores-api/pkg/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func UserAvatar(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")
	userID := c.GetString("userID")

	if d.Avatars == nil {
		response.Error(c, http.StatusServiceUnavailable, response.CodeUnavailable, "Avatar uploads are disabled")
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "No avatar provided")
		return
	}

	status, f, mime, err := validators.AvatarValidator(fh)
	if err != nil {
		if status == http.StatusInternalServerError {
			zap.L().Error("Failed to read avatar", zap.Error(err), zap.String("requestID", requestID))
			response.ServerError(c)
			return
		}

		code := response.CodeValidation
		if status == http.StatusRequestEntityTooLarge {
			code = response.CodeTooLarge
		}

		response.Error(c, status, code, err.Error())
		return
	}
	defer f.Close()

	url, err := d.Avatars.Upload(c.Request.Context(), userID, f, fh.Size, mime.String(), mime.Extension())
	if err != nil {
		zap.L().Error("Failed to upload avatar", zap.Error(err), zap.String("requestID", requestID))
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"image":   url,
	})
}
