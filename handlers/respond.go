package handlers

import (
	"servlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates a service-layer error into the HTTP response,
// logging untyped (unexpected) errors at error level.
func respondError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	if code := utils.ErrCode(err); code != "" {
		utils.JSONError(c, status, err.Error(), "")
		return
	}
	utils.GetLogger().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	utils.JSONError(c, status, "Something went wrong. Please try again.", "")
}

// currentUserID returns the authenticated user's ID set by the auth middleware.
func currentUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
