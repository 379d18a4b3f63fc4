package handlers

import (
	"net/http"

	"servlink/utils"

	"github.com/gin-gonic/gin"
)

// GetMeHandler returns the authenticated user's account.
func GetMeHandler(c *gin.Context) {
	userRec, err := userService.GetUserByID(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userRec)
}

// UpdateMeHandler updates the authenticated user's mutable account fields.
func UpdateMeHandler(c *gin.Context) {
	var req struct {
		DisplayName string `json:"displayName"`
		FCMToken    string `json:"fcmToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	userID := currentUserID(c)
	if req.FCMToken != "" {
		if err := userService.UpdateFCMToken(userID, req.FCMToken); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.DisplayName != "" {
		updated, err := userService.UpdateDisplayName(userID, req.DisplayName)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
		return
	}

	userRec, err := userService.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userRec)
}

// DeleteMeHandler removes the authenticated account.
func DeleteMeHandler(c *gin.Context) {
	if err := userService.DeleteUser(currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
