package controllers

import (
	"net/http"

	"github.com/aurumchit/agent_end/repository"
	"github.com/aurumchit/agent_end/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the current agent's profile from the upstream backend.
func GetProfile(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	agent, err := gatewayFor(c).GetAgentByID(c.Request.Context(), user.ID)
	if err != nil {
		writeUpstreamError(c, err, "could not load agent profile")
		return
	}

	utils.SuccessResponse(c, agent, "")
}

// SetProfileImage stores the picked profile image URI wholesale.
func SetProfileImage(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	device := deviceID(c)
	if device == "" {
		utils.ErrorResponse(c, "missing X-Device-Id header", http.StatusBadRequest)
		return
	}

	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	key := repository.KVKeyProfileImage(user.ID)
	if err := store.Put(c.Request.Context(), device, key, req.Image); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "profile image saved")
}

// GetProfileImage returns the stored profile image URI, empty when none
// was ever picked.
func GetProfileImage(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	device := deviceID(c)
	if device == "" {
		utils.ErrorResponse(c, "missing X-Device-Id header", http.StatusBadRequest)
		return
	}

	image, err := store.Get(c.Request.Context(), device, repository.KVKeyProfileImage(user.ID))
	if err != nil {
		if err == repository.ErrKeyNotFound {
			utils.SuccessResponse(c, gin.H{"image": ""}, "")
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"image": image}, "")
}
