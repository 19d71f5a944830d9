package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/aurumchit/agent_end/gateway"
	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/repository"
	"github.com/aurumchit/agent_end/utils"

	"github.com/gin-gonic/gin"
)

// Login authenticates against the upstream backend, persists the session
// for later rehydration and issues the app token.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	line := productLine(c)
	gw := gateways.ForLine(line)

	utils.Logger.Info().
		Str("phone", req.Phone).
		Str("productLine", string(line)).
		Msg("login attempt")

	upstream, err := gw.LoginAgent(c.Request.Context(), models.UpstreamLoginRequest{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		writeUpstreamError(c, err, "login failed, please retry")
		return
	}

	if upstream.UserID == "" {
		utils.Logger.Error().Msg("upstream login returned no userId")
		utils.ErrorResponse(c, "login failed, please retry", http.StatusBadGateway)
		return
	}

	agent, err := gw.GetAgentByID(c.Request.Context(), upstream.UserID)
	if err != nil {
		writeUpstreamError(c, err, "could not load agent profile")
		return
	}

	session := models.Session{UserID: upstream.UserID, Token: upstream.Token}

	// persist for rehydration on the next app open; the token alone still
	// works if these writes fail
	if userJSON, err := json.Marshal(session); err == nil {
		if err := store.Put(c.Request.Context(), req.DeviceID, repository.KVKeyUser, string(userJSON)); err != nil {
			utils.LogError(err, map[string]interface{}{"deviceId": req.DeviceID}, "session store write failed")
		}
	}
	if agentJSON, err := json.Marshal(agent); err == nil {
		if err := store.Put(c.Request.Context(), req.DeviceID, repository.KVKeyAgentInfo, string(agentJSON)); err != nil {
			utils.LogError(err, map[string]interface{}{"deviceId": req.DeviceID}, "agent info store write failed")
		}
	}

	token, err := utils.GenerateToken(*agent, line)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("token generation failed")
		utils.ErrorResponse(c, "could not issue login token, please retry", http.StatusInternalServerError)
		return
	}

	utils.Logger.Info().Str("agentId", agent.ID).Msg("login succeeded")
	utils.SuccessResponse(c, models.LoginResponse{
		Token:     token,
		User:      session,
		AgentInfo: *agent,
	}, "")
}

// ResolveSession runs a session resolution cycle for a screen mount. The
// body optionally carries the navigation-supplied session.
func ResolveSession(c *gin.Context) {
	var req models.ResolveRequest
	// an empty body is a store-only resolution, not an error
	_ = c.ShouldBindJSON(&req)

	resolution := resolver.Resolve(c.Request.Context(), deviceID(c), req)

	utils.Logger.Info().
		Str("deviceId", deviceID(c)).
		Str("outcome", string(resolution.Outcome)).
		Msg("session resolution")

	utils.SuccessResponse(c, resolution, "")
}

// Logout clears the persisted session for the device.
func Logout(c *gin.Context) {
	device := deviceID(c)
	if device == "" {
		utils.ErrorResponse(c, "missing X-Device-Id header", http.StatusBadRequest)
		return
	}

	if err := store.Clear(c.Request.Context(), device); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "logged out")
}

// ValidateToken verifies the token and returns a fresh agent profile.
func ValidateToken(c *gin.Context) {
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

	utils.SuccessResponse(c, gin.H{
		"user":        models.Session{UserID: agent.ID},
		"agentInfo":   agent,
		"permissions": agent.Permissions,
	}, "")
}

// writeUpstreamError maps a gateway error to a response, using the
// upstream-provided message when there is one.
func writeUpstreamError(c *gin.Context, err error, fallback string) {
	if statusErr, ok := err.(*gateway.StatusError); ok {
		message := statusErr.Message
		if message == "" {
			message = fallback
		}
		utils.ErrorResponse(c, message, statusErr.StatusCode)
		return
	}

	utils.Logger.Error().Err(err).Msg("upstream unreachable")
	utils.ErrorResponse(c, fallback, http.StatusBadGateway)
}
