package controllers

import (
	"net/http"

	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/service"
	"github.com/aurumchit/agent_end/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardMetrics resolves the session and aggregates the month's
// target progress plus today's collection total.
//
// Resolution strictly precedes the metric fetches. The two metric lookups
// then run concurrently inside the aggregator with independent failure
// domains, so the screen always gets a usable (possibly zeroed) payload.
func GetDashboardMetrics(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	gw := gatewayFor(c)

	// prefer the rehydrated profile; fall back to a fresh fetch when the
	// store holds nothing for this device
	var agent *models.AgentInfo
	resolution := resolver.Resolve(c.Request.Context(), deviceID(c), models.ResolveRequest{})
	if resolution.Resolved() && resolution.AgentInfo != nil && resolution.AgentInfo.ID == user.ID {
		agent = resolution.AgentInfo
	}

	if agent == nil {
		agent, err = gw.GetAgentByID(c.Request.Context(), user.ID)
		if err != nil {
			writeUpstreamError(c, err, "could not load agent profile")
			return
		}
	}

	metrics := service.NewMetricsAggregator(gw).Collect(c.Request.Context(), agent)

	utils.SuccessResponse(c, gin.H{
		"metrics":     metrics,
		"permissions": agent.Permissions,
	}, "")
}
