package controllers

import (
	"github.com/aurumchit/agent_end/config"
	"github.com/aurumchit/agent_end/gateway"
	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/repository"
	"github.com/aurumchit/agent_end/service"

	"github.com/gin-gonic/gin"
)

var (
	gateways *gateway.Set
	store    *repository.KVStore
	resolver *service.SessionResolver
)

// Setup wires the controller dependencies. Must run before routes are served.
func Setup(cfg *config.Config) {
	gateways = gateway.NewSet(cfg.ChitBaseURL, cfg.GoldBaseURL, cfg.UpstreamWait)
	store = repository.NewKVStore()
	resolver = service.NewSessionResolver(store)
}

// productLine reads the product line header, defaulting to chit.
func productLine(c *gin.Context) models.ProductLine {
	return models.ProductLineFrom(c.GetHeader("X-Product-Line"))
}

// gatewayFor returns the upstream client for the request's product line.
func gatewayFor(c *gin.Context) *gateway.Client {
	return gateways.ForLine(productLine(c))
}

// deviceID identifies the device-scoped slice of the persisted store.
func deviceID(c *gin.Context) string {
	return c.GetHeader("X-Device-Id")
}
