package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/indiabills/console/internal/sse"
	"github.com/indiabills/console/internal/utils"
)

type HealthHandler struct {
	hub       *sse.Hub
	startedAt time.Time
}

func NewHealthHandler(hub *sse.Hub) *HealthHandler {
	return &HealthHandler{hub: hub, startedAt: time.Now()}
}

// GetHealth reports liveness and basic gauge values.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	utils.Success(c, 200, "OK", gin.H{
		"status":     "up",
		"uptime":     time.Since(h.startedAt).String(),
		"sseClients": h.hub.ClientCount(),
	})
}
