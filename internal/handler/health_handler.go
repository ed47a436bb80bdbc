package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides the root liveness endpoint.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetRoot responds with a fixed running message.
// GET /
func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "He-Ara API is running"})
}
