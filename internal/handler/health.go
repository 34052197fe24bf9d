package handler

import (
	"net/http"

	"iris-inference-service/internal/dto"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to the Iris species prediction API"

func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.WelcomeResponse{Message: welcomeMessage})
}

// Health backs the orchestrator's liveness, readiness and startup probes.
// It reports healthy regardless of whether the model artifact loaded; a
// failed load only surfaces on predict calls.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy"})
}
