package handler

import (
	"errors"
	"net/http"

	"iris-inference-service/internal/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrModelUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrPredictionFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
