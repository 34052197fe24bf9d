package handler

import (
	"net/http"

	"iris-inference-service/internal/domain"
	"iris-inference-service/internal/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	measurements := domain.IrisMeasurements{
		SepalLength: *req.SepalLength,
		SepalWidth:  *req.SepalWidth,
		PetalLength: *req.PetalLength,
		PetalWidth:  *req.PetalWidth,
	}

	label, err := h.predictUC.Predict(c.Request.Context(), measurements)
	if err != nil {
		log.WithError(err).Error("predict failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PredictResponse{PredictedClass: label})
}
