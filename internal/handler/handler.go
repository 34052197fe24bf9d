package handler

import (
	"iris-inference-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	predictUC *usecase.PredictUseCase
}

func New(predictUC *usecase.PredictUseCase) *Handler {
	return &Handler{predictUC: predictUC}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Welcome)
	r.GET("/health", h.Health)
	r.POST("/predict/", h.Predict)
}
