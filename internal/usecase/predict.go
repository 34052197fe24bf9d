package usecase

import (
	"context"
	"fmt"

	"iris-inference-service/internal/domain"
)

// PredictUseCase owns the single model handle for the process lifetime. The
// handle is nil when the artifact failed to load at startup and stays nil
// until restart; there is no hot reload.
type PredictUseCase struct {
	model domain.Classifier
}

func NewPredictUseCase(model domain.Classifier) *PredictUseCase {
	return &PredictUseCase{model: model}
}

func (uc *PredictUseCase) Predict(ctx context.Context, m domain.IrisMeasurements) (string, error) {
	if uc.model == nil {
		return "", domain.ErrModelUnavailable
	}

	label, err := uc.model.Predict(m.Vector())
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPredictionFailed, err)
	}

	return label, nil
}
