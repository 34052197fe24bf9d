package domain

import "errors"

var (
	ErrModelUnavailable = errors.New("model not available")
	ErrPredictionFailed = errors.New("prediction failed")
)
