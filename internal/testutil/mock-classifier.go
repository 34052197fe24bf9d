package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockClassifier is a mock of domain.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(features []float64) (string, error) {
	args := m.Called(features)
	return args.String(0), args.Error(1)
}
