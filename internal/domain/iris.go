package domain

// IrisMeasurements holds the four flower measurements of a prediction
// request.
type IrisMeasurements struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
}

// Vector returns the measurements as an ordered feature vector. The order
// must stay sepal_length, sepal_width, petal_length, petal_width: the
// artifact was trained on exactly this column order.
func (m IrisMeasurements) Vector() []float64 {
	return []float64{m.SepalLength, m.SepalWidth, m.PetalLength, m.PetalWidth}
}

// Classifier is the decision function loaded from the model artifact. It is
// read-only after startup, so implementations must be safe for concurrent
// calls.
type Classifier interface {
	Predict(features []float64) (string, error)
}
