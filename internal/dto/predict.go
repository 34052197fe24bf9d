package dto

// PredictRequest carries the four iris measurements. Fields are pointers so
// that a legitimate 0.0 passes the required check while a missing field
// fails it at binding time.
type PredictRequest struct {
	SepalLength *float64 `json:"sepal_length" binding:"required"`
	SepalWidth  *float64 `json:"sepal_width" binding:"required"`
	PetalLength *float64 `json:"petal_length" binding:"required"`
	PetalWidth  *float64 `json:"petal_width" binding:"required"`
}

type PredictResponse struct {
	PredictedClass string `json:"predicted_class"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
