package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse represents the health check body
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}
