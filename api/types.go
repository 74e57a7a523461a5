package api

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error     string `json:"error" example:"validation failed"`
	Status    string `json:"status" example:"error"`
	Field     string `json:"field,omitempty" example:"title"`
	Details   string `json:"details,omitempty" example:"title must be at least 2 characters"`
	Timestamp string `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}
