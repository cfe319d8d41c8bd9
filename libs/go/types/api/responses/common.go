package responses

// ErrorResponse is the body of every JSON error
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SuccessResponse is returned by endpoints that only acknowledge an action
type SuccessResponse struct {
	Message string `json:"message"`
}

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// HealthResponse lists the result of each dependency check by name
type HealthResponse struct {
	Status  string            `json:"status"`
	Network string            `json:"network,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}
