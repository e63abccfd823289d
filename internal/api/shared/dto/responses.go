package dto

// ActionResultResponse represents the result of an admin action
type ActionResultResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
}

// HealthResponse represents the health of the API and its stores
type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks,omitempty"`
}
