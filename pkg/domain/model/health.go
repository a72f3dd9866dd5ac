package model

// HealthStatus is the channel server health check response
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	// Channel is the directory served as the local artifact channel
	Channel string `json:"channel"`
}
