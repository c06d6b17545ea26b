package models

// AppInfo is the banner served at the API root.
type AppInfo struct {
	// Name is the human readable service name.
	Name string `json:"name"`

	// Version is the application version from configuration.
	Version string `json:"version"`

	// Status is always "running" while the process serves requests.
	Status string `json:"status"`
}

// HealthStatus is the body served by the health endpoint.
type HealthStatus struct {
	Status string `json:"status"`
}

const (
	// HealthStatusHealthy is reported when the store answers a ping.
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy is reported when the store cannot be reached.
	HealthStatusUnhealthy = "unhealthy"
)
