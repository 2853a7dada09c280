package bookla

import "fmt"

// ConfigError reports a missing configuration value required to reach
// Bookla. It is fatal to the request (500-class), distinct from an upstream
// rejection.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return "missing Bookla configuration: " + e.Missing
}

// UpstreamError carries a non-2xx response from Bookla. Status mirrors the
// upstream status code; Message is the upstream message field when present,
// otherwise the HTTP status text. Detail holds the decoded response body.
type UpstreamError struct {
	Op      string
	Status  int
	Message string
	Detail  any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Bookla %s: %d %s", e.Op, e.Status, e.Message)
}
