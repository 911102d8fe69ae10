package domain

import "time"

// Settings is the resolved runtime configuration.
type Settings struct {
	// BaseURL is the root of the remote API.
	BaseURL string
	// Token is the bearer token issued by the session collaborator. Empty disables the header.
	Token string
	// Timeout bounds one HTTP round trip.
	Timeout time.Duration
	// PageSize is the initial list page size.
	PageSize int
	// RateLimit caps gateway calls per second. Zero disables limiting.
	RateLimit float64
	// StaleAfter marks success entries older than it as stale on read. Zero never expires.
	StaleAfter time.Duration
	// RefetchOnInvalidate makes query controllers reload their current descriptor when it is invalidated.
	RefetchOnInvalidate bool
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogJSON switches the logger to JSON output.
	LogJSON bool
	// MetricsAddr is the listen address of the metrics endpoint. Empty disables it.
	MetricsAddr string
}

// DefaultSettings returns the settings used when no config is present.
func DefaultSettings() Settings {
	return Settings{
		Timeout:             DefaultHTTPTimeout,
		PageSize:            DefaultPageSize,
		RefetchOnInvalidate: true,
		LogLevel:            "info",
	}
}
