package domain

import "time"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "crmadmin.yaml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "CRMADMIN_"

	// DefaultPageSize is the page size used when neither config nor flags set one.
	DefaultPageSize = 10

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 100

	// DefaultHTTPTimeout bounds a single gateway round trip.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRateBurst is the burst allowed by the client-side rate limiter.
	DefaultRateBurst = 5
)
