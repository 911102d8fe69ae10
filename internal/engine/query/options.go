package query

import (
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/metrics"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
)

type options struct {
	logger              ports.Logger
	metrics             ports.Metrics
	tracer              ports.Tracer
	refetchOnInvalidate bool
}

func defaultOptions() options {
	return options{
		metrics:             metrics.Noop{},
		tracer:              telemetry.NewNoOpTracer(),
		refetchOnInvalidate: true,
	}
}

// Option configures a Controller.
type Option func(*options)

// WithLogger logs discarded responses and background failures at debug level.
func WithLogger(l ports.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics counts cache reads and discarded responses.
func WithMetrics(m ports.Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithTracer records one span per fetch.
func WithTracer(t ports.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithRefetchOnInvalidate controls whether invalidating the current descriptor reloads it in the background.
func WithRefetchOnInvalidate(enabled bool) Option {
	return func(o *options) {
		o.refetchOnInvalidate = enabled
	}
}
