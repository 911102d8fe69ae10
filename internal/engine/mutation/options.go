package mutation

import (
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
)

type options struct {
	logger      ports.Logger
	metrics     ports.Metrics
	tracer      ports.Tracer
	invalidates []domain.Resource
}

// Option configures a Controller.
type Option func(*options)

// WithLogger logs invalidations at debug level.
func WithLogger(l ports.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics counts invalidated entries.
func WithMetrics(m ports.Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithTracer records one span per mutation.
func WithTracer(t ports.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithInvalidates adds resource families to invalidate after a successful write,
// on top of the controller's own.
func WithInvalidates(resources ...domain.Resource) Option {
	return func(o *options) {
		o.invalidates = append(o.invalidates, resources...)
	}
}
