package metrics

import (
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
)

// Noop discards every measurement.
type Noop struct{}

func (Noop) CacheRead(domain.Resource, string) {}

func (Noop) GatewayCall(domain.Resource, string, error, time.Duration) {}

func (Noop) ResponseDiscarded(domain.Resource) {}

func (Noop) Invalidated(domain.Resource, int) {}
