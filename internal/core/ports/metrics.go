package ports

import (
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
)

// Cache read results reported to Metrics.
const (
	CacheHit    = "hit"
	CacheMiss   = "miss"
	CacheShared = "shared"
)

// Metrics records operational counters of the sync core.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheRead counts a query read by result (CacheHit, CacheMiss or CacheShared).
	CacheRead(r domain.Resource, result string)
	// GatewayCall records one gateway round trip.
	GatewayCall(r domain.Resource, op string, err error, elapsed time.Duration)
	// ResponseDiscarded counts a response dropped by the generation guard.
	ResponseDiscarded(r domain.Resource)
	// Invalidated counts entries marked stale.
	Invalidated(r domain.Resource, entries int)
}
