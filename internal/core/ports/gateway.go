package ports

import (
	"context"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
)

// ResourceGateway is the typed I/O boundary of one remote resource.
// Every method performs exactly one round trip and never retries.
// Failures are *domain.GatewayError values.
//
//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks
type ResourceGateway[T, F any] interface {
	// Resource names the family the gateway serves.
	Resource() domain.Resource
	// List fetches one filtered page described by d.
	List(ctx context.Context, d domain.Descriptor) (*domain.Page[T], error)
	// Lookup fetches the named dropdown list.
	Lookup(ctx context.Context, name string) ([]domain.LookupItem, error)
	// Create stores a new record and returns it as the server saw it.
	Create(ctx context.Context, fields F) (*T, error)
	// Update replaces the editable fields of record id.
	Update(ctx context.Context, id string, fields F) (*T, error)
	// Delete removes record id.
	Delete(ctx context.Context, id string) error
	// SetStatus activates or deactivates record id.
	SetStatus(ctx context.Context, id string, active bool) error
}

// ProductGateway serves the products family.
type ProductGateway = ResourceGateway[domain.Product, domain.ProductInput]

// UserGateway serves the users family.
type UserGateway = ResourceGateway[domain.User, domain.UserInput]
