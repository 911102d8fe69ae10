package mutation

import (
	"context"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/api"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/cache"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/logger"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/metrics"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// ProductsNodeID is the unique identifier for the products mutation controller node.
	ProductsNodeID graft.ID = "engine.mutation.products"
	// UsersNodeID is the unique identifier for the users mutation controller node.
	UsersNodeID graft.ID = "engine.mutation.users"
)

// ProductController writes products.
type ProductController = Controller[domain.Product, domain.ProductInput]

// UserController writes users.
type UserController = Controller[domain.User, domain.UserInput]

func init() {
	graft.Register(graft.Node[*ProductController]{
		ID:        ProductsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{api.ProductsNodeID, cache.NodeID, logger.NodeID, metrics.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*ProductController, error) {
			gw, err := graft.Dep[ports.ProductGateway](ctx)
			if err != nil {
				return nil, err
			}
			return build(ctx, gw)
		},
	})

	graft.Register(graft.Node[*UserController]{
		ID:        UsersNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{api.UsersNodeID, cache.NodeID, logger.NodeID, metrics.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*UserController, error) {
			gw, err := graft.Dep[ports.UserGateway](ctx)
			if err != nil {
				return nil, err
			}
			return build(ctx, gw)
		},
	})
}

func build[T, F any](ctx context.Context, gw ports.ResourceGateway[T, F]) (*Controller[T, F], error) {
	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	return New(store, gw, WithLogger(log), WithMetrics(m), WithTracer(tracer)), nil
}
