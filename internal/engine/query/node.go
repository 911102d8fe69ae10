package query

import (
	"context"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/api"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/cache"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/config"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/logger"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/metrics"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// ProductsNodeID is the unique identifier for the products query controller node.
	ProductsNodeID graft.ID = "engine.query.products"
	// UsersNodeID is the unique identifier for the users query controller node.
	UsersNodeID graft.ID = "engine.query.users"
)

var sharedDeps = []graft.ID{
	cache.NodeID,
	config.SettingsNodeID,
	logger.NodeID,
	metrics.NodeID,
	telemetry.TracerNodeID,
}

func init() {
	graft.Register(graft.Node[*Controller[domain.Product]]{
		ID:        ProductsNodeID,
		Cacheable: true,
		DependsOn: append([]graft.ID{api.ProductsNodeID}, sharedDeps...),
		Run: func(ctx context.Context) (*Controller[domain.Product], error) {
			gw, err := graft.Dep[ports.ProductGateway](ctx)
			if err != nil {
				return nil, err
			}
			return build[domain.Product](ctx, gw)
		},
	})

	graft.Register(graft.Node[*Controller[domain.User]]{
		ID:        UsersNodeID,
		Cacheable: true,
		DependsOn: append([]graft.ID{api.UsersNodeID}, sharedDeps...),
		Run: func(ctx context.Context) (*Controller[domain.User], error) {
			gw, err := graft.Dep[ports.UserGateway](ctx)
			if err != nil {
				return nil, err
			}
			return build[domain.User](ctx, gw)
		},
	})
}

func build[T any](ctx context.Context, source Source[T]) (*Controller[T], error) {
	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[domain.Settings](ctx)
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

	return New(store, source,
		WithLogger(log),
		WithMetrics(m),
		WithTracer(tracer),
		WithRefetchOnInvalidate(settings.RefetchOnInvalidate),
	), nil
}
