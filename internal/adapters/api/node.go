package api

import (
	"context"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/config"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/logger"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/metrics"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// ClientNodeID is the unique identifier for the shared HTTP client node.
	ClientNodeID graft.ID = "adapter.api.client"
	// ProductsNodeID is the unique identifier for the products gateway node.
	ProductsNodeID graft.ID = "adapter.api.products"
	// UsersNodeID is the unique identifier for the users gateway node.
	UsersNodeID graft.ID = "adapter.api.users"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID, telemetry.TracerNodeID, metrics.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings, WithLogger(log), WithTracer(tracer), WithMetrics(m)), nil
		},
	})

	graft.Register(graft.Node[ports.ProductGateway]{
		ID:        ProductsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.ProductGateway, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return NewProducts(client), nil
		},
	})

	graft.Register(graft.Node[ports.UserGateway]{
		ID:        UsersNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.UserGateway, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return NewUsers(client), nil
		},
	})
}
