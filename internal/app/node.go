package app

import (
	"context"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/cache"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/config"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/logger"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/metrics"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/mutation"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/query"
	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the App Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// levelSetter is implemented by loggers whose output can be reconfigured.
type levelSetter interface {
	SetLevel(name string)
	SetJSON(enable bool)
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			logger.NodeID,
			cache.NodeID,
			metrics.RecorderNodeID,
			query.ProductsNodeID,
			query.UsersNodeID,
			mutation.ProductsNodeID,
			mutation.UsersNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			if l, ok := log.(levelSetter); ok {
				l.SetLevel(settings.LogLevel)
				l.SetJSON(settings.LogJSON)
			}
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			recorder, err := graft.Dep[*metrics.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			productQuery, err := graft.Dep[*query.Controller[domain.Product]](ctx)
			if err != nil {
				return nil, err
			}
			userQuery, err := graft.Dep[*query.Controller[domain.User]](ctx)
			if err != nil {
				return nil, err
			}
			productMutation, err := graft.Dep[*mutation.ProductController](ctx)
			if err != nil {
				return nil, err
			}
			userMutation, err := graft.Dep[*mutation.UserController](ctx)
			if err != nil {
				return nil, err
			}

			return New(
				settings,
				log,
				store,
				recorder,
				NewService(productQuery, productMutation),
				NewService(userQuery, userMutation),
			), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
