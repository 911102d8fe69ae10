// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/api"
	_ "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/cache"
	_ "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/config"
	_ "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/logger"
	_ "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/metrics"
	_ "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/app"
	_ "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/mutation"
	_ "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/query"
)
