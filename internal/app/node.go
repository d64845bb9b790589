package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/repute/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/repute/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/repute/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/repute/internal/adapters/theme"     //nolint:depguard // Wired in app layer
	"go.trai.ch/repute/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/repute/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entry point needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.PortNodeID,
			theme.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.PortNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[ports.SchemeDetector](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	metrics, err := graft.Dep[*telemetry.PrometheusCollector](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, detector, w, tracer, metrics), nil
}
