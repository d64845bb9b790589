// Package widgets implements the reputation, badge, profile and category widgets.
package widgets

import (
	"go.trai.ch/repute/internal/adapters/api"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/repute/internal/engine/lifecycle"
)

type (
	// Reputation is a mounted or mountable reputation widget.
	Reputation = lifecycle.Controller[domain.ReputationConfig, *domain.WidgetReputation]
	// Badge is a mounted or mountable badge widget.
	Badge = lifecycle.Controller[domain.BadgeConfig, *domain.BadgeResult]
	// Profile is a mounted or mountable profile widget.
	Profile = lifecycle.Controller[domain.ProfileConfig, *domain.WidgetProfile]
	// Category is a mounted or mountable category widget.
	Category = lifecycle.Controller[domain.CategoryConfig, *domain.WidgetCategory]
)

// Deps are the collaborators of a widget. Every field is optional.
type Deps struct {
	// API serves the widget data. When nil a client is built from the
	// configured API key and base URL on top of the process-wide cache.
	API      ports.WidgetAPI
	Resolver ports.ContainerResolver
	Detector ports.SchemeDetector
	Logger   ports.Logger
}

func (d Deps) client(opts domain.WidgetOptions) (ports.WidgetAPI, error) {
	if d.API != nil {
		return d.API, nil
	}
	clientOpts := []api.Option{api.WithBaseURL(opts.BaseURL)}
	if d.Logger != nil {
		clientOpts = append(clientOpts, api.WithLogger(d.Logger))
	}
	return api.New(opts.APIKey, clientOpts...)
}

func (d Deps) options() []lifecycle.Option {
	return []lifecycle.Option{
		lifecycle.WithResolver(d.Resolver),
		lifecycle.WithDetector(d.Detector),
		lifecycle.WithLogger(d.Logger),
	}
}

// NewReputation creates an unmounted reputation widget.
func NewReputation(cfg domain.ReputationConfig, deps Deps) (*Reputation, error) {
	var w reputationWidget
	if err := w.Validate(cfg); err != nil {
		return nil, err
	}
	client, err := deps.client(cfg.WidgetOptions)
	if err != nil {
		return nil, err
	}
	w.api = client
	return lifecycle.New[domain.ReputationConfig, *domain.WidgetReputation](w, cfg, deps.options()...)
}

// NewBadge creates an unmounted badge widget.
func NewBadge(cfg domain.BadgeConfig, deps Deps) (*Badge, error) {
	var w badgeWidget
	if err := w.Validate(cfg); err != nil {
		return nil, err
	}
	client, err := deps.client(cfg.WidgetOptions)
	if err != nil {
		return nil, err
	}
	w.api = client
	return lifecycle.New[domain.BadgeConfig, *domain.BadgeResult](w, cfg, deps.options()...)
}

// NewProfile creates an unmounted profile widget.
func NewProfile(cfg domain.ProfileConfig, deps Deps) (*Profile, error) {
	var w profileWidget
	if err := w.Validate(cfg); err != nil {
		return nil, err
	}
	client, err := deps.client(cfg.WidgetOptions)
	if err != nil {
		return nil, err
	}
	w.api = client
	return lifecycle.New[domain.ProfileConfig, *domain.WidgetProfile](w, cfg, deps.options()...)
}

// NewCategory creates an unmounted category widget. The category key is required,
// here and on every Update.
func NewCategory(cfg domain.CategoryConfig, deps Deps) (*Category, error) {
	var w categoryWidget
	if err := w.Validate(cfg); err != nil {
		return nil, err
	}
	client, err := deps.client(cfg.WidgetOptions)
	if err != nil {
		return nil, err
	}
	w.api = client
	return lifecycle.New[domain.CategoryConfig, *domain.WidgetCategory](w, cfg, deps.options()...)
}
