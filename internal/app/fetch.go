package app

import (
	"context"
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/zerr"
)

// FetchOptions configures a single resource lookup.
type FetchOptions struct {
	Options

	Resource string
	Address  string
	// Key is the badge or category key of keyed resources.
	Key string
	// Force bypasses the cache for widget resources.
	Force bool
}

type resourceFunc func(ctx context.Context, c ports.ReputationAPI, opts FetchOptions) (any, error)

var resources = map[string]resourceFunc{
	"profile": func(ctx context.Context, c ports.ReputationAPI, o FetchOptions) (any, error) {
		return c.GetProfile(ctx, o.Address)
	},
	"scores": func(ctx context.Context, c ports.ReputationAPI, o FetchOptions) (any, error) {
		return c.GetScores(ctx, o.Address)
	},
	"category-score": func(ctx context.Context, c ports.ReputationAPI, o FetchOptions) (any, error) {
		return c.GetCategoryScore(ctx, o.Address, o.Key)
	},
	"badges": func(ctx context.Context, c ports.ReputationAPI, o FetchOptions) (any, error) {
		return c.GetBadges(ctx, o.Address)
	},
	"badge": func(ctx context.Context, c ports.ReputationAPI, o FetchOptions) (any, error) {
		return c.GetBadge(ctx, o.Address, o.Key)
	},
	"badge-definitions": func(ctx context.Context, c ports.ReputationAPI, _ FetchOptions) (any, error) {
		return c.GetBadgeDefinitions(ctx)
	},
	"category-definitions": func(ctx context.Context, c ports.ReputationAPI, _ FetchOptions) (any, error) {
		return c.GetCategoryDefinitions(ctx)
	},
	"widget-reputation": func(ctx context.Context, c ports.ReputationAPI, o FetchOptions) (any, error) {
		return c.GetWidgetReputation(ctx, o.Address, o.fetch())
	},
	"widget-profile": func(ctx context.Context, c ports.ReputationAPI, o FetchOptions) (any, error) {
		return c.GetWidgetProfile(ctx, o.Address, o.fetch())
	},
	"widget-badges": func(ctx context.Context, c ports.ReputationAPI, o FetchOptions) (any, error) {
		return c.GetWidgetBadges(ctx, o.Address, o.Key, o.fetch())
	},
	"widget-category": func(ctx context.Context, c ports.ReputationAPI, o FetchOptions) (any, error) {
		return c.GetWidgetCategory(ctx, o.Address, o.Key, o.fetch())
	},
}

func (o FetchOptions) fetch() domain.FetchOptions {
	return domain.FetchOptions{ForceRefresh: o.Force}
}

// ResourceNames lists the resources Fetch understands.
func ResourceNames() []string {
	return slices.Sorted(maps.Keys(resources))
}

// Fetch requests one resource and prints it as indented JSON.
func (a *App) Fetch(ctx context.Context, opts FetchOptions) error {
	lookup, ok := resources[strings.ToLower(opts.Resource)]
	if !ok {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownResource, "failed to fetch resource"),
			"resource", opts.Resource), "expected", strings.Join(ResourceNames(), ", "))
	}

	settings, err := a.loadSettings(opts.Options)
	if err != nil {
		return err
	}

	stop := a.startTracing(opts.Options)
	defer stop(context.WithoutCancel(ctx))

	client, err := a.newClient(settings, a.newStore(settings))
	if err != nil {
		return zerr.Wrap(err, "failed to fetch resource")
	}

	data, err := lookup(ctx, client, opts)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to fetch resource"), "resource", opts.Resource)
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return zerr.Wrap(err, "failed to encode resource")
	}
	return a.writeMetrics(opts.Options)
}
