package api

import (
	"context"
	"net/url"

	"go.trai.ch/repute/internal/adapters/cache"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
)

const (
	badgeKeyParam    = "badgeKey"
	categoryKeyParam = "categoryKey"
)

// GetWidgetReputation returns the reputation widget payload of address.
func (c *Client) GetWidgetReputation(
	ctx context.Context, address string, opts domain.FetchOptions,
) (*domain.WidgetReputation, error) {
	return fetchWidget(ctx, c, domain.ResourceWidgetReputation, address, nil, opts,
		func(ctx context.Context) (*domain.WidgetReputation, error) {
			var out domain.WidgetReputation
			if err := c.get(ctx, "widget_reputation", "/widget/reputation/"+segment(address), nil, &out); err != nil {
				return nil, err
			}
			return &out, nil
		})
}

// GetWidgetProfile returns the profile widget payload of address.
func (c *Client) GetWidgetProfile(
	ctx context.Context, address string, opts domain.FetchOptions,
) (*domain.WidgetProfile, error) {
	return fetchWidget(ctx, c, domain.ResourceWidgetProfile, address, nil, opts,
		func(ctx context.Context) (*domain.WidgetProfile, error) {
			var out domain.WidgetProfile
			if err := c.get(ctx, "widget_profile", "/widget/profile/"+segment(address), nil, &out); err != nil {
				return nil, err
			}
			return &out, nil
		})
}

// GetWidgetBadges returns the badge widget payload of address: the single badge
// named by badgeKey, or every earned badge when badgeKey is empty.
func (c *Client) GetWidgetBadges(
	ctx context.Context, address, badgeKey string, opts domain.FetchOptions,
) (*domain.BadgeResult, error) {
	params := map[string]string{badgeKeyParam: badgeKey}
	return fetchWidget(ctx, c, domain.ResourceWidgetBadges, address, params, opts,
		func(ctx context.Context) (*domain.BadgeResult, error) {
			path := "/widget/badge/" + segment(address)
			if badgeKey == "" {
				var out domain.Badges
				if err := c.get(ctx, "widget_badges", path, nil, &out); err != nil {
					return nil, err
				}
				return domain.NewBadgeCollectionResult(&out), nil
			}
			var out domain.BadgeDetail
			query := url.Values{badgeKeyParam: {badgeKey}}
			if err := c.get(ctx, "widget_badge", path, query, &out); err != nil {
				return nil, err
			}
			return domain.NewSingleBadgeResult(&out), nil
		})
}

// GetWidgetCategory returns the category widget payload of address.
func (c *Client) GetWidgetCategory(
	ctx context.Context, address, categoryKey string, opts domain.FetchOptions,
) (*domain.WidgetCategory, error) {
	if err := requireKey(categoryKey); err != nil {
		return nil, err
	}
	params := map[string]string{categoryKeyParam: categoryKey}
	return fetchWidget(ctx, c, domain.ResourceWidgetCategory, address, params, opts,
		func(ctx context.Context) (*domain.WidgetCategory, error) {
			var out domain.WidgetCategory
			query := url.Values{categoryKeyParam: {categoryKey}}
			if err := c.get(ctx, "widget_category", "/widget/category/"+segment(address), query, &out); err != nil {
				return nil, err
			}
			return &out, nil
		})
}

// fetchWidget serves a widget payload from the cache unless opts forces a
// refresh. Only successful responses are stored, so a failure never evicts
// or overwrites the previous entry.
//
// Concurrent non-forced misses for the same key share one request. When the
// shared request was cancelled by the caller that started it, a caller whose
// own context is still live retries on its own.
func fetchWidget[T any](
	ctx context.Context,
	c *Client,
	kind domain.ResourceKind,
	address string,
	params map[string]string,
	opts domain.FetchOptions,
	fetch func(context.Context) (T, error),
) (T, error) {
	var zero T
	if err := requireAddress(address); err != nil {
		return zero, err
	}
	key := domain.NewCacheKey(kind, address, params)

	ctx, span := c.tracer.Start(ctx, "repute.widget "+string(kind),
		ports.WithAttribute("cache.key", string(key)),
		ports.WithAttribute("cache.force", opts.ForceRefresh),
	)
	defer span.End()

	if !opts.ForceRefresh {
		if v, ok := cache.Lookup[T](c.cache, key); ok {
			span.SetAttribute("cache.hit", true)
			return v, nil
		}
	}
	span.SetAttribute("cache.hit", false)

	load := func(ctx context.Context) (T, error) {
		v, err := fetch(ctx)
		if err != nil {
			return zero, err
		}
		c.cache.Set(key, v)
		return v, nil
	}

	if opts.ForceRefresh {
		return load(ctx)
	}

	shared, err, _ := c.flights.Do(string(key), func() (any, error) {
		return load(ctx)
	})
	if err != nil {
		if domain.IsCancelled(err) && ctx.Err() == nil {
			c.logger.Warn("shared request for " + string(key) + " was cancelled, retrying")
			return load(ctx)
		}
		return zero, err
	}
	return shared.(T), nil
}
