package ports

import (
	"context"

	"go.trai.ch/repute/internal/core/domain"
)

//go:generate mockgen -source=reputation.go -destination=mocks/mock_reputation.go -package=mocks

// WidgetAPI is the cache-aware subset of the reputation service used by widgets.
type WidgetAPI interface {
	GetWidgetProfile(ctx context.Context, address string, opts domain.FetchOptions) (*domain.WidgetProfile, error)
	GetWidgetReputation(ctx context.Context, address string, opts domain.FetchOptions) (*domain.WidgetReputation, error)
	// GetWidgetBadges returns a single badge when badgeKey is set, otherwise the collection.
	GetWidgetBadges(ctx context.Context, address, badgeKey string, opts domain.FetchOptions) (*domain.BadgeResult, error)
	GetWidgetCategory(ctx context.Context, address, categoryKey string, opts domain.FetchOptions) (*domain.WidgetCategory, error)
}

// ReputationAPI is the full read-only surface of the reputation service.
type ReputationAPI interface {
	WidgetAPI

	GetProfile(ctx context.Context, address string) (*domain.Profile, error)
	GetScores(ctx context.Context, address string) (*domain.Scores, error)
	GetCategoryScore(ctx context.Context, address, categoryKey string) (*domain.CategoryDetail, error)
	GetBadges(ctx context.Context, address string) (*domain.Badges, error)
	GetBadge(ctx context.Context, address, badgeKey string) (*domain.BadgeDetail, error)
	GetBadgeDefinitions(ctx context.Context) ([]domain.BadgeDefinition, error)
	GetCategoryDefinitions(ctx context.Context) ([]domain.CategoryDefinition, error)

	// ClearCache drops every cached widget response.
	ClearCache()
	// ClearCacheForAddress drops the cached widget responses of one address.
	ClearCacheForAddress(address string) int
}
