package api

import (
	"context"
	"net/url"
	"strings"

	"go.trai.ch/repute/internal/core/domain"
)

func segment(s string) string {
	return url.PathEscape(strings.TrimSpace(s))
}

func requireAddress(address string) error {
	if domain.NormalizeAddress(address) == "" {
		return domain.ErrMissingAddress
	}
	return nil
}

func requireKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return domain.ErrMissingResourceKey
	}
	return nil
}

// GetProfile fetches the profile of address.
func (c *Client) GetProfile(ctx context.Context, address string) (*domain.Profile, error) {
	if err := requireAddress(address); err != nil {
		return nil, err
	}
	var out domain.Profile
	if err := c.get(ctx, "profile", "/profiles/"+segment(address), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetScores fetches the total and per-category scores of address.
func (c *Client) GetScores(ctx context.Context, address string) (*domain.Scores, error) {
	if err := requireAddress(address); err != nil {
		return nil, err
	}
	var out domain.Scores
	if err := c.get(ctx, "scores", "/scores/"+segment(address), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCategoryScore fetches one category score of address with its definition.
func (c *Client) GetCategoryScore(ctx context.Context, address, categoryKey string) (*domain.CategoryDetail, error) {
	if err := requireAddress(address); err != nil {
		return nil, err
	}
	if err := requireKey(categoryKey); err != nil {
		return nil, err
	}
	var out domain.CategoryDetail
	path := "/scores/" + segment(address) + "/" + segment(categoryKey)
	if err := c.get(ctx, "category_score", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBadges fetches the badges earned by address.
func (c *Client) GetBadges(ctx context.Context, address string) (*domain.Badges, error) {
	if err := requireAddress(address); err != nil {
		return nil, err
	}
	var out domain.Badges
	if err := c.get(ctx, "badges", "/badges/"+segment(address), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBadge fetches one badge for address, earned or not, with its definition.
func (c *Client) GetBadge(ctx context.Context, address, badgeKey string) (*domain.BadgeDetail, error) {
	if err := requireAddress(address); err != nil {
		return nil, err
	}
	if err := requireKey(badgeKey); err != nil {
		return nil, err
	}
	var out domain.BadgeDetail
	path := "/badges/" + segment(address) + "/" + segment(badgeKey)
	if err := c.get(ctx, "badge", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBadgeDefinitions fetches the catalog of every badge.
func (c *Client) GetBadgeDefinitions(ctx context.Context) ([]domain.BadgeDefinition, error) {
	var out []domain.BadgeDefinition
	if err := c.get(ctx, "badge_definitions", "/metadata/badges", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategoryDefinitions fetches the catalog of every category.
func (c *Client) GetCategoryDefinitions(ctx context.Context) ([]domain.CategoryDefinition, error) {
	var out []domain.CategoryDefinition
	if err := c.get(ctx, "category_definitions", "/metadata/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
