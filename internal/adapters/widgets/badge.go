package widgets

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/repute/internal/engine/lifecycle"
)

type badgeView = lifecycle.View[domain.BadgeConfig, *domain.BadgeResult]

type badgeWidget struct {
	chrome[domain.BadgeConfig, *domain.BadgeResult]
	api ports.WidgetAPI
}

func (badgeWidget) Kind() domain.WidgetKind { return domain.WidgetBadgeKind }

func (badgeWidget) Validate(cfg domain.BadgeConfig) error {
	return cfg.Validate()
}

func (badgeWidget) Options(cfg domain.BadgeConfig) domain.WidgetOptions {
	return cfg.WidgetOptions
}

func (badgeWidget) Callbacks(cfg domain.BadgeConfig) domain.Callbacks[*domain.BadgeResult] {
	return cfg.Callbacks
}

func (badgeWidget) FetchKey(cfg domain.BadgeConfig) string {
	return domain.NormalizeAddress(cfg.Address) + "|" + strings.TrimSpace(cfg.BadgeKey)
}

func (w badgeWidget) Fetch(
	ctx context.Context, cfg domain.BadgeConfig, opts domain.FetchOptions,
) (*domain.BadgeResult, error) {
	return w.api.GetWidgetBadges(ctx, cfg.Address, strings.TrimSpace(cfg.BadgeKey), opts)
}

func (badgeWidget) RenderData(v badgeView) templ.Component {
	cfg, data := v.Config, v.State.Data
	return frame(v, func(m *markup) {
		switch data.Kind {
		case domain.BadgeResultSingle:
			renderBadgeDetail(m, cfg, data.Single)
		case domain.BadgeResultCollection:
			renderBadgeCollection(m, cfg, data.Collection)
		}
	})
}

func renderBadgeDetail(m *markup, cfg domain.BadgeConfig, b *domain.BadgeDetail) {
	if b == nil {
		return
	}
	def := b.Definition

	m.raw("<div")
	m.attr("class", "repute-badge")
	m.attr("data-key", def.Key)
	m.attr("data-earned", strconv.FormatBool(b.Earned))
	m.raw(">")
	if def.ImageURL != "" {
		m.image("repute-badge-image", def.ImageURL)
	}
	m.element("span", "repute-badge-name", def.Name)
	switch {
	case !b.Earned:
		m.element("span", "repute-badge-status", "Not earned yet")
	case cfg.ShowLevels:
		m.element("span", "repute-badge-level", levelText(b.Level, def.MaxLevel()))
	}
	if cfg.ShowDescription && def.Description != "" {
		m.element("p", "repute-badge-description", def.Description)
	}
	m.close("div")
}

func renderBadgeCollection(m *markup, cfg domain.BadgeConfig, badges *domain.Badges) {
	if badges == nil || len(badges.Badges) == 0 {
		m.element("p", "repute-empty", "No badges earned yet.")
		return
	}
	m.open("ul", "repute-badges")
	for _, b := range badges.Badges {
		m.raw("<li")
		m.attr("class", "repute-badge")
		m.attr("data-key", b.Key)
		m.raw(">")
		if b.ImageURL != "" {
			m.image("repute-badge-image", b.ImageURL)
		}
		m.element("span", "repute-badge-name", b.Name)
		if cfg.ShowLevels {
			m.element("span", "repute-badge-level", levelText(b.Level, b.MaxLevel))
		}
		m.close("li")
	}
	m.close("ul")
}

func levelText(level, maxLevel int) string {
	if maxLevel <= 0 {
		return "Level " + strconv.Itoa(level)
	}
	return "Level " + strconv.Itoa(level) + " of " + strconv.Itoa(maxLevel)
}
