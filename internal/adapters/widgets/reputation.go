package widgets

import (
	"context"

	"github.com/a-h/templ"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/repute/internal/engine/lifecycle"
)

type reputationView = lifecycle.View[domain.ReputationConfig, *domain.WidgetReputation]

type reputationWidget struct {
	chrome[domain.ReputationConfig, *domain.WidgetReputation]
	api ports.WidgetAPI
}

func (reputationWidget) Kind() domain.WidgetKind { return domain.WidgetReputationKind }

func (reputationWidget) Validate(cfg domain.ReputationConfig) error {
	return cfg.Validate()
}

func (reputationWidget) Options(cfg domain.ReputationConfig) domain.WidgetOptions {
	return cfg.WidgetOptions
}

func (reputationWidget) Callbacks(cfg domain.ReputationConfig) domain.Callbacks[*domain.WidgetReputation] {
	return cfg.Callbacks
}

func (reputationWidget) FetchKey(cfg domain.ReputationConfig) string {
	return domain.NormalizeAddress(cfg.Address)
}

func (w reputationWidget) Fetch(
	ctx context.Context, cfg domain.ReputationConfig, opts domain.FetchOptions,
) (*domain.WidgetReputation, error) {
	return w.api.GetWidgetReputation(ctx, cfg.Address, opts)
}

func (reputationWidget) RenderData(v reputationView) templ.Component {
	cfg, data := v.Config, v.State.Data
	return frame(v, func(m *markup) {
		m.open("header", "repute-header")
		if data.AvatarURL != "" && !cfg.Compact {
			m.image("repute-avatar", data.AvatarURL)
		}
		name := data.DisplayName
		if name == "" {
			name = domain.ShortAddress(data.Address)
		}
		m.element("span", "repute-name", name)
		m.close("header")

		m.score("repute-score", data.Total, data.MaxTotal)

		if cfg.ShowCategories && !cfg.Compact && len(data.Categories) > 0 {
			m.open("ul", "repute-categories")
			for _, c := range data.Categories {
				m.raw("<li")
				m.attr("class", "repute-category")
				m.attr("data-key", c.Key)
				m.raw(">")
				m.element("span", "repute-category-name", c.Name)
				m.score("repute-category-score", c.Score, c.MaxScore)
				m.bar(c.Percent())
				m.close("li")
			}
			m.close("ul")
		}

		if cfg.ShowBadgeCount {
			m.element("p", "repute-badge-count", plural(data.BadgeCount, "badge", "badges"))
		}
	})
}
