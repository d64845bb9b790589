package widgets

import (
	"context"

	"github.com/a-h/templ"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/repute/internal/engine/lifecycle"
)

type profileView = lifecycle.View[domain.ProfileConfig, *domain.WidgetProfile]

type profileWidget struct {
	chrome[domain.ProfileConfig, *domain.WidgetProfile]
	api ports.WidgetAPI
}

func (profileWidget) Kind() domain.WidgetKind { return domain.WidgetProfileKind }

func (profileWidget) Validate(cfg domain.ProfileConfig) error {
	return cfg.Validate()
}

func (profileWidget) Options(cfg domain.ProfileConfig) domain.WidgetOptions {
	return cfg.WidgetOptions
}

func (profileWidget) Callbacks(cfg domain.ProfileConfig) domain.Callbacks[*domain.WidgetProfile] {
	return cfg.Callbacks
}

func (profileWidget) FetchKey(cfg domain.ProfileConfig) string {
	return domain.NormalizeAddress(cfg.Address)
}

func (w profileWidget) Fetch(
	ctx context.Context, cfg domain.ProfileConfig, opts domain.FetchOptions,
) (*domain.WidgetProfile, error) {
	return w.api.GetWidgetProfile(ctx, cfg.Address, opts)
}

func (profileWidget) RenderData(v profileView) templ.Component {
	cfg, data := v.Config, v.State.Data
	p := data.Profile
	return frame(v, func(m *markup) {
		m.open("header", "repute-header")
		if cfg.ShowAvatar && p.AvatarURL != "" {
			m.image("repute-avatar", p.AvatarURL)
		}
		m.element("span", "repute-name", p.Name())
		if p.Username != "" {
			m.element("span", "repute-username", "@"+p.Username)
		}
		m.close("header")

		if cfg.ShowBio && p.Bio != "" {
			m.element("p", "repute-bio", p.Bio)
		}
		if cfg.ShowScore {
			m.score("repute-score", data.Total, data.MaxTotal)
		}
		if len(data.TopBadges) > 0 {
			m.open("ul", "repute-badges")
			for _, b := range data.TopBadges {
				m.raw("<li")
				m.attr("class", "repute-badge")
				m.attr("data-key", b.Key)
				m.raw(">")
				m.text(b.Name)
				m.close("li")
			}
			m.close("ul")
		}
	})
}
