package widgets

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/repute/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

type categoryView = lifecycle.View[domain.CategoryConfig, *domain.WidgetCategory]

type categoryWidget struct {
	chrome[domain.CategoryConfig, *domain.WidgetCategory]
	api ports.WidgetAPI
}

func (categoryWidget) Kind() domain.WidgetKind { return domain.WidgetCategoryKind }

// Validate also requires a category key.
func (categoryWidget) Validate(cfg domain.CategoryConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.CategoryKey) == "" {
		return zerr.Wrap(domain.ErrMissingResourceKey, "category widget needs a category key")
	}
	return nil
}

func (categoryWidget) Options(cfg domain.CategoryConfig) domain.WidgetOptions {
	return cfg.WidgetOptions
}

func (categoryWidget) Callbacks(cfg domain.CategoryConfig) domain.Callbacks[*domain.WidgetCategory] {
	return cfg.Callbacks
}

func (categoryWidget) FetchKey(cfg domain.CategoryConfig) string {
	return domain.NormalizeAddress(cfg.Address) + "|" + strings.TrimSpace(cfg.CategoryKey)
}

func (w categoryWidget) Fetch(
	ctx context.Context, cfg domain.CategoryConfig, opts domain.FetchOptions,
) (*domain.WidgetCategory, error) {
	return w.api.GetWidgetCategory(ctx, cfg.Address, strings.TrimSpace(cfg.CategoryKey), opts)
}

func (categoryWidget) RenderData(v categoryView) templ.Component {
	cfg, data := v.Config, v.State.Data
	return frame(v, func(m *markup) {
		name := data.Definition.Name
		if name == "" {
			name = data.Score.Name
		}
		m.raw("<div")
		m.attr("class", "repute-category")
		m.attr("data-key", data.Score.Key)
		m.raw(">")
		m.element("span", "repute-category-name", name)
		if data.Rank > 0 {
			m.element("span", "repute-rank", "#"+strconv.Itoa(data.Rank))
		}
		m.score("repute-category-score", data.Score.Score, data.Score.MaxScore)
		m.bar(data.Score.Percent())
		if cfg.ShowDescription && data.Definition.Description != "" {
			m.element("p", "repute-category-description", data.Definition.Description)
		}
		m.close("div")
	})
}
