package app

import (
	"context"

	"go.trai.ch/repute/internal/adapters/widgets"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/repute/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// handle is a widget controller with its data type erased.
type handle interface {
	Kind() domain.WidgetKind
	Mount(ctx context.Context, target lifecycle.Target) error
	Refresh(ctx context.Context, opts lifecycle.RefreshOptions) error
	Destroy()
	// apply reconfigures a mounted widget from spec.
	apply(ctx context.Context, spec domain.WidgetSpec, settings *domain.Settings) error
	status() (domain.Phase, error)
}

type mounted[C, D any] struct {
	*lifecycle.Controller[C, D]
	configure func(*C, domain.WidgetSpec, *domain.Settings)
}

func (m mounted[C, D]) apply(ctx context.Context, spec domain.WidgetSpec, settings *domain.Settings) error {
	return m.Update(ctx, func(cfg *C) {
		m.configure(cfg, spec, settings)
	})
}

func (m mounted[C, D]) status() (domain.Phase, error) {
	state := m.State()
	return state.Phase, state.Err
}

// newHandle builds an unmounted widget for spec. When log is set the widget
// reports its loads and failures through it.
func newHandle(spec domain.WidgetSpec, settings *domain.Settings, deps widgets.Deps, log ports.Logger) (handle, error) {
	switch spec.Kind {
	case domain.WidgetReputationKind:
		var cfg domain.ReputationConfig
		configureReputation(&cfg, spec, settings)
		cfg.Callbacks = hooks[*domain.WidgetReputation](spec.ID, log)
		w, err := widgets.NewReputation(cfg, deps)
		if err != nil {
			return nil, wrapSpec(err, spec)
		}
		return mounted[domain.ReputationConfig, *domain.WidgetReputation]{w, configureReputation}, nil

	case domain.WidgetBadgeKind:
		var cfg domain.BadgeConfig
		configureBadge(&cfg, spec, settings)
		cfg.Callbacks = hooks[*domain.BadgeResult](spec.ID, log)
		w, err := widgets.NewBadge(cfg, deps)
		if err != nil {
			return nil, wrapSpec(err, spec)
		}
		return mounted[domain.BadgeConfig, *domain.BadgeResult]{w, configureBadge}, nil

	case domain.WidgetProfileKind:
		var cfg domain.ProfileConfig
		configureProfile(&cfg, spec, settings)
		cfg.Callbacks = hooks[*domain.WidgetProfile](spec.ID, log)
		w, err := widgets.NewProfile(cfg, deps)
		if err != nil {
			return nil, wrapSpec(err, spec)
		}
		return mounted[domain.ProfileConfig, *domain.WidgetProfile]{w, configureProfile}, nil

	case domain.WidgetCategoryKind:
		var cfg domain.CategoryConfig
		configureCategory(&cfg, spec, settings)
		cfg.Callbacks = hooks[*domain.WidgetCategory](spec.ID, log)
		w, err := widgets.NewCategory(cfg, deps)
		if err != nil {
			return nil, wrapSpec(err, spec)
		}
		return mounted[domain.CategoryConfig, *domain.WidgetCategory]{w, configureCategory}, nil

	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownWidgetKind, "failed to create widget"), "kind", string(spec.Kind))
	}
}

func wrapSpec(err error, spec domain.WidgetSpec) error {
	return zerr.With(zerr.With(zerr.Wrap(err, "failed to create widget"), "id", spec.ID), "kind", string(spec.Kind))
}

func hooks[D any](id string, log ports.Logger) domain.Callbacks[D] {
	if log == nil {
		return domain.Callbacks[D]{}
	}
	return domain.Callbacks[D]{
		OnLoad: func(D) {
			log.Info("widget " + id + " loaded")
		},
		OnError: func(err error) {
			log.Warn("widget " + id + ": " + domain.UserMessage(err))
		},
	}
}

func configureReputation(cfg *domain.ReputationConfig, spec domain.WidgetSpec, settings *domain.Settings) {
	cfg.WidgetOptions = spec.Options(*settings)
	cfg.ShowCategories = spec.Display.ShowCategories
	cfg.ShowBadgeCount = spec.Display.ShowBadgeCount
	cfg.Compact = spec.Display.Compact
}

func configureBadge(cfg *domain.BadgeConfig, spec domain.WidgetSpec, settings *domain.Settings) {
	cfg.WidgetOptions = spec.Options(*settings)
	cfg.BadgeKey = spec.BadgeKey
	cfg.ShowDescription = spec.Display.ShowDescription
	cfg.ShowLevels = spec.Display.ShowLevels
}

func configureProfile(cfg *domain.ProfileConfig, spec domain.WidgetSpec, settings *domain.Settings) {
	cfg.WidgetOptions = spec.Options(*settings)
	cfg.ShowAvatar = spec.Display.ShowAvatar
	cfg.ShowBio = spec.Display.ShowBio
	cfg.ShowScore = spec.Display.ShowScore
}

func configureCategory(cfg *domain.CategoryConfig, spec domain.WidgetSpec, settings *domain.Settings) {
	cfg.WidgetOptions = spec.Options(*settings)
	cfg.CategoryKey = spec.CategoryKey
	cfg.ShowDescription = spec.Display.ShowDescription
}
