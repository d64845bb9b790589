// Package lifecycle implements the mount/update/refresh/destroy state machine
// shared by every widget.
package lifecycle

import (
	"context"

	"github.com/a-h/templ"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
)

// Widget is what a concrete widget supplies to a Controller: how to fetch its
// data and how to render each phase.
type Widget[C, D any] interface {
	Kind() domain.WidgetKind
	// Validate rejects a configuration the widget cannot fetch with. It runs
	// before construction and before every Update is applied.
	Validate(cfg C) error
	// Options returns the fields shared by every widget configuration.
	Options(cfg C) domain.WidgetOptions
	Callbacks(cfg C) domain.Callbacks[D]
	// FetchKey identifies the remote data cfg needs. A config change that
	// keeps the key only re-renders.
	FetchKey(cfg C) string
	Fetch(ctx context.Context, cfg C, opts domain.FetchOptions) (D, error)

	RenderLoading(view View[C, D]) templ.Component
	RenderError(view View[C, D]) templ.Component
	RenderData(view View[C, D]) templ.Component
}

// View is everything a render sees.
type View[C, D any] struct {
	Kind   domain.WidgetKind
	Config C
	State  domain.WidgetState[D]
	// Theme is always light or dark.
	Theme domain.Theme
}

// Target names the container a widget mounts into.
type Target struct {
	selector  string
	container ports.Container
}

// Selector targets the container a resolver finds for selector.
func Selector(selector string) Target {
	return Target{selector: selector}
}

// Element targets a concrete container.
func Element(c ports.Container) Target {
	return Target{container: c}
}

// String returns the selector, or a placeholder for element targets.
func (t Target) String() string {
	if t.container != nil {
		return "<element>"
	}
	return t.selector
}

// RefreshOptions tunes Refresh.
type RefreshOptions struct {
	// ForceRefresh bypasses the response cache.
	ForceRefresh bool
}
