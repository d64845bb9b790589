package app

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"go.trai.ch/repute/internal/adapters/dom"
	"go.trai.ch/repute/internal/adapters/widgets"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/engine/lifecycle"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentRenders = 8

// RenderOptions configures a one-shot render of several addresses.
type RenderOptions struct {
	Options

	Kind      string
	Addresses []string
	// Theme overrides the settings theme when set.
	Theme       string
	BadgeKey    string
	CategoryKey string
	ClassName   string
	Compact     bool
	// Force reloads every widget past the cache once it has mounted.
	Force bool
}

// Render mounts one widget per address, waits for all of them to settle and
// writes the resulting document. Widgets share one response cache, so repeated
// addresses cost a single request.
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	specs, err := renderSpecs(opts)
	if err != nil {
		return err
	}

	settings, err := a.loadSettings(opts.Options)
	if err != nil {
		return err
	}

	stop := a.startTracing(opts.Options)
	defer stop(context.WithoutCancel(ctx))

	client, err := a.newClient(settings, a.newStore(settings))
	if err != nil {
		return zerr.Wrap(err, "failed to render widgets")
	}

	doc := dom.NewDocument()
	deps := widgets.Deps{API: client, Resolver: doc, Detector: a.detector, Logger: a.logger}

	handles := make([]handle, len(specs))
	for i, spec := range specs {
		h, err := newHandle(spec, settings, deps, nil)
		if err != nil {
			return err
		}
		handles[i] = h
		doc.Create(spec.ID)
	}
	defer func() {
		for _, h := range handles {
			h.Destroy()
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRenders)
	for i, h := range handles {
		target := lifecycle.Selector("#" + specs[i].ID)
		g.Go(func() error {
			if err := h.Mount(gctx, target); err != nil {
				return err
			}
			if opts.Force {
				return h.Refresh(gctx, lifecycle.RefreshOptions{ForceRefresh: true})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "failed to render widgets")
	}

	if err := writeDocument(a.stdout, doc); err != nil {
		return err
	}
	failed := a.report(specs, handles)
	if err := a.writeMetrics(opts.Options); err != nil {
		return err
	}

	if failed > 0 {
		return zerr.With(zerr.Wrap(domain.ErrWidgetsFailed, "render finished with errors"), "failed", failed)
	}
	return nil
}

func renderSpecs(opts RenderOptions) ([]domain.WidgetSpec, error) {
	kind, err := domain.ParseWidgetKind(opts.Kind)
	if err != nil {
		return nil, err
	}
	if len(opts.Addresses) == 0 {
		return nil, zerr.Wrap(domain.ErrMissingAddress, "failed to render widgets")
	}

	var theme domain.Theme
	if opts.Theme != "" {
		if theme, err = domain.ParseTheme(opts.Theme); err != nil {
			return nil, err
		}
	}

	display := domain.DefaultDisplayOptions()
	display.Compact = opts.Compact

	specs := make([]domain.WidgetSpec, len(opts.Addresses))
	for i, address := range opts.Addresses {
		specs[i] = domain.WidgetSpec{
			ID:          fmt.Sprintf("%s-%d", kind, i+1),
			Kind:        kind,
			Address:     address,
			Theme:       theme,
			ClassName:   opts.ClassName,
			BadgeKey:    opts.BadgeKey,
			CategoryKey: opts.CategoryKey,
			Display:     display,
		}
	}
	return specs, nil
}

// writeDocument prints every element as a host div around its markup.
func writeDocument(w io.Writer, doc *dom.Document) error {
	for _, el := range doc.Elements() {
		_, err := fmt.Fprintf(w, "<div id=\"%s\" class=\"%s\">%s</div>\n",
			templ.EscapeString(el.ID()), templ.EscapeString(el.ClassName()), el.HTML())
		if err != nil {
			return zerr.Wrap(err, "failed to write document")
		}
	}
	return nil
}
