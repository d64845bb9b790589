package app

import (
	"context"
	"errors"
	"io"
	"sync"

	"go.trai.ch/repute/internal/adapters/api"
	"go.trai.ch/repute/internal/adapters/dom"
	"go.trai.ch/repute/internal/adapters/watcher"
	"go.trai.ch/repute/internal/adapters/widgets"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// WatchOptions configures watch mode.
type WatchOptions struct {
	Options

	// Force reloads every kept widget past the cache on each settings change.
	Force bool
}

// Watch mounts the widgets declared in the settings file and keeps them in
// sync with it until ctx is done. Every render is written to stdout prefixed
// with the widget id.
//
// On each change a widget whose address or resource key changed reloads; any
// other change re-renders it from the data it already holds.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	settings, err := a.loadSettings(opts.Options)
	if err != nil {
		return err
	}

	stop := a.startTracing(opts.Options)
	defer stop(context.WithoutCancel(ctx))

	s := &session{
		app:     a,
		opts:    opts,
		doc:     dom.NewDocument(),
		out:     &lineWriter{w: a.stdout},
		handles: make(map[string]handle),
	}
	defer s.close()

	if len(settings.Widgets) == 0 {
		a.logger.Warn("no widgets declared in " + opts.path())
	}
	s.mu.Lock()
	err = s.sync(ctx, settings)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, opts.path()); err != nil {
		return zerr.Wrap(err, "failed to watch configuration")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()
	a.logger.Info("watching " + opts.path())

	debouncer := watcher.NewDebouncer(a.debounce, func(_ []string) {
		s.reload(ctx)
	})
	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}

	return a.writeMetrics(opts.Options)
}

// session holds the widgets mounted by one watch run.
type session struct {
	app  *App
	opts WatchOptions
	doc  *dom.Document
	out  *lineWriter

	mu       sync.Mutex
	closed   bool
	settings *domain.Settings
	client   *api.Client
	handles  map[string]handle
}

func (s *session) reload(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	next, err := s.app.loadSettings(s.opts.Options)
	if err != nil {
		s.app.logger.Error(err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if err := s.sync(ctx, next); err != nil {
		s.app.logger.Error(err)
	}
}

// sync reconciles the mounted widgets with next. It must be called with mu held.
func (s *session) sync(ctx context.Context, next *domain.Settings) error {
	if s.client == nil || connectionChanged(s.settings, next) {
		s.destroyAll()
		client, err := s.app.newClient(next, s.app.newStore(next))
		if err != nil {
			return zerr.Wrap(err, "failed to apply configuration")
		}
		s.client = client
	}

	var errs error
	seen := make(map[string]bool, len(next.Widgets))
	for _, spec := range next.Widgets {
		seen[spec.ID] = true

		h, ok := s.handles[spec.ID]
		if ok && h.Kind() == spec.Kind {
			if err := h.apply(ctx, spec, next); err != nil {
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to apply configuration"), "id", spec.ID))
				continue
			}
			if s.opts.Force {
				errs = errors.Join(errs, h.Refresh(ctx, lifecycle.RefreshOptions{ForceRefresh: true}))
			}
			continue
		}
		if ok {
			h.Destroy()
			delete(s.handles, spec.ID)
		}
		errs = errors.Join(errs, s.mount(ctx, spec, next))
	}

	for id, h := range s.handles {
		if !seen[id] {
			h.Destroy()
			delete(s.handles, id)
			s.app.logger.Info("widget " + id + " removed")
		}
	}

	s.settings = next
	return errs
}

func (s *session) mount(ctx context.Context, spec domain.WidgetSpec, settings *domain.Settings) error {
	deps := widgets.Deps{API: s.client, Resolver: s.doc, Detector: s.app.detector, Logger: s.app.logger}
	h, err := newHandle(spec, settings, deps, s.app.logger)
	if err != nil {
		return err
	}

	s.doc.Create(spec.ID).WithSink(s.out.prefixed("[" + spec.ID + "] "))
	if err := h.Mount(ctx, lifecycle.Selector("#"+spec.ID)); err != nil {
		return zerr.With(err, "id", spec.ID)
	}
	s.handles[spec.ID] = h
	return nil
}

func (s *session) destroyAll() {
	for id, h := range s.handles {
		h.Destroy()
		delete(s.handles, id)
	}
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.destroyAll()
}

// connectionChanged reports whether widgets must move to a new client.
func connectionChanged(prev, next *domain.Settings) bool {
	if prev == nil {
		return true
	}
	return prev.APIKey != next.APIKey || prev.BaseURL != next.BaseURL || prev.CacheTTL != next.CacheTTL
}

// lineWriter serializes writes from several element sinks onto one stream.
type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lineWriter) prefixed(prefix string) io.Writer {
	return prefixWriter{parent: l, prefix: prefix}
}

type prefixWriter struct {
	parent *lineWriter
	prefix string
}

func (p prefixWriter) Write(b []byte) (int, error) {
	p.parent.mu.Lock()
	defer p.parent.mu.Unlock()

	if _, err := io.WriteString(p.parent.w, p.prefix); err != nil {
		return 0, err
	}
	return p.parent.w.Write(b)
}
