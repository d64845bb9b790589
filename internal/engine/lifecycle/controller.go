package lifecycle

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/zerr"
)

const baseClass = "repute-widget"

// Option configures a Controller.
type Option func(*settings)

type settings struct {
	resolver ports.ContainerResolver
	detector ports.SchemeDetector
	logger   ports.Logger
}

// WithResolver sets the resolver used for selector targets.
func WithResolver(r ports.ContainerResolver) Option {
	return func(s *settings) {
		s.resolver = r
	}
}

// WithDetector sets the color-scheme detector used for the auto theme.
func WithDetector(d ports.SchemeDetector) Option {
	return func(s *settings) {
		s.detector = d
	}
}

// WithLogger reports render failures that happen after a fetch settles.
func WithLogger(l ports.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// Controller drives one widget instance through its phases.
//
// Operations may be called from any goroutine. Mount, Update and Refresh block
// until the fetch they start settles or is superseded. Every fetch-starting
// operation bumps the generation and cancels the previous fetch; a result is
// applied only while its generation is current.
type Controller[C, D any] struct {
	widget Widget[C, D]
	settings

	mu         sync.Mutex
	cfg        C
	state      domain.WidgetState[D]
	settled    *domain.WidgetState[D]
	container  ports.Container
	classes    []string
	generation uint64
	cancel     context.CancelFunc
}

// New creates an unmounted controller for widget with cfg.
func New[C, D any](widget Widget[C, D], cfg C, opts ...Option) (*Controller[C, D], error) {
	if err := widget.Validate(cfg); err != nil {
		return nil, err
	}
	c := &Controller[C, D]{widget: widget, cfg: cfg}
	for _, opt := range opts {
		opt(&c.settings)
	}
	return c, nil
}

// Kind returns the widget kind.
func (c *Controller[C, D]) Kind() domain.WidgetKind {
	return c.widget.Kind()
}

// Config returns the current configuration.
func (c *Controller[C, D]) Config() C {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// State returns a snapshot of the current state.
func (c *Controller[C, D]) State() domain.WidgetState[D] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mounted reports whether the controller is attached to a container.
func (c *Controller[C, D]) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.container != nil
}

// Mount attaches the widget to target, renders the loading view and fetches.
// A target that resolves to nothing is an error; fetch failures are not.
func (c *Controller[C, D]) Mount(ctx context.Context, target Target) error {
	sc := c.detect()
	c.mu.Lock()
	if c.container != nil {
		c.mu.Unlock()
		return zerr.Wrap(domain.ErrAlreadyMounted, "failed to mount widget")
	}

	container, err := c.resolve(target)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	c.container = container
	c.classes = c.classNames(c.cfg)
	container.AddClass(c.classes...)

	run, err := c.beginFetch(ctx, domain.FetchOptions{}, sc)
	if err != nil {
		c.detach()
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()
	run()
	return nil
}

// Update applies patch to a copy of the configuration and swaps it in.
// When the fetch key changes the widget reloads; otherwise it re-renders the
// current phase without touching the network.
func (c *Controller[C, D]) Update(ctx context.Context, patch func(*C)) error {
	sc := c.detect()
	c.mu.Lock()
	if c.container == nil {
		c.mu.Unlock()
		return zerr.Wrap(domain.ErrNotMounted, "failed to update widget")
	}

	next := c.cfg
	if patch != nil {
		patch(&next)
	}
	if err := c.widget.Validate(next); err != nil {
		c.mu.Unlock()
		return err
	}

	refetch := c.widget.FetchKey(next) != c.widget.FetchKey(c.cfg)
	c.cfg = next
	c.reclass(next)

	if !refetch {
		err := c.render(ctx, sc)
		c.mu.Unlock()
		return err
	}

	run, err := c.beginFetch(ctx, domain.FetchOptions{}, sc)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	run()
	return nil
}

// Refresh reloads the widget data. Unless forced, the response cache may answer.
func (c *Controller[C, D]) Refresh(ctx context.Context, opts RefreshOptions) error {
	sc := c.detect()
	c.mu.Lock()
	if c.container == nil {
		c.mu.Unlock()
		return zerr.Wrap(domain.ErrNotMounted, "failed to refresh widget")
	}
	run, err := c.beginFetch(ctx, domain.FetchOptions{ForceRefresh: opts.ForceRefresh}, sc)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	run()
	return nil
}

// Destroy cancels any in-flight fetch, empties the container, removes the
// classes added at mount and returns to the unmounted phase. It is idempotent.
func (c *Controller[C, D]) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.container == nil {
		return
	}
	c.container.SetHTML("")
	c.detach()
}

// detach removes the mount classes and forgets the container and state.
// Must be called with c.mu held.
func (c *Controller[C, D]) detach() {
	c.container.RemoveClass(c.classes...)
	c.container = nil
	c.classes = nil
	c.state = domain.WidgetState[D]{}
	c.settled = nil
}

// beginFetch moves to Loading under a new generation and returns the function
// that performs the fetch. Must be called with c.mu held; the returned
// function must be called without it.
func (c *Controller[C, D]) beginFetch(ctx context.Context, opts domain.FetchOptions, sc scheme) (func(), error) {
	c.generation++
	gen := c.generation
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.state = domain.LoadingState[D]()
	if err := c.render(ctx, sc); err != nil {
		cancel()
		c.cancel = nil
		return nil, err
	}

	cfg := c.cfg
	return func() {
		defer cancel()
		data, err := c.widget.Fetch(fetchCtx, cfg, opts)
		c.settle(ctx, gen, data, err)
	}, nil
}

// settle applies a fetch result if gen is still current and then runs the
// matching callback outside the lock.
func (c *Controller[C, D]) settle(ctx context.Context, gen uint64, data D, fetchErr error) {
	sc := c.detect()
	c.mu.Lock()
	if gen != c.generation || c.container == nil {
		c.mu.Unlock()
		return
	}
	c.cancel = nil

	var notify func()
	callbacks := c.widget.Callbacks(c.cfg)
	switch {
	case fetchErr == nil:
		c.state = domain.ReadyState(data)
		if callbacks.OnLoad != nil {
			notify = func() { callbacks.OnLoad(data) }
		}
	case isCancellation(fetchErr):
		if c.settled == nil {
			// Nothing to go back to: keep showing the loading view.
			c.mu.Unlock()
			return
		}
		c.state = *c.settled
	default:
		c.state = domain.ErrorState[D](fetchErr)
		if callbacks.OnError != nil {
			notify = func() { callbacks.OnError(fetchErr) }
		}
	}
	settled := c.state
	c.settled = &settled

	if err := c.render(ctx, sc); err != nil && c.logger != nil {
		c.logger.Error(err)
	}
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// render assigns the markup of the current phase to the container.
// Must be called with c.mu held.
func (c *Controller[C, D]) render(ctx context.Context, sc scheme) error {
	view := View[C, D]{
		Kind:   c.widget.Kind(),
		Config: c.cfg,
		State:  c.state,
		Theme:  c.theme(sc),
	}

	component := c.widget.RenderLoading(view)
	switch c.state.Phase {
	case domain.PhaseError:
		component = c.widget.RenderError(view)
	case domain.PhaseReady:
		component = c.widget.RenderData(view)
	}

	var sb strings.Builder
	if err := component.Render(context.WithoutCancel(ctx), &sb); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrRenderFailed, err), "failed to render widget"),
			"phase", c.state.Phase.String())
	}
	c.container.SetHTML(sb.String())
	return nil
}

// scheme is the detector answer taken for one operation.
type scheme struct {
	dark  bool
	known bool
}

// detect asks the detector when the current theme depends on it. It must be
// called without c.mu held: a terminal background query can block until it
// times out.
func (c *Controller[C, D]) detect() scheme {
	if c.detector == nil {
		return scheme{}
	}
	c.mu.Lock()
	requested := c.widget.Options(c.cfg).Theme
	c.mu.Unlock()
	if requested.IsConcrete() {
		return scheme{}
	}
	return scheme{dark: c.detector.PrefersDark(), known: true}
}

func (c *Controller[C, D]) theme(sc scheme) domain.Theme {
	requested := c.widget.Options(c.cfg).Theme
	switch {
	case requested.IsConcrete() || c.detector == nil:
		return requested.Resolve(nil)
	case sc.known:
		return requested.Resolve(func() bool { return sc.dark })
	default:
		// An Update switched to auto after detect ran.
		return requested.Resolve(c.detector.PrefersDark)
	}
}

func (c *Controller[C, D]) resolve(target Target) (ports.Container, error) {
	if target.container != nil {
		return target.container, nil
	}
	if c.resolver != nil && target.selector != "" {
		if container, ok := c.resolver.Resolve(target.selector); ok {
			return container, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrContainerNotFound, "failed to mount widget"), "selector", target.selector)
}

func (c *Controller[C, D]) classNames(cfg C) []string {
	names := []string{baseClass, "repute-" + string(c.widget.Kind())}
	return append(names, strings.Fields(c.widget.Options(cfg).ClassName)...)
}

// reclass swaps the custom classes when ClassName changed.
func (c *Controller[C, D]) reclass(cfg C) {
	next := c.classNames(cfg)
	c.container.RemoveClass(c.classes...)
	c.container.AddClass(next...)
	c.classes = next
}

func isCancellation(err error) bool {
	return domain.IsCancelled(err) || errors.Is(err, context.Canceled)
}
