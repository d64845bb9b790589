package lifecycle_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repute/internal/adapters/dom"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports/mocks"
	"go.trai.ch/repute/internal/engine/lifecycle"
	"go.uber.org/mock/gomock"
)

type testConfig struct {
	domain.WidgetOptions
	domain.Callbacks[string]

	Label string
}

type fetchFunc func(ctx context.Context, cfg testConfig, opts domain.FetchOptions) (string, error)

type fakeWidget struct {
	calls atomic.Int32
	fetch fetchFunc
}

func (w *fakeWidget) Kind() domain.WidgetKind { return domain.WidgetProfileKind }

func (w *fakeWidget) Validate(cfg testConfig) error {
	if cfg.Label == "invalid" {
		return domain.ErrMissingResourceKey
	}
	return cfg.WidgetOptions.Validate()
}

func (w *fakeWidget) Options(cfg testConfig) domain.WidgetOptions { return cfg.WidgetOptions }

func (w *fakeWidget) Callbacks(cfg testConfig) domain.Callbacks[string] { return cfg.Callbacks }

func (w *fakeWidget) FetchKey(cfg testConfig) string { return domain.NormalizeAddress(cfg.Address) }

func (w *fakeWidget) Fetch(ctx context.Context, cfg testConfig, opts domain.FetchOptions) (string, error) {
	w.calls.Add(1)
	return w.fetch(ctx, cfg, opts)
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func (w *fakeWidget) RenderLoading(v lifecycle.View[testConfig, string]) templ.Component {
	return text("loading/" + string(v.Theme))
}

func (w *fakeWidget) RenderError(v lifecycle.View[testConfig, string]) templ.Component {
	return text("error/" + string(v.Theme) + "/" + v.State.Err.Error())
}

func (w *fakeWidget) RenderData(v lifecycle.View[testConfig, string]) templ.Component {
	return text("data/" + string(v.Theme) + "/" + v.State.Data + v.Config.Label)
}

// echo returns the address as data.
func echo(_ context.Context, cfg testConfig, _ domain.FetchOptions) (string, error) {
	return cfg.Address, nil
}

func newConfig(address string) testConfig {
	return testConfig{WidgetOptions: domain.WidgetOptions{
		APIKey:  "key",
		Address: address,
		Theme:   domain.ThemeLight,
	}}
}

func newController(
	t *testing.T, fetch fetchFunc, cfg testConfig, opts ...lifecycle.Option,
) (*lifecycle.Controller[testConfig, string], *fakeWidget) {
	t.Helper()
	w := &fakeWidget{fetch: fetch}
	c, err := lifecycle.New[testConfig, string](w, cfg, opts...)
	require.NoError(t, err)
	return c, w
}

func TestNew_ValidatesOptions(t *testing.T) {
	w := &fakeWidget{fetch: echo}

	_, err := lifecycle.New[testConfig, string](w, testConfig{WidgetOptions: domain.WidgetOptions{Address: "0xa"}})
	require.ErrorIs(t, err, domain.ErrMissingAPIKey)

	_, err = lifecycle.New[testConfig, string](w, testConfig{WidgetOptions: domain.WidgetOptions{APIKey: "k"}})
	require.ErrorIs(t, err, domain.ErrMissingAddress)
}

func TestController_Mount(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockContainerResolver(ctrl)
	el := dom.NewElement("card", "host")
	resolver.EXPECT().Resolve("#card").Return(el, true)

	cfg := newConfig("0xA")
	cfg.ClassName = "custom wide"
	c, w := newController(t, echo, cfg, lifecycle.WithResolver(resolver))

	require.NoError(t, c.Mount(t.Context(), lifecycle.Selector("#card")))

	state := c.State()
	assert.Equal(t, domain.PhaseReady, state.Phase)
	assert.Equal(t, "0xA", state.Data)
	assert.True(t, state.Valid())
	assert.Equal(t, "data/light/0xA", el.HTML())
	assert.Equal(t, "host repute-widget repute-profile custom wide", el.ClassName())
	assert.Equal(t, 2, el.Writes())
	assert.Equal(t, 1, int(w.calls.Load()))
	assert.True(t, c.Mounted())
}

func TestController_MountErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockContainerResolver(ctrl)
	resolver.EXPECT().Resolve("#missing").Return(nil, false)

	c, w := newController(t, echo, newConfig("0xA"), lifecycle.WithResolver(resolver))

	err := c.Mount(t.Context(), lifecycle.Selector("#missing"))
	require.ErrorIs(t, err, domain.ErrContainerNotFound)
	assert.False(t, c.Mounted())
	assert.Equal(t, domain.PhaseUnmounted, c.State().Phase)

	// Without a resolver only element targets can be mounted.
	bare, _ := newController(t, echo, newConfig("0xA"))
	require.ErrorIs(t, bare.Mount(t.Context(), lifecycle.Selector("#x")), domain.ErrContainerNotFound)

	el := dom.NewElement("x")
	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))
	require.ErrorIs(t, c.Mount(t.Context(), lifecycle.Element(el)), domain.ErrAlreadyMounted)
	assert.Equal(t, 1, int(w.calls.Load()))
}

func TestController_RequiresMount(t *testing.T) {
	c, w := newController(t, echo, newConfig("0xA"))

	require.ErrorIs(t, c.Update(t.Context(), nil), domain.ErrNotMounted)
	require.ErrorIs(t, c.Refresh(t.Context(), lifecycle.RefreshOptions{}), domain.ErrNotMounted)
	assert.Zero(t, w.calls.Load())
}

func TestController_Update(t *testing.T) {
	tests := []struct {
		name      string
		patch     func(*testConfig)
		wantCalls int
		wantHTML  string
	}{
		{
			name:      "address change refetches",
			patch:     func(cfg *testConfig) { cfg.Address = "0xB" },
			wantCalls: 1,
			wantHTML:  "data/light/0xB",
		},
		{
			name:      "surrounding space is the same fetch",
			patch:     func(cfg *testConfig) { cfg.Address = " 0xA " },
			wantCalls: 0,
			wantHTML:  "data/light/0xA",
		},
		{
			name:      "address case change refetches",
			patch:     func(cfg *testConfig) { cfg.Address = "0xa" },
			wantCalls: 1,
			wantHTML:  "data/light/0xa",
		},
		{
			name:      "theme change re-renders",
			patch:     func(cfg *testConfig) { cfg.Theme = domain.ThemeDark },
			wantCalls: 0,
			wantHTML:  "data/dark/0xA",
		},
		{
			name:      "display change re-renders",
			patch:     func(cfg *testConfig) { cfg.Label = "!" },
			wantCalls: 0,
			wantHTML:  "data/light/0xA!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newController(t, echo, newConfig("0xA"))
			el := dom.NewElement("card")
			require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))
			before := w.calls.Load()

			require.NoError(t, c.Update(t.Context(), tt.patch))

			assert.Equal(t, tt.wantCalls, int(w.calls.Load()-before))
			assert.Equal(t, tt.wantHTML, el.HTML())
			assert.True(t, c.State().Valid())
		})
	}
}

func TestController_UpdateRejectsInvalidConfig(t *testing.T) {
	c, _ := newController(t, echo, newConfig("0xA"))
	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(dom.NewElement("card"))))

	err := c.Update(t.Context(), func(cfg *testConfig) { cfg.Address = "" })
	require.ErrorIs(t, err, domain.ErrMissingAddress)
	assert.Equal(t, "0xA", c.Config().Address)
}

func TestController_UpdateRunsWidgetValidation(t *testing.T) {
	c, w := newController(t, echo, newConfig("0xA"))
	el := dom.NewElement("card")
	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))

	err := c.Update(t.Context(), func(cfg *testConfig) {
		cfg.Address = "0xB"
		cfg.Label = "invalid"
	})

	require.ErrorIs(t, err, domain.ErrMissingResourceKey)
	assert.Equal(t, 1, int(w.calls.Load()))
	assert.Equal(t, "0xA", c.Config().Address)
	assert.Equal(t, "data/light/0xA", el.HTML())
}

func TestController_UpdateSwapsClasses(t *testing.T) {
	cfg := newConfig("0xA")
	cfg.ClassName = "old"
	c, _ := newController(t, echo, cfg)
	el := dom.NewElement("card")
	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))

	require.NoError(t, c.Update(t.Context(), func(cfg *testConfig) { cfg.ClassName = "new" }))

	assert.False(t, el.HasClass("old"))
	assert.True(t, el.HasClass("new"))
	assert.True(t, el.HasClass("repute-widget"))
}

func TestController_FetchFailure(t *testing.T) {
	failure := domain.NewRemoteError(404, "not found", nil)
	fetch := func(_ context.Context, cfg testConfig, _ domain.FetchOptions) (string, error) {
		if cfg.Address == "0xBAD" {
			return "", failure
		}
		return cfg.Address, nil
	}

	var loaded []string
	var failed []error
	cfg := newConfig("0xA")
	cfg.OnLoad = func(d string) { loaded = append(loaded, d) }
	cfg.OnError = func(err error) { failed = append(failed, err) }

	c, _ := newController(t, fetch, cfg)
	el := dom.NewElement("card")
	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))

	require.NoError(t, c.Update(t.Context(), func(cfg *testConfig) { cfg.Address = "0xBAD" }))

	state := c.State()
	assert.Equal(t, domain.PhaseError, state.Phase)
	assert.Same(t, failure, state.Err)
	assert.False(t, state.HasData)
	assert.Empty(t, state.Data)
	assert.True(t, state.Valid())
	assert.Equal(t, "error/light/404: not found", el.HTML())
	assert.Equal(t, []string{"0xA"}, loaded)
	assert.Equal(t, []error{failure}, failed)

	require.NoError(t, c.Update(t.Context(), func(cfg *testConfig) { cfg.Address = "0xC" }))
	assert.Equal(t, domain.PhaseReady, c.State().Phase)
	assert.Equal(t, []string{"0xA", "0xC"}, loaded)
}

func TestController_Refresh(t *testing.T) {
	var forced []bool
	fetch := func(_ context.Context, cfg testConfig, opts domain.FetchOptions) (string, error) {
		forced = append(forced, opts.ForceRefresh)
		return cfg.Address, nil
	}
	var loads atomic.Int32
	cfg := newConfig("0xA")
	cfg.OnLoad = func(string) { loads.Add(1) }

	c, _ := newController(t, fetch, cfg)
	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(dom.NewElement("card"))))
	require.NoError(t, c.Refresh(t.Context(), lifecycle.RefreshOptions{}))
	require.NoError(t, c.Refresh(t.Context(), lifecycle.RefreshOptions{ForceRefresh: true}))

	assert.Equal(t, []bool{false, false, true}, forced)
	assert.Equal(t, 3, int(loads.Load()))
}

func TestController_Destroy(t *testing.T) {
	cfg := newConfig("0xA")
	cfg.ClassName = "custom"
	c, w := newController(t, echo, cfg)
	el := dom.NewElement("card", "host")
	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))

	c.Destroy()

	assert.Empty(t, el.HTML())
	assert.Equal(t, []string{"host"}, el.Classes())
	assert.False(t, c.Mounted())
	assert.Equal(t, domain.WidgetState[string]{}, c.State())

	c.Destroy()
	assert.Empty(t, el.HTML())

	require.ErrorIs(t, c.Refresh(t.Context(), lifecycle.RefreshOptions{}), domain.ErrNotMounted)

	// A destroyed widget may be mounted again.
	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))
	assert.Equal(t, "data/light/0xA", el.HTML())
	assert.Equal(t, 2, int(w.calls.Load()))
}

func TestController_DestroyDuringFetch(t *testing.T) {
	started := make(chan struct{})
	fetch := func(ctx context.Context, cfg testConfig, _ domain.FetchOptions) (string, error) {
		close(started)
		<-ctx.Done()
		return cfg.Address, nil
	}
	var loads atomic.Int32
	cfg := newConfig("0xA")
	cfg.OnLoad = func(string) { loads.Add(1) }
	c, _ := newController(t, fetch, cfg)
	el := dom.NewElement("card")

	done := make(chan error)
	go func() { done <- c.Mount(t.Context(), lifecycle.Element(el)) }()
	<-started
	c.Destroy()

	require.NoError(t, <-done)
	assert.Empty(t, el.HTML())
	assert.Equal(t, domain.PhaseUnmounted, c.State().Phase)
	assert.Zero(t, loads.Load())
}

func TestController_SupersededFetchIsDiscarded(t *testing.T) {
	startedA := make(chan struct{})
	releaseA := make(chan struct{})
	fetch := func(_ context.Context, cfg testConfig, _ domain.FetchOptions) (string, error) {
		if cfg.Address == "0xA" {
			close(startedA)
			// Ignores cancellation to model a response already on its way.
			<-releaseA
		}
		return cfg.Address, nil
	}

	var mu sync.Mutex
	var loaded []string
	cfg := newConfig("0xA")
	cfg.OnLoad = func(d string) {
		mu.Lock()
		defer mu.Unlock()
		loaded = append(loaded, d)
	}
	c, _ := newController(t, fetch, cfg)
	el := dom.NewElement("card")

	done := make(chan error)
	go func() { done <- c.Mount(t.Context(), lifecycle.Element(el)) }()
	<-startedA

	require.NoError(t, c.Update(t.Context(), func(cfg *testConfig) { cfg.Address = "0xB" }))
	close(releaseA)
	require.NoError(t, <-done)

	assert.Equal(t, "0xB", c.State().Data)
	assert.Equal(t, "data/light/0xB", el.HTML())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"0xB"}, loaded)
}

func TestController_Cancellation(t *testing.T) {
	cancelled := cancellation(domain.ErrRequestCancelled)
	block := atomic.Bool{}
	fetch := func(ctx context.Context, cfg testConfig, _ domain.FetchOptions) (string, error) {
		if block.Load() {
			<-ctx.Done()
			return "", cancelled
		}
		return cfg.Address, nil
	}

	var errs atomic.Int32
	cfg := newConfig("0xA")
	cfg.OnError = func(error) { errs.Add(1) }

	t.Run("before first result stays loading", func(t *testing.T) {
		block.Store(true)
		c, _ := newController(t, fetch, cfg)
		el := dom.NewElement("card")
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		require.NoError(t, c.Mount(ctx, lifecycle.Element(el)))

		state := c.State()
		assert.Equal(t, domain.PhaseLoading, state.Phase)
		assert.True(t, state.Valid())
		assert.Equal(t, "loading/light", el.HTML())
	})

	t.Run("after a result reverts to it", func(t *testing.T) {
		block.Store(false)
		c, _ := newController(t, fetch, cfg)
		el := dom.NewElement("card")
		require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))

		block.Store(true)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		require.NoError(t, c.Refresh(ctx, lifecycle.RefreshOptions{ForceRefresh: true}))

		state := c.State()
		assert.Equal(t, domain.PhaseReady, state.Phase)
		assert.Equal(t, "0xA", state.Data)
		assert.Equal(t, "data/light/0xA", el.HTML())
	})

	assert.Zero(t, errs.Load())
}

func cancellation(err error) error {
	return errors.Join(err, context.Canceled)
}

func TestController_AutoTheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector := mocks.NewMockSchemeDetector(ctrl)
	gomock.InOrder(
		detector.EXPECT().PrefersDark().Return(true),
		detector.EXPECT().PrefersDark().Return(true),
		detector.EXPECT().PrefersDark().Return(false),
	)

	cfg := newConfig("0xA")
	cfg.Theme = domain.ThemeAuto
	c, _ := newController(t, echo, cfg, lifecycle.WithDetector(detector))
	el := dom.NewElement("card")

	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))
	assert.Equal(t, "data/dark/0xA", el.HTML())

	require.NoError(t, c.Update(t.Context(), func(cfg *testConfig) { cfg.Label = "." }))
	assert.Equal(t, "data/light/0xA.", el.HTML())
}

// lockCheckingDetector checks the controller is not locked while
// it is being queried.
type lockCheckingDetector struct {
	c       *lifecycle.Controller[testConfig, string]
	queries atomic.Int32
	blocked atomic.Int32
}

func (d *lockCheckingDetector) PrefersDark() bool {
	d.queries.Add(1)
	done := make(chan struct{})
	go func() {
		_ = d.c.State()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		d.blocked.Add(1)
	}
	return true
}

func TestController_DetectorQueriedOutsideLock(t *testing.T) {
	detector := &lockCheckingDetector{}
	cfg := newConfig("0xA")
	cfg.Theme = domain.ThemeAuto
	c, _ := newController(t, echo, cfg, lifecycle.WithDetector(detector))
	detector.c = c
	el := dom.NewElement("card")

	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))
	require.NoError(t, c.Update(t.Context(), func(cfg *testConfig) { cfg.Label = "." }))
	require.NoError(t, c.Refresh(t.Context(), lifecycle.RefreshOptions{}))

	assert.Equal(t, "data/dark/0xA.", el.HTML())
	assert.Positive(t, detector.queries.Load())
	assert.Zero(t, detector.blocked.Load())
}

func TestController_ConcreteThemeSkipsDetector(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector := mocks.NewMockSchemeDetector(ctrl)

	c, _ := newController(t, echo, newConfig("0xA"), lifecycle.WithDetector(detector))
	el := dom.NewElement("card")

	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(el)))
	assert.Equal(t, "data/light/0xA", el.HTML())
}

func TestController_CallbacksRunOutsideLock(t *testing.T) {
	var seen domain.Phase
	var c *lifecycle.Controller[testConfig, string]
	cfg := newConfig("0xA")
	cfg.OnLoad = func(string) { seen = c.State().Phase }

	c, _ = newController(t, echo, cfg)
	require.NoError(t, c.Mount(t.Context(), lifecycle.Element(dom.NewElement("card"))))

	assert.Equal(t, domain.PhaseReady, seen)
}

func TestController_StateInvariant(t *testing.T) {
	fetch := func(_ context.Context, cfg testConfig, _ domain.FetchOptions) (string, error) {
		if cfg.Address == "0xBAD" {
			return "", domain.NewTransportError(errors.New("offline"))
		}
		return cfg.Address, nil
	}
	c, _ := newController(t, fetch, newConfig("0xA"))
	el := dom.NewElement("card")
	ctx := t.Context()

	steps := []func() error{
		func() error { return c.Mount(ctx, lifecycle.Element(el)) },
		func() error { return c.Update(ctx, func(cfg *testConfig) { cfg.Address = "0xBAD" }) },
		func() error { return c.Update(ctx, func(cfg *testConfig) { cfg.Theme = domain.ThemeDark }) },
		func() error { return c.Refresh(ctx, lifecycle.RefreshOptions{}) },
		func() error { return c.Update(ctx, func(cfg *testConfig) { cfg.Address = "0xB" }) },
		func() error { c.Destroy(); return nil },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		assert.True(t, c.State().Valid(), "step %d", i)
	}
}
