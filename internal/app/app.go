// Package app implements the application layer for repute.
package app

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.trai.ch/repute/internal/adapters/api"
	"go.trai.ch/repute/internal/adapters/cache"
	"go.trai.ch/repute/internal/adapters/telemetry"
	"go.trai.ch/repute/internal/adapters/watcher"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	detector     ports.SchemeDetector
	watcher      ports.Watcher
	tracer       ports.Tracer
	metrics      *telemetry.PrometheusCollector
	httpClient   *http.Client
	stdout       io.Writer
	stderr       io.Writer
	debounce     time.Duration
}

// LogConfigurer is implemented by loggers whose format can follow the settings file.
type LogConfigurer interface {
	SetJSON(enable bool)
	SetLevel(name string)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	detector ports.SchemeDetector,
	w ports.Watcher,
	tracer ports.Tracer,
	metrics *telemetry.PrometheusCollector,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		detector:     detector,
		watcher:      w,
		tracer:       tracer,
		metrics:      metrics,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithOutput sets where documents and reports are written.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	if stdout != nil {
		a.stdout = stdout
	}
	if stderr != nil {
		a.stderr = stderr
	}
	return a
}

// WithHTTPClient sets the HTTP client used to reach the reputation service.
func (a *App) WithHTTPClient(client *http.Client) *App {
	a.httpClient = client
	return a
}

// WithDebounce sets how long watch mode waits for a burst of file events to settle.
func (a *App) WithDebounce(window time.Duration) *App {
	if window > 0 {
		a.debounce = window
	}
	return a
}

// Options are the flags shared by every command.
type Options struct {
	// ConfigPath is the settings file. Empty means repute.yaml in the working directory.
	ConfigPath string
	APIKey     string
	BaseURL    string
	// Metrics prints the Prometheus exposition after the run.
	Metrics bool
	// Trace logs every finished span.
	Trace bool
}

func (o Options) path() string {
	if o.ConfigPath == "" {
		return domain.SettingsFileName
	}
	return o.ConfigPath
}

// loadSettings reads the settings file and applies flag overrides on top.
func (a *App) loadSettings(opts Options) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(opts.path())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.APIKey != "" {
		settings.APIKey = opts.APIKey
	}
	if opts.BaseURL != "" {
		settings.BaseURL = opts.BaseURL
	}
	if settings.APIKey == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingAPIKey, "failed to load configuration"),
			"hint", "set "+apiKeyHint)
	}

	if lc, ok := a.logger.(LogConfigurer); ok {
		lc.SetJSON(settings.Log.JSON)
		lc.SetLevel(settings.Log.Level)
	}
	return settings, nil
}

const apiKeyHint = "api_key, REPUTE_API_KEY or --api-key"

// newStore creates the response cache of one run.
func (a *App) newStore(settings *domain.Settings) *cache.Store {
	opts := []cache.Option{cache.WithTTL(settings.CacheTTL)}
	if a.metrics != nil {
		opts = append(opts, cache.WithMetrics(a.metrics))
	}
	return cache.New(opts...)
}

// newClient creates an API client on top of store.
func (a *App) newClient(settings *domain.Settings, store *cache.Store) (*api.Client, error) {
	opts := []api.Option{
		api.WithBaseURL(settings.BaseURL),
		api.WithCache(store),
		api.WithLogger(a.logger),
	}
	if a.httpClient != nil {
		opts = append(opts, api.WithHTTPClient(a.httpClient))
	}
	if a.metrics != nil {
		opts = append(opts, api.WithMetrics(a.metrics))
	}
	if a.tracer != nil {
		opts = append(opts, api.WithTracer(a.tracer))
	}
	return api.New(settings.APIKey, opts...)
}

// startTracing routes finished spans to the logger until the returned stop is called.
func (a *App) startTracing(opts Options) func(context.Context) {
	if !opts.Trace {
		return func(context.Context) {}
	}

	// OTelTracer resolves its tracer through the global provider, so spans
	// started after this point reach the bridge.
	tp := telemetry.NewTracerProvider(telemetry.NewBridge(a.logger))
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) {
		_ = tp.ForceFlush(ctx)
		_ = tp.Shutdown(ctx)
	}
}

// writeMetrics prints the collected counters when requested.
func (a *App) writeMetrics(opts Options) error {
	if !opts.Metrics || a.metrics == nil {
		return nil
	}
	if err := a.metrics.WriteText(a.stdout); err != nil {
		return zerr.Wrap(err, "failed to write metrics")
	}
	return nil
}
