// Package config provides the settings loader for repute.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvAPIKey overrides the apiKey setting.
	EnvAPIKey = "REPUTE_API_KEY"
	// EnvBaseURL overrides the baseUrl setting.
	EnvBaseURL = "REPUTE_BASE_URL"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file and the environment.
type Loader struct {
	logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a Loader reading overrides from the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, getenv: os.Getenv}
}

// Load reads the settings file at path. A missing file yields the defaults.
// Environment overrides are applied last.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if l.logger != nil {
			l.logger.Info("no settings file at " + path + ", using defaults")
		}
		data = nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to load settings"),
			"path", path)
	}

	settings, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	l.applyEnv(settings)
	return settings, nil
}

func (l *Loader) applyEnv(s *domain.Settings) {
	if v := strings.TrimSpace(l.getenv(EnvAPIKey)); v != "" {
		s.APIKey = v
	}
	if v := strings.TrimSpace(l.getenv(EnvBaseURL)); v != "" {
		s.BaseURL = v
	}
}

// Parse decodes settings from YAML and validates them. Empty input yields the defaults.
func Parse(data []byte) (*domain.Settings, error) {
	var file Settingsfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "failed to load settings")
	}
	return file.settings()
}

func (f *Settingsfile) settings() (*domain.Settings, error) {
	s := &domain.Settings{
		APIKey:   strings.TrimSpace(f.APIKey),
		BaseURL:  strings.TrimSpace(f.BaseURL),
		CacheTTL: domain.DefaultCacheTTL,
		Log: domain.LogSettings{
			JSON:  f.Log.JSON,
			Level: f.Log.Level,
		},
	}
	if s.BaseURL == "" {
		s.BaseURL = domain.DefaultBaseURL
	}

	if raw := strings.TrimSpace(f.CacheTTL); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCacheTTL, "failed to load settings"), "cache_ttl", raw)
		}
		s.CacheTTL = ttl
	}

	theme, err := domain.ParseTheme(f.Theme)
	if err != nil {
		return nil, err
	}
	s.Theme = theme

	seen := make(map[string]bool, len(f.Widgets))
	for i, dto := range f.Widgets {
		spec, err := dto.spec(i)
		if err != nil {
			return nil, zerr.With(err, "widget", i)
		}
		if seen[spec.ID] {
			return nil, zerr.With(zerr.New("duplicate widget id"), "id", spec.ID)
		}
		seen[spec.ID] = true
		s.Widgets = append(s.Widgets, spec)
	}
	return s, nil
}

func (w WidgetDTO) spec(index int) (domain.WidgetSpec, error) {
	kind, err := domain.ParseWidgetKind(strings.TrimSpace(w.Kind))
	if err != nil {
		return domain.WidgetSpec{}, err
	}
	if strings.TrimSpace(w.Address) == "" {
		return domain.WidgetSpec{}, zerr.Wrap(domain.ErrMissingAddress, "widget needs an address")
	}
	if kind == domain.WidgetCategoryKind && strings.TrimSpace(w.CategoryKey) == "" {
		return domain.WidgetSpec{}, zerr.Wrap(domain.ErrMissingResourceKey, "category widget needs categoryKey")
	}

	var theme domain.Theme
	if w.Theme != "" {
		if theme, err = domain.ParseTheme(w.Theme); err != nil {
			return domain.WidgetSpec{}, err
		}
	}

	id := strings.TrimSpace(w.ID)
	if id == "" {
		id = string(kind) + "-" + strconv.Itoa(index+1)
	}

	return domain.WidgetSpec{
		ID:          id,
		Kind:        kind,
		Address:     strings.TrimSpace(w.Address),
		Theme:       theme,
		ClassName:   w.ClassName,
		BadgeKey:    strings.TrimSpace(w.BadgeKey),
		CategoryKey: strings.TrimSpace(w.CategoryKey),
		Display:     w.Display.options(),
	}, nil
}

func (d DisplayDTO) options() domain.DisplayOptions {
	o := domain.DefaultDisplayOptions()
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&o.ShowCategories, d.ShowCategories)
	set(&o.ShowBadgeCount, d.ShowBadgeCount)
	set(&o.Compact, d.Compact)
	set(&o.ShowDescription, d.ShowDescription)
	set(&o.ShowLevels, d.ShowLevels)
	set(&o.ShowAvatar, d.ShowAvatar)
	set(&o.ShowBio, d.ShowBio)
	set(&o.ShowScore, d.ShowScore)
	return o
}
