package domain

import "time"

const (
	// DefaultBaseURL is the production endpoint of the reputation service.
	DefaultBaseURL = "https://api.repute.network/v1"
	// DefaultCacheTTL is how long a successful widget response is served from memory.
	DefaultCacheTTL = 5 * time.Minute
	// SettingsFileName is the settings file looked up in the working directory.
	SettingsFileName = "repute.yaml"
)

// Settings is the resolved runtime configuration of the CLI.
type Settings struct {
	APIKey   string
	BaseURL  string
	CacheTTL time.Duration
	Theme    Theme
	Log      LogSettings
	Widgets  []WidgetSpec
}

// LogSettings controls the log output.
type LogSettings struct {
	JSON  bool
	Level string
}

// WidgetSpec declares one widget mounted into the container with the given ID.
type WidgetSpec struct {
	ID          string
	Kind        WidgetKind
	Address     string
	Theme       Theme
	ClassName   string
	BadgeKey    string
	CategoryKey string
	Display     DisplayOptions
}

// DisplayOptions is the union of every widget's display switches.
// Each widget reads only the fields it understands.
type DisplayOptions struct {
	ShowCategories  bool
	ShowBadgeCount  bool
	Compact         bool
	ShowDescription bool
	ShowLevels      bool
	ShowAvatar      bool
	ShowBio         bool
	ShowScore       bool
}

// DefaultDisplayOptions returns the switches used when nothing is configured.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		ShowCategories:  true,
		ShowBadgeCount:  true,
		ShowDescription: true,
		ShowLevels:      true,
		ShowAvatar:      true,
		ShowBio:         true,
		ShowScore:       true,
	}
}

// Options returns the shared widget fields for this spec.
func (w WidgetSpec) Options(s Settings) WidgetOptions {
	theme := w.Theme
	if theme == "" {
		theme = s.Theme
	}
	return WidgetOptions{
		APIKey:    s.APIKey,
		Address:   w.Address,
		BaseURL:   s.BaseURL,
		Theme:     theme,
		ClassName: w.ClassName,
	}
}
