package config

// Settingsfile represents the structure of the repute.yaml settings file.
type Settingsfile struct {
	Version  string      `yaml:"version"`
	APIKey   string      `yaml:"apiKey"`
	BaseURL  string      `yaml:"baseUrl"`
	CacheTTL string      `yaml:"cacheTtl"`
	Theme    string      `yaml:"theme"`
	Log      LogDTO      `yaml:"log"`
	Widgets  []WidgetDTO `yaml:"widgets"`
}

// LogDTO represents the log section.
type LogDTO struct {
	JSON  bool   `yaml:"json"`
	Level string `yaml:"level"`
}

// WidgetDTO represents one widget declaration.
type WidgetDTO struct {
	ID          string     `yaml:"id"`
	Kind        string     `yaml:"kind"`
	Address     string     `yaml:"address"`
	Theme       string     `yaml:"theme"`
	ClassName   string     `yaml:"className"`
	BadgeKey    string     `yaml:"badgeKey"`
	CategoryKey string     `yaml:"categoryKey"`
	Display     DisplayDTO `yaml:"display"`
}

// DisplayDTO holds the display switches. Unset switches keep their defaults.
type DisplayDTO struct {
	ShowCategories  *bool `yaml:"showCategories"`
	ShowBadgeCount  *bool `yaml:"showBadgeCount"`
	Compact         *bool `yaml:"compact"`
	ShowDescription *bool `yaml:"showDescription"`
	ShowLevels      *bool `yaml:"showLevels"`
	ShowAvatar      *bool `yaml:"showAvatar"`
	ShowBio         *bool `yaml:"showBio"`
	ShowScore       *bool `yaml:"showScore"`
}
