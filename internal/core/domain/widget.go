package domain

import (
	"go.trai.ch/zerr"
)

// WidgetKind names one of the concrete widgets.
type WidgetKind string

const (
	// WidgetReputationKind renders the total score and category breakdown.
	WidgetReputationKind WidgetKind = "reputation"
	// WidgetBadgeKind renders one badge or an account's badge collection.
	WidgetBadgeKind WidgetKind = "badge"
	// WidgetProfileKind renders the identity card of an account.
	WidgetProfileKind WidgetKind = "profile"
	// WidgetCategoryKind renders one category score.
	WidgetCategoryKind WidgetKind = "category"
)

// ParseWidgetKind validates a widget kind name.
func ParseWidgetKind(name string) (WidgetKind, error) {
	switch k := WidgetKind(name); k {
	case WidgetReputationKind, WidgetBadgeKind, WidgetProfileKind, WidgetCategoryKind:
		return k, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownWidgetKind, "failed to parse widget kind"), "kind", name)
	}
}

// Phase is the lifecycle phase of a widget controller.
type Phase uint8

const (
	// PhaseUnmounted is the phase before mount and after destroy.
	PhaseUnmounted Phase = iota
	// PhaseLoading means a fetch is in flight.
	PhaseLoading
	// PhaseError means the last fetch failed.
	PhaseError
	// PhaseReady means data is available.
	PhaseReady
)

// String returns the phase name used in markup and logs.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return "unmounted"
	}
}

// WidgetState is a snapshot of a controller's state.
// Once mounted exactly one of Loading, Err != nil or HasData holds.
type WidgetState[D any] struct {
	Phase   Phase
	Loading bool
	Err     error
	Data    D
	HasData bool
}

// LoadingState returns the state of an in-flight fetch.
func LoadingState[D any]() WidgetState[D] {
	return WidgetState[D]{Phase: PhaseLoading, Loading: true}
}

// ErrorState returns the state of a failed fetch. Previously held data is discarded.
func ErrorState[D any](err error) WidgetState[D] {
	return WidgetState[D]{Phase: PhaseError, Err: err}
}

// ReadyState returns the state of a successful fetch.
func ReadyState[D any](data D) WidgetState[D] {
	return WidgetState[D]{Phase: PhaseReady, Data: data, HasData: true}
}

// Valid reports whether the state satisfies the single-phase invariant.
func (s WidgetState[D]) Valid() bool {
	held := 0
	if s.Loading {
		held++
	}
	if s.Err != nil {
		held++
	}
	if s.HasData {
		held++
	}
	if s.Phase == PhaseUnmounted {
		return held == 0
	}
	return held == 1
}

// WidgetOptions holds the fields shared by every widget configuration.
type WidgetOptions struct {
	APIKey    string
	Address   string
	BaseURL   string
	Theme     Theme
	ClassName string
}

// Validate checks the fields required at construction time.
func (o WidgetOptions) Validate() error {
	if o.APIKey == "" {
		return ErrMissingAPIKey
	}
	if NormalizeAddress(o.Address) == "" {
		return ErrMissingAddress
	}
	return nil
}

// Callbacks are the optional lifecycle hooks of a widget.
type Callbacks[D any] struct {
	OnLoad  func(D)
	OnError func(error)
}

// ReputationConfig configures the reputation widget.
type ReputationConfig struct {
	WidgetOptions
	Callbacks[*WidgetReputation]

	ShowCategories bool
	ShowBadgeCount bool
	Compact        bool
}

// BadgeConfig configures the badge widget. An empty BadgeKey shows every earned badge.
type BadgeConfig struct {
	WidgetOptions
	Callbacks[*BadgeResult]

	BadgeKey        string
	ShowDescription bool
	ShowLevels      bool
}

// ProfileConfig configures the profile widget.
type ProfileConfig struct {
	WidgetOptions
	Callbacks[*WidgetProfile]

	ShowAvatar bool
	ShowBio    bool
	ShowScore  bool
}

// CategoryConfig configures the category widget.
type CategoryConfig struct {
	WidgetOptions
	Callbacks[*WidgetCategory]

	CategoryKey     string
	ShowDescription bool
}
