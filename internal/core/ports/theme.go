package ports

// SchemeDetector queries the host environment's color-scheme preference.
//
//go:generate mockgen -source=theme.go -destination=mocks/mock_theme.go -package=mocks
type SchemeDetector interface {
	// PrefersDark reports whether the environment prefers a dark scheme.
	PrefersDark() bool
}
