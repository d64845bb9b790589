package theme

// NewDetectorWith builds a Detector over fake environment hooks.
func NewDetectorWith(getenv func(string) string, isTerminal, hasDarkBackground func() bool) *Detector {
	return &Detector{
		getenv:            getenv,
		isTerminal:        isTerminal,
		hasDarkBackground: hasDarkBackground,
	}
}
