package ports

//go:generate mockgen -source=container.go -destination=mocks/mock_container.go -package=mocks

// Container is the host element a widget renders into.
// The widget owns its markup wholesale; every render replaces it.
type Container interface {
	// SetHTML replaces the container content.
	SetHTML(markup string)
	// HTML returns the current content.
	HTML() string
	// AddClass adds class names to the container.
	AddClass(names ...string)
	// RemoveClass removes class names from the container.
	RemoveClass(names ...string)
}

// ContainerResolver looks up containers by selector.
type ContainerResolver interface {
	// Resolve returns the container matching selector, or false when nothing matches.
	Resolve(selector string) (Container, bool)
}
