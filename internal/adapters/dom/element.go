// Package dom is an in-memory host for widget containers.
package dom

import (
	"io"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/repute/internal/core/ports"
)

var _ ports.Container = (*Element)(nil)

// Element is a container holding markup and a class list.
type Element struct {
	mu      sync.RWMutex
	id      string
	html    string
	classes []string
	sink    io.Writer
	writes  int
}

// NewElement creates an empty element with the given id and initial classes.
func NewElement(id string, classes ...string) *Element {
	e := &Element{id: id}
	e.AddClass(classes...)
	return e
}

// WithSink makes the element copy every markup assignment to w, one per line.
func (e *Element) WithSink(w io.Writer) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sink = w
	return e
}

// ID returns the element id.
func (e *Element) ID() string {
	return e.id
}

// SetHTML replaces the element content.
func (e *Element) SetHTML(markup string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.html = markup
	e.writes++
	if e.sink != nil && markup != "" {
		_, _ = io.WriteString(e.sink, markup+"\n")
	}
}

// HTML returns the element content.
func (e *Element) HTML() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.html
}

// Writes returns how many times the content was assigned.
func (e *Element) Writes() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.writes
}

// AddClass adds class names, ignoring blanks and duplicates.
// A name containing spaces is split into several classes.
func (e *Element) AddClass(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range splitClasses(names) {
		if !slices.Contains(e.classes, name) {
			e.classes = append(e.classes, name)
		}
	}
}

// RemoveClass removes class names.
func (e *Element) RemoveClass(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range splitClasses(names) {
		e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
	}
}

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Contains(e.classes, name)
}

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.classes)
}

// ClassName returns the class list joined with spaces.
func (e *Element) ClassName() string {
	return strings.Join(e.Classes(), " ")
}

func splitClasses(names []string) []string {
	var out []string
	for _, name := range names {
		out = append(out, strings.Fields(name)...)
	}
	return out
}
