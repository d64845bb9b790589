package dom

import (
	"strings"
	"sync"

	"go.trai.ch/repute/internal/core/ports"
)

var _ ports.ContainerResolver = (*Document)(nil)

// Document is a registry of elements that resolves selectors.
type Document struct {
	mu       sync.RWMutex
	elements []*Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Append adds elements to the document. An element whose id is already
// present replaces the earlier one.
func (d *Document) Append(elements ...*Element) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, el := range elements {
		replaced := false
		for i, existing := range d.elements {
			if el.ID() != "" && existing.ID() == el.ID() {
				d.elements[i] = el
				replaced = true
				break
			}
		}
		if !replaced {
			d.elements = append(d.elements, el)
		}
	}
}

// Create appends a new element with the given id and returns it.
func (d *Document) Create(id string, classes ...string) *Element {
	el := NewElement(id, classes...)
	d.Append(el)
	return el
}

// Elements returns the elements in document order.
func (d *Document) Elements() []*Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Element, len(d.elements))
	copy(out, d.elements)
	return out
}

// Resolve returns the first element matching selector.
// Supported forms are "#id", ".class" and a bare id.
func (d *Document) Resolve(selector string) (ports.Container, bool) {
	el, ok := d.Find(selector)
	if !ok {
		return nil, false
	}
	return el, true
}

// Find is Resolve returning the concrete element.
func (d *Document) Find(selector string) (*Element, bool) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	switch {
	case strings.HasPrefix(selector, "."):
		class := selector[1:]
		for _, el := range d.elements {
			if el.HasClass(class) {
				return el, true
			}
		}
	default:
		id := strings.TrimPrefix(selector, "#")
		for _, el := range d.elements {
			if el.ID() == id {
				return el, true
			}
		}
	}
	return nil, false
}
