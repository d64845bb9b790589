package cache

import "sync"

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store shared by every client that is not
// given its own.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = New()
	})
	return defaultStore
}

// ResetDefault empties the process-wide store.
func ResetDefault() {
	Default().Clear()
}
