package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repute/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/cfg/repute.yaml")
		time.Sleep(50 * time.Millisecond)
		d.Add("/cfg/repute.yaml")
		d.Add("/cfg/other.yaml")

		time.Sleep(99 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, calls)

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/cfg/other.yaml", "/cfg/repute.yaml"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var count int
		d := watcher.NewDebouncer(10*time.Millisecond, func([]string) { count++ })

		d.Add("a")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Add("a")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 2, count)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var got []string
		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, paths...)
		})

		d.Add("a")
		d.Flush()

		mu.Lock()
		assert.Equal(t, []string{"a"}, got)
		mu.Unlock()

		// Nothing pending: no second callback, and the cancelled timer never fires.
		d.Flush()
		time.Sleep(2 * time.Hour)
		synctest.Wait()
		mu.Lock()
		assert.Equal(t, []string{"a"}, got)
		mu.Unlock()
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(time.Millisecond, nil)
		d.Add("a")
		time.Sleep(5 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
