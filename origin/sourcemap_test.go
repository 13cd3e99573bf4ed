package origin

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCache_Lookup(t *testing.T) {
	t.Run("given sidecar exists, then returns consumer", func(t *testing.T) {
		a := New()
		file := writeCompiled(t, testSourceMap)

		consumer := a.cache.lookup(context.Background(), file)

		assert.NotNil(t, consumer)
	})

	t.Run("given no sidecar, then returns nil without error", func(t *testing.T) {
		a := New()
		file := writeCompiled(t, "")

		assert.Nil(t, a.cache.lookup(context.Background(), file))
	})

	t.Run("given parsed sidecar, then later lookups skip the filesystem", func(t *testing.T) {
		a := New()
		file := writeCompiled(t, testSourceMap)

		first := a.cache.lookup(context.Background(), file)
		require.NotNil(t, first)

		// Deleting the sidecar proves the second lookup is served from cache.
		require.NoError(t, os.Remove(file+mapSuffix))

		second := a.cache.lookup(context.Background(), file)
		assert.Same(t, first, second)
	})

	t.Run("given absence was recorded, then absence is cached too", func(t *testing.T) {
		a := New()
		file := writeCompiled(t, "")

		require.Nil(t, a.cache.lookup(context.Background(), file))

		// A sidecar appearing later is not picked up; maps are static for
		// the process lifetime.
		require.NoError(t, os.WriteFile(file+mapSuffix, []byte(testSourceMap), 0o600))

		assert.Nil(t, a.cache.lookup(context.Background(), file))
	})

	t.Run("given load timeout configured, then fast loads still succeed", func(t *testing.T) {
		a := New(WithMapLoadTimeout(5 * time.Second))
		file := writeCompiled(t, testSourceMap)

		assert.NotNil(t, a.cache.lookup(context.Background(), file))
	})

	t.Run("given cancelled context on first load, then degrades to nil", func(t *testing.T) {
		a := New()
		file := writeCompiled(t, testSourceMap)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// The select may still win the race against the already-finished
		// load, so only the degraded result is asserted when it loses.
		consumer := a.cache.lookup(ctx, file)
		if consumer == nil {
			// Later lookups with a live context recover.
			assert.NotNil(t, a.cache.lookup(context.Background(), file))
		}
	})
}

func TestMapCache_ConcurrentFirstLookup(t *testing.T) {
	t.Run("given concurrent first lookups, then all see a consistent entry", func(t *testing.T) {
		a := New()
		file := writeCompiled(t, testSourceMap)

		const goroutines = 16
		results := make([]bool, goroutines)

		var wg sync.WaitGroup
		for i := 0; i < goroutines; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = a.cache.lookup(context.Background(), file) != nil
			}()
		}
		wg.Wait()

		for i, ok := range results {
			assert.True(t, ok, "goroutine %d saw a nil consumer", i)
		}

		a.cache.mu.RLock()
		defer a.cache.mu.RUnlock()
		assert.Len(t, a.cache.entries, 1)
	})
}
