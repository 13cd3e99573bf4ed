package origin

import (
	"context"
	"os"
	"sync"

	"github.com/go-sourcemap/sourcemap"
	"golang.org/x/sync/singleflight"
)

// mapSuffix is the conventional source-map sidecar location: for a compiled
// file at path P the map lives at P + ".map". No other discovery mechanism
// (inline maps, sourceMappingURL comments) is consulted.
const mapSuffix = ".map"

// mapEntry records the outcome of loading a map for one compiled file.
// A nil consumer means no usable map exists; the absence is cached just like
// a parsed map so the sidecar is probed at most once per file.
type mapEntry struct {
	consumer *sourcemap.Consumer
}

// mapCache memoizes source-map sidecars per compiled file for the lifetime
// of the owning Annotator. Entries are never invalidated; maps are assumed
// static while the process runs.
type mapCache struct {
	cfg   *config
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]*mapEntry
}

func newMapCache(cfg *config) *mapCache {
	return &mapCache{
		cfg:     cfg,
		entries: make(map[string]*mapEntry),
	}
}

// lookup returns the source-map consumer for the given compiled file,
// loading the sidecar on first use. It never fails: absence, read errors,
// and parse errors all come back as a nil consumer. Concurrent first
// lookups for the same file are collapsed into a single load.
func (c *mapCache) lookup(ctx context.Context, file string) *sourcemap.Consumer {
	c.mu.RLock()
	entry, ok := c.entries[file]
	c.mu.RUnlock()

	if ok {
		c.cfg.Metrics.recordCacheLookup(ctx, true)
		return entry.consumer
	}
	c.cfg.Metrics.recordCacheLookup(ctx, false)

	// The load outlives this invocation: a caller timing out must not
	// cancel the read that later invocations will hit the cache for.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(file, func() (any, error) {
		entry := c.load(loadCtx, file)
		c.mu.Lock()
		c.entries[file] = entry
		c.mu.Unlock()
		return entry, nil
	})

	waitCtx := ctx
	if c.cfg.MapLoadTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.cfg.MapLoadTimeout)
		defer cancel()
	}

	select {
	case res := <-ch:
		return res.Val.(*mapEntry).consumer
	case <-waitCtx.Done():
		// The load keeps running and will populate the cache for later
		// invocations; this one degrades to the compiled position.
		c.cfg.Logger.Debug().
			Str("file", file).
			Msg("source map load cancelled, falling back to compiled position")
		return nil
	}
}

// load reads and parses the sidecar for file. Failures are recorded as
// "no map" and logged at debug level only.
func (c *mapCache) load(ctx context.Context, file string) *mapEntry {
	path := file + mapSuffix

	data, err := os.ReadFile(path)
	if err != nil {
		c.cfg.Logger.Debug().
			Str("file", file).
			Err(err).
			Msg("no source map sidecar")
		c.cfg.Metrics.recordMapLoad(ctx, loadAbsent)
		return &mapEntry{}
	}

	// An empty URL keeps returned source names exactly as authored in the
	// map instead of resolving them against the sidecar's location.
	consumer, err := sourcemap.Parse("", data)
	if err != nil {
		c.cfg.Logger.Debug().
			Str("file", file).
			Err(err).
			Msg("source map sidecar is unparsable")
		c.cfg.Metrics.recordMapLoad(ctx, loadInvalid)
		return &mapEntry{}
	}

	c.cfg.Metrics.recordMapLoad(ctx, loadParsed)
	return &mapEntry{consumer: consumer}
}
