package rhea

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Lookuper is the network side of the cache. *Client satisfies it; a
// nil Lookuper makes the cache purely local.
type Lookuper interface {
	Lookup(ctx context.Context, ec string) ([]string, error)
}

// Cache answers EC-to-reaction queries from a JSON file, consulting
// the network exactly once per EC number it has never seen. Negative
// results are cached too, so a flaky endpoint cannot make two builds
// disagree.
type Cache struct {
	path   string
	client Lookuper
	log    *zap.Logger

	mu      sync.Mutex
	entries map[string][]string
}

// Open loads the cache file at path, tolerating its absence. A corrupt
// file is an error; silently discarding cached entries would make the
// next build query the network again.
func Open(path string, client Lookuper, log *zap.Logger) (*Cache, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Cache{
		path:    path,
		client:  client,
		log:     log,
		entries: make(map[string][]string),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rhea: read cache %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, fmt.Errorf("rhea: parse cache %s: %w", path, err)
	}
	log.Debug("loaded reaction cache", zap.String("path", path), zap.Int("entries", len(c.entries)))
	return c, nil
}

// Len reports the number of cached EC numbers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reactions returns the reaction ids for an EC number. A cache hit is
// answered locally. A miss issues one best-effort network lookup, and
// the result, empty on failure, is stored and flushed to disk so the
// answer never changes afterwards.
func (c *Cache) Reactions(ctx context.Context, ec string) []string {
	if ec == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ids, ok := c.entries[ec]; ok {
		return append([]string(nil), ids...)
	}

	var ids []string
	if c.client != nil {
		fetched, err := c.client.Lookup(ctx, ec)
		if err != nil {
			c.log.Warn("reaction lookup failed", zap.String("ec", ec), zap.Error(err))
		} else {
			ids = fetched
		}
	}
	if ids == nil {
		ids = []string{}
	}

	c.entries[ec] = ids
	if err := c.flushLocked(); err != nil {
		c.log.Warn("could not persist reaction cache", zap.Error(err))
	}
	return append([]string(nil), ids...)
}

func (c *Cache) flushLocked() error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("rhea: encode cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("rhea: write cache %s: %w", c.path, err)
	}
	return nil
}
