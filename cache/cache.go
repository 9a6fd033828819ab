// Package cache provides a two-tier query result cache.
//
// Results are kept in memory for the life of the process and mirrored
// to disk as JSON files so they survive restarts. Entries expire after
// a configurable age and are purged lazily on lookup.
package cache

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/regulo/core"
)

// DefaultMaxAge is how long a cached answer stays valid.
const DefaultMaxAge = 24 * time.Hour

// entry is the on-disk and in-memory representation of one cached
// answer.
type entry struct {
	Query     string       `json:"query"`
	Result    *core.Answer `json:"result"`
	Timestamp time.Time    `json:"timestamp"`
}

// Stats describes the current cache occupancy.
type Stats struct {
	MemoryEntries int
	DiskEntries   int
}

// Option configures a QueryCache.
type Option func(*QueryCache)

// WithMaxAge overrides the entry expiry age.
func WithMaxAge(maxAge time.Duration) Option {
	return func(c *QueryCache) {
		c.maxAge = maxAge
	}
}

// WithLogger sets the logger used for disk tier failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *QueryCache) {
		c.logger = logger
	}
}

// QueryCache caches answers keyed by the normalized query text.
// Safe for concurrent use.
type QueryCache struct {
	mu     sync.Mutex
	dir    string
	maxAge time.Duration
	memory map[string]*entry
	logger *slog.Logger
	now    func() time.Time
}

// New creates a QueryCache persisting to dir. The directory is created
// if it doesn't exist.
func New(dir string, opts ...Option) (*QueryCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	c := &QueryCache{
		dir:    dir,
		maxAge: DefaultMaxAge,
		memory: make(map[string]*entry),
		logger: slog.Default().With("component", "cache"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// key derives the cache key for a query. Differences in case and
// surrounding whitespace map to the same key.
func (c *QueryCache) key(query string) string {
	return hex.EncodeToString(core.HashContent(core.NormalizeQuery(query), 16))
}

// Get returns the cached answer for the query, or nil on a miss.
// Expired entries are removed from both tiers.
func (c *QueryCache) Get(query string) *core.Answer {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.key(query)

	if e, ok := c.memory[key]; ok {
		if c.expired(e) {
			c.evict(key)
			return nil
		}
		return e.Result
	}

	e, err := c.readFile(key)
	if err != nil {
		return nil
	}
	if c.expired(e) {
		c.evict(key)
		return nil
	}

	// Promote the disk hit to the memory tier.
	c.memory[key] = e
	return e.Result
}

// Set stores an answer in both tiers. Disk failures are logged and
// otherwise ignored; the memory tier still holds the entry.
func (c *QueryCache) Set(query string, result *core.Answer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.key(query)
	e := &entry{
		Query:     query,
		Result:    result,
		Timestamp: c.now(),
	}
	c.memory[key] = e

	data, err := json.Marshal(e)
	if err != nil {
		c.logger.Warn("failed to encode cache entry", "error", err)
		return
	}
	if err := os.WriteFile(c.filePath(key), data, 0644); err != nil {
		c.logger.Warn("failed to write cache entry", "path", c.filePath(key), "error", err)
	}
}

// Clear drops both tiers.
func (c *QueryCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.memory = make(map[string]*entry)

	files, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, f.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Stats counts the entries in each tier.
func (c *QueryCache) Stats() (Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	files, err := os.ReadDir(c.dir)
	if err != nil {
		return Stats{}, err
	}
	disk := 0
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
			disk++
		}
	}
	return Stats{
		MemoryEntries: len(c.memory),
		DiskEntries:   disk,
	}, nil
}

func (c *QueryCache) expired(e *entry) bool {
	return c.now().Sub(e.Timestamp) > c.maxAge
}

// evict removes an entry from both tiers.
func (c *QueryCache) evict(key string) {
	delete(c.memory, key)
	if err := os.Remove(c.filePath(key)); err != nil && !os.IsNotExist(err) {
		c.logger.Warn("failed to remove expired cache entry", "error", err)
	}
}

func (c *QueryCache) filePath(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *QueryCache) readFile(key string) (*entry, error) {
	data, err := os.ReadFile(c.filePath(key))
	if err != nil {
		return nil, err
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
