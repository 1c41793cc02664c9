package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/dpup/prefab/errors"
	"github.com/dpup/prefab/logging"
)

// Cache provides thread-safe in-memory caching with TTL. Values are stored as
// JSON so callers always get their own copy back.
type Cache struct {
	entries map[string]*CacheEntry
	mutex   sync.RWMutex
	now     func() time.Time
}

// CacheEntry represents a cached item with metadata
type CacheEntry struct {
	Key             string        `json:"key"`
	Data            []byte        `json:"data"`
	CreatedAt       time.Time     `json:"created_at"`
	ExpiresAt       time.Time     `json:"expires_at"`
	RefreshInterval time.Duration `json:"refresh_interval"`
	Source          string        `json:"source"`
}

// NewCache creates a new in-memory cache
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*CacheEntry),
		now:     time.Now,
	}
}

// Set stores data in cache with TTL based on refresh interval
func (c *Cache) Set(key string, data interface{}, refreshInterval time.Duration, source string) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data for cache: %w", err)
	}

	now := c.now()
	entry := &CacheEntry{
		Key:             key,
		Data:            jsonData,
		CreatedAt:       now,
		ExpiresAt:       now.Add(refreshInterval),
		RefreshInterval: refreshInterval,
		Source:          source,
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = entry
	return nil
}

// Get retrieves data from cache if not stale
func (c *Cache) Get(key string, result interface{}) (bool, error) {
	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists || c.now().After(entry.ExpiresAt) {
		return false, nil
	}

	if err := json.Unmarshal(entry.Data, result); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached data: %w", err)
	}

	return true, nil
}

// GetStale retrieves data regardless of expiry and reports whether it was stale.
// Used where an old answer beats no answer, such as sun times after a failed refresh.
func (c *Cache) GetStale(key string, result interface{}) (found, stale bool, err error) {
	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		return false, false, nil
	}
	if err := json.Unmarshal(entry.Data, result); err != nil {
		return false, false, fmt.Errorf("failed to unmarshal cached data: %w", err)
	}
	return true, c.now().After(entry.ExpiresAt), nil
}

// IsStale checks if cache entry is stale (past expiration)
func (c *Cache) IsStale(key string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return true
	}

	return c.now().After(entry.ExpiresAt)
}

// Delete removes an entry from cache
func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.entries, key)
}

// Clear removes all entries from cache
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]*CacheEntry)
}

// Keys returns all cache keys
func (c *Cache) Keys() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	return keys
}

// Stats returns cache statistics
func (c *Cache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	now := c.now()
	stats := CacheStats{
		TotalEntries: len(c.entries),
	}

	for _, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			stats.StaleEntries++
		} else {
			stats.FreshEntries++
		}

		if stats.OldestEntry.IsZero() || entry.CreatedAt.Before(stats.OldestEntry) {
			stats.OldestEntry = entry.CreatedAt
		}
		if entry.CreatedAt.After(stats.NewestEntry) {
			stats.NewestEntry = entry.CreatedAt
		}
	}

	return stats
}

// CleanupStale removes all stale entries from cache
func (c *Cache) CleanupStale() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	var removed int

	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

// StartPeriodicCleanup starts a goroutine that periodically cleans up stale
// entries until ctx is cancelled
func (c *Cache) StartPeriodicCleanup(ctx context.Context, interval time.Duration) {
	ctx = logging.EnsureLogger(ctx)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				err, _ := errors.ParseStack(debug.Stack())
				skipFrames := 3
				numFrames := 5
				logging.Errorw(ctx, "Cache cleanup: recovered from panic",
					"error", r, "error.stack_trace", err.MinimalStack(skipFrames, numFrames))
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := c.CleanupStale(); removed > 0 {
					logging.Infow(ctx, "Cache cleanup: removed stale entries", "removed", removed)
				}
			}
		}
	}()
}

// CacheStats provides cache usage statistics
type CacheStats struct {
	TotalEntries int       `json:"total_entries"`
	FreshEntries int       `json:"fresh_entries"`
	StaleEntries int       `json:"stale_entries"`
	OldestEntry  time.Time `json:"oldest_entry"`
	NewestEntry  time.Time `json:"newest_entry"`
}

// Content-keyed helpers for community briefings

// SetBriefing caches a generated briefing under its content hash
func (c *Cache) SetBriefing(contentHash string, briefing string, ttl time.Duration) error {
	return c.Set(briefingKey(contentHash), briefing, ttl, "briefing")
}

// GetBriefing retrieves a cached briefing by content hash
func (c *Cache) GetBriefing(contentHash string) (string, bool, error) {
	var briefing string
	found, err := c.Get(briefingKey(contentHash), &briefing)
	if err != nil {
		return "", false, err
	}
	return briefing, found, nil
}

func briefingKey(contentHash string) string {
	return fmt.Sprintf("briefing:%s", contentHash)
}
