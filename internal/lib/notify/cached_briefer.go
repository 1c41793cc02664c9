package notify

import (
	"context"
	"log"
	"time"
)

// briefingTTL keeps identical briefings from being regenerated for a day
const briefingTTL = 24 * time.Hour

// BriefingCache provides simple caching for generated briefings.
// Implemented by cache.BriefingAdapter.
type BriefingCache interface {
	SetBriefing(contentHash string, briefing string, ttl time.Duration) error
	GetBriefing(contentHash string) (string, bool, error)
}

// CachedBriefer wraps a Briefer with content-based caching, so repeated
// sightings with the same facts reuse one generated briefing
type CachedBriefer struct {
	briefer Briefer
	cache   BriefingCache
	hasher  *ContentHasher
}

// NewCachedBriefer creates a briefer with content-based caching
func NewCachedBriefer(briefer Briefer, cache BriefingCache) *CachedBriefer {
	return &CachedBriefer{
		briefer: briefer,
		cache:   cache,
		hasher:  NewContentHasher(),
	}
}

// Brief returns a cached briefing when the content matches, otherwise
// generates and caches a new one
func (c *CachedBriefer) Brief(ctx context.Context, req BriefingRequest) (string, error) {
	contentHash := c.hasher.HashRequest(req)

	if cached, found, err := c.cache.GetBriefing(contentHash); err == nil && found {
		log.Printf("Cache hit for briefing content hash %s", contentHash[:8])
		return cached, nil
	}

	log.Printf("Cache miss for briefing content hash %s - calling briefer", contentHash[:8])

	briefing, err := c.briefer.Brief(ctx, req)
	if err != nil {
		log.Printf("Briefing failed for %s: %v", contentHash[:8], err)
		return "", err
	}

	if err := c.cache.SetBriefing(contentHash, briefing, briefingTTL); err != nil {
		log.Printf("Failed to cache briefing: %v", err)
	}

	return briefing, nil
}

// HealthCheck delegates to underlying briefer
func (c *CachedBriefer) HealthCheck(ctx context.Context) error {
	return c.briefer.HealthCheck(ctx)
}

// IsCached reports whether req would be served from cache
func (c *CachedBriefer) IsCached(req BriefingRequest) bool {
	_, found, err := c.cache.GetBriefing(c.hasher.HashRequest(req))
	return err == nil && found
}
