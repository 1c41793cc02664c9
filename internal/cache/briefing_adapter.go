package cache

import (
	"time"
)

// BriefingAdapter makes the main Cache implement notify.BriefingCache so the
// notify package can use it without a direct dependency
type BriefingAdapter struct {
	cache *Cache
}

// NewBriefingAdapter creates an adapter for briefing caching
func NewBriefingAdapter(cache *Cache) *BriefingAdapter {
	return &BriefingAdapter{cache: cache}
}

// SetBriefing implements notify.BriefingCache
func (a *BriefingAdapter) SetBriefing(contentHash string, briefing string, ttl time.Duration) error {
	return a.cache.SetBriefing(contentHash, briefing, ttl)
}

// GetBriefing implements notify.BriefingCache
func (a *BriefingAdapter) GetBriefing(contentHash string) (string, bool, error) {
	return a.cache.GetBriefing(contentHash)
}
