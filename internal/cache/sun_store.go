package cache

import (
	"fmt"
	"time"

	"github.com/dpup/wildwatch/server/internal/clients/weather"
)

// SunStore keeps the latest sunrise/sunset per monitored site
type SunStore struct {
	cache *Cache
	ttl   time.Duration
}

// NewSunStore creates a store whose entries go stale after ttl
func NewSunStore(cache *Cache, ttl time.Duration) *SunStore {
	return &SunStore{cache: cache, ttl: ttl}
}

// Put records sun times for a site
func (s *SunStore) Put(siteID string, sun weather.SunTimes) error {
	if err := s.cache.Set(sunKey(siteID), sun, s.ttl, "openweather"); err != nil {
		return fmt.Errorf("failed to store sun times for %s: %w", siteID, err)
	}
	return nil
}

// Lookup returns the last known sun times for a site. Stale entries are still
// returned; stale reports whether a refresh is overdue.
func (s *SunStore) Lookup(siteID string) (sun weather.SunTimes, found, stale bool) {
	found, stale, err := s.cache.GetStale(sunKey(siteID), &sun)
	if err != nil {
		return weather.SunTimes{}, false, false
	}
	return sun, found, stale
}

// NeedsRefresh reports whether a site has no fresh entry
func (s *SunStore) NeedsRefresh(siteID string) bool {
	return s.cache.IsStale(sunKey(siteID))
}

func sunKey(siteID string) string {
	return fmt.Sprintf("sun:%s", siteID)
}
