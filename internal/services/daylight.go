package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dpup/prefab/logging"
	"github.com/robfig/cron/v3"

	"github.com/dpup/wildwatch/server/internal/cache"
	"github.com/dpup/wildwatch/server/internal/clients/weather"
	"github.com/dpup/wildwatch/server/internal/config"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
)

// SunTimesFetcher looks up sunrise and sunset; satisfied by *weather.Client
type SunTimesFetcher interface {
	GetSunTimes(ctx context.Context, loc geo.Location) (*weather.SunTimes, error)
}

// DaylightService keeps sunrise/sunset for the monitored sites warm in the
// cache and classifies detections as day or night from them. Classification
// only ever reads the cache.
type DaylightService struct {
	fetcher  SunTimesFetcher
	store    *cache.SunStore
	sites    []config.SiteConfig
	schedule string
	fallback risk.HourRule

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// NewDaylightService creates a daylight service. fallback classifies
// detections when no site has sun times yet.
func NewDaylightService(fetcher SunTimesFetcher, store *cache.SunStore, cfg config.DaylightConfig, fallback risk.HourRule) *DaylightService {
	return &DaylightService{
		fetcher:  fetcher,
		store:    store,
		sites:    append([]config.SiteConfig(nil), cfg.Sites...),
		schedule: cfg.Schedule,
		fallback: fallback,
	}
}

// Refresh fetches sun times for every site and returns how many were stored.
// A failing site does not stop the others.
func (d *DaylightService) Refresh(ctx context.Context) (int, error) {
	return d.refresh(ctx, false)
}

func (d *DaylightService) refresh(ctx context.Context, staleOnly bool) (int, error) {
	var errs []error
	refreshed := 0
	for _, site := range d.sites {
		if staleOnly && !d.store.NeedsRefresh(site.ID) {
			continue
		}
		sun, err := d.fetcher.GetSunTimes(ctx, site.Location())
		if err != nil {
			errs = append(errs, fmt.Errorf("site %s: %w", site.ID, err))
			continue
		}
		if err := d.store.Put(site.ID, *sun); err != nil {
			errs = append(errs, err)
			continue
		}
		refreshed++
	}
	return refreshed, errors.Join(errs...)
}

// Start refreshes immediately and then on the configured schedule. Scheduled
// runs skip sites whose cached sun times are still fresh.
func (d *DaylightService) Start(ctx context.Context) error {
	ctx = logging.EnsureLogger(ctx)
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(d.schedule, func() { d.refreshAndLog(ctx) }); err != nil {
		return fmt.Errorf("invalid daylight schedule %q: %w", d.schedule, err)
	}
	c.Start()
	d.cron = c
	d.running = true

	log.Printf("Daylight refresh started for %d sites (%s)", len(d.sites), d.schedule)

	go d.refreshAndLog(ctx)
	go func() {
		<-ctx.Done()
		d.Stop()
	}()
	return nil
}

// Stop halts the refresh schedule
func (d *DaylightService) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	c := d.cron
	d.cron = nil
	d.running = false
	d.mu.Unlock()

	<-c.Stop().Done()
	log.Printf("Daylight refresh stopped")
}

func (d *DaylightService) refreshAndLog(ctx context.Context) {
	ctx = logging.EnsureLogger(ctx)
	n, err := d.refresh(ctx, true)
	if err != nil {
		logging.Warnw(ctx, "Daylight refresh incomplete", "refreshed", n, "error", err)
		return
	}
	log.Printf("Daylight refresh: updated %d sites", n)
}

// TimeOfDay classifies t at loc using the nearest site's sun times. Sun times
// fetched on another day are applied by wall clock, which is close enough
// near the equator. Without cached data it falls back to the hour rule.
func (d *DaylightService) TimeOfDay(loc geo.Location, t time.Time) risk.TimeOfDay {
	sun, ok := d.nearestSunTimes(loc)
	if !ok {
		return d.fallback.TimeOfDay(t)
	}

	zone := d.fallback.Zone
	if zone == nil {
		zone = time.UTC
	}
	at := secondsIntoDay(t.In(zone))
	if at >= secondsIntoDay(sun.Sunrise.In(zone)) && at < secondsIntoDay(sun.Sunset.In(zone)) {
		return risk.Day
	}
	return risk.Night
}

func (d *DaylightService) nearestSunTimes(loc geo.Location) (weather.SunTimes, bool) {
	if len(d.sites) == 0 {
		return weather.SunTimes{}, false
	}
	points := make([]geo.Location, len(d.sites))
	for i, s := range d.sites {
		points[i] = s.Location()
	}
	idx, _ := geo.Nearest(loc, points)
	sun, found, _ := d.store.Lookup(d.sites[idx].ID)
	return sun, found
}

func secondsIntoDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
