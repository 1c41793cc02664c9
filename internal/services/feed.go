package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"runtime/debug"
	"sync"
	"time"

	"github.com/dpup/prefab/errors"
	"github.com/dpup/prefab/logging"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/dpup/wildwatch/server/internal/config"
	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
	"github.com/dpup/wildwatch/server/internal/lib/trajectory"
)

// feedSpecies are the animals the synthetic feed reports
var feedSpecies = []risk.Species{risk.Elephant, risk.Lion, risk.Rhino, risk.Buffalo}

// DetectionCreator accepts detections; satisfied by *alerts.Manager
type DetectionCreator interface {
	Create(ctx context.Context, ev alerts.DetectionEvent) (alerts.Alert, error)
}

// FeedService emits synthetic detections on a cron schedule so the dashboard
// and notification pipeline can be exercised without camera traps
type FeedService struct {
	creator DetectionCreator
	cfg     config.FeedConfig
	cameras []string
	now     func() time.Time

	mu      sync.Mutex
	rng     *rand.Rand
	cron    *cron.Cron
	running bool
}

// NewFeedService creates a feed around cfg's center. seed fixes the random
// sequence; zero seeds from the clock. Detections are attributed to one of
// cameraIDs, or to a CAM-nnn id when none are given.
func NewFeedService(creator DetectionCreator, cfg config.FeedConfig, seed int64, cameraIDs ...string) *FeedService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &FeedService{
		creator: creator,
		cfg:     cfg,
		cameras: append([]string(nil), cameraIDs...),
		now:     time.Now,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate builds one random detection
func (f *FeedService) Generate() alerts.DetectionEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	center := f.cfg.Center()
	spread := f.cfg.SpreadDegrees
	lat := center.Latitude + (f.rng.Float64()*2-1)*spread
	lng := center.Longitude + (f.rng.Float64()*2-1)*spread

	return alerts.DetectionEvent{
		ID:                         "det-" + uuid.NewString(),
		Species:                    feedSpecies[f.rng.Intn(len(feedSpecies))],
		Timestamp:                  f.now(),
		Location:                   geo.Location{Latitude: lat, Longitude: lng, Region: center.Region},
		DistanceToSettlementMeters: float64(100 + f.rng.Intn(1000)),
		ConfidencePercent:          float64(80 + f.rng.Intn(20)),
		Direction:                  trajectory.Directions[f.rng.Intn(len(trajectory.Directions))],
		CameraID:                   f.pickCamera(),
		Notes:                      "synthetic detection",
	}
}

// EmitOnce generates a detection and feeds it through the alert manager
func (f *FeedService) EmitOnce(ctx context.Context) (alerts.Alert, error) {
	ev := f.Generate()
	alert, err := f.creator.Create(ctx, ev)
	if err != nil {
		return alerts.Alert{}, fmt.Errorf("synthetic detection %s rejected: %w", ev.ID, err)
	}
	return alert, nil
}

// pickCamera must be called with f.mu held
func (f *FeedService) pickCamera() string {
	if len(f.cameras) == 0 {
		return fmt.Sprintf("CAM-%03d", 1+f.rng.Intn(12))
	}
	return f.cameras[f.rng.Intn(len(f.cameras))]
}

// Start schedules EmitOnce on the configured cron schedule until ctx is done
func (f *FeedService) Start(ctx context.Context) error {
	ctx = logging.EnsureLogger(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(f.cfg.Schedule, func() { f.tick(ctx) }); err != nil {
		return fmt.Errorf("invalid feed schedule %q: %w", f.cfg.Schedule, err)
	}
	c.Start()
	f.cron = c
	f.running = true

	log.Printf("Synthetic feed started (%s) around %.5f, %.5f", f.cfg.Schedule, f.cfg.CenterLat, f.cfg.CenterLng)

	go func() {
		<-ctx.Done()
		f.Stop()
	}()
	return nil
}

// Stop halts the schedule and waits for a running emission to finish
func (f *FeedService) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	c := f.cron
	f.cron = nil
	f.running = false
	f.mu.Unlock()

	<-c.Stop().Done()
	log.Printf("Synthetic feed stopped")
}

// IsRunning returns whether the feed is scheduled
func (f *FeedService) IsRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *FeedService) tick(ctx context.Context) {
	ctx = logging.EnsureLogger(ctx)
	defer func() {
		if r := recover(); r != nil {
			err, _ := errors.ParseStack(debug.Stack())
			skipFrames := 3
			numFrames := 5
			logging.Errorw(ctx, "Synthetic feed: recovered from panic",
				"error", r, "error.stack_trace", err.MinimalStack(skipFrames, numFrames))
		}
	}()

	alert, err := f.EmitOnce(ctx)
	if err != nil {
		logging.Warnw(ctx, "Synthetic feed emission failed", "error", err)
		return
	}
	log.Printf("Synthetic feed: %s %s at %.5f, %.5f", alert.Species, alert.RiskLevel, alert.Location.Latitude, alert.Location.Longitude)
}
