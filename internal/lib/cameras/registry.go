// Package cameras tracks the camera traps that report detections.
package cameras

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
)

// Status is the operational state of a camera
type Status string

const (
	Online      Status = "ONLINE"
	Offline     Status = "OFFLINE"
	Maintenance Status = "MAINTENANCE"
)

// Statuses lists every camera status
var Statuses = []Status{Online, Offline, Maintenance}

// ParseStatus validates a status string, case-insensitively
func ParseStatus(s string) (Status, error) {
	up := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range Statuses {
		if st == up {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// DefaultActivityWindow is how far back detections count towards a camera's
// recent activity
const DefaultActivityWindow = 24 * time.Hour

// Camera is a registered camera trap with its recent activity
type Camera struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Location           geo.Location `json:"location"`
	Status             Status       `json:"status"`
	LastDetection      *time.Time   `json:"last_detection,omitempty"`
	DetectionsInWindow int          `json:"detections_in_window"`
}

var (
	// ErrCameraNotFound is returned for unregistered camera ids
	ErrCameraNotFound = errors.New("camera not found")

	// ErrInvalidStatus is returned for unknown camera statuses
	ErrInvalidStatus = errors.New("invalid camera status")
)

// DefaultCameras returns the Mtakuja camera roster
func DefaultCameras() []Camera {
	return []Camera{
		{ID: "cam1", Name: "Camera West-01", Location: geo.Location{Latitude: -3.4362, Longitude: 37.7801, Region: "Mtakuja Area"}, Status: Online},
		{ID: "cam2", Name: "Camera Central-02", Location: geo.Location{Latitude: -3.43365, Longitude: 37.782, Region: "Mtakuja Area"}, Status: Online},
		{ID: "cam3", Name: "Camera East-03", Location: geo.Location{Latitude: -3.43495, Longitude: 37.7841, Region: "Mtakuja Area"}, Status: Online},
	}
}

type entry struct {
	camera     Camera
	detections []time.Time // ascending
}

// Registry holds the camera roster and counts detections per camera over a
// sliding window
type Registry struct {
	mu      sync.Mutex
	cameras map[string]*entry
	order   []string
	window  time.Duration
	now     func() time.Time
}

// Option configures a Registry
type Option func(*Registry)

// WithClock sets the time source for the activity window
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithWindow sets the activity window; non-positive values keep the default
func WithWindow(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.window = d
		}
	}
}

// NewRegistry creates a registry for cameras. An empty roster uses
// DefaultCameras. Later duplicates of an id are ignored.
func NewRegistry(cameras []Camera, opts ...Option) *Registry {
	if len(cameras) == 0 {
		cameras = DefaultCameras()
	}
	r := &Registry{
		cameras: make(map[string]*entry, len(cameras)),
		window:  DefaultActivityWindow,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, c := range cameras {
		if _, ok := r.cameras[c.ID]; ok {
			continue
		}
		if c.Status == "" {
			c.Status = Online
		}
		c.LastDetection = nil
		c.DetectionsInWindow = 0
		r.cameras[c.ID] = &entry{camera: c}
		r.order = append(r.order, c.ID)
	}
	return r
}

// Window returns the activity window
func (r *Registry) Window() time.Duration {
	return r.window
}

// IDs returns registered camera ids in roster order
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Known reports whether id is registered
func (r *Registry) Known(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.cameras[id]
	return ok
}

// RecordDetection notes a detection from camera id at the detection time.
// Unknown ids are ignored.
func (r *Registry) RecordDetection(id string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.cameras[id]
	if !ok {
		return
	}
	i := sort.Search(len(e.detections), func(i int) bool { return e.detections[i].After(at) })
	e.detections = append(e.detections, time.Time{})
	copy(e.detections[i+1:], e.detections[i:])
	e.detections[i] = at

	if e.camera.LastDetection == nil || at.After(*e.camera.LastDetection) {
		t := at
		e.camera.LastDetection = &t
	}
	r.prune(e)
}

// Get returns one camera with its current activity
func (r *Registry) Get(id string) (Camera, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.cameras[id]
	if !ok {
		return Camera{}, fmt.Errorf("%w: %s", ErrCameraNotFound, id)
	}
	return r.snapshot(e), nil
}

// List returns every camera in roster order
func (r *Registry) List() []Camera {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Camera, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.snapshot(r.cameras[id]))
	}
	return out
}

// SetStatus changes a camera's operational status
func (r *Registry) SetStatus(id string, status Status) (Camera, error) {
	status, err := ParseStatus(string(status))
	if err != nil {
		return Camera{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.cameras[id]
	if !ok {
		return Camera{}, fmt.Errorf("%w: %s", ErrCameraNotFound, id)
	}
	e.camera.Status = status
	return r.snapshot(e), nil
}

func (r *Registry) snapshot(e *entry) Camera {
	r.prune(e)
	c := e.camera
	if c.LastDetection != nil {
		t := *c.LastDetection
		c.LastDetection = &t
	}
	c.DetectionsInWindow = len(e.detections)
	return c
}

// prune drops detections older than the window. Detections stamped in the
// future still count.
func (r *Registry) prune(e *entry) {
	cutoff := r.now().Add(-r.window)
	i := sort.Search(len(e.detections), func(i int) bool { return e.detections[i].After(cutoff) })
	if i > 0 {
		e.detections = append(e.detections[:0], e.detections[i:]...)
	}
}
