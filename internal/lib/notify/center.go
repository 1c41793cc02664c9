package notify

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/dpup/prefab/errors"
	"github.com/dpup/prefab/logging"
	"github.com/google/uuid"

	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/metrics"
)

const defaultBriefingTimeout = 30 * time.Second

// Center keeps the notification feed and the recipient roster. It listens to
// alert lifecycle events and publishes one notification per event.
type Center struct {
	mu            sync.Mutex
	notifications []*Notification // newest first
	recipients    []Recipient

	briefer         Briefer
	briefingTimeout time.Duration
	now             func() time.Time
	metrics         *metrics.Collector
	deliveries      []DeliveryFunc
	inflight        sync.WaitGroup
}

// DeliveryFunc observes every stored notification after it is sent
type DeliveryFunc func(ctx context.Context, n Notification)

// Option configures a Center
type Option func(*Center)

// WithBriefer attaches community briefings to alert notifications
func WithBriefer(b Briefer) Option {
	return func(c *Center) { c.briefer = b }
}

// WithClock sets the time source for notification timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// WithMetrics counts published notifications
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Center) { c.metrics = m }
}

// WithDelivery registers a hook that runs after each notification is sent
func WithDelivery(f DeliveryFunc) Option {
	return func(c *Center) { c.deliveries = append(c.deliveries, f) }
}

// NewCenter creates a notification center for the given recipients. An empty
// roster uses DefaultRecipients.
func NewCenter(recipients []Recipient, opts ...Option) *Center {
	if len(recipients) == 0 {
		recipients = DefaultRecipients()
	}
	c := &Center{
		recipients:      append([]Recipient(nil), recipients...),
		briefingTimeout: defaultBriefingTimeout,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleEvent turns an alert lifecycle event into a notification. It has the
// shape of alerts.Listener.
func (c *Center) HandleEvent(ctx context.Context, ev alerts.Event) {
	a := ev.Alert
	n := Notification{
		AlertID:       a.ID,
		SafetyMessage: SafetyMessage(a.Species),
		Species:       a.Species,
		Location:      a.Location,
	}

	switch ev.Type {
	case alerts.EventCreated:
		n.Type = TypeAlert
		n.Title = fmt.Sprintf("%s Detected", a.Species)
		n.Message = fmt.Sprintf("A %s has been detected at %s (%.4f, %.4f). Distance: %.0fm from nearest settlement. Risk: %s.",
			strings.ToLower(string(a.Species)), addressOrUnknown(a), a.Location.Latitude, a.Location.Longitude,
			a.DistanceToSettlementMeters, a.RiskLevel)
		n.Timestamp = a.Timestamp
	case alerts.EventDispatched:
		n.Type = TypeDispatch
		n.Title = fmt.Sprintf("Response Team Dispatched: %s", a.Species)
		n.Message = fmt.Sprintf("A response team is on the way to the %s sighting at %s.",
			strings.ToLower(string(a.Species)), addressOrUnknown(a))
		if a.ResponseTimeSeconds != nil {
			n.Message += fmt.Sprintf(" Response time: %ds.", *a.ResponseTimeSeconds)
		}
	case alerts.EventResolved:
		n.Type = TypeResolved
		n.Title = fmt.Sprintf("%s Alert Resolved", a.Species)
		n.Message = fmt.Sprintf("The %s alert at %s has been resolved.",
			strings.ToLower(string(a.Species)), addressOrUnknown(a))
		if r := a.Incident; r != nil && r.IsFalsePositive {
			n.Title = fmt.Sprintf("%s Alert Closed: False Positive", a.Species)
			n.Message = fmt.Sprintf("The %s alert at %s was a false positive. No animal was found.",
				strings.ToLower(string(a.Species)), addressOrUnknown(a))
		} else if r != nil && r.Outcome != "" {
			n.Message += fmt.Sprintf(" Outcome: %s", r.Outcome)
		}
		n.SafetyMessage = ""
	default:
		return
	}

	published := c.Publish(ctx, n)
	if ev.Type == alerts.EventCreated && c.briefer != nil {
		c.brief(ctx, published.ID, briefingRequest(a))
	}
}

func addressOrUnknown(a alerts.Alert) string {
	if a.Location.Address != "" {
		return a.Location.Address
	}
	return "unknown location"
}

// Publish stamps and stores a notification, sending it to every enabled
// auto-notify group
func (c *Center) Publish(ctx context.Context, n Notification) Notification {
	ctx = logging.EnsureLogger(ctx)
	c.mu.Lock()
	n.ID = "notif-" + uuid.NewString()
	if n.Timestamp.IsZero() {
		n.Timestamp = c.now()
	}
	n.SentTo = nil
	for i := range c.recipients {
		r := &c.recipients[i]
		if r.Enabled && r.AutoNotify {
			n.SentTo = append(n.SentTo, r.Group)
			r.NotificationCount++
		}
	}
	stored := n
	c.notifications = append([]*Notification{&stored}, c.notifications...)
	c.mu.Unlock()

	c.metrics.NotificationSent()
	logging.Infow(ctx, "Notification published",
		"notification_id", n.ID, "alert_id", n.AlertID, "type", n.Type, "sent_to", n.SentTo)
	c.deliver(ctx, n)
	return n
}

// SendCustom publishes an operator-written message to explicitly chosen groups.
// Disabled groups are skipped.
func (c *Center) SendCustom(ctx context.Context, title, message string, groups []Group) (Notification, error) {
	ctx = logging.EnsureLogger(ctx)
	if strings.TrimSpace(message) == "" {
		return Notification{}, ErrEmptyMessage
	}

	c.mu.Lock()
	n := Notification{
		ID:        "notif-" + uuid.NewString(),
		Type:      TypeCustom,
		Title:     title,
		Message:   message,
		Timestamp: c.now(),
	}
	for _, g := range groups {
		r := c.recipient(g)
		if r == nil {
			c.mu.Unlock()
			return Notification{}, fmt.Errorf("%w: %s", ErrUnknownGroup, g)
		}
		if r.Enabled {
			n.SentTo = append(n.SentTo, g)
		}
	}
	for _, g := range n.SentTo {
		c.recipient(g).NotificationCount++
	}
	stored := n
	c.notifications = append([]*Notification{&stored}, c.notifications...)
	c.mu.Unlock()

	c.metrics.NotificationSent()
	logging.Infow(ctx, "Custom notification sent", "notification_id", n.ID, "sent_to", n.SentTo)
	c.deliver(ctx, n)
	return n, nil
}

func (c *Center) deliver(ctx context.Context, n Notification) {
	for _, f := range c.deliveries {
		f(ctx, n)
	}
}

// Includes reports whether g received the notification
func (n Notification) Includes(g Group) bool {
	for _, s := range n.SentTo {
		if s == g {
			return true
		}
	}
	return false
}

func (c *Center) recipient(g Group) *Recipient {
	for i := range c.recipients {
		if c.recipients[i].Group == g {
			return &c.recipients[i]
		}
	}
	return nil
}

// brief generates a briefing in the background and attaches it when ready.
// Publishing never waits on the briefer.
func (c *Center) brief(ctx context.Context, notificationID string, req BriefingRequest) {
	ctx = logging.EnsureLogger(ctx)
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				err, _ := errors.ParseStack(debug.Stack())
				skipFrames := 3
				numFrames := 5
				logging.Errorw(ctx, "Briefing: recovered from panic",
					"error", r, "error.stack_trace", err.MinimalStack(skipFrames, numFrames))
			}
		}()

		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.briefingTimeout)
		defer cancel()

		text, err := c.briefer.Brief(bctx, req)
		if err != nil {
			logging.Warnw(ctx, "Briefing failed", "alert_id", req.AlertID, "error", err)
			return
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		for _, n := range c.notifications {
			if n.ID == notificationID {
				n.Briefing = text
				return
			}
		}
	}()
}

// Wait blocks until in-flight briefings finish
func (c *Center) Wait() {
	c.inflight.Wait()
}

// List returns notifications newest first
func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.notifications))
	for i, n := range c.notifications {
		out[i] = *n
		out[i].SentTo = append([]Group(nil), n.SentTo...)
	}
	return out
}

// MarkRead marks one notification as read
func (c *Center) MarkRead(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
}

// MarkAllRead marks every notification as read and returns how many changed
func (c *Center) MarkAllRead() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for _, n := range c.notifications {
		if !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed
}

// UnreadCount counts unread notifications
func (c *Center) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, n := range c.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Clear removes one notification
func (c *Center) Clear(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.notifications {
		if n.ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
}

// ClearAll removes every notification
func (c *Center) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = nil
}

// Recipients returns the roster with delivery counts
func (c *Center) Recipients() []Recipient {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Recipient(nil), c.recipients...)
}

// UpdateRecipient changes a group's delivery settings
func (c *Center) UpdateRecipient(g Group, enabled, autoNotify bool) (Recipient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.recipient(g)
	if r == nil {
		return Recipient{}, fmt.Errorf("%w: %s", ErrUnknownGroup, g)
	}
	r.Enabled = enabled
	r.AutoNotify = autoNotify
	return *r, nil
}
