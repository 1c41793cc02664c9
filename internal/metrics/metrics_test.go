package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.AlertCreated("CRITICAL")
	c.AlertCreated("CRITICAL")
	c.Transition("DISPATCHED")
	c.Dispatched(12, true)
	c.Dispatched(45, false)
	c.RouteComputed(SourceFallback, 3*time.Millisecond)
	c.NotificationSent()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.AlertsCreated.WithLabelValues("CRITICAL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.AlertTransitions.WithLabelValues("DISPATCHED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SLABreaches))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.RoutesComputed.WithLabelValues(SourceFallback)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.RoutesComputed.WithLabelValues(SourceProvider)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.NotificationsSent))

	assert.Equal(t, reg, c.Gatherer())
}

func TestCollector_ReusesRegisteredFamilies(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	first.SLABreaches.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(second.SLABreaches))
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.AlertCreated("LOW")
		c.Transition("RESOLVED")
		c.Dispatched(10, true)
		c.RouteComputed(SourceProvider, time.Second)
		c.NotificationSent()
	})
	assert.Nil(t, c.Gatherer())
}
