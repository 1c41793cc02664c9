// Package response measures how quickly a team was sent after a detection.
package response

import (
	"math"
	"time"
)

// SLASeconds is the dispatch target measured from detection
const SLASeconds = 30

// ResponseTimeSeconds returns whole seconds between detection and dispatch,
// rounded toward negative infinity. A dispatch earlier than the detection
// yields a negative value; callers that care must validate timestamps.
func ResponseTimeSeconds(detectedAt, dispatchedAt time.Time) int {
	elapsed := dispatchedAt.Sub(detectedAt)
	return int(math.Floor(elapsed.Seconds()))
}

// MeetsSLA reports whether a response time beat the SLA. The boundary is strict.
func MeetsSLA(seconds int) bool {
	return seconds < SLASeconds
}

// ETAMinutes estimates minutes until the animal reaches the settlement,
// assuming roughly 200 m covered per minute
func ETAMinutes(distanceToSettlementMeters float64) int {
	if distanceToSettlementMeters <= 0 {
		return 0
	}
	return int(math.Ceil(distanceToSettlementMeters / 200))
}
