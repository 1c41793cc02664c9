package notify

import (
	"crypto/sha256"
	"fmt"
	"math"
	"strings"
)

// ContentHasher derives deduplication keys for briefings
type ContentHasher struct{}

// NewContentHasher creates a new content hasher
func NewContentHasher() *ContentHasher {
	return &ContentHasher{}
}

// HashRequest hashes the facts a briefing depends on. Alert ids, exact
// coordinates and distances are left out or bucketed so that a herd reported
// several times in a few minutes shares one briefing.
func (h *ContentHasher) HashRequest(req BriefingRequest) string {
	signature := fmt.Sprintf("%s|%s|%s|%s|%.2f,%.2f|%d",
		req.Species,
		req.RiskLevel,
		req.TimeOfDay,
		strings.ToUpper(strings.TrimSpace(req.Direction)),
		req.Location.Latitude,
		req.Location.Longitude,
		distanceBucket(req.DistanceMeters),
	)

	hash := sha256.Sum256([]byte(signature))
	return fmt.Sprintf("%x", hash)
}

// distanceBucket rounds down to 100 m bands
func distanceBucket(meters float64) int {
	if meters <= 0 {
		return 0
	}
	return int(math.Floor(meters/100)) * 100
}
