package response

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponseTimeSeconds(t *testing.T) {
	detected := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ResponseTimeSeconds(detected, detected))
	assert.Equal(t, 29, ResponseTimeSeconds(detected, detected.Add(29*time.Second+999*time.Millisecond)))
	assert.Equal(t, 60, ResponseTimeSeconds(detected, detected.Add(time.Minute)))

	// Dispatch recorded before detection stays observable as a negative value
	assert.Equal(t, -1, ResponseTimeSeconds(detected, detected.Add(-500*time.Millisecond)))
	assert.Equal(t, -60, ResponseTimeSeconds(detected, detected.Add(-time.Minute)))
}

func TestMeetsSLA(t *testing.T) {
	assert.True(t, MeetsSLA(0))
	assert.True(t, MeetsSLA(29))
	assert.False(t, MeetsSLA(30))
	assert.False(t, MeetsSLA(3600))
}

func TestETAMinutes(t *testing.T) {
	assert.Equal(t, 2, ETAMinutes(350))
	assert.Equal(t, 1, ETAMinutes(180))
	assert.Equal(t, 1, ETAMinutes(200))
	assert.Equal(t, 3, ETAMinutes(520))
	assert.Equal(t, 0, ETAMinutes(0))
}
