package risk

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		species    Species
		distance   float64
		confidence float64
		tod        TimeOfDay
		want       Level
	}{
		// 40+40+15+10 = 105
		{"lion close at night", Lion, 80, 95, Night, Critical},
		// 35+20+15 = 70
		{"elephant mid range by day", Elephant, 350, 92, Day, High},
		// 25+30+10 = 65
		{"buffalo near waterhole", Buffalo, 180, 88, Day, High},
		// 40+10+15 = 65
		{"lion at community boundary", Lion, 520, 95, Day, High},
		// 10+5+0 = 15
		{"unknown far low confidence", Unknown, 5000, 50, Day, Low},
		// 30+5+5 = 40 is exactly the medium edge
		{"rhino on medium edge", Rhino, 1000, 70, Day, Medium},
		// 25+20+5+10 = 60 is exactly the high edge
		{"buffalo on high edge", Buffalo, 499, 70, Night, High},
		// 35+30+15 = 80 is exactly the critical edge
		{"elephant on critical edge", Elephant, 299, 90, Day, Critical},
		// 35+30+10 = 75
		{"elephant just under critical", Elephant, 299, 89.9, Day, High},
		// unrecognized species score like Unknown: 10+40+15+10 = 75
		{"unrecognized species", Species("ZEBRA"), 10, 99, Night, High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.species, tt.distance, tt.confidence, tt.tod))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify(Lion, 80, 95, Night)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(Lion, 80, 95, Night))
	}
	assert.Equal(t, Critical, first)
}

func TestClassify_NonIncreasingInDistance(t *testing.T) {
	distances := []float64{0, 50, 99, 100, 150, 299, 300, 450, 499, 500, 999, 1000, 1500, 10000}

	for _, species := range AllSpecies {
		for _, tod := range []TimeOfDay{Day, Night} {
			for _, confidence := range []float64{0, 70, 80, 95} {
				previous := Classify(species, distances[0], confidence, tod)
				for _, d := range distances[1:] {
					current := Classify(species, d, confidence, tod)
					assert.LessOrEqual(t, current, previous,
						"%s %s conf=%.0f: risk rose from %s to %s at %.0fm", species, tod, confidence, previous, current, d)
					previous = current
				}
			}
		}
	}

	assert.GreaterOrEqual(t, Classify(Elephant, 50, 95, Night), Classify(Elephant, 1500, 95, Night))
}

func TestScore(t *testing.T) {
	assert.Equal(t, 105, Score(Lion, 80, 95, Night))
	assert.Equal(t, 15, Score(Unknown, 1000, 0, Day))
}

func TestLevelOrdering(t *testing.T) {
	assert.Less(t, Low, Medium)
	assert.Less(t, Medium, High)
	assert.Less(t, High, Critical)
	assert.Equal(t, []Level{Low, Medium, High, Critical}, Levels)
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, level := range Levels {
		data, err := json.Marshal(level)
		require.NoError(t, err)

		var decoded Level
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, level, decoded)
	}

	data, err := json.Marshal(Critical)
	require.NoError(t, err)
	assert.Equal(t, `"CRITICAL"`, string(data))

	var bad Level
	assert.Error(t, json.Unmarshal([]byte(`"SEVERE"`), &bad))

	_, err = Level(42).MarshalText()
	assert.Error(t, err)
}

func TestParseSpecies(t *testing.T) {
	assert.Equal(t, Elephant, ParseSpecies("elephant"))
	assert.Equal(t, Lion, ParseSpecies(" LION "))
	assert.Equal(t, Lion, ParseSpecies("GIRAFFE"))
	assert.Equal(t, Unknown, ParseSpecies("zebra"))
	assert.Equal(t, Unknown, ParseSpecies(""))
}

func TestHourRule(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*3600)
	rule := HourRule{Zone: nairobi}

	tests := []struct {
		utc  string
		want TimeOfDay
	}{
		{"2024-05-01T02:59:59Z", Night}, // 05:59 local
		{"2024-05-01T03:00:00Z", Day},   // 06:00 local
		{"2024-05-01T14:59:59Z", Day},   // 17:59 local
		{"2024-05-01T15:00:00Z", Night}, // 18:00 local
		{"2024-05-01T21:00:00Z", Night}, // midnight local
	}

	for _, tt := range tests {
		ts, err := time.Parse(time.RFC3339, tt.utc)
		require.NoError(t, err)
		assert.Equal(t, tt.want, rule.TimeOfDay(ts), tt.utc)
	}
}

func TestLoadZone_FallsBackToFixedOffset(t *testing.T) {
	zone := LoadZone("Not/AZone", 3)
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).In(zone)

	_, offset := ts.Zone()
	assert.Equal(t, 3*3600, offset)
}
