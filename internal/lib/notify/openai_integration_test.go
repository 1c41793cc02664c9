package notify

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Live call against OpenAI; set OPENAI_API_KEY to run
func TestOpenAIBriefer_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	briefer := NewOpenAIBriefer(apiKey, "gpt-4o-mini", "")
	require.NoError(t, briefer.HealthCheck(ctx))

	cached := NewCachedBriefer(briefer, &memoryCache{entries: map[string]string{}})
	text, err := cached.Brief(ctx, briefReq())
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.LessOrEqual(t, len(text), maxBriefingLength)
	assert.True(t, cached.IsCached(briefReq()))

	again, err := cached.Brief(ctx, briefReq())
	require.NoError(t, err)
	assert.Equal(t, text, again, "second call served from cache")
}
