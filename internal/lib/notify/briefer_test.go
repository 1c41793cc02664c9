package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
)

func chatCompletion(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1714560000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]interface{}{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]string{"role": "assistant", "content": content},
		}},
	})
	return string(body)
}

func briefReq() BriefingRequest {
	return BriefingRequest{
		AlertID:        "a1",
		Species:        risk.Lion,
		RiskLevel:      risk.Critical,
		TimeOfDay:      risk.Night,
		Direction:      "NE",
		Location:       geo.Location{Latitude: -3.39642, Longitude: 37.676531},
		DistanceMeters: 80,
		ETAMinutes:     1,
	}
}

func TestOpenAIBriefer_Brief(t *testing.T) {
	var requestBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requestBody = string(body)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletion(`{"summary":"Lion close to the village tonight. Keep children inside. Rangers are on their way."}`))
	}))
	defer server.Close()

	b := NewOpenAIBriefer("test-key", "gpt-4o-mini", server.URL)

	text, err := b.Brief(context.Background(), briefReq())
	require.NoError(t, err)
	assert.Equal(t, "Lion close to the village tonight. Keep children inside. Rangers are on their way.", text)

	assert.Contains(t, requestBody, `"json_schema"`)
	assert.Contains(t, requestBody, "community_briefing")
	assert.Contains(t, requestBody, "Species: LION")
	assert.Contains(t, requestBody, "Risk level: CRITICAL")
	assert.Contains(t, requestBody, "Heading: NE")
}

func TestOpenAIBriefer_Truncates(t *testing.T) {
	long := strings.Repeat("x", 400)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletion(`{"summary":"`+long+`"}`))
	}))
	defer server.Close()

	text, err := NewOpenAIBriefer("k", "m", server.URL).Brief(context.Background(), briefReq())
	require.NoError(t, err)
	assert.Len(t, text, maxBriefingLength)
	assert.True(t, strings.HasSuffix(text, "..."))
}

func TestOpenAIBriefer_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewOpenAIBriefer("", "m", "").Brief(ctx, briefReq())
	assert.ErrorContains(t, err, "not initialized")
	assert.Error(t, NewOpenAIBriefer("", "m", "").HealthCheck(ctx))

	bodies := map[string]string{
		"not json":      chatCompletion(`plain text`),
		"empty summary": chatCompletion(`{"summary":"  "}`),
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, body)
			}))
			defer server.Close()

			_, err := NewOpenAIBriefer("k", "m", server.URL).Brief(ctx, briefReq())
			assert.Error(t, err)
		})
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid key","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	_, err = NewOpenAIBriefer("k", "m", server.URL).Brief(ctx, briefReq())
	assert.ErrorContains(t, err, "OpenAI API error")
	assert.ErrorContains(t, NewOpenAIBriefer("k", "m", server.URL).HealthCheck(ctx), "health check failed")
}

// memoryCache is an in-memory BriefingCache
type memoryCache struct {
	entries map[string]string
}

func (m *memoryCache) SetBriefing(hash, briefing string, _ time.Duration) error {
	m.entries[hash] = briefing
	return nil
}

func (m *memoryCache) GetBriefing(hash string) (string, bool, error) {
	b, ok := m.entries[hash]
	return b, ok, nil
}

func TestCachedBriefer(t *testing.T) {
	inner := &MockBriefer{}
	inner.On("Brief", mock.Anything, mock.Anything).Return("Stay inside.", nil).Once()
	cache := &memoryCache{entries: map[string]string{}}
	b := NewCachedBriefer(inner, cache)
	ctx := context.Background()

	req := briefReq()
	assert.False(t, b.IsCached(req))

	text, err := b.Brief(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Stay inside.", text)
	assert.True(t, b.IsCached(req))

	// Same facts under a different alert id share the briefing
	req.AlertID = "a2"
	req.DistanceMeters = 95
	text, err = b.Brief(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Stay inside.", text)

	inner.AssertNumberOfCalls(t, "Brief", 1)
}

func TestCachedBriefer_ErrorsAreNotCached(t *testing.T) {
	inner := &MockBriefer{}
	inner.On("Brief", mock.Anything, mock.Anything).Return("", errors.New("rate limited")).Once()
	inner.On("Brief", mock.Anything, mock.Anything).Return("Stay inside.", nil).Once()
	inner.On("HealthCheck", mock.Anything).Return(nil)
	b := NewCachedBriefer(inner, &memoryCache{entries: map[string]string{}})
	ctx := context.Background()

	_, err := b.Brief(ctx, briefReq())
	assert.Error(t, err)

	text, err := b.Brief(ctx, briefReq())
	require.NoError(t, err)
	assert.Equal(t, "Stay inside.", text)
	assert.NoError(t, b.HealthCheck(ctx))
}

func TestContentHasher(t *testing.T) {
	h := NewContentHasher()
	base := briefReq()

	same := base
	same.AlertID = "other"
	same.Direction = " ne "
	same.DistanceMeters = 20
	assert.Equal(t, h.HashRequest(base), h.HashRequest(same))

	different := base
	different.Species = risk.Elephant
	assert.NotEqual(t, h.HashRequest(base), h.HashRequest(different))

	farther := base
	farther.DistanceMeters = 450
	assert.NotEqual(t, h.HashRequest(base), h.HashRequest(farther))

	assert.Len(t, h.HashRequest(base), 64)
}
