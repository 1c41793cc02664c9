package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
)

// maxBriefingLength bounds the text shown under a notification
const maxBriefingLength = 240

// BriefingRequest carries the alert facts a briefing is written from
type BriefingRequest struct {
	AlertID        string
	Species        risk.Species
	RiskLevel      risk.Level
	TimeOfDay      risk.TimeOfDay
	Direction      string
	Location       geo.Location
	DistanceMeters float64
	ETAMinutes     int
}

func briefingRequest(a alerts.Alert) BriefingRequest {
	return BriefingRequest{
		AlertID:        a.ID,
		Species:        a.Species,
		RiskLevel:      a.RiskLevel,
		TimeOfDay:      a.TimeOfDay,
		Direction:      a.Direction,
		Location:       a.Location,
		DistanceMeters: a.DistanceToSettlementMeters,
		ETAMinutes:     a.ETAMinutes,
	}
}

// Briefer writes short community-facing summaries of alerts
type Briefer interface {
	Brief(ctx context.Context, req BriefingRequest) (string, error)

	// Health check for the backing service
	HealthCheck(ctx context.Context) error
}

// openAIBriefer implements Briefer using OpenAI chat completions
type openAIBriefer struct {
	client *openai.Client
	model  string
}

// NewOpenAIBriefer creates a Briefer. baseURL may be empty for the public API.
func NewOpenAIBriefer(apiKey, model, baseURL string) Briefer {
	if apiKey == "" {
		return &openAIBriefer{client: nil, model: model}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIBriefer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

type briefingResponse struct {
	Summary string `json:"summary"`
}

// Brief asks the model for a structured briefing
func (b *openAIBriefer) Brief(ctx context.Context, req BriefingRequest) (string, error) {
	if b.client == nil {
		return "", errors.New("OpenAI client not initialized - invalid API key")
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(req),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type:       openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &BriefingSchema,
		},
		Temperature: 0.3,
		MaxTokens:   300,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI API")
	}

	var parsed briefingResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse OpenAI JSON response: %w", err)
	}

	summary := strings.TrimSpace(parsed.Summary)
	if summary == "" {
		return "", errors.New("OpenAI returned an empty briefing")
	}
	if len(summary) > maxBriefingLength {
		summary = summary[:maxBriefingLength-3] + "..."
	}
	return summary, nil
}

// HealthCheck verifies OpenAI API connectivity
func (b *openAIBriefer) HealthCheck(ctx context.Context) error {
	if b.client == nil {
		return errors.New("OpenAI client not initialized")
	}

	_, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Test",
			},
		},
		MaxTokens: 1,
	})
	if err != nil {
		return fmt.Errorf("OpenAI API health check failed: %w", err)
	}
	return nil
}

func userPrompt(req BriefingRequest) string {
	direction := req.Direction
	if direction == "" {
		direction = "unknown"
	}
	return fmt.Sprintf(`Write a community briefing for this wildlife detection:

Species: %s
Risk level: %s
Time of day: %s
Heading: %s
Distance to nearest settlement: %.0f m
Estimated minutes until it could reach the settlement: %d`,
		req.Species, req.RiskLevel, req.TimeOfDay, direction, req.DistanceMeters, req.ETAMinutes)
}
