package notify

import (
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
)

// SystemPrompt instructs the model how to write community briefings
const SystemPrompt = `You write safety briefings for villages next to a wildlife conservancy. Rangers send you a detected animal and you produce one short message that residents will read on their phones.

Instructions:
- Use plain language that a teenager can follow. No jargon.
- Say what animal is near and how urgent it is, based on the risk level.
- Give one or two concrete actions (stay indoors, bring livestock in, keep children inside).
- Mention that rangers have been notified.
- Do NOT include coordinates, times or dates.
- Keep it under 200 characters.

Return valid JSON with exactly one field:
- summary (string) - the briefing text

Good examples:
- Lion close to the village tonight. Keep children and livestock inside. Rangers are on their way.
- Elephants moving toward the farms. Stay clear of the fields and do not try to chase them. Rangers notified.

Bad examples:
- Lion detected at -3.3964, 37.6765 at 21:30 (includes coordinates and times)
- HIGH risk ELEPHANT NE heading ETA 3 (not plain language)`

// BriefingSchema defines the JSON schema for structured briefing output
var BriefingSchema = openai.ChatCompletionResponseFormatJSONSchema{
	Name:   "community_briefing",
	Strict: true,
	Schema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"summary": {
				"type": "string",
				"description": "Short plain-language briefing for residents, max 200 chars"
			}
		},
		"required": ["summary"],
		"additionalProperties": false
	}`),
}
