package insight

import "fmt"

// promptTemplate fixes the exact output schema and the JSON-only reply
// contract. Calendar disambiguation defaults are injected from config,
// not hardcoded in the template.
const promptTemplate = `You are a meeting analyst. Analyze the meeting transcript below and respond with ONLY a valid JSON object, no surrounding prose, no markdown fences.

The JSON object must have exactly these top-level fields:
- "summary": a concise paragraph summarizing the meeting
- "conflicts": array of {"point": string, "resolution": string} for each disagreement and how it was resolved
- "calendar_events": array of {"title": string, "date": string, "time": string} for each scheduled commitment mentioned
- "mind_map": array of {"topic": string, "subtopics": [string]} breaking the meeting into topics

Calendar event rules:
- "date" must be an ISO 8601 calendar date (YYYY-MM-DD). If no date is mentioned, use %s.
- "time" must be 24-hour HH:MM. A bare hour is 24-hour unless an AM/PM meridiem is explicit.
- If a field is unknown, include it with an empty array or empty string; never omit a field.

Transcript:
%s`

// BuildPrompt constructs the single constrained instruction sent to the
// reasoning service for one transcript.
func BuildPrompt(transcript string, defaultEventDate string) string {
	return fmt.Sprintf(promptTemplate, defaultEventDate, transcript)
}
