package entities

// TranscriptSegment is one speaker-attributed slice of the meeting audio.
// Segments are immutable after creation and ordered by start time; the
// provider emits utterances chronologically and that order is preserved
// as-is (ties are possible, original order is the only correct tie-break).
type TranscriptSegment struct {
	Speaker string        `json:"speaker"`
	Text    string        `json:"text"`
	Start   float64       `json:"start"`
	End     float64       `json:"end"`
	Context []ContextItem `json:"context"`
}

// ContextItem is a knowledge-base card matched against a segment's text.
type ContextItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionText  string `json:"action_text"`
	ActionURL   string `json:"action_url"`
}

// Utterance is one continuous speech segment from a single speaker as
// delimited by the transcription provider. Timestamps are milliseconds.
type Utterance struct {
	Speaker string
	Text    string
	StartMs int64
	EndMs   int64
}

// TranscriptionResult is the successful outcome of a transcription call.
// Request-scoped, never persisted.
type TranscriptionResult struct {
	Utterances      []Utterance
	Text            string
	DurationSeconds float64
}

// PipelineResult is the sole externally visible artifact of a pipeline run.
type PipelineResult struct {
	Transcript []TranscriptSegment `json:"transcript"`
	Insight    Insight             `json:"insight"`
}
