package entities

// Insight is the structured record derived from a transcript by the
// reasoning service. Exactly one Insight exists per request: either
// populated from a successfully parsed reply or replaced wholesale by
// DefaultInsight — never partially merged.
type Insight struct {
	Summary        string          `json:"summary"`
	Conflicts      []Conflict      `json:"conflicts"`
	CalendarEvents []CalendarEvent `json:"calendar_events"`
	MindMap        []MindMapNode   `json:"mind_map"`
}

// Conflict is a disagreement raised during the meeting and how it was settled.
type Conflict struct {
	Point      string `json:"point"`
	Resolution string `json:"resolution"`
}

// CalendarEvent is a scheduled commitment mentioned in the meeting.
// Date is an ISO 8601 calendar date, Time is 24-hour HH:MM.
type CalendarEvent struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// MindMapNode is one topic of the meeting with its subtopics.
type MindMapNode struct {
	Topic     string   `json:"topic"`
	Subtopics []string `json:"subtopics"`
}

// DefaultInsight is the fixed fallback substituted whenever extraction
// cannot produce a valid structured result.
func DefaultInsight() Insight {
	return Insight{
		Summary:        "Transcription complete.",
		Conflicts:      []Conflict{},
		CalendarEvents: []CalendarEvent{},
		MindMap:        []MindMapNode{},
	}
}
