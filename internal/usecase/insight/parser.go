package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meetinsight-team/meeting-insight/internal/domain/entities"
)

// Parser handles parsing and validation of reasoning-service replies
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts a raw reply into an Insight. Reasoning services routinely
// wrap the JSON in explanatory prose or code fences, so the region between
// the first '{' and the last '}' is treated as the candidate object. The
// heuristic assumes the reply contains one JSON object; that is an accepted
// limitation, not a guarantee.
//
// Any failure (no braces, malformed JSON, absent top-level field) returns
// an error; the caller substitutes the default-empty Insight.
func (p *Parser) Parse(raw string) (*entities.Insight, error) {
	region, err := extractJSONRegion(raw)
	if err != nil {
		return nil, err
	}

	// Pointer fields distinguish "absent" from "empty": a reply missing
	// any top-level field is rejected wholesale, never partially merged.
	var probe struct {
		Summary        *string                   `json:"summary"`
		Conflicts      *[]entities.Conflict      `json:"conflicts"`
		CalendarEvents *[]entities.CalendarEvent `json:"calendar_events"`
		MindMap        *[]entities.MindMapNode   `json:"mind_map"`
	}
	if err := json.Unmarshal([]byte(region), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	switch {
	case probe.Summary == nil:
		return nil, fmt.Errorf("missing summary in response")
	case probe.Conflicts == nil:
		return nil, fmt.Errorf("missing conflicts in response")
	case probe.CalendarEvents == nil:
		return nil, fmt.Errorf("missing calendar_events in response")
	case probe.MindMap == nil:
		return nil, fmt.Errorf("missing mind_map in response")
	}

	return &entities.Insight{
		Summary:        *probe.Summary,
		Conflicts:      *probe.Conflicts,
		CalendarEvents: *probe.CalendarEvents,
		MindMap:        *probe.MindMap,
	}, nil
}

// extractJSONRegion returns everything between the first '{' and the last
// '}' inclusive.
func extractJSONRegion(content string) (string, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return content[start : end+1], nil
}
