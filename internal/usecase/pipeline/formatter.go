package pipeline

import (
	"fmt"

	"github.com/meetinsight-team/meeting-insight/internal/domain/entities"
	"github.com/meetinsight-team/meeting-insight/internal/usecase/knowledge"
)

// FormatSegments converts a transcription result into speaker-labeled,
// time-stamped segments. It is total: absence of utterance-level
// diarization is a handled branch, not an error.
//
// Provider utterances arrive in chronological order and are kept in that
// order; timestamps convert from milliseconds to seconds with no rounding.
// With no utterances (mono-speaker audio, or the provider did not
// diarize), the whole transcript becomes one "Speaker A" segment spanning
// the full duration.
func FormatSegments(result *entities.TranscriptionResult, kb *knowledge.Base) []entities.TranscriptSegment {
	if len(result.Utterances) == 0 {
		return []entities.TranscriptSegment{
			{
				Speaker: "Speaker A",
				Text:    result.Text,
				Start:   0.0,
				End:     result.DurationSeconds,
				Context: lookupContext(kb, result.Text),
			},
		}
	}

	segments := make([]entities.TranscriptSegment, 0, len(result.Utterances))
	for _, utt := range result.Utterances {
		segments = append(segments, entities.TranscriptSegment{
			Speaker: fmt.Sprintf("Speaker %s", utt.Speaker),
			Text:    utt.Text,
			Start:   float64(utt.StartMs) / 1000.0,
			End:     float64(utt.EndMs) / 1000.0,
			Context: lookupContext(kb, utt.Text),
		})
	}
	return segments
}

func lookupContext(kb *knowledge.Base, text string) []entities.ContextItem {
	if kb == nil {
		return []entities.ContextItem{}
	}
	return kb.Lookup(text)
}
