package pipeline

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/meetinsight-team/meeting-insight/internal/domain/entities"
	"github.com/meetinsight-team/meeting-insight/internal/usecase/knowledge"
)

// Transcriber is the speech-to-text dependency: submit a staged audio file
// and block until the provider reports a terminal status.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, languageCode string) (*entities.TranscriptionResult, error)
}

// InsightExtractor derives meeting insights from transcript text. It never
// fails: degradation is absorbed inside the extractor.
type InsightExtractor interface {
	Extract(ctx context.Context, transcript string) entities.Insight
}

// Service sequences one upload through intake, transcription, formatting
// and insight extraction. A transcription failure aborts the request; an
// extraction failure degrades to the default-empty Insight.
type Service struct {
	transcriber Transcriber
	extractor   InsightExtractor
	kb          *knowledge.Base
	logger      *zap.Logger
}

// NewService constructs a pipeline service
func NewService(transcriber Transcriber, extractor InsightExtractor, kb *knowledge.Base, logger *zap.Logger) *Service {
	return &Service{
		transcriber: transcriber,
		extractor:   extractor,
		kb:          kb,
		logger:      logger,
	}
}

// Process runs the whole pipeline for one uploaded file. The staged audio
// copy is released on every exit path, including panics in downstream
// stages.
func (s *Service) Process(ctx context.Context, filename string, audio io.Reader, languageCode string) (*entities.PipelineResult, error) {
	staged, err := StageAudio(filename, audio)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := staged.Release(); err != nil && s.logger != nil {
			s.logger.Warn("failed to remove staged audio",
				zap.String("path", staged.Path),
				zap.Error(err),
			)
		}
	}()

	if s.logger != nil {
		s.logger.Info("audio staged for transcription",
			zap.String("filename", filename),
			zap.String("staged_path", staged.Path),
		)
	}

	result, err := s.transcriber.Transcribe(ctx, staged.Path, languageCode)
	if err != nil {
		return nil, err
	}

	// Formatting and extraction are independent transforms over the same
	// immutable transcript; run them concurrently and join both before
	// returning. A panic on the extraction goroutine would kill the whole
	// process and skip the staged-file release, so it degrades to the
	// default-empty Insight like every other extraction fault.
	var insight entities.Insight
	extracted := make(chan struct{})
	go func() {
		defer close(extracted)
		defer func() {
			if r := recover(); r != nil {
				if s.logger != nil {
					s.logger.Error("insight extraction degraded: panic recovered",
						zap.Any("panic", r),
					)
				}
				insight = entities.DefaultInsight()
			}
		}()
		insight = s.extractor.Extract(ctx, result.Text)
	}()

	segments := FormatSegments(result, s.kb)
	<-extracted

	return &entities.PipelineResult{
		Transcript: segments,
		Insight:    insight,
	}, nil
}
