package assemblyai

import (
	"context"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/meetinsight-team/meeting-insight/errors"
	"github.com/meetinsight-team/meeting-insight/internal/domain/entities"
	"github.com/meetinsight-team/meeting-insight/pkg/config"
)

// Client wraps the official AssemblyAI SDK with submit-and-await semantics:
// the SDK performs its own polling, the caller only sees a blocking call
// that ends in a terminal status.
type Client struct {
	sdk    *aai.Client
	cfg    *config.AssemblyAIConfig
	logger *zap.Logger
}

// NewClient creates an AssemblyAI client using the provided config.
func NewClient(cfg *config.AssemblyAIConfig, logger *zap.Logger) *Client {
	return &Client{
		sdk:    aai.NewClient(cfg.APIKey),
		cfg:    cfg,
		logger: logger,
	}
}

// Transcribe submits the staged audio file for transcription with speaker
// diarization enabled and blocks until the provider reports a terminal
// status. languageCode overrides the configured language when non-empty.
//
// Transient submit failures are retried with exponential backoff; a
// provider-reported error status is permanent and fails the request.
func (c *Client) Transcribe(ctx context.Context, audioPath string, languageCode string) (*entities.TranscriptionResult, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
		SpeechModel:   aai.SpeechModel(c.cfg.SpeechModel),
	}
	lang := c.cfg.LanguageCode
	if languageCode != "" {
		lang = languageCode
	}
	if lang != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(lang)
	}

	var result *entities.TranscriptionResult
	operation := func() error {
		f, err := os.Open(audioPath)
		if err != nil {
			return backoff.Permanent(err)
		}
		defer f.Close()

		transcript, err := c.sdk.Transcripts.TranscribeFromReader(ctx, f, params)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("assemblyai submit failed, will retry",
					zap.Error(err),
				)
			}
			return err
		}

		if transcript.Status == "error" {
			detail := "unknown transcription error"
			if transcript.Error != nil {
				detail = *transcript.Error
			}
			// Terminal provider status: retrying would re-submit the
			// same audio and fail the same way.
			return backoff.Permanent(errors.ErrTranscriptionFailed(detail, nil))
		}

		result = mapTranscript(transcript)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = c.cfg.SubmitRetryMax

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		if appErr, ok := err.(errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.ErrTranscriptionFailed(err.Error(), err)
	}

	if c.logger != nil {
		c.logger.Info("transcription completed",
			zap.Int("utterance_count", len(result.Utterances)),
			zap.Float64("duration_seconds", result.DurationSeconds),
		)
	}
	return result, nil
}

// mapTranscript converts SDK pointer-heavy types into the request-scoped
// transcription result. Timestamps stay in provider milliseconds here;
// the formatter owns the ms-to-seconds conversion.
func mapTranscript(transcript aai.Transcript) *entities.TranscriptionResult {
	result := &entities.TranscriptionResult{}

	if transcript.Text != nil {
		result.Text = *transcript.Text
	}
	if transcript.AudioDuration != nil {
		result.DurationSeconds = *transcript.AudioDuration
	}

	if len(transcript.Utterances) > 0 {
		utterances := make([]entities.Utterance, 0, len(transcript.Utterances))
		for _, utt := range transcript.Utterances {
			utterance := entities.Utterance{}
			if utt.Speaker != nil {
				utterance.Speaker = *utt.Speaker
			}
			if utt.Text != nil {
				utterance.Text = *utt.Text
			}
			if utt.Start != nil {
				utterance.StartMs = int64(*utt.Start)
			}
			if utt.End != nil {
				utterance.EndMs = int64(*utt.End)
			}
			utterances = append(utterances, utterance)
		}
		result.Utterances = utterances
	}

	return result
}
