package insight

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/meetinsight-team/meeting-insight/internal/domain/entities"
	"github.com/meetinsight-team/meeting-insight/pkg/config"
)

// CompletionClient is the reasoning-service dependency: one prompt in,
// one free-form text reply out.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service derives a typed Insight from a transcript. Extraction failures
// are absorbed here: the caller always receives exactly one Insight, either
// parsed from the service reply or the default-empty fallback. They never
// propagate as errors.
type Service struct {
	llm    CompletionClient
	parser *Parser
	cfg    *config.InsightConfig
	logger *zap.Logger
}

// NewService constructs an insight extraction service
func NewService(llm CompletionClient, cfg *config.InsightConfig, logger *zap.Logger) *Service {
	return &Service{
		llm:    llm,
		parser: NewParser(),
		cfg:    cfg,
		logger: logger,
	}
}

// Extract invokes the reasoning service once with a constrained prompt and
// converts its reply into an Insight. Degradation to the default-empty
// Insight is silent toward the caller and logged for operators.
func (s *Service) Extract(ctx context.Context, transcript string) entities.Insight {
	if transcript == "" {
		return entities.DefaultInsight()
	}

	prompt := BuildPrompt(transcript, s.defaultEventDate())

	reply, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("insight extraction degraded: reasoning service call failed",
				zap.Error(err),
			)
		}
		return entities.DefaultInsight()
	}

	parsed, err := s.parser.Parse(reply)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("insight extraction degraded: unparseable reply",
				zap.Error(err),
				zap.Int("reply_length", len(reply)),
			)
		}
		return entities.DefaultInsight()
	}

	return *parsed
}

// defaultEventDate resolves the calendar fallback date: deployment config
// when set, otherwise today at request time.
func (s *Service) defaultEventDate() string {
	if s.cfg != nil && s.cfg.DefaultEventDate != "" {
		return s.cfg.DefaultEventDate
	}
	return time.Now().Format("2006-01-02")
}
