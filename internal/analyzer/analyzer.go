package analyzer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mkarpich/teenspeak-bot/internal/examples"
	"github.com/mkarpich/teenspeak-bot/internal/llm"
	"github.com/mkarpich/teenspeak-bot/internal/models"
)

// Service runs one analysis cycle: match catalog examples, call the
// completion provider once, parse the response.
type Service struct {
	completer llm.Completer
	logger    *zap.Logger
}

func NewService(completer llm.Completer, logger *zap.Logger) *Service {
	return &Service{
		completer: completer,
		logger:    logger,
	}
}

// Analyze produces an analysis record for the request. It never fails:
// when the completion provider errors out, the caller gets a fixed
// fallback record instead.
func (s *Service) Analyze(ctx context.Context, req *models.AnalysisRequest) *models.PhraseAnalysis {
	s.logger.Info("analyzing phrase", zap.String("phrase", firstRunes(req.Phrase, 50)))

	similar := examples.FindSimilar(req.Phrase)
	prompt := buildPrompt(req, similar)

	raw, err := s.completer.Complete(ctx, llm.Request{UserPrompt: prompt})
	if err != nil {
		s.logger.Error("completion failed, using fallback analysis",
			zap.String("provider", s.completer.Name()),
			zap.Error(err))
		return FallbackAnalysis(req.Phrase)
	}

	return Parse(raw, req.Phrase)
}

// FallbackAnalysis is the fixed low-confidence record returned when the
// completion provider fails.
func FallbackAnalysis(phrase string) *models.PhraseAnalysis {
	return &models.PhraseAnalysis{
		OriginalPhrase: phrase,
		EmotionalState: []models.EmotionalState{models.Confused},
		TrueMeaning:    "Не удалось проанализировать фразу. Попробуйте переформулировать или добавить контекст.",
		ChildNeeds:     "Понимание и поддержка",
		SuggestedResponses: []string{
			"Я вижу, что тебе сложно. Давай попробуем разобраться вместе.",
			"Расскажи подробнее, что происходит?",
		},
		WhatToAvoid: []string{
			"Не обесценивайте чувства",
			"Не давите на ребёнка",
		},
		ConfidenceScore: models.FallbackConfidence,
		AnalyzedAt:      time.Now(),
	}
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
