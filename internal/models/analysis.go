package models

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Validation errors surfaced to callers; the bot layer maps them to a
// user-facing message without exposing details.
var (
	ErrEmptyPhrase          = errors.New("phrase cannot be empty")
	ErrPhraseTooShort       = errors.New("phrase too short for analysis")
	ErrPhraseTooLong        = errors.New("phrase too long (max 500 characters)")
	ErrConfidenceOutOfRange = errors.New("confidence score must be between 0 and 1")
)

// Phrase length bounds in runes, enforced when an AnalysisRequest is built.
const (
	MinPhraseRunes = 2
	MaxPhraseRunes = 500
)

// DefaultAgeRange is the assumed age of the child when not configured.
const DefaultAgeRange = "10-17"

// Confidence assigned by provenance: a parsed model completion vs. the
// fixed fallback produced when the completion source fails.
const (
	ParsedConfidence   = 0.85
	FallbackConfidence = 0.3
)

// EmotionalState is the closed set of emotions the analysis can report.
type EmotionalState string

const (
	Angry        EmotionalState = "angry"
	Frustrated   EmotionalState = "frustrated"
	Sad          EmotionalState = "sad"
	Anxious      EmotionalState = "anxious"
	Defensive    EmotionalState = "defensive"
	Overwhelmed  EmotionalState = "overwhelmed"
	Disconnected EmotionalState = "disconnected"
	Confused     EmotionalState = "confused"
)

// PhraseAnalysis is the structured result of decoding one phrase.
type PhraseAnalysis struct {
	OriginalPhrase     string           `json:"original_phrase"`
	EmotionalState     []EmotionalState `json:"emotional_state"`
	TrueMeaning        string           `json:"true_meaning"`
	ChildNeeds         string           `json:"child_needs"`
	SuggestedResponses []string         `json:"suggested_responses"`
	WhatToAvoid        []string         `json:"what_to_avoid"`
	ConfidenceScore    float64          `json:"confidence_score"`
	SafetyNotice       string           `json:"safety_notice,omitempty"`
	AnalyzedAt         time.Time        `json:"analyzed_at"`
}

// Validate checks the construction invariants of an analysis record.
func (a *PhraseAnalysis) Validate() error {
	if a.OriginalPhrase == "" {
		return ErrEmptyPhrase
	}
	if a.ConfidenceScore < 0 || a.ConfidenceScore > 1 {
		return ErrConfidenceOutOfRange
	}
	return nil
}

// IsFallback reports whether this record came from the fallback path
// rather than a parsed model completion.
func (a *PhraseAnalysis) IsFallback() bool {
	return a.ConfidenceScore == FallbackConfidence
}

// AnalysisRequest carries one validated phrase into the analyzer.
type AnalysisRequest struct {
	Phrase   string `json:"phrase"`
	Context  string `json:"context"`
	AgeRange string `json:"age_range"`
}

// ValidatePhraseBounds checks a phrase against the given rune bounds.
// The transport layer calls it with its configured bounds before the
// analyzer is invoked.
func ValidatePhraseBounds(phrase string, minRunes, maxRunes int) error {
	if phrase == "" {
		return ErrEmptyPhrase
	}
	if utf8.RuneCountInString(phrase) < minRunes {
		return ErrPhraseTooShort
	}
	if utf8.RuneCountInString(phrase) > maxRunes {
		return ErrPhraseTooLong
	}
	return nil
}

// NewAnalysisRequest validates the phrase against the default bounds.
// Lengths are counted in runes, not bytes.
func NewAnalysisRequest(phrase, context, ageRange string) (*AnalysisRequest, error) {
	if err := ValidatePhraseBounds(phrase, MinPhraseRunes, MaxPhraseRunes); err != nil {
		return nil, err
	}
	if ageRange == "" {
		ageRange = DefaultAgeRange
	}
	return &AnalysisRequest{
		Phrase:   phrase,
		Context:  context,
		AgeRange: ageRange,
	}, nil
}

// HasContext reports whether the parent supplied additional context.
func (r *AnalysisRequest) HasContext() bool {
	return r.Context != ""
}

// Feedback is the reaction a parent can attach to an interaction.
type Feedback string

const (
	FeedbackPositive Feedback = "positive"
	FeedbackNegative Feedback = "negative"
)

// UserInteraction is one recorded exchange: the phrase a user submitted
// and the analysis they received, if any.
type UserInteraction struct {
	UserID    int64           `json:"user_id"`
	Phrase    string          `json:"phrase"`
	Analysis  *PhraseAnalysis `json:"analysis,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Feedback  Feedback        `json:"feedback,omitempty"`
}

// IsAnalyzed reports whether an analysis was produced for this interaction.
func (i UserInteraction) IsAnalyzed() bool {
	return i.Analysis != nil
}
