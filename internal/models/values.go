package models

import "errors"

var (
	ErrEmptyText           = errors.New("response text cannot be empty")
	ErrRatingOutOfRange    = errors.New("effectiveness rating must be between 1 and 5")
	ErrEmptyEmotion        = errors.New("primary emotion cannot be empty")
	ErrIntensityOutOfRange = errors.New("intensity level must be between 1 and 10")
)

// ResponseSuggestion is a single phrasing a parent could answer with,
// annotated with its tone and a 1-5 effectiveness rating.
type ResponseSuggestion struct {
	Text                string `json:"text"`
	Tone                string `json:"tone"`
	EffectivenessRating int    `json:"effectiveness_rating"`
}

func NewResponseSuggestion(text, tone string, rating int) (*ResponseSuggestion, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	return &ResponseSuggestion{
		Text:                text,
		Tone:                tone,
		EffectivenessRating: rating,
	}, nil
}

// EmotionalContext describes the emotional picture behind a phrase:
// the dominant emotion, secondary ones, and what the child needs.
type EmotionalContext struct {
	PrimaryEmotion    string   `json:"primary_emotion"`
	SecondaryEmotions []string `json:"secondary_emotions"`
	IntensityLevel    int      `json:"intensity_level"`
	UnderlyingNeeds   []string `json:"underlying_needs"`
}

func NewEmotionalContext(primary string, secondary []string, intensity int, needs []string) (*EmotionalContext, error) {
	if primary == "" {
		return nil, ErrEmptyEmotion
	}
	if intensity < 1 || intensity > 10 {
		return nil, ErrIntensityOutOfRange
	}
	return &EmotionalContext{
		PrimaryEmotion:    primary,
		SecondaryEmotions: secondary,
		IntensityLevel:    intensity,
		UnderlyingNeeds:   needs,
	}, nil
}

// IsHighIntensity reports whether the situation calls for extra care.
func (c *EmotionalContext) IsHighIntensity() bool {
	return c.IntensityLevel >= 7
}

// AllEmotions returns the primary emotion followed by the secondary ones.
func (c *EmotionalContext) AllEmotions() []string {
	all := make([]string, 0, len(c.SecondaryEmotions)+1)
	all = append(all, c.PrimaryEmotion)
	all = append(all, c.SecondaryEmotions...)
	return all
}
