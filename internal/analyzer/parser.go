// Package analyzer turns a user phrase into a structured emotional
// analysis: it builds the prompt, calls a completion provider and parses
// the labeled-section response into a typed record.
package analyzer

import (
	"strings"
	"time"

	"github.com/mkarpich/teenspeak-bot/internal/models"
)

// Section labels the model is instructed to emit. A response line whose
// upper-cased form contains one of these (with the colon) starts a new
// section.
const (
	headerEmotionalState     = "EMOTIONAL_STATE"
	headerTrueMeaning        = "TRUE_MEANING"
	headerChildNeeds         = "CHILD_NEEDS"
	headerSuggestedResponses = "SUGGESTED_RESPONSES"
	headerWhatToAvoid        = "WHAT_TO_AVOID"
	headerSafetyNotice       = "SAFETY_NOTICE"
)

var sectionHeaders = []string{
	headerEmotionalState + ":",
	headerTrueMeaning + ":",
	headerChildNeeds + ":",
	headerSuggestedResponses + ":",
	headerWhatToAvoid + ":",
	headerSafetyNotice + ":",
}

// Defaults used when the response is missing a section.
const (
	defaultTrueMeaning = "Не удалось определить"
	defaultChildNeeds  = "Понимание и поддержка"
	listPlaceholder    = "Информация недоступна"
)

const maxListItems = 3

// emotionTable maps keywords to emotional states. The model is asked to
// answer with the English tokens, but replies sometimes come back in
// Russian, so each state also carries Russian lexical stems. Keywords
// are matched as substrings, not whole words; a keyword embedded in a
// longer word also counts.
var emotionTable = []struct {
	state    models.EmotionalState
	keywords []string
}{
	{models.Angry, []string{"злость", "злит", "злой", "гнев", "бесит", "angry"}},
	{models.Frustrated, []string{"раздраж", "фрустрац", "frustrated"}},
	{models.Sad, []string{"груст", "печаль", "тоска", "sad"}},
	{models.Anxious, []string{"тревог", "беспоко", "страх", "anxious"}},
	{models.Defensive, []string{"защит", "защищ", "defensive"}},
	{models.Overwhelmed, []string{"перегруж", "истощ", "overwhelmed"}},
	{models.Disconnected, []string{"отчужд", "отстран", "одинок", "disconnected"}},
	{models.Confused, []string{"растерян", "запутал", "confused"}},
}

// Parse converts a raw model response into an analysis record. It never
// fails: missing sections fall back to defaults and unrecognized
// emotional-state text falls back to confused.
func Parse(rawText, originalPhrase string) *models.PhraseAnalysis {
	sections := extractSections(rawText)

	return &models.PhraseAnalysis{
		OriginalPhrase:     originalPhrase,
		EmotionalState:     parseEmotionalStates(sections[headerEmotionalState]),
		TrueMeaning:        sectionOrDefault(sections, headerTrueMeaning, defaultTrueMeaning),
		ChildNeeds:         sectionOrDefault(sections, headerChildNeeds, defaultChildNeeds),
		SuggestedResponses: parseListSection(sections[headerSuggestedResponses]),
		WhatToAvoid:        parseListSection(sections[headerWhatToAvoid]),
		ConfidenceScore:    models.ParsedConfidence,
		SafetyNotice:       sections[headerSafetyNotice],
		AnalyzedAt:         time.Now(),
	}
}

// extractSections splits the response into sections keyed by canonical
// header name. Lines before the first header are dropped; blank lines
// are skipped; a section's body is its non-blank lines joined by
// newline.
func extractSections(text string) map[string]string {
	sections := make(map[string]string)
	var current string
	var body []string

	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(strings.Join(body, "\n"))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if header, ok := matchHeader(line); ok {
			flush()
			current = header
			body = nil
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

func matchHeader(line string) (string, bool) {
	upper := strings.ToUpper(line)
	for _, h := range sectionHeaders {
		if strings.Contains(upper, h) {
			return strings.TrimSuffix(h, ":"), true
		}
	}
	return "", false
}

func sectionOrDefault(sections map[string]string, key, fallback string) string {
	if v, ok := sections[key]; ok {
		return v
	}
	return fallback
}

// parseEmotionalStates collects every state whose keyword occurs in the
// section text, in table order, one entry per state. No match yields
// [confused].
func parseEmotionalStates(text string) []models.EmotionalState {
	lower := strings.ToLower(text)

	var states []models.EmotionalState
	for _, entry := range emotionTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				states = append(states, entry.state)
				break
			}
		}
	}
	if len(states) == 0 {
		states = append(states, models.Confused)
	}
	return states
}

// parseListSection extracts up to maxListItems items from a section.
// Lines starting with a digit, "-" or "•" are list items with their
// enumerator stripped; other lines are accepted as-is while fewer than
// maxListItems items have been collected.
func parseListSection(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isListItem(line) {
			if cleaned := strings.TrimSpace(strings.TrimLeft(line, "0123456789.-•) ")); cleaned != "" {
				items = append(items, cleaned)
			}
		} else if len(items) < maxListItems {
			items = append(items, line)
		}
	}

	if len(items) == 0 {
		return []string{listPlaceholder}
	}
	if len(items) > maxListItems {
		items = items[:maxListItems]
	}
	return items
}

func isListItem(line string) bool {
	r := []rune(line)[0]
	return (r >= '0' && r <= '9') || r == '-' || r == '•'
}
