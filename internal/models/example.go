package models

import "strings"

// edgePunct is trimmed from both ends during phrase normalization so that
// catalog entries like "Отстань!" still match "Отстань от меня".
const edgePunct = "!?.,;:…"

// ExamplePhrase is one entry of the built-in phrase catalog.
type ExamplePhrase struct {
	Phrase            string `json:"phrase"`
	Category          string `json:"category"`
	EmotionalContext  string `json:"emotional_context"`
	TypicalMeaning    string `json:"typical_meaning"`
	SuggestedApproach string `json:"suggested_approach"`
}

// MatchesPattern reports whether the user phrase and the catalog phrase
// overlap: after normalization, true if either string contains the other.
// Matching is by substring, so a short catalog phrase embedded in an
// unrelated longer sentence also matches.
func (e ExamplePhrase) MatchesPattern(userPhrase string) bool {
	user := normalizePhrase(userPhrase)
	example := normalizePhrase(e.Phrase)
	if user == "" || example == "" {
		return false
	}
	return strings.Contains(user, example) || strings.Contains(example, user)
}

func normalizePhrase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, edgePunct)
	return strings.TrimSpace(s)
}
