package bot

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mkarpich/teenspeak-bot/internal/models"
)

// emotionNames maps machine-readable emotional states to the Russian
// labels shown to parents.
var emotionNames = map[models.EmotionalState]string{
	models.Angry:        "злость",
	models.Frustrated:   "раздражение",
	models.Sad:          "грусть",
	models.Anxious:      "тревога",
	models.Defensive:    "защищённость",
	models.Overwhelmed:  "перегруженность",
	models.Disconnected: "отчуждение",
	models.Confused:     "растерянность",
}

const analysisTemplate = `🔍 Анализ фразы: "%s"
%s
📊 ЧТО РЕБЁНОК ЧУВСТВУЕТ:
%s

💭 ЧТО НА САМОМ ДЕЛЕ ОЗНАЧАЕТ:
%s

🎯 ПОТРЕБНОСТЬ РЕБЁНКА:
%s

💬 КАК ЛУЧШЕ ОТВЕТИТЬ:
%s

⚠️ ЧЕГО ИЗБЕГАТЬ:
%s`

// formatAnalysis renders an analysis as the message sent back to the
// parent. A non-empty safety notice is injected as an extra block right
// under the header.
func formatAnalysis(analysis *models.PhraseAnalysis) string {
	names := make([]string, 0, len(analysis.EmotionalState))
	for _, state := range analysis.EmotionalState {
		name, ok := emotionNames[state]
		if !ok {
			name = string(state)
		}
		names = append(names, name)
	}
	emotions := capitalizeFirst(strings.Join(names, ", "))

	var safety string
	if analysis.SafetyNotice != "" {
		safety = fmt.Sprintf("🚨 СРОЧНО О БЕЗОПАСНОСТИ:\n%s\n\n", analysis.SafetyNotice)
	}

	return fmt.Sprintf(analysisTemplate,
		analysis.OriginalPhrase,
		safety,
		emotions,
		analysis.TrueMeaning,
		analysis.ChildNeeds,
		bulleted(analysis.SuggestedResponses),
		bulleted(analysis.WhatToAvoid),
	)
}

const exampleTemplate = `📚 Пример фразы: "%s"

🎭 Эмоциональный контекст:
%s

💭 Типичное значение:
%s

💡 Рекомендуемый подход:
%s`

func formatExample(example models.ExamplePhrase) string {
	return fmt.Sprintf(exampleTemplate,
		example.Phrase,
		example.EmotionalContext,
		example.TypicalMeaning,
		example.SuggestedApproach,
	)
}

func bulleted(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
