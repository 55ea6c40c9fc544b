package analyzer

import (
	"fmt"
	"strings"

	"github.com/mkarpich/teenspeak-bot/internal/models"
)

// maxPromptExamples bounds how many matched catalog entries are embedded
// into the prompt.
const maxPromptExamples = 2

const promptTemplate = `Ты опытный детский психолог, специализирующийся на подростковой психологии.

Родитель прислал фразу, которую сказал его ребёнок/подросток (возраст %s лет):
"%s"%s%s

Проанализируй эту фразу и предоставь структурированный ответ в следующем формате:

EMOTIONAL_STATE:
[Опиши основные эмоции, которые испытывает ребёнок. Используй слова: angry, frustrated, sad, anxious, defensive, overwhelmed, disconnected, confused]

TRUE_MEANING:
[Объясни в 2-3 предложениях, что на самом деле хочет сказать ребёнок]

CHILD_NEEDS:
[В 1-2 предложениях опиши, что нужно ребёнку в данный момент]

SUGGESTED_RESPONSES:
[Предложи 3 конкретных фразы, которые родитель может использовать в ответ. Каждая фраза должна быть естественной и поддерживающей]

WHAT_TO_AVOID:
[Укажи 3 конкретных действия или фразы, которых следует избегать]

Если фраза указывает на риск для жизни или здоровья ребёнка, добавь раздел:

SAFETY_NOTICE:
[Кратко объясни, почему ситуация требует немедленного внимания, и посоветуй обратиться к специалисту]

Ответ должен быть:
- Ёмким и практичным
- Поддерживающим для родителя
- Учитывающим возрастные особенности
- Без осуждения и критики`

// buildPrompt assembles the analysis prompt for one request, embedding
// optional context and up to maxPromptExamples similar catalog entries.
func buildPrompt(req *models.AnalysisRequest, similar []models.ExamplePhrase) string {
	var contextText string
	if req.HasContext() {
		contextText = fmt.Sprintf("\nДополнительный контекст: %s", req.Context)
	}

	var examplesText string
	if len(similar) > 0 {
		var b strings.Builder
		b.WriteString("\n\nПохожие примеры из базы:\n")
		for i, ex := range similar {
			if i == maxPromptExamples {
				break
			}
			fmt.Fprintf(&b, "- %q: %s\n", ex.Phrase, ex.TypicalMeaning)
		}
		examplesText = b.String()
	}

	return fmt.Sprintf(promptTemplate, req.AgeRange, req.Phrase, contextText, examplesText)
}
