// Package examples holds the built-in catalog of typical teenager phrases
// with their decoded meanings. The catalog seeds the prompt with similar
// cases and backs the "examples" section of the bot menu.
package examples

import "github.com/mkarpich/teenspeak-bot/internal/models"

var catalog = []models.ExamplePhrase{
	{
		Phrase:            "Отстань!",
		Category:          "boundaries",
		EmotionalContext:  "Перегруженность, потребность в личном пространстве",
		TypicalMeaning:    "Мне нужно побыть одному, я не справляюсь с эмоциями",
		SuggestedApproach: "Дать пространство, но показать готовность выслушать: «Я рядом, когда захочешь поговорить»",
	},
	{
		Phrase:            "Ты ничего не понимаешь",
		Category:          "disconnection",
		EmotionalContext:  "Ощущение непонятости, отчуждение",
		TypicalMeaning:    "Мне кажется, что мой опыт обесценивают, меня не слышат",
		SuggestedApproach: "Признать чувства: «Помоги мне понять. Расскажи, как ты это видишь»",
	},
	{
		Phrase:            "Мне всё равно",
		Category:          "defense",
		EmotionalContext:  "Защитная реакция, скрытая боль",
		TypicalMeaning:    "Мне слишком больно об этом говорить, я защищаюсь равнодушием",
		SuggestedApproach: "Не давить, показать принятие: «Хорошо. Если передумаешь, я готов выслушать»",
	},
	{
		Phrase:            "Ненавижу школу!",
		Category:          "frustration",
		EmotionalContext:  "Злость, фрустрация, возможные проблемы в коллективе",
		TypicalMeaning:    "В школе происходит что-то, с чем я не справляюсь",
		SuggestedApproach: "Уточнить без осуждения: «Что сегодня случилось?» вместо «Школа — это важно»",
	},
	{
		Phrase:            "Не хочу об этом говорить",
		Category:          "boundaries",
		EmotionalContext:  "Потребность в контроле над разговором",
		TypicalMeaning:    "Тема слишком чувствительная, я не готов открыться сейчас",
		SuggestedApproach: "Уважать границу: «Понимаю. Я не буду настаивать, но я рядом»",
	},
	{
		Phrase:            "У меня всё нормально",
		Category:          "masking",
		EmotionalContext:  "Скрытие истинных чувств, нежелание беспокоить",
		TypicalMeaning:    "Что-то не так, но я не хочу или боюсь об этом рассказать",
		SuggestedApproach: "Мягко открыть дверь: «Рад слышать. Кстати, как дела с...?» — о конкретном",
	},
	{
		Phrase:            "Достали все!",
		Category:          "overwhelm",
		EmotionalContext:  "Эмоциональная перегрузка, истощение",
		TypicalMeaning:    "У меня накопилось слишком много, мне нужна разрядка",
		SuggestedApproach: "Не принимать на свой счёт: «Похоже, день был тяжёлый. Хочешь рассказать?»",
	},
	{
		Phrase:            "Уйду из дома!",
		Category:          "desperation",
		EmotionalContext:  "Отчаяние, ощущение безвыходности",
		TypicalMeaning:    "Я в отчаянии и не вижу другого способа быть услышанным",
		SuggestedApproach: "Отнестись серьёзно, не обесценивать: «Я слышу, что тебе очень тяжело. Давай поговорим»",
	},
}

var categoryNames = map[string]string{
	"boundaries":    "Границы и пространство",
	"disconnection": "Непонимание и отчуждение",
	"defense":       "Защитные реакции",
	"frustration":   "Фрустрация и злость",
	"masking":       "Скрытие чувств",
	"overwhelm":     "Перегруженность",
	"desperation":   "Отчаяние",
}

// Catalog returns a copy of all example phrases.
func Catalog() []models.ExamplePhrase {
	out := make([]models.ExamplePhrase, len(catalog))
	copy(out, catalog)
	return out
}

// FindSimilar returns catalog entries whose phrase matches the user's
// phrase by case-insensitive substring containment in either direction.
func FindSimilar(phrase string) []models.ExamplePhrase {
	var matches []models.ExamplePhrase
	for _, ex := range catalog {
		if ex.MatchesPattern(phrase) {
			matches = append(matches, ex)
		}
	}
	return matches
}

// ByCategory returns all catalog entries in the given category.
func ByCategory(category string) []models.ExamplePhrase {
	var matches []models.ExamplePhrase
	for _, ex := range catalog {
		if ex.Category == category {
			matches = append(matches, ex)
		}
	}
	return matches
}

// CategoryNames returns the full category key to display name mapping.
func CategoryNames() map[string]string {
	out := make(map[string]string, len(categoryNames))
	for key, name := range categoryNames {
		out[key] = name
	}
	return out
}
