package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkarpich/teenspeak-bot/internal/models"
)

// Callback data values carried by inline keyboard buttons.
const (
	cbDecode           = "decode"
	cbExamples         = "examples"
	cbExamplePrefix    = "example_"
	cbHowItWorks       = "how_it_works"
	cbTips             = "tips"
	cbHome             = "home"
	cbMoreOptions      = "more_options"
	cbSimilar          = "similar"
	cbFeedbackPositive = "feedback_positive"
	cbFeedbackNegative = "feedback_negative"
)

// phraseEmoji decorates example buttons; phrases without a dedicated
// emoji fall back to 💭.
var phraseEmoji = map[string]string{
	"Отстань!":                 "😤",
	"Ты ничего не понимаешь":   "🙄",
	"Мне всё равно":            "😑",
	"Ненавижу школу!":          "😠",
	"Не хочу об этом говорить": "🤐",
	"У меня всё нормально":     "😔",
	"Достали все!":             "😡",
	"Уйду из дома!":            "🚪",
}

func mainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Расшифровать фразу", cbDecode),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Посмотреть примеры", cbExamples),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Как это работает", cbHowItWorks),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💡 Советы родителям", cbTips),
		),
	)
}

func afterAnalysisMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Новая фраза", cbDecode),
			tgbotapi.NewInlineKeyboardButtonData("💬 Ещё варианты", cbMoreOptions),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Похожие примеры", cbSimilar),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", cbHome),
		),
	)
}

// examplesMenu lists every catalog phrase as its own row, one button
// per phrase, followed by a return-home row. Button callbacks carry the
// catalog index.
func examplesMenu(catalog []models.ExamplePhrase) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(catalog)+1)
	for i, ex := range catalog {
		emoji, ok := phraseEmoji[ex.Phrase]
		if !ok {
			emoji = "💭"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s %s", emoji, ex.Phrase),
				fmt.Sprintf("%s%d", cbExamplePrefix, i),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", cbHome),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func feedbackMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👍 Полезно", cbFeedbackPositive),
			tgbotapi.NewInlineKeyboardButtonData("👎 Не помогло", cbFeedbackNegative),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", cbHome),
		),
	)
}

func exampleViewMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Все примеры", cbExamples),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", cbHome),
		),
	)
}

func backToMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", cbHome),
		),
	)
}

func errorMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Попробовать снова", cbDecode),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", cbHome),
		),
	)
}
