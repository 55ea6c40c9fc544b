package bot

// User-facing texts. All content is Russian; the bot's audience is
// Russian-speaking parents of teenagers.
const (
	msgWelcome = `👋 Здравствуйте! Я — переводчик с подросткового.

Напишите фразу, которую сказал ваш ребёнок, и я помогу понять:
• что он чувствует на самом деле
• что стоит за его словами
• как лучше ответить, чтобы сохранить контакт

Выберите действие в меню или просто отправьте фразу сообщением.`

	msgHelp = `Я помогаю родителям понять, что стоит за словами подростка.

Команды:
/start — открыть главное меню
/help — эта справка

Просто отправьте фразу ребёнка сообщением — и я её разберу.`

	msgMainMenu = `🏠 Главное меню

Выберите действие или отправьте фразу для анализа.`

	msgEnterPhrase = `✍️ Напишите фразу, которую сказал ваш ребёнок.

Например: «Отстань, ты всё равно ничего не поймёшь»

Если хотите, добавьте контекст — что происходило перед этим.`

	msgExamples = `📚 Частые фразы подростков

Выберите фразу, чтобы посмотреть её разбор:`

	msgHowItWorks = `❓ Как это работает

1️⃣ Вы отправляете фразу, которую сказал ваш ребёнок.
2️⃣ Я анализирую её с учётом подростковой психологии.
3️⃣ Вы получаете разбор: эмоции, скрытый смысл, потребность ребёнка и готовые варианты ответа.

Анализ строится на базе типичных подростковых фраз и рекомендаций детских психологов.

⚠️ Это вспомогательный инструмент, а не замена консультации специалиста.`

	msgTips = `💡 Советы родителям подростков

1. Слушайте, не перебивая. Часто ребёнку нужно выговориться, а не получить совет.
2. Не обесценивайте чувства. «Ерунда, пройдёт» закрывает дверь к доверию.
3. Говорите о себе. «Я волнуюсь» работает лучше, чем «Ты опять...».
4. Уважайте личное пространство. Стук в дверь — это просто, но важно.
5. Выбирайте момент. Серьёзные разговоры не начинают на бегу.

Помните: за резкими словами почти всегда стоит потребность в поддержке.`

	msgAnalyzing   = "🔄 Анализирую фразу..."
	msgMoreOptions = "🔄 Подбираю ещё варианты ответа..."

	msgError = `⚠️ Упс! Что-то пошло не так.

Возможно, фраза слишком короткая или содержит только эмодзи.

Попробуйте написать полную фразу, которую сказал ребёнок.`

	msgRateLimited = "⏱ Слишком много запросов. Подождите %d сек. и попробуйте снова."

	msgFeedbackPrompt         = "Был ли анализ полезен?"
	msgFeedbackThanksPositive = "Спасибо за отзыв! 😊"
	msgFeedbackThanksNegative = "Спасибо за отзыв. Мы постараемся улучшить анализ."

	msgNoHistory      = "Сначала отправьте фразу для анализа — и я подберу варианты."
	msgNoSimilar      = "Похожих примеров в базе не нашлось. Попробуйте другую фразу!"
	msgUnknownCommand = "Не знаю такую команду. Отправьте /start, чтобы открыть меню."
)
