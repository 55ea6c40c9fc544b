// Package bot wires the Telegram transport to the analyzer: message and
// callback routing, rate limiting, dialog state and analytics.
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mkarpich/teenspeak-bot/internal/analytics"
	"github.com/mkarpich/teenspeak-bot/internal/analyzer"
	"github.com/mkarpich/teenspeak-bot/internal/examples"
	"github.com/mkarpich/teenspeak-bot/internal/history"
	"github.com/mkarpich/teenspeak-bot/internal/models"
	"github.com/mkarpich/teenspeak-bot/internal/ratelimit"
)

// analysisTimeout bounds one full analysis cycle, including the
// completion provider call.
const analysisTimeout = 90 * time.Second

// Config holds the transport-level settings of the bot. Zero phrase
// bounds fall back to the model defaults.
type Config struct {
	Token          string
	AgeRange       string
	MinPhraseRunes int
	MaxPhraseRunes int
}

// Bot is the Telegram front of the service. Each update is handled on
// its own goroutine.
type Bot struct {
	api      *tgbotapi.BotAPI
	analyzer *analyzer.Service
	history  *history.Log
	limiter  *ratelimit.Limiter
	tracker  *analytics.Tracker
	sessions *sessionStore
	cfg      Config
	logger   *zap.Logger
}

func New(cfg Config, analyzer *analyzer.Service, history *history.Log, limiter *ratelimit.Limiter, tracker *analytics.Tracker, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if cfg.MinPhraseRunes <= 0 {
		cfg.MinPhraseRunes = models.MinPhraseRunes
	}
	if cfg.MaxPhraseRunes <= 0 {
		cfg.MaxPhraseRunes = models.MaxPhraseRunes
	}

	logger.Info("bot authorized", zap.String("username", api.Self.UserName))

	return &Bot{
		api:      api,
		analyzer: analyzer,
		history:  history,
		limiter:  limiter,
		tracker:  tracker,
		sessions: newSessionStore(),
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Start runs the update loop until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("bot started")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("stopping bot")
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			switch {
			case update.CallbackQuery != nil:
				go b.handleCallback(update.CallbackQuery)
			case update.Message != nil:
				go b.handleMessage(update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}
	if message.Text == "" {
		return
	}

	b.processPhrase(ctx, message)
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.sessions.clear(userID)
		source := "direct"
		if args := message.CommandArguments(); args != "" {
			source = args
		}
		b.tracker.TrackBotStarted(userID, source)
		b.sendWithKeyboard(chatID, msgWelcome, mainMenu())
	case "help":
		b.sendWithKeyboard(chatID, msgHelp, mainMenu())
	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// processPhrase runs the decode flow for a text message: rate limit
// gate, validation, analysis, response with follow-up keyboards.
func (b *Bot) processPhrase(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	phrase := strings.TrimSpace(message.Text)

	// Phrases can arrive without the decode button being pressed first.
	if b.sessions.get(userID) != stateWaitingForPhrase {
		b.tracker.TrackDecodeInitiated(userID, "direct_message")
	}

	if !b.limiter.CheckAndRecord(userID) {
		seconds, _ := b.limiter.WaitTime(userID)
		b.sendMessage(chatID, fmt.Sprintf(msgRateLimited, seconds))
		return
	}

	b.tracker.TrackPhraseSubmitted(userID, phrase)
	b.sessions.set(userID, stateProcessing)
	b.sendMessage(chatID, msgAnalyzing)

	b.runAnalysis(ctx, userID, chatID, phrase)
	b.sessions.clear(userID)
}

// runAnalysis validates the phrase, calls the analyzer and sends the
// formatted result followed by the feedback prompt.
func (b *Bot) runAnalysis(ctx context.Context, userID, chatID int64, phrase string) {
	var req *models.AnalysisRequest
	err := models.ValidatePhraseBounds(phrase, b.cfg.MinPhraseRunes, b.cfg.MaxPhraseRunes)
	if err == nil {
		req, err = models.NewAnalysisRequest(phrase, "", b.cfg.AgeRange)
	}
	if err != nil {
		b.logger.Info("phrase rejected",
			zap.Int64("user_id", userID),
			zap.Error(err))
		b.tracker.TrackDecodeFailed(userID, "validation_error", err.Error())
		b.sendWithKeyboard(chatID, msgError, errorMenu())
		return
	}

	requestID := uuid.NewString()
	b.tracker.TrackAPIRequest(userID, requestID)

	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	start := time.Now()
	analysis := b.analyzer.Analyze(ctx, req)

	b.history.Record(models.UserInteraction{
		UserID:    userID,
		Phrase:    phrase,
		Analysis:  analysis,
		Timestamp: time.Now(),
	})

	if analysis.IsFallback() {
		b.tracker.TrackDecodeFailed(userID, "api_error", "fallback analysis served")
	} else {
		b.tracker.TrackDecodeCompleted(userID, requestID, time.Since(start),
			analytics.DetectCategory(phrase), len(analysis.SuggestedResponses))
	}

	b.sendWithKeyboard(chatID, formatAnalysis(analysis), afterAnalysisMenu())
	b.sendWithKeyboard(chatID, msgFeedbackPrompt, feedbackMenu())
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	ctx := context.Background()
	data := query.Data

	// Feedback buttons are answered with a toast, everything else with
	// a bare acknowledgement.
	ackText := ""
	switch data {
	case cbFeedbackPositive:
		ackText = msgFeedbackThanksPositive
	case cbFeedbackNegative:
		ackText = msgFeedbackThanksNegative
	}
	callback := tgbotapi.NewCallback(query.ID, ackText)
	if _, err := b.api.Request(callback); err != nil {
		b.logger.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		return
	}

	userID := query.From.ID
	chatID := query.Message.Chat.ID

	b.tracker.TrackButtonClick(userID, data, "inline_keyboard")

	switch {
	case data == cbDecode:
		b.tracker.TrackDecodeInitiated(userID, "main_menu")
		b.sessions.set(userID, stateWaitingForPhrase)
		b.sendWithKeyboard(chatID, msgEnterPhrase, backToMenu())

	case data == cbExamples:
		b.sendWithKeyboard(chatID, msgExamples, examplesMenu(examples.Catalog()))

	case strings.HasPrefix(data, cbExamplePrefix):
		b.showExample(userID, chatID, strings.TrimPrefix(data, cbExamplePrefix))

	case data == cbHowItWorks:
		b.tracker.TrackHowItWorksViewed(userID)
		b.sendWithKeyboard(chatID, msgHowItWorks, backToMenu())

	case data == cbTips:
		b.tracker.TrackTipsViewed(userID)
		b.sendWithKeyboard(chatID, msgTips, backToMenu())

	case data == cbHome:
		b.tracker.TrackMainMenuOpened(userID)
		b.sessions.clear(userID)
		b.sendWithKeyboard(chatID, msgMainMenu, mainMenu())

	case data == cbMoreOptions:
		b.handleMoreOptions(ctx, userID, chatID)

	case data == cbSimilar:
		b.handleSimilar(userID, chatID)

	case data == cbFeedbackPositive:
		b.recordFeedback(userID, models.FeedbackPositive)

	case data == cbFeedbackNegative:
		b.recordFeedback(userID, models.FeedbackNegative)

	default:
		b.logger.Warn("unknown callback data", zap.String("data", data))
	}
}

func (b *Bot) showExample(userID, chatID int64, rawIndex string) {
	catalog := examples.Catalog()
	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 || index >= len(catalog) {
		b.logger.Warn("bad example index", zap.String("index", rawIndex))
		b.sendWithKeyboard(chatID, msgExamples, examplesMenu(catalog))
		return
	}

	example := catalog[index]
	b.tracker.TrackExampleViewed(userID, example.Phrase, index)
	b.sendWithKeyboard(chatID, formatExample(example), exampleViewMenu())
}

// handleMoreOptions re-analyzes the user's latest phrase to produce a
// fresh set of suggestions. Counts against the user's rate quota.
func (b *Bot) handleMoreOptions(ctx context.Context, userID, chatID int64) {
	latest, ok := b.history.Latest(userID)
	if !ok {
		b.sendWithKeyboard(chatID, msgNoHistory, mainMenu())
		return
	}

	b.tracker.TrackMoreOptionsRequested(userID, analytics.DetectCategory(latest.Phrase))

	if !b.limiter.CheckAndRecord(userID) {
		seconds, _ := b.limiter.WaitTime(userID)
		b.sendMessage(chatID, fmt.Sprintf(msgRateLimited, seconds))
		return
	}

	b.sendMessage(chatID, msgMoreOptions)
	b.runAnalysis(ctx, userID, chatID, latest.Phrase)
}

func (b *Bot) handleSimilar(userID, chatID int64) {
	latest, ok := b.history.Latest(userID)
	if !ok {
		b.sendWithKeyboard(chatID, msgNoHistory, mainMenu())
		return
	}

	b.tracker.TrackSimilarExamplesRequested(userID)

	matches := examples.FindSimilar(latest.Phrase)
	if len(matches) == 0 {
		b.sendWithKeyboard(chatID, msgNoSimilar, backToMenu())
		return
	}

	parts := make([]string, 0, len(matches))
	for _, match := range matches {
		parts = append(parts, formatExample(match))
	}
	b.sendWithKeyboard(chatID, strings.Join(parts, "\n\n"), afterAnalysisMenu())
}

func (b *Bot) recordFeedback(userID int64, feedback models.Feedback) {
	if !b.history.AddFeedback(userID, feedback) {
		b.logger.Debug("feedback without analyzed interaction", zap.Int64("user_id", userID))
		return
	}
	b.logger.Info("feedback recorded",
		zap.Int64("user_id", userID),
		zap.String("feedback", string(feedback)))
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
