package analytics

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mkarpich/teenspeak-bot/internal/storage"
)

// DefaultSessionWindow is how long a user may stay inactive before the
// next event starts a new session.
const DefaultSessionWindow = 30 * time.Minute

const storeTimeout = 5 * time.Second

type session struct {
	id                string
	started           time.Time
	lastActivity      time.Time
	phrasesDecoded    int
	examplesViewed    int
	errorsEncountered int
	successfulDecodes int
	previousID        string
	sinceLastMinutes  int
}

// Tracker groups events into per-user sessions and forwards them to the
// event store. Store writes are fire-and-forget: a failed write is
// logged and dropped. Safe for concurrent use.
type Tracker struct {
	mu            sync.Mutex
	sessions      map[int64]*session
	sessionWindow time.Duration
	store         storage.EventStore
	logger        *zap.Logger
	now           func() time.Time
}

// NewTracker creates a tracker writing to store. A nil store disables
// persistence; events are still logged.
func NewTracker(store storage.EventStore, logger *zap.Logger) *Tracker {
	return &Tracker{
		sessions:      make(map[int64]*session),
		sessionWindow: DefaultSessionWindow,
		store:         store,
		logger:        logger,
		now:           time.Now,
	}
}

// getOrCreateSession returns the user's current session id, rolling the
// session over when the user has been inactive longer than the session
// window. The rolled-over session emits a session_ended event.
func (t *Tracker) getOrCreateSession(userID int64) (string, bool) {
	now := t.now()

	t.mu.Lock()
	sess, ok := t.sessions[userID]
	if !ok {
		sess = &session{id: uuid.NewString(), started: now, lastActivity: now}
		t.sessions[userID] = sess
		t.mu.Unlock()
		return sess.id, true
	}

	idle := now.Sub(sess.lastActivity)
	if idle <= t.sessionWindow {
		sess.lastActivity = now
		id := sess.id
		t.mu.Unlock()
		return id, false
	}

	ended := t.sessionEndedEvent(userID, sess, now)
	fresh := &session{
		id:               uuid.NewString(),
		started:          now,
		lastActivity:     now,
		previousID:       sess.id,
		sinceLastMinutes: int(idle.Minutes()),
	}
	t.sessions[userID] = fresh
	t.mu.Unlock()

	t.emit(ended)
	return fresh.id, true
}

func (t *Tracker) sessionEndedEvent(userID int64, sess *session, now time.Time) Event {
	return Event{
		Event: EventSessionEnded,
		Properties: map[string]interface{}{
			"user_id":             strconv.FormatInt(userID, 10),
			"timestamp":           now.Format(time.RFC3339),
			"session_id":          sess.id,
			"session_duration_ms": now.Sub(sess.started).Milliseconds(),
			"phrases_decoded":     sess.phrasesDecoded,
			"examples_viewed":     sess.examplesViewed,
			"errors_encountered":  sess.errorsEncountered,
			"successful_decodes":  sess.successfulDecodes,
		},
	}
}

func (t *Tracker) baseProps(userID int64, sessionID string) map[string]interface{} {
	return map[string]interface{}{
		"user_id":    strconv.FormatInt(userID, 10),
		"timestamp":  t.now().Format(time.RFC3339),
		"session_id": sessionID,
	}
}

func (t *Tracker) updateSession(userID int64, update func(*session)) {
	t.mu.Lock()
	if sess, ok := t.sessions[userID]; ok {
		update(sess)
	}
	t.mu.Unlock()
}

// TrackBotStarted records a /start, opening a session when none is live.
func (t *Tracker) TrackBotStarted(userID int64, source string) {
	sessionID, isNew := t.getOrCreateSession(userID)

	props := t.baseProps(userID, sessionID)
	props["source"] = source
	props["platform"] = "telegram"
	props["language"] = "ru"
	t.emit(Event{Event: EventBotStarted, Properties: props})

	if isNew {
		t.trackSessionStarted(userID, sessionID)
	}
}

func (t *Tracker) trackSessionStarted(userID int64, sessionID string) {
	props := t.baseProps(userID, sessionID)

	t.mu.Lock()
	if sess, ok := t.sessions[userID]; ok && sess.previousID != "" {
		props["previous_session_id"] = sess.previousID
		props["time_since_last_session_minutes"] = sess.sinceLastMinutes
	}
	t.mu.Unlock()

	t.emit(Event{Event: EventSessionStarted, Properties: props})
}

func (t *Tracker) TrackMainMenuOpened(userID int64) {
	sessionID, _ := t.getOrCreateSession(userID)
	t.emit(Event{Event: EventMainMenuOpened, Properties: t.baseProps(userID, sessionID)})
}

func (t *Tracker) TrackDecodeInitiated(userID int64, entryPoint string) {
	sessionID, _ := t.getOrCreateSession(userID)

	props := t.baseProps(userID, sessionID)
	props["entry_point"] = entryPoint
	t.emit(Event{Event: EventDecodeInitiated, Properties: props})
}

// TrackPhraseSubmitted records a submitted phrase with derived metadata.
// Only derived properties leave the process; the phrase text itself is
// not part of the event.
func (t *Tracker) TrackPhraseSubmitted(userID int64, phrase string) {
	sessionID, _ := t.getOrCreateSession(userID)

	props := t.baseProps(userID, sessionID)
	props["phrase_length"] = len([]rune(phrase))
	props["phrase_words_count"] = len(strings.Fields(phrase))
	props["contains_emoji"] = containsEmoji(phrase)
	props["language_detected"] = detectLanguage(phrase)
	props["phrase_category"] = DetectCategory(phrase)
	t.emit(Event{Event: EventPhraseSubmitted, Properties: props})

	t.updateSession(userID, func(s *session) { s.phrasesDecoded++ })
}

func (t *Tracker) TrackAPIRequest(userID int64, requestID string) {
	sessionID, _ := t.getOrCreateSession(userID)

	props := t.baseProps(userID, sessionID)
	props["request_id"] = requestID
	props["prompt_template"] = "v2"
	t.emit(Event{Event: EventAPIRequestSent, Properties: props})
}

func (t *Tracker) TrackDecodeCompleted(userID int64, requestID string, responseTime time.Duration, category string, suggestions int) {
	sessionID, _ := t.getOrCreateSession(userID)

	props := t.baseProps(userID, sessionID)
	props["request_id"] = requestID
	props["response_time_ms"] = responseTime.Milliseconds()
	props["phrase_category"] = category
	props["suggestions_count"] = suggestions
	t.emit(Event{Event: EventDecodeCompleted, Properties: props})

	t.updateSession(userID, func(s *session) { s.successfulDecodes++ })
}

func (t *Tracker) TrackDecodeFailed(userID int64, errorType, errorMessage string) {
	sessionID, _ := t.getOrCreateSession(userID)

	props := t.baseProps(userID, sessionID)
	props["error_type"] = errorType
	props["error_message"] = errorMessage
	props["retry_attempted"] = false
	t.emit(Event{Event: EventDecodeFailed, Properties: props})

	t.updateSession(userID, func(s *session) { s.errorsEncountered++ })
}

func (t *Tracker) TrackButtonClick(userID int64, buttonID, screen string) {
	sessionID, _ := t.getOrCreateSession(userID)

	props := t.baseProps(userID, sessionID)
	props["button_id"] = buttonID
	props["screen"] = screen
	props["context"] = "navigation"
	t.emit(Event{Event: EventButtonClicked, Properties: props})
}

func (t *Tracker) TrackExampleViewed(userID int64, exampleID string, position int) {
	sessionID, _ := t.getOrCreateSession(userID)

	props := t.baseProps(userID, sessionID)
	props["example_id"] = exampleID
	props["example_position"] = position
	t.emit(Event{Event: EventExampleViewed, Properties: props})

	t.updateSession(userID, func(s *session) { s.examplesViewed++ })
}

func (t *Tracker) TrackHowItWorksViewed(userID int64) {
	sessionID, _ := t.getOrCreateSession(userID)
	t.emit(Event{Event: EventHowItWorksViewed, Properties: t.baseProps(userID, sessionID)})
}

func (t *Tracker) TrackTipsViewed(userID int64) {
	sessionID, _ := t.getOrCreateSession(userID)
	t.emit(Event{Event: EventTipsViewed, Properties: t.baseProps(userID, sessionID)})
}

func (t *Tracker) TrackMoreOptionsRequested(userID int64, category string) {
	sessionID, _ := t.getOrCreateSession(userID)

	props := t.baseProps(userID, sessionID)
	props["original_phrase_category"] = category
	t.emit(Event{Event: EventMoreOptionsRequested, Properties: props})
}

func (t *Tracker) TrackSimilarExamplesRequested(userID int64) {
	sessionID, _ := t.getOrCreateSession(userID)
	t.emit(Event{Event: EventSimilarExamplesRequested, Properties: t.baseProps(userID, sessionID)})
}

// emit logs the event and hands it to the store without waiting for the
// write. Store failures are logged and dropped.
func (t *Tracker) emit(event Event) {
	t.logger.Info("analytics event",
		zap.String("event", string(event.Event)),
		zap.Any("properties", event.Properties))

	if t.store == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		t.logger.Warn("failed to marshal analytics event", zap.Error(err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := t.store.SaveEvent(ctx, payload); err != nil {
			t.logger.Warn("failed to store analytics event",
				zap.String("event", string(event.Event)),
				zap.Error(err))
		}
	}()
}

// DetectCategory buckets a phrase into a coarse emotional category by
// keyword. Keywords are matched as substrings of the lower-cased phrase.
func DetectCategory(phrase string) string {
	lower := strings.ToLower(phrase)
	switch {
	case containsAny(lower, "отстань", "уйди", "достал", "ненавижу"):
		return "anger"
	case containsAny(lower, "грустно", "плохо", "устал", "одиноко"):
		return "sadness"
	case containsAny(lower, "всё равно", "неважно", "пофиг"):
		return "dismissive"
	case containsAny(lower, "не понима", "не знаю", "запутал"):
		return "confusion"
	default:
		return "neutral"
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func detectLanguage(phrase string) string {
	for _, r := range phrase {
		if unicode.Is(unicode.Cyrillic, r) {
			return "ru"
		}
	}
	return "en"
}

// containsEmoji reports whether the phrase contains a character from the
// common emoji blocks.
func containsEmoji(phrase string) bool {
	for _, r := range phrase {
		if (r >= 0x1F300 && r <= 0x1FAFF) ||
			(r >= 0x2600 && r <= 0x27BF) ||
			(r >= 0xFE00 && r <= 0xFE0F) {
			return true
		}
	}
	return false
}
