// Package analytics tracks product events: what users do, how sessions
// unfold and whether decodes succeed. Events are logged and handed to an
// event store without ever blocking or failing the caller.
package analytics

// EventType names a tracked product event.
type EventType string

const (
	// Onboarding.
	EventBotStarted     EventType = "bot_started"
	EventMainMenuOpened EventType = "main_menu_opened"

	// Core function.
	EventDecodeInitiated EventType = "decode_initiated"
	EventPhraseSubmitted EventType = "phrase_submitted"
	EventAPIRequestSent  EventType = "api_request_sent"
	EventDecodeCompleted EventType = "decode_completed"
	EventDecodeFailed    EventType = "decode_failed"

	// User actions.
	EventButtonClicked    EventType = "button_clicked"
	EventExampleViewed    EventType = "example_viewed"
	EventHowItWorksViewed EventType = "how_it_works_viewed"
	EventTipsViewed       EventType = "tips_viewed"

	// Sessions.
	EventSessionStarted EventType = "session_started"
	EventSessionEnded   EventType = "session_ended"

	// Engagement.
	EventMoreOptionsRequested     EventType = "more_options_requested"
	EventSimilarExamplesRequested EventType = "similar_examples_requested"
	// EventUserReturned is reserved for re-engagement campaigns and is
	// not emitted yet.
	EventUserReturned EventType = "user_returned"
)

// Event is one tracked occurrence with its property map.
type Event struct {
	Event      EventType              `json:"event"`
	Properties map[string]interface{} `json:"properties"`
}
