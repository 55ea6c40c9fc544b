package bot

import "sync"

// dialogState tracks where a user is in the decode conversation.
type dialogState int

const (
	stateIdle dialogState = iota
	stateWaitingForPhrase
	stateProcessing
)

// sessionStore holds per-user dialog state. Updates are handled on
// separate goroutines, so access is guarded.
type sessionStore struct {
	mu     sync.Mutex
	states map[int64]dialogState
}

func newSessionStore() *sessionStore {
	return &sessionStore{states: make(map[int64]dialogState)}
}

func (s *sessionStore) get(userID int64) dialogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[userID]
}

func (s *sessionStore) set(userID int64, state dialogState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}

func (s *sessionStore) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
