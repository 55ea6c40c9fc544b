// Package history keeps an in-memory log of user interactions so the
// bot can re-run or annotate the most recent analysis per user.
package history

import (
	"sync"

	"github.com/mkarpich/teenspeak-bot/internal/models"
)

// Log stores interactions grouped by user. Safe for concurrent use.
type Log struct {
	mu      sync.Mutex
	byUser  map[int64][]models.UserInteraction
	maxSize int
}

// New creates a log keeping at most maxPerUser interactions per user.
// Older interactions are evicted first. maxPerUser <= 0 means unbounded.
func New(maxPerUser int) *Log {
	return &Log{
		byUser:  make(map[int64][]models.UserInteraction),
		maxSize: maxPerUser,
	}
}

// Record appends an interaction to the user's history.
func (l *Log) Record(interaction models.UserInteraction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := append(l.byUser[interaction.UserID], interaction)
	if l.maxSize > 0 && len(entries) > l.maxSize {
		entries = entries[len(entries)-l.maxSize:]
	}
	l.byUser[interaction.UserID] = entries
}

// ForUser returns a copy of the user's interactions in recording order.
func (l *Log) ForUser(userID int64) []models.UserInteraction {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.byUser[userID]
	out := make([]models.UserInteraction, len(entries))
	copy(out, entries)
	return out
}

// Latest returns the user's most recent interaction, if any.
func (l *Log) Latest(userID int64) (models.UserInteraction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.byUser[userID]
	if len(entries) == 0 {
		return models.UserInteraction{}, false
	}
	return entries[len(entries)-1], true
}

// AddFeedback attaches feedback to the user's most recent analyzed
// interaction. Returns false when the user has no analyzed interaction.
func (l *Log) AddFeedback(userID int64, feedback models.Feedback) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.byUser[userID]
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].IsAnalyzed() {
			entries[i].Feedback = feedback
			return true
		}
	}
	return false
}
