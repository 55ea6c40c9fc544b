package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mkarpich/teenspeak-bot/internal/models"
)

func analyzedInteraction(userID int64, phrase string) models.UserInteraction {
	return models.UserInteraction{
		UserID:    userID,
		Phrase:    phrase,
		Timestamp: time.Now(),
		Analysis: &models.PhraseAnalysis{
			OriginalPhrase:  phrase,
			EmotionalState:  []models.EmotionalState{models.Angry},
			ConfidenceScore: models.ParsedConfidence,
		},
	}
}

func TestRecordAndLatest(t *testing.T) {
	t.Parallel()

	log := New(0)
	if _, ok := log.Latest(1); ok {
		t.Fatal("Latest reported entry for empty log")
	}

	log.Record(analyzedInteraction(1, "первая"))
	log.Record(analyzedInteraction(1, "вторая"))

	latest, ok := log.Latest(1)
	if !ok {
		t.Fatal("Latest ok=false after records")
	}
	if latest.Phrase != "вторая" {
		t.Errorf("Latest phrase=%q want=%q", latest.Phrase, "вторая")
	}
}

func TestForUserReturnsCopy(t *testing.T) {
	t.Parallel()

	log := New(0)
	log.Record(analyzedInteraction(5, "фраза"))

	got := log.ForUser(5)
	if len(got) != 1 {
		t.Fatalf("entries=%d want=1", len(got))
	}
	got[0].Phrase = "mutated"
	if fresh := log.ForUser(5); fresh[0].Phrase == "mutated" {
		t.Fatal("ForUser exposes internal slice")
	}
}

func TestEviction(t *testing.T) {
	t.Parallel()

	log := New(3)
	for i := 0; i < 5; i++ {
		log.Record(analyzedInteraction(2, fmt.Sprintf("фраза %d", i)))
	}

	got := log.ForUser(2)
	if len(got) != 3 {
		t.Fatalf("entries=%d want=3", len(got))
	}
	if got[0].Phrase != "фраза 2" {
		t.Errorf("oldest kept=%q want=%q", got[0].Phrase, "фраза 2")
	}
}

func TestAddFeedback(t *testing.T) {
	t.Parallel()

	log := New(0)
	if log.AddFeedback(9, models.FeedbackPositive) {
		t.Fatal("AddFeedback succeeded on empty history")
	}

	// Unanalyzed interaction is skipped.
	log.Record(models.UserInteraction{UserID: 9, Phrase: "без анализа", Timestamp: time.Now()})
	if log.AddFeedback(9, models.FeedbackPositive) {
		t.Fatal("AddFeedback attached to unanalyzed interaction")
	}

	log.Record(analyzedInteraction(9, "старая"))
	log.Record(analyzedInteraction(9, "новая"))
	if !log.AddFeedback(9, models.FeedbackNegative) {
		t.Fatal("AddFeedback failed with analyzed history")
	}

	entries := log.ForUser(9)
	last := entries[len(entries)-1]
	if last.Feedback != models.FeedbackNegative {
		t.Errorf("feedback=%q want=%q", last.Feedback, models.FeedbackNegative)
	}
	if entries[len(entries)-2].Feedback != "" {
		t.Error("feedback attached to older interaction")
	}
}

func TestUsersIsolated(t *testing.T) {
	t.Parallel()

	log := New(0)
	log.Record(analyzedInteraction(1, "от первого"))
	log.Record(analyzedInteraction(2, "от второго"))

	if got := log.ForUser(1); len(got) != 1 || got[0].Phrase != "от первого" {
		t.Errorf("user 1 history=%v", got)
	}
	if got := log.ForUser(2); len(got) != 1 || got[0].Phrase != "от второго" {
		t.Errorf("user 2 history=%v", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	log := New(100)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Record(analyzedInteraction(int64(n%5), fmt.Sprintf("фраза %d", n)))
			log.ForUser(int64(n % 5))
			log.Latest(int64(n % 5))
		}(i)
	}
	wg.Wait()

	total := 0
	for id := int64(0); id < 5; id++ {
		total += len(log.ForUser(id))
	}
	if total != 50 {
		t.Fatalf("total entries=%d want=50", total)
	}
}
