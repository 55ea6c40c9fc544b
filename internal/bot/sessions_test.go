package bot

import (
	"sync"
	"testing"
)

func TestSessionStoreDefaultsToIdle(t *testing.T) {
	store := newSessionStore()

	if got := store.get(1); got != stateIdle {
		t.Errorf("get(unknown) = %v, want stateIdle", got)
	}
}

func TestSessionStoreSetGetClear(t *testing.T) {
	store := newSessionStore()

	store.set(1, stateWaitingForPhrase)
	if got := store.get(1); got != stateWaitingForPhrase {
		t.Errorf("get(1) = %v, want stateWaitingForPhrase", got)
	}

	// Other users are unaffected.
	if got := store.get(2); got != stateIdle {
		t.Errorf("get(2) = %v, want stateIdle", got)
	}

	store.clear(1)
	if got := store.get(1); got != stateIdle {
		t.Errorf("get(1) after clear = %v, want stateIdle", got)
	}
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	store := newSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.set(userID, stateProcessing)
			store.get(userID)
			store.clear(userID)
		}(int64(i % 5))
	}
	wg.Wait()
}
