package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStoreSaveAndCount(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	count, err := store.EventsCount(ctx)
	if err != nil {
		t.Fatalf("EventsCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("count=%d want=0", count)
	}

	for i := 0; i < 3; i++ {
		payload := []byte(fmt.Sprintf(`{"event":"test_%d"}`, i))
		if err := store.SaveEvent(ctx, payload); err != nil {
			t.Fatalf("SaveEvent: %v", err)
		}
	}

	count, err = store.EventsCount(ctx)
	if err != nil {
		t.Fatalf("EventsCount: %v", err)
	}
	if count != 3 {
		t.Fatalf("count=%d want=3", count)
	}
}

func TestMemoryStoreCopiesPayload(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	payload := []byte(`{"event":"original"}`)
	if err := store.SaveEvent(context.Background(), payload); err != nil {
		t.Fatalf("SaveEvent: %v", err)
	}
	payload[0] = 'X'

	store.mu.RLock()
	defer store.mu.RUnlock()
	if store.events[0][0] != '{' {
		t.Fatal("stored payload aliases caller's slice")
	}
}

func TestMemoryStoreConcurrentWrites(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			payload := []byte(fmt.Sprintf(`{"event":"e%d"}`, n))
			if err := store.SaveEvent(context.Background(), payload); err != nil {
				t.Errorf("SaveEvent: %v", err)
			}
		}(i)
	}
	wg.Wait()

	count, err := store.EventsCount(context.Background())
	if err != nil {
		t.Fatalf("EventsCount: %v", err)
	}
	if count != 100 {
		t.Fatalf("count=%d want=100", count)
	}
}
