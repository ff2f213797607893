package session

import (
	"testing"
	"time"

	"utmbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetPutDelete(t *testing.T) {
	store := NewStore[domain.Session]()

	_, ok := store.Get(123)
	assert.False(t, ok)

	sess := domain.NewSession("https://example.com")
	store.Put(123, sess)

	got, ok := store.Get(123)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", got.BaseURL)
	assert.Equal(t, domain.StateAwaitingSource, got.State)

	store.Delete(123)
	_, ok = store.Get(123)
	assert.False(t, ok)
}

func TestStore_PutOverwrites(t *testing.T) {
	store := NewStore[domain.Session]()

	store.Put(123, domain.NewSession("https://old.example.com"))
	store.Put(123, domain.NewSession("https://new.example.com"))

	got, ok := store.Get(123)
	assert.True(t, ok)
	assert.Equal(t, "https://new.example.com", got.BaseURL)
	assert.Empty(t, got.Source)
}

func TestStore_UsersAreIndependent(t *testing.T) {
	store := NewStore[domain.Session]()

	store.Put(1, domain.NewSession("https://one.example.com"))
	store.Put(2, domain.NewSession("https://two.example.com"))

	store.Delete(1)

	_, ok := store.Get(1)
	assert.False(t, ok)

	got, ok := store.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "https://two.example.com", got.BaseURL)
}

func TestStore_Sweep(t *testing.T) {
	store := NewStore[domain.Session]()

	store.Put(1, domain.NewSession("https://fresh.example.com"))
	store.Put(2, domain.NewSession("https://old.example.com"))

	store.mu.Lock()
	store.items[2].lastSeen = time.Now().Add(-2 * time.Hour)
	store.mu.Unlock()

	removed := store.Sweep(time.Hour)
	assert.Equal(t, 1, removed)

	_, ok := store.Get(1)
	assert.True(t, ok)
	_, ok = store.Get(2)
	assert.False(t, ok)
}

func TestStore_GetRefreshesActivity(t *testing.T) {
	store := NewStore[domain.Session]()
	store.Put(1, domain.NewSession("https://example.com"))

	store.mu.Lock()
	store.items[1].lastSeen = time.Now().Add(-2 * time.Hour)
	store.mu.Unlock()

	// A handler touching the session keeps it alive
	_, ok := store.Get(1)
	assert.True(t, ok)

	assert.Equal(t, 0, store.Sweep(time.Hour))
	_, ok = store.Get(1)
	assert.True(t, ok)
}

// Run with -race: handlers mutate session fields they got from Get
// while the sweeper runs. Sweep must only look at store-internal
// bookkeeping, never at the records themselves.
func TestStore_SweepConcurrentWithMutation(t *testing.T) {
	store := NewStore[domain.Session]()
	store.Put(1, domain.NewSession("https://example.com"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			if sess, ok := store.Get(1); ok {
				sess.State = domain.StateAwaitingMedium
				sess.Source = "vk"
			}
			store.Put(2, domain.NewSession("https://two.example.com"))
		}
	}()

	for i := 0; i < 1000; i++ {
		store.Sweep(time.Hour)
	}
	<-done

	_, ok := store.Get(1)
	assert.True(t, ok)
}
