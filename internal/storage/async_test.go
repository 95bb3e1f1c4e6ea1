package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore rejects every save and counts attempts.
type failingStore struct {
	mu    sync.Mutex
	calls int
}

func (s *failingStore) Save(context.Context, ReportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return errors.New("storage unavailable")
}

func (s *failingStore) History(context.Context, time.Time, time.Time) ([]ReportRecord, error) {
	return nil, errors.New("storage unavailable")
}

func TestAsyncSink_SavesAfterDrain(t *testing.T) {
	store := NewMemoryStore()
	sink := NewAsyncSink(store, zerolog.Nop())

	for i := 0; i < 10; i++ {
		sink.Submit(recordAt("r", time.Now()))
	}
	sink.Drain()

	assert.Equal(t, 10, store.Count())
}

func TestAsyncSink_FailureIsSwallowed(t *testing.T) {
	store := &failingStore{}
	sink := NewAsyncSink(store, zerolog.Nop())

	// Submit must not panic or surface the error.
	sink.Submit(recordAt("r", time.Now()))
	sink.Drain()

	assert.Equal(t, 1, store.calls)
}

func TestSyncSink(t *testing.T) {
	store := NewMemoryStore()
	SyncSink{Store: store, Logger: zerolog.Nop()}.Submit(recordAt("r", time.Now()))
	require.Equal(t, 1, store.Count())

	// Failures are logged, not returned.
	SyncSink{Store: &failingStore{}, Logger: zerolog.Nop()}.Submit(recordAt("r", time.Now()))
}
