package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory ReportStore for tests and for running
// without a configured storage account.
type MemoryStore struct {
	mu      sync.RWMutex
	records []ReportRecord
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save implements ReportStore.
func (s *MemoryStore) Save(_ context.Context, record ReportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// History implements ReportStore.
func (s *MemoryStore) History(_ context.Context, start, end time.Time) ([]ReportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []ReportRecord
	for _, record := range s.records {
		if record.GeneratedAt.Before(start) || record.GeneratedAt.After(end) {
			continue
		}
		matched = append(matched, record)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].GeneratedAt.Before(matched[j].GeneratedAt)
	})
	return matched, nil
}

// Count returns the number of stored records.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
