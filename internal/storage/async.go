package storage

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultSaveTimeout = 30 * time.Second

// AsyncSink persists records on background goroutines. Submit returns
// immediately; save failures are logged and dropped, never retried
// synchronously.
type AsyncSink struct {
	store   ReportStore
	logger  zerolog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewAsyncSink wraps a store in a fire-and-forget sink.
func NewAsyncSink(store ReportStore, logger zerolog.Logger) *AsyncSink {
	return &AsyncSink{
		store:   store,
		logger:  logger,
		timeout: defaultSaveTimeout,
	}
}

// Submit implements Sink.
func (s *AsyncSink) Submit(record ReportRecord) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.store.Save(ctx, record); err != nil {
			s.logger.Error().
				Err(err).
				Str("report_id", record.RowID).
				Msg("report persistence failed")
		}
	}()
}

// Drain waits for in-flight saves, for shutdown.
func (s *AsyncSink) Drain() {
	s.wg.Wait()
}

// SyncSink saves synchronously. Tests substitute it for AsyncSink to
// assert persistence without racing the test process.
type SyncSink struct {
	Store  ReportStore
	Logger zerolog.Logger
}

// Submit implements Sink.
func (s SyncSink) Submit(record ReportRecord) {
	if err := s.Store.Save(context.Background(), record); err != nil {
		s.Logger.Error().
			Err(err).
			Str("report_id", record.RowID).
			Msg("report persistence failed")
	}
}
