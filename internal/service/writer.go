package service

import (
	"context"
	"sync"

	"wordbank/internal/repository"

	"go.uber.org/zap"
)

// AsyncWriter is a KeyValueStore that hands writes to a background goroutine.
// Pending values are coalesced per key, so the last value set for a key is
// always the last one written. Write failures are logged and dropped.
type AsyncWriter struct {
	kv     repository.KeyValueStore
	logger *zap.Logger

	mu      sync.Mutex
	pending map[string]string
	order   []string
	closed  bool

	// held while a batch is taken and written, keeps batches in order
	writeMu sync.Mutex

	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

// NewAsyncWriter starts a writer in front of kv. Close must be called to stop it
func NewAsyncWriter(kv repository.KeyValueStore, logger *zap.Logger) *AsyncWriter {
	w := &AsyncWriter{
		kv:      kv,
		logger:  logger,
		pending: make(map[string]string),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.run()
	return w
}

// Get returns a pending value if one is queued, otherwise reads through
func (w *AsyncWriter) Get(ctx context.Context, key string) (string, bool, error) {
	w.mu.Lock()
	value, ok := w.pending[key]
	w.mu.Unlock()

	if ok {
		return value, true, nil
	}
	return w.kv.Get(ctx, key)
}

// Set queues value for key and returns immediately
// After Close the write goes straight to the underlying store
func (w *AsyncWriter) Set(ctx context.Context, key, value string) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return w.kv.Set(ctx, key, value)
	}

	if _, queued := w.pending[key]; !queued {
		w.order = append(w.order, key)
	}
	w.pending[key] = value
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
	return nil
}

// Flush writes everything queued so far before returning
func (w *AsyncWriter) Flush() {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	pending, order := w.pending, w.order
	w.pending = make(map[string]string)
	w.order = nil
	w.mu.Unlock()

	for _, key := range order {
		if err := w.kv.Set(context.Background(), key, pending[key]); err != nil {
			w.logger.Error("Failed to write slot", zap.String("slot", key), zap.Error(err))
		}
	}
}

// Close drains pending writes and stops the background goroutine
func (w *AsyncWriter) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	<-w.stopped
}

func (w *AsyncWriter) run() {
	defer close(w.stopped)

	for {
		select {
		case <-w.wake:
			w.Flush()
		case <-w.done:
			w.Flush()
			return
		}
	}
}
