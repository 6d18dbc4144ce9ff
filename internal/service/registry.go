package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wordbank/internal/repository"

	"go.uber.org/zap"
)

// StoreRegistry keeps one loaded WordBankStore per user
type StoreRegistry struct {
	slots  repository.SlotRepository
	logger *zap.Logger
	opts   []StoreOption
	now    func() time.Time

	mu     sync.Mutex
	stores map[int64]*registeredStore
}

type registeredStore struct {
	store    *WordBankStore
	writer   *AsyncWriter
	lastUsed time.Time
}

// NewStoreRegistry creates a registry; opts are applied to every store it creates
func NewStoreRegistry(slots repository.SlotRepository, logger *zap.Logger, opts ...StoreOption) *StoreRegistry {
	return &StoreRegistry{
		slots:  slots,
		logger: logger,
		opts:   opts,
		now:    time.Now,
		stores: make(map[int64]*registeredStore),
	}
}

// Get returns the user's store, loading it from storage on first use
// A store whose load failed is discarded so a later call retries the read
func (r *StoreRegistry) Get(ctx context.Context, userID int64) (*WordBankStore, error) {
	if store, ok := r.lookup(userID); ok {
		return store, nil
	}

	logger := r.logger.With(zap.Int64("user_id", userID))
	writer := NewAsyncWriter(repository.Scoped(r.slots, userID), logger)
	store := NewWordBankStore(writer, logger, r.opts...)
	if err := store.Load(ctx); err != nil {
		writer.Close()
		return nil, fmt.Errorf("load word bank: %w", err)
	}

	r.mu.Lock()
	if rs, ok := r.stores[userID]; ok {
		// A concurrent Get loaded the same user first
		rs.lastUsed = r.now()
		r.mu.Unlock()
		writer.Close()
		return rs.store, nil
	}
	r.stores[userID] = &registeredStore{
		store:    store,
		writer:   writer,
		lastUsed: r.now(),
	}
	r.mu.Unlock()

	return store, nil
}

func (r *StoreRegistry) lookup(userID int64) (*WordBankStore, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rs, ok := r.stores[userID]
	if !ok {
		return nil, false
	}
	rs.lastUsed = r.now()
	return rs.store, true
}

// EvictIdle drops stores unused for longer than maxIdle and returns how many were dropped
// Pending writes of an evicted store are flushed first
func (r *StoreRegistry) EvictIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	var idle []*registeredStore
	cutoff := r.now().Add(-maxIdle)
	for userID, rs := range r.stores {
		if rs.lastUsed.Before(cutoff) {
			idle = append(idle, rs)
			delete(r.stores, userID)
		}
	}
	r.mu.Unlock()

	for _, rs := range idle {
		rs.writer.Close()
	}
	return len(idle)
}

// Len returns the number of loaded stores
func (r *StoreRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Close flushes and drops every store
func (r *StoreRegistry) Close() {
	r.mu.Lock()
	stores := r.stores
	r.stores = make(map[int64]*registeredStore)
	r.mu.Unlock()

	for _, rs := range stores {
		rs.writer.Close()
	}
}
