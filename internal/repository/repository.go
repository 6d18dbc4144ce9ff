package repository

import (
	"context"
)

// Slot names used for persisted per-user values
const (
	SlotWordBank    = "word-bank"
	SlotCollection  = "collection"
	SlotHasLaunched = "has-launched"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
	AuthorizeUser(ctx context.Context, userID int64) error
	EnsureUserExists(ctx context.Context, userID int64) error
}

// SlotRepository stores opaque string values per user and key
type SlotRepository interface {
	GetSlot(ctx context.Context, userID int64, key string) (string, bool, error)
	SetSlot(ctx context.Context, userID int64, key, value string) error
}

// KeyValueStore is a single user's view of the slot storage
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Scoped binds a SlotRepository to one user
func Scoped(repo SlotRepository, userID int64) KeyValueStore {
	return &scopedStore{repo: repo, userID: userID}
}

type scopedStore struct {
	repo   SlotRepository
	userID int64
}

func (s *scopedStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.repo.GetSlot(ctx, s.userID, key)
}

func (s *scopedStore) Set(ctx context.Context, key, value string) error {
	return s.repo.SetSlot(ctx, s.userID, key, value)
}
