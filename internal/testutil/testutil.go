package testutil

import (
	"encoding/json"
	"fmt"

	"wordbank/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test word entry
func NewTestEntry(id, foreign, native string) domain.WordEntry {
	return domain.WordEntry{
		ID:      id,
		Foreign: foreign,
		Native:  native,
	}
}

// SequentialIDs returns an id generator yielding "1", "2", "3", ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%d", n)
	}
}

// EncodeEntries serializes entries the way they are stored in a slot
func EncodeEntries(entries ...domain.WordEntry) string {
	if entries == nil {
		entries = []domain.WordEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// ForeignWords lists the foreign side of entries in order
func ForeignWords(entries []domain.WordEntry) []string {
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		words = append(words, e.Foreign)
	}
	return words
}

// EntryIDs lists entry ids in order
func EntryIDs(entries []domain.WordEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}
