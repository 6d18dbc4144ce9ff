package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"wordbank/internal/domain"
	"wordbank/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// WordBankStore owns a user's word bank and collection
// Every committed mutation writes the full list back to its slot
type WordBankStore struct {
	kv     repository.KeyValueStore
	logger *zap.Logger
	newID  func() string
	intn   func(n int) int

	mu         sync.Mutex
	collator   *collate.Collator
	bank       []domain.WordEntry
	collection []domain.WordEntry
	sortMode   domain.SortMode
}

// StoreOption configures a WordBankStore
type StoreOption func(*WordBankStore)

// WithLocale sets the language used to compare words when sorting
func WithLocale(tag language.Tag) StoreOption {
	return func(s *WordBankStore) {
		s.collator = collate.New(tag)
	}
}

// WithIDGenerator replaces the entry id source. Generated ids must be unique
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *WordBankStore) {
		s.newID = newID
	}
}

// WithRand sets the randomness used by Shuffle
func WithRand(r *rand.Rand) StoreOption {
	return func(s *WordBankStore) {
		s.intn = r.IntN
	}
}

// NewWordBankStore creates an empty store backed by kv
func NewWordBankStore(kv repository.KeyValueStore, logger *zap.Logger, opts ...StoreOption) *WordBankStore {
	s := &WordBankStore{
		kv:         kv,
		logger:     logger,
		newID:      domain.NewEntryID,
		intn:       rand.IntN,
		collator:   collate.New(language.English),
		bank:       []domain.WordEntry{},
		collection: []domain.WordEntry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces in-memory state with the persisted lists
// Missing or malformed slots start as empty lists. A failed read returns an
// error and leaves the state untouched
func (s *WordBankStore) Load(ctx context.Context) error {
	bank, err := s.loadList(ctx, repository.SlotWordBank)
	if err != nil {
		return err
	}
	collection, err := s.loadList(ctx, repository.SlotCollection)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bank = bank
	s.collection = collection
	s.sortMode = domain.SortNone

	s.logger.Debug("Word bank loaded",
		zap.Int("bank_size", len(bank)),
		zap.Int("collection_size", len(collection)),
	)
	return nil
}

func (s *WordBankStore) loadList(ctx context.Context, key string) ([]domain.WordEntry, error) {
	value, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	if !ok {
		return []domain.WordEntry{}, nil
	}

	var entries []domain.WordEntry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		s.logger.Error("Malformed slot value, starting empty", zap.String("slot", key), zap.Error(err))
		return []domain.WordEntry{}, nil
	}
	if entries == nil {
		entries = []domain.WordEntry{}
	}
	return entries, nil
}

// AddEntry appends a new word pair to the bank
func (s *WordBankStore) AddEntry(foreign, native string) (domain.WordEntry, error) {
	foreign = strings.TrimSpace(foreign)
	native = strings.TrimSpace(native)

	switch {
	case foreign == "" && native == "":
		return domain.WordEntry{}, domain.ErrEmptyInput
	case foreign == native:
		return domain.WordEntry{}, domain.ErrDuplicateTranslation
	case foreign == "" || native == "":
		return domain.WordEntry{}, domain.ErrIncompleteInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.WordEntry{ID: s.newID(), Foreign: foreign, Native: native}
	s.bank = append(s.bank, entry)
	s.resortLocked()
	s.persistLocked(repository.SlotWordBank, s.bank)

	return entry, nil
}

// DeleteEntry removes the entry with id from the bank, if present
func (s *WordBankStore) DeleteEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteEntryLocked(id)
}

func (s *WordBankStore) deleteEntryLocked(id string) {
	if s.indexLocked(id) < 0 {
		return
	}

	s.bank = lo.Filter(s.bank, func(e domain.WordEntry, _ int) bool {
		return e.ID != id
	})
	s.persistLocked(repository.SlotWordBank, s.bank)
}

// DeleteAll empties the bank
func (s *WordBankStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.bank) == 0 {
		return domain.ErrBankEmpty
	}

	s.bank = []domain.WordEntry{}
	s.persistLocked(repository.SlotWordBank, s.bank)
	return nil
}

// Shuffle puts the bank in a uniformly random order
// An active sort mode is switched off, otherwise the next mutation would undo the shuffle
func (s *WordBankStore) Shuffle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortMode = domain.SortNone

	shuffled := slices.Clone(s.bank)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	s.bank = shuffled
	s.persistLocked(repository.SlotWordBank, s.bank)
}

// SetSortMode activates mode and resorts the bank
func (s *WordBankStore) SetSortMode(mode domain.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortMode = mode
	if s.resortLocked() {
		s.persistLocked(repository.SlotWordBank, s.bank)
	}
}

// resortLocked applies the active sort mode and reports whether the order changed
func (s *WordBankStore) resortLocked() bool {
	var field func(domain.WordEntry) string
	switch s.sortMode {
	case domain.SortByForeignAsc:
		field = func(e domain.WordEntry) string { return e.Foreign }
	case domain.SortByNativeAsc:
		field = func(e domain.WordEntry) string { return e.Native }
	default:
		return false
	}

	sorted := slices.Clone(s.bank)
	slices.SortStableFunc(sorted, func(a, b domain.WordEntry) int {
		return s.collator.CompareString(field(a), field(b))
	})

	if slices.EqualFunc(sorted, s.bank, func(a, b domain.WordEntry) bool { return a.ID == b.ID }) {
		return false
	}
	s.bank = sorted
	return true
}

// AddToCollection appends a copy of entry to the collection
func (s *WordBankStore) AddToCollection(entry domain.WordEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addToCollectionLocked(entry)
}

func (s *WordBankStore) addToCollectionLocked(entry domain.WordEntry) error {
	if lo.ContainsBy(s.collection, func(e domain.WordEntry) bool { return e.ID == entry.ID }) {
		return domain.ErrAlreadyInCollection
	}

	s.collection = append(s.collection, entry)
	s.persistLocked(repository.SlotCollection, s.collection)
	return nil
}

// DeleteFromCollection removes the entry with id from the collection only
func (s *WordBankStore) DeleteFromCollection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !lo.ContainsBy(s.collection, func(e domain.WordEntry) bool { return e.ID == id }) {
		return
	}

	s.collection = lo.Filter(s.collection, func(e domain.WordEntry, _ int) bool {
		return e.ID != id
	})
	s.persistLocked(repository.SlotCollection, s.collection)
}

// EditEntry replaces the words of a bank entry, keeping its id
// Unlike AddEntry the new words are not validated
func (s *WordBankStore) EditEntry(id, foreign, native string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domain.ErrEntryNotFound
	}

	s.bank[idx].Foreign = strings.TrimSpace(foreign)
	s.bank[idx].Native = strings.TrimSpace(native)
	s.resortLocked()
	s.persistLocked(repository.SlotWordBank, s.bank)
	return nil
}

// OnPrimaryAction handles the delete intent for a bank entry
func (s *WordBankStore) OnPrimaryAction(id string) {
	s.DeleteEntry(id)
}

// OnSecondaryAction handles the categorize intent: the bank entry is copied to the collection
func (s *WordBankStore) OnSecondaryAction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domain.ErrEntryNotFound
	}
	return s.addToCollectionLocked(s.bank[idx])
}

// Persist writes both lists to their slots
func (s *WordBankStore) Persist() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persistLocked(repository.SlotWordBank, s.bank)
	s.persistLocked(repository.SlotCollection, s.collection)
}

// persistLocked serializes the current list. Failures are logged only,
// in-memory state stays authoritative for the session
func (s *WordBankStore) persistLocked(key string, entries []domain.WordEntry) {
	if entries == nil {
		entries = []domain.WordEntry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		s.logger.Error("Failed to encode slot", zap.String("slot", key), zap.Error(err))
		return
	}

	if err := s.kv.Set(context.Background(), key, string(data)); err != nil {
		s.logger.Error("Failed to persist slot", zap.String("slot", key), zap.Error(err))
	}
}

func (s *WordBankStore) indexLocked(id string) int {
	return slices.IndexFunc(s.bank, func(e domain.WordEntry) bool { return e.ID == id })
}

// Bank returns the bank in its current order
func (s *WordBankStore) Bank() []domain.WordEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bank)
}

// Collection returns the collection in its current order
func (s *WordBankStore) Collection() []domain.WordEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.collection)
}

// SortMode returns the active sort mode
func (s *WordBankStore) SortMode() domain.SortMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortMode
}

// Entry looks up a bank entry by id
func (s *WordBankStore) Entry(id string) (domain.WordEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domain.WordEntry{}, false
	}
	return s.bank[idx], true
}
