package handler

import (
	"fmt"
	"strings"
	"testing"

	"wordbank/internal/domain"
	"wordbank/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(n int) []domain.WordEntry {
	entries := make([]domain.WordEntry, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, testutil.NewTestEntry(
			fmt.Sprintf("id-%d", i),
			fmt.Sprintf("foreign-%d", i),
			fmt.Sprintf("native-%d", i),
		))
	}
	return entries
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		page          int
		expectedStart int
		expectedEnd   int
		expectedPage  int
		expectedPages int
	}{
		{name: "empty bank", total: 0, page: 1, expectedStart: 0, expectedEnd: 0, expectedPage: 1, expectedPages: 1},
		{name: "single page", total: 5, page: 1, expectedStart: 0, expectedEnd: 5, expectedPage: 1, expectedPages: 1},
		{name: "second page", total: 10, page: 2, expectedStart: 7, expectedEnd: 10, expectedPage: 2, expectedPages: 2},
		{name: "page zero defaults to 1", total: 10, page: 0, expectedStart: 0, expectedEnd: 7, expectedPage: 1, expectedPages: 2},
		{name: "page past the end is clamped", total: 14, page: 9, expectedStart: 7, expectedEnd: 14, expectedPage: 2, expectedPages: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, page, pages := pageBounds(tt.total, tt.page)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedPages, pages)
		})
	}
}

func TestBankView(t *testing.T) {
	entries := makeEntries(9)

	text, markup := bankView(entries, domain.SortByForeignAsc, 2)

	assert.Contains(t, text, "Word bank (9)")
	assert.Contains(t, text, "foreign word A→Z")
	assert.Contains(t, text, "8. foreign-8 — native-8")
	assert.NotContains(t, text, "1. foreign-1")
	assert.Contains(t, text, "Page 2 of 2")

	// two entry rows, navigation, sort/shuffle, delete all, back
	require.Len(t, markup.InlineKeyboard, 6)

	entryRow := markup.InlineKeyboard[0]
	require.Len(t, entryRow, 3)
	assert.Equal(t, btnDelete.Unique, entryRow[0].Unique)
	assert.Equal(t, "id-8:2", entryRow[0].Data)
	assert.Equal(t, btnCollect.Unique, entryRow[1].Unique)
	assert.Equal(t, "id-8", entryRow[1].Data)
	assert.Equal(t, btnEdit.Unique, entryRow[2].Unique)
	assert.Equal(t, "id-8", entryRow[2].Data)

	navRow := markup.InlineKeyboard[2]
	require.Len(t, navRow, 1)
	assert.Equal(t, btnPage.Unique, navRow[0].Unique)
	assert.Equal(t, "1", navRow[0].Data)
}

func TestBankView_DeletePayloadKeepsClampedPage(t *testing.T) {
	_, markup := bankView(makeEntries(8), domain.SortNone, 5)

	id, page := parseEntryPayload(markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, "id-8", id)
	assert.Equal(t, 2, page)
}

func TestParseEntryPayload(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedID   string
		expectedPage int
	}{
		{name: "id and page", input: "0190a1b2-c3d4:3", expectedID: "0190a1b2-c3d4", expectedPage: 3},
		{name: "id only", input: "0190a1b2-c3d4", expectedID: "0190a1b2-c3d4", expectedPage: 1},
		{name: "bad page", input: "id-1:x", expectedID: "id-1", expectedPage: 1},
		{name: "page zero", input: "id-1:0", expectedID: "id-1", expectedPage: 1},
		{name: "round trip", input: entryPayload("id-9", 4), expectedID: "id-9", expectedPage: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, page := parseEntryPayload(tt.input)
			assert.Equal(t, tt.expectedID, id)
			assert.Equal(t, tt.expectedPage, page)
		})
	}
}

func TestBankView_Empty(t *testing.T) {
	text, markup := bankView(nil, domain.SortNone, 1)

	assert.Contains(t, text, "Word bank (0)")
	assert.Contains(t, text, "as added")
	assert.Contains(t, text, "empty")
	assert.NotContains(t, text, "Page")
	// sort/shuffle, delete all, back
	assert.Len(t, markup.InlineKeyboard, 3)
}

func TestCollectionView(t *testing.T) {
	text, markup := collectionView(makeEntries(2))

	assert.Contains(t, text, "Collection (2)")
	assert.Contains(t, text, "2. foreign-2 — native-2")
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Equal(t, btnUncollect.Unique, markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "id-1", markup.InlineKeyboard[0][0].Data)
}

func TestSortView_MarksActiveMode(t *testing.T) {
	_, markup := sortView(domain.SortByNativeAsc)

	require.Len(t, markup.InlineKeyboard, 4)
	assert.False(t, strings.HasPrefix(markup.InlineKeyboard[0][0].Text, "✅"))
	assert.True(t, strings.HasPrefix(markup.InlineKeyboard[1][0].Text, "✅"))
	assert.Equal(t, btnSortMode.Unique, markup.InlineKeyboard[1][0].Unique)
	assert.Equal(t, "native", markup.InlineKeyboard[1][0].Data)
	assert.Equal(t, btnSortMode.Unique, markup.InlineKeyboard[2][0].Unique)
	assert.Equal(t, "none", markup.InlineKeyboard[2][0].Data)
}

func TestNoticeText(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "empty input", err: domain.ErrEmptyInput, expected: "You haven't entered any words yet!"},
		{name: "duplicate translation", err: domain.ErrDuplicateTranslation, expected: "The foreign word is the same as the translation!"},
		{name: "bank empty", err: domain.ErrBankEmpty, expected: "There are no words to delete!"},
		{name: "already in collection", err: domain.ErrAlreadyInCollection, expected: "This word is already in your collection."},
		{name: "wrapped error", err: fmt.Errorf("add: %w", domain.ErrIncompleteInput), expected: "Enter both the foreign word and its translation."},
		{name: "unknown error", err: fmt.Errorf("db error"), expected: "Something went wrong. Try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, noticeText(tt.err))
		})
	}
}

func TestParseEditInput(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedForeign string
		expectedNative  string
		expectedOK      bool
	}{
		{name: "hyphen", input: "gato - cat", expectedForeign: "gato", expectedNative: "cat", expectedOK: true},
		{name: "em dash", input: "perro — dog", expectedForeign: "perro", expectedNative: "dog", expectedOK: true},
		{name: "en dash", input: "ala – wing", expectedForeign: "ala", expectedNative: "wing", expectedOK: true},
		{name: "hyphenated word kept", input: "e-mail - correo", expectedForeign: "e-mail", expectedNative: "correo", expectedOK: true},
		{name: "no separator", input: "gato cat", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foreign, native, ok := parseEditInput(tt.input)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedForeign, foreign)
			assert.Equal(t, tt.expectedNative, native)
		})
	}
}
