package domain

import (
	"github.com/google/uuid"
)

// WordEntry represents a foreign/native word pair in the bank
// The native term is stored under "current" to match existing saved data
type WordEntry struct {
	Foreign string `json:"foreign"`
	Native  string `json:"current"`
	ID      string `json:"id"`
}

// NewEntryID returns a fresh time-ordered entry identifier
func NewEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SortMode is the single ordering rule applied to the bank
type SortMode int

const (
	SortNone SortMode = iota
	SortByForeignAsc
	SortByNativeAsc
)

// String returns a short name used in logs and callback data
func (m SortMode) String() string {
	switch m {
	case SortByForeignAsc:
		return "foreign"
	case SortByNativeAsc:
		return "native"
	default:
		return "none"
	}
}

// ParseSortMode is the inverse of SortMode.String
func ParseSortMode(s string) (SortMode, bool) {
	switch s {
	case "none":
		return SortNone, true
	case "foreign":
		return SortByForeignAsc, true
	case "native":
		return SortByNativeAsc, true
	}
	return SortNone, false
}
