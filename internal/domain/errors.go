package domain

import "errors"

// Errors returned by the word bank store, shown to the user as notices
var (
	ErrEmptyInput           = errors.New("no words entered")
	ErrIncompleteInput      = errors.New("both foreign and native words are required")
	ErrDuplicateTranslation = errors.New("foreign word is the same as the native word")
	ErrBankEmpty            = errors.New("word bank is empty")
	ErrAlreadyInCollection  = errors.New("word is already in the collection")
	ErrEntryNotFound        = errors.New("word not found")
)

