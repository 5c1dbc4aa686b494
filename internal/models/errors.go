package models

import "errors"

// Errors surfaced by storage, study sessions and the set builder.
var (
	ErrStorage           = errors.New("storage failure")
	ErrNotFound          = errors.New("flashcard set not found")
	ErrCorruptData       = errors.New("flashcard set data is corrupt")
	ErrInvalidTitle      = errors.New("invalid flashcard set title")
	ErrEmptySet          = errors.New("flashcard set has no cards")
	ErrEmptyTerm         = errors.New("card term is empty")
	ErrSessionNotStarted = errors.New("study session has not started")
	ErrSessionStarted    = errors.New("study session already started")
	ErrSessionFinished   = errors.New("study session is finished")
)
