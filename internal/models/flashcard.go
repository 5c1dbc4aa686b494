package models

import (
	"maps"
	"slices"
)

// FlashcardSet is a titled mapping from term to definition.
// The title doubles as the storage key.
type FlashcardSet struct {
	Title string
	Cards map[string]string
}

// NewFlashcardSet copies cards so later changes to the caller's map are not observed.
func NewFlashcardSet(title string, cards map[string]string) *FlashcardSet {
	copied := make(map[string]string, len(cards))
	maps.Copy(copied, cards)
	return &FlashcardSet{Title: title, Cards: copied}
}

// Len returns the number of distinct terms.
func (s *FlashcardSet) Len() int {
	return len(s.Cards)
}

// Definition returns the definition for term.
func (s *FlashcardSet) Definition(term string) (string, bool) {
	def, ok := s.Cards[term]
	return def, ok
}

// Terms returns the terms in alphabetical order.
func (s *FlashcardSet) Terms() []string {
	return slices.Sorted(maps.Keys(s.Cards))
}
