package models

import (
	"maps"
	"strings"
)

// DraftSet accumulates cards while a new set is being authored.
//
// Counter is the "Card N:" number shown to the user. It starts at 1 and grows
// with every AddCard call, including calls that overwrite an existing term, so
// it can exceed Len()+1.
type DraftSet struct {
	Title   string
	cards   map[string]string
	counter int
}

func NewDraftSet() *DraftSet {
	d := &DraftSet{}
	d.Reset()
	return d
}

// AddCard inserts or overwrites term. Later definitions win.
func (d *DraftSet) AddCard(term, definition string) error {
	if strings.TrimSpace(term) == "" {
		return ErrEmptyTerm
	}
	d.counter++
	d.cards[term] = definition
	return nil
}

func (d *DraftSet) Counter() int { return d.counter }

// Len returns the number of distinct terms.
func (d *DraftSet) Len() int { return len(d.cards) }

// Cards returns a copy of the accumulated mapping.
func (d *DraftSet) Cards() map[string]string {
	return maps.Clone(d.cards)
}

// Reset clears the title and cards and restarts the counter at 1.
func (d *DraftSet) Reset() {
	d.Title = ""
	d.cards = make(map[string]string)
	d.counter = 1
}
