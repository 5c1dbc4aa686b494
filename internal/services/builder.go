package services

import (
	"flashcards/internal/logger"
	"flashcards/internal/models"
)

// SetSaver persists a flashcard set, replacing any set with the same title.
type SetSaver interface {
	Save(title string, cards map[string]string) error
}

// SetBuilder owns the draft of a set being authored and commits it through a SetSaver.
type SetBuilder struct {
	saver   SetSaver
	draft   *models.DraftSet
	onSaved []func(title string)
	logger  logger.Logger
}

func NewSetBuilder(saver SetSaver, log logger.Logger) *SetBuilder {
	return &SetBuilder{
		saver:  saver,
		draft:  models.NewDraftSet(),
		logger: log.WithComponent("builder"),
	}
}

// OnSaved registers fn to run after every successful Save.
func (b *SetBuilder) OnSaved(fn func(title string)) {
	b.onSaved = append(b.onSaved, fn)
}

// AddCard adds or overwrites a card in the draft.
func (b *SetBuilder) AddCard(term, definition string) error {
	if err := b.draft.AddCard(term, definition); err != nil {
		return err
	}
	b.logger.Debug("Card added to draft", map[string]interface{}{
		"term":    term,
		"counter": b.draft.Counter(),
		"cards":   b.draft.Len(),
	})
	return nil
}

// Save writes the draft under title and resets it. An empty draft is saved as
// an empty set.
func (b *SetBuilder) Save(title string) error {
	b.draft.Title = title
	if b.draft.Len() == 0 {
		b.logger.Warning("Saving a set with no cards", map[string]interface{}{"title": title})
	}

	if err := b.saver.Save(title, b.draft.Cards()); err != nil {
		b.logger.Error("Failed to save draft", err, map[string]interface{}{"title": title})
		return err
	}

	b.draft.Reset()
	for _, fn := range b.onSaved {
		fn(title)
	}
	return nil
}

// Cancel discards the draft without saving.
func (b *SetBuilder) Cancel() {
	if b.draft.Len() > 0 {
		b.logger.Debug("Draft discarded", map[string]interface{}{"cards": b.draft.Len()})
	}
	b.draft.Reset()
}

// Counter is the number shown as "Card N:" for the next card.
func (b *SetBuilder) Counter() int { return b.draft.Counter() }

// Len is the number of distinct terms in the draft.
func (b *SetBuilder) Len() int { return b.draft.Len() }
