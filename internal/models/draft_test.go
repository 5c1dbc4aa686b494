package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftSet_DuplicateTermOverwrites(t *testing.T) {
	d := NewDraftSet()
	assert.Equal(t, 1, d.Counter())

	require.NoError(t, d.AddCard("x", "1"))
	require.NoError(t, d.AddCard("x", "2"))

	assert.Equal(t, map[string]string{"x": "2"}, d.Cards())
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 3, d.Counter(), "counter counts add operations")
}

func TestDraftSet_EmptyTerm(t *testing.T) {
	d := NewDraftSet()
	assert.ErrorIs(t, d.AddCard("  ", "def"), ErrEmptyTerm)
	assert.Equal(t, 1, d.Counter())
	assert.Zero(t, d.Len())
}

func TestDraftSet_Reset(t *testing.T) {
	d := NewDraftSet()
	d.Title = "verbs"
	require.NoError(t, d.AddCard("ser", "to be"))

	d.Reset()
	assert.Empty(t, d.Title)
	assert.Zero(t, d.Len())
	assert.Equal(t, 1, d.Counter())
}

func TestDraftSet_CardsIsACopy(t *testing.T) {
	d := NewDraftSet()
	require.NoError(t, d.AddCard("a", "1"))

	cards := d.Cards()
	cards["b"] = "2"
	assert.Equal(t, 1, d.Len())
}
