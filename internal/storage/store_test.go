package storage

import (
	"os"
	"strings"
	"testing"

	"flashcards/internal/logger"
	"flashcards/internal/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SetStore, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	return NewSetStore(fsys, "/sets", DefaultSuffix, logger.NewNop()), fsys
}

func TestSetStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		title string
		cards map[string]string
	}{
		{name: "single", title: "spanish", cards: map[string]string{"hola": "hello"}},
		{name: "unicode", title: "日本語", cards: map[string]string{"猫": "cat", "犬": "dog"}},
		{name: "spaces in title", title: "chapter 1 verbs", cards: map[string]string{"ser": "to be", "estar": "to be (state)"}},
		{name: "empty mapping", title: "blank", cards: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			require.NoError(t, store.Save(tt.title, tt.cards))

			set, err := store.Load(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.title, set.Title)
			assert.Equal(t, tt.cards, set.Cards)
			assert.True(t, store.Exists(tt.title))
		})
	}
}

func TestSetStore_SaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save("deck", map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, store.Save("deck", map[string]string{"c": "3"}))

	set, err := store.Load("deck")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"c": "3"}, set.Cards)
}

func TestSetStore_SaveWritesJSONObject(t *testing.T) {
	store, fsys := newTestStore(t)
	require.NoError(t, store.Save("deck", map[string]string{"a": "1"}))

	data, err := afero.ReadFile(fsys, "/sets/deck.txt")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"1"}`, string(data))

	// no temp files left behind
	entries, err := afero.ReadDir(fsys, "/sets")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSetStore_InvalidTitle(t *testing.T) {
	store, _ := newTestStore(t)

	for _, title := range []string{"", "   ", ".", "..", "a/b", `a\b`, "what?", "x:y"} {
		err := store.Save(title, map[string]string{"a": "1"})
		assert.ErrorIs(t, err, models.ErrInvalidTitle, "title %q", title)
	}

	for _, title := range []string{"", ".", "..", "a/b", `a\b`, "../escape", "nul\x00"} {
		_, err := store.Load(title)
		assert.ErrorIs(t, err, models.ErrInvalidTitle, "title %q", title)
		assert.False(t, store.Exists(title))
	}
}

func TestSetStore_LoadsTitlesWrittenByOtherTools(t *testing.T) {
	store, fsys := newTestStore(t)
	require.NoError(t, afero.WriteFile(fsys, "/sets/a:b.txt", []byte(`{"q":"a"}`), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/sets/why?.txt", []byte(`{"x":"y"}`), 0o644))

	titles, err := NewCatalog(fsys, "/sets", DefaultSuffix, logger.NewNop()).ListSets()
	require.NoError(t, err)
	require.Equal(t, []string{"a:b", "why?"}, titles)

	for _, title := range titles {
		set, err := store.Load(title)
		require.NoError(t, err, "title %q", title)
		assert.Equal(t, title, set.Title)
		assert.True(t, store.Exists(title))
	}

	_, err = store.Load("c:d")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSetStore_LongTitleOnDisk(t *testing.T) {
	dir := t.TempDir()
	store := NewSetStore(afero.NewOsFs(), dir, DefaultSuffix, logger.NewNop())

	// 245 + len(".txt") stays under the common 255-byte name limit.
	title := strings.Repeat("a", 245)
	require.NoError(t, store.Save(title, map[string]string{"k": "v"}))

	set, err := store.Load(title)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "v"}, set.Cards)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSetStore_LoadNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.False(t, store.Exists("missing"))
}

func TestSetStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "hola: hello"},
		{name: "array", body: `["a","b"]`},
		{name: "non-string values", body: `{"a": 1}`},
		{name: "null", body: "null"},
		{name: "truncated", body: `{"a": "1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, fsys := newTestStore(t)
			require.NoError(t, afero.WriteFile(fsys, "/sets/bad.txt", []byte(tt.body), 0o644))

			_, err := store.Load("bad")
			assert.ErrorIs(t, err, models.ErrCorruptData)
		})
	}
}

func TestSetStore_StorageErrors(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	store := NewSetStore(fsys, "/sets", DefaultSuffix, logger.NewNop())

	err := store.Save("deck", map[string]string{"a": "1"})
	assert.ErrorIs(t, err, models.ErrStorage)
}

func TestSetStore_Path(t *testing.T) {
	store := NewSetStore(afero.NewMemMapFs(), "/data", ".json", logger.NewNop())
	assert.Equal(t, "/data/deck.json", store.Path("deck"))
	assert.Equal(t, ".json", store.Suffix())
}
