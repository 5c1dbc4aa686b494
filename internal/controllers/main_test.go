package controllers

import (
	"math/rand/v2"
	"testing"

	"flashcards/internal/logger"
	"flashcards/internal/models"
	"flashcards/internal/services"
	"flashcards/internal/storage"
	"flashcards/internal/views"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	errors  []error
	infos   []string
	status  string
	catalog int
}

func (f *fakeNotifier) ShowError(_ string, err error) { f.errors = append(f.errors, err) }
func (f *fakeNotifier) ShowInfo(_, message string)    { f.infos = append(f.infos, message) }
func (f *fakeNotifier) UpdateStatus(status string)    { f.status = status }
func (f *fakeNotifier) UpdateCatalogInfo(sets int)    { f.catalog = sets }

type harness struct {
	controller *MainController
	navigator  *views.Navigator
	screens    Screens
	store      *storage.SetStore
	fs         afero.Fs
	notifier   *fakeNotifier
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	test.NewTempApp(t)

	log := logger.NewNop()
	fsys := afero.NewMemMapFs()
	store := storage.NewSetStore(fsys, "/sets", storage.DefaultSuffix, log)
	catalog := storage.NewCatalog(fsys, "/sets", storage.DefaultSuffix, log)

	nav := views.NewNavigator(views.HomeViewID, log)
	screens := Screens{
		Home:   views.NewHomeView(),
		Picker: views.NewPickerView(catalog, log),
		Study:  views.NewStudyView(),
		Create: views.NewCreateView(),
	}
	notifier := &fakeNotifier{}

	controller := NewMainController(
		nav,
		screens,
		services.NewStudyService(store, rand.New(rand.NewPCG(9, 9)), log),
		services.NewSetBuilder(store, log),
		catalog,
		notifier,
		log,
	)
	require.NoError(t, controller.Start())

	return &harness{
		controller: controller,
		navigator:  nav,
		screens:    screens,
		store:      store,
		fs:         fsys,
		notifier:   notifier,
	}
}

func TestMainController_StartsHome(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, views.HomeViewID, h.navigator.Active())
	assert.Equal(t, 0, h.notifier.catalog)
}

func TestMainController_StudyWholeSet(t *testing.T) {
	h := newHarness(t)
	cards := map[string]string{"France": "Paris", "Peru": "Lima", "Japan": "Tokyo"}
	require.NoError(t, h.store.Save("capitals", cards))

	require.NoError(t, h.navigator.Show(views.PickerViewID))
	assert.Equal(t, []string{"capitals"}, h.screens.Picker.Options())

	h.controller.BeginStudy("capitals")
	require.NotNil(t, h.controller.Session())
	assert.Equal(t, views.StudyViewID, h.navigator.Active())

	seen := map[string]bool{}
	for i := 0; i < len(cards); i++ {
		term := h.screens.Study.Term()
		seen[term] = true

		h.controller.RevealAnswer()
		assert.Equal(t, cards[term], h.screens.Study.Answer())
		h.controller.RevealAnswer()
		assert.Equal(t, cards[term], h.screens.Study.Answer())

		h.controller.NextCard()
	}

	assert.Len(t, seen, len(cards))
	assert.Nil(t, h.controller.Session())
	assert.Equal(t, views.HomeViewID, h.navigator.Active())
	assert.Equal(t, []string{"Finished studying!"}, h.notifier.infos)
	assert.Empty(t, h.notifier.errors)
}

func TestMainController_StudyFailuresStayOnPicker(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *harness)
		title string
		want  error
	}{
		{
			name:  "missing set",
			setup: func(*harness) {},
			title: "ghost",
			want:  models.ErrNotFound,
		},
		{
			name: "corrupt set",
			setup: func(h *harness) {
				require.NoError(t, afero.WriteFile(h.fs, "/sets/broken.txt", []byte("not json"), 0o644))
			},
			title: "broken",
			want:  models.ErrCorruptData,
		},
		{
			name: "empty set",
			setup: func(h *harness) {
				require.NoError(t, h.store.Save("empty", map[string]string{}))
			},
			title: "empty",
			want:  models.ErrEmptySet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.setup(h)
			require.NoError(t, h.navigator.Show(views.PickerViewID))

			h.controller.BeginStudy(tt.title)

			require.Len(t, h.notifier.errors, 1)
			assert.ErrorIs(t, h.notifier.errors[0], tt.want)
			assert.Nil(t, h.controller.Session())
			assert.Equal(t, views.PickerViewID, h.navigator.Active())
		})
	}
}

func TestMainController_AbandonStudy(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.Save("deck", map[string]string{"a": "1", "b": "2"}))

	h.controller.BeginStudy("deck")
	require.NotNil(t, h.controller.Session())

	h.controller.AbandonStudy()
	assert.Nil(t, h.controller.Session())
	assert.Equal(t, views.PickerViewID, h.navigator.Active())
	assert.Empty(t, h.screens.Study.Term())

	// actions without a session are ignored
	h.controller.RevealAnswer()
	h.controller.NextCard()
	assert.Empty(t, h.notifier.errors)
}

func TestMainController_CreateSet(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.navigator.Show(views.CreateViewID))

	h.controller.AddCard("x", "1")
	h.controller.AddCard("x", "2")
	assert.Equal(t, "Card 3:", h.screens.Create.Counter())

	h.controller.SaveSet("letters")

	set, err := h.store.Load("letters")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"x": "2"}, set.Cards)

	assert.Equal(t, views.HomeViewID, h.navigator.Active())
	assert.Equal(t, []string{"Flashcard set saved!"}, h.notifier.infos)
	assert.Equal(t, "Card 1:", h.screens.Create.Counter())
	assert.Equal(t, 1, h.notifier.catalog)
	assert.Equal(t, []string{"letters"}, h.screens.Picker.Options())
}

func TestMainController_SaveWithoutTitle(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.navigator.Show(views.CreateViewID))

	h.controller.AddCard("a", "1")
	h.controller.SaveSet("")

	require.Len(t, h.notifier.errors, 1)
	assert.ErrorIs(t, h.notifier.errors[0], models.ErrInvalidTitle)
	assert.Equal(t, views.CreateViewID, h.navigator.Active())
	assert.Equal(t, "Card 2:", h.screens.Create.Counter())
}

func TestMainController_AddEmptyTerm(t *testing.T) {
	h := newHarness(t)
	h.controller.AddCard("", "nothing")

	require.Len(t, h.notifier.errors, 1)
	assert.ErrorIs(t, h.notifier.errors[0], models.ErrEmptyTerm)
	assert.Equal(t, "Card 1:", h.screens.Create.Counter())
}

func TestMainController_CancelCreate(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.navigator.Show(views.CreateViewID))

	h.controller.AddCard("a", "1")
	h.controller.CancelCreate()

	assert.Equal(t, views.HomeViewID, h.navigator.Active())
	assert.Equal(t, "Card 1:", h.screens.Create.Counter())

	titles, err := storage.NewCatalog(h.fs, "/sets", storage.DefaultSuffix, logger.NewNop()).ListSets()
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestMainController_ExitAndShutdown(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.Save("deck", map[string]string{"a": "1"}))

	quit := false
	h.controller.SetQuitHandler(func() { quit = true })
	h.controller.Exit()
	assert.True(t, quit)

	h.controller.BeginStudy("deck")
	h.controller.Shutdown()
	assert.Nil(t, h.controller.Session())
}

func TestMainController_Reload(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.Save("deck", map[string]string{"a": "1", "b": "2"}))

	h.controller.AddCard("draft", "card")
	h.controller.BeginStudy("deck")
	require.NotNil(t, h.controller.Session())

	require.NoError(t, h.controller.Reload())

	assert.Nil(t, h.controller.Session())
	assert.Equal(t, views.HomeViewID, h.navigator.Active())
	assert.Equal(t, "Card 1:", h.screens.Create.Counter())
	assert.Equal(t, []string{"deck"}, h.screens.Picker.Options())
	assert.Equal(t, 1, h.notifier.catalog)
	assert.Equal(t, "Reloaded", h.notifier.status)
}
