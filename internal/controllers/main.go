package controllers

import (
	"errors"
	"fmt"

	"flashcards/internal/logger"
	"flashcards/internal/models"
	"flashcards/internal/services"
	"flashcards/internal/views"
)

// Notifier is the window-level surface the controller reports outcomes to.
type Notifier interface {
	ShowError(title string, err error)
	ShowInfo(title, message string)
	UpdateStatus(status string)
	UpdateCatalogInfo(sets int)
}

// Screens groups the views the controller drives.
type Screens struct {
	Home   *views.HomeView
	Picker *views.PickerView
	Study  *views.StudyView
	Create *views.CreateView
}

// MainController turns view actions into service calls and navigation.
// On any failure it reports the error and leaves the user on a known-good view.
type MainController struct {
	navigator    *views.Navigator
	screens      Screens
	studyService *services.StudyService
	builder      *services.SetBuilder
	catalog      views.CatalogLister
	notifier     Notifier
	logger       logger.Logger

	// session is the active study session, nil outside the study view.
	session *models.StudySession
	quit    func()
}

// NewMainController registers screens with navigator and connects their handlers.
func NewMainController(
	navigator *views.Navigator,
	screens Screens,
	studyService *services.StudyService,
	builder *services.SetBuilder,
	catalog views.CatalogLister,
	notifier Notifier,
	log logger.Logger,
) *MainController {
	controller := &MainController{
		navigator:    navigator,
		screens:      screens,
		studyService: studyService,
		builder:      builder,
		catalog:      catalog,
		notifier:     notifier,
		logger:       log.WithComponent("controller"),
	}

	navigator.Register(views.HomeViewID, screens.Home)
	navigator.Register(views.PickerViewID, screens.Picker)
	navigator.Register(views.StudyViewID, screens.Study)
	navigator.Register(views.CreateViewID, screens.Create)

	builder.OnSaved(func(string) {
		controller.refreshCatalog()
	})

	controller.setupViewEventHandlers()
	return controller
}

// SetQuitHandler sets what the Exit button does.
func (mc *MainController) SetQuitHandler(quit func()) {
	mc.quit = quit
}

// Start shows the home view.
func (mc *MainController) Start() error {
	mc.updateCatalogInfo()
	return mc.navigator.Show(views.HomeViewID)
}

func (mc *MainController) setupViewEventHandlers() {
	mc.screens.Home.SetStudyHandler(func() { mc.navigate(views.PickerViewID) })
	mc.screens.Home.SetCreateHandler(func() { mc.navigate(views.CreateViewID) })
	mc.screens.Home.SetExitHandler(mc.Exit)

	mc.screens.Picker.SetNextHandler(mc.BeginStudy)
	mc.screens.Picker.SetBackHandler(func() { mc.navigate(views.HomeViewID) })
	mc.screens.Picker.SetErrorHandler(func(err error) {
		mc.handleError("Could not list flashcard sets", err)
	})

	mc.screens.Study.SetRevealHandler(mc.RevealAnswer)
	mc.screens.Study.SetNextHandler(mc.NextCard)
	mc.screens.Study.SetBackHandler(mc.AbandonStudy)

	mc.screens.Create.SetAddCardHandler(mc.AddCard)
	mc.screens.Create.SetSaveHandler(mc.SaveSet)
	mc.screens.Create.SetBackHandler(mc.CancelCreate)
}

// BeginStudy starts a session over the set stored under title. On failure the
// user stays on the picker.
func (mc *MainController) BeginStudy(title string) {
	session, err := mc.studyService.Begin(title)
	if err != nil {
		mc.handleError(fmt.Sprintf("Cannot study %q", title), err)
		return
	}

	mc.session = session
	mc.showCurrentCard()
	mc.navigate(views.StudyViewID)
	mc.notifier.UpdateStatus(fmt.Sprintf("Studying %s", title))
}

// RevealAnswer shows the definition of the current card.
func (mc *MainController) RevealAnswer() {
	if mc.session == nil {
		return
	}

	definition, err := mc.session.Reveal()
	if err != nil {
		mc.handleError("Reveal failed", err)
		return
	}
	mc.screens.Study.ShowAnswer(definition)
}

// NextCard advances the session. After the last card the session is discarded
// and the user returns home.
func (mc *MainController) NextCard() {
	if mc.session == nil {
		return
	}

	state, err := mc.session.Advance()
	if err != nil {
		mc.handleError("Next card failed", err)
		mc.endSession()
		mc.navigate(views.HomeViewID)
		return
	}

	if state == models.SessionFinished {
		title := mc.session.Title()
		mc.endSession()
		mc.notifier.ShowInfo("Flashcard App", "Finished studying!")
		mc.notifier.UpdateStatus(fmt.Sprintf("Finished %s", title))
		mc.navigate(views.HomeViewID)
		return
	}

	mc.showCurrentCard()
}

// AbandonStudy discards the session and returns to the picker.
func (mc *MainController) AbandonStudy() {
	mc.endSession()
	mc.navigate(views.PickerViewID)
}

// AddCard adds a card to the draft and clears the card inputs.
func (mc *MainController) AddCard(term, definition string) {
	if err := mc.builder.AddCard(term, definition); err != nil {
		mc.handleError("Cannot add card", err)
		return
	}
	mc.screens.Create.SetCounter(mc.builder.Counter())
	mc.screens.Create.ClearCardInputs()
}

// SaveSet commits the draft under title. On failure the draft and inputs are kept.
func (mc *MainController) SaveSet(title string) {
	if err := mc.builder.Save(title); err != nil {
		mc.handleError("Cannot save set", err)
		return
	}

	mc.screens.Create.Reset()
	mc.notifier.ShowInfo("Flashcard App", "Flashcard set saved!")
	mc.notifier.UpdateStatus(fmt.Sprintf("Saved %s", title))
	mc.navigate(views.HomeViewID)
}

// CancelCreate discards the draft and returns home.
func (mc *MainController) CancelCreate() {
	mc.builder.Cancel()
	mc.screens.Create.Reset()
	mc.navigate(views.HomeViewID)
}

// Reload discards any session or draft, resets every view and returns home.
func (mc *MainController) Reload() error {
	mc.endSession()
	mc.builder.Cancel()

	if err := mc.navigator.Refresh(); err != nil {
		mc.logger.Error("Reload failed", err, nil)
		return err
	}
	mc.updateCatalogInfo()
	mc.notifier.UpdateStatus("Reloaded")
	return nil
}

// Exit quits the application.
func (mc *MainController) Exit() {
	if mc.quit != nil {
		mc.quit()
	}
}

// Session returns the active study session, or nil.
func (mc *MainController) Session() *models.StudySession {
	return mc.session
}

// Shutdown records any active session as abandoned. It runs after the event
// loop has stopped, so it leaves the widgets alone.
func (mc *MainController) Shutdown() {
	if mc.session != nil {
		mc.studyService.End(mc.session)
		mc.session = nil
	}

	stats := mc.studyService.Stats()
	mc.logger.Info("Controller shut down", map[string]interface{}{
		"sessions_started":   stats.Started,
		"sessions_completed": stats.Completed,
		"sessions_abandoned": stats.Abandoned,
	})
}

func (mc *MainController) showCurrentCard() {
	term, err := mc.session.CurrentTerm()
	if err != nil {
		mc.handleError("No current card", err)
		return
	}
	mc.screens.Study.ShowCard(mc.session.Title(), term, mc.session.Position(), mc.session.Len())
}

func (mc *MainController) endSession() {
	if mc.session == nil {
		return
	}
	mc.studyService.End(mc.session)
	mc.session = nil
	mc.screens.Study.Reset()
}

func (mc *MainController) refreshCatalog() {
	mc.navigator.RefreshCatalogViews()
	mc.updateCatalogInfo()
}

func (mc *MainController) updateCatalogInfo() {
	titles, err := mc.catalog.ListSets()
	if err != nil {
		mc.logger.Warning("Catalog unavailable", map[string]interface{}{"error": err.Error()})
		return
	}
	mc.notifier.UpdateCatalogInfo(len(titles))
}

// navigate shows id. A missing view is an internal fault: it is logged and the
// user is sent home.
func (mc *MainController) navigate(id views.ViewID) {
	err := mc.navigator.Show(id)
	if err == nil {
		return
	}

	mc.logger.Error("Navigation failed", err, map[string]interface{}{"view": string(id)})
	if id != views.HomeViewID {
		if homeErr := mc.navigator.Show(views.HomeViewID); homeErr != nil {
			mc.logger.Error("Home view unavailable", homeErr, nil)
		}
	}
}

// handleError reports err to the user. Nothing is retried.
func (mc *MainController) handleError(title string, err error) {
	fields := map[string]interface{}{"view": string(mc.navigator.Active())}
	if errors.Is(err, models.ErrStorage) {
		fields["kind"] = "storage"
	}
	mc.logger.Error(title, err, fields)

	if mc.notifier != nil {
		mc.notifier.ShowError(title, err)
	}
}
