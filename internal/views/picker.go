package views

import (
	"flashcards/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// CatalogLister enumerates stored set titles.
type CatalogLister interface {
	ListSets() ([]string, error)
}

// PickerView lists the catalog as exclusive choices. Next stays disabled until a set is chosen.
type PickerView struct {
	catalog CatalogLister
	logger  logger.Logger

	container  *fyne.Container
	sets       *widget.RadioGroup
	emptyLabel *widget.Label
	nextButton *widget.Button
	backButton *widget.Button

	nextHandler  func(title string)
	backHandler  func()
	errorHandler func(err error)
}

func NewPickerView(catalog CatalogLister, log logger.Logger) *PickerView {
	pv := &PickerView{
		catalog: catalog,
		logger:  log.WithComponent("picker_view"),
	}
	pv.createComponents()
	pv.buildLayout()
	return pv
}

func (pv *PickerView) createComponents() {
	pv.sets = widget.NewRadioGroup(nil, func(selected string) {
		if selected == "" {
			pv.nextButton.Disable()
			return
		}
		pv.nextButton.Enable()
	})
	pv.emptyLabel = widget.NewLabel("No flashcard sets yet. Create one from the main menu.")
	pv.emptyLabel.Hide()

	pv.nextButton = widget.NewButton("Next", func() {
		if pv.nextHandler != nil && pv.sets.Selected != "" {
			pv.nextHandler(pv.sets.Selected)
		}
	})
	pv.nextButton.Disable()

	pv.backButton = widget.NewButton("Back", func() {
		if pv.backHandler != nil {
			pv.backHandler()
		}
	})
}

func (pv *PickerView) buildLayout() {
	title := heading("Choose Set to Study:")

	pv.container = container.NewBorder(
		title,
		container.NewHBox(pv.backButton, layout.NewSpacer(), pv.nextButton),
		nil,
		nil,
		container.NewVScroll(container.NewVBox(pv.emptyLabel, pv.sets)),
	)
}

func (pv *PickerView) Content() fyne.CanvasObject { return pv.container }

// OnShow re-reads the catalog so sets saved since the last visit appear.
func (pv *PickerView) OnShow() {
	pv.RefreshCatalog()
}

// RefreshCatalog reloads the list of sets, keeping the current choice if it still exists.
func (pv *PickerView) RefreshCatalog() {
	titles, err := pv.catalog.ListSets()
	if err != nil {
		pv.logger.Error("Failed to list sets", err, nil)
		titles = nil
		if pv.errorHandler != nil {
			pv.errorHandler(err)
		}
	}

	selected := pv.sets.Selected
	pv.sets.Options = titles
	pv.sets.Selected = ""
	for _, t := range titles {
		if t == selected {
			pv.sets.Selected = selected
			break
		}
	}
	pv.sets.Refresh()

	if pv.sets.Selected == "" {
		pv.nextButton.Disable()
	} else {
		pv.nextButton.Enable()
	}

	if len(titles) == 0 {
		pv.emptyLabel.Show()
	} else {
		pv.emptyLabel.Hide()
	}
}

// Reset clears the current choice.
func (pv *PickerView) Reset() {
	pv.sets.Selected = ""
	pv.sets.Refresh()
	pv.nextButton.Disable()
}

// Options returns the titles currently offered.
func (pv *PickerView) Options() []string { return pv.sets.Options }

// Selected returns the chosen title, or "".
func (pv *PickerView) Selected() string { return pv.sets.Selected }

// Select chooses title as if the user had clicked it.
func (pv *PickerView) Select(title string) { pv.sets.SetSelected(title) }

func (pv *PickerView) SetNextHandler(handler func(title string)) { pv.nextHandler = handler }
func (pv *PickerView) SetBackHandler(handler func())             { pv.backHandler = handler }
func (pv *PickerView) SetErrorHandler(handler func(err error))   { pv.errorHandler = handler }
