package views

import (
	"fmt"

	"flashcards/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView owns the window: the navigator's stack in the centre, a status bar
// at the bottom, and the dialogs used to report outcomes.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	navigator     *Navigator
	statusBar     *components.StatusBar
}

// NewMainView creates the main view and sets it as the window content
func NewMainView(window fyne.Window, navigator *Navigator) *MainView {
	view := &MainView{
		window:    window,
		navigator: navigator,
		statusBar: components.NewStatusBar(),
	}

	view.buildLayout()
	return view
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.navigator.Container(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// UpdateCatalogInfo shows the number of stored sets
func (mv *MainView) UpdateCatalogInfo(sets int) {
	mv.statusBar.SetCatalogInfo(sets)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog(appName, version, storageDir string) {
	content := container.NewVBox(
		widget.NewLabel(appName),
		widget.NewLabel(fmt.Sprintf("Version: %s", version)),
		widget.NewLabel(""),
		widget.NewLabel(fmt.Sprintf("Sets are stored in %s", storageDir)),
		widget.NewLabel(mv.statusBar.GetCatalogInfo()),
		widget.NewLabel(fmt.Sprintf("Last action: %s", mv.statusBar.GetStatus())),
	)

	dialog.ShowCustom("About", "Close", content, mv.window)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// Close closes the window
func (mv *MainView) Close() {
	mv.window.Close()
}

// heading renders text as a level-two markdown heading.
func heading(text string) *widget.RichText {
	return widget.NewRichTextFromMarkdown("## " + text)
}
