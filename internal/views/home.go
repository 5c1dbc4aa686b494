package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HomeView is the main menu.
type HomeView struct {
	container *fyne.Container

	studyButton  *widget.Button
	editButton   *widget.Button
	createButton *widget.Button
	exitButton   *widget.Button

	studyHandler  func()
	createHandler func()
	exitHandler   func()
}

func NewHomeView() *HomeView {
	hv := &HomeView{}
	hv.createComponents()
	hv.buildLayout()
	return hv
}

func (hv *HomeView) createComponents() {
	hv.studyButton = widget.NewButton("Study", func() {
		if hv.studyHandler != nil {
			hv.studyHandler()
		}
	})
	// Editing existing sets is not supported yet.
	hv.editButton = widget.NewButton("Edit", nil)
	hv.editButton.Disable()
	hv.createButton = widget.NewButton("Create Set", func() {
		if hv.createHandler != nil {
			hv.createHandler()
		}
	})
	hv.exitButton = widget.NewButton("Exit", func() {
		if hv.exitHandler != nil {
			hv.exitHandler()
		}
	})
}

func (hv *HomeView) buildLayout() {
	title := heading("Flashcards Menu")

	hv.container = container.NewCenter(container.NewVBox(
		title,
		hv.studyButton,
		hv.editButton,
		hv.createButton,
		hv.exitButton,
	))
}

func (hv *HomeView) Content() fyne.CanvasObject { return hv.container }

func (hv *HomeView) SetStudyHandler(handler func())  { hv.studyHandler = handler }
func (hv *HomeView) SetCreateHandler(handler func()) { hv.createHandler = handler }
func (hv *HomeView) SetExitHandler(handler func())   { hv.exitHandler = handler }
