package views

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// CreateView collects a title and term/definition pairs for a new set.
type CreateView struct {
	container *fyne.Container

	titleEntry      *widget.Entry
	termEntry       *widget.Entry
	definitionEntry *widget.Entry
	counterLabel    *widget.Label
	addButton       *widget.Button
	saveButton      *widget.Button
	backButton      *widget.Button

	addCardHandler func(term, definition string)
	saveHandler    func(title string)
	backHandler    func()
}

func NewCreateView() *CreateView {
	cv := &CreateView{}
	cv.createComponents()
	cv.buildLayout()
	return cv
}

func (cv *CreateView) createComponents() {
	cv.titleEntry = widget.NewEntry()
	cv.titleEntry.SetPlaceHolder("Title")
	cv.termEntry = widget.NewEntry()
	cv.termEntry.SetPlaceHolder("Term")
	cv.definitionEntry = widget.NewEntry()
	cv.definitionEntry.SetPlaceHolder("Definition")
	cv.definitionEntry.OnSubmitted = func(string) { cv.addCard() }

	cv.counterLabel = widget.NewLabel("")
	cv.SetCounter(1)

	cv.addButton = widget.NewButton("Add Card", cv.addCard)
	cv.saveButton = widget.NewButton("Save Set", func() {
		if cv.saveHandler != nil {
			cv.saveHandler(cv.titleEntry.Text)
		}
	})
	cv.backButton = widget.NewButton("Back", func() {
		if cv.backHandler != nil {
			cv.backHandler()
		}
	})
}

func (cv *CreateView) buildLayout() {
	title := heading("Create A New Set")

	form := container.NewVBox(
		widget.NewLabel("Enter Title:"),
		cv.titleEntry,
		cv.counterLabel,
		widget.NewForm(
			widget.NewFormItem("Term:", cv.termEntry),
			widget.NewFormItem("Definition:", cv.definitionEntry),
		),
		cv.addButton,
	)

	cv.container = container.NewBorder(
		title,
		container.NewHBox(cv.backButton, layout.NewSpacer(), cv.saveButton),
		nil,
		nil,
		form,
	)
}

func (cv *CreateView) addCard() {
	if cv.addCardHandler != nil {
		cv.addCardHandler(cv.termEntry.Text, cv.definitionEntry.Text)
	}
}

func (cv *CreateView) Content() fyne.CanvasObject { return cv.container }

// SetCounter updates the "Card N:" label.
func (cv *CreateView) SetCounter(n int) {
	cv.counterLabel.SetText(fmt.Sprintf("Card %d:", n))
}

// ClearCardInputs empties the term and definition entries.
func (cv *CreateView) ClearCardInputs() {
	cv.termEntry.SetText("")
	cv.definitionEntry.SetText("")
}

// Reset empties every entry and restarts the counter.
func (cv *CreateView) Reset() {
	cv.titleEntry.SetText("")
	cv.ClearCardInputs()
	cv.SetCounter(1)
}

func (cv *CreateView) Counter() string { return cv.counterLabel.Text }

func (cv *CreateView) SetAddCardHandler(handler func(term, definition string)) {
	cv.addCardHandler = handler
}
func (cv *CreateView) SetSaveHandler(handler func(title string)) { cv.saveHandler = handler }
func (cv *CreateView) SetBackHandler(handler func())             { cv.backHandler = handler }
