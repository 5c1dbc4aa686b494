package views

import (
	"flashcards/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// StudyView shows one card at a time with reveal and next actions.
type StudyView struct {
	container *fyne.Container

	titleLabel   *widget.Label
	progress     *components.ProgressBar
	termLabel    *widget.Label
	answerLabel  *widget.Label
	revealButton *widget.Button
	nextButton   *widget.Button
	backButton   *widget.Button

	revealHandler func()
	nextHandler   func()
	backHandler   func()
}

func NewStudyView() *StudyView {
	sv := &StudyView{}
	sv.createComponents()
	sv.buildLayout()
	return sv
}

func (sv *StudyView) createComponents() {
	sv.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	sv.progress = components.NewProgressBar()
	sv.termLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	sv.termLabel.Wrapping = fyne.TextWrapWord
	sv.answerLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	sv.answerLabel.Wrapping = fyne.TextWrapWord

	sv.revealButton = widget.NewButton("Reveal Answer", func() {
		if sv.revealHandler != nil {
			sv.revealHandler()
		}
	})
	sv.nextButton = widget.NewButton("Next Card", func() {
		if sv.nextHandler != nil {
			sv.nextHandler()
		}
	})
	sv.backButton = widget.NewButton("Back", func() {
		if sv.backHandler != nil {
			sv.backHandler()
		}
	})
}

func (sv *StudyView) buildLayout() {
	card := container.NewVBox(
		sv.termLabel,
		sv.revealButton,
		sv.answerLabel,
	)

	sv.container = container.NewBorder(
		container.NewVBox(sv.titleLabel, sv.progress.GetContainer()),
		container.NewHBox(sv.backButton, layout.NewSpacer(), sv.nextButton),
		nil,
		nil,
		container.NewCenter(card),
	)
}

func (sv *StudyView) Content() fyne.CanvasObject { return sv.container }

// ShowCard displays term as card position+1 of total and hides the previous answer.
func (sv *StudyView) ShowCard(setTitle, term string, position, total int) {
	sv.titleLabel.SetText("Studying Flashcard Set: " + setTitle)
	sv.progress.SetCard(position, total)
	sv.termLabel.SetText(term)
	sv.answerLabel.SetText("")
	sv.revealButton.Enable()
}

func (sv *StudyView) ShowAnswer(definition string) {
	sv.answerLabel.SetText(definition)
}

// Reset blanks the card area.
func (sv *StudyView) Reset() {
	sv.titleLabel.SetText("")
	sv.progress.Reset()
	sv.termLabel.SetText("")
	sv.answerLabel.SetText("")
}

func (sv *StudyView) Term() string     { return sv.termLabel.Text }
func (sv *StudyView) Answer() string   { return sv.answerLabel.Text }
func (sv *StudyView) Progress() string { return sv.progress.GetStage() }

func (sv *StudyView) SetRevealHandler(handler func()) { sv.revealHandler = handler }
func (sv *StudyView) SetNextHandler(handler func())   { sv.nextHandler = handler }
func (sv *StudyView) SetBackHandler(handler func())   { sv.backHandler = handler }
