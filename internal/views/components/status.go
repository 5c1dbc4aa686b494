package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and the catalog size
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	catalogInfo *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.catalogInfo = widget.NewLabel("Sets: --")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.catalogInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetCatalogInfo shows how many sets are stored
func (sb *StatusBar) SetCatalogInfo(sets int) {
	sb.catalogInfo.SetText(fmt.Sprintf("Sets: %d", sets))
}

func (sb *StatusBar) GetCatalogInfo() string {
	return sb.catalogInfo.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.catalogInfo.SetText("Sets: --")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// ProgressBar shows how far a study session has advanced
type ProgressBar struct {
	container   *fyne.Container
	progressBar *widget.ProgressBar
	stageLabel  *widget.Label
}

// NewProgressBar creates a new progress bar component
func NewProgressBar() *ProgressBar {
	pb := &ProgressBar{}
	pb.createComponents()
	pb.buildLayout()
	return pb
}

func (pb *ProgressBar) createComponents() {
	pb.progressBar = widget.NewProgressBar()
	pb.progressBar.TextFormatter = func() string { return "" }
	pb.stageLabel = widget.NewLabel("")
}

func (pb *ProgressBar) buildLayout() {
	pb.container = container.NewVBox(
		pb.stageLabel,
		pb.progressBar,
	)
}

// SetCard shows card position+1 of total
func (pb *ProgressBar) SetCard(position, total int) {
	if total <= 0 {
		pb.Reset()
		return
	}
	pb.stageLabel.SetText(fmt.Sprintf("Card %d of %d", position+1, total))
	pb.progressBar.SetValue(float64(position) / float64(total))
}

// GetStage returns the current stage text
func (pb *ProgressBar) GetStage() string {
	return pb.stageLabel.Text
}

// Reset resets the progress bar to initial state
func (pb *ProgressBar) Reset() {
	pb.progressBar.SetValue(0.0)
	pb.stageLabel.SetText("")
}

// GetContainer returns the progress bar container
func (pb *ProgressBar) GetContainer() *fyne.Container {
	return pb.container
}
