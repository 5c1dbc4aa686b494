package views

import (
	"errors"
	"fmt"

	"flashcards/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// ViewID names a screen registered with the Navigator.
type ViewID string

const (
	HomeViewID   ViewID = "home"
	PickerViewID ViewID = "picker"
	StudyViewID  ViewID = "study"
	CreateViewID ViewID = "create"
)

var ErrUnknownView = errors.New("unknown view")

// View is one screen of the application.
type View interface {
	Content() fyne.CanvasObject
}

// Activatable views are notified each time they become the active view.
type Activatable interface {
	OnShow()
}

// Resettable views discard their widget state on a full refresh.
type Resettable interface {
	Reset()
}

// CatalogBacked views display the set catalog and re-query it on demand.
type CatalogBacked interface {
	RefreshCatalog()
}

// Navigator holds the registered views and shows exactly one at a time inside
// a single stack container.
type Navigator struct {
	stack  *fyne.Container
	views  map[ViewID]View
	order  []ViewID
	active ViewID
	home   ViewID
	logger logger.Logger
}

func NewNavigator(home ViewID, log logger.Logger) *Navigator {
	return &Navigator{
		stack:  container.NewStack(),
		views:  make(map[ViewID]View),
		home:   home,
		logger: log.WithComponent("navigator"),
	}
}

// Container is the window content that hosts the active view.
func (n *Navigator) Container() *fyne.Container {
	return n.stack
}

// Register adds v under id. Registering an id twice replaces the earlier view.
func (n *Navigator) Register(id ViewID, v View) {
	if _, exists := n.views[id]; exists {
		n.logger.Warning("View registered twice", map[string]interface{}{"view": string(id)})
	} else {
		n.order = append(n.order, id)
	}
	n.views[id] = v
}

// Show deactivates the current view and activates id.
func (n *Navigator) Show(id ViewID) error {
	v, ok := n.views[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownView, id)
	}

	if current, ok := n.views[n.active]; ok && n.active != id {
		current.Content().Hide()
	}

	content := v.Content()
	content.Show()
	n.stack.Objects = []fyne.CanvasObject{content}
	n.stack.Refresh()

	previous := n.active
	n.active = id

	if a, ok := v.(Activatable); ok {
		a.OnShow()
	}

	n.logger.Debug("View shown", map[string]interface{}{
		"from": string(previous),
		"to":   string(id),
	})
	return nil
}

// Active returns the id of the visible view, or "" before the first Show.
func (n *Navigator) Active() ViewID {
	return n.active
}

// RefreshCatalogViews asks every catalog-backed view to re-read the catalog.
func (n *Navigator) RefreshCatalogViews() {
	for _, id := range n.order {
		if c, ok := n.views[id].(CatalogBacked); ok {
			c.RefreshCatalog()
		}
	}
}

// Refresh resets every view and returns to the home view.
func (n *Navigator) Refresh() error {
	for _, id := range n.order {
		if r, ok := n.views[id].(Resettable); ok {
			r.Reset()
		}
	}
	n.RefreshCatalogViews()

	n.logger.Info("All views refreshed", map[string]interface{}{"views": len(n.order)})
	return n.Show(n.home)
}
