package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"runtime"

	"flashcards/internal/config"
	"flashcards/internal/controllers"
	"flashcards/internal/logger"
	"flashcards/internal/services"
	"flashcards/internal/shutdown"
	"flashcards/internal/storage"
	"flashcards/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"
)

const (
	AppName    = "Flashcard App"
	AppID      = "com.flashcards.desktop"
	AppVersion = "1.0.0"
)

// Application holds the Fyne app, the MVC components and the shutdown manager
type Application struct {
	fyneApp fyne.App
	logger  logger.Logger
	config  *config.Config

	controller *controllers.MainController
	view       *views.MainView

	studyService *services.StudyService
	shutdown     *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// NewApplication wires storage, services, views and the controller together
func NewApplication(cfg *config.Config) (*Application, error) {
	appLogger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	appLogger.Info("Application starting", map[string]interface{}{
		"version":     AppVersion,
		"go_version":  runtime.Version(),
		"storage_dir": cfg.Storage.Dir,
		"suffix":      cfg.Storage.Suffix,
		"log_level":   cfg.Log.Level,
	})

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	// Storage
	fsys := afero.NewOsFs()
	store := storage.NewSetStore(fsys, cfg.Storage.Dir, cfg.Storage.Suffix, appLogger)
	catalog := storage.NewCatalog(fsys, cfg.Storage.Dir, cfg.Storage.Suffix, appLogger)

	// Services
	var rng *rand.Rand
	if cfg.Study.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Study.Seed, cfg.Study.Seed))
	}
	studyService := services.NewStudyService(store, rng, appLogger)
	builder := services.NewSetBuilder(store, appLogger)

	// Views
	navigator := views.NewNavigator(views.HomeViewID, appLogger)
	mainView := views.NewMainView(window, navigator)
	screens := controllers.Screens{
		Home:   views.NewHomeView(),
		Picker: views.NewPickerView(catalog, appLogger),
		Study:  views.NewStudyView(),
		Create: views.NewCreateView(),
	}

	controller := controllers.NewMainController(navigator, screens, studyService, builder, catalog, mainView, appLogger)
	controller.SetQuitHandler(fyneApp.Quit)

	application := &Application{
		fyneApp:      fyneApp,
		logger:       appLogger,
		config:       cfg,
		controller:   controller,
		view:         mainView,
		studyService: studyService,
		shutdown:     shutdown.NewManager(appLogger),
	}

	application.shutdown.Register("controller", controller)

	application.setupMenus()
	application.setupWindowEvents()

	return application, nil
}

// Run shows the home view and blocks in the Fyne event loop
func (a *Application) Run() error {
	if err := a.controller.Start(); err != nil {
		return fmt.Errorf("show home view: %w", err)
	}

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application terminated", nil)
	return nil
}

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload Sets", func() {
			if err := a.controller.Reload(); err != nil {
				a.view.ShowError("Reload failed", err)
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("About", func() {
			a.view.ShowAboutDialog(AppName, AppVersion, a.config.Storage.Dir)
		}),
	)

	a.view.GetWindow().SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// setupWindowEvents asks for confirmation before the window closes
func (a *Application) setupWindowEvents() {
	a.view.GetWindow().SetCloseIntercept(func() {
		a.logger.Info("Window close requested", nil)

		a.view.ShowConfirm(
			"Exit Application",
			"Are you sure you want to exit?",
			func(confirmed bool) {
				if confirmed {
					a.view.Close()
				}
			},
		)
	})
}

func newLogger(cfg config.LogConfig) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.Format == "json" {
		return logger.NewJSONLogger(level), nil
	}
	return logger.NewConsoleLogger(level), nil
}
