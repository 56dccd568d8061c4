package main

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"faith-walk/internal/config"
	"faith-walk/internal/controllers"
	"faith-walk/internal/logger"
	"faith-walk/internal/shutdown"
	"faith-walk/internal/storage"
	"faith-walk/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Faith Walk"
	AppID      = "com.faithwalk.journal"
	AppVersion = "1.0.0"
)

// Application wires the journal store, controller and window together
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	controller *controllers.JournalController
	view       *views.MainView
	store      *storage.Store

	shutdown *shutdown.Manager
	cancel   context.CancelFunc
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := NewApplication(ctx, cancel, cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication opens storage and builds the window
func NewApplication(ctx context.Context, cancel context.CancelFunc, cfg config.Config) (*Application, error) {
	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)
	appLogger.Info("App", "application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"database":   cfg.DatabasePath,
	})

	store, err := storage.Open(cfg.DatabasePath, appLogger)
	if err != nil {
		return nil, fmt.Errorf("open journal storage: %w", err)
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	view := views.NewMainView(window)
	view.SetStoragePath(store.Path())

	controller := controllers.NewJournalController(ctx, store, appLogger)
	controller.SetView(view)
	views.Bind(view, controller)

	manager := shutdown.NewManager(appLogger)
	manager.Register("storage", shutdown.Func(func() {
		if err := store.Close(); err != nil {
			appLogger.Error("App", err, map[string]interface{}{"step": "close storage"})
		}
	}))
	manager.Register("context", shutdown.Func(cancel))

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: controller,
		view:       view,
		store:      store,
		shutdown:   manager,
		cancel:     cancel,
	}

	if err := controller.Start(); err != nil {
		manager.Shutdown()
		return nil, fmt.Errorf("load journal: %w", err)
	}

	application.setupWindowEvents()
	return application, nil
}

// Run shows the window and blocks until the app quits
func (app *Application) Run() {
	app.logger.Info("App", "starting application UI", nil)

	app.shutdown.Listen(func() {
		fyne.Do(app.window.Close)
	})

	app.window.ShowAndRun()

	// ShowAndRun returns once the last window is gone.
	app.shutdown.Shutdown()
	app.logger.Info("App", "application terminated", nil)
}

// setupWindowEvents closes storage when the window goes away
func (app *Application) setupWindowEvents() {
	app.window.SetOnClosed(func() {
		app.logger.Info("App", "window closed, performing cleanup", nil)
		app.shutdown.Shutdown()
	})
}
