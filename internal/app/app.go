// Package app wires one dispatcher, one store, and the action creators into
// an explicitly constructed application context. Views receive an *App
// instead of reaching for process-wide singletons.
package app

import (
	"github.com/charmbracelet/log"

	"github.com/nibzard/fluxtodo/internal/action"
	"github.com/nibzard/fluxtodo/internal/dispatcher"
	"github.com/nibzard/fluxtodo/internal/logging"
	"github.com/nibzard/fluxtodo/internal/store"
)

// App holds the single instance of each flux component.
type App struct {
	Dispatcher *dispatcher.Dispatcher
	Store      *store.Store
	Actions    *action.Creators
	Logger     *log.Logger
}

// New builds an App. A nil logger discards diagnostics.
func New(logger *log.Logger) *App {
	logger = logging.OrNop(logger)
	d := dispatcher.New(logger)
	return &App{
		Dispatcher: d,
		Store:      store.New(d, logger),
		Actions:    action.NewCreators(d, logger),
		Logger:     logger,
	}
}

// Close detaches the store from the dispatcher.
func (a *App) Close() error {
	return a.Store.Close()
}
