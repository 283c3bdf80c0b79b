// Package tui is the terminal interface of the lost and found manager: a
// menu-driven set of screens over a single registry. All registry access is
// synchronous inside the update loop, which keeps the store single-threaded.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/config"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// App hosts the interface over one registry.
type App struct {
	reg *registry.Registry
	cfg *config.Config
}

// NewApp creates the interface for a loaded registry.
func NewApp(reg *registry.Registry, cfg *config.Config) *App {
	return &App{reg: reg, cfg: cfg}
}

// Run starts the interface and blocks until the user exits or ctx is
// canceled.
func (a *App) Run(ctx context.Context) error {
	initLogger()
	logger.Infof("session started, %d item(s) on file at %s", a.reg.Len(), a.reg.Path())

	m := initialModel(a.reg, a.cfg)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}

	logger.Infof("session ended")
	return nil
}
