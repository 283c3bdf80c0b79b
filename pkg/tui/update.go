package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/logging"
)

var logger *logging.Logger

// initLogger sets up the session logger for the TUI. Called from Run rather
// than package init so the configured log directory is already applied.
func initLogger() {
	if logger != nil {
		return
	}
	var err error
	logger, err = logging.NewLogger("tui")
	if err != nil {
		// NewLogger handed back a stderr fallback; note it and carry on.
		logger.Warnf("file logging unavailable, falling back to stderr: %v", err)
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

// Update routes every message to the screen that owns the display. Registry
// mutations happen synchronously in these handlers; the store is not safe
// for concurrent use and nothing here spawns work against it.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.shouldQuit {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		logger.Debugf("window resized to %dx%d", msg.Width, msg.Height)
		return m.handleResize(msg)

	case tea.KeyMsg:
		logger.Debugf("key %q on %s screen", msg.String(), m.screen)
		if msg.String() == keyCtrlC {
			m.shouldQuit = true
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenBrowse:
		return m.updateBrowse(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenSearch:
		return m.updateSearch(msg)
	case screenCandidates:
		return m.updateCandidates(msg)
	case screenMatchIDs:
		return m.updateMatchIDs(msg)
	case screenSort:
		return m.updateSort(msg)
	case screenHelp:
		return m.updateHelp(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m *model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.menu.SetSize(msg.Width, msg.Height-4)
	m.browser.vp.Width = msg.Width
	m.browser.vp.Height = m.browseHeight()
	m.helpView.Width = msg.Width
	m.helpView.Height = m.browseHeight()

	if m.screen == screenBrowse {
		m.refreshBrowser()
	}
	return m, nil
}
