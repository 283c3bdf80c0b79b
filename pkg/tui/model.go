package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/haleta-e/lost-and-found-manager/pkg/config"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// screen identifies which view currently owns the display and the keyboard.
type screen int

const (
	screenMenu screen = iota
	screenBrowse
	screenDetail
	screenForm
	screenSearch
	screenCandidates
	screenMatchIDs
	screenSort
	screenHelp
	screenConfirm
)

func (s screen) String() string {
	switch s {
	case screenMenu:
		return "menu"
	case screenBrowse:
		return "browse"
	case screenDetail:
		return "detail"
	case screenForm:
		return "form"
	case screenSearch:
		return "search"
	case screenCandidates:
		return "candidates"
	case screenMatchIDs:
		return "match-ids"
	case screenSort:
		return "sort"
	case screenHelp:
		return "help"
	case screenConfirm:
		return "confirm"
	}
	return "unknown"
}

// statusKind selects the status bar color for a message.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// statusMessage is the last action result shown in the status bar.
type statusMessage struct {
	kind statusKind
	text string
}

// model is the single Bubble Tea model for the whole application. Screens
// share it; each screen file owns its part of the state.
type model struct {
	reg *registry.Registry
	cfg *config.Config

	screen screen

	// Per-screen state
	menu     list.Model
	browser  browserState
	form     formState
	search   searchState
	cands    candidatesState
	matchIDs matchIDsState
	sortPick sortState
	confirm  confirmState
	helpView viewport.Model

	// detailID is the record shown on the detail screen; detailReturn is
	// where esc goes back to.
	detailID     int32
	detailReturn screen

	status statusMessage

	width  int
	height int
	ready  bool

	shouldQuit bool
}

func initialModel(reg *registry.Registry, cfg *config.Config) model {
	return model{
		reg:    reg,
		cfg:    cfg,
		screen: screenMenu,
		menu:   newMenuList(),
	}
}

// setStatus records an action result for the status bar.
func (m *model) setStatus(kind statusKind, text string) {
	m.status = statusMessage{kind: kind, text: text}
}

// clearStatus empties the status bar, usually on entering a new screen.
func (m *model) clearStatus() {
	m.status = statusMessage{}
}

// statusFromError renders an operation error into the status bar.
func (m *model) statusFromError(err error) {
	m.setStatus(statusError, err.Error())
}
