package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// confirmState is a yes/no dialog guarding the destructive operations. The
// callbacks run on the model so they can chain into any screen.
type confirmState struct {
	prompt   string
	yes      func(*model)
	no       func(*model)
	focusYes bool
}

// openConfirm shows a yes/no dialog. No is focused first so a stray enter
// never destroys anything.
func (m *model) openConfirm(prompt string, yes, no func(*model)) {
	m.confirm = confirmState{prompt: prompt, yes: yes, no: no}
	m.screen = screenConfirm
}

// openClearConfirm guards the registry wipe.
func (m *model) openClearConfirm() {
	m.openConfirm(
		fmt.Sprintf("Delete all %d item(s) and reset the id counter? This cannot be undone.", m.reg.Len()),
		func(m *model) {
			err := m.reg.Clear()
			switch {
			case err != nil && errors.Is(err, registry.ErrUnsaved):
				m.statusFromError(err)
			case err != nil:
				m.statusFromError(err)
				m.screen = screenMenu
				return
			default:
				m.setStatus(statusSuccess, "all items cleared")
			}
			logger.Infof("registry cleared")
			m.screen = screenMenu
		},
		func(m *model) { m.screen = screenMenu },
	)
}

// openDeleteConfirm guards a single-record delete from the detail screen.
func (m *model) openDeleteConfirm(id int32) {
	it, err := m.reg.Get(id)
	if err != nil {
		m.statusFromError(err)
		return
	}
	m.openConfirm(
		fmt.Sprintf("Delete item %d (%s)? This cannot be undone.", it.ID, it.Name),
		func(m *model) {
			err := m.reg.Delete(id)
			switch {
			case err != nil && errors.Is(err, registry.ErrUnsaved):
				m.statusFromError(err)
			case err != nil:
				m.statusFromError(err)
				m.screen = screenMenu
				return
			default:
				m.setStatus(statusSuccess, fmt.Sprintf("item %d deleted", id))
			}
			logger.Infof("item %d deleted", id)

			// Search result positions are stale after a delete; only the
			// unfiltered table survives the jump back.
			if m.detailReturn == screenBrowse && m.browser.positions == nil {
				m.screen = screenBrowse
				m.refreshBrowser()
				return
			}
			m.screen = screenMenu
		},
		func(m *model) { m.screen = screenDetail },
	)
}

func (m *model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	c := &m.confirm
	switch keyMsg.String() {
	case "y":
		c.yes(m)
	case "n", keyEsc:
		c.no(m)
	case keyTab, keyLeft, keyRight:
		c.focusYes = !c.focusYes
	case keyEnter:
		if c.focusYes {
			c.yes(m)
		} else {
			c.no(m)
		}
	}
	return m, nil
}

func (m *model) viewConfirm() string {
	c := &m.confirm

	yesBtn := buttonStyle.Render(" Yes ")
	noBtn := buttonActiveStyle.Render(" No ")
	if c.focusYes {
		yesBtn = buttonActiveStyle.Render(" Yes ")
		noBtn = buttonStyle.Render(" No ")
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Confirm"))
	sb.WriteString("\n\n")
	sb.WriteString(valueStyle.Render(c.prompt))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, yesBtn, "  ", noBtn))
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("y/n answer • tab switch • enter choose • esc cancel"))
	return boxStyle.Render(sb.String())
}
