package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var body string
	switch m.screen {
	case screenMenu:
		body = m.viewMenu()
	case screenBrowse:
		body = m.viewBrowse()
	case screenDetail:
		body = m.viewDetail()
	case screenForm:
		body = m.viewForm()
	case screenSearch:
		body = m.viewSearch()
	case screenCandidates:
		body = m.viewCandidates()
	case screenMatchIDs:
		body = m.viewMatchIDs()
	case screenSort:
		body = m.viewSort()
	case screenHelp:
		body = m.viewHelp()
	case screenConfirm:
		body = m.viewConfirm()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatusBar())
}

// viewStatusBar shows the last action result, or the store summary when
// nothing happened yet.
func (m *model) viewStatusBar() string {
	if m.status.text != "" {
		style := statusBarStyle
		switch m.status.kind {
		case statusSuccess:
			style = statusBarStyle.Foreground(softTeal)
		case statusError:
			style = statusBarStyle.Foreground(dustyRose)
		}
		return style.Render(m.status.text)
	}
	return statusBarStyle.Render(fmt.Sprintf("%d item(s) on file • next id %d • %s",
		m.reg.Len(), m.reg.NextID(), m.reg.Path()))
}
