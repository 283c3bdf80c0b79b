package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuAction identifies what a menu entry does when selected.
type menuAction int

const (
	actionReportLost menuAction = iota
	actionReportFound
	actionBrowse
	actionSearch
	actionUpdate
	actionDelete
	actionMatchIDs
	actionCandidates
	actionClaim
	actionSort
	actionClearAll
	actionHelp
)

// menuEntry is one selectable row of the main menu.
type menuEntry struct {
	title  string
	desc   string
	action menuAction
}

func (e menuEntry) FilterValue() string { return e.title }
func (e menuEntry) Title() string       { return e.title }
func (e menuEntry) Description() string { return e.desc }

// menuDelegate renders menu rows in the house colors.
type menuDelegate struct {
	list.DefaultDelegate
}

func newMenuDelegate() menuDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(amberGold).
		BorderForeground(amberGold)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(mutedGray).
		BorderForeground(amberGold)
	return menuDelegate{DefaultDelegate: d}
}

func newMenuList() list.Model {
	entries := []menuEntry{
		{title: "Report a lost item", desc: "File a report for something you lost", action: actionReportLost},
		{title: "Report a found item", desc: "File a report for something you found", action: actionReportFound},
		{title: "Browse all items", desc: "Every report in the registry", action: actionBrowse},
		{title: "Search items", desc: "By name, category, description, location, date, or flags", action: actionSearch},
		{title: "Update an item", desc: "Edit the fields of an existing report", action: actionUpdate},
		{title: "Delete an item", desc: "Remove a report permanently", action: actionDelete},
		{title: "Match two items", desc: "Link a lost and a found report by id", action: actionMatchIDs},
		{title: "Review match candidates", desc: "Possible counterparts for a report", action: actionCandidates},
		{title: "Mark an item claimed", desc: "Item was returned to its owner", action: actionClaim},
		{title: "Sort items", desc: "Reorder the registry by a chosen field", action: actionSort},
		{title: "Clear all items", desc: "Wipe the registry and start over", action: actionClearAll},
		{title: "Help", desc: "Keys and workflow reference", action: actionHelp},
	}

	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}

	l := list.New(items, newMenuDelegate(), 0, 0)
	l.Title = "Lost & Found"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(amberGold).
		Bold(true).
		Padding(0, 1)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		}
	}
	return l
}

func (m *model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q":
			m.shouldQuit = true
			return m, tea.Quit
		case keyEnter:
			if entry, ok := m.menu.SelectedItem().(menuEntry); ok {
				return m.runMenuAction(entry.action)
			}
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// runMenuAction opens the screen behind a menu entry.
func (m *model) runMenuAction(action menuAction) (tea.Model, tea.Cmd) {
	switch action {
	case actionReportLost:
		return m, m.openAddForm(true)
	case actionReportFound:
		return m, m.openAddForm(false)
	case actionBrowse:
		m.openBrowse(nil, "All items")
	case actionSearch:
		return m, m.openSearch()
	case actionUpdate:
		m.openPickForDetail("Update which item?", screenForm)
	case actionDelete:
		m.openPickForDetail("Delete which item?", screenDetail)
	case actionMatchIDs:
		return m, m.openMatchIDs()
	case actionCandidates:
		m.openPickForDetail("Find candidates for which item?", screenCandidates)
	case actionClaim:
		m.openPickForDetail("Claim which item?", screenDetail)
	case actionSort:
		m.openSortPicker()
	case actionClearAll:
		m.openClearConfirm()
	case actionHelp:
		m.openHelp()
	}
	return m, nil
}

func (m *model) viewMenu() string {
	banner := subtitleStyle.Render(fmt.Sprintf("Welcome back. %d item(s) on file.", m.reg.Len()))
	return lipgloss.JoinVertical(lipgloss.Left, banner, m.menu.View())
}
