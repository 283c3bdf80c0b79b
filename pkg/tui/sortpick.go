package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// sortKeys is the pick order of the sort screen.
var sortKeys = []registry.SortKey{
	registry.SortByID,
	registry.SortByName,
	registry.SortByCategory,
	registry.SortByDate,
	registry.SortByStatus,
}

// sortKeyByName resolves a configured key name. Unknown names fall back to
// id order; config validation normally rejects them before this point.
func sortKeyByName(name string) registry.SortKey {
	for _, k := range sortKeys {
		if k.String() == name {
			return k
		}
	}
	return registry.SortByID
}

// sortState is the sort key picker.
type sortState struct {
	cursor    int
	ascending bool
}

func (m *model) openSortPicker() {
	s := sortState{ascending: m.cfg.DefaultSort.Ascending}
	configured := sortKeyByName(m.cfg.DefaultSort.Key)
	for i, k := range sortKeys {
		if k == configured {
			s.cursor = i
		}
	}
	m.sortPick = s
	m.screen = screenSort
	m.clearStatus()
}

func (m *model) updateSort(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	s := &m.sortPick
	switch keyMsg.String() {
	case keyEsc, "q":
		m.screen = screenMenu
	case keyUp, "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case keyDown, "j":
		if s.cursor < len(sortKeys)-1 {
			s.cursor++
		}
	case keyLeft, keyRight:
		s.ascending = !s.ascending
	case keyEnter:
		key := sortKeys[s.cursor]
		if err := m.reg.Sort(key, s.ascending); err != nil {
			m.statusFromError(err)
			break
		}
		direction := "ascending"
		if !s.ascending {
			direction = "descending"
		}
		logger.Infof("store sorted by %s %s", key, direction)
		m.setStatus(statusSuccess, fmt.Sprintf("items sorted by %s, %s", key, direction))
		m.openBrowse(nil, "All items")
	}
	return m, nil
}

func (m *model) viewSort() string {
	s := &m.sortPick

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Sort Items"))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("Reorders the stored registry, not just the view."))
	sb.WriteString("\n\n")

	for i, k := range sortKeys {
		line := k.String()
		if i == s.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = labelStyle.Render("  " + line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	direction := "Ascending"
	if !s.ascending {
		direction = "Descending"
	}
	sb.WriteString(labelStyle.Render("Direction  "))
	sb.WriteString(selectedStyle.Render("< " + direction + " >"))
	if sortKeys[s.cursor] == registry.SortByStatus && !s.ascending {
		sb.WriteString(hintStyle.Render("  (Lost reports first)"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("↑/↓ choose key • ←/→ direction • enter sort • esc back"))
	return boxStyle.Render(sb.String())
}
