package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// searchKind selects which index the query runs against.
type searchKind int

const (
	searchByName searchKind = iota
	searchByCategory
	searchByDescription
	searchByLocation
	searchByDate
	searchByStatus
	searchByMatched
	searchByClaimed
	searchKindCount
)

func (k searchKind) label() string {
	switch k {
	case searchByName:
		return "By name"
	case searchByCategory:
		return "By category"
	case searchByDescription:
		return "By description"
	case searchByLocation:
		return "By location"
	case searchByDate:
		return "By date reported"
	case searchByStatus:
		return "Open lost/found reports"
	case searchByMatched:
		return "By matched flag"
	case searchByClaimed:
		return "By claimed flag"
	}
	return "unknown"
}

// needsQuery reports whether the kind takes typed input rather than a
// two-way choice.
func (k searchKind) needsQuery() bool {
	return k <= searchByDate
}

// choices returns the two options of a choice kind.
func (k searchKind) choices() [2]string {
	switch k {
	case searchByStatus:
		return [2]string{"Lost", "Found"}
	case searchByMatched:
		return [2]string{"matched", "unmatched"}
	case searchByClaimed:
		return [2]string{"claimed", "unclaimed"}
	}
	return [2]string{}
}

// searchState drives the two-phase search screen: pick a kind, then supply
// the query or choice.
type searchState struct {
	kind    searchKind
	entered bool // true once the kind is chosen and the query has focus
	query   textinput.Model
	choice  int // 0 or 1 for the choice kinds
}

func (m *model) openSearch() tea.Cmd {
	q := textinput.New()
	q.Placeholder = "search text"
	q.CharLimit = 64
	q.Width = 40
	q.Prompt = "> "
	q.PlaceholderStyle = subtitleStyle
	q.TextStyle = valueStyle
	m.search = searchState{query: q}
	m.screen = screenSearch
	m.clearStatus()
	return nil
}

func (m *model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.search.entered {
			var cmd tea.Cmd
			m.search.query, cmd = m.search.query.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	s := &m.search
	if !s.entered {
		switch keyMsg.String() {
		case keyEsc, "q":
			m.screen = screenMenu
		case keyUp, "k":
			if s.kind > 0 {
				s.kind--
			}
		case keyDown, "j":
			if s.kind < searchKindCount-1 {
				s.kind++
			}
		case keyEnter:
			s.entered = true
			s.choice = 0
			if s.kind.needsQuery() {
				if s.kind == searchByDate {
					s.query.Placeholder = "YYYY-MM-DD"
					s.query.CharLimit = item.DateLen
				} else {
					s.query.Placeholder = "search text"
					s.query.CharLimit = 64
				}
				s.query.SetValue("")
				return m, s.query.Focus()
			}
		}
		return m, nil
	}

	switch keyMsg.String() {
	case keyEsc:
		s.entered = false
		s.query.Blur()
		return m, nil
	case keyLeft, keyRight:
		if !s.kind.needsQuery() {
			s.choice = 1 - s.choice
			return m, nil
		}
	case keyEnter:
		m.runSearch()
		return m, nil
	}

	if s.kind.needsQuery() {
		var cmd tea.Cmd
		s.query, cmd = s.query.Update(msg)
		return m, cmd
	}
	return m, nil
}

// runSearch executes the chosen search and opens the result table. An empty
// result still opens the table so the outcome is visible.
func (m *model) runSearch() {
	s := &m.search
	var (
		positions []int
		title     string
	)

	switch s.kind {
	case searchByName, searchByCategory, searchByDescription, searchByLocation:
		query := strings.TrimSpace(s.query.Value())
		if query == "" {
			m.setStatus(statusError, "search text cannot be empty")
			return
		}
		field := map[searchKind]item.Field{
			searchByName:        item.FieldName,
			searchByCategory:    item.FieldCategory,
			searchByDescription: item.FieldDescription,
			searchByLocation:    item.FieldLocation,
		}[s.kind]
		positions = m.reg.SearchText(field, query)
		title = fmt.Sprintf("Items whose %s contains %q", field, query)

	case searchByDate:
		date, err := item.ParseDate(strings.TrimSpace(s.query.Value()))
		if err != nil {
			m.statusFromError(err)
			return
		}
		positions = m.reg.SearchDate(date)
		title = fmt.Sprintf("Items reported on %s", date)

	case searchByStatus:
		status := item.StatusLost
		if s.choice == 1 {
			status = item.StatusFound
		}
		positions = m.reg.SearchStatus(status)
		title = fmt.Sprintf("Open %s reports", status)

	case searchByMatched:
		want := s.choice == 0
		positions = m.reg.FilterMatched(want)
		title = "Matched items"
		if !want {
			title = "Unmatched items"
		}

	case searchByClaimed:
		want := s.choice == 0
		positions = m.reg.FilterClaimed(want)
		title = "Claimed items"
		if !want {
			title = "Unclaimed items"
		}
	}

	logger.Debugf("search %q returned %d items", title, len(positions))
	if positions == nil {
		// Distinguish "no results" from the browse screen's nil-means-all.
		positions = []int{}
	}
	m.openBrowse(positions, title)
}

func (m *model) viewSearch() string {
	s := &m.search

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Search Items"))
	sb.WriteString("\n\n")

	for k := searchKind(0); k < searchKindCount; k++ {
		line := k.label()
		if k == s.kind {
			line = selectedStyle.Render("> " + line)
		} else {
			line = labelStyle.Render("  " + line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if s.entered {
		if s.kind.needsQuery() {
			sb.WriteString(s.query.View())
			sb.WriteString("\n\n")
			sb.WriteString(hintStyle.Render("enter search • esc change kind"))
		} else {
			c := s.kind.choices()
			sb.WriteString(selectedStyle.Render("< " + c[s.choice] + " >"))
			sb.WriteString("\n\n")
			sb.WriteString(hintStyle.Render("←/→ toggle • enter search • esc change kind"))
		}
	} else {
		sb.WriteString(hintStyle.Render("↑/↓ choose • enter continue • esc back"))
	}
	return boxStyle.Render(sb.String())
}
