package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// browserState drives the scrolling item table. It serves plain browsing,
// search results, and the pick step of menu actions that need a target item.
type browserState struct {
	vp     viewport.Model
	title  string
	cursor int

	// positions filters the table to a search result; nil means every
	// record in store order.
	positions []int

	// selectTarget is the screen enter moves to with the chosen item.
	selectTarget screen
}

// rowCount returns how many rows the table shows.
func (b *browserState) rowCount(m *model) int {
	if b.positions != nil {
		return len(b.positions)
	}
	return m.reg.Len()
}

// rowItem resolves table row r to its record.
func (b *browserState) rowItem(m *model, r int) item.Item {
	if b.positions != nil {
		return m.reg.At(b.positions[r])
	}
	return m.reg.At(r)
}

// openBrowse shows the table over all records or a position filter.
func (m *model) openBrowse(positions []int, title string) {
	m.openBrowseTarget(positions, title, screenDetail)
}

// openPickForDetail opens the table as the pick step of a menu action.
func (m *model) openPickForDetail(title string, target screen) {
	m.openBrowseTarget(nil, title, target)
}

func (m *model) openBrowseTarget(positions []int, title string, target screen) {
	m.browser = browserState{
		title:        title,
		positions:    positions,
		selectTarget: target,
	}
	m.browser.vp = viewport.New(m.width, m.browseHeight())
	m.screen = screenBrowse
	m.refreshBrowser()
}

// browseHeight is the viewport height under the chrome rows (header, table
// header, status bar, hints).
func (m *model) browseHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// refreshBrowser re-renders the table content and keeps the cursor visible.
func (m *model) refreshBrowser() {
	b := &m.browser
	count := b.rowCount(m)
	if count == 0 {
		b.vp.SetContent(subtitleStyle.Render("No items to show."))
		return
	}
	if b.cursor >= count {
		b.cursor = count - 1
	}

	var rows strings.Builder
	for r := 0; r < count; r++ {
		rows.WriteString(browseRow(b.rowItem(m, r), r == b.cursor))
		if r < count-1 {
			rows.WriteString("\n")
		}
	}
	b.vp.SetContent(rows.String())

	// Keep the cursor line inside the viewport.
	if b.cursor < b.vp.YOffset {
		b.vp.SetYOffset(b.cursor)
	} else if b.cursor >= b.vp.YOffset+b.vp.Height {
		b.vp.SetYOffset(b.cursor - b.vp.Height + 1)
	}
}

// browseRow renders one table line. Styling is applied after the columns are
// padded, so escape sequences never shift the alignment; a selected row is
// styled as a whole instead of nesting a status color inside the bar.
func browseRow(it item.Item, selected bool) string {
	flags := ""
	if it.Matched {
		flags += "M"
	}
	if it.Claimed {
		flags += "C"
	}
	status := fmt.Sprintf("%-7s", it.Status)
	rest := fmt.Sprintf(" %-22s %-12s %-10s %-18s %s",
		clip(it.Name, 22),
		clip(string(it.Category), 12),
		it.Date.String(),
		clip(it.Location, 18),
		flags,
	)
	id := fmt.Sprintf("%-5d ", it.ID)

	if selected {
		return selectedStyle.Render("> " + id + status + rest)
	}
	if it.Status == item.StatusLost {
		status = lostStyle.Render(status)
	} else {
		status = foundStyle.Render(status)
	}
	return "  " + id + status + rest
}

// clip shortens s to width runes with an ellipsis.
func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func (m *model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.browser.vp, cmd = m.browser.vp.Update(msg)
		return m, cmd
	}

	b := &m.browser
	switch keyMsg.String() {
	case keyEsc, "q":
		m.screen = screenMenu
	case keyUp, "k":
		if b.cursor > 0 {
			b.cursor--
			m.refreshBrowser()
		}
	case keyDown, "j":
		if b.cursor < b.rowCount(m)-1 {
			b.cursor++
			m.refreshBrowser()
		}
	case keyEnter:
		if b.rowCount(m) == 0 {
			break
		}
		chosen := b.rowItem(m, b.cursor)
		switch b.selectTarget {
		case screenForm:
			return m, m.openEditForm(chosen)
		case screenCandidates:
			m.openCandidates(chosen.ID)
		default:
			m.openDetail(chosen.ID, screenBrowse)
		}
	}
	return m, nil
}

func (m *model) viewBrowse() string {
	header := fmt.Sprintf("  %-5s %-7s %-22s %-12s %-10s %-18s %s",
		"ID", "Status", "Name", "Category", "Date", "Location", "Flags")

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.browser.title))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render(header))
	sb.WriteString("\n")
	sb.WriteString(m.browser.vp.View())
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("↑/↓ move • enter select • esc back"))
	return sb.String()
}
