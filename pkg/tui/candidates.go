package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// candidatesState lists the possible counterparts of one record.
type candidatesState struct {
	targetID  int32
	positions []int
	cursor    int
}

// openCandidates runs candidate discovery for the record and shows the
// results. Confirming a row links the pair.
func (m *model) openCandidates(id int32) {
	positions, err := m.reg.FindMatches(id)
	if err != nil {
		m.statusFromError(err)
		return
	}
	m.cands = candidatesState{targetID: id, positions: positions}
	m.screen = screenCandidates
	logger.Debugf("item %d has %d match candidates", id, len(positions))
}

func (m *model) updateCandidates(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	c := &m.cands
	switch keyMsg.String() {
	case keyEsc, "q":
		m.openDetail(c.targetID, screenMenu)
	case keyUp, "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case keyDown, "j":
		if c.cursor < len(c.positions)-1 {
			c.cursor++
		}
	case keyEnter:
		if len(c.positions) == 0 {
			break
		}
		other := m.reg.At(c.positions[c.cursor])
		err := m.reg.ConfirmMatch(c.targetID, other.ID)
		if err != nil && !errors.Is(err, registry.ErrUnsaved) {
			m.statusFromError(err)
			break
		}
		logger.Infof("items %d and %d matched", c.targetID, other.ID)
		if err != nil {
			// The pair is linked in memory; only the write failed.
			m.statusFromError(err)
		} else {
			m.setStatus(statusSuccess, fmt.Sprintf("items %d and %d are now matched", c.targetID, other.ID))
		}
		m.openDetail(c.targetID, screenMenu)
	}
	return m, nil
}

func (m *model) viewCandidates() string {
	c := &m.cands

	var sb strings.Builder
	target, err := m.reg.Get(c.targetID)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("item %d no longer exists", c.targetID))
	}

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Match Candidates for Item %d", target.ID)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s  %s",
		statusBadge(target.Status == item.StatusLost),
		subtitleStyle.Render(fmt.Sprintf("%s  %s  %s", target.Name, target.Category, target.Date))))
	sb.WriteString("\n\n")

	if len(c.positions) == 0 {
		sb.WriteString(subtitleStyle.Render("No candidates on file. Matching needs an unmatched report with the opposite status and at least one overlapping field."))
	} else {
		for i, pos := range c.positions {
			sb.WriteString(browseRow(m.reg.At(pos), i == c.cursor))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("↑/↓ move • enter confirm match • esc back"))
	return sb.String()
}
