package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// matchIDsState links two records by typed ids, for the clerk who already
// knows both numbers and does not need candidate discovery.
type matchIDsState struct {
	inputs [2]textinput.Model
	focus  int
}

func (m *model) openMatchIDs() tea.Cmd {
	mk := func() textinput.Model {
		ti := textinput.New()
		ti.Placeholder = "item id"
		ti.CharLimit = 10
		ti.Width = 12
		ti.Prompt = ""
		ti.PlaceholderStyle = subtitleStyle
		ti.TextStyle = valueStyle
		return ti
	}
	m.matchIDs = matchIDsState{inputs: [2]textinput.Model{mk(), mk()}}
	m.screen = screenMatchIDs
	m.clearStatus()
	return m.matchIDs.inputs[0].Focus()
}

func (m *model) updateMatchIDs(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.matchIDs
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyEsc:
		m.screen = screenMenu
		return m, nil
	case keyTab, keyDown, keyShiftTab, keyUp:
		s.inputs[s.focus].Blur()
		s.focus = 1 - s.focus
		return m, s.inputs[s.focus].Focus()
	case keyEnter:
		if s.focus == 0 {
			s.inputs[0].Blur()
			s.focus = 1
			return m, s.inputs[1].Focus()
		}
		m.submitMatchIDs()
		return m, nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return m, cmd
}

func (m *model) submitMatchIDs() {
	s := &m.matchIDs
	ids := [2]int32{}
	for i, input := range s.inputs {
		n, err := strconv.ParseInt(strings.TrimSpace(input.Value()), 10, 32)
		if err != nil {
			m.setStatus(statusError, fmt.Sprintf("%q is not a valid item id", input.Value()))
			return
		}
		ids[i] = int32(n)
	}

	err := m.reg.ConfirmMatch(ids[0], ids[1])
	if err != nil && !errors.Is(err, registry.ErrUnsaved) {
		m.statusFromError(err)
		return
	}
	logger.Infof("items %d and %d matched", ids[0], ids[1])
	if err != nil {
		m.statusFromError(err)
	} else {
		m.setStatus(statusSuccess, fmt.Sprintf("items %d and %d are now matched", ids[0], ids[1]))
	}
	m.openDetail(ids[0], screenMenu)
}

func (m *model) viewMatchIDs() string {
	s := &m.matchIDs

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Match Two Items"))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("Link a lost report and a found report by id."))
	sb.WriteString("\n\n")

	labels := [2]string{"First item", "Second item"}
	for i := range s.inputs {
		style := labelStyle
		if s.focus == i {
			style = inputLabelStyle
		}
		sb.WriteString(style.Render(fmt.Sprintf("%-14s", labels[i])))
		sb.WriteString(s.inputs[i].View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("tab switch field • enter match • esc back"))
	return boxStyle.Render(sb.String())
}
