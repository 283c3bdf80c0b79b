package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) openHelp() {
	m.helpView = viewport.New(m.width, m.browseHeight())
	m.helpView.SetContent(helpContent())
	m.screen = screenHelp
	m.clearStatus()
}

func (m *model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc, "q":
			m.screen = screenMenu
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return m, cmd
}

func (m *model) viewHelp() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Help"))
	sb.WriteString("\n")
	sb.WriteString(m.helpView.View())
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("↑/↓ scroll • esc back"))
	return sb.String()
}

func helpContent() string {
	section := func(title string) string {
		return "\n" + inputLabelStyle.Render(title) + "\n"
	}
	line := func(s string) string {
		return valueStyle.Render(s) + "\n"
	}
	hint := func(k, what string) string {
		return selectedStyle.Render("  "+k) + labelStyle.Render("  "+what) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(subtitleStyle.Render("How the lost and found ledger works."))
	sb.WriteString("\n")

	sb.WriteString(section("Workflow"))
	sb.WriteString(line("1. Report items as Lost or Found. Every report gets a permanent id."))
	sb.WriteString(line("2. Review match candidates: reports with the opposite status whose"))
	sb.WriteString(line("   name, category, description, or location overlap."))
	sb.WriteString(line("3. Confirm a match to link the pair. Matched reports leave the open"))
	sb.WriteString(line("   lost/found listings but stay browsable."))
	sb.WriteString(line("4. Mark the item claimed when it is back with its owner. The claim"))
	sb.WriteString(line("   covers both sides of the match."))

	sb.WriteString(section("Reports"))
	sb.WriteString(line("Name, category, description, date, and location are required. The"))
	sb.WriteString(line("person fields are optional and record who reported the item. Dates"))
	sb.WriteString(line("use the YYYY-MM-DD form."))

	sb.WriteString(section("Data"))
	sb.WriteString(line("Every change is written straight to the data file. Sorting reorders"))
	sb.WriteString(line("the file itself, so the order survives restarts. Clearing the"))
	sb.WriteString(line("registry also restarts the id sequence."))

	sb.WriteString(section("Keys on the item detail screen"))
	sb.WriteString(hint("e", "edit the report"))
	sb.WriteString(hint("m", "review match candidates"))
	sb.WriteString(hint("x", "mark claimed"))
	sb.WriteString(hint("c", "copy the reporter's contact to the clipboard"))
	sb.WriteString(hint("d", "delete the report"))

	sb.WriteString(section("Everywhere"))
	sb.WriteString(hint("↑/↓ or k/j", "move"))
	sb.WriteString(hint("enter", "select"))
	sb.WriteString(hint("esc", "back"))
	sb.WriteString(hint("q", "back, or quit from the menu"))
	sb.WriteString(hint("ctrl+c", "quit"))

	return sb.String()
}
