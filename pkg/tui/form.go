package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// formRow walks the report form top to bottom. Text rows map to a textinput;
// category and status cycle with the left/right keys.
type formRow int

const (
	rowName formRow = iota
	rowCategory
	rowDescription
	rowDate
	rowLocation
	rowStatus
	rowPersonName
	rowPersonContact
	rowCount
)

// rowInput maps a form row to its index in formState.inputs, or -1 for the
// cycling rows.
func rowInput(r formRow) int {
	switch r {
	case rowName:
		return 0
	case rowDescription:
		return 1
	case rowDate:
		return 2
	case rowLocation:
		return 3
	case rowPersonName:
		return 4
	case rowPersonContact:
		return 5
	}
	return -1
}

// formState holds the add/edit form. The same form serves both: editing is
// false for a new report and true when the fields were prefilled from a
// stored record.
type formState struct {
	title  string
	inputs []textinput.Model
	focus  formRow

	category int // index into item.Categories()
	status   item.Status

	editing bool
	editID  int32
}

func newFormInputs() []textinput.Model {
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 40
		ti.Prompt = ""
		ti.PlaceholderStyle = subtitleStyle
		ti.TextStyle = valueStyle
		return ti
	}
	return []textinput.Model{
		mk("what is the item?", 64),
		mk("distinguishing details", 128),
		mk("YYYY-MM-DD", item.DateLen),
		mk("where it was lost or found", 64),
		mk("optional", 64),
		mk("optional, phone or email", 64),
	}
}

// openAddForm opens a blank report form with the status fixed by the menu
// entry that opened it. The status row still cycles for mistakes.
func (m *model) openAddForm(lost bool) tea.Cmd {
	title := "Report Found Item"
	status := item.StatusFound
	if lost {
		title = "Report Lost Item"
		status = item.StatusLost
	}
	m.form = formState{
		title:  title,
		inputs: newFormInputs(),
		status: status,
	}
	m.screen = screenForm
	m.clearStatus()
	return m.applyFormFocus()
}

// openEditForm opens the form prefilled from a stored record.
func (m *model) openEditForm(it item.Item) tea.Cmd {
	f := formState{
		title:   fmt.Sprintf("Update Item %d", it.ID),
		inputs:  newFormInputs(),
		status:  it.Status,
		editing: true,
		editID:  it.ID,
	}
	f.inputs[0].SetValue(it.Name)
	f.inputs[1].SetValue(it.Description)
	f.inputs[2].SetValue(it.Date.String())
	f.inputs[3].SetValue(it.Location)
	f.inputs[4].SetValue(it.PersonName)
	f.inputs[5].SetValue(it.PersonContact)
	for i, c := range item.Categories() {
		if c == it.Category {
			f.category = i
		}
	}
	m.form = f
	m.screen = screenForm
	m.clearStatus()
	return m.applyFormFocus()
}

// applyFormFocus moves textinput focus to the current row.
func (m *model) applyFormFocus() tea.Cmd {
	for i := range m.form.inputs {
		m.form.inputs[i].Blur()
	}
	if idx := rowInput(m.form.focus); idx >= 0 {
		return m.form.inputs[idx].Focus()
	}
	return nil
}

func (m *model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.forwardToFormInput(msg)
	}

	f := &m.form
	switch keyMsg.String() {
	case keyEsc:
		m.closeForm()
		return m, nil
	case keyTab, keyDown:
		f.focus = (f.focus + 1) % rowCount
		return m, m.applyFormFocus()
	case keyShiftTab, keyUp:
		f.focus = (f.focus + rowCount - 1) % rowCount
		return m, m.applyFormFocus()
	case keyLeft, keyRight:
		step := 1
		if keyMsg.String() == keyLeft {
			step = -1
		}
		switch f.focus {
		case rowCategory:
			n := len(item.Categories())
			f.category = (f.category + step + n) % n
			return m, nil
		case rowStatus:
			f.status = f.status.Opposite()
			return m, nil
		}
		// Text rows get the arrow keys for cursor movement.
	case keyEnter:
		if f.focus == rowCount-1 {
			return m, m.submitForm()
		}
		f.focus++
		return m, m.applyFormFocus()
	}
	return m, m.forwardToFormInput(msg)
}

func (m *model) forwardToFormInput(msg tea.Msg) tea.Cmd {
	idx := rowInput(m.form.focus)
	if idx < 0 {
		return nil
	}
	var cmd tea.Cmd
	m.form.inputs[idx], cmd = m.form.inputs[idx].Update(msg)
	return cmd
}

// closeForm abandons the form. An edit goes back to the record it was
// editing; a new report goes back to the menu.
func (m *model) closeForm() {
	if m.form.editing {
		m.openDetail(m.form.editID, screenMenu)
		return
	}
	m.screen = screenMenu
}

// submitForm validates the fields and commits the report.
func (m *model) submitForm() tea.Cmd {
	f := &m.form
	name := strings.TrimSpace(f.inputs[0].Value())
	description := strings.TrimSpace(f.inputs[1].Value())
	dateText := strings.TrimSpace(f.inputs[2].Value())
	location := strings.TrimSpace(f.inputs[3].Value())
	personName := strings.TrimSpace(f.inputs[4].Value())
	personContact := strings.TrimSpace(f.inputs[5].Value())
	category := item.Categories()[f.category]

	date, err := item.ParseDate(dateText)
	if err != nil {
		m.statusFromError(err)
		f.focus = rowDate
		return m.applyFormFocus()
	}

	if f.editing {
		m.submitEdit(name, category, description, date, location, personName, personContact)
		return nil
	}
	m.submitAdd(name, category, description, date, location, personName, personContact)
	return nil
}

func (m *model) submitEdit(name string, category item.Category, description string, date item.Date, location string, personName, personContact string) {
	status := m.form.status
	id := m.form.editID
	err := m.reg.Update(id, registry.Update{
		Name:          &name,
		Category:      &category,
		Description:   &description,
		Date:          &date,
		Location:      &location,
		Status:        &status,
		PersonName:    &personName,
		PersonContact: &personContact,
	})
	if err != nil && !errors.Is(err, registry.ErrUnsaved) {
		m.statusFromError(err)
		return
	}
	if err != nil {
		m.statusFromError(err)
	} else {
		m.setStatus(statusSuccess, fmt.Sprintf("item %d updated", id))
	}
	logger.Infof("item %d updated", id)
	m.openDetail(id, screenMenu)
}

func (m *model) submitAdd(name string, category item.Category, description string, date item.Date, location string, personName, personContact string) {
	it, err := item.New(name, category, description, date, location, m.form.status)
	if err != nil {
		m.statusFromError(err)
		return
	}
	it.PersonName = personName
	it.PersonContact = personContact

	id, err := m.reg.Add(it)
	if err != nil && !errors.Is(err, registry.ErrUnsaved) {
		m.statusFromError(err)
		return
	}
	if err != nil {
		// The record is live in memory; only the write failed.
		m.statusFromError(err)
	} else {
		m.setStatus(statusSuccess, fmt.Sprintf("item %d saved", id))
	}
	logger.Infof("item %d added (%s)", id, m.form.status)

	// Offer the cross-status candidates right away, like the counter clerk
	// checking the other ledger when a report comes in.
	if cands, err := m.reg.FindMatches(id); err == nil && len(cands) > 0 {
		m.openConfirm(
			fmt.Sprintf("%d possible counterpart(s) on file for item %d. Review them now?", len(cands), id),
			func(m *model) { m.openCandidates(id) },
			func(m *model) { m.screen = screenMenu },
		)
		return
	}
	m.screen = screenMenu
}

func (m *model) viewForm() string {
	f := &m.form

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(f.title))
	sb.WriteString("\n\n")

	row := func(r formRow, label, body string) {
		style := labelStyle
		if f.focus == r {
			style = inputLabelStyle
		}
		sb.WriteString(style.Render(fmt.Sprintf("%-14s", label)))
		sb.WriteString(body)
		sb.WriteString("\n")
	}

	cycle := func(r formRow, value string) string {
		if f.focus == r {
			return selectedStyle.Render("< " + value + " >")
		}
		return valueStyle.Render(value)
	}

	row(rowName, "Name", f.inputs[0].View())
	row(rowCategory, "Category", cycle(rowCategory, string(item.Categories()[f.category])))
	row(rowDescription, "Description", f.inputs[1].View())
	row(rowDate, "Date", f.inputs[2].View())
	row(rowLocation, "Location", f.inputs[3].View())
	row(rowStatus, "Status", cycle(rowStatus, string(f.status)))
	row(rowPersonName, "Person", f.inputs[4].View())
	row(rowPersonContact, "Contact", f.inputs[5].View())

	sb.WriteString("\n")
	submit := buttonStyle.Render("Save")
	if f.focus == rowCount-1 {
		submit = buttonActiveStyle.Render("Save")
	}
	sb.WriteString(hintStyle.Render("enter on the last field saves  ") + submit)
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("tab/↓ next • shift+tab/↑ previous • ←/→ cycle choice • esc cancel"))
	return boxStyle.Render(sb.String())
}
