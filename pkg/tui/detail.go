package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// openDetail shows a single record. returnTo is where esc goes back to.
func (m *model) openDetail(id int32, returnTo screen) {
	m.detailID = id
	m.detailReturn = returnTo
	m.screen = screenDetail
}

func (m *model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	it, err := m.reg.Get(m.detailID)
	if err != nil {
		// The record vanished under us (deleted from another path).
		m.setStatus(statusError, fmt.Sprintf("item %d no longer exists", m.detailID))
		m.screen = m.detailReturn
		return m, nil
	}

	switch keyMsg.String() {
	case keyEsc, "q":
		m.screen = m.detailReturn
		if m.screen == screenBrowse {
			m.refreshBrowser()
		}
	case "e":
		return m, m.openEditForm(it)
	case "m":
		m.openCandidates(it.ID)
	case "c":
		if it.PersonContact == "" {
			m.setStatus(statusInfo, "no contact recorded for this item")
			break
		}
		if err := clipboard.WriteAll(it.PersonContact); err != nil {
			logger.Errorf("clipboard write failed: %v", err)
			m.setStatus(statusError, "could not copy contact to clipboard")
			break
		}
		m.setStatus(statusSuccess, "contact copied to clipboard")
	case "x":
		err := m.reg.MarkClaimed(it.ID)
		if err != nil && !errors.Is(err, registry.ErrUnsaved) {
			m.statusFromError(err)
			break
		}
		logger.Infof("item %d claimed", it.ID)
		if err != nil {
			m.statusFromError(err)
			break
		}
		m.setStatus(statusSuccess, fmt.Sprintf("item %d marked as claimed", it.ID))
	case "d":
		m.openDeleteConfirm(it.ID)
	}
	return m, nil
}

func (m *model) viewDetail() string {
	it, err := m.reg.Get(m.detailID)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("item %d no longer exists", m.detailID))
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Item %d", it.ID)))
	sb.WriteString("\n\n")

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
		sb.WriteString(valueStyle.Render(value))
		sb.WriteString("\n")
	}

	row("Status", statusBadge(it.Status == item.StatusLost))
	row("Name", it.Name)
	row("Category", string(it.Category))
	row("Description", it.Description)
	row("Date", it.Date.String())
	row("Location", it.Location)
	row("Matched", yesNo(it.Matched))
	row("Claimed", yesNo(it.Claimed))
	if it.Matched {
		if other, ok := m.reg.Counterpart(it.ID); ok {
			row("Matched with", fmt.Sprintf("%d (%s, %s)", other.ID, other.Name, other.Status))
		} else {
			row("Matched with", fmt.Sprintf("%d (record no longer exists)", it.MatchedItemID))
		}
	}
	if it.PersonName != "" {
		row("Person", it.PersonName)
	}
	if it.PersonContact != "" {
		row("Contact", it.PersonContact)
	}

	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("e edit • m candidates • x claim • c copy contact • d delete • esc back"))
	return boxStyle.Render(sb.String())
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
