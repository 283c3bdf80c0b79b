package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/config"
	"github.com/haleta-e/lost-and-found-manager/pkg/item"
	"github.com/haleta-e/lost-and-found-manager/pkg/logging"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

func newTestModel(t *testing.T, reg *registry.Registry) *model {
	t.Helper()

	logging.SetDirectory(t.TempDir())
	initLogger()

	m := initialModel(reg, config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return &m
}

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New(filepath.Join(t.TempDir(), "items.bin"))
	if err := reg.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return reg
}

func addTestItem(t *testing.T, reg *registry.Registry, name string, status item.Status) int32 {
	t.Helper()
	d, err := item.ParseDate("2024-05-12")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	it, err := item.New(name, item.CategoryAccessories, name+" details", d, "Library", status)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	id, err := reg.Add(it)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return id
}

func pressKey(m *model, k tea.KeyType) {
	m.Update(tea.KeyMsg{Type: k})
}

func pressRune(m *model, r rune) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func typeString(m *model, s string) {
	for _, r := range s {
		pressRune(m, r)
	}
}

// chooseMenuEntry moves the menu cursor to the given entry and selects it.
func chooseMenuEntry(m *model, index int) {
	for i := 0; i < index; i++ {
		pressKey(m, tea.KeyDown)
	}
	pressKey(m, tea.KeyEnter)
}

func TestUpdate_MenuOpensBrowse(t *testing.T) {
	reg := newTestRegistry(t)
	addTestItem(t, reg, "Blue wallet", item.StatusLost)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 2)

	if m.screen != screenBrowse {
		t.Fatalf("screen = %v, want %v", m.screen, screenBrowse)
	}
	if m.browser.positions != nil {
		t.Errorf("positions = %v, want nil for the unfiltered table", m.browser.positions)
	}
	if !strings.Contains(m.viewBrowse(), "Blue wallet") {
		t.Error("browse view should render the stored item")
	}
}

func TestUpdate_BrowseEscReturnsToMenu(t *testing.T) {
	reg := newTestRegistry(t)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 2)
	pressKey(m, tea.KeyEsc)

	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want %v", m.screen, screenMenu)
	}
}

func TestUpdate_ReportLostItemFlow(t *testing.T) {
	reg := newTestRegistry(t)
	m := newTestModel(t, reg)

	// Menu entry 0 is "Report a lost item".
	chooseMenuEntry(m, 0)
	if m.screen != screenForm {
		t.Fatalf("screen = %v, want %v", m.screen, screenForm)
	}
	if m.form.status != item.StatusLost {
		t.Fatalf("form status = %v, want %v", m.form.status, item.StatusLost)
	}

	typeString(m, "Black umbrella")
	pressKey(m, tea.KeyEnter) // category row
	pressKey(m, tea.KeyEnter) // description row
	typeString(m, "Long umbrella with a wooden handle")
	pressKey(m, tea.KeyEnter) // date row
	typeString(m, "2024-05-12")
	pressKey(m, tea.KeyEnter) // location row
	typeString(m, "Bus 42")
	pressKey(m, tea.KeyEnter) // status row
	pressKey(m, tea.KeyEnter) // person name row
	pressKey(m, tea.KeyEnter) // person contact row
	pressKey(m, tea.KeyEnter) // submit

	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	got, err := reg.Get(100)
	if err != nil {
		t.Fatalf("Get(100) error = %v", err)
	}
	if got.Name != "Black umbrella" || got.Status != item.StatusLost {
		t.Errorf("stored item = %+v, want Black umbrella / Lost", got)
	}
	if got.Location != "Bus 42" {
		t.Errorf("Location = %q, want %q", got.Location, "Bus 42")
	}
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want %v after an add with no candidates", m.screen, screenMenu)
	}
	if m.status.kind != statusSuccess {
		t.Errorf("status kind = %v, want %v (text %q)", m.status.kind, statusSuccess, m.status.text)
	}
}

func TestUpdate_FormRejectsBadDate(t *testing.T) {
	reg := newTestRegistry(t)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 0)
	typeString(m, "Scarf")
	pressKey(m, tea.KeyEnter) // category
	pressKey(m, tea.KeyEnter) // description
	typeString(m, "Red wool scarf")
	pressKey(m, tea.KeyEnter) // date
	typeString(m, "2024-02-31")
	pressKey(m, tea.KeyEnter) // location
	typeString(m, "Station")
	pressKey(m, tea.KeyEnter) // status
	pressKey(m, tea.KeyEnter) // person name
	pressKey(m, tea.KeyEnter) // person contact
	pressKey(m, tea.KeyEnter) // submit

	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after a rejected date", reg.Len())
	}
	if m.screen != screenForm {
		t.Errorf("screen = %v, want the form to stay open", m.screen)
	}
	if m.status.kind != statusError {
		t.Errorf("status kind = %v, want %v", m.status.kind, statusError)
	}
	if m.form.focus != rowDate {
		t.Errorf("focus = %v, want %v so the user can fix the date", m.form.focus, rowDate)
	}
}

func TestUpdate_PostAddCandidatePrompt(t *testing.T) {
	reg := newTestRegistry(t)
	addTestItem(t, reg, "Wallet", item.StatusFound)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 0) // report lost
	typeString(m, "Wallet")
	pressKey(m, tea.KeyEnter)
	pressKey(m, tea.KeyEnter)
	typeString(m, "Brown leather wallet")
	pressKey(m, tea.KeyEnter)
	typeString(m, "2024-05-13")
	pressKey(m, tea.KeyEnter)
	typeString(m, "Library")
	pressKey(m, tea.KeyEnter)
	pressKey(m, tea.KeyEnter)
	pressKey(m, tea.KeyEnter)
	pressKey(m, tea.KeyEnter) // submit

	if m.screen != screenConfirm {
		t.Fatalf("screen = %v, want the candidate prompt", m.screen)
	}

	// Accepting the prompt lands on the candidate list for the new record.
	pressRune(m, 'y')
	if m.screen != screenCandidates {
		t.Fatalf("screen = %v, want %v", m.screen, screenCandidates)
	}
	if m.cands.targetID != 101 {
		t.Errorf("candidate target = %d, want the new record 101", m.cands.targetID)
	}
	if len(m.cands.positions) != 1 {
		t.Fatalf("candidates = %d, want 1", len(m.cands.positions))
	}

	// Confirming the row links the pair.
	pressKey(m, tea.KeyEnter)
	lost, _ := reg.Get(101)
	found, _ := reg.Get(100)
	if !lost.Matched || !found.Matched {
		t.Error("both records should be matched after confirmation")
	}
	if lost.MatchedItemID != 100 || found.MatchedItemID != 101 {
		t.Errorf("links = %d/%d, want 100/101", lost.MatchedItemID, found.MatchedItemID)
	}
}

func TestUpdate_SearchByName(t *testing.T) {
	reg := newTestRegistry(t)
	addTestItem(t, reg, "Blue wallet", item.StatusLost)
	addTestItem(t, reg, "Red scarf", item.StatusFound)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 3) // search
	if m.screen != screenSearch {
		t.Fatalf("screen = %v, want %v", m.screen, screenSearch)
	}

	pressKey(m, tea.KeyEnter) // choose "By name"
	typeString(m, "wallet")
	pressKey(m, tea.KeyEnter)

	if m.screen != screenBrowse {
		t.Fatalf("screen = %v, want the result table", m.screen)
	}
	if len(m.browser.positions) != 1 {
		t.Fatalf("positions = %v, want one hit", m.browser.positions)
	}
	if got := m.browser.rowItem(m, 0).Name; got != "Blue wallet" {
		t.Errorf("result = %q, want %q", got, "Blue wallet")
	}
}

func TestUpdate_SearchEmptyResultStillOpensTable(t *testing.T) {
	reg := newTestRegistry(t)
	addTestItem(t, reg, "Blue wallet", item.StatusLost)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 3)
	pressKey(m, tea.KeyEnter)
	typeString(m, "zzz")
	pressKey(m, tea.KeyEnter)

	if m.screen != screenBrowse {
		t.Fatalf("screen = %v, want %v", m.screen, screenBrowse)
	}
	if m.browser.positions == nil {
		t.Fatal("positions should be non-nil so the table shows no rows instead of every record")
	}
	if len(m.browser.positions) != 0 {
		t.Errorf("positions = %v, want none", m.browser.positions)
	}
}

func TestUpdate_ClaimFromDetail(t *testing.T) {
	reg := newTestRegistry(t)
	lostID := addTestItem(t, reg, "Wallet", item.StatusLost)
	foundID := addTestItem(t, reg, "Wallet", item.StatusFound)
	if err := reg.ConfirmMatch(lostID, foundID); err != nil {
		t.Fatalf("ConfirmMatch() error = %v", err)
	}
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 2)     // browse
	pressKey(m, tea.KeyEnter) // first row opens detail
	if m.screen != screenDetail {
		t.Fatalf("screen = %v, want %v", m.screen, screenDetail)
	}
	if m.detailID != lostID {
		t.Fatalf("detailID = %d, want %d", m.detailID, lostID)
	}

	pressRune(m, 'x')

	lost, _ := reg.Get(lostID)
	found, _ := reg.Get(foundID)
	if !lost.Claimed || !found.Claimed {
		t.Error("claim should cover both sides of the match")
	}
	if m.status.kind != statusSuccess {
		t.Errorf("status kind = %v, want %v (text %q)", m.status.kind, statusSuccess, m.status.text)
	}
}

func TestUpdate_ClaimUnmatchedReportsError(t *testing.T) {
	reg := newTestRegistry(t)
	addTestItem(t, reg, "Wallet", item.StatusLost)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 2)
	pressKey(m, tea.KeyEnter)
	pressRune(m, 'x')

	if m.status.kind != statusError {
		t.Fatalf("status kind = %v, want %v", m.status.kind, statusError)
	}
	got, _ := reg.Get(100)
	if got.Claimed {
		t.Error("unmatched record must not become claimed")
	}
}

func TestUpdate_DeleteNeedsConfirmation(t *testing.T) {
	reg := newTestRegistry(t)
	addTestItem(t, reg, "Wallet", item.StatusLost)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 2)
	pressKey(m, tea.KeyEnter)
	pressRune(m, 'd')
	if m.screen != screenConfirm {
		t.Fatalf("screen = %v, want the confirm dialog", m.screen)
	}

	// Declining keeps the record.
	pressRune(m, 'n')
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after declining", reg.Len())
	}
	if m.screen != screenDetail {
		t.Errorf("screen = %v, want back on the detail view", m.screen)
	}

	// Accepting removes it.
	pressRune(m, 'd')
	pressRune(m, 'y')
	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after confirming", reg.Len())
	}
}

func TestUpdate_ClearAllResetsStore(t *testing.T) {
	reg := newTestRegistry(t)
	addTestItem(t, reg, "Wallet", item.StatusLost)
	addTestItem(t, reg, "Scarf", item.StatusFound)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 10) // clear all
	if m.screen != screenConfirm {
		t.Fatalf("screen = %v, want the confirm dialog", m.screen)
	}
	pressRune(m, 'y')

	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}
	if reg.NextID() != 100 {
		t.Errorf("NextID() = %d, want the counter reset to 100", reg.NextID())
	}
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want %v", m.screen, screenMenu)
	}
}

func TestUpdate_SortReordersStore(t *testing.T) {
	reg := newTestRegistry(t)
	addTestItem(t, reg, "Zebra print bag", item.StatusLost)
	addTestItem(t, reg, "Anorak", item.StatusFound)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 9) // sort
	if m.screen != screenSort {
		t.Fatalf("screen = %v, want %v", m.screen, screenSort)
	}
	pressKey(m, tea.KeyDown)  // name key
	pressKey(m, tea.KeyEnter) // apply ascending

	if m.screen != screenBrowse {
		t.Fatalf("screen = %v, want the reordered table", m.screen)
	}
	if got := reg.At(0).Name; got != "Anorak" {
		t.Errorf("first record = %q, want %q", got, "Anorak")
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	reg := newTestRegistry(t)
	m := newTestModel(t, reg)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.shouldQuit {
		t.Error("shouldQuit should be set")
	}
	if cmd == nil {
		t.Fatal("quit command should be returned")
	}
}

func TestUpdate_HelpOpensAndCloses(t *testing.T) {
	reg := newTestRegistry(t)
	m := newTestModel(t, reg)

	chooseMenuEntry(m, 11)
	if m.screen != screenHelp {
		t.Fatalf("screen = %v, want %v", m.screen, screenHelp)
	}
	pressKey(m, tea.KeyEsc)
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want %v", m.screen, screenMenu)
	}
}
