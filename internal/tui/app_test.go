package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/bplan/internal/budget"
	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestApp returns an app over a file-backed book seeded with
// income 3000, fixed Rent 1200 and Gym 50, variable Food 300.
func newTestApp(t *testing.T) (App, *budget.Book, string) {
	t.Helper()
	dir := t.TempDir()
	slot, err := store.OpenFile(filepath.Join(dir, "budget.json"), quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	book := budget.New(slot, budget.WithLogger(quietLogger()))
	book.Load()

	for _, err := range []error{
		book.SetIncome("3000"),
		book.AddEntry(model.Fixed, "Rent", "1200"),
		book.AddEntry(model.Fixed, "Gym", "50"),
		book.AddEntry(model.Variable, "Food", "300"),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	exportPath := filepath.Join(dir, "budget-data.json")
	a := NewApp(book, Options{ExportPath: exportPath, Location: "file " + slot.Path(), Log: quietLogger()})
	a = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 50})
	return a, book, exportPath
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T", m)
	}
	return app
}

func press(t *testing.T, a App, k string) App {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return update(t, a, msg)
}

func TestTabKeysSwitchTabs(t *testing.T) {
	a, _, _ := newTestApp(t)

	a = press(t, a, "2")
	if a.activeTab != tabSummary {
		t.Fatalf("activeTab = %d, want summary", a.activeTab)
	}
	a = press(t, a, "3")
	if a.activeTab != tabData {
		t.Fatalf("activeTab = %d, want data", a.activeTab)
	}
	a = press(t, a, "l")
	if a.activeTab != tabBudget {
		t.Fatalf("next tab should wrap to budget, got %d", a.activeTab)
	}
}

func TestCursorMovesAndClamps(t *testing.T) {
	a, _, _ := newTestApp(t)

	a = press(t, a, "down")
	a = press(t, a, "down")
	if a.cursor[model.Fixed] != 1 {
		t.Fatalf("cursor = %d, want 1 (two fixed entries)", a.cursor[model.Fixed])
	}

	a = press(t, a, "tab")
	if a.list != model.Variable {
		t.Fatal("tab should switch to the variable list")
	}
	a = press(t, a, "down")
	if a.cursor[model.Variable] != 0 {
		t.Fatalf("variable cursor = %d, want 0", a.cursor[model.Variable])
	}
}

func TestDeleteKeyRemovesSelected(t *testing.T) {
	a, book, _ := newTestApp(t)

	a = press(t, a, "down")
	a = press(t, a, "d")

	fixed := book.State().Fixed
	if len(fixed) != 1 || fixed[0].Name != "Rent" {
		t.Fatalf("fixed = %+v, want only Rent", fixed)
	}
	if a.cursor[model.Fixed] != 0 {
		t.Errorf("cursor should clamp to 0, got %d", a.cursor[model.Fixed])
	}
	if a.flash != "Deleted Gym" || a.flashErr {
		t.Errorf("flash = %q (err=%v)", a.flash, a.flashErr)
	}
}

func TestAddKeyOpensForm(t *testing.T) {
	a, _, _ := newTestApp(t)

	a = press(t, a, "a")
	if a.form == nil || a.formKind != formAdd {
		t.Fatalf("form = %v kind = %d, want add form", a.form, a.formKind)
	}
	if a.vals.Name != "" || a.vals.Amount != "" {
		t.Errorf("add form should start empty, got %+v", a.vals)
	}
}

func TestCompleteAdd(t *testing.T) {
	a, book, _ := newTestApp(t)
	a = press(t, a, "tab")
	a = press(t, a, "a")

	a.vals.Name = "  Fuel "
	a.vals.Amount = "60"
	a.completeForm(false)

	v := book.State().Variable
	if len(v) != 2 || v[1] != (model.Entry{Name: "Fuel", Amount: 60}) {
		t.Fatalf("variable = %+v", v)
	}
	if a.cursor[model.Variable] != 1 {
		t.Errorf("cursor should follow the new entry, got %d", a.cursor[model.Variable])
	}
	if a.form != nil {
		t.Error("form should close after completion")
	}
}

func TestCompleteAdd_InvalidAmountFlashes(t *testing.T) {
	a, book, _ := newTestApp(t)
	before := book.State()

	a = press(t, a, "a")
	a.vals.Name = "Cable"
	a.vals.Amount = "-5"
	a.completeForm(false)

	if !a.flashErr || a.flash != model.ErrInvalidAmount.Error() {
		t.Fatalf("flash = %q (err=%v)", a.flash, a.flashErr)
	}
	if !book.State().Equal(before) {
		t.Fatal("state changed after rejected add")
	}
}

func TestEditForm_PrefillAndCancel(t *testing.T) {
	a, book, _ := newTestApp(t)
	before := book.State()

	a = press(t, a, "e")
	if a.formKind != formEdit || a.vals.Name != "Rent" || a.vals.Amount != "1200" {
		t.Fatalf("edit form prefill = %+v kind %d", a.vals, a.formKind)
	}

	a.vals.Name = "Mortgage"
	a = press(t, a, "esc")

	if a.form != nil {
		t.Fatal("esc should close the form")
	}
	if !book.State().Equal(before) {
		t.Fatal("cancelled edit changed state")
	}
}

func TestCompleteEdit(t *testing.T) {
	a, book, _ := newTestApp(t)

	a = press(t, a, "e")
	a.vals.Name = "Mortgage"
	a.vals.Amount = "1100"
	a.completeForm(false)

	if got := book.State().Fixed[0]; got != (model.Entry{Name: "Mortgage", Amount: 1100}) {
		t.Fatalf("fixed[0] = %+v", got)
	}
}

func TestIncomeFormPrefill(t *testing.T) {
	a, book, _ := newTestApp(t)

	a = press(t, a, "i")
	if a.vals.Income != "3000" {
		t.Fatalf("income prefill = %q, want 3000", a.vals.Income)
	}
	a.vals.Income = "3500.5"
	a.completeForm(false)
	if book.State().Income != 3500.5 {
		t.Fatalf("income = %v", book.State().Income)
	}

	if err := book.ResetAll(true); err != nil {
		t.Fatal(err)
	}
	a = press(t, a, "i")
	if a.vals.Income != "" {
		t.Fatalf("zero income should prefill blank, got %q", a.vals.Income)
	}
}

func TestReset_RequiresConfirmation(t *testing.T) {
	a, book, _ := newTestApp(t)
	before := book.State()

	a = press(t, a, "3")
	a = press(t, a, "R")
	if a.formKind != formReset {
		t.Fatalf("formKind = %d, want reset", a.formKind)
	}
	a.completeForm(false)
	if !book.State().Equal(before) || a.flash != "Reset cancelled" {
		t.Fatalf("declined reset: flash=%q state=%+v", a.flash, book.State())
	}

	a = press(t, a, "R")
	a.vals.Confirm = true
	a.completeForm(false)
	if !book.State().Equal(model.DefaultState()) {
		t.Fatalf("confirmed reset left %+v", book.State())
	}
}

func TestExportWritesFile(t *testing.T) {
	a, book, path := newTestApp(t)

	a = press(t, a, "3")
	a = press(t, a, "x")
	if a.flashErr {
		t.Fatalf("export failed: %s", a.flash)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s, err := store.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equal(book.State()) {
		t.Fatalf("exported %+v, want %+v", s, book.State())
	}
}

func TestImportFlow(t *testing.T) {
	a, book, _ := newTestApp(t)

	a = press(t, a, "3")
	a = press(t, a, "m")
	if a.formKind != formImport || a.vals.Path == "" {
		t.Fatalf("import form not opened with default path: %+v", a.vals)
	}

	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte(`{"income":10,"fixed":[],"variable":[{"name":"Tea","amount":2}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	a.vals.Path = path
	cmd := a.completeForm(false)
	if cmd == nil || !a.importing {
		t.Fatal("import should start an async read")
	}

	a = update(t, a, cmd())
	if a.importing || a.flashErr {
		t.Fatalf("import failed: %q", a.flash)
	}
	want := model.State{Income: 10, Fixed: []model.Entry{}, Variable: []model.Entry{{Name: "Tea", Amount: 2}}}
	if !book.State().Equal(want) {
		t.Fatalf("state = %+v, want %+v", book.State(), want)
	}
}

func TestImportedMsg_InvalidLeavesState(t *testing.T) {
	a, book, _ := newTestApp(t)
	before := book.State()

	a = update(t, a, ImportedMsg{Path: "x.json", Data: []byte(`{"income":"lots"}`)})
	if !a.flashErr || a.flash != budget.ErrInvalidImport.Error() {
		t.Fatalf("flash = %q (err=%v)", a.flash, a.flashErr)
	}
	if !book.State().Equal(before) {
		t.Fatal("invalid import changed state")
	}

	a = update(t, a, ImportedMsg{Path: "missing.json", Err: os.ErrNotExist})
	if !a.flashErr || !strings.Contains(a.flash, "missing.json") {
		t.Fatalf("read error flash = %q", a.flash)
	}
}

func TestView_SummaryShowsDeficit(t *testing.T) {
	a, book, _ := newTestApp(t)
	if err := book.SetIncome("1000"); err != nil {
		t.Fatal(err)
	}

	a = press(t, a, "2")
	view := ansi.Strip(a.View())
	for _, want := range []string{"$-550.00", "-55.0%", "Leftover: $0.00 (0.0%)"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestView_BudgetListsEntries(t *testing.T) {
	a, _, _ := newTestApp(t)

	view := ansi.Strip(a.View())
	for _, want := range []string{"Fixed expenses", "Rent", "$1,200.00", "Variable expenses", "Food", "$3,000.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("budget view missing %q", want)
		}
	}
}

func TestView_TooNarrow(t *testing.T) {
	a, _, _ := newTestApp(t)
	a = update(t, a, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("narrow terminal should show a warning")
	}
}
