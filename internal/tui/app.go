// Package tui provides the interactive Bubble Tea dashboard for bplan.
package tui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/bplan/internal/budget"
	"github.com/theirongolddev/bplan/internal/cli"
	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/store"
	"github.com/theirongolddev/bplan/internal/tui/components"
	"github.com/theirongolddev/bplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

const (
	tabBudget = iota
	tabSummary
	tabData
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5
)

// ImportedMsg carries the bytes read for an import, or the read error.
type ImportedMsg struct {
	Path string
	Data []byte
	Err  error
}

// Options configures the dashboard.
type Options struct {
	ExportPath string // target of the export action, default for import
	Location   string // storage description shown on the Data tab
	Log        *logrus.Logger
}

// App is the root Bubble Tea model.
type App struct {
	book *budget.Book
	opts Options
	log  *logrus.Logger
	keys keyMap

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Budget tab
	list   model.ListKind
	cursor [2]int

	// Active huh form
	form     *huh.Form
	formKind formKind
	vals     *formValues
	formList model.ListKind
	formIdx  int

	flash     string
	flashErr  bool
	lastSaved time.Time
	importing bool
}

// NewApp creates a new TUI app model around a loaded Book.
func NewApp(book *budget.Book, opts Options) App {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return App{
		book: book,
		opts: opts,
		log:  log,
		keys: defaultKeyMap(),
		vals: &formValues{},
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case ImportedMsg:
		a.importing = false
		a.applyImport(msg)
		return a, nil

	case tea.KeyMsg:
		// Forms intercept all keys, including Esc and ctrl+c (cancel).
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.handleKey(msg)
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys

	switch {
	case key.Matches(msg, k.Quit):
		return a, tea.Quit
	case key.Matches(msg, k.Help):
		a.showHelp = !a.showHelp
		return a, nil
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if idx := components.TabIdxByKey(msg.String()); idx >= 0 {
		a.activeTab = idx
		return a, nil
	}

	switch {
	case key.Matches(msg, k.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case key.Matches(msg, k.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	switch a.activeTab {
	case tabBudget:
		return a.updateBudgetKeys(msg)
	case tabData:
		return a.updateDataKeys(msg)
	}
	return a, nil
}

func (a App) updateBudgetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys

	switch {
	case key.Matches(msg, k.SwitchLs):
		if a.list == model.Fixed {
			a.list = model.Variable
		} else {
			a.list = model.Fixed
		}

	case key.Matches(msg, k.Up):
		if a.cursor[a.list] > 0 {
			a.cursor[a.list]--
		}

	case key.Matches(msg, k.Down):
		if a.cursor[a.list] < a.book.Len(a.list)-1 {
			a.cursor[a.list]++
		}

	case key.Matches(msg, k.Add):
		a.vals = &formValues{}
		a.formList = a.list
		return a, a.openForm(formAdd, NewEntryForm("Add "+a.list.String()+" expense", &a.vals.Name, &a.vals.Amount))

	case key.Matches(msg, k.Edit):
		e, ok := a.book.Entry(a.list, a.cursor[a.list])
		if !ok {
			return a, nil
		}
		a.vals = &formValues{Name: e.Name, Amount: FormatAmountInput(e.Amount)}
		a.formList = a.list
		a.formIdx = a.cursor[a.list]
		return a, a.openForm(formEdit, NewEntryForm("Edit "+a.list.String()+" expense", &a.vals.Name, &a.vals.Amount))

	case key.Matches(msg, k.Delete):
		e, _ := a.book.Entry(a.list, a.cursor[a.list])
		removed, err := a.book.DeleteEntry(a.list, a.cursor[a.list])
		switch {
		case err != nil:
			a.setError(err)
		case removed:
			a.saved("Deleted " + e.Name)
			a.clampCursor(a.list)
		}

	case key.Matches(msg, k.Income):
		a.vals = &formValues{}
		if inc := a.book.State().Income; inc != 0 {
			a.vals.Income = FormatAmountInput(inc)
		}
		return a, a.openForm(formIncome, newIncomeForm(a.vals))
	}
	return a, nil
}

func (a App) updateDataKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys

	switch {
	case key.Matches(msg, k.Export):
		a.export()

	case key.Matches(msg, k.Import):
		if a.importing {
			return a, nil
		}
		a.vals = &formValues{Path: a.opts.ExportPath}
		return a, a.openForm(formImport, newImportForm(a.vals))

	case key.Matches(msg, k.Reset):
		a.vals = &formValues{}
		return a, a.openForm(formReset, NewResetForm(&a.vals.Confirm))
	}
	return a, nil
}

func (a *App) openForm(kind formKind, form *huh.Form) tea.Cmd {
	a.form = form.WithWidth(a.formWidth())
	a.formKind = kind
	a.flash = ""
	return a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a, a.completeForm(false)
	case huh.StateAborted:
		return a, a.completeForm(true)
	}
	return a, cmd
}

// completeForm applies a finished (or cancelled) form to the Book.
func (a *App) completeForm(aborted bool) tea.Cmd {
	kind, vals := a.formKind, a.vals
	a.form = nil
	a.formKind = formNone

	switch kind {
	case formAdd:
		if aborted {
			return nil
		}
		if err := a.book.AddEntry(a.formList, vals.Name, vals.Amount); err != nil {
			a.setError(err)
			return nil
		}
		a.cursor[a.formList] = a.book.Len(a.formList) - 1
		a.saved("Added " + strings.TrimSpace(vals.Name))

	case formEdit:
		changed, err := a.book.EditEntry(a.formList, a.formIdx, editResult(vals, aborted))
		switch {
		case err != nil:
			a.setError(err)
		case changed:
			a.saved("Updated " + strings.TrimSpace(vals.Name))
		}

	case formIncome:
		if aborted {
			return nil
		}
		if err := a.book.SetIncome(vals.Income); err != nil {
			a.setError(err)
			return nil
		}
		a.saved("Income set to " + cli.FormatCurrency(a.book.State().Income))

	case formImport:
		if aborted {
			return nil
		}
		a.importing = true
		a.setInfo("Importing " + vals.Path + "...")
		return readImportCmd(strings.TrimSpace(vals.Path))

	case formReset:
		if aborted {
			return nil
		}
		err := a.book.ResetAll(vals.Confirm)
		switch {
		case errors.Is(err, budget.ErrNotConfirmed):
			a.setInfo("Reset cancelled")
		case err != nil:
			a.setError(err)
		default:
			a.cursor = [2]int{}
			a.saved("All budget data cleared")
		}
	}
	return nil
}

// readImportCmd reads the import file off the update loop.
func readImportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return ImportedMsg{Path: path, Data: data, Err: err}
	}
}

func (a *App) applyImport(msg ImportedMsg) {
	if msg.Err != nil {
		a.setError(fmt.Errorf("reading %s: %w", msg.Path, msg.Err))
		return
	}
	if err := a.book.Import(bytes.NewReader(msg.Data)); err != nil {
		if errors.Is(err, budget.ErrInvalidImport) {
			a.setError(budget.ErrInvalidImport)
			return
		}
		a.setError(err)
		return
	}
	a.cursor = [2]int{}
	a.saved("Imported " + msg.Path)
}

func (a *App) export() {
	var buf bytes.Buffer
	n, err := a.book.Export(&buf)
	if err == nil {
		err = store.WriteFile(a.opts.ExportPath, buf.Bytes())
	}
	if err != nil {
		a.setError(fmt.Errorf("export: %w", err))
		return
	}
	a.log.WithFields(logrus.Fields{"path": a.opts.ExportPath, "bytes": n}).Info("exported")
	a.setInfo(fmt.Sprintf("Exported %s to %s", cli.FormatBytes(n), a.opts.ExportPath))
}

func (a *App) clampCursor(kind model.ListKind) {
	n := a.book.Len(kind)
	if a.cursor[kind] >= n {
		a.cursor[kind] = n - 1
	}
	if a.cursor[kind] < 0 {
		a.cursor[kind] = 0
	}
}

func (a *App) saved(msg string) {
	a.lastSaved = time.Now()
	a.setInfo(msg)
}

func (a *App) setInfo(msg string) {
	a.flash = msg
	a.flashErr = false
}

func (a *App) setError(err error) {
	if !budget.IsValidation(err) {
		a.log.WithError(err).Warn("action failed")
	}
	a.flash = err.Error()
	a.flashErr = true
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) formWidth() int {
	return max(min(a.width-4, 70), 30)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	t := theme.Active
	msg := lipgloss.NewStyle().Foreground(t.Orange).
		Render(fmt.Sprintf("Terminal too narrow (%d cols, need %d)", a.width, minTerminalWidth))
	return lipgloss.Place(a.width, max(a.height, 5), lipgloss.Center, lipgloss.Center, msg)
}

func (a App) viewForm() string {
	header := components.RenderTabBar(a.activeTab, a.width)
	body := lipgloss.NewStyle().Padding(1, 2).Render(a.form.View())
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (a App) viewHelp() string {
	t := theme.Active
	k := a.keys

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(10)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	section := func(title string, bindings ...key.Binding) string {
		lines := []string{titleStyle.Render(title)}
		for _, b := range bindings {
			h := b.Help()
			lines = append(lines, "  "+keyStyle.Render(h.Key)+descStyle.Render(h.Desc))
		}
		return strings.Join(lines, "\n")
	}

	body := strings.Join([]string{
		section("Navigation", k.PrevTab, k.NextTab, k.Help, k.Quit),
		section("Budget", k.Up, k.Down, k.SwitchLs, k.Add, k.Edit, k.Delete, k.Income),
		section("Data", k.Export, k.Import, k.Reset),
		descStyle.Render("In forms: enter submits, esc cancels."),
	}, "\n\n")

	cw := min(a.contentWidth(), 60)
	card := components.ContentCard("Keys", body, cw, true)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)

	flashStyle := lipgloss.NewStyle().Foreground(t.Green).Width(w).Padding(0, 1)
	if a.flashErr {
		flashStyle = flashStyle.Foreground(t.Red)
	}
	flash := flashStyle.Render(a.flash)

	statusBar := components.RenderStatusBar(w, a.tabHints(), a.storageStatus())

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(flash)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabSummary:
		content = a.renderSummaryTab(cw)
	case tabData:
		content = a.renderDataTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, flash, statusBar)
}

func (a App) tabHints() string {
	k := a.keys
	switch a.activeTab {
	case tabBudget:
		return hints(k.Add, k.Edit, k.Delete, k.Income, k.SwitchLs, k.Help, k.Quit)
	case tabData:
		return hints(k.Export, k.Import, k.Reset, k.Help, k.Quit)
	}
	return hints(k.Help, k.Quit)
}

func (a App) storageStatus() string {
	if a.lastSaved.IsZero() {
		return a.opts.Location
	}
	return "saved " + humanize.Time(a.lastSaved)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
