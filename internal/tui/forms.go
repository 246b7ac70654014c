package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/bplan/internal/budget"
	"github.com/theirongolddev/bplan/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formAdd
	formEdit
	formIncome
	formImport
	formReset
)

// formValues backs every huh form. It is held by pointer so the App can
// be copied by value through Update without detaching the form bindings.
type formValues struct {
	Name    string
	Amount  string
	Income  string
	Path    string
	Confirm bool
}

// ResetPrompt is the wording of the reset confirmation.
const ResetPrompt = "This will clear all saved budget data. Continue?"

// FormKeyMap is the huh keymap used by every bplan form: Esc cancels.
func FormKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return budget.ErrEmptyName
	}
	return nil
}

func validateAmount(s string) error {
	_, err := model.ParseAmount(s)
	return err
}

func validatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("enter a file path")
	}
	return nil
}

// FormatAmountInput renders an amount the way a user would type it.
func FormatAmountInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithKeyMap(FormKeyMap()).
		WithShowHelp(true).
		WithTheme(huh.ThemeBase16())
}

// NewEntryForm builds the two-field name/amount form used for add and edit.
func NewEntryForm(title string, name, amount *string) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Prompt("Name: ").
			Value(name).
			Validate(validateName),
		huh.NewInput().
			Prompt("Amount: ").
			Placeholder("0.00").
			Value(amount).
			Validate(validateAmount),
	))
}

func newIncomeForm(vals *formValues) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewInput().
			Title("Monthly income").
			Placeholder("0.00").
			Value(&vals.Income).
			Validate(validateAmount),
	))
}

func newImportForm(vals *formValues) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewInput().
			Title("Import budget from JSON file").
			Value(&vals.Path).
			Validate(validatePath),
	))
}

// NewResetForm builds the reset confirmation.
func NewResetForm(confirm *bool) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewConfirm().
			Title(ResetPrompt).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	))
}

// editResult maps a finished edit form onto the edit contract.
func editResult(vals *formValues, aborted bool) budget.EditResult {
	if aborted {
		return budget.Cancelled()
	}
	return budget.Submitted(vals.Name, vals.Amount)
}
