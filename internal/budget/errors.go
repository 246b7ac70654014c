package budget

import (
	"errors"

	"github.com/theirongolddev/bplan/internal/model"
)

var (
	// ErrEmptyName is returned when an entry name is blank after trimming.
	ErrEmptyName = errors.New("enter a name")
	// ErrInvalidAmount is returned for invalid amounts and for totals that overflow.
	ErrInvalidAmount = model.ErrInvalidAmount
	// ErrNotConfirmed is returned by ResetAll when the user did not confirm.
	ErrNotConfirmed = errors.New("reset not confirmed")
	// ErrInvalidImport wraps every rejected import.
	ErrInvalidImport = errors.New("invalid JSON file")
)

// IsValidation reports whether err rejected user input before any mutation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyName) || errors.Is(err, ErrInvalidAmount)
}
