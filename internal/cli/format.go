// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money formats amounts with a leading currency symbol and locale grouping.
type Money struct {
	Symbol string
	Tag    language.Tag
	p      *message.Printer
}

// NewMoney builds a formatter. An unparseable locale falls back to en-US.
func NewMoney(symbol, locale string) Money {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return Money{Symbol: symbol, Tag: tag, p: message.NewPrinter(tag)}
}

// Format renders v with two decimals, e.g. 1234.5 -> "$1,234.50".
// Negative values keep the sign after the symbol: "$-200.00".
func (m Money) Format(v float64) string {
	p := m.p
	if p == nil {
		p = message.NewPrinter(language.AmericanEnglish)
	}
	return m.Symbol + p.Sprintf("%.2f", v)
}

// active is the formatter used by FormatCurrency.
var active = NewMoney("$", "en-US")

// SetCurrency replaces the formatter used by FormatCurrency.
func SetCurrency(symbol, locale string) {
	active = NewMoney(symbol, locale)
}

// FormatCurrency formats v with the active currency settings.
func FormatCurrency(v float64) string {
	return active.Format(v)
}

// FormatShare formats a 0-1 fraction as a percentage string.
func FormatShare(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatBytes formats a byte count, e.g. 312 -> "312 B".
func FormatBytes(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
