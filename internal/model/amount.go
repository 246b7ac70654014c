package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned for empty, non-numeric, non-finite or negative amounts.
var ErrInvalidAmount = errors.New("enter a valid non-negative number")

// ParseAmount converts user text into an amount.
// e.g., "1200" -> 1200, " 12.5 " -> 12.5, "" -> error, "-1" -> error, "abc" -> error
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if !ValidAmount(v) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ValidAmount reports whether v is finite and non-negative.
func ValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
