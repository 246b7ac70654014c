// Package store persists the budget state in a durable key-value slot.
package store

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// SlotKey names the slot holding the serialized budget.
const SlotKey = "budgetPlannerLiteV1"

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

var (
	// ErrEmpty is returned by Read when nothing has been saved yet.
	ErrEmpty = errors.New("slot is empty")
	// ErrUnknownBackend is returned by Open for unsupported backend names.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Slot is a single durable value. Write must not return before the data is durable.
type Slot interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Close() error
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendSQLite, BackendFile}
}

// Open returns the slot for backend, storing its files under dataDir.
func Open(backend, dataDir string, log *logrus.Logger) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendSQLite, "":
		return OpenSQLite(filepath.Join(dataDir, "bplan.db"), log)
	case BackendFile:
		return OpenFile(filepath.Join(dataDir, "budget.json"), log)
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownBackend, backend, strings.Join(Backends(), ", "))
}

func orDiscard(log *logrus.Logger) *logrus.Logger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
