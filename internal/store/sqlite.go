package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteSlot stores the budget as one row of the slots table.
type SQLiteSlot struct {
	db  *sql.DB
	key string
	log *logrus.Logger
}

// OpenSQLite opens or creates the slot database at dbPath.
func OpenSQLite(dbPath string, log *logrus.Logger) (*SQLiteSlot, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	// synchronous(full): a returned Write survives power loss, not just a crash.
	dsn := dbPath + "?_pragma=journal_mode(wal)&_pragma=synchronous(full)&_pragma=busy_timeout(5000)"

	if err := runMigrations(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening slot db: %w", err)
	}
	db.SetMaxOpenConns(1)

	return &SQLiteSlot{db: db, key: SlotKey, log: orDiscard(log)}, nil
}

// Read returns the stored value, or ErrEmpty if the key has never been written.
func (s *SQLiteSlot) Read() ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %s: %w", s.key, err)
	}
	if len(value) == 0 {
		return nil, ErrEmpty
	}
	return value, nil
}

// Write upserts the value in a single statement.
func (s *SQLiteSlot) Write(data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, data, now)
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", s.key, err)
	}
	s.log.WithFields(logrus.Fields{"backend": BackendSQLite, "bytes": len(data)}).Debug("slot written")
	return nil
}

// Close closes the database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
