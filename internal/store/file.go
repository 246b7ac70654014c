package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileSlot keeps the serialized budget in a single JSON file.
type FileSlot struct {
	path string
	log  *logrus.Logger
}

// OpenFile returns a slot backed by path, creating its directory.
func OpenFile(path string, log *logrus.Logger) (*FileSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileSlot{path: path, log: orDiscard(log)}, nil
}

// Path returns the backing file path.
func (f *FileSlot) Path() string {
	return f.path
}

// Read returns the file contents, or ErrEmpty if the file is missing or empty.
func (f *FileSlot) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	return data, nil
}

// Write replaces the file atomically: temp file, fsync, rename.
func (f *FileSlot) Write(data []byte) error {
	if err := writeFileAtomic(f.path, data); err != nil {
		return err
	}
	f.log.WithFields(logrus.Fields{"backend": BackendFile, "bytes": len(data)}).Debug("slot written")
	return nil
}

// Close is a no-op for file slots.
func (f *FileSlot) Close() error {
	return nil
}

// WriteFile writes data to path atomically. CreateTemp gives the file 0600.
// Used for exports as well as the file slot.
func WriteFile(path string, data []byte) error {
	return writeFileAtomic(path, data)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
