package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists each resource as one JSON document under Dir, re-read and
// rewritten wholesale on every operation. There is no locking and no cache:
// concurrent writers to the same document race and the last write wins.
type Store struct {
	Dir string

	// now is the injectable clock; tests pin it.
	now func() time.Time
}

// DefaultDataDir returns the default data directory: ~/.lifeboard
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".lifeboard"), nil
}

// Open prepares a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{Dir: dir, now: time.Now}, nil
}

// SetClock overrides the store's notion of "now". Testing hook.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the current time per the store's clock.
func (s *Store) Now() time.Time {
	return s.now()
}

// readDoc loads the named document into v. A missing file leaves v untouched
// so callers start from their zero-value document.
func (s *Store) readDoc(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// writeDoc rewrites the named document in full, pretty-printed so the files
// stay hand-editable.
func (s *Store) writeDoc(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
