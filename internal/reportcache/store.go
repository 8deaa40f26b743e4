// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reportcache keeps the most recent progress report on disk so the
// CLI can show it again without recomputing.
package reportcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bartekus/craft/internal/projection"
	"github.com/bartekus/craft/internal/semester"
)

// DefaultDir is the cache directory relative to the course repository root.
const DefaultDir = ".craft/teach"

// Entry is a saved report together with what produced it.
// Matches .craft/teach/last-report.json schema.
type Entry struct {
	SavedAt    time.Time       `json:"saved_at"`
	QueryDate  string          `json:"query_date"`
	ConfigPath string          `json:"config_path,omitempty"`
	Course     string          `json:"course,omitempty"`
	Report     semester.Report `json:"report"`
}

// Store reads and writes the cached report.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir (e.g. .craft/teach).
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Path returns the location of the cached report file.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, "last-report.json")
}

// Read loads the cached entry. A missing file is a clean state and yields
// nil, nil.
func (s *Store) Read() (*Entry, error) {
	f, err := os.Open(s.Path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening cached report: %w", err)
	}
	defer func() { _ = f.Close() }()

	var e Entry
	if err := json.NewDecoder(f).Decode(&e); err != nil {
		return nil, fmt.Errorf("decoding cached report: %w", err)
	}
	return &e, nil
}

// Write replaces the cached entry.
func (s *Store) Write(e Entry) error {
	if err := projection.AtomicWriteJSON(s.Path(), e); err != nil {
		return fmt.Errorf("writing cached report: %w", err)
	}
	return nil
}

// Reset deletes the cached report. The cache directory is removed too, but
// only when nothing else is left in it; it may be a user-chosen directory.
func (s *Store) Reset() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing cached report: %w", err)
	}
	_ = os.Remove(s.baseDir) // fails harmlessly when non-empty or missing
	return nil
}
