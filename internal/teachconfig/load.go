// SPDX-License-Identifier: AGPL-3.0-or-later

package teachconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the teaching commands keep their configuration,
// relative to the course repository root.
const DefaultPath = ".flow/teach-config.yml"

// ErrNotFound is returned by Locate when no configuration file exists in the
// directory or any of its parents.
var ErrNotFound = errors.New("teaching config not found")

// Load reads and decodes the configuration file at path.
// It does not validate; call Validate on the result.
func Load(path string) (*TeachConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read teaching config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document. Unknown keys are rejected so that
// typos such as "current-week" do not silently fall back to defaults.
func Parse(data []byte) (*TeachConfig, error) {
	var cfg TeachConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to parse teaching config YAML: %w", err)
	}
	return &cfg, nil
}

// Locate walks up from dir looking for DefaultPath and returns the first
// match as an absolute path.
func Locate(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(abs, DefaultPath)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrNotFound, DefaultPath, dir)
		}
		abs = parent
	}
}
