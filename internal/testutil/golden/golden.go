// SPDX-License-Identifier: AGPL-3.0-or-later

// Package golden compares rendered output against files under testdata/.
// Run tests with -update to rewrite the files from the current output.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var Update = flag.Bool("update", false, "update golden files")

// TestdataDir returns the testdata directory next to the calling test file.
func TestdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}

// Assert compares got with testdata/<name>.golden, rewriting the file first
// when -update is set.
func Assert(t *testing.T, testdataDir, name, got string) {
	t.Helper()
	if *Update {
		Write(t, testdataDir, name, got)
	}
	want := Read(t, testdataDir, name)
	assert.Equal(t, want, got, "golden mismatch for %s (run with -update to refresh)", name)
}

// Read returns the golden content, or "" when the file does not exist yet.
func Read(t *testing.T, testdataDir, name string) string {
	t.Helper()
	path := goldenPath(t, testdataDir, name)

	data, err := os.ReadFile(path) //nolint:gosec // testdata path controlled by test
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(data)
}

// Write stores content as the golden file for name.
func Write(t *testing.T, testdataDir, name, content string) {
	t.Helper()
	path := goldenPath(t, testdataDir, name)

	if err := os.MkdirAll(testdataDir, 0o750); err != nil {
		t.Fatalf("mkdir testdata: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write golden %s: %v", path, err)
	}
}

func goldenPath(t *testing.T, testdataDir, name string) string {
	t.Helper()
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		t.Fatalf("invalid golden name %q", name)
	}
	return filepath.Join(testdataDir, name+".golden")
}
