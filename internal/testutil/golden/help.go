// SPDX-License-Identifier: AGPL-3.0-or-later

package golden

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	helpStart  = regexp.MustCompile(`^Usage:`)
	whitespace = regexp.MustCompile(`\s+`)
)

// NormalizeHelp reduces cobra help output to its contract: everything from
// "Usage:" on, blank lines dropped, and runs of spaces collapsed so column
// padding does not matter.
func NormalizeHelp(input string) string {
	var normalized []string
	inBlock := false
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if helpStart.MatchString(line) {
			inBlock = true
		}
		if inBlock {
			normalized = append(normalized, whitespace.ReplaceAllString(line, " "))
		}
	}
	return strings.Join(normalized, "\n") + "\n"
}

// AssertHelp compares normalized help output with testdata/<name>.golden.
func AssertHelp(t *testing.T, testdataDir, name, got string) {
	t.Helper()
	got = NormalizeHelp(got)
	if *Update {
		Write(t, testdataDir, name, got)
	}
	want := NormalizeHelp(Read(t, testdataDir, name))
	assert.Equal(t, want, got, "CLI help drift for %s (run with -update to refresh)", name)
}
