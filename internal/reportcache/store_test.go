// SPDX-License-Identifier: AGPL-3.0-or-later

package reportcache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/craft/internal/semester"
)

func TestStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".craft", "teach")
	store := NewStore(dir)

	// Clean state
	got, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, got)

	start, err := semester.ParseDate("2026-01-19")
	require.NoError(t, err)
	end, err := semester.ParseDate("2026-05-08")
	require.NoError(t, err)
	query, err := semester.ParseDate("2026-02-09")
	require.NoError(t, err)

	entry := Entry{
		SavedAt:   time.Date(2026, time.February, 9, 8, 30, 0, 0, time.UTC),
		QueryDate: "2026-02-09",
		Course:    "STAT 545",
		Report:    semester.Calculate(semester.Config{Start: start, End: end}, query),
	}
	require.NoError(t, store.Write(entry))

	got, err = store.Read()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.QueryDate, got.QueryDate)
	assert.Equal(t, entry.Course, got.Course)
	assert.True(t, entry.SavedAt.Equal(got.SavedAt))
	assert.Equal(t, entry.Report, got.Report)
	assert.Equal(t, 4, got.Report.CurrentWeek)
}

func TestStore_ReadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding cached report")
}

func TestStore_Reset(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "teach")
	store := NewStore(dir)
	require.NoError(t, store.Write(Entry{QueryDate: "2026-02-09"}))

	require.NoError(t, store.Reset())
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ResetKeepsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "syllabus.md")
	require.NoError(t, os.WriteFile(other, []byte("# Syllabus\n"), 0o644))

	store := NewStore(dir)
	require.NoError(t, store.Write(Entry{QueryDate: "2026-02-09"}))
	require.NoError(t, store.Reset())

	assert.FileExists(t, other)
	assert.NoFileExists(t, store.Path())

	// Nothing cached is a no-op.
	require.NoError(t, store.Reset())
	assert.FileExists(t, other)
}
