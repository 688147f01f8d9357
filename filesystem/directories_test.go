package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	require.True(t, PathExists(dir))
	require.NoError(t, os.RemoveAll(dir))
	require.False(t, PathExists(dir))
}

func TestGetFullDirectoryPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "aicredit", "data")
	require.False(t, PathExists(dir))

	path, err := GetFullDirectoryPath(dir)
	require.NoError(t, err)
	require.Equal(t, dir, path)
	require.True(t, PathExists(dir))
}

func TestGetUserHomeDirectory(t *testing.T) {
	t.Setenv("HOME", "/home/aicredit")
	require.Equal(t, "/home/aicredit", GetUserHomeDirectory())
}

func TestGetCanonicalPath(t *testing.T) {
	t.Setenv("HOME", "/home/aicredit")
	t.Setenv("AICREDIT_DIR", "/var/lib/aicredit")
	for _, tc := range []struct {
		path     string
		expected string
	}{
		{"", "."},
		{".", "."},
		{"aicredit", "aicredit"},
		{"aicredit/app/config", "aicredit/app/config"},
		{"aicredit/../test", "test"},
		{"aicredit/../..", ".."},
		{"aicredit/.././../test", "../test"},
		{"a/b/../c/d/..", "a/c"},
		{"~/aicredit/test/../config/app/..", "/home/aicredit/aicredit/config"},
		{"$AICREDIT_DIR/db", "/var/lib/aicredit/db"},
		{"${AICREDIT_DIR}/../db", "/var/lib/db"},
		{"/aicredit/../test", "/test"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			require.Equal(t, tc.expected, GetCanonicalPath(tc.path))
		})
	}
}
