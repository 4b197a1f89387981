package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"lf", "a:1\nb:2\n", []string{"a:1", "b:2"}},
		{"crlf", "a:1\r\nb:2\r\n", []string{"a:1", "b:2"}},
		{"no final newline", "a:1\nb:2", []string{"a:1", "b:2"}},
		{"blank line kept", "a:1\n\nb:2\n", []string{"a:1", "", "b:2"}},
		{"empty file", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hands.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			lines, err := ReadLines(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/work", "in.txt"), Resolve("/work", "in.txt"))
	assert.Equal(t, filepath.Join("/work", "data", "in.txt"), Resolve("/work", "data/in.txt"))
	assert.Equal(t, "/abs/in.txt", Resolve("/work", "/abs/in.txt"))
}

func TestRequireFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.NoError(t, RequireFile(path))
	assert.True(t, errors.Is(RequireFile(filepath.Join(dir, "nope.txt")), ErrMissingFile))
	assert.ErrorIs(t, RequireFile(dir), ErrMissingFile, "directories are not files")
}
