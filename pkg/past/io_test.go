package past_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/past/pkg/past"
)

func TestReadSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() {}\n"), 0o600))

	content, err := past.ReadSource(path, past.DefaultMaxFileSize)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", string(content))

	tests := []struct {
		name    string
		path    string
		maxSize int64
		want    error
	}{
		{"empty", "", 0, past.ErrEmptyPath},
		{"blank", "  ", 0, past.ErrEmptyPath},
		{"nul", "a\x00.rs", 0, past.ErrPathContainsNUL},
		{"directory", dir, 0, past.ErrDirectoryPath},
		{"too large", path, 4, past.ErrFileTooLarge},
		{"missing", filepath.Join(dir, "missing.rs"), 0, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, readErr := past.ReadSource(tt.path, tt.maxSize)
			require.ErrorIs(t, readErr, tt.want)
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	resolved, err := past.ResolvePath(filepath.Join(dir, "sub", "..", "lib.rs"))
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}
