package past

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize bounds the files ParseFile will read.
const DefaultMaxFileSize = 8 << 20

var (
	// ErrEmptyPath is returned for a blank path.
	ErrEmptyPath = errors.New("path is empty")
	// ErrPathContainsNUL is returned for a path with a NUL byte.
	ErrPathContainsNUL = errors.New("path contains NUL byte")
	// ErrDirectoryPath is returned when the path names a directory.
	ErrDirectoryPath = errors.New("path points to a directory")
	// ErrFileTooLarge is returned when the file exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// ReadSource reads a Rust source file. A non-positive maxSize disables the limit.
func ReadSource(path string, maxSize int64) ([]byte, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // resolved is cleaned and stat-checked by ResolvePath.
	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", resolved, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", resolved, err)
	}

	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, resolved, info.Size(), maxSize)
	}

	var r io.Reader = f
	if maxSize > 0 {
		// The file can grow between Stat and Read.
		r = io.LimitReader(f, maxSize+1)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", resolved, err)
	}

	if maxSize > 0 && int64(len(content)) > maxSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, resolved, maxSize)
	}

	return content, nil
}

// ResolvePath cleans path, makes it absolute and checks that it names a regular file.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}

	if strings.ContainsRune(path, '\x00') {
		return "", fmt.Errorf("%w: %q", ErrPathContainsNUL, path)
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrDirectoryPath, abs)
	}

	return abs, nil
}
