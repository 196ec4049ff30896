package past

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/src-d/enry/v2"
)

// CollectRustFiles walks root and returns its Rust sources in lexical order.
// Hidden and vendored directories are skipped. A file root is returned as is
// when it is a Rust file.
func CollectRustFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		rel = filepath.ToSlash(rel)
		if rel == "." {
			rel = d.Name()
		}

		if d.IsDir() {
			if path != root && skipDir(rel, d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Type().IsRegular() && IsSupported(path) && !enry.IsVendor(rel) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	slices.Sort(files)

	return files, nil
}

func skipDir(rel, name string) bool {
	if strings.HasPrefix(name, ".") || name == "target" {
		return true
	}

	return enry.IsVendor(rel + "/")
}
