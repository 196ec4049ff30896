package gitlib

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	git2go "github.com/libgit2/git2go/v34"
)

var (
	// ErrPathNotFound is returned when a path does not exist at a revision.
	ErrPathNotFound = errors.New("path not found at revision")
	// ErrNotBlob is returned when a path names a tree or submodule.
	ErrNotBlob = errors.New("path is not a file")
)

// Repository wraps a libgit2 repository.
type Repository struct {
	repo *git2go.Repository
	path string
}

// OpenRepository opens the repository containing path.
func OpenRepository(repoPath string) (*Repository, error) {
	repo, err := git2go.OpenRepositoryExtended(repoPath, 0, "")
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Repository{repo: repo, path: repoPath}, nil
}

// Path returns the path the repository was opened with.
func (r *Repository) Path() string {
	return r.path
}

// Free releases the repository resources.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// Resolve peels a revision expression such as "HEAD~1", a branch name or
// a hash prefix to a commit.
func (r *Repository) Resolve(rev string) (Hash, error) {
	commit, err := r.commit(rev)
	if err != nil {
		return Hash{}, err
	}
	defer commit.Free()

	return HashFromOid(commit.Id()), nil
}

// ReadFile returns the contents of the file at filePath in revision rev.
// filePath is slash-separated and relative to the repository root.
func (r *Repository) ReadFile(rev, filePath string) ([]byte, error) {
	_, content, err := r.ReadBlob(rev, filePath)

	return content, err
}

// ReadBlob is ReadFile that also returns the blob id. Equal ids mean equal
// contents, across revisions and paths.
func (r *Repository) ReadBlob(rev, filePath string) (Hash, []byte, error) {
	tree, err := r.tree(rev)
	if err != nil {
		return Hash{}, nil, err
	}
	defer tree.Free()

	entry, err := tree.EntryByPath(cleanPath(filePath))
	if err != nil {
		if git2go.IsErrorCode(err, git2go.ErrorCodeNotFound) {
			return Hash{}, nil, fmt.Errorf("%w: %s@%s", ErrPathNotFound, filePath, rev)
		}

		return Hash{}, nil, fmt.Errorf("lookup %s@%s: %w", filePath, rev, err)
	}

	if entry.Type != git2go.ObjectBlob {
		return Hash{}, nil, fmt.Errorf("%w: %s@%s", ErrNotBlob, filePath, rev)
	}

	blob, err := r.repo.LookupBlob(entry.Id)
	if err != nil {
		return Hash{}, nil, fmt.Errorf("lookup blob %s: %w", filePath, err)
	}
	defer blob.Free()

	return HashFromOid(entry.Id), blob.Contents(), nil
}

// Files lists the blob paths at revision rev accepted by keep, in lexical
// order. Paths are slash-separated and relative to the repository root.
func (r *Repository) Files(rev string, keep func(string) bool) ([]string, error) {
	tree, err := r.tree(rev)
	if err != nil {
		return nil, err
	}
	defer tree.Free()

	var files []string

	walkErr := tree.Walk(func(dir string, entry *git2go.TreeEntry) error {
		if entry.Type != git2go.ObjectBlob {
			return nil
		}

		name := dir + entry.Name
		if keep == nil || keep(name) {
			files = append(files, name)
		}

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk tree at %s: %w", rev, walkErr)
	}

	slices.Sort(files)

	return files, nil
}

func (r *Repository) commit(rev string) (*git2go.Commit, error) {
	obj, err := r.repo.RevparseSingle(rev)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", rev, err)
	}
	defer obj.Free()

	peeled, err := obj.Peel(git2go.ObjectCommit)
	if err != nil {
		return nil, fmt.Errorf("peel %q to commit: %w", rev, err)
	}
	defer peeled.Free()

	commit, err := r.repo.LookupCommit(peeled.Id())
	if err != nil {
		return nil, fmt.Errorf("lookup commit %q: %w", rev, err)
	}

	return commit, nil
}

func (r *Repository) tree(rev string) (*git2go.Tree, error) {
	commit, err := r.commit(rev)
	if err != nil {
		return nil, err
	}
	defer commit.Free()

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree of %q: %w", rev, err)
	}

	return tree, nil
}

func cleanPath(p string) string {
	return strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(p, "\\", "/")), "/")
}
