package gitlib_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git2go "github.com/libgit2/git2go/v34"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/past/pkg/gitlib"
)

// testRepo wraps a scratch repository.
type testRepo struct {
	t      *testing.T
	path   string
	native *git2go.Repository
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()

	repo, err := git2go.InitRepository(dir, false)
	require.NoError(t, err)

	t.Cleanup(repo.Free)

	return &testRepo{t: t, path: dir, native: repo}
}

func (tr *testRepo) createFile(name, content string) {
	tr.t.Helper()

	path := filepath.Join(tr.path, filepath.FromSlash(name))
	require.NoError(tr.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(tr.t, os.WriteFile(path, []byte(content), 0o644))
}

func (tr *testRepo) deleteFile(name string) {
	tr.t.Helper()

	require.NoError(tr.t, os.Remove(filepath.Join(tr.path, filepath.FromSlash(name))))
}

// commit stages the whole work tree, removals included, and commits it.
func (tr *testRepo) commit(message string) gitlib.Hash {
	tr.t.Helper()

	index, err := tr.native.Index()
	require.NoError(tr.t, err)

	defer index.Free()

	require.NoError(tr.t, index.AddAll([]string{"*"}, git2go.IndexAddDefault, nil))
	require.NoError(tr.t, index.UpdateAll([]string{"*"}, nil))
	require.NoError(tr.t, index.Write())

	treeID, err := index.WriteTree()
	require.NoError(tr.t, err)

	tree, err := tr.native.LookupTree(treeID)
	require.NoError(tr.t, err)

	defer tree.Free()

	sig := &git2go.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()}

	var parents []*git2go.Commit

	if head, headErr := tr.native.Head(); headErr == nil {
		parent, lookupErr := tr.native.LookupCommit(head.Target())
		require.NoError(tr.t, lookupErr)

		parents = append(parents, parent)

		head.Free()
	}

	oid, err := tr.native.CreateCommit("HEAD", sig, sig, message, tree, parents...)
	require.NoError(tr.t, err)

	for _, parent := range parents {
		parent.Free()
	}

	return gitlib.HashFromOid(oid)
}

func openRepo(t *testing.T, path string) *gitlib.Repository {
	t.Helper()

	repo, err := gitlib.OpenRepository(path)
	require.NoError(t, err)

	t.Cleanup(repo.Free)

	return repo
}

func TestOpenRepository(t *testing.T) {
	t.Parallel()

	tr := newTestRepo(t)
	tr.createFile("src/lib.rs", "fn f() {}\n")
	tr.commit("initial")

	repo := openRepo(t, filepath.Join(tr.path, "src"))
	assert.Equal(t, filepath.Join(tr.path, "src"), repo.Path())
}

func TestOpenRepositoryNotFound(t *testing.T) {
	t.Parallel()

	repo, err := gitlib.OpenRepository(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Nil(t, repo)
}

func TestReadFileAcrossRevisions(t *testing.T) {
	t.Parallel()

	tr := newTestRepo(t)
	tr.createFile("src/lib.rs", "fn one() {}\n")
	first := tr.commit("first")

	tr.createFile("src/lib.rs", "fn two() {}\n")
	second := tr.commit("second")

	repo := openRepo(t, tr.path)

	old, err := repo.ReadFile("HEAD~1", "src/lib.rs")
	require.NoError(t, err)
	assert.Equal(t, "fn one() {}\n", string(old))

	cur, err := repo.ReadFile("HEAD", "./src/../src/lib.rs")
	require.NoError(t, err)
	assert.Equal(t, "fn two() {}\n", string(cur))

	byHash, err := repo.ReadFile(first.String(), "src/lib.rs")
	require.NoError(t, err)
	assert.Equal(t, old, byHash)

	resolved, err := repo.Resolve("HEAD")
	require.NoError(t, err)
	assert.Equal(t, second, resolved)
	assert.Len(t, resolved.Short(), 12)
	assert.True(t, strings.HasPrefix(second.String(), resolved.Short()))
}

func TestReadBlob(t *testing.T) {
	t.Parallel()

	tr := newTestRepo(t)
	tr.createFile("a.rs", "fn same() {}\n")
	tr.createFile("b.rs", "fn same() {}\n")
	tr.commit("first")

	tr.createFile("c.rs", "fn other() {}\n")
	tr.commit("second")

	repo := openRepo(t, tr.path)

	idA, content, err := repo.ReadBlob("HEAD~1", "a.rs")
	require.NoError(t, err)
	assert.Equal(t, "fn same() {}\n", string(content))
	assert.False(t, idA.IsZero())

	idB, _, err := repo.ReadBlob("HEAD", "b.rs")
	require.NoError(t, err)
	assert.Equal(t, idA, idB)

	idC, _, err := repo.ReadBlob("HEAD", "c.rs")
	require.NoError(t, err)
	assert.NotEqual(t, idA, idC)

	_, _, err = repo.ReadBlob("HEAD~1", "c.rs")
	require.ErrorIs(t, err, gitlib.ErrPathNotFound)
}

func TestReadFileErrors(t *testing.T) {
	t.Parallel()

	tr := newTestRepo(t)
	tr.createFile("src/lib.rs", "fn f() {}\n")
	tr.commit("initial")

	repo := openRepo(t, tr.path)

	_, err := repo.ReadFile("HEAD", "src/missing.rs")
	require.ErrorIs(t, err, gitlib.ErrPathNotFound)

	_, err = repo.ReadFile("HEAD", "src")
	require.ErrorIs(t, err, gitlib.ErrNotBlob)

	_, err = repo.ReadFile("no-such-branch", "src/lib.rs")
	require.Error(t, err)
}

func TestFiles(t *testing.T) {
	t.Parallel()

	tr := newTestRepo(t)
	tr.createFile("src/main.rs", "fn main() {}\n")
	tr.createFile("src/util/mod.rs", "pub fn u() {}\n")
	tr.createFile("README.md", "# x\n")
	tr.commit("initial")

	tr.deleteFile("src/util/mod.rs")
	tr.commit("drop util")

	repo := openRepo(t, tr.path)
	isRust := func(name string) bool { return strings.HasSuffix(name, ".rs") }

	files, err := repo.Files("HEAD~1", isRust)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.rs", "src/util/mod.rs"}, files)

	files, err = repo.Files("HEAD", isRust)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.rs"}, files)

	all, err := repo.Files("HEAD", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "src/main.rs"}, all)
}

func TestHash(t *testing.T) {
	t.Parallel()

	var h gitlib.Hash
	assert.True(t, h.IsZero())
	assert.Len(t, h.String(), gitlib.HashHexSize)

	h[0] = 0xab
	assert.False(t, h.IsZero())
	assert.Equal(t, "ab", h.String()[:2])
	assert.Equal(t, gitlib.Hash{}, gitlib.HashFromOid(nil))
}
