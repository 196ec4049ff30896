package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	diffBefore = "fn keep() {}\nfn edit() -> i32 { 1 }\nfn gone() {}\n"
	diffAfter  = "fn keep() {}\nfn edit() -> i32 { 2 }\nstruct Fresh;\n"
)

func TestDiff_Unified(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	before := writeRust(t, dir, "before.rs", diffBefore)
	after := writeRust(t, dir, "after.rs", diffAfter)

	out, err := runCLI(t, nil, "diff", before, after)
	require.NoError(t, err)

	assert.Contains(t, out, "--- "+before)
	assert.Contains(t, out, "+++ "+after)
	assert.Contains(t, out, "-fn gone() {}")
	assert.Contains(t, out, "+struct Fresh;")
	assert.Contains(t, out, " fn keep() {}")
	assert.Contains(t, out, "Structural changes (3):")
	assert.Contains(t, out, "modified Function edit")
	assert.Contains(t, out, "removed  Function gone")
	assert.Contains(t, out, "added    Struct Fresh")
}

func TestDiff_JSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	before := writeRust(t, dir, "before.rs", diffBefore)
	after := writeRust(t, dir, "after.rs", diffAfter)

	out, err := runCLI(t, nil, "diff", "-f", "json", before, after)
	require.NoError(t, err)

	var result struct {
		Changes []ChangeRecord `json:"changes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Changes, 3)

	edit := result.Changes[0]
	assert.Equal(t, "modified", edit.Type)
	assert.Equal(t, "edit", edit.Name)
	require.NotNil(t, edit.BeforeSpan)
	require.NotNil(t, edit.AfterSpan)
	assert.Equal(t, "fn edit() -> i32 { 1 }", edit.Before)
	assert.Equal(t, "fn edit() -> i32 { 2 }", edit.After)

	deep, err := runCLI(t, nil, "diff", "-f", "json", "--deep", before, after)
	require.NoError(t, err)
	assert.Contains(t, deep, `"kind": "Literal"`)
}

func TestDiff_Summary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	before := writeRust(t, dir, "before.rs", diffBefore)
	after := writeRust(t, dir, "after.rs", diffAfter)

	out, err := runCLI(t, nil, "diff", "-f", "summary", before, after)
	require.NoError(t, err)
	assert.Equal(t, "Change Summary:\n  added: 1\n  modified: 1\n  removed: 1\n", out)
}

func TestDiff_Args(t *testing.T) {
	t.Parallel()

	path := writeRust(t, t.TempDir(), "lib.rs", "fn f() {}\n")

	_, err := runCLI(t, nil, "diff", path)
	require.ErrorIs(t, err, ErrDiffArgs)

	_, err = runCLI(t, nil, "diff", "--from", "HEAD", path)
	require.ErrorIs(t, err, ErrDiffArgs)

	_, err = runCLI(t, nil, "diff", "-f", "html", path, path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
