package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	if stdin == nil {
		stdin = strings.NewReader("")
	}

	cmd.SetIn(stdin)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeRust(t *testing.T, dir, name, code string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(code), 0o600))

	return path
}

func TestCLI_HelpAndSubcommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantOut string
		args    []string
		wantErr bool
	}{
		{wantOut: "Portable AST", args: []string{"--help"}},
		{wantOut: "Parse Rust source files into the Portable AST", args: []string{"parse", "--help"}},
		{wantOut: "embedded PAST schema", args: []string{"validate", "--help"}},
		{wantOut: "structural changes", args: []string{"diff", "--help"}},
		{wantOut: "/api/parse", args: []string{"serve", "--help"}},
		{wantOut: "parse_rust_code", args: []string{"mcp", "--help"}},
		{args: []string{"unknown"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			out, err := runCLI(t, nil, tt.args...)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestCLI_Version(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, nil, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "past "), out)
}

func TestParse_CompactJSON(t *testing.T) {
	t.Parallel()

	path := writeRust(t, t.TempDir(), "lib.rs", "/// Adds.\nfn add(a: i32, b: i32) -> i32 { a + b }\n")

	out, err := runCLI(t, nil, "parse", "-f", "compact", path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, path, doc["path"])

	items, ok := doc["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	fn, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Function", fn["kind"])

	env, ok := fn["envelope"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Adds.", env["doc_comment"])
}

func TestParse_Stdin(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, strings.NewReader("struct S;\n"), "parse", "-f", "compact", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"path":"stdin.rs"`)
	assert.Contains(t, out, `"kind":"Struct"`)
}

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	path := writeRust(t, t.TempDir(), "lib.rs", "enum E { A, B }\n")

	out, err := runCLI(t, nil, "parse", "-f", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "kind: Enum")
	assert.Contains(t, out, "start_offset: 0")
}

func TestParse_AllInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRust(t, dir, "b.rs", "fn b() {}\n")
	writeRust(t, dir, "a/a.rs", "fn a() {}\n")
	writeRust(t, dir, "target/skip.rs", "fn skip() {}\n")
	writeRust(t, dir, "notes.txt", "not rust")

	out, err := runCLI(t, nil, "parse", "--all", "-w", "2", "-f", "compact", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a.rs")
	assert.Contains(t, lines[1], "b.rs")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeRust(t, dir, "lib.rs", "fn f() {}\n")

	_, err := runCLI(t, nil, "parse", "-f", "xml", path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = runCLI(t, nil, "parse", filepath.Join(dir, "missing.rs"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = runCLI(t, nil, "parse", "--all", t.TempDir())
	require.ErrorIs(t, err, ErrNoSourceFiles)
}

func TestParse_LZ4ThenValidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeRust(t, dir, "lib.rs", "mod m { pub struct P { x: u8 } }\nlet broken = 1;\n")
	out := filepath.Join(dir, "tree.json.lz4")

	_, err := runCLI(t, nil, "parse", "-o", out, src)
	require.NoError(t, err)

	compressed, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Greater(t, len(compressed), 4)
	assert.Equal(t, []byte{0x04, 0x22, 0x4d, 0x18}, compressed[:4])

	report, err := runCLI(t, nil, "validate", out)
	require.NoError(t, err)
	assert.Contains(t, report, "PAST is valid")
	assert.Contains(t, report, "lib.rs")
}

func TestValidate_Stream(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeRust(t, dir, "a.rs", "fn a() {}\n")
	b := writeRust(t, dir, "b.rs", "fn b() {}\n")

	stream, err := runCLI(t, nil, "parse", "-f", "compact", a, b)
	require.NoError(t, err)

	report, err := runCLI(t, strings.NewReader(stream), "validate", "-")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(report, "PAST is valid"))
}

func TestValidate_Invalid(t *testing.T) {
	t.Parallel()

	doc := `{"root":{"text":"","span":{"start_offset":0,"end_offset":0},"doc_comment":null},` +
		`"path":"x.rs","attrs":[],"items":[{"kind":"Klass","envelope":{"text":"","span":{"start_offset":0,"end_offset":0},"doc_comment":null}}]}`

	report, err := runCLI(t, strings.NewReader(doc), "validate", "-")
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, report, "PAST validation failed")
	assert.Contains(t, report, "Compliance")
	assert.Contains(t, report, "Klass")

	_, err = runCLI(t, strings.NewReader("{not json"), "validate", "-")
	require.Error(t, err)

	_, err = runCLI(t, strings.NewReader(""), "validate", "-")
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestProblems(t *testing.T) {
	t.Parallel()

	path := writeRust(t, t.TempDir(), "lib.rs", "fn f() {}\nlet x = 1;\n")

	out, err := runCLI(t, nil, "problems", path)
	require.NoError(t, err)
	assert.Contains(t, out, "lib.rs:2:1: unmodeled syntax: let x = 1;")
	assert.Contains(t, out, "1 problem(s) in 1 file(s)")

	out, err = runCLI(t, nil, "problems", "-f", "json", path)
	require.NoError(t, err)

	var records []ProblemRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, uint32(10), records[0].Span.StartOffset)
}

func TestLineColumn(t *testing.T) {
	t.Parallel()

	text := "ab\ncd\n"

	tests := []struct {
		offset       uint32
		line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{100, 3, 1},
	}

	for _, tt := range tests {
		line, column := lineColumn(text, tt.offset)
		assert.Equal(t, tt.line, line, "offset %d", tt.offset)
		assert.Equal(t, tt.column, column, "offset %d", tt.offset)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRust(t, dir, "lib.rs", "fn a() {}\nfn b() {}\nstruct S;\n")

	out, err := runCLI(t, nil, "stats", "--all", "--files", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Function")
	assert.Contains(t, out, "lib.rs")
	assert.Contains(t, out, "1 files")

	page := filepath.Join(dir, "kinds.html")

	_, err = runCLI(t, nil, "stats", "--all", "--html", page, "--title", "Kinds of lib", dir)
	require.NoError(t, err)

	html, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Kinds of lib")
}

func TestSanitizeForTerminal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizeForTerminal("a\nb\tc\x1b"))
	assert.Equal(t, "abc...", excerpt("abcdef", 3))
	assert.Equal(t, "abc", excerpt("abc", 3))
}
