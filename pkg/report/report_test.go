package report_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/past/pkg/past"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
	"github.com/Sumatoshi-tech/past/pkg/report"
)

func mapSource(t *testing.T, path, code string) *node.SourceFile {
	t.Helper()

	parser, err := past.NewParser()
	require.NoError(t, err)

	file, err := parser.Parse(context.Background(), path, []byte(code))
	require.NoError(t, err)

	return file
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	a := mapSource(t, "b.rs", "fn f() {}\nlet x = 1;\n")
	b := mapSource(t, "a.rs", "struct S;\n")

	summary := report.Summarize(a, nil, b)

	require.Len(t, summary.Files, 2)
	assert.Equal(t, "a.rs", summary.Files[0].Path)
	assert.Equal(t, "b.rs", summary.Files[1].Path)
	assert.Equal(t, 2, summary.Files[1].Items)
	assert.Equal(t, 1, summary.Files[1].Problems)
	assert.Equal(t, uint64(21), summary.Files[1].Bytes)
	assert.Equal(t, 1, summary.TotalProblems())
	assert.Equal(t, uint64(31), summary.TotalBytes())

	sum := 0
	for _, fs := range summary.Files {
		sum += fs.Nodes
	}

	assert.Equal(t, summary.TotalNodes(), sum)

	counts := map[node.Kind]int{}
	for _, kc := range summary.Kinds {
		counts[kc.Kind] = kc.Count
	}

	assert.Equal(t, 1, counts[node.KindFunction])
	assert.Equal(t, 1, counts[node.KindStruct])
	assert.Equal(t, 1, counts[node.KindProblem])
}

func TestWriteKindTable_FoldsTail(t *testing.T) {
	t.Parallel()

	summary := report.Summary{Kinds: []node.KindCount{
		{Kind: node.KindName, Count: 1200},
		{Kind: node.KindPath, Count: 5},
		{Kind: node.KindLiteral, Count: 3},
		{Kind: node.KindBlockExpr, Count: 2},
	}}

	var buf bytes.Buffer
	require.NoError(t, summary.WriteKindTable(&buf, 2))

	out := buf.String()
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "Path")
	assert.Contains(t, out, "other")
	assert.NotContains(t, out, "Literal")
	assert.Contains(t, out, "4 kinds")
	assert.NotContains(t, out, "4 KINDS")
	assert.Contains(t, out, "1,210")
}

func TestWriteFileTable(t *testing.T) {
	t.Parallel()

	summary := report.Summarize(mapSource(t, "src/lib.rs", "fn f() {}\n"))

	var buf bytes.Buffer
	require.NoError(t, summary.WriteFileTable(&buf))

	out := buf.String()
	assert.Contains(t, out, "src/lib.rs")
	assert.Contains(t, out, "10 B")
	assert.Contains(t, out, "1 files")
	assert.NotContains(t, out, "1 FILES")
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	summary := report.Summarize(mapSource(t, "lib.rs", "fn f() { let x = 1 + 2; }\n"))

	var buf bytes.Buffer
	require.NoError(t, summary.WriteHTML(&buf, "", 5))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "PAST kind statistics")
	assert.Contains(t, out, "Function")
	assert.Contains(t, out, "echarts")
}
