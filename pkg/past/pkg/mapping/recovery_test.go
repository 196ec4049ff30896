package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

func firstOf[T node.Node](t *testing.T, file *node.SourceFile) T {
	t.Helper()

	var (
		found T
		ok    bool
	)

	for _, n := range file.Nodes() {
		node.Inspect(n, func(cur node.Node) bool {
			if v, match := cur.(T); match && !ok {
				found, ok = v, true
			}

			return cur != nil
		})
	}

	require.True(t, ok, "no %T in file", found)

	return found
}

func TestRecovery_ListMembersKeptAsProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		problems func(t *testing.T, file *node.SourceFile) []*node.Problem
	}{
		{
			name: "record fields",
			src:  "struct S { a: u8, 42 b: u8 }",
			problems: func(t *testing.T, file *node.SourceFile) []*node.Problem {
				t.Helper()

				return firstOf[*node.RecordFieldList](t, file).Problems
			},
		},
		{
			name: "variants",
			src:  "enum E { A, 42 B }",
			problems: func(t *testing.T, file *node.SourceFile) []*node.Problem {
				t.Helper()

				return firstOf[*node.VariantList](t, file).Problems
			},
		},
		{
			name: "match arms",
			src:  "fn f(x: u8) { match x { 1 => {} 42 2 => {} } }",
			problems: func(t *testing.T, file *node.SourceFile) []*node.Problem {
				t.Helper()

				return firstOf[*node.MatchArmList](t, file).Problems
			},
		},
		{
			name: "record expression fields",
			src:  "fn f() { let s = S { a: 1, 42 b: 2 }; }",
			problems: func(t *testing.T, file *node.SourceFile) []*node.Problem {
				t.Helper()

				return firstOf[*node.RecordExprFieldList](t, file).Problems
			},
		},
		{
			name: "record pattern fields",
			src:  "fn f(s: S) { let S { a, 42 b } = s; }",
			problems: func(t *testing.T, file *node.SourceFile) []*node.Problem {
				t.Helper()

				return firstOf[*node.RecordPatFieldList](t, file).Problems
			},
		},
		{
			name: "where predicates",
			src:  "fn f<T>() where T: Clone, 42 {}",
			problems: func(t *testing.T, file *node.SourceFile) []*node.Problem {
				t.Helper()

				return firstOf[*node.WhereClause](t, file).Problems
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := assemble(t, tt.src)

			all := node.FileProblems(file)
			require.NotEmpty(t, all)

			listed := tt.problems(t, file)
			require.NotEmpty(t, listed)
			assert.Contains(t, listed[0].Text, "42")
			assert.Contains(t, all, listed[0])
		})
	}
}

func TestRecovery_ListProblemsSerialize(t *testing.T) {
	t.Parallel()

	file := assemble(t, "struct S { a: u8, 42 b: u8 }")
	list := firstOf[*node.RecordFieldList](t, file)

	m := node.ToMap(list)
	problems, ok := m["problems"].([]any)
	require.True(t, ok, "got %T", m["problems"])
	assert.NotEmpty(t, problems)
}

func TestAssemble_ExternBlockItems(t *testing.T) {
	t.Parallel()

	src := `extern "C" {
    fn puts(s: *const u8) -> i32;
    static ERRNO: i32;
    type Opaque;
}`
	file := assemble(t, src)
	assert.Empty(t, node.FileProblems(file))

	block := single[*node.ExternBlock](t, file)
	require.NotNil(t, block.ExternItemList)
	require.Len(t, block.ExternItemList.Items, 3)

	assert.IsType(t, &node.Function{}, block.ExternItemList.Items[0])
	assert.IsType(t, &node.Static{}, block.ExternItemList.Items[1])

	alias, ok := block.ExternItemList.Items[2].(*node.TypeAlias)
	require.True(t, ok, "got %T", block.ExternItemList.Items[2])
	assert.Equal(t, "Opaque", alias.Name.Text)
	assert.Nil(t, alias.Ty)
}
