package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

func docOf(env *node.Envelope) any {
	if env.DocComment == nil {
		return nil
	}

	return *env.DocComment
}

func TestDocComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want any
	}{
		{"line", "/// does X\nfn f() {}", "does X"},
		{"none", "fn f() {}", nil},
		{"several lines", "/// first\n/// second\nfn f() {}", "first\nsecond"},
		{"plain comment ignored", "/// a\n// plain\n/// b\nfn f() {}", "a\nb"},
		{"attribute inside run", "/// a\n#[inline]\n/// b\nfn f() {}", "a\nb"},
		{"four slashes", "//// banner\nfn f() {}", nil},
		{"block", "/** block\n * doc */\nfn f() {}", "block\ndoc"},
		{"empty block", "/**/\nfn f() {}", nil},
		{"triple star", "/*** rule ***/\nfn f() {}", nil},
		{"no leading space", "///tight\nfn f() {}", "tight"},
		{"extra space kept", "///   indented\nfn f() {}", "  indented"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn := single[*node.Function](t, assemble(t, tt.src))
			assert.Equal(t, tt.want, docOf(&fn.Envelope))
		})
	}
}

func TestDocComment_ExtendsSpan(t *testing.T) {
	t.Parallel()

	src := "/// does X\n#[inline]\nfn f() {}"
	fn := single[*node.Function](t, assemble(t, src))

	assert.Equal(t, uint32(0), fn.Span.StartOffset)
	assert.Equal(t, src, fn.Text)
	require.Len(t, fn.Attrs, 1)
	assert.Equal(t, "#[inline]", fn.Attrs[0].Text)
	assert.Equal(t, "does X", docOf(&fn.Envelope))
	assert.Nil(t, fn.Name.DocComment)
}

func TestDocComment_Fixture(t *testing.T) {
	t.Parallel()

	file := assemble(t, loadFixture(t, "shapes.rs"))

	assert.Equal(t, "Geometry helpers.", docOf(&file.Root))
	require.Len(t, file.Attrs, 1)
	assert.Equal(t, "#![allow(dead_code)]", file.Attrs[0].Text)

	docs := make(map[string]any)

	for _, item := range file.Items {
		node.Inspect(item, func(n node.Node) bool {
			if n == nil {
				return false
			}

			if name := nameOf(n); name != "" {
				docs[string(n.Kind())+" "+name] = docOf(n.Env())
			}

			return true
		})
	}

	assert.Equal(t, "Largest supported side.", docs["Const MAX_SIDE"])
	assert.Nil(t, docs["Static GREETING"])
	assert.Equal(t, "A point on the plane.", docs["Struct Point"])
	assert.Equal(t, "Horizontal offset.", docs["RecordField x"])
	assert.Nil(t, docs["RecordField y"])
	assert.Equal(t, "Nothing at all.", docs["Variant Empty"])
	assert.Nil(t, docs["Variant Circle"])
	assert.Equal(t, "Things with an area.", docs["Trait Area"])
	assert.Equal(t, "Private helpers.", docs["Module inner"])
	assert.Nil(t, docs["Function build"])
}

func nameOf(n node.Node) string {
	var name *node.Name

	switch v := n.(type) {
	case *node.Const:
		name = v.Name
	case *node.Static:
		name = v.Name
	case *node.Struct:
		name = v.Name
	case *node.RecordField:
		name = v.Name
	case *node.Variant:
		name = v.Name
	case *node.Trait:
		name = v.Name
	case *node.Module:
		name = v.Name
	case *node.Function:
		name = v.Name
	}

	if name == nil {
		return ""
	}

	return name.Text
}

func TestAttrs_OuterAndInner(t *testing.T) {
	t.Parallel()

	src := "#[derive(Debug)]\n#[repr(C)]\nstruct S;\nmod m {\n    #![allow(unused)]\n    fn g() {}\n}\n"
	file := assemble(t, src)

	require.Len(t, file.Items, 2)

	st, ok := file.Items[0].(*node.Struct)
	require.True(t, ok)
	require.Len(t, st.Attrs, 2)
	assert.Equal(t, "#[derive(Debug)]", st.Attrs[0].Text)
	assert.Equal(t, "#[repr(C)]", st.Attrs[1].Text)
	assert.Nil(t, st.FieldList)

	mod, ok := file.Items[1].(*node.Module)
	require.True(t, ok)
	require.Len(t, mod.Attrs, 1)
	assert.Equal(t, "#![allow(unused)]", mod.Attrs[0].Text)
	require.NotNil(t, mod.ItemList)
	assert.Len(t, mod.ItemList.Items, 1)
}
