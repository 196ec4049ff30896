package mapping

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// Assemble converts a parsed Rust source file. Root is the source_file node
// of a tree parsed from src and path is recorded verbatim.
func Assemble(root sitter.Node, src []byte, path string, opts ...Option) *node.SourceFile {
	return NewConverter(root, src, opts...).SourceFile(root, path)
}

// SourceFile maps the root node. The root envelope spans the whole input
// and carries the file's inner doc comments.
func (c *Converter) SourceFile(root sitter.Node, path string) *node.SourceFile {
	inner := c.trivia.innerOf(root)

	file := &node.SourceFile{
		Root:  c.rangeEnvelope(0, uint(len(c.src)), joinDocs(inner.docList())),
		Path:  path,
		Attrs: c.innerAttrs(root),
	}

	if !root.IsNull() {
		file.Items = c.items(root)
	}

	return file
}
