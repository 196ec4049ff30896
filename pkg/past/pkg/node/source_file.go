package node

import "encoding/json"

// SourceFile is the root of one compilation unit. Root spans the whole
// file and carries the inner doc comment (`//!`) of the crate or module.
type SourceFile struct {
	Root  Envelope
	Path  string
	Items []Item
	// Attrs holds the inner attributes of the file.
	Attrs []*Attr
}

// Nodes returns the top-level nodes in source order.
func (f *SourceFile) Nodes() []Node {
	out := make([]Node, 0, len(f.Attrs)+len(f.Items))
	for _, attr := range f.Attrs {
		out = append(out, attr)
	}

	for _, item := range f.Items {
		out = append(out, item)
	}

	return out
}

// ToMap converts the file to a map of plain values.
func (f *SourceFile) ToMap() map[string]any {
	items := make([]any, 0, len(f.Items))
	for _, item := range f.Items {
		items = append(items, ToMap(item))
	}

	attrs := make([]any, 0, len(f.Attrs))
	for _, attr := range f.Attrs {
		attrs = append(attrs, ToMap(attr))
	}

	return map[string]any{
		"root":  envelopeMap(&f.Root),
		"path":  f.Path,
		"items": items,
		"attrs": attrs,
	}
}

// MarshalJSON encodes the file with every node tagged by its kind.
func (f *SourceFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.ToMap())
}
