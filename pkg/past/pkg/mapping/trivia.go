package mapping

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

type nodeKey struct {
	start uint
	end   uint
	typ   string
}

func keyOf(n sitter.Node) nodeKey {
	return nodeKey{start: n.StartByte(), end: n.EndByte(), typ: kindOf(n)}
}

// trivia is a run of doc comments and attributes.
type trivia struct {
	start uint
	docs  []string
	attrs []sitter.Node
}

func (t *trivia) docList() []string {
	if t == nil {
		return nil
	}

	return t.docs
}

func (t *trivia) attrList() []sitter.Node {
	if t == nil {
		return nil
	}

	return t.attrs
}

func (t *trivia) empty() bool {
	return len(t.docs) == 0 && len(t.attrs) == 0
}

func (t *trivia) merge(other *trivia) {
	if other.start < t.start {
		t.start = other.start
	}

	t.docs = append(t.docs, other.docs...)
	t.attrs = append(t.attrs, other.attrs...)
}

// triviaIndex records, for every node, the outer doc comments and outer
// attributes that precede it, and for every container the inner ones it
// holds. The tree is never mutated.
type triviaIndex struct {
	leads map[nodeKey]*trivia
	inner map[nodeKey]*trivia
}

// ownedByParent lists nodes whose grammar rule starts with attributes, so
// a leading run inside them belongs to the node itself.
var ownedByParent = map[string]bool{
	"match_arm":                   true,
	"last_match_arm":              true,
	"field_initializer":           true,
	"shorthand_field_initializer": true,
}

func buildTrivia(root sitter.Node, src []byte) *triviaIndex {
	idx := &triviaIndex{
		leads: make(map[nodeKey]*trivia),
		inner: make(map[nodeKey]*trivia),
	}

	if !root.IsNull() {
		idx.scan(root, src)
	}

	return idx
}

func (idx *triviaIndex) leadOf(n sitter.Node) *trivia {
	return idx.leads[keyOf(n)]
}

// docComment returns the joined outer doc comments preceding n, or nil.
func (idx *triviaIndex) docComment(n sitter.Node) *string {
	return joinDocs(idx.leadOf(n).docList())
}

func (idx *triviaIndex) innerOf(n sitter.Node) *trivia {
	return idx.inner[keyOf(n)]
}

func (idx *triviaIndex) attach(target map[nodeKey]*trivia, n sitter.Node, run *trivia) {
	key := keyOf(n)
	if existing, ok := target[key]; ok {
		existing.merge(run)

		return
	}

	target[key] = run
}

func (idx *triviaIndex) innerRun(n sitter.Node) *trivia {
	key := keyOf(n)

	run, ok := idx.inner[key]
	if !ok {
		run = &trivia{start: n.StartByte()}
		idx.inner[key] = run
	}

	return run
}

func (idx *triviaIndex) scan(n sitter.Node, src []byte) {
	var run *trivia

	sawNamed := false

	for i := range n.ChildCount() {
		child := n.Child(i)

		switch child.Type() {
		case "line_comment", "block_comment":
			payload, style := docPayload(child.Content(src))

			switch style {
			case docOuter:
				if run == nil {
					run = &trivia{start: child.StartByte()}
				}

				run.docs = append(run.docs, payload)
			case docInner:
				inner := idx.innerRun(n)
				inner.docs = append(inner.docs, payload)
			case docNone:
			}

			continue
		case "attribute_item":
			if run == nil {
				run = &trivia{start: child.StartByte()}
			}

			run.attrs = append(run.attrs, child)

			continue
		case "inner_attribute_item":
			inner := idx.innerRun(n)
			inner.attrs = append(inner.attrs, child)

			continue
		}

		if !child.IsNamed() {
			run = nil

			continue
		}

		if run != nil && !run.empty() {
			if !sawNamed && ownedByParent[kindOf(n)] {
				idx.attach(idx.leads, n, run)
			} else {
				idx.attach(idx.leads, child, run)
			}
		}

		run = nil
		sawNamed = true

		idx.scan(child, src)
	}
}

type docStyle int

const (
	docNone docStyle = iota
	docOuter
	docInner
)

// docPayload classifies a comment and strips its markers. Outer doc
// comments are `///` and `/** */`; `////` and `/***` are plain comments.
func docPayload(text string) (string, docStyle) {
	switch {
	case strings.HasPrefix(text, "////"):
		return "", docNone
	case strings.HasPrefix(text, "///"):
		return lineBody(text[3:]), docOuter
	case strings.HasPrefix(text, "//!"):
		return lineBody(text[3:]), docInner
	case strings.HasPrefix(text, "/***"), text == "/**/":
		return "", docNone
	case strings.HasPrefix(text, "/**") && strings.HasSuffix(text, "*/") && len(text) >= 5:
		return blockBody(text[3 : len(text)-2]), docOuter
	case strings.HasPrefix(text, "/*!") && strings.HasSuffix(text, "*/") && len(text) >= 5:
		return blockBody(text[3 : len(text)-2]), docInner
	default:
		return "", docNone
	}
}

func lineBody(body string) string {
	body = strings.TrimRight(body, "\r\n")

	return strings.TrimPrefix(body, " ")
}

func blockBody(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if i > 0 {
			line = strings.TrimPrefix(line, "*")
			line = strings.TrimPrefix(line, " ")
		}

		lines[i] = line
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// joinDocs joins doc payloads with newlines; an empty result is nil.
func joinDocs(docs []string) *string {
	joined := strings.Join(docs, "\n")
	if strings.TrimSpace(joined) == "" {
		return nil
	}

	return &joined
}
