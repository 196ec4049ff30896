// Package mapping converts tree-sitter Rust syntax trees into the Portable
// AST defined by package node.
//
// Conversion is a single recursive pass over an immutable tree. Constructs
// with no modeled variant become node.Problem in place and conversion
// continues with their siblings.
package mapping

import (
	"log/slog"
	"slices"
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
	"github.com/Sumatoshi-tech/past/pkg/safeconv"
)

// Converter maps nodes of one syntax tree. It is not safe for concurrent
// use; create one per tree.
type Converter struct {
	src     []byte
	base    int
	trivia  *triviaIndex
	logger  *slog.Logger
	lang    *sitter.Language
	parsers *sync.Pool
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger that receives diagnostics about unmodeled
// syntax. Diagnostics never change the converted tree.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLanguage enables re-parsing of macro token trees whose contents are
// Rust expressions, such as inline assembly operands.
func WithLanguage(lang *sitter.Language) Option {
	return func(c *Converter) {
		c.lang = lang
	}
}

// WithParserPool makes token tree re-parsing borrow parsers from pool. The
// pool must hold *sitter.Parser values set to the WithLanguage grammar.
func WithParserPool(pool *sync.Pool) Option {
	return func(c *Converter) {
		c.parsers = pool
	}
}

// NewConverter prepares a converter for the tree rooted at root, whose
// byte offsets index into src.
func NewConverter(root sitter.Node, src []byte, opts ...Option) *Converter {
	c := &Converter{
		src:    src,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.trivia = buildTrivia(root, src)

	return c
}

// sub returns a converter for a tree parsed from a synthetic source whose
// byte p corresponds to byte p+shift of this converter's source.
func (c *Converter) sub(root sitter.Node, src []byte, shift int) *Converter {
	return &Converter{
		src:     src,
		base:    c.base + shift,
		trivia:  buildTrivia(root, src),
		logger:  c.logger,
		lang:    c.lang,
		parsers: c.parsers,
	}
}

// borrowParser returns a parser for c.lang and the func that gives it back.
func (c *Converter) borrowParser() (*sitter.Parser, func()) {
	if c.parsers != nil {
		if parser, ok := c.parsers.Get().(*sitter.Parser); ok {
			return parser, func() { c.parsers.Put(parser) }
		}
	}

	parser := sitter.NewParser()
	parser.SetLanguage(c.lang)

	return parser, func() {}
}

// Envelope extraction.

func (c *Converter) span(start, end uint) node.Span {
	return node.Span{
		StartOffset: safeconv.MustIntToUint32(safeconv.MustUintToInt(start) + c.base),
		EndOffset:   safeconv.MustIntToUint32(safeconv.MustUintToInt(end) + c.base),
	}
}

func (c *Converter) slice(start, end uint) string {
	if end > uint(len(c.src)) || start > end {
		return ""
	}

	return string(c.src[start:end])
}

func (c *Converter) rangeEnvelope(start, end uint, doc *string) node.Envelope {
	return node.Envelope{
		Text:       c.slice(start, end),
		Span:       c.span(start, end),
		DocComment: doc,
	}
}

// envelope returns the envelope of n. Leading attributes and doc comments
// are part of the node, so the span starts at the first of them.
func (c *Converter) envelope(n sitter.Node) node.Envelope {
	return c.envelopeBetween(n, n)
}

// envelopeBetween covers first through last, with the leading trivia of first.
func (c *Converter) envelopeBetween(first, last sitter.Node) node.Envelope {
	start := first.StartByte()

	lead := c.trivia.leadOf(first)
	if lead != nil && lead.start < start {
		start = lead.start
	}

	return c.rangeEnvelope(start, last.EndByte(), c.trivia.docComment(first))
}

// ownerEnvelope is envelope extended with the inner doc comments found at
// the top of body, as for modules, traits, impls and function bodies.
func (c *Converter) ownerEnvelope(n, body sitter.Node) node.Envelope {
	env := c.envelope(n)
	if body.IsNull() {
		return env
	}

	inner := c.trivia.innerOf(body)
	if inner == nil || len(inner.docs) == 0 {
		return env
	}

	env.DocComment = joinDocs(slices.Concat(c.trivia.leadOf(n).docList(), inner.docs))

	return env
}

// Diagnostics.

func (c *Converter) problem(n sitter.Node, category string) *node.Problem {
	env := c.envelope(n)

	c.logger.Debug("unmodeled syntax",
		"category", category,
		"kind", kindOf(n),
		"start", env.Span.StartOffset,
		"end", env.Span.EndOffset,
	)

	return &node.Problem{Envelope: env}
}

func (c *Converter) problemRange(start, end uint, category, reason string) *node.Problem {
	env := c.rangeEnvelope(start, end, nil)

	c.logger.Debug("unmodeled syntax",
		"category", category,
		"reason", reason,
		"start", env.Span.StartOffset,
		"end", env.Span.EndOffset,
	)

	return &node.Problem{Envelope: env}
}

// Tree navigation.

func (c *Converter) text(n sitter.Node) string {
	return c.slice(n.StartByte(), n.EndByte())
}

// Navigation helpers accept the null node and treat it as childless.

func field(n sitter.Node, name string) sitter.Node {
	if n.IsNull() {
		return sitter.Node{}
	}

	return n.ChildByFieldName(name)
}

// kindOf is n.Type() for nodes that may be null.
func kindOf(n sitter.Node) string {
	if n.IsNull() {
		return ""
	}

	return n.Type()
}

func isTrivia(n sitter.Node) bool {
	switch kindOf(n) {
	case "line_comment", "block_comment", "attribute_item", "inner_attribute_item":
		return true
	default:
		return false
	}
}

// named returns the named, non-trivia children of n in source order.
func named(n sitter.Node) []sitter.Node {
	if n.IsNull() {
		return nil
	}

	count := n.NamedChildCount()
	out := make([]sitter.Node, 0, count)

	for idx := range count {
		child := n.NamedChild(idx)
		if child.IsNull() || isTrivia(child) {
			continue
		}

		out = append(out, child)
	}

	return out
}

// patternChildren is named plus the anonymous wildcard token `_`, which the
// grammar does not wrap in a named node.
func patternChildren(n sitter.Node) []sitter.Node {
	if n.IsNull() {
		return nil
	}

	count := n.ChildCount()
	out := make([]sitter.Node, 0, count)

	for idx := range count {
		child := n.Child(idx)
		if child.IsNull() || isTrivia(child) {
			continue
		}

		if child.IsNamed() || child.Type() == "_" {
			out = append(out, child)
		}
	}

	return out
}

func allChildren(n sitter.Node) []sitter.Node {
	if n.IsNull() {
		return nil
	}

	count := n.ChildCount()
	out := make([]sitter.Node, 0, count)

	for idx := range count {
		out = append(out, n.Child(idx))
	}

	return out
}

// childOfType returns the first direct child of the given type.
func childOfType(n sitter.Node, types ...string) sitter.Node {
	for _, child := range allChildren(n) {
		if slices.Contains(types, child.Type()) {
			return child
		}
	}

	return sitter.Node{}
}

func hasChild(n sitter.Node, types ...string) bool {
	return !childOfType(n, types...).IsNull()
}

// hasToken reports whether n has an anonymous direct child spelled tok.
func hasToken(n sitter.Node, tok string) bool {
	_, ok := tokenStart(n, tok)

	return ok
}

// tokenStart returns the start of the first anonymous child spelled tok.
func tokenStart(n sitter.Node, tok string) (uint, bool) {
	for _, child := range allChildren(n) {
		if !child.IsNamed() && child.Type() == tok {
			return child.StartByte(), true
		}
	}

	return 0, false
}

func sameNode(a, b sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && kindOf(a) == kindOf(b)
}
