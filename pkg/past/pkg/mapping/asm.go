package mapping

import (
	"context"
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// Operand expressions inside asm! token trees are re-parsed inside this
// wrapper so the grammar sees them in expression position.
const (
	operandPrefix = "fn __asm_operand() {\n"
	operandSuffix = "\n}"
)

var asmDirections = map[string]bool{
	"in":        true,
	"out":       true,
	"lateout":   true,
	"inout":     true,
	"inlateout": true,
}

type byteRange struct {
	start, end uint
}

// asm maps an inline or global assembly invocation. Leading template
// strings are kept apart from the operand and option pieces.
func (c *Converter) asm(n sitter.Node) *node.AsmExpr {
	out := &node.AsmExpr{
		Envelope: c.envelope(n),
		Attrs:    c.attrs(n),
		Macro:    c.macroName(n),
	}

	tt := childOfType(n, "token_tree")
	if tt.IsNull() || tt.EndByte()-tt.StartByte() < 2 {
		return out
	}

	templating := true

	for _, r := range splitTopLevel(c.src, tt.StartByte()+1, tt.EndByte()-1) {
		text := c.slice(r.start, r.end)

		if templating && !isAsmPiece(text) {
			if isStringToken(text) {
				out.Template = append(out.Template, &node.Literal{
					Envelope: c.rangeEnvelope(r.start, r.end, nil),
					LitKind:  stringKind(text),
				})
			} else {
				out.Template = append(out.Template, c.reparseExpr(r))
			}

			continue
		}

		templating = false

		out.Pieces = append(out.Pieces, c.asmPiece(r))
	}

	return out
}

func (c *Converter) asmPiece(r byteRange) node.AsmPiece {
	text := c.slice(r.start, r.end)
	word := leadingWord(text)

	switch {
	case word == "options" && isCall(text, word):
		opts := &node.AsmOptions{Envelope: c.rangeEnvelope(r.start, r.end, nil)}
		for _, arg := range c.callArgs(r, word) {
			opts.Options = append(opts.Options, c.slice(arg.start, arg.end))
		}

		return opts
	case word == "clobber_abi" && isCall(text, word):
		clobber := &node.AsmClobberAbi{Envelope: c.rangeEnvelope(r.start, r.end, nil)}
		for _, arg := range c.callArgs(r, word) {
			clobber.Abis = append(clobber.Abis, &node.Literal{
				Envelope: c.rangeEnvelope(arg.start, arg.end, nil),
				LitKind:  stringKind(c.slice(arg.start, arg.end)),
			})
		}

		return clobber
	}

	if eq, ok := namedOperandSplit(text, word); ok {
		nameEnd := r.start + uint(len(word))
		rest := trimRange(c.src, byteRange{start: r.start + uint(eq) + 1, end: r.end})

		return &node.AsmOperandNamed{
			Envelope: c.rangeEnvelope(r.start, r.end, nil),
			Name:     &node.Name{Envelope: c.rangeEnvelope(r.start, nameEnd, nil)},
			Operand:  c.asmOperand(rest),
		}
	}

	return c.asmOperand(r)
}

func (c *Converter) asmOperand(r byteRange) node.AsmOperand {
	text := c.slice(r.start, r.end)
	word := leadingWord(text)
	env := c.rangeEnvelope(r.start, r.end, nil)
	after := trimRange(c.src, byteRange{start: r.start + uint(len(word)), end: r.end})

	switch {
	case asmDirections[word] && isCall(text, word):
		return c.regOperand(r, word)
	case word == "const" && after.end > after.start:
		return &node.AsmConst{Envelope: env, Expr: c.reparseExpr(after)}
	case word == "sym" && after.end > after.start:
		path, ok := c.reparseExpr(after).(*node.PathExpr)
		if !ok {
			return c.problemRange(r.start, r.end, "asm_operand", "sym operand is not a path")
		}

		return &node.AsmSym{Envelope: env, Path: path.Path}
	case word == "label" && after.end > after.start:
		block, ok := c.reparseExpr(after).(*node.BlockExpr)
		if !ok {
			return c.problemRange(r.start, r.end, "asm_operand", "label operand is not a block")
		}

		return &node.AsmLabel{Envelope: env, Block: block}
	default:
		return c.problemRange(r.start, r.end, "asm_operand", "unrecognized operand")
	}
}

// regOperand maps `dir(reg) expr` and `dir(reg) in_expr => out_expr`.
func (c *Converter) regOperand(r byteRange, dir string) *node.AsmRegOperand {
	out := &node.AsmRegOperand{Envelope: c.rangeEnvelope(r.start, r.end, nil), Dir: dir}

	args := c.callArgs(r, dir)
	if len(args) > 0 {
		out.Reg = c.slice(args[0].start, args[len(args)-1].end)
	}

	closing := closingParen(c.src, r)
	if closing >= r.end {
		return out
	}

	rest := trimRange(c.src, byteRange{start: closing + 1, end: r.end})

	if arrow, ok := topLevelIndex(c.src, rest, "=>"); ok {
		out.Expr = c.asmValue(trimRange(c.src, byteRange{start: rest.start, end: arrow}))
		out.OutExpr = c.asmValue(trimRange(c.src, byteRange{start: arrow + 2, end: rest.end}))

		return out
	}

	out.Expr = c.asmValue(rest)

	return out
}

// asmValue maps an operand expression, where `_` discards an output.
func (c *Converter) asmValue(r byteRange) node.Expr {
	if r.end <= r.start {
		return nil
	}

	if c.slice(r.start, r.end) == "_" {
		return &node.UnderscoreExpr{Envelope: c.rangeEnvelope(r.start, r.end, nil)}
	}

	return c.reparseExpr(r)
}

// reparseExpr parses the source range r on its own as an expression.
func (c *Converter) reparseExpr(r byteRange) node.Expr {
	if c.lang == nil {
		return c.problemRange(r.start, r.end, "expr", "no grammar for token tree")
	}

	snippet := []byte(operandPrefix + c.slice(r.start, r.end) + operandSuffix)

	parser, release := c.borrowParser()
	defer release()

	tree, err := parser.ParseString(context.Background(), nil, snippet)
	if err != nil {
		return c.problemRange(r.start, r.end, "expr", err.Error())
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return c.problemRange(r.start, r.end, "expr", "empty parse")
	}

	kids := named(field(firstNamed(root), "body"))
	if len(kids) != 1 {
		return c.problemRange(r.start, r.end, "expr", "token tree is not one expression")
	}

	exprNode := kids[0]
	if exprNode.Type() == "expression_statement" {
		exprNode = firstNamed(exprNode)
	}

	sub := c.sub(root, snippet, int(r.start)-len(operandPrefix))

	return sub.Expr(exprNode)
}

// callArgs returns the comma separated arguments of `word(...)`.
func (c *Converter) callArgs(r byteRange, word string) []byteRange {
	open := r.start + uint(strings.IndexByte(c.slice(r.start, r.end), '('))
	closing := closingParen(c.src, r)

	if closing <= open || closing > r.end || !strings.HasPrefix(c.slice(r.start, r.end), word) {
		return nil
	}

	return splitTopLevel(c.src, open+1, closing)
}

// Token tree scanning.

// splitTopLevel splits src[start:end] on commas outside brackets and
// string literals. Pieces are trimmed and empty pieces dropped.
func splitTopLevel(src []byte, start, end uint) []byteRange {
	var out []byteRange

	depth := 0
	pieceStart := start

	for i := start; i < end; i++ {
		switch src[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '"':
			i = skipString(src, i, end)
		case 'r':
			if j, ok := skipRawString(src, i, end); ok {
				i = j
			}
		case ',':
			if depth == 0 {
				if piece := trimRange(src, byteRange{start: pieceStart, end: i}); piece.end > piece.start {
					out = append(out, piece)
				}

				pieceStart = i + 1
			}
		}
	}

	if piece := trimRange(src, byteRange{start: pieceStart, end: end}); piece.end > piece.start {
		out = append(out, piece)
	}

	return out
}

// skipString returns the index of the closing quote of the string opened
// at src[i].
func skipString(src []byte, i, end uint) uint {
	for j := i + 1; j < end; j++ {
		switch src[j] {
		case '\\':
			j++
		case '"':
			return j
		}
	}

	return end - 1
}

// skipRawString recognizes r"..." and r#"..."# starting at src[i].
func skipRawString(src []byte, i, end uint) (uint, bool) {
	if i > 0 && isWordByte(src[i-1]) {
		return 0, false
	}

	j := i + 1
	hashes := 0

	for j < end && src[j] == '#' {
		hashes++
		j++
	}

	if j >= end || src[j] != '"' {
		return 0, false
	}

	closing := "\"" + strings.Repeat("#", hashes)

	idx := strings.Index(string(src[j+1:end]), closing)
	if idx < 0 {
		return end - 1, true
	}

	return j + uint(idx+len(closing)), true
}

// closingParen returns the index of the parenthesis closing the first one
// opened in r, or r.end when there is none.
func closingParen(src []byte, r byteRange) uint {
	depth := 0

	for i := r.start; i < r.end; i++ {
		switch src[i] {
		case '"':
			i = skipString(src, i, r.end)
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return r.end
}

// topLevelIndex finds tok in r outside brackets and strings.
func topLevelIndex(src []byte, r byteRange, tok string) (uint, bool) {
	depth := 0

	for i := r.start; i < r.end; i++ {
		switch src[i] {
		case '"':
			i = skipString(src, i, r.end)

			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}

		if depth == 0 && strings.HasPrefix(string(src[i:r.end]), tok) {
			return i, true
		}
	}

	return 0, false
}

func trimRange(src []byte, r byteRange) byteRange {
	for r.start < r.end && isSpace(src[r.start]) {
		r.start++
	}

	for r.end > r.start && isSpace(src[r.end-1]) {
		r.end--
	}

	return r
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func leadingWord(text string) string {
	end := 0
	for end < len(text) && isWordByte(text[end]) {
		end++
	}

	return text[:end]
}

// isCall reports whether text is `word(...)` or `word (...)`.
func isCall(text, word string) bool {
	return word != "" && strings.HasPrefix(strings.TrimLeft(text[len(word):], " \t\n"), "(")
}

// namedOperandSplit finds the `=` of `name = operand`, excluding `==` and
// `=>`.
func namedOperandSplit(text, word string) (int, bool) {
	if word == "" {
		return 0, false
	}

	rest := strings.TrimLeft(text[len(word):], " \t\n")
	if !strings.HasPrefix(rest, "=") || strings.HasPrefix(rest, "==") || strings.HasPrefix(rest, "=>") {
		return 0, false
	}

	return len(text) - len(rest), true
}

// isAsmPiece reports whether a top-level piece is an operand or option
// rather than part of the template.
func isAsmPiece(text string) bool {
	word := leadingWord(text)

	switch {
	case word == "options" || word == "clobber_abi" || asmDirections[word]:
		return isCall(text, word)
	case word == "const" || word == "sym" || word == "label":
		return len(text) > len(word) && isSpace(text[len(word)])
	}

	_, named := namedOperandSplit(text, word)

	return named
}

func isStringToken(text string) bool {
	return strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "r\"") || strings.HasPrefix(text, "r#")
}

func stringKind(text string) node.LiteralKind {
	switch {
	case strings.HasPrefix(text, "b"):
		return node.LiteralByteString
	case strings.HasPrefix(text, "c"):
		return node.LiteralCString
	case strings.HasPrefix(text, "\""), strings.HasPrefix(text, "r"):
		return node.LiteralString
	default:
		return node.LiteralUnknown
	}
}
