package mapping

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

var stmtKinds = map[string]bool{
	"expression_statement": true,
	"let_declaration":      true,
}

// blockModifiers maps modified block node types to the modifier keyword.
var blockModifiers = map[string]string{
	"unsafe_block": "unsafe",
	"async_block":  "async",
	"gen_block":    "gen",
	"try_block":    "try",
	"const_block":  "const",
}

func (c *Converter) asStmt(n sitter.Node) (node.Stmt, bool) {
	switch kindOf(n) {
	case "let_declaration":
		return c.letStmt(n), true
	case "expression_statement":
		return c.exprStmt(n), true
	default:
		return c.asItem(n)
	}
}

func (c *Converter) letStmt(n sitter.Node) *node.LetStmt {
	out := &node.LetStmt{
		Envelope:    c.envelope(n),
		Attrs:       c.attrs(n),
		Ty:          c.optType(field(n, "type")),
		Initializer: c.optExpr(field(n, "value")),
		LetElse:     c.optBlock(field(n, "alternative")),
	}

	pat := field(n, "pattern")
	if pat.IsNull() {
		return out
	}

	out.Pat = c.Pat(pat)

	// `let mut x` keeps the specifier outside the pattern node.
	if mut := childOfType(n, "mutable_specifier"); !mut.IsNull() && mut.StartByte() < pat.StartByte() {
		if ident, ok := out.Pat.(*node.IdentPat); ok {
			ident.Mut = true
			ident.Envelope = c.rangeEnvelope(mut.StartByte(), pat.EndByte(), nil)
		}
	}

	return out
}

func (c *Converter) exprStmt(n sitter.Node) *node.ExprStmt {
	out := &node.ExprStmt{
		Envelope:  c.envelope(n),
		Attrs:     c.attrs(n),
		Semicolon: hasToken(n, ";"),
	}

	if inner := firstNamed(n); !inner.IsNull() {
		out.Expr = c.Expr(inner)
	}

	return out
}

func (c *Converter) optBlock(n sitter.Node) *node.BlockExpr {
	if n.IsNull() {
		return nil
	}

	return c.block(n)
}

// block maps a plain, labeled or modified block expression.
func (c *Converter) block(n sitter.Node) *node.BlockExpr {
	out := &node.BlockExpr{Envelope: c.envelope(n)}

	body := n
	if modifier, ok := blockModifiers[kindOf(n)]; ok {
		out.Modifier = modifier
		if kindOf(n) == "async_block" && hasToken(n, "move") {
			out.Modifier = "async move"
		}

		if inner := field(n, "body"); !inner.IsNull() {
			body = inner
		} else {
			body = childOfType(n, "block")
		}
	}

	out.Attrs = c.attrs(n, body)
	out.Label = c.label(childOfType(body, "label"))
	out.Stmts, out.TailExpr = c.statements(body)

	return out
}

// statements maps the contents of a block. The last expression that is
// not followed by a semicolon becomes the tail.
func (c *Converter) statements(body sitter.Node) ([]node.Stmt, node.Expr) {
	kids := named(body)

	var (
		stmts []node.Stmt
		tail  node.Expr
	)

	for idx := 0; idx < len(kids); idx++ {
		child := kids[idx]

		switch child.Type() {
		case "label", "empty_statement":
			continue
		case "macro_invocation":
			// `name!(..);` arrives as the invocation followed by an
			// empty statement holding the semicolon.
			if idx+1 < len(kids) && kids[idx+1].Type() == "empty_statement" {
				semi := kids[idx+1]
				stmts = append(stmts, &node.ExprStmt{
					Envelope:  c.envelopeBetween(child, semi),
					Attrs:     c.attrs(child),
					Expr:      c.exprMacro(child),
					Semicolon: true,
				})
				idx++

				continue
			}

			if idx == len(kids)-1 {
				tail = c.exprMacro(child)

				continue
			}

			stmts = append(stmts, &node.ExprStmt{
				Envelope: c.envelope(child),
				Attrs:    c.attrs(child),
				Expr:     c.exprMacro(child),
			})

			continue
		}

		if stmt, ok := c.asStmt(child); ok {
			stmts = append(stmts, stmt)

			continue
		}

		if idx == len(kids)-1 {
			tail = c.Expr(child)

			continue
		}

		stmts = append(stmts, c.problem(child, "stmt"))
	}

	if tail == nil && len(stmts) > 0 {
		if last, ok := stmts[len(stmts)-1].(*node.ExprStmt); ok && !last.Semicolon && len(last.Attrs) == 0 {
			stmts = stmts[:len(stmts)-1]
			tail = last.Expr
		}
	}

	return stmts, tail
}

// exprMacro maps a macro invocation in expression position.
func (c *Converter) exprMacro(n sitter.Node) node.Expr {
	if asmMacros[c.macroName(n)] {
		asm := c.asm(n)
		asm.Attrs = nil

		return asm
	}

	call := c.macroCall(n)
	call.Attrs = nil

	return &node.MacroExpr{Envelope: call.Envelope, MacroCall: call}
}
