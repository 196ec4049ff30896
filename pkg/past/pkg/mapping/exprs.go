package mapping

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

var exprKinds = map[string]bool{
	"array_expression":          true,
	"assignment_expression":     true,
	"async_block":               true,
	"await_expression":          true,
	"binary_expression":         true,
	"block":                     true,
	"boolean_literal":           true,
	"break_expression":          true,
	"call_expression":           true,
	"char_literal":              true,
	"closure_expression":        true,
	"compound_assignment_expr":  true,
	"const_block":               true,
	"continue_expression":       true,
	"crate":                     true,
	"field_expression":          true,
	"float_literal":             true,
	"for_expression":            true,
	"gen_block":                 true,
	"generic_function":          true,
	"identifier":                true,
	"if_expression":             true,
	"index_expression":          true,
	"integer_literal":           true,
	"let_chain":                 true,
	"let_condition":             true,
	"loop_expression":           true,
	"macro_invocation":          true,
	"match_expression":          true,
	"metavariable":              true,
	"parenthesized_expression":  true,
	"range_expression":          true,
	"raw_string_literal":        true,
	"reference_expression":      true,
	"return_expression":         true,
	"scoped_identifier":         true,
	"self":                      true,
	"string_literal":            true,
	"struct_expression":         true,
	"super":                     true,
	"try_block":                 true,
	"try_expression":            true,
	"tuple_expression":          true,
	"type_cast_expression":      true,
	"unary_expression":          true,
	"unit_expression":           true,
	"unsafe_block":              true,
	"while_expression":          true,
	"yield_expression":          true,
}

func (c *Converter) asExpr(n sitter.Node) (node.Expr, bool) {
	switch kindOf(n) {
	case "string_literal", "raw_string_literal", "char_literal", "boolean_literal",
		"integer_literal", "float_literal":
		return c.literal(n), true
	case "identifier", "self", "super", "crate", "metavariable", "scoped_identifier":
		return &node.PathExpr{Envelope: c.envelope(n), Path: c.path(n)}, true
	case "generic_function":
		env := c.envelope(n)

		if callee := field(n, "function"); kindOf(callee) == "field_expression" {
			// A turbofish method reference without a call keeps the field form.
			return &node.FieldExpr{
				Envelope: env,
				Expr:     c.optExpr(field(callee, "value")),
				NameRef:  c.nameRef(field(callee, "field")),
			}, true
		}

		return &node.PathExpr{Envelope: env, Path: c.path(n)}, true
	case "block", "unsafe_block", "async_block", "gen_block", "try_block", "const_block":
		return c.block(n), true
	case "unary_expression":
		return &node.PrefixExpr{Envelope: c.envelope(n), Op: firstToken(n), Expr: c.optExpr(firstNamed(n))}, true
	case "reference_expression":
		return &node.RefExpr{
			Envelope: c.envelope(n),
			Raw:      hasToken(n, "raw"),
			Mut:      hasChild(n, "mutable_specifier"),
			Const:    hasToken(n, "const"),
			Expr:     c.optExpr(field(n, "value")),
		}, true
	case "try_expression":
		return &node.TryExpr{Envelope: c.envelope(n), Expr: c.optExpr(firstNamed(n))}, true
	case "await_expression":
		return &node.AwaitExpr{Envelope: c.envelope(n), Expr: c.optExpr(firstNamed(n))}, true
	case "binary_expression", "assignment_expression", "compound_assignment_expr":
		return c.binary(n), true
	case "let_chain", "let_condition":
		return c.condition(n), true
	case "type_cast_expression":
		return &node.CastExpr{
			Envelope: c.envelope(n),
			Expr:     c.optExpr(field(n, "value")),
			Ty:       c.optType(field(n, "type")),
		}, true
	case "call_expression":
		return c.call(n), true
	case "return_expression":
		return &node.ReturnExpr{Envelope: c.envelope(n), Expr: c.optExpr(firstNamed(n))}, true
	case "yield_expression":
		return &node.YieldExpr{Envelope: c.envelope(n), Expr: c.optExpr(firstNamed(n))}, true
	case "field_expression":
		return &node.FieldExpr{
			Envelope: c.envelope(n),
			Expr:     c.optExpr(field(n, "value")),
			NameRef:  c.nameRef(field(n, "field")),
		}, true
	case "array_expression":
		return &node.ArrayExpr{Envelope: c.envelope(n), Exprs: c.exprList(n), Repeat: hasToken(n, ";")}, true
	case "tuple_expression":
		return &node.TupleExpr{Envelope: c.envelope(n), Fields: c.exprList(n)}, true
	case "unit_expression":
		return &node.TupleExpr{Envelope: c.envelope(n)}, true
	case "parenthesized_expression":
		return &node.ParenExpr{Envelope: c.envelope(n), Expr: c.optExpr(firstNamed(n))}, true
	case "break_expression":
		out := &node.BreakExpr{Envelope: c.envelope(n)}

		for _, child := range named(n) {
			if child.Type() == "label" || child.Type() == "lifetime" {
				out.Lifetime = c.lifetime(child)
			} else {
				out.Expr = c.Expr(child)
			}
		}

		return out, true
	case "continue_expression":
		out := &node.ContinueExpr{Envelope: c.envelope(n)}
		if lbl := childOfType(n, "label", "lifetime"); !lbl.IsNull() {
			out.Lifetime = c.lifetime(lbl)
		}

		return out, true
	case "index_expression":
		kids := named(n)
		out := &node.IndexExpr{Envelope: c.envelope(n)}

		if len(kids) > 0 {
			out.Base = c.Expr(kids[0])
		}

		if len(kids) > 1 {
			out.Index = c.Expr(kids[1])
		}

		return out, true
	case "range_expression":
		start, op, end := c.rangeParts(n)

		return &node.RangeExpr{Envelope: c.envelope(n), Start: c.optExpr(start), Op: op, End: c.optExpr(end)}, true
	case "closure_expression":
		return c.closure(n), true
	case "struct_expression":
		return c.record(n), true
	case "if_expression":
		return c.ifExpr(n), true
	case "match_expression":
		return c.match(n), true
	case "while_expression":
		return &node.WhileExpr{
			Envelope:  c.envelope(n),
			Label:     c.label(childOfType(n, "label")),
			Condition: c.condition(field(n, "condition")),
			Body:      c.optBlock(field(n, "body")),
		}, true
	case "loop_expression":
		return &node.LoopExpr{
			Envelope: c.envelope(n),
			Label:    c.label(childOfType(n, "label")),
			Body:     c.optBlock(field(n, "body")),
		}, true
	case "for_expression":
		return &node.ForExpr{
			Envelope: c.envelope(n),
			Label:    c.label(childOfType(n, "label")),
			Pat:      c.optPat(field(n, "pattern")),
			Iterable: c.optExpr(field(n, "value")),
			Body:     c.optBlock(field(n, "body")),
		}, true
	case "macro_invocation":
		if asmMacros[c.macroName(n)] {
			return c.asm(n), true
		}

		return &node.MacroExpr{Envelope: c.envelope(n), MacroCall: c.macroCall(n)}, true
	default:
		return nil, false
	}
}

// Literals.

func (c *Converter) literal(n sitter.Node) *node.Literal {
	return &node.Literal{Envelope: c.envelope(n), LitKind: c.literalKind(n)}
}

func (c *Converter) literalKind(n sitter.Node) node.LiteralKind {
	text := c.text(n)

	switch kindOf(n) {
	case "integer_literal":
		return node.LiteralInt
	case "float_literal":
		return node.LiteralFloat
	case "char_literal":
		if strings.HasPrefix(text, "b") {
			return node.LiteralByte
		}

		return node.LiteralChar
	case "string_literal", "raw_string_literal":
		switch {
		case strings.HasPrefix(text, "b"):
			return node.LiteralByteString
		case strings.HasPrefix(text, "c"):
			return node.LiteralCString
		default:
			return node.LiteralString
		}
	case "negative_literal":
		if inner := firstNamed(n); !inner.IsNull() {
			return c.literalKind(inner)
		}

		return node.LiteralUnknown
	default:
		return node.LiteralUnknown
	}
}

// constArgExpr maps the expression of a const generic argument.
func (c *Converter) constArgExpr(n sitter.Node) node.Expr {
	if kindOf(n) == "block" {
		return c.block(n)
	}

	return c.literal(n)
}

// Operators.

// firstToken returns the spelling of the first anonymous child.
func firstToken(n sitter.Node) string {
	for _, child := range allChildren(n) {
		if !child.IsNamed() {
			return child.Type()
		}
	}

	return ""
}

// binary maps binary, assignment and compound assignment expressions. The
// operator is the source text between the two operands.
func (c *Converter) binary(n sitter.Node) *node.BinExpr {
	left, right := field(n, "left"), field(n, "right")

	out := &node.BinExpr{Envelope: c.envelope(n)}

	if !left.IsNull() {
		out.Operands = append(out.Operands, c.Expr(left))
	}

	if !right.IsNull() {
		out.Operands = append(out.Operands, c.Expr(right))
	}

	var op strings.Builder

	for _, child := range allChildren(n) {
		if child.IsNamed() || isTrivia(child) {
			continue
		}

		if !left.IsNull() && child.StartByte() < left.EndByte() {
			continue
		}

		if !right.IsNull() && child.StartByte() >= right.StartByte() {
			continue
		}

		op.WriteString(child.Type())
	}

	out.Op = op.String()

	return out
}

// condition maps the condition of if and while, where let chains and let
// conditions are allowed.
func (c *Converter) condition(n sitter.Node) node.Expr {
	switch kindOf(n) {
	case "":
		return nil
	case "let_condition":
		return &node.LetExpr{
			Envelope: c.envelope(n),
			Pat:      c.optPat(field(n, "pattern")),
			Expr:     c.optExpr(field(n, "value")),
		}
	case "let_chain":
		out := &node.BinExpr{Envelope: c.envelope(n), Op: "&&"}
		for _, child := range named(n) {
			out.Operands = append(out.Operands, c.condition(child))
		}

		return out
	default:
		return c.Expr(n)
	}
}

func (c *Converter) rangeParts(n sitter.Node) (start sitter.Node, op string, end sitter.Node) {
	var opStart uint

	for _, child := range allChildren(n) {
		if child.IsNamed() {
			continue
		}

		switch child.Type() {
		case "..", "...", "..=":
			op, opStart = child.Type(), child.StartByte()
		}
	}

	for _, child := range named(n) {
		if child.EndByte() <= opStart {
			start = child
		} else {
			end = child
		}
	}

	return start, op, end
}

// Calls.

func (c *Converter) exprList(n sitter.Node) []node.Expr {
	var out []node.Expr

	for _, child := range named(n) {
		out = append(out, c.Expr(child))
	}

	return out
}

func (c *Converter) call(n sitter.Node) node.Expr {
	callee := field(n, "function")
	args := c.exprList(field(n, "arguments"))

	var generics sitter.Node

	method := callee
	if kindOf(callee) == "generic_function" {
		method = field(callee, "function")
		generics = field(callee, "type_arguments")
	}

	if kindOf(method) == "field_expression" {
		return &node.MethodCallExpr{
			Envelope:    c.envelope(n),
			Receiver:    c.optExpr(field(method, "value")),
			NameRef:     c.nameRef(field(method, "field")),
			GenericArgs: c.genericArgList(generics),
			Args:        args,
		}
	}

	return &node.CallExpr{Envelope: c.envelope(n), Callee: c.optExpr(callee), Args: args}
}

func (c *Converter) closure(n sitter.Node) *node.ClosureExpr {
	out := &node.ClosureExpr{
		Envelope: c.envelope(n),
		Static:   hasToken(n, "static"),
		Async:    hasToken(n, "async"),
		Move:     hasToken(n, "move"),
		RetType:  c.retType(n),
	}

	if params := field(n, "parameters"); !params.IsNull() {
		out.ParamList = c.closureParams(params)
	}

	if body := field(n, "body"); !body.IsNull() && body.IsNamed() {
		out.Body = c.Expr(body)
	}

	return out
}

// Records.

func (c *Converter) record(n sitter.Node) *node.RecordExpr {
	out := &node.RecordExpr{Envelope: c.envelope(n)}

	if name := field(n, "name"); !name.IsNull() {
		out.Path = c.path(name)
	}

	body := field(n, "body")
	if body.IsNull() {
		return out
	}

	list := &node.RecordExprFieldList{Envelope: c.envelope(body)}

	for _, child := range named(body) {
		switch child.Type() {
		case "field_initializer":
			list.Fields = append(list.Fields, &node.RecordExprField{
				Envelope: c.envelope(child),
				NameRef:  c.nameRef(field(child, "field")),
				Expr:     c.optExpr(field(child, "value")),
			})
		case "shorthand_field_initializer":
			ident := firstNamed(child)
			if ident.IsNull() {
				ident = child
			}

			list.Fields = append(list.Fields, &node.RecordExprField{
				Envelope: c.envelope(child),
				Expr:     &node.PathExpr{Envelope: c.rangeEnvelope(ident.StartByte(), ident.EndByte(), nil), Path: c.path(ident)},
			})
		case "base_field_initializer":
			list.Spread = c.optExpr(firstNamed(child))
		default:
			list.Problems = append(list.Problems, c.problem(child, "record_expr_field_list"))
		}
	}

	out.FieldList = list

	return out
}

// Control flow.

func (c *Converter) ifExpr(n sitter.Node) *node.IfExpr {
	out := &node.IfExpr{
		Envelope:  c.envelope(n),
		Condition: c.condition(field(n, "condition")),
		Then:      c.optBlock(field(n, "consequence")),
	}

	alt := field(n, "alternative")
	if alt.IsNull() {
		return out
	}

	if branch := firstNamed(alt); !branch.IsNull() {
		out.Else = c.Expr(branch)
	}

	return out
}

func (c *Converter) match(n sitter.Node) *node.MatchExpr {
	out := &node.MatchExpr{
		Envelope: c.envelope(n),
		Expr:     c.optExpr(field(n, "value")),
	}

	body := field(n, "body")
	if body.IsNull() {
		return out
	}

	list := &node.MatchArmList{Envelope: c.envelope(body)}

	for _, child := range named(body) {
		if child.Type() != "match_arm" && child.Type() != "last_match_arm" {
			list.Problems = append(list.Problems, c.problem(child, "match_arm_list"))

			continue
		}

		list.Arms = append(list.Arms, c.matchArm(child))
	}

	out.MatchArmList = list

	return out
}

func (c *Converter) matchArm(n sitter.Node) *node.MatchArm {
	arm := &node.MatchArm{
		Envelope: c.envelope(n),
		Attrs:    c.attrs(n),
		Expr:     c.optExpr(field(n, "value")),
	}

	mp := field(n, "pattern")
	if mp.IsNull() {
		return arm
	}

	cond := field(mp, "condition")

	if kids := patternChildren(mp); len(kids) > 0 && !sameNode(kids[0], cond) {
		arm.Pat = c.Pat(kids[0])
	}

	if !cond.IsNull() {
		start := cond.StartByte()
		if at, ok := tokenStart(mp, "if"); ok {
			start = at
		}

		arm.Guard = &node.MatchGuard{
			Envelope:  c.rangeEnvelope(start, cond.EndByte(), nil),
			Condition: c.condition(cond),
		}
	}

	return arm
}

// Names and labels.

func (c *Converter) name(n sitter.Node) *node.Name {
	if n.IsNull() {
		return nil
	}

	return &node.Name{Envelope: c.envelope(n)}
}

func (c *Converter) nameRef(n sitter.Node) *node.NameRef {
	if n.IsNull() {
		return nil
	}

	return &node.NameRef{Envelope: c.envelope(n)}
}

func (c *Converter) lifetime(n sitter.Node) *node.Lifetime {
	if n.IsNull() {
		return nil
	}

	return &node.Lifetime{Envelope: c.envelope(n)}
}

func (c *Converter) label(n sitter.Node) *node.Label {
	if n.IsNull() {
		return nil
	}

	return &node.Label{Envelope: c.envelope(n), Lifetime: c.lifetime(n)}
}
