package mapping

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// Classify maps an arbitrary syntax node to exactly one portable node. A
// node no category recognizes becomes a Problem.
//
// Categories are tried in a fixed order and the first match wins, so a macro
// invocation is an Item, an identifier is a PathExpr and a const block is a
// BlockExpr.
func (c *Converter) Classify(n sitter.Node) node.Node {
	if abi, ok := c.asAbi(n); ok {
		return abi
	}

	if item, ok := c.asItem(n); ok {
		return item
	}

	if expr, ok := c.asExpr(n); ok {
		return expr
	}

	if stmt, ok := c.asStmt(n); ok {
		return stmt
	}

	if pat, ok := c.asPat(n); ok {
		return pat
	}

	if typ, ok := c.asType(n); ok {
		return typ
	}

	return c.problem(n, "any")
}

// Category returns the name of the first category that recognizes the
// node type, or the empty string.
func Category(nodeType string) string {
	switch {
	case nodeType == "extern_modifier":
		return "abi"
	case itemKinds[nodeType]:
		return "item"
	case exprKinds[nodeType]:
		return "expr"
	case stmtKinds[nodeType]:
		return "stmt"
	case patKinds[nodeType]:
		return "pat"
	case typeKinds[nodeType]:
		return "type"
	default:
		return ""
	}
}

// Category classifiers. Each is total: unknown input becomes a Problem.

// Item maps n to an item.
func (c *Converter) Item(n sitter.Node) node.Item {
	if out, ok := c.asItem(n); ok {
		return out
	}

	return c.problem(n, "item")
}

// Expr maps n to an expression.
func (c *Converter) Expr(n sitter.Node) node.Expr {
	if out, ok := c.asExpr(n); ok {
		return out
	}

	return c.problem(n, "expr")
}

// Stmt maps n to a statement.
func (c *Converter) Stmt(n sitter.Node) node.Stmt {
	if out, ok := c.asStmt(n); ok {
		return out
	}

	return c.problem(n, "stmt")
}

// Pat maps n to a pattern.
func (c *Converter) Pat(n sitter.Node) node.Pat {
	if out, ok := c.asPat(n); ok {
		return out
	}

	return c.problem(n, "pat")
}

// Type maps n to a type reference.
func (c *Converter) Type(n sitter.Node) node.Type {
	if out, ok := c.asType(n); ok {
		return out
	}

	return c.problem(n, "type")
}

// GenericArg maps one child of a type argument list.
func (c *Converter) GenericArg(n sitter.Node) node.GenericArg {
	switch kindOf(n) {
	case "lifetime":
		return &node.LifetimeArg{Envelope: c.envelope(n), Lifetime: c.lifetime(n)}
	case "type_binding":
		return c.assocTypeArg(n)
	case "block", "integer_literal", "float_literal", "string_literal", "raw_string_literal",
		"char_literal", "boolean_literal", "negative_literal":
		return &node.ConstArg{Envelope: c.envelope(n), Expr: c.constArgExpr(n)}
	}

	if typeKinds[kindOf(n)] {
		return &node.TypeArg{Envelope: c.envelope(n), Ty: c.Type(n)}
	}

	return c.problem(n, "generic_arg")
}

// GenericParam maps one child of a type parameter list.
func (c *Converter) GenericParam(n sitter.Node) node.GenericParam {
	switch kindOf(n) {
	case "lifetime":
		return &node.LifetimeParam{Envelope: c.envelope(n), Lifetime: c.lifetime(n)}
	case "lifetime_parameter":
		return &node.LifetimeParam{
			Envelope: c.envelope(n),
			Lifetime: c.lifetime(field(n, "name")),
			Bounds:   c.typeBoundList(field(n, "bounds")),
		}
	case "type_identifier", "metavariable":
		return &node.TypeParam{Envelope: c.envelope(n), Name: c.name(n)}
	case "type_parameter":
		return &node.TypeParam{
			Envelope: c.envelope(n),
			Name:     c.name(field(n, "name")),
			Bounds:   c.typeBoundList(field(n, "bounds")),
			Default:  c.optType(field(n, "default_type")),
		}
	case "constrained_type_parameter":
		return c.constrainedTypeParam(n)
	case "optional_type_parameter":
		param := &node.TypeParam{Envelope: c.envelope(n), Default: c.optType(field(n, "default_type"))}

		inner := field(n, "name")
		if kindOf(inner) == "constrained_type_parameter" {
			param.Name = c.name(field(inner, "left"))
			param.Bounds = c.typeBoundList(field(inner, "bounds"))
		} else {
			param.Name = c.name(inner)
		}

		return param
	case "const_parameter":
		return &node.ConstParam{
			Envelope: c.envelope(n),
			Name:     c.name(field(n, "name")),
			Ty:       c.optType(field(n, "type")),
			Default:  c.optExpr(field(n, "value")),
		}
	default:
		return c.problem(n, "generic_param")
	}
}

// FieldList maps the body of a struct, union or variant.
func (c *Converter) FieldList(n sitter.Node) node.FieldList {
	switch kindOf(n) {
	case "field_declaration_list":
		return c.recordFieldList(n)
	case "ordered_field_declaration_list":
		return c.tupleFieldList(n)
	default:
		return c.problem(n, "field_list")
	}
}

// AssocItem maps one member of a trait or impl body.
func (c *Converter) AssocItem(n sitter.Node) node.AssocItem {
	switch kindOf(n) {
	case "function_item", "function_signature_item":
		return c.function(n)
	case "const_item":
		return c.constItem(n)
	case "type_item", "associated_type":
		return c.typeAlias(n)
	case "macro_invocation":
		return c.macroCall(n)
	default:
		return c.problem(n, "assoc_item")
	}
}

// ExternItem maps one member of an extern block.
func (c *Converter) ExternItem(n sitter.Node) node.ExternItem {
	switch kindOf(n) {
	case "function_item", "function_signature_item":
		return c.function(n)
	case "static_item":
		return c.staticItem(n)
	case "type_item", "associated_type":
		return c.typeAlias(n)
	case "macro_invocation":
		return c.macroCall(n)
	default:
		return c.problem(n, "extern_item")
	}
}

// Adt maps a struct, enum or union declaration.
func (c *Converter) Adt(n sitter.Node) node.Adt {
	switch kindOf(n) {
	case "struct_item":
		return c.structItem(n)
	case "enum_item":
		return c.enumItem(n)
	case "union_item":
		return c.unionItem(n)
	default:
		return c.problem(n, "adt")
	}
}

// VariantDef maps anything that declares fields.
func (c *Converter) VariantDef(n sitter.Node) node.VariantDef {
	switch kindOf(n) {
	case "struct_item":
		return c.structItem(n)
	case "union_item":
		return c.unionItem(n)
	case "enum_variant":
		return c.variant(n)
	default:
		return c.problem(n, "variant_def")
	}
}

// UseBoundGenericArg maps an argument of a `use<..>` bound.
func (c *Converter) UseBoundGenericArg(n sitter.Node) node.UseBoundGenericArg {
	switch kindOf(n) {
	case "lifetime":
		return c.lifetime(n)
	case "identifier", "type_identifier", "self":
		return c.nameRef(n)
	default:
		return c.problem(n, "use_bound_generic_arg")
	}
}

func (c *Converter) asAbi(n sitter.Node) (*node.Abi, bool) {
	if kindOf(n) != "extern_modifier" {
		return nil, false
	}

	return c.abi(n), true
}

func (c *Converter) abi(n sitter.Node) *node.Abi {
	if n.IsNull() {
		return nil
	}

	abi := &node.Abi{Envelope: c.envelope(n)}

	if lit := childOfType(n, "string_literal"); !lit.IsNull() {
		name := stringContent(c.text(lit))
		abi.Name = &name
	}

	return abi
}

// Optional wrappers keep absent children as untyped nil interfaces.

func (c *Converter) optExpr(n sitter.Node) node.Expr {
	if n.IsNull() {
		return nil
	}

	return c.Expr(n)
}

func (c *Converter) optType(n sitter.Node) node.Type {
	if n.IsNull() {
		return nil
	}

	return c.Type(n)
}

func (c *Converter) optPat(n sitter.Node) node.Pat {
	if n.IsNull() {
		return nil
	}

	return c.Pat(n)
}

func (c *Converter) optFieldList(n sitter.Node) node.FieldList {
	if n.IsNull() {
		return nil
	}

	return c.FieldList(n)
}
