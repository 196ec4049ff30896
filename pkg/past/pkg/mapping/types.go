package mapping

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

var typeKinds = map[string]bool{
	"abstract_type":          true,
	"array_type":             true,
	"bounded_type":           true,
	"dynamic_type":           true,
	"function_type":          true,
	"generic_type":           true,
	"never_type":             true,
	"pointer_type":           true,
	"primitive_type":         true,
	"reference_type":         true,
	"scoped_type_identifier": true,
	"tuple_type":             true,
	"type_identifier":        true,
	"unit_type":              true,
}

func (c *Converter) asType(n sitter.Node) (node.Type, bool) {
	switch kindOf(n) {
	case "type_identifier", "scoped_type_identifier", "primitive_type", "generic_type",
		"identifier", "scoped_identifier", "self", "metavariable":
		return &node.PathType{Envelope: c.envelope(n), Path: c.path(n)}, true
	case "reference_type":
		return &node.RefType{
			Envelope: c.envelope(n),
			Lifetime: c.lifetime(childOfType(n, "lifetime")),
			Mut:      hasChild(n, "mutable_specifier"),
			Ty:       c.optType(field(n, "type")),
		}, true
	case "pointer_type":
		return &node.PtrType{
			Envelope: c.envelope(n),
			Const:    hasToken(n, "const"),
			Mut:      hasChild(n, "mutable_specifier"),
			Ty:       c.optType(field(n, "type")),
		}, true
	case "tuple_type":
		out := &node.TupleType{Envelope: c.envelope(n)}
		for _, child := range named(n) {
			out.Fields = append(out.Fields, c.Type(child))
		}

		return out, true
	case "unit_type":
		return &node.TupleType{Envelope: c.envelope(n)}, true
	case "array_type":
		env := c.envelope(n)

		elem := c.optType(field(n, "element"))
		if length := field(n, "length"); !length.IsNull() {
			return &node.ArrayType{Envelope: env, Ty: elem, Len: c.Expr(length)}, true
		}

		return &node.SliceType{Envelope: env, Ty: elem}, true
	case "never_type", "!":
		return &node.NeverType{Envelope: c.envelope(n)}, true
	case "_":
		return &node.InferType{Envelope: c.envelope(n)}, true
	case "function_type":
		return c.functionType(n), true
	case "dynamic_type", "bounded_type":
		return &node.DynTraitType{Envelope: c.envelope(n), Bounds: c.boundsOfType(n)}, true
	case "abstract_type":
		return &node.ImplTraitType{Envelope: c.envelope(n), Bounds: c.boundsOfType(n)}, true
	case "macro_invocation":
		return &node.MacroType{Envelope: c.envelope(n), MacroCall: c.macroCall(n)}, true
	default:
		return nil, false
	}
}

// functionType maps `fn(A) -> B` to a function pointer and the trait sugar
// `Fn(A) -> B` to a path whose last segment carries the signature.
func (c *Converter) functionType(n sitter.Node) node.Type {
	env := c.envelope(n)
	params := c.paramList(field(n, "parameters"))
	ret := c.retType(n)

	var out node.Type

	if trait := field(n, "trait"); !trait.IsNull() {
		path := c.path(trait)
		path.Envelope = env

		if len(path.Segments) > 0 {
			last := path.Segments[len(path.Segments)-1]
			last.Envelope = c.rangeEnvelope(trait.StartByte(), n.EndByte(), nil)

			if lastName := field(trait, "name"); !lastName.IsNull() {
				last.Envelope = c.rangeEnvelope(lastName.StartByte(), n.EndByte(), nil)
			}

			last.ParamList = params
			last.RetType = ret
		}

		out = &node.PathType{Envelope: env, Path: path}
	} else {
		ptr := &node.FnPtrType{Envelope: env, ParamList: params, RetType: ret}

		if mods := childOfType(n, "function_modifiers"); !mods.IsNull() {
			ptr.Unsafe = hasToken(mods, "unsafe")
			ptr.Abi = c.abi(childOfType(mods, "extern_modifier"))
		}

		out = ptr
	}

	if binder := childOfType(n, "for_lifetimes"); !binder.IsNull() {
		return &node.ForType{Envelope: env, GenericParams: c.genericParamList(binder), Ty: out}
	}

	return out
}

// Bounds.

// boundsOfType collects the bounds of a trait object or impl trait type,
// flattening `A + B` chains.
func (c *Converter) boundsOfType(n sitter.Node) *node.TypeBoundList {
	var parts []sitter.Node

	switch kindOf(n) {
	case "dynamic_type", "abstract_type":
		inner := field(n, "trait")
		if inner.IsNull() {
			return nil
		}

		parts = flattenBounds(inner, nil)
	default:
		parts = flattenBounds(n, nil)
	}

	if len(parts) == 0 {
		return nil
	}

	list := &node.TypeBoundList{Envelope: c.envelopeBetween(parts[0], parts[len(parts)-1])}

	for _, part := range parts {
		list.Bounds = append(list.Bounds, c.typeBound(part))
	}

	if binder := childOfType(n, "type_parameters", "for_lifetimes"); !binder.IsNull() && kindOf(n) == "abstract_type" {
		list.Bounds[0].ForLifetimes = c.genericParamList(binder)
	}

	return list
}

func flattenBounds(n sitter.Node, acc []sitter.Node) []sitter.Node {
	switch kindOf(n) {
	case "bounded_type":
		for _, child := range named(n) {
			acc = flattenBounds(child, acc)
		}

		return acc
	case "dynamic_type":
		if inner := field(n, "trait"); !inner.IsNull() {
			return flattenBounds(inner, acc)
		}
	}

	return append(acc, n)
}

// typeBoundList maps a `: A + 'b` bound list.
func (c *Converter) typeBoundList(n sitter.Node) *node.TypeBoundList {
	kids := named(n)
	if len(kids) == 0 {
		return nil
	}

	var parts []sitter.Node
	for _, child := range kids {
		parts = flattenBounds(child, parts)
	}

	list := &node.TypeBoundList{Envelope: c.envelopeBetween(kids[0], kids[len(kids)-1])}

	for _, part := range parts {
		list.Bounds = append(list.Bounds, c.typeBound(part))
	}

	return list
}

func (c *Converter) typeBound(n sitter.Node) *node.TypeBound {
	out := &node.TypeBound{Envelope: c.envelope(n)}

	switch kindOf(n) {
	case "lifetime":
		out.Lifetime = c.lifetime(n)
	case "removed_trait_bound":
		out.Question = true
		out.Ty = c.optType(firstNamed(n))
	case "higher_ranked_trait_bound":
		out.ForLifetimes = c.genericParamList(field(n, "type_parameters"))
		out.Ty = c.optType(field(n, "type"))
	case "use_bounds":
		for _, child := range named(n) {
			out.UseArgs = append(out.UseArgs, c.UseBoundGenericArg(child))
		}
	default:
		out.Ty = c.Type(n)
	}

	return out
}
