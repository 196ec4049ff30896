package mapping

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// genericParamList maps type_parameters and for_lifetimes binders.
func (c *Converter) genericParamList(n sitter.Node) *node.GenericParamList {
	if n.IsNull() {
		return nil
	}

	list := &node.GenericParamList{Envelope: c.envelope(n)}

	for _, child := range named(n) {
		list.Params = append(list.Params, c.GenericParam(child))
	}

	return list
}

func (c *Converter) constrainedTypeParam(n sitter.Node) node.GenericParam {
	left := field(n, "left")
	bounds := c.typeBoundList(field(n, "bounds"))

	if kindOf(left) == "lifetime" {
		return &node.LifetimeParam{Envelope: c.envelope(n), Lifetime: c.lifetime(left), Bounds: bounds}
	}

	return &node.TypeParam{Envelope: c.envelope(n), Name: c.name(left), Bounds: bounds}
}

// genericArgList maps type_arguments. A bound list following an argument
// turns it into an associated type constraint: `Item: Copy`.
func (c *Converter) genericArgList(n sitter.Node) *node.GenericArgList {
	if n.IsNull() {
		return nil
	}

	list := &node.GenericArgList{Envelope: c.envelope(n)}

	var prev sitter.Node

	for _, child := range named(n) {
		if child.Type() == "trait_bounds" && len(list.Args) > 0 && !prev.IsNull() {
			list.Args[len(list.Args)-1] = &node.AssocTypeArg{
				Envelope: c.envelopeBetween(prev, child),
				NameRef:  c.nameRef(prev),
				Bounds:   c.typeBoundList(child),
			}
			prev = sitter.Node{}

			continue
		}

		list.Args = append(list.Args, c.GenericArg(child))
		prev = child
	}

	return list
}

func (c *Converter) assocTypeArg(n sitter.Node) *node.AssocTypeArg {
	return &node.AssocTypeArg{
		Envelope:    c.envelope(n),
		NameRef:     c.nameRef(field(n, "name")),
		GenericArgs: c.genericArgList(field(n, "type_arguments")),
		Ty:          c.optType(field(n, "type")),
	}
}

func (c *Converter) whereClause(n sitter.Node) *node.WhereClause {
	if n.IsNull() {
		return nil
	}

	clause := &node.WhereClause{Envelope: c.envelope(n)}

	for _, pred := range named(n) {
		if pred.Type() != "where_predicate" {
			clause.Problems = append(clause.Problems, c.problem(pred, "where_clause"))

			continue
		}

		out := &node.WherePred{
			Envelope: c.envelope(pred),
			Bounds:   c.typeBoundList(field(pred, "bounds")),
		}

		left := field(pred, "left")

		switch kindOf(left) {
		case "":
		case "lifetime":
			out.Lifetime = c.lifetime(left)
		case "higher_ranked_trait_bound":
			out.ForLifetimes = c.genericParamList(field(left, "type_parameters"))
			out.Ty = c.optType(field(left, "type"))
		default:
			out.Ty = c.Type(left)
		}

		clause.Preds = append(clause.Preds, out)
	}

	return clause
}

// Paths.

func (c *Converter) path(n sitter.Node) *node.Path {
	if n.IsNull() {
		return nil
	}

	p := &node.Path{Envelope: c.envelope(n)}
	p.Segments = c.segments(n, &p.Global)

	return p
}

// segments flattens a nested scoped path into its segments in source
// order. global is set when the path starts with `::`.
func (c *Converter) segments(n sitter.Node, global *bool) []*node.PathSegment {
	switch kindOf(n) {
	case "scoped_identifier", "scoped_type_identifier":
		var out []*node.PathSegment

		if prefix := field(n, "path"); !prefix.IsNull() {
			out = c.segments(prefix, global)
		} else if hasToken(n, "::") {
			*global = true
		}

		if name := field(n, "name"); !name.IsNull() {
			out = append(out, c.segment(name))
		}

		return out
	case "generic_type", "generic_type_with_turbofish", "generic_function", "generic_pattern":
		base := field(n, "type")
		if base.IsNull() {
			base = field(n, "function")
		}

		if base.IsNull() {
			base = firstNamed(n)
		}

		out := c.segments(base, global)
		if len(out) > 0 {
			last := out[len(out)-1]
			last.Envelope = c.rangeEnvelope(lastSegmentNode(base).StartByte(), n.EndByte(), nil)
			last.GenericArgs = c.genericArgList(field(n, "type_arguments"))
		}

		return out
	case "bracketed_type":
		seg := &node.PathSegment{Envelope: c.rangeEnvelope(n.StartByte(), n.EndByte(), nil)}

		inner := firstNamed(n)
		if kindOf(inner) == "qualified_type" {
			seg.Ty = c.optType(field(inner, "type"))
			seg.Trait = c.optType(field(inner, "alias"))
		} else if !inner.IsNull() {
			seg.Ty = c.Type(inner)
		}

		return []*node.PathSegment{seg}
	default:
		return []*node.PathSegment{c.segment(n)}
	}
}

func (c *Converter) segment(n sitter.Node) *node.PathSegment {
	return &node.PathSegment{
		Envelope: c.rangeEnvelope(n.StartByte(), n.EndByte(), nil),
		NameRef:  &node.NameRef{Envelope: c.rangeEnvelope(n.StartByte(), n.EndByte(), nil)},
	}
}

// lastSegmentNode returns the syntax node of the final segment of a path.
func lastSegmentNode(n sitter.Node) sitter.Node {
	switch kindOf(n) {
	case "scoped_identifier", "scoped_type_identifier":
		if name := field(n, "name"); !name.IsNull() {
			return name
		}
	case "generic_type", "generic_type_with_turbofish", "generic_function", "generic_pattern":
		if base := field(n, "type"); !base.IsNull() {
			return lastSegmentNode(base)
		}

		if base := field(n, "function"); !base.IsNull() {
			return lastSegmentNode(base)
		}
	}

	return n
}

// Signatures.

func (c *Converter) paramList(n sitter.Node) *node.ParamList {
	if n.IsNull() {
		return nil
	}

	list := &node.ParamList{Envelope: c.envelope(n)}

	for _, child := range patternChildren(n) {
		switch child.Type() {
		case "self_parameter":
			list.SelfParam = &node.SelfParam{
				Envelope: c.envelope(child),
				Amp:      hasToken(child, "&"),
				Lifetime: c.lifetime(childOfType(child, "lifetime")),
				Mut:      hasChild(child, "mutable_specifier"),
				Name:     c.name(childOfType(child, "self")),
			}
		case "parameter":
			if pat := field(child, "pattern"); kindOf(pat) == "self" {
				list.SelfParam = &node.SelfParam{
					Envelope: c.envelope(child),
					Mut:      hasChild(child, "mutable_specifier"),
					Name:     c.name(pat),
					Ty:       c.optType(field(child, "type")),
				}

				continue
			}

			list.Params = append(list.Params, c.param(child))
		case "variadic_parameter":
			list.Params = append(list.Params, &node.Param{
				Envelope: c.envelope(child),
				Attrs:    c.attrs(child),
				Pat:      c.optPat(field(child, "pattern")),
				Variadic: true,
			})
		default:
			// Function pointer parameters are bare types.
			list.Params = append(list.Params, &node.Param{
				Envelope: c.envelope(child),
				Attrs:    c.attrs(child),
				Ty:       c.Type(child),
			})
		}
	}

	return list
}

func (c *Converter) param(n sitter.Node) *node.Param {
	out := &node.Param{
		Envelope: c.envelope(n),
		Attrs:    c.attrs(n),
		Ty:       c.optType(field(n, "type")),
	}

	pat := field(n, "pattern")
	if pat.IsNull() {
		return out
	}

	out.Pat = c.Pat(pat)

	if mut := childOfType(n, "mutable_specifier"); !mut.IsNull() && mut.StartByte() < pat.StartByte() {
		if ident, ok := out.Pat.(*node.IdentPat); ok {
			ident.Mut = true
			ident.Envelope = c.rangeEnvelope(mut.StartByte(), pat.EndByte(), nil)
		}
	}

	return out
}

func (c *Converter) closureParams(n sitter.Node) *node.ParamList {
	list := &node.ParamList{Envelope: c.envelope(n)}

	for _, child := range patternChildren(n) {
		if child.Type() == "parameter" {
			list.Params = append(list.Params, c.param(child))

			continue
		}

		list.Params = append(list.Params, &node.Param{
			Envelope: c.envelope(child),
			Attrs:    c.attrs(child),
			Pat:      c.Pat(child),
		})
	}

	return list
}

// retType maps the return type of a function, closure or function type.
// The envelope starts at the arrow.
func (c *Converter) retType(n sitter.Node) *node.RetType {
	rt := field(n, "return_type")
	if rt.IsNull() {
		return nil
	}

	start := rt.StartByte()
	if arrow, ok := tokenStart(n, "->"); ok {
		start = arrow
	}

	return &node.RetType{Envelope: c.rangeEnvelope(start, rt.EndByte(), nil), Ty: c.Type(rt)}
}
