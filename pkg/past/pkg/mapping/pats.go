package mapping

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

var patKinds = map[string]bool{
	"_":                       true,
	"captured_pattern":        true,
	"generic_pattern":         true,
	"mut_pattern":             true,
	"negative_literal":        true,
	"or_pattern":              true,
	"range_pattern":           true,
	"ref_pattern":             true,
	"reference_pattern":       true,
	"remaining_field_pattern": true,
	"slice_pattern":           true,
	"struct_pattern":          true,
	"tuple_pattern":           true,
	"tuple_struct_pattern":    true,
}

func (c *Converter) asPat(n sitter.Node) (node.Pat, bool) {
	switch kindOf(n) {
	case "_":
		return &node.WildcardPat{Envelope: c.envelope(n)}, true
	case "identifier", "self", "metavariable":
		return &node.IdentPat{Envelope: c.envelope(n), Name: c.name(n)}, true
	case "scoped_identifier", "generic_pattern", "crate", "super":
		return &node.PathPat{Envelope: c.envelope(n), Path: c.path(n)}, true
	case "string_literal", "raw_string_literal", "char_literal", "boolean_literal",
		"integer_literal", "float_literal", "negative_literal":
		return &node.LiteralPat{Envelope: c.envelope(n), Literal: c.literal(n)}, true
	case "tuple_pattern":
		return &node.TuplePat{Envelope: c.envelope(n), Fields: c.patList(patternChildren(n))}, true
	case "slice_pattern":
		return &node.SlicePat{Envelope: c.envelope(n), Pats: c.patList(patternChildren(n))}, true
	case "tuple_struct_pattern":
		ty := field(n, "type")

		var elems []sitter.Node

		for _, child := range patternChildren(n) {
			if !sameNode(child, ty) {
				elems = append(elems, child)
			}
		}

		return &node.TupleStructPat{Envelope: c.envelope(n), Path: c.path(ty), Fields: c.patList(elems)}, true
	case "struct_pattern":
		return c.recordPat(n), true
	case "remaining_field_pattern":
		return &node.RestPat{Envelope: c.envelope(n)}, true
	case "reference_pattern":
		return &node.RefPat{
			Envelope: c.envelope(n),
			Mut:      hasChild(n, "mutable_specifier"),
			Pat:      c.optPat(lastPattern(n)),
		}, true
	case "ref_pattern", "mut_pattern":
		return c.bindingModifier(n), true
	case "captured_pattern":
		kids := patternChildren(n)
		if len(kids) != 2 {
			return c.problem(n, "pat"), true
		}

		binding, ok := c.Pat(kids[0]).(*node.IdentPat)
		if !ok {
			return c.problem(n, "pat"), true
		}

		binding.Envelope = c.envelope(n)
		binding.SubPat = c.Pat(kids[1])

		return binding, true
	case "or_pattern":
		return &node.OrPat{Envelope: c.envelope(n), Pats: c.patList(c.orAlternatives(n, nil))}, true
	case "range_pattern":
		return c.rangePat(n), true
	case "const_block":
		return &node.ConstBlockPat{Envelope: c.envelope(n), Block: c.block(n)}, true
	case "macro_invocation":
		return &node.MacroPat{Envelope: c.envelope(n), MacroCall: c.macroCall(n)}, true
	default:
		return nil, false
	}
}

func (c *Converter) patList(kids []sitter.Node) []node.Pat {
	var out []node.Pat

	for _, child := range kids {
		out = append(out, c.Pat(child))
	}

	return out
}

func lastPattern(n sitter.Node) sitter.Node {
	kids := patternChildren(n)
	for idx := len(kids) - 1; idx >= 0; idx-- {
		if kids[idx].Type() != "mutable_specifier" {
			return kids[idx]
		}
	}

	return sitter.Node{}
}

// bindingModifier folds `ref` and `mut` into the identifier binding they
// qualify.
func (c *Converter) bindingModifier(n sitter.Node) node.Pat {
	inner, ok := c.Pat(lastPattern(n)).(*node.IdentPat)
	if !ok {
		return c.problem(n, "pat")
	}

	if kindOf(n) == "ref_pattern" {
		inner.Ref = true
	} else {
		inner.Mut = true
	}

	inner.Envelope = c.envelope(n)

	return inner
}

// orAlternatives flattens nested or-patterns into their alternatives.
func (c *Converter) orAlternatives(n sitter.Node, acc []sitter.Node) []sitter.Node {
	for _, child := range patternChildren(n) {
		if child.Type() == "or_pattern" {
			acc = c.orAlternatives(child, acc)

			continue
		}

		acc = append(acc, child)
	}

	return acc
}

func (c *Converter) rangePat(n sitter.Node) *node.RangePat {
	out := &node.RangePat{Envelope: c.envelope(n), Op: ".."}

	for _, child := range allChildren(n) {
		switch child.Type() {
		case "..", "...", "..=":
			out.Op = child.Type()
		}
	}

	if left := field(n, "left"); !left.IsNull() {
		out.Start = c.Pat(left)
	}

	if right := field(n, "right"); !right.IsNull() {
		out.End = c.Pat(right)
	}

	if out.Start == nil && out.End == nil {
		start, op, end := c.rangeParts(n)
		if op != "" {
			out.Op = op
		}

		out.Start = c.optPat(start)
		out.End = c.optPat(end)
	}

	return out
}

func (c *Converter) recordPat(n sitter.Node) *node.RecordPat {
	ty := field(n, "type")
	out := &node.RecordPat{Envelope: c.envelope(n), Path: c.path(ty)}

	var (
		first, last sitter.Node
		fields      []*node.RecordPatField
		problems    []*node.Problem
		rest        *node.RestPat
	)

	for _, child := range named(n) {
		if sameNode(child, ty) {
			continue
		}

		if first.IsNull() {
			first = child
		}

		last = child

		switch child.Type() {
		case "field_pattern":
			fields = append(fields, c.recordPatField(child))
		case "remaining_field_pattern":
			rest = &node.RestPat{Envelope: c.envelope(child)}
		default:
			problems = append(problems, c.problem(child, "record_pat_field_list"))
		}
	}

	list := &node.RecordPatFieldList{Fields: fields, Problems: problems, Rest: rest}

	if open, ok := tokenStart(n, "{"); ok {
		list.Envelope = c.rangeEnvelope(open, n.EndByte(), nil)
	} else if !first.IsNull() {
		list.Envelope = c.envelopeBetween(first, last)
	}

	out.FieldList = list

	return out
}

func (c *Converter) recordPatField(n sitter.Node) *node.RecordPatField {
	out := &node.RecordPatField{Envelope: c.envelope(n)}

	nameNode := field(n, "name")
	if pat := field(n, "pattern"); !pat.IsNull() {
		out.NameRef = c.nameRef(nameNode)
		out.Pat = c.Pat(pat)

		return out
	}

	binding := &node.IdentPat{
		Envelope: c.rangeEnvelope(n.StartByte(), n.EndByte(), nil),
		Ref:      hasToken(n, "ref"),
		Mut:      hasChild(n, "mutable_specifier"),
		Name:     c.name(nameNode),
	}
	out.Pat = binding

	return out
}
