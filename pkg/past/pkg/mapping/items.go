package mapping

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

var itemKinds = map[string]bool{
	"function_item":            true,
	"function_signature_item":  true,
	"struct_item":              true,
	"enum_item":                true,
	"union_item":               true,
	"trait_item":               true,
	"impl_item":                true,
	"mod_item":                 true,
	"use_declaration":          true,
	"const_item":               true,
	"static_item":              true,
	"type_item":                true,
	"associated_type":          true,
	"macro_invocation":         true,
	"macro_definition":         true,
	"foreign_mod_item":         true,
	"extern_crate_declaration": true,
}

var asmMacros = map[string]bool{
	"asm":        true,
	"global_asm": true,
	"naked_asm":  true,
}

func (c *Converter) asItem(n sitter.Node) (node.Item, bool) {
	switch kindOf(n) {
	case "function_item", "function_signature_item":
		return c.function(n), true
	case "struct_item":
		return c.structItem(n), true
	case "enum_item":
		return c.enumItem(n), true
	case "union_item":
		return c.unionItem(n), true
	case "trait_item":
		return c.trait(n), true
	case "impl_item":
		return c.impl(n), true
	case "mod_item":
		return c.module(n), true
	case "use_declaration":
		return c.use(n), true
	case "const_item":
		return c.constItem(n), true
	case "static_item":
		return c.staticItem(n), true
	case "type_item", "associated_type":
		return c.typeAlias(n), true
	case "macro_invocation":
		if asmMacros[c.macroName(n)] {
			return c.asm(n), true
		}

		return c.macroCall(n), true
	case "macro_definition":
		return c.macroRules(n), true
	case "foreign_mod_item":
		return c.externBlock(n), true
	case "extern_crate_declaration":
		return c.externCrate(n), true
	default:
		return nil, false
	}
}

// items maps the children of a source file or inline module body. A child
// that is not an item becomes a Problem in its place.
func (c *Converter) items(container sitter.Node) []node.Item {
	kids := named(container)
	out := make([]node.Item, 0, len(kids))

	for _, child := range kids {
		switch child.Type() {
		case "empty_statement", "shebang":
			continue
		case "expression_statement":
			if inner := firstNamed(child); kindOf(inner) == "macro_invocation" {
				out = append(out, c.statementMacroItem(child, inner))

				continue
			}
		}

		if item, ok := c.Classify(child).(node.Item); ok {
			out = append(out, item)

			continue
		}

		out = append(out, c.problem(child, "item"))
	}

	return out
}

// statementMacroItem maps `name!(..);` at item level. The envelope covers
// the trailing semicolon.
func (c *Converter) statementMacroItem(stmt, call sitter.Node) node.Item {
	item, _ := c.asItem(call)

	env := item.Env()
	*env = c.envelope(stmt)

	switch it := item.(type) {
	case *node.MacroCall:
		it.Attrs = c.attrs(stmt)
	case *node.AsmExpr:
		it.Attrs = c.attrs(stmt)
	}

	return item
}

func firstNamed(n sitter.Node) sitter.Node {
	kids := named(n)
	if len(kids) == 0 {
		return sitter.Node{}
	}

	return kids[0]
}

// Attributes and visibility.

func (c *Converter) attr(n sitter.Node, inner bool) *node.Attr {
	out := &node.Attr{Envelope: c.envelope(n), Inner: inner}

	meta := childOfType(n, "attribute")
	if meta.IsNull() {
		return out
	}

	kids := named(meta)
	if len(kids) == 0 {
		return out
	}

	out.Path = c.path(kids[0])

	if rest := strings.TrimSpace(c.slice(kids[0].EndByte(), meta.EndByte())); rest != "" {
		out.Input = &rest
	}

	return out
}

// attrs returns the outer attributes of n followed by the inner attributes
// at the top of each body.
func (c *Converter) attrs(n sitter.Node, bodies ...sitter.Node) []*node.Attr {
	outer := c.trivia.leadOf(n).attrList()

	var out []*node.Attr

	for _, a := range outer {
		out = append(out, c.attr(a, false))
	}

	for _, body := range bodies {
		if body.IsNull() {
			continue
		}

		for _, a := range c.trivia.innerOf(body).attrList() {
			out = append(out, c.attr(a, true))
		}
	}

	return out
}

func (c *Converter) innerAttrs(container sitter.Node) []*node.Attr {
	var out []*node.Attr

	for _, a := range c.trivia.innerOf(container).attrList() {
		out = append(out, c.attr(a, true))
	}

	return out
}

func (c *Converter) visibility(n sitter.Node) *node.Visibility {
	vis := childOfType(n, "visibility_modifier")
	if vis.IsNull() {
		return nil
	}

	out := &node.Visibility{Envelope: c.envelope(vis)}

	if kids := named(vis); len(kids) > 0 {
		out.Path = c.path(kids[len(kids)-1])
	}

	return out
}

// Items.

func (c *Converter) function(n sitter.Node) *node.Function {
	body := field(n, "body")

	// Inner attributes of the body stay on the body block.
	fn := &node.Function{
		Envelope:      c.ownerEnvelope(n, body),
		Attrs:         c.attrs(n),
		Visibility:    c.visibility(n),
		Name:          c.name(field(n, "name")),
		GenericParams: c.genericParamList(field(n, "type_parameters")),
		ParamList:     c.paramList(field(n, "parameters")),
		RetType:       c.retType(n),
		WhereClause:   c.whereClause(childOfType(n, "where_clause")),
	}

	if mods := childOfType(n, "function_modifiers"); !mods.IsNull() {
		fn.Default = hasToken(mods, "default")
		fn.Const = hasToken(mods, "const")
		fn.Async = hasToken(mods, "async")
		fn.Unsafe = hasToken(mods, "unsafe")
		fn.Abi = c.abi(childOfType(mods, "extern_modifier"))
	}

	if !body.IsNull() {
		fn.Body = c.block(body)
	}

	return fn
}

func (c *Converter) structItem(n sitter.Node) *node.Struct {
	return &node.Struct{
		Envelope:      c.envelope(n),
		Attrs:         c.attrs(n),
		Visibility:    c.visibility(n),
		Name:          c.name(field(n, "name")),
		GenericParams: c.genericParamList(field(n, "type_parameters")),
		WhereClause:   c.whereClause(childOfType(n, "where_clause")),
		FieldList:     c.optFieldList(field(n, "body")),
	}
}

func (c *Converter) enumItem(n sitter.Node) *node.Enum {
	out := &node.Enum{
		Envelope:      c.envelope(n),
		Attrs:         c.attrs(n),
		Visibility:    c.visibility(n),
		Name:          c.name(field(n, "name")),
		GenericParams: c.genericParamList(field(n, "type_parameters")),
		WhereClause:   c.whereClause(childOfType(n, "where_clause")),
	}

	body := field(n, "body")
	if body.IsNull() {
		return out
	}

	list := &node.VariantList{Envelope: c.envelope(body)}

	for _, child := range named(body) {
		if child.Type() != "enum_variant" {
			list.Problems = append(list.Problems, c.problem(child, "variant_list"))

			continue
		}

		list.Variants = append(list.Variants, c.variant(child))
	}

	out.VariantList = list

	return out
}

func (c *Converter) variant(n sitter.Node) *node.Variant {
	return &node.Variant{
		Envelope:     c.envelope(n),
		Attrs:        c.attrs(n),
		Visibility:   c.visibility(n),
		Name:         c.name(field(n, "name")),
		FieldList:    c.optFieldList(field(n, "body")),
		Discriminant: c.optExpr(field(n, "value")),
	}
}

func (c *Converter) unionItem(n sitter.Node) *node.Union {
	out := &node.Union{
		Envelope:      c.envelope(n),
		Attrs:         c.attrs(n),
		Visibility:    c.visibility(n),
		Name:          c.name(field(n, "name")),
		GenericParams: c.genericParamList(field(n, "type_parameters")),
		WhereClause:   c.whereClause(childOfType(n, "where_clause")),
	}

	if body := field(n, "body"); !body.IsNull() {
		out.RecordFieldList = c.recordFieldList(body)
	}

	return out
}

func (c *Converter) recordFieldList(n sitter.Node) *node.RecordFieldList {
	list := &node.RecordFieldList{Envelope: c.envelope(n)}

	for _, child := range named(n) {
		if child.Type() != "field_declaration" {
			list.Problems = append(list.Problems, c.problem(child, "record_field_list"))

			continue
		}

		list.Fields = append(list.Fields, &node.RecordField{
			Envelope:   c.envelope(child),
			Attrs:      c.attrs(child),
			Visibility: c.visibility(child),
			Name:       c.name(field(child, "name")),
			Ty:         c.optType(field(child, "type")),
		})
	}

	return list
}

// tupleFieldList groups the flat children of `(pub A, #[x] B)` into one
// field per type, each starting at its attributes or visibility.
func (c *Converter) tupleFieldList(n sitter.Node) *node.TupleFieldList {
	list := &node.TupleFieldList{Envelope: c.envelope(n)}

	var vis sitter.Node

	for _, child := range named(n) {
		if child.Type() == "visibility_modifier" {
			vis = child

			continue
		}

		first := child
		tf := &node.TupleField{Ty: c.Type(child)}

		if !vis.IsNull() {
			first = vis
			tf.Visibility = &node.Visibility{Envelope: c.envelope(vis)}

			if kids := named(vis); len(kids) > 0 {
				tf.Visibility.Path = c.path(kids[len(kids)-1])
			}
		}

		tf.Envelope = c.envelopeBetween(first, child)
		tf.Attrs = c.attrs(first)
		list.Fields = append(list.Fields, tf)
		vis = sitter.Node{}
	}

	return list
}

func (c *Converter) trait(n sitter.Node) *node.Trait {
	body := field(n, "body")

	return &node.Trait{
		Envelope:      c.ownerEnvelope(n, body),
		Attrs:         c.attrs(n, body),
		Visibility:    c.visibility(n),
		Unsafe:        hasToken(n, "unsafe"),
		Auto:          hasToken(n, "auto"),
		Name:          c.name(field(n, "name")),
		GenericParams: c.genericParamList(field(n, "type_parameters")),
		Bounds:        c.typeBoundList(field(n, "bounds")),
		WhereClause:   c.whereClause(childOfType(n, "where_clause")),
		AssocItemList: c.assocItemList(body),
	}
}

func (c *Converter) impl(n sitter.Node) *node.Impl {
	body := field(n, "body")

	return &node.Impl{
		Envelope:      c.ownerEnvelope(n, body),
		Attrs:         c.attrs(n, body),
		Default:       hasToken(n, "default"),
		Unsafe:        hasToken(n, "unsafe"),
		GenericParams: c.genericParamList(field(n, "type_parameters")),
		Negative:      hasToken(n, "!"),
		Trait:         c.optType(field(n, "trait")),
		SelfTy:        c.optType(field(n, "type")),
		WhereClause:   c.whereClause(childOfType(n, "where_clause")),
		AssocItemList: c.assocItemList(body),
	}
}

func (c *Converter) assocItemList(n sitter.Node) *node.AssocItemList {
	if n.IsNull() {
		return nil
	}

	list := &node.AssocItemList{Envelope: c.envelope(n)}

	for _, child := range named(n) {
		if child.Type() == "empty_statement" {
			continue
		}

		list.Items = append(list.Items, c.AssocItem(child))
	}

	return list
}

func (c *Converter) module(n sitter.Node) *node.Module {
	body := field(n, "body")

	out := &node.Module{
		Envelope:   c.ownerEnvelope(n, body),
		Attrs:      c.attrs(n, body),
		Visibility: c.visibility(n),
		Name:       c.name(field(n, "name")),
	}

	if !body.IsNull() {
		out.ItemList = &node.ItemList{Envelope: c.envelope(body), Items: c.items(body)}
	}

	return out
}

func (c *Converter) use(n sitter.Node) *node.Use {
	out := &node.Use{
		Envelope:   c.envelope(n),
		Attrs:      c.attrs(n),
		Visibility: c.visibility(n),
	}

	if arg := field(n, "argument"); !arg.IsNull() {
		out.UseTree = c.useTree(arg)
	}

	return out
}

func (c *Converter) useTree(n sitter.Node) *node.UseTree {
	tree := &node.UseTree{Envelope: c.envelope(n)}

	switch kindOf(n) {
	case "use_as_clause":
		tree.Path = c.path(field(n, "path"))
		tree.Rename = c.rename(n, field(n, "alias"))
	case "use_list":
		tree.UseTreeList = c.useTreeList(n)
	case "scoped_use_list":
		if p := field(n, "path"); !p.IsNull() {
			tree.Path = c.path(p)
		}

		if list := field(n, "list"); !list.IsNull() {
			tree.UseTreeList = c.useTreeList(list)
		}
	case "use_wildcard":
		tree.Star = true

		if kids := named(n); len(kids) > 0 {
			tree.Path = c.path(kids[0])
		}
	default:
		tree.Path = c.path(n)
	}

	return tree
}

func (c *Converter) useTreeList(n sitter.Node) *node.UseTreeList {
	list := &node.UseTreeList{Envelope: c.envelope(n)}

	for _, child := range named(n) {
		list.Trees = append(list.Trees, c.useTree(child))
	}

	return list
}

// rename maps the `as alias` suffix of owner. The envelope starts at `as`.
func (c *Converter) rename(owner, alias sitter.Node) *node.Rename {
	if alias.IsNull() {
		return nil
	}

	start := alias.StartByte()
	if as, ok := tokenStart(owner, "as"); ok {
		start = as
	}

	out := &node.Rename{Envelope: c.rangeEnvelope(start, alias.EndByte(), nil)}

	if kindOf(alias) == "_" {
		out.Underscore = true
	} else {
		out.Name = c.name(alias)
	}

	return out
}

func (c *Converter) constItem(n sitter.Node) *node.Const {
	out := &node.Const{
		Envelope:   c.envelope(n),
		Attrs:      c.attrs(n),
		Visibility: c.visibility(n),
		Ty:         c.optType(field(n, "type")),
		Body:       c.optExpr(field(n, "value")),
	}

	if name := field(n, "name"); !name.IsNull() && name.Type() != "_" {
		out.Name = c.name(name)
	}

	return out
}

func (c *Converter) staticItem(n sitter.Node) *node.Static {
	return &node.Static{
		Envelope:   c.envelope(n),
		Attrs:      c.attrs(n),
		Visibility: c.visibility(n),
		Mut:        hasChild(n, "mutable_specifier"),
		Name:       c.name(field(n, "name")),
		Ty:         c.optType(field(n, "type")),
		Body:       c.optExpr(field(n, "value")),
	}
}

func (c *Converter) typeAlias(n sitter.Node) *node.TypeAlias {
	ty := field(n, "type")
	if ty.IsNull() {
		ty = field(n, "default_type")
	}

	return &node.TypeAlias{
		Envelope:      c.envelope(n),
		Attrs:         c.attrs(n),
		Visibility:    c.visibility(n),
		Name:          c.name(field(n, "name")),
		GenericParams: c.genericParamList(field(n, "type_parameters")),
		Bounds:        c.typeBoundList(field(n, "bounds")),
		WhereClause:   c.whereClause(childOfType(n, "where_clause")),
		Ty:            c.optType(ty),
	}
}

func (c *Converter) macroName(n sitter.Node) string {
	m := field(n, "macro")
	if m.IsNull() {
		return ""
	}

	if m.Type() == "scoped_identifier" {
		return c.text(field(m, "name"))
	}

	return c.text(m)
}

func (c *Converter) macroCall(n sitter.Node) *node.MacroCall {
	out := &node.MacroCall{
		Envelope: c.envelope(n),
		Attrs:    c.attrs(n),
	}

	if m := field(n, "macro"); !m.IsNull() {
		out.Path = c.path(m)
	}

	if tt := childOfType(n, "token_tree"); !tt.IsNull() {
		out.TokenTree = c.text(tt)
	}

	return out
}

func (c *Converter) macroRules(n sitter.Node) *node.MacroRules {
	out := &node.MacroRules{
		Envelope:   c.envelope(n),
		Attrs:      c.attrs(n),
		Visibility: c.visibility(n),
		Name:       c.name(field(n, "name")),
	}

	var (
		open, closing uint
		found         bool
	)

	for _, child := range allChildren(n) {
		if child.IsNamed() {
			continue
		}

		switch child.Type() {
		case "(", "{", "[":
			if !found {
				open, found = child.StartByte(), true
			}
		case ")", "}", "]":
			closing = child.EndByte()
		}
	}

	if found && closing > open {
		out.TokenTree = c.slice(open, closing)
	}

	return out
}

func (c *Converter) externBlock(n sitter.Node) *node.ExternBlock {
	body := field(n, "body")

	out := &node.ExternBlock{
		Envelope: c.ownerEnvelope(n, body),
		Attrs:    c.attrs(n, body),
		Unsafe:   hasToken(n, "unsafe"),
		Abi:      c.abi(childOfType(n, "extern_modifier")),
	}

	if body.IsNull() {
		return out
	}

	list := &node.ExternItemList{Envelope: c.envelope(body)}

	for _, child := range named(body) {
		if child.Type() == "empty_statement" {
			continue
		}

		list.Items = append(list.Items, c.ExternItem(child))
	}

	out.ExternItemList = list

	return out
}

func (c *Converter) externCrate(n sitter.Node) *node.ExternCrate {
	return &node.ExternCrate{
		Envelope:   c.envelope(n),
		Attrs:      c.attrs(n),
		Visibility: c.visibility(n),
		NameRef:    c.nameRef(field(n, "name")),
		Rename:     c.rename(n, field(n, "alias")),
	}
}

// stringContent strips the quotes and prefix of a string literal.
func stringContent(text string) string {
	text = strings.TrimLeft(text, "bcr#")

	start := strings.IndexByte(text, '"')
	end := strings.LastIndexByte(text, '"')

	if start < 0 || end <= start {
		return text
	}

	return text[start+1 : end]
}
