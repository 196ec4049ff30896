package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Sumatoshi-tech/past/pkg/past"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

var symbolKinds = map[node.Kind]protocol.SymbolKind{
	node.KindFunction:    protocol.SymbolKindFunction,
	node.KindStruct:      protocol.SymbolKindStruct,
	node.KindEnum:        protocol.SymbolKindEnum,
	node.KindUnion:       protocol.SymbolKindStruct,
	node.KindTrait:       protocol.SymbolKindInterface,
	node.KindImpl:        protocol.SymbolKindObject,
	node.KindModule:      protocol.SymbolKindModule,
	node.KindConst:       protocol.SymbolKindConstant,
	node.KindStatic:      protocol.SymbolKindVariable,
	node.KindTypeAlias:   protocol.SymbolKindTypeParameter,
	node.KindMacroRules:  protocol.SymbolKindFunction,
	node.KindMacroDef:    protocol.SymbolKindFunction,
	node.KindVariant:     protocol.SymbolKindEnumMember,
	node.KindRecordField: protocol.SymbolKindField,
}

// documentSymbols builds the outline of a file: named items, with fields,
// variants and associated items nested under their owner.
func documentSymbols(file *node.SourceFile, li *lineIndex) []protocol.DocumentSymbol {
	out := []protocol.DocumentSymbol{}

	for _, item := range file.Items {
		if sym, ok := symbolOf(item, li, false); ok {
			out = append(out, sym)
		}
	}

	return out
}

func symbolOf(n node.Node, li *lineIndex, assoc bool) (protocol.DocumentSymbol, bool) {
	kind, known := symbolKinds[n.Kind()]
	name := past.NameOf(n)

	if !known || name == "" {
		return protocol.DocumentSymbol{}, false
	}

	sym := protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          li.rangeOf(n.Env().Span),
		SelectionRange: li.rangeOf(selectionSpan(n)),
	}

	if doc := n.Env().Doc(); doc != "" {
		sym.Detail = &doc
	}

	if assoc && kind == protocol.SymbolKindFunction {
		sym.Kind = protocol.SymbolKindMethod
	}

	children, childAssoc := members(n)
	for _, child := range children {
		if childSym, ok := symbolOf(child, li, childAssoc); ok {
			sym.Children = append(sym.Children, childSym)
		}
	}

	return sym, true
}

// members lists the nested declarations shown under a symbol and reports
// whether they are associated items.
func members(n node.Node) ([]node.Node, bool) {
	var out []node.Node

	switch v := n.(type) {
	case *node.Struct:
		if fields, ok := v.FieldList.(*node.RecordFieldList); ok {
			for _, f := range fields.Fields {
				out = append(out, f)
			}
		}
	case *node.Union:
		if v.RecordFieldList != nil {
			for _, f := range v.RecordFieldList.Fields {
				out = append(out, f)
			}
		}
	case *node.Enum:
		if v.VariantList != nil {
			for _, variant := range v.VariantList.Variants {
				out = append(out, variant)
			}
		}
	case *node.Trait:
		return assocItems(v.AssocItemList), true
	case *node.Impl:
		return assocItems(v.AssocItemList), true
	case *node.Module:
		if v.ItemList != nil {
			for _, item := range v.ItemList.Items {
				out = append(out, item)
			}
		}
	}

	return out, false
}

func assocItems(list *node.AssocItemList) []node.Node {
	if list == nil {
		return nil
	}

	out := make([]node.Node, 0, len(list.Items))
	for _, item := range list.Items {
		out = append(out, item)
	}

	return out
}

// selectionSpan is the span of the declared name when there is one.
func selectionSpan(n node.Node) node.Span {
	var name *node.Name

	switch v := n.(type) {
	case *node.Function:
		name = v.Name
	case *node.Struct:
		name = v.Name
	case *node.Enum:
		name = v.Name
	case *node.Union:
		name = v.Name
	case *node.Trait:
		name = v.Name
	case *node.Module:
		name = v.Name
	case *node.Const:
		name = v.Name
	case *node.Static:
		name = v.Name
	case *node.TypeAlias:
		name = v.Name
	case *node.Variant:
		name = v.Name
	case *node.RecordField:
		name = v.Name
	}

	if name == nil {
		return n.Env().Span
	}

	return name.Span
}
