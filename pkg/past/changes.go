package past

import (
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// ChangeType classifies a structural change.
type ChangeType int

// Change types.
const (
	ChangeAdded ChangeType = iota
	ChangeRemoved
	ChangeModified
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Change is one structural difference. Before is nil for additions and
// After is nil for removals.
type Change struct {
	Type   ChangeType
	Before node.Node
	After  node.Node
}

// Node returns the side of the change that exists, preferring After.
func (c Change) Node() node.Node {
	if node.IsNil(c.After) {
		return c.Before
	}

	return c.After
}

// DetectChanges reports how the tree at after differs from the tree at
// before. Children are paired by kind and name, in order. A node whose text
// changed is reported as modified ahead of the changes among its children.
func DetectChanges(before, after node.Node) []Change {
	switch {
	case node.IsNil(before) && node.IsNil(after):
		return nil
	case node.IsNil(before):
		return []Change{{Type: ChangeAdded, After: after}}
	case node.IsNil(after):
		return []Change{{Type: ChangeRemoved, Before: before}}
	}

	var changes []Change

	if before.Kind() != after.Kind() {
		return []Change{{Type: ChangeRemoved, Before: before}, {Type: ChangeAdded, After: after}}
	}

	if before.Env().Text != after.Env().Text {
		changes = append(changes, Change{Type: ChangeModified, Before: before, After: after})
	}

	return append(changes, diffSiblings(node.Children(before), node.Children(after))...)
}

// DetectFileChanges diffs the top-level items of two versions of a file.
func DetectFileChanges(before, after *node.SourceFile) []Change {
	var b, a []node.Node
	if before != nil {
		b = before.Nodes()
	}

	if after != nil {
		a = after.Nodes()
	}

	return diffSiblings(b, a)
}

// ItemChanges keeps the changes whose node is an item, dropping changes to
// expressions, patterns and other nodes nested in item bodies.
func ItemChanges(changes []Change) []Change {
	var out []Change

	for _, c := range changes {
		if _, ok := c.Node().(node.Item); ok {
			if _, problem := c.Node().(*node.Problem); !problem {
				out = append(out, c)
			}
		}
	}

	return out
}

type siblingKey struct {
	kind node.Kind
	name string
}

func keyOf(n node.Node) siblingKey {
	return siblingKey{kind: n.Kind(), name: NameOf(n)}
}

func diffSiblings(before, after []node.Node) []Change {
	if len(before) == 0 && len(after) == 0 {
		return nil
	}

	index := make(map[siblingKey][]int, len(after))
	for idx, child := range after {
		key := keyOf(child)
		index[key] = append(index[key], idx)
	}

	used := make([]bool, len(after))

	var changes, removed []Change

	for _, bc := range before {
		idx, ok := takeFirst(index, keyOf(bc), used)
		if !ok {
			removed = append(removed, Change{Type: ChangeRemoved, Before: bc})

			continue
		}

		changes = append(changes, DetectChanges(bc, after[idx])...)
	}

	changes = append(changes, removed...)

	for idx, ac := range after {
		if !used[idx] {
			changes = append(changes, Change{Type: ChangeAdded, After: ac})
		}
	}

	return changes
}

func takeFirst(index map[siblingKey][]int, key siblingKey, used []bool) (int, bool) {
	for _, idx := range index[key] {
		if !used[idx] {
			used[idx] = true

			return idx, true
		}
	}

	return 0, false
}

// NameOf returns the declared name of a node, or "" for anonymous nodes.
// Impl blocks are named by their self type.
func NameOf(n node.Node) string {
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
	case *node.MacroRules:
		name = v.Name
	case *node.MacroDef:
		name = v.Name
	case *node.Variant:
		name = v.Name
	case *node.RecordField:
		name = v.Name
	case *node.Impl:
		return implName(v)
	case *node.MacroCall:
		if v.Path != nil {
			return v.Path.Text
		}
	case *node.Use:
		if v.UseTree != nil {
			return v.UseTree.Text
		}
	case *node.ExternCrate:
		if v.NameRef != nil {
			return v.NameRef.Text
		}
	}

	if name == nil {
		return ""
	}

	return name.Text
}

func implName(impl *node.Impl) string {
	if node.IsNil(impl.SelfTy) {
		return ""
	}

	if node.IsNil(impl.Trait) {
		return impl.SelfTy.Env().Text
	}

	return impl.Trait.Env().Text + " for " + impl.SelfTy.Env().Text
}
