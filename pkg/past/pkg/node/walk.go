package node

import (
	"reflect"
	"sort"
)

// Visitor is called for each node encountered by Walk. If the returned
// visitor is non-nil, Walk visits the children of the node with it and
// then calls it with nil.
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree rooted at n in depth-first, field order.
func Walk(v Visitor, n Node) {
	if IsNil(n) {
		return
	}

	if v = v.Visit(n); v == nil {
		return
	}

	for _, child := range Children(n) {
		Walk(v, child)
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}

	return nil
}

// Inspect traverses the tree in pre-order, calling f for every node and
// then f(nil) after the children. Returning false skips the children.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}

	v := reflect.ValueOf(n)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Children returns the direct children of n in field declaration order.
func Children(n Node) []Node {
	if IsNil(n) {
		return nil
	}

	v := reflect.ValueOf(n).Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()

	var out []Node

	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		out = appendNodes(out, v.Field(i))
	}

	return out
}

func appendNodes(out []Node, field reflect.Value) []Node {
	switch field.Kind() {
	case reflect.Interface, reflect.Pointer:
		if field.IsNil() {
			return out
		}

		if child, ok := field.Interface().(Node); ok && !IsNil(child) {
			out = append(out, child)
		}
	case reflect.Slice:
		for i := range field.Len() {
			out = appendNodes(out, field.Index(i))
		}
	default:
	}

	return out
}

// Problems collects every Problem node under the given roots in pre-order.
func Problems(roots ...Node) []*Problem {
	var out []*Problem

	for _, root := range roots {
		Inspect(root, func(n Node) bool {
			if p, ok := n.(*Problem); ok {
				out = append(out, p)
			}

			return n != nil
		})
	}

	return out
}

// FileProblems collects every Problem node in a source file.
func FileProblems(f *SourceFile) []*Problem {
	return Problems(f.Nodes()...)
}

// CountKinds tallies the kinds of all nodes under the given roots.
func CountKinds(roots ...Node) map[Kind]int {
	counts := make(map[Kind]int)

	for _, root := range roots {
		Inspect(root, func(n Node) bool {
			if n != nil {
				counts[n.Kind()]++
			}

			return true
		})
	}

	return counts
}

// KindCount pairs a kind with its number of occurrences.
type KindCount struct {
	Kind  Kind
	Count int
}

// SortedCounts orders counts by descending count, then by kind.
func SortedCounts(counts map[Kind]int) []KindCount {
	out := make([]KindCount, 0, len(counts))
	for kind, count := range counts {
		out = append(out, KindCount{Kind: kind, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Kind < out[j].Kind
	})

	return out
}

// FindAt returns the chain of nodes whose span covers offset, outermost
// first. The last element is the innermost match.
func FindAt(offset uint32, roots ...Node) []Node {
	var chain []Node

	for _, root := range roots {
		Inspect(root, func(n Node) bool {
			if n == nil {
				return false
			}

			if !n.Env().Span.ContainsOffset(offset) {
				return false
			}

			chain = append(chain, n)

			return true
		})
	}

	return chain
}
