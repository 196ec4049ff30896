package mapping_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// spanChecker verifies that every node lies inside its parent and that its
// text is the source slice at its span.
type spanChecker struct {
	t      *testing.T
	src    string
	parent node.Span
	seen   *int
}

func (v spanChecker) Visit(n node.Node) node.Visitor {
	if n == nil {
		return nil
	}

	*v.seen++

	env := n.Env()
	span := env.Span

	if !assert.True(v.t, span.Valid(), "%s has inverted span %+v", n.Kind(), span) {
		return nil
	}

	assert.True(v.t, v.parent.Contains(span), "%s %+v escapes parent %+v", n.Kind(), span, v.parent)

	if assert.LessOrEqual(v.t, int(span.EndOffset), len(v.src)) {
		assert.Equal(v.t, v.src[span.StartOffset:span.EndOffset], env.Text, "%s text", n.Kind())
	}

	return spanChecker{t: v.t, src: v.src, parent: span, seen: v.seen}
}

func TestInvariant_SpanContainment(t *testing.T) {
	t.Parallel()

	src := loadFixture(t, "shapes.rs")
	file := assemble(t, src)

	seen := 0
	root := spanChecker{t: t, src: src, parent: file.Root.Span, seen: &seen}

	for _, n := range file.Nodes() {
		node.Walk(root, n)
	}

	assert.Greater(t, seen, 300)
}

func TestInvariant_SourceOrder(t *testing.T) {
	t.Parallel()

	file := assemble(t, loadFixture(t, "shapes.rs"))

	assertOrdered := func(what string, nodes []node.Node) {
		for i := 1; i < len(nodes); i++ {
			prev, cur := nodes[i-1].Env().Span, nodes[i].Env().Span
			assert.LessOrEqual(t, prev.EndOffset, cur.StartOffset, "%s[%d] overlaps its predecessor", what, i)
		}
	}

	assertOrdered("items", file.Nodes())

	node.Inspect(file.Items[len(file.Items)-1], func(n node.Node) bool {
		switch v := n.(type) {
		case *node.BlockExpr:
			stmts := make([]node.Node, 0, len(v.Stmts)+1)
			for _, s := range v.Stmts {
				stmts = append(stmts, s)
			}

			if v.TailExpr != nil {
				stmts = append(stmts, v.TailExpr)
			}

			assertOrdered("block", stmts)
		case *node.ArrayExpr:
			elems := make([]node.Node, 0, len(v.Exprs))
			for _, e := range v.Exprs {
				elems = append(elems, e)
			}

			assertOrdered("array", elems)
		}

		return n != nil
	})
}

func TestInvariant_Deterministic(t *testing.T) {
	t.Parallel()

	src := loadFixture(t, "shapes.rs")

	first, err := json.Marshal(assemble(t, src))
	require.NoError(t, err)

	second, err := json.Marshal(assemble(t, src))
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestFixture_Inventory(t *testing.T) {
	t.Parallel()

	file := assemble(t, loadFixture(t, "shapes.rs"))

	assert.Len(t, file.Items, 14)

	counts := node.CountKinds(file.Nodes()...)

	assert.Equal(t, 7, counts[node.KindFunction])
	assert.Equal(t, 3, counts[node.KindStruct])
	assert.Equal(t, 1, counts[node.KindEnum])
	assert.Equal(t, 1, counts[node.KindTrait])
	assert.Equal(t, 2, counts[node.KindImpl])
	assert.Equal(t, 1, counts[node.KindModule])
	assert.Equal(t, 2, counts[node.KindUse])
	assert.Equal(t, 1, counts[node.KindMacroRules])
	assert.Equal(t, 1, counts[node.KindMatchExpr])
	assert.Equal(t, 1, counts[node.KindForExpr])
	assert.Equal(t, 1, counts[node.KindClosureExpr])
}

func TestFixture_KindsMapWithoutProblems(t *testing.T) {
	t.Parallel()

	src := loadFixture(t, "kinds.rs")
	file := assemble(t, src)

	assert.Empty(t, node.FileProblems(file))

	seen := 0
	root := spanChecker{t: t, src: src, parent: file.Root.Span, seen: &seen}

	for _, n := range file.Nodes() {
		node.Walk(root, n)
	}

	counts := node.CountKinds(file.Nodes()...)

	for _, kind := range []node.Kind{
		node.KindExternCrate, node.KindUnion, node.KindStatic, node.KindConst,
		node.KindExternBlock, node.KindConstParam, node.KindArrayType,
		node.KindNeverType, node.KindForType, node.KindFnPtrType, node.KindPtrType,
		node.KindInferType, node.KindDynTraitType, node.KindImplTraitType,
		node.KindSlicePat, node.KindRestPat, node.KindRangePat, node.KindOrPat,
		node.KindRefPat, node.KindLabel, node.KindBreakExpr, node.KindContinueExpr,
		node.KindLetExpr, node.KindCastExpr, node.KindMatchGuard,
	} {
		assert.Positive(t, counts[kind], "no %s in fixture", kind)
	}

	assert.Equal(t, 2, counts[node.KindTypeAlias])
	assert.Equal(t, 1, counts[node.KindLoopExpr])
	assert.Equal(t, 2, counts[node.KindForExpr])
}

func TestFixture_KindsDetails(t *testing.T) {
	t.Parallel()

	file := assemble(t, loadFixture(t, "kinds.rs"))

	var (
		letElse  *node.LetStmt
		turbo    *node.MethodCallExpr
		captured *node.IdentPat
		refBind  *node.IdentPat
		chain    *node.BinExpr
	)

	for _, n := range file.Nodes() {
		node.Inspect(n, func(cur node.Node) bool {
			switch v := cur.(type) {
			case *node.LetStmt:
				if v.LetElse != nil {
					letElse = v
				}
			case *node.MethodCallExpr:
				if v.GenericArgs != nil {
					turbo = v
				}
			case *node.IdentPat:
				if v.SubPat != nil {
					captured = v
				}

				if v.Ref {
					refBind = v
				}
			case *node.IfExpr:
				if bin, ok := v.Condition.(*node.BinExpr); ok && bin.Op == "&&" {
					chain = bin
				}
			}

			return cur != nil
		})
	}

	require.NotNil(t, letElse)
	assert.IsType(t, &node.TupleStructPat{}, letElse.Pat)

	require.NotNil(t, turbo)
	assert.Equal(t, "collect", turbo.NameRef.Text)
	require.Len(t, turbo.GenericArgs.Args, 1)

	require.NotNil(t, captured)
	assert.Equal(t, "rest", captured.Name.Text)
	assert.IsType(t, &node.RestPat{}, captured.SubPat)

	require.NotNil(t, refBind)
	assert.Equal(t, "other", refBind.Name.Text)

	require.NotNil(t, chain)
	require.Len(t, chain.Operands, 2)
	assert.IsType(t, &node.LetExpr{}, chain.Operands[0])
}
