package mapping_test

import (
	"sync"
	"sync/atomic"
	"testing"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/mapping"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

func findAsm(t *testing.T, file *node.SourceFile) *node.AsmExpr {
	t.Helper()

	var found *node.AsmExpr

	for _, item := range file.Items {
		node.Inspect(item, func(n node.Node) bool {
			if asm, ok := n.(*node.AsmExpr); ok && found == nil {
				found = asm
			}

			return n != nil
		})
	}

	require.NotNil(t, found, "no asm expression")

	return found
}

func TestAsm_Operands(t *testing.T) {
	t.Parallel()

	src := `fn f(x: u64) -> u64 {
    let y: u64;
    unsafe {
        asm!("mov {0}, {1}", out(reg) y, in(reg) x, options(nostack, pure));
    }
    y
}`
	asm := findAsm(t, assemble(t, src))

	assert.Equal(t, "asm", asm.Macro)
	require.Len(t, asm.Template, 1)

	lit, ok := asm.Template[0].(*node.Literal)
	require.True(t, ok, "got %T", asm.Template[0])
	assert.Equal(t, node.LiteralString, lit.LitKind)
	assert.Equal(t, `"mov {0}, {1}"`, lit.Text)

	require.Len(t, asm.Pieces, 3)

	out, ok := asm.Pieces[0].(*node.AsmRegOperand)
	require.True(t, ok, "got %T", asm.Pieces[0])
	assert.Equal(t, "out", out.Dir)
	assert.Equal(t, "reg", out.Reg)
	require.IsType(t, &node.PathExpr{}, out.Expr)
	assert.Equal(t, "y", out.Expr.Env().Text)

	in, ok := asm.Pieces[1].(*node.AsmRegOperand)
	require.True(t, ok, "got %T", asm.Pieces[1])
	assert.Equal(t, "in", in.Dir)
	assert.Equal(t, "x", in.Expr.Env().Text)
	assert.Nil(t, in.OutExpr)

	opts, ok := asm.Pieces[2].(*node.AsmOptions)
	require.True(t, ok, "got %T", asm.Pieces[2])
	assert.Equal(t, []string{"nostack", "pure"}, opts.Options)

	for _, piece := range asm.Pieces {
		assert.True(t, asm.Span.Contains(piece.Env().Span))
		assert.Equal(t, src[piece.Env().Span.StartOffset:piece.Env().Span.EndOffset], piece.Env().Text)
	}

	assert.Equal(t, src[in.Expr.Env().Span.StartOffset:in.Expr.Env().Span.EndOffset], "x")
}

func TestAsm_NamedInoutAndClobber(t *testing.T) {
	t.Parallel()

	src := `fn f(mut a: u32) {
    unsafe {
        core::arch::asm!("add {v}, 1", v = inout(reg) a => a, clobber_abi("C"), sym helper, const 4);
    }
}`
	asm := findAsm(t, assemble(t, src))

	assert.Equal(t, "asm", asm.Macro)
	require.Len(t, asm.Pieces, 4)

	named, ok := asm.Pieces[0].(*node.AsmOperandNamed)
	require.True(t, ok, "got %T", asm.Pieces[0])
	assert.Equal(t, "v", named.Name.Text)

	reg, ok := named.Operand.(*node.AsmRegOperand)
	require.True(t, ok, "got %T", named.Operand)
	assert.Equal(t, "inout", reg.Dir)
	assert.Equal(t, "a", reg.Expr.Env().Text)
	assert.Equal(t, "a", reg.OutExpr.Env().Text)

	clobber, ok := asm.Pieces[1].(*node.AsmClobberAbi)
	require.True(t, ok, "got %T", asm.Pieces[1])
	require.Len(t, clobber.Abis, 1)
	assert.Equal(t, `"C"`, clobber.Abis[0].Text)

	sym, ok := asm.Pieces[2].(*node.AsmSym)
	require.True(t, ok, "got %T", asm.Pieces[2])
	assert.Equal(t, "helper", sym.Path.Text)

	konst, ok := asm.Pieces[3].(*node.AsmConst)
	require.True(t, ok, "got %T", asm.Pieces[3])
	assert.Equal(t, "4", konst.Expr.Env().Text)
}

func TestAsm_GlobalItem(t *testing.T) {
	t.Parallel()

	file := assemble(t, "global_asm!(\".globl entry\");\n")

	asm := single[*node.AsmExpr](t, file)
	assert.Equal(t, "global_asm", asm.Macro)
	require.Len(t, asm.Template, 1)
	assert.Empty(t, asm.Pieces)
}

func TestAsm_WithoutLanguageOperandsAreProblems(t *testing.T) {
	t.Parallel()

	src := "fn f(x: u8) { unsafe { asm!(\"nop\", in(reg) x); } }"

	parsed := assemble(t, src)
	assert.Empty(t, node.FileProblems(parsed))

	// Strip the re-parse language by assembling with a nil one.
	bare := assemble(t, src, mapping.WithLanguage(nil))
	problems := node.FileProblems(bare)
	require.Len(t, problems, 1)
	assert.Equal(t, "x", problems[0].Text)
}

func TestAsm_OperandsReuseParserPool(t *testing.T) {
	t.Parallel()

	var created atomic.Int32

	pool := &sync.Pool{
		New: func() any {
			created.Add(1)

			parser := sitter.NewParser()
			parser.SetLanguage(rustLanguage)

			return parser
		},
	}

	src := "fn f(a: u8, b: u8) { unsafe { asm!(\"nop\", in(reg) a + 1, in(reg) b * 2); } }"

	asm := findAsm(t, assemble(t, src, mapping.WithParserPool(pool)))
	require.Len(t, asm.Pieces, 2)

	first, ok := asm.Pieces[0].(*node.AsmRegOperand)
	require.True(t, ok, "got %T", asm.Pieces[0])
	require.IsType(t, &node.BinExpr{}, first.Expr)
	assert.Equal(t, "a + 1", first.Expr.Env().Text)

	second, ok := asm.Pieces[1].(*node.AsmRegOperand)
	require.True(t, ok, "got %T", asm.Pieces[1])
	assert.Equal(t, "b * 2", second.Expr.Env().Text)

	assert.Positive(t, created.Load())
	assert.LessOrEqual(t, created.Load(), int32(2))
}
