package node

// AsmOperandNamed is `name = operand`.
type AsmOperandNamed struct {
	Envelope

	Name    *Name      `json:"name"`
	Operand AsmOperand `json:"operand"`
}

// AsmOptions is `options(pure, nomem)`.
type AsmOptions struct {
	Envelope

	Options []string `json:"options"`
}

// AsmClobberAbi is `clobber_abi("C")`.
type AsmClobberAbi struct {
	Envelope

	Abis []*Literal `json:"abis"`
}

// AsmRegOperand is a register operand such as `inout(reg) x => y`.
// Dir is one of in, out, lateout, inout and inlateout.
type AsmRegOperand struct {
	Envelope

	Dir     string `json:"dir"`
	Reg     string `json:"reg"`
	Expr    Expr   `json:"expr"`
	OutExpr Expr   `json:"out_expr"`
}

// AsmConst is `const expr`.
type AsmConst struct {
	Envelope

	Expr Expr `json:"expr"`
}

// AsmSym is `sym path`.
type AsmSym struct {
	Envelope

	Path *Path `json:"path"`
}

// AsmLabel is `label { .. }`.
type AsmLabel struct {
	Envelope

	Block *BlockExpr `json:"block"`
}

func (*AsmOperandNamed) Kind() Kind { return KindAsmOperandNamed }
func (*AsmOptions) Kind() Kind      { return KindAsmOptions }
func (*AsmClobberAbi) Kind() Kind   { return KindAsmClobberAbi }
func (*AsmRegOperand) Kind() Kind   { return KindAsmRegOperand }
func (*AsmConst) Kind() Kind        { return KindAsmConst }
func (*AsmSym) Kind() Kind          { return KindAsmSym }
func (*AsmLabel) Kind() Kind        { return KindAsmLabel }

func (*AsmOperandNamed) asmPiece() {}
func (*AsmOptions) asmPiece()      {}
func (*AsmClobberAbi) asmPiece()   {}
func (*AsmRegOperand) asmPiece()   {}
func (*AsmConst) asmPiece()        {}
func (*AsmSym) asmPiece()          {}
func (*AsmLabel) asmPiece()        {}

func (*AsmRegOperand) asmOperand() {}
func (*AsmConst) asmOperand()      {}
func (*AsmSym) asmOperand()        {}
func (*AsmLabel) asmOperand()      {}
