// Package node defines the Portable AST (PAST): a closed, acyclic tree of
// typed Rust syntax nodes that is safe to encode and hand across a runtime
// boundary.
//
// Every concrete node embeds an Envelope and belongs to one or more
// categories. Categories are expressed as interfaces with unexported marker
// methods, so the set of members is closed to this package.
package node

// Node is implemented by every portable node.
type Node interface {
	Kind() Kind
	Env() *Envelope
}

// Stmt is a statement inside a block.
type Stmt interface {
	Node
	stmt()
}

// Item is a declaration. Items may appear wherever statements do.
type Item interface {
	Stmt
	item()
}

// Expr is an expression.
type Expr interface {
	Node
	expr()
}

// Pat is a pattern.
type Pat interface {
	Node
	pat()
}

// Type is a type reference.
type Type interface {
	Node
	typ()
}

// GenericArg is an argument in a generic argument list.
type GenericArg interface {
	Node
	genericArg()
}

// GenericParam is a parameter in a generic parameter list.
type GenericParam interface {
	Node
	genericParam()
}

// FieldList is the body of a struct, union or variant.
type FieldList interface {
	Node
	fieldList()
}

// AsmPiece is one comma-separated argument of an inline assembly macro
// after the template strings.
type AsmPiece interface {
	Node
	asmPiece()
}

// AsmOperand is the operand of an inline assembly piece. An unnamed
// operand is a piece on its own.
type AsmOperand interface {
	AsmPiece
	asmOperand()
}

// AssocItem is an item inside a trait or impl body.
type AssocItem interface {
	Node
	assocItem()
}

// Adt is an algebraic data type declaration.
type Adt interface {
	Node
	adt()
}

// VariantDef is anything that defines a set of fields.
type VariantDef interface {
	Node
	variantDef()
}

// ExternItem is an item inside an extern block.
type ExternItem interface {
	Node
	externItem()
}

// UseBoundGenericArg is an argument of a precise capturing use<..> bound.
type UseBoundGenericArg interface {
	Node
	useBoundGenericArg()
}

// Problem stands in for syntax that has no modeled variant. It satisfies
// every category so it can take the place of any child.
type Problem struct {
	Envelope
}

func (*Problem) Kind() Kind          { return KindProblem }
func (*Problem) stmt()               {}
func (*Problem) item()               {}
func (*Problem) expr()               {}
func (*Problem) pat()                {}
func (*Problem) typ()                {}
func (*Problem) genericArg()         {}
func (*Problem) genericParam()       {}
func (*Problem) fieldList()          {}
func (*Problem) asmOperand()         {}
func (*Problem) asmPiece()           {}
func (*Problem) assocItem()          {}
func (*Problem) adt()                {}
func (*Problem) variantDef()         {}
func (*Problem) externItem()         {}
func (*Problem) useBoundGenericArg() {}

// Abi is an extern ABI marker such as `extern "C"`.
type Abi struct {
	Envelope

	// Name is the ABI string without quotes, nil for a bare `extern`.
	Name *string `json:"name"`
}

func (*Abi) Kind() Kind { return KindAbi }
