package node

// LiteralKind classifies a literal token.
type LiteralKind string

// Literal kinds. Boolean literals fall under LiteralUnknown.
const (
	LiteralByte       LiteralKind = "byte"
	LiteralByteString LiteralKind = "byte_string"
	LiteralChar       LiteralKind = "char"
	LiteralCString    LiteralKind = "c_string"
	LiteralFloat      LiteralKind = "float"
	LiteralInt        LiteralKind = "int"
	LiteralString     LiteralKind = "string"
	LiteralUnknown    LiteralKind = "unknown"
)

// LiteralKinds lists every literal kind.
func LiteralKinds() []LiteralKind {
	return []LiteralKind{
		LiteralByte, LiteralByteString, LiteralChar, LiteralCString,
		LiteralFloat, LiteralInt, LiteralString, LiteralUnknown,
	}
}

// ArrayExpr is `[a, b]` or the repeat form `[value; len]`.
type ArrayExpr struct {
	Envelope

	Exprs  []Expr `json:"exprs"`
	Repeat bool   `json:"repeat"`
}

// AwaitExpr is `expr.await`.
type AwaitExpr struct {
	Envelope

	Expr Expr `json:"expr"`
}

// BinExpr is a binary, assignment or compound assignment expression. A let
// chain is a single BinExpr over all of its conditions joined by `&&`.
type BinExpr struct {
	Envelope

	Operands []Expr `json:"operands"`
	Op       string `json:"op"`
}

// BlockExpr is a braced block, possibly labeled or prefixed by a modifier
// such as unsafe, async, const, try or gen.
type BlockExpr struct {
	Envelope

	Attrs    []*Attr `json:"attrs"`
	Label    *Label  `json:"label"`
	Modifier string  `json:"modifier"`
	Stmts    []Stmt  `json:"stmts"`
	TailExpr Expr    `json:"tail_expr"`
}

// BreakExpr is `break 'label value`.
type BreakExpr struct {
	Envelope

	Lifetime *Lifetime `json:"lifetime"`
	Expr     Expr      `json:"expr"`
}

// CallExpr is `callee(args)`.
type CallExpr struct {
	Envelope

	Callee Expr   `json:"callee"`
	Args   []Expr `json:"args"`
}

// CastExpr is `expr as Ty`.
type CastExpr struct {
	Envelope

	Expr Expr `json:"expr"`
	Ty   Type `json:"ty"`
}

// ClosureExpr is `|params| body`.
type ClosureExpr struct {
	Envelope

	Static    bool       `json:"static"`
	Async     bool       `json:"async"`
	Move      bool       `json:"move"`
	ParamList *ParamList `json:"param_list"`
	RetType   *RetType   `json:"ret_type"`
	Body      Expr       `json:"body"`
}

// ContinueExpr is `continue 'label`.
type ContinueExpr struct {
	Envelope

	Lifetime *Lifetime `json:"lifetime"`
}

// FieldExpr is `expr.field` or a tuple index `expr.0`.
type FieldExpr struct {
	Envelope

	Expr    Expr     `json:"expr"`
	NameRef *NameRef `json:"name_ref"`
}

// ForExpr is `for pat in iterable { .. }`.
type ForExpr struct {
	Envelope

	Label    *Label     `json:"label"`
	Pat      Pat        `json:"pat"`
	Iterable Expr       `json:"iterable"`
	Body     *BlockExpr `json:"body"`
}

// IfExpr is `if cond { .. } else ..`. Else is a BlockExpr or another IfExpr.
type IfExpr struct {
	Envelope

	Condition Expr       `json:"condition"`
	Then      *BlockExpr `json:"then"`
	Else      Expr       `json:"else"`
}

// IndexExpr is `base[index]`.
type IndexExpr struct {
	Envelope

	Base  Expr `json:"base"`
	Index Expr `json:"index"`
}

// LetExpr is a `let pat = expr` condition.
type LetExpr struct {
	Envelope

	Pat  Pat  `json:"pat"`
	Expr Expr `json:"expr"`
}

// Literal is a literal token.
type Literal struct {
	Envelope

	LitKind LiteralKind `json:"literal_kind"`
}

// LoopExpr is `loop { .. }`.
type LoopExpr struct {
	Envelope

	Label *Label     `json:"label"`
	Body  *BlockExpr `json:"body"`
}

// MacroExpr is a macro invocation in expression position.
type MacroExpr struct {
	Envelope

	MacroCall *MacroCall `json:"macro_call"`
}

// MatchExpr is `match expr { arms }`.
type MatchExpr struct {
	Envelope

	Expr         Expr          `json:"expr"`
	MatchArmList *MatchArmList `json:"match_arm_list"`
}

// MethodCallExpr is `receiver.name::<T>(args)`.
type MethodCallExpr struct {
	Envelope

	Receiver    Expr            `json:"receiver"`
	NameRef     *NameRef        `json:"name_ref"`
	GenericArgs *GenericArgList `json:"generic_args"`
	Args        []Expr          `json:"args"`
}

// ParenExpr is `(expr)`.
type ParenExpr struct {
	Envelope

	Expr Expr `json:"expr"`
}

// PathExpr is a path used as a value.
type PathExpr struct {
	Envelope

	Path *Path `json:"path"`
}

// PrefixExpr is a unary `-expr`, `!expr` or `*expr`.
type PrefixExpr struct {
	Envelope

	Op   string `json:"op"`
	Expr Expr   `json:"expr"`
}

// RangeExpr is `start..end`, `start..=end` or any half-open form.
type RangeExpr struct {
	Envelope

	Start Expr   `json:"start"`
	Op    string `json:"op"`
	End   Expr   `json:"end"`
}

// RecordExpr is `Path { field: value, ..base }`.
type RecordExpr struct {
	Envelope

	Path      *Path                `json:"path"`
	FieldList *RecordExprFieldList `json:"field_list"`
}

// RefExpr is `&expr`, `&mut expr` or a raw borrow `&raw const expr`.
type RefExpr struct {
	Envelope

	Raw   bool `json:"raw"`
	Mut   bool `json:"mut"`
	Const bool `json:"const"`
	Expr  Expr `json:"expr"`
}

// ReturnExpr is `return expr`.
type ReturnExpr struct {
	Envelope

	Expr Expr `json:"expr"`
}

// TryExpr is `expr?`.
type TryExpr struct {
	Envelope

	Expr Expr `json:"expr"`
}

// TupleExpr is `(a, b)`. The unit value `()` has no fields.
type TupleExpr struct {
	Envelope

	Fields []Expr `json:"fields"`
}

// UnderscoreExpr is `_` on the left of a destructuring assignment.
type UnderscoreExpr struct {
	Envelope
}

// WhileExpr is `while cond { .. }`.
type WhileExpr struct {
	Envelope

	Label     *Label     `json:"label"`
	Condition Expr       `json:"condition"`
	Body      *BlockExpr `json:"body"`
}

// YieldExpr is `yield expr`.
type YieldExpr struct {
	Envelope

	Expr Expr `json:"expr"`
}

func (*ArrayExpr) Kind() Kind      { return KindArrayExpr }
func (*AwaitExpr) Kind() Kind      { return KindAwaitExpr }
func (*BinExpr) Kind() Kind        { return KindBinExpr }
func (*BlockExpr) Kind() Kind      { return KindBlockExpr }
func (*BreakExpr) Kind() Kind      { return KindBreakExpr }
func (*CallExpr) Kind() Kind       { return KindCallExpr }
func (*CastExpr) Kind() Kind       { return KindCastExpr }
func (*ClosureExpr) Kind() Kind    { return KindClosureExpr }
func (*ContinueExpr) Kind() Kind   { return KindContinueExpr }
func (*FieldExpr) Kind() Kind      { return KindFieldExpr }
func (*ForExpr) Kind() Kind        { return KindForExpr }
func (*IfExpr) Kind() Kind         { return KindIfExpr }
func (*IndexExpr) Kind() Kind      { return KindIndexExpr }
func (*LetExpr) Kind() Kind        { return KindLetExpr }
func (*Literal) Kind() Kind        { return KindLiteral }
func (*LoopExpr) Kind() Kind       { return KindLoopExpr }
func (*MacroExpr) Kind() Kind      { return KindMacroExpr }
func (*MatchExpr) Kind() Kind      { return KindMatchExpr }
func (*MethodCallExpr) Kind() Kind { return KindMethodCallExpr }
func (*ParenExpr) Kind() Kind      { return KindParenExpr }
func (*PathExpr) Kind() Kind       { return KindPathExpr }
func (*PrefixExpr) Kind() Kind     { return KindPrefixExpr }
func (*RangeExpr) Kind() Kind      { return KindRangeExpr }
func (*RecordExpr) Kind() Kind     { return KindRecordExpr }
func (*RefExpr) Kind() Kind        { return KindRefExpr }
func (*ReturnExpr) Kind() Kind     { return KindReturnExpr }
func (*TryExpr) Kind() Kind        { return KindTryExpr }
func (*TupleExpr) Kind() Kind      { return KindTupleExpr }
func (*UnderscoreExpr) Kind() Kind { return KindUnderscoreExpr }
func (*WhileExpr) Kind() Kind      { return KindWhileExpr }
func (*YieldExpr) Kind() Kind      { return KindYieldExpr }

func (*ArrayExpr) expr()      {}
func (*AsmExpr) expr()        {}
func (*AwaitExpr) expr()      {}
func (*BinExpr) expr()        {}
func (*BlockExpr) expr()      {}
func (*BreakExpr) expr()      {}
func (*CallExpr) expr()       {}
func (*CastExpr) expr()       {}
func (*ClosureExpr) expr()    {}
func (*ContinueExpr) expr()   {}
func (*FieldExpr) expr()      {}
func (*ForExpr) expr()        {}
func (*IfExpr) expr()         {}
func (*IndexExpr) expr()      {}
func (*LetExpr) expr()        {}
func (*Literal) expr()        {}
func (*LoopExpr) expr()       {}
func (*MacroExpr) expr()      {}
func (*MatchExpr) expr()      {}
func (*MethodCallExpr) expr() {}
func (*ParenExpr) expr()      {}
func (*PathExpr) expr()       {}
func (*PrefixExpr) expr()     {}
func (*RangeExpr) expr()      {}
func (*RecordExpr) expr()     {}
func (*RefExpr) expr()        {}
func (*ReturnExpr) expr()     {}
func (*TryExpr) expr()        {}
func (*TupleExpr) expr()      {}
func (*UnderscoreExpr) expr() {}
func (*WhileExpr) expr()      {}
func (*YieldExpr) expr()      {}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Envelope

	Attrs     []*Attr `json:"attrs"`
	Expr      Expr    `json:"expr"`
	Semicolon bool    `json:"semicolon"`
}

// LetStmt is `let pat: Ty = init else { .. };`.
type LetStmt struct {
	Envelope

	Attrs       []*Attr    `json:"attrs"`
	Pat         Pat        `json:"pat"`
	Ty          Type       `json:"ty"`
	Initializer Expr       `json:"initializer"`
	LetElse     *BlockExpr `json:"let_else"`
}

func (*ExprStmt) Kind() Kind { return KindExprStmt }
func (*LetStmt) Kind() Kind  { return KindLetStmt }

func (*ExprStmt) stmt() {}
func (*LetStmt) stmt()  {}
