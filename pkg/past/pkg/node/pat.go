package node

// BoxPat is `box pat`.
type BoxPat struct {
	Envelope

	Pat Pat `json:"pat"`
}

// ConstBlockPat is `const { .. }` in pattern position.
type ConstBlockPat struct {
	Envelope

	Block *BlockExpr `json:"block"`
}

// IdentPat is a binding such as `ref mut name @ sub`.
type IdentPat struct {
	Envelope

	Ref    bool  `json:"ref"`
	Mut    bool  `json:"mut"`
	Name   *Name `json:"name"`
	SubPat Pat   `json:"sub_pat"`
}

// LiteralPat is a literal, possibly negated, in pattern position.
type LiteralPat struct {
	Envelope

	Literal *Literal `json:"literal"`
}

// MacroPat is a macro invocation in pattern position.
type MacroPat struct {
	Envelope

	MacroCall *MacroCall `json:"macro_call"`
}

// OrPat is `a | b | c`, flattened.
type OrPat struct {
	Envelope

	Pats []Pat `json:"pats"`
}

// ParenPat is `(pat)`.
type ParenPat struct {
	Envelope

	Pat Pat `json:"pat"`
}

// PathPat is a path naming a unit struct, variant or constant.
type PathPat struct {
	Envelope

	Path *Path `json:"path"`
}

// RangePat is `start..=end` or a half-open form.
type RangePat struct {
	Envelope

	Start Pat    `json:"start"`
	Op    string `json:"op"`
	End   Pat    `json:"end"`
}

// RecordPat is `Path { field, .. }`.
type RecordPat struct {
	Envelope

	Path      *Path               `json:"path"`
	FieldList *RecordPatFieldList `json:"field_list"`
}

// RefPat is `&pat` or `&mut pat`.
type RefPat struct {
	Envelope

	Mut bool `json:"mut"`
	Pat Pat  `json:"pat"`
}

// RestPat is `..`.
type RestPat struct {
	Envelope
}

// SlicePat is `[a, .., b]`.
type SlicePat struct {
	Envelope

	Pats []Pat `json:"pats"`
}

// TuplePat is `(a, b)`.
type TuplePat struct {
	Envelope

	Fields []Pat `json:"fields"`
}

// TupleStructPat is `Path(a, b)`.
type TupleStructPat struct {
	Envelope

	Path   *Path `json:"path"`
	Fields []Pat `json:"fields"`
}

// WildcardPat is `_`.
type WildcardPat struct {
	Envelope
}

func (*BoxPat) Kind() Kind         { return KindBoxPat }
func (*ConstBlockPat) Kind() Kind  { return KindConstBlockPat }
func (*IdentPat) Kind() Kind       { return KindIdentPat }
func (*LiteralPat) Kind() Kind     { return KindLiteralPat }
func (*MacroPat) Kind() Kind       { return KindMacroPat }
func (*OrPat) Kind() Kind          { return KindOrPat }
func (*ParenPat) Kind() Kind       { return KindParenPat }
func (*PathPat) Kind() Kind        { return KindPathPat }
func (*RangePat) Kind() Kind       { return KindRangePat }
func (*RecordPat) Kind() Kind      { return KindRecordPat }
func (*RefPat) Kind() Kind         { return KindRefPat }
func (*RestPat) Kind() Kind        { return KindRestPat }
func (*SlicePat) Kind() Kind       { return KindSlicePat }
func (*TuplePat) Kind() Kind       { return KindTuplePat }
func (*TupleStructPat) Kind() Kind { return KindTupleStructPat }
func (*WildcardPat) Kind() Kind    { return KindWildcardPat }

func (*BoxPat) pat()         {}
func (*ConstBlockPat) pat()  {}
func (*IdentPat) pat()       {}
func (*LiteralPat) pat()     {}
func (*MacroPat) pat()       {}
func (*OrPat) pat()          {}
func (*ParenPat) pat()       {}
func (*PathPat) pat()        {}
func (*RangePat) pat()       {}
func (*RecordPat) pat()      {}
func (*RefPat) pat()         {}
func (*RestPat) pat()        {}
func (*SlicePat) pat()       {}
func (*TuplePat) pat()       {}
func (*TupleStructPat) pat() {}
func (*WildcardPat) pat()    {}
