package node

// ArrayType is `[T; N]`.
type ArrayType struct {
	Envelope

	Ty  Type `json:"ty"`
	Len Expr `json:"len"`
}

// DynTraitType is `dyn A + B`, or a bare trait object in older editions.
type DynTraitType struct {
	Envelope

	Bounds *TypeBoundList `json:"bounds"`
}

// FnPtrType is `unsafe extern "C" fn(A) -> B`.
type FnPtrType struct {
	Envelope

	Unsafe    bool       `json:"unsafe"`
	Abi       *Abi       `json:"abi"`
	ParamList *ParamList `json:"param_list"`
	RetType   *RetType   `json:"ret_type"`
}

// ForType is a type under a higher-ranked binder: `for<'a> fn(&'a u8)`.
type ForType struct {
	Envelope

	GenericParams *GenericParamList `json:"generic_params"`
	Ty            Type              `json:"ty"`
}

// ImplTraitType is `impl A + B`.
type ImplTraitType struct {
	Envelope

	Bounds *TypeBoundList `json:"bounds"`
}

// InferType is `_`.
type InferType struct {
	Envelope
}

// MacroType is a macro invocation in type position.
type MacroType struct {
	Envelope

	MacroCall *MacroCall `json:"macro_call"`
}

// NeverType is `!`.
type NeverType struct {
	Envelope
}

// ParenType is `(T)`.
type ParenType struct {
	Envelope

	Ty Type `json:"ty"`
}

// PathType is a named type, including `Fn(A) -> B` sugar.
type PathType struct {
	Envelope

	Path *Path `json:"path"`
}

// PtrType is `*const T` or `*mut T`.
type PtrType struct {
	Envelope

	Const bool `json:"const"`
	Mut   bool `json:"mut"`
	Ty    Type `json:"ty"`
}

// RefType is `&'a mut T`.
type RefType struct {
	Envelope

	Lifetime *Lifetime `json:"lifetime"`
	Mut      bool      `json:"mut"`
	Ty       Type      `json:"ty"`
}

// SliceType is `[T]`.
type SliceType struct {
	Envelope

	Ty Type `json:"ty"`
}

// TupleType is `(A, B)`. The unit type has no fields.
type TupleType struct {
	Envelope

	Fields []Type `json:"fields"`
}

func (*ArrayType) Kind() Kind     { return KindArrayType }
func (*DynTraitType) Kind() Kind  { return KindDynTraitType }
func (*FnPtrType) Kind() Kind     { return KindFnPtrType }
func (*ForType) Kind() Kind       { return KindForType }
func (*ImplTraitType) Kind() Kind { return KindImplTraitType }
func (*InferType) Kind() Kind     { return KindInferType }
func (*MacroType) Kind() Kind     { return KindMacroType }
func (*NeverType) Kind() Kind     { return KindNeverType }
func (*ParenType) Kind() Kind     { return KindParenType }
func (*PathType) Kind() Kind      { return KindPathType }
func (*PtrType) Kind() Kind       { return KindPtrType }
func (*RefType) Kind() Kind       { return KindRefType }
func (*SliceType) Kind() Kind     { return KindSliceType }
func (*TupleType) Kind() Kind     { return KindTupleType }

func (*ArrayType) typ()     {}
func (*DynTraitType) typ()  {}
func (*FnPtrType) typ()     {}
func (*ForType) typ()       {}
func (*ImplTraitType) typ() {}
func (*InferType) typ()     {}
func (*MacroType) typ()     {}
func (*NeverType) typ()     {}
func (*ParenType) typ()     {}
func (*PathType) typ()      {}
func (*PtrType) typ()       {}
func (*RefType) typ()       {}
func (*SliceType) typ()     {}
func (*TupleType) typ()     {}
