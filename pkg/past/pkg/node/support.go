package node

// Name is a binding occurrence of an identifier.
type Name struct {
	Envelope
}

// NameRef is a use occurrence of an identifier, a tuple index, or one of
// the path keywords self, super and crate.
type NameRef struct {
	Envelope
}

// Lifetime is a lifetime or loop label reference such as 'a.
type Lifetime struct {
	Envelope
}

// Label names a loop or block: `'outer:`.
type Label struct {
	Envelope

	Lifetime *Lifetime `json:"lifetime"`
}

// Visibility is a `pub` modifier, optionally restricted to a path.
type Visibility struct {
	Envelope

	Path *Path `json:"path"`
}

// Attr is an outer `#[..]` or inner `#![..]` attribute.
type Attr struct {
	Envelope

	Inner bool  `json:"inner"`
	Path  *Path `json:"path"`
	// Input is the delimited token tree or `= value` text after the path.
	Input *string `json:"input"`
}

// Path is a possibly qualified, possibly global path.
type Path struct {
	Envelope

	Global   bool           `json:"global"`
	Segments []*PathSegment `json:"segments"`
}

// PathSegment is one `::` separated component of a path. A qualified
// segment `<T as Trait>` carries Ty and Trait instead of NameRef.
type PathSegment struct {
	Envelope

	NameRef     *NameRef        `json:"name_ref"`
	GenericArgs *GenericArgList `json:"generic_args"`
	ParamList   *ParamList      `json:"param_list"`
	RetType     *RetType        `json:"ret_type"`
	Ty          Type            `json:"ty"`
	Trait       Type            `json:"trait"`
}

// Rename is the `as name` or `as _` suffix of a use tree or extern crate.
type Rename struct {
	Envelope

	Name       *Name `json:"name"`
	Underscore bool  `json:"underscore"`
}

// UseTree is one tree of a use declaration.
type UseTree struct {
	Envelope

	Path        *Path        `json:"path"`
	Star        bool         `json:"star"`
	UseTreeList *UseTreeList `json:"use_tree_list"`
	Rename      *Rename      `json:"rename"`
}

// UseTreeList is a braced group of use trees.
type UseTreeList struct {
	Envelope

	Trees []*UseTree `json:"trees"`
}

// ParamList holds a function, closure or function pointer parameter list.
type ParamList struct {
	Envelope

	SelfParam *SelfParam `json:"self_param"`
	Params    []*Param   `json:"params"`
}

// Param is one parameter. Function pointer parameters may lack a pattern
// and closure parameters may lack a type.
type Param struct {
	Envelope

	Attrs    []*Attr `json:"attrs"`
	Pat      Pat     `json:"pat"`
	Ty       Type    `json:"ty"`
	Variadic bool    `json:"variadic"`
}

// SelfParam is the receiver of a method.
type SelfParam struct {
	Envelope

	Amp      bool      `json:"amp"`
	Lifetime *Lifetime `json:"lifetime"`
	Mut      bool      `json:"mut"`
	Name     *Name     `json:"name"`
	Ty       Type      `json:"ty"`
}

// RetType is the `-> T` part of a signature.
type RetType struct {
	Envelope

	Ty Type `json:"ty"`
}

// RecordFieldList is a braced list of named fields. Members that do not
// map to a field are kept as Problems.
type RecordFieldList struct {
	Envelope

	Fields   []*RecordField `json:"fields"`
	Problems []*Problem     `json:"problems"`
}

// RecordField is a named field declaration.
type RecordField struct {
	Envelope

	Attrs      []*Attr     `json:"attrs"`
	Visibility *Visibility `json:"visibility"`
	Name       *Name       `json:"name"`
	Ty         Type        `json:"ty"`
}

// TupleFieldList is a parenthesized list of positional fields.
type TupleFieldList struct {
	Envelope

	Fields []*TupleField `json:"fields"`
}

// TupleField is a positional field declaration.
type TupleField struct {
	Envelope

	Attrs      []*Attr     `json:"attrs"`
	Visibility *Visibility `json:"visibility"`
	Ty         Type        `json:"ty"`
}

// VariantList is the body of an enum. Unmappable members are kept as
// Problems.
type VariantList struct {
	Envelope

	Variants []*Variant `json:"variants"`
	Problems []*Problem `json:"problems"`
}

// Variant is one enum variant. A unit variant has no field list.
type Variant struct {
	Envelope

	Attrs        []*Attr     `json:"attrs"`
	Visibility   *Visibility `json:"visibility"`
	Name         *Name       `json:"name"`
	FieldList    FieldList   `json:"field_list"`
	Discriminant Expr        `json:"discriminant"`
}

// ItemList is the inline body of a module.
type ItemList struct {
	Envelope

	Items []Item `json:"items"`
}

// AssocItemList is the body of a trait or impl.
type AssocItemList struct {
	Envelope

	Items []AssocItem `json:"items"`
}

// ExternItemList is the body of an extern block.
type ExternItemList struct {
	Envelope

	Items []ExternItem `json:"items"`
}

// MatchArmList is the braced body of a match expression. Unmappable
// members are kept as Problems.
type MatchArmList struct {
	Envelope

	Arms     []*MatchArm `json:"arms"`
	Problems []*Problem  `json:"problems"`
}

// MatchArm is `pat if guard => expr`.
type MatchArm struct {
	Envelope

	Attrs []*Attr     `json:"attrs"`
	Pat   Pat         `json:"pat"`
	Guard *MatchGuard `json:"guard"`
	Expr  Expr        `json:"expr"`
}

// MatchGuard is the `if cond` part of a match arm.
type MatchGuard struct {
	Envelope

	Condition Expr `json:"condition"`
}

// RecordExprFieldList is the braced body of a struct expression.
// Unmappable members are kept as Problems.
type RecordExprFieldList struct {
	Envelope

	Fields   []*RecordExprField `json:"fields"`
	Problems []*Problem         `json:"problems"`
	// Spread is the base expression of `..base`.
	Spread Expr `json:"spread"`
}

// RecordExprField is `name: expr` or the shorthand `name`.
type RecordExprField struct {
	Envelope

	NameRef *NameRef `json:"name_ref"`
	Expr    Expr     `json:"expr"`
}

// RecordPatFieldList is the braced body of a struct pattern. Unmappable
// members are kept as Problems.
type RecordPatFieldList struct {
	Envelope

	Fields   []*RecordPatField `json:"fields"`
	Problems []*Problem        `json:"problems"`
	Rest     *RestPat          `json:"rest"`
}

// RecordPatField is `name: pat`. In the shorthand form NameRef is nil and
// Pat is the binding.
type RecordPatField struct {
	Envelope

	NameRef *NameRef `json:"name_ref"`
	Pat     Pat      `json:"pat"`
}

func (*Name) Kind() Kind                { return KindName }
func (*NameRef) Kind() Kind             { return KindNameRef }
func (*Lifetime) Kind() Kind            { return KindLifetime }
func (*Label) Kind() Kind               { return KindLabel }
func (*Visibility) Kind() Kind          { return KindVisibility }
func (*Attr) Kind() Kind                { return KindAttr }
func (*Path) Kind() Kind                { return KindPath }
func (*PathSegment) Kind() Kind         { return KindPathSegment }
func (*Rename) Kind() Kind              { return KindRename }
func (*UseTree) Kind() Kind             { return KindUseTree }
func (*UseTreeList) Kind() Kind         { return KindUseTreeList }
func (*ParamList) Kind() Kind           { return KindParamList }
func (*Param) Kind() Kind               { return KindParam }
func (*SelfParam) Kind() Kind           { return KindSelfParam }
func (*RetType) Kind() Kind             { return KindRetType }
func (*RecordFieldList) Kind() Kind     { return KindRecordFieldList }
func (*RecordField) Kind() Kind         { return KindRecordField }
func (*TupleFieldList) Kind() Kind      { return KindTupleFieldList }
func (*TupleField) Kind() Kind          { return KindTupleField }
func (*VariantList) Kind() Kind         { return KindVariantList }
func (*Variant) Kind() Kind             { return KindVariant }
func (*ItemList) Kind() Kind            { return KindItemList }
func (*AssocItemList) Kind() Kind       { return KindAssocItemList }
func (*ExternItemList) Kind() Kind      { return KindExternItemList }
func (*MatchArmList) Kind() Kind        { return KindMatchArmList }
func (*MatchArm) Kind() Kind            { return KindMatchArm }
func (*MatchGuard) Kind() Kind          { return KindMatchGuard }
func (*RecordExprFieldList) Kind() Kind { return KindRecordExprFieldList }
func (*RecordExprField) Kind() Kind     { return KindRecordExprField }
func (*RecordPatFieldList) Kind() Kind  { return KindRecordPatFieldList }
func (*RecordPatField) Kind() Kind      { return KindRecordPatField }

func (*RecordFieldList) fieldList() {}
func (*TupleFieldList) fieldList()  {}

func (*Variant) variantDef() {}

func (*Lifetime) useBoundGenericArg() {}
func (*NameRef) useBoundGenericArg()  {}
