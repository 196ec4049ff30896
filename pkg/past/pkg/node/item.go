package node

// Function is a `fn` item, with or without a body.
type Function struct {
	Envelope

	Attrs         []*Attr           `json:"attrs"`
	Visibility    *Visibility       `json:"visibility"`
	Default       bool              `json:"default"`
	Const         bool              `json:"const"`
	Async         bool              `json:"async"`
	Unsafe        bool              `json:"unsafe"`
	Abi           *Abi              `json:"abi"`
	Name          *Name             `json:"name"`
	GenericParams *GenericParamList `json:"generic_params"`
	ParamList     *ParamList        `json:"param_list"`
	RetType       *RetType          `json:"ret_type"`
	WhereClause   *WhereClause      `json:"where_clause"`
	Body          *BlockExpr        `json:"body"`
}

// Struct is a `struct` item. A unit struct has no field list.
type Struct struct {
	Envelope

	Attrs         []*Attr           `json:"attrs"`
	Visibility    *Visibility       `json:"visibility"`
	Name          *Name             `json:"name"`
	GenericParams *GenericParamList `json:"generic_params"`
	WhereClause   *WhereClause      `json:"where_clause"`
	FieldList     FieldList         `json:"field_list"`
}

// Enum is an `enum` item.
type Enum struct {
	Envelope

	Attrs         []*Attr           `json:"attrs"`
	Visibility    *Visibility       `json:"visibility"`
	Name          *Name             `json:"name"`
	GenericParams *GenericParamList `json:"generic_params"`
	WhereClause   *WhereClause      `json:"where_clause"`
	VariantList   *VariantList      `json:"variant_list"`
}

// Union is a `union` item.
type Union struct {
	Envelope

	Attrs           []*Attr           `json:"attrs"`
	Visibility      *Visibility       `json:"visibility"`
	Name            *Name             `json:"name"`
	GenericParams   *GenericParamList `json:"generic_params"`
	WhereClause     *WhereClause      `json:"where_clause"`
	RecordFieldList *RecordFieldList  `json:"record_field_list"`
}

// Trait is a `trait` item.
type Trait struct {
	Envelope

	Attrs         []*Attr           `json:"attrs"`
	Visibility    *Visibility       `json:"visibility"`
	Unsafe        bool              `json:"unsafe"`
	Auto          bool              `json:"auto"`
	Name          *Name             `json:"name"`
	GenericParams *GenericParamList `json:"generic_params"`
	Bounds        *TypeBoundList    `json:"bounds"`
	WhereClause   *WhereClause      `json:"where_clause"`
	AssocItemList *AssocItemList    `json:"assoc_item_list"`
}

// Impl is an inherent or trait `impl` block.
type Impl struct {
	Envelope

	Attrs         []*Attr           `json:"attrs"`
	Default       bool              `json:"default"`
	Unsafe        bool              `json:"unsafe"`
	GenericParams *GenericParamList `json:"generic_params"`
	Negative      bool              `json:"negative"`
	Trait         Type              `json:"trait"`
	SelfTy        Type              `json:"self_ty"`
	WhereClause   *WhereClause      `json:"where_clause"`
	AssocItemList *AssocItemList    `json:"assoc_item_list"`
}

// Module is a `mod` item. An out-of-line module has no item list.
type Module struct {
	Envelope

	Attrs      []*Attr     `json:"attrs"`
	Visibility *Visibility `json:"visibility"`
	Name       *Name       `json:"name"`
	ItemList   *ItemList   `json:"item_list"`
}

// Use is a `use` declaration.
type Use struct {
	Envelope

	Attrs      []*Attr     `json:"attrs"`
	Visibility *Visibility `json:"visibility"`
	UseTree    *UseTree    `json:"use_tree"`
}

// Const is a `const` item. Name is nil for `const _`.
type Const struct {
	Envelope

	Attrs      []*Attr     `json:"attrs"`
	Visibility *Visibility `json:"visibility"`
	Name       *Name       `json:"name"`
	Ty         Type        `json:"ty"`
	Body       Expr        `json:"body"`
}

// Static is a `static` item.
type Static struct {
	Envelope

	Attrs      []*Attr     `json:"attrs"`
	Visibility *Visibility `json:"visibility"`
	Mut        bool        `json:"mut"`
	Name       *Name       `json:"name"`
	Ty         Type        `json:"ty"`
	Body       Expr        `json:"body"`
}

// TypeAlias is a `type` item, including associated types in traits.
type TypeAlias struct {
	Envelope

	Attrs         []*Attr           `json:"attrs"`
	Visibility    *Visibility       `json:"visibility"`
	Name          *Name             `json:"name"`
	GenericParams *GenericParamList `json:"generic_params"`
	Bounds        *TypeBoundList    `json:"bounds"`
	WhereClause   *WhereClause      `json:"where_clause"`
	Ty            Type              `json:"ty"`
}

// MacroCall is a macro invocation. The token tree is kept verbatim.
type MacroCall struct {
	Envelope

	Attrs     []*Attr `json:"attrs"`
	Path      *Path   `json:"path"`
	TokenTree string  `json:"token_tree"`
}

// MacroRules is a `macro_rules!` definition.
type MacroRules struct {
	Envelope

	Attrs      []*Attr     `json:"attrs"`
	Visibility *Visibility `json:"visibility"`
	Name       *Name       `json:"name"`
	TokenTree  string      `json:"token_tree"`
}

// MacroDef is a declarative macro 2.0 definition (`macro name(..) {..}`).
type MacroDef struct {
	Envelope

	Attrs      []*Attr     `json:"attrs"`
	Visibility *Visibility `json:"visibility"`
	Name       *Name       `json:"name"`
	Args       *string     `json:"args"`
	Body       string      `json:"body"`
}

// ExternBlock is an `extern "abi" { .. }` block.
type ExternBlock struct {
	Envelope

	Attrs          []*Attr         `json:"attrs"`
	Unsafe         bool            `json:"unsafe"`
	Abi            *Abi            `json:"abi"`
	ExternItemList *ExternItemList `json:"extern_item_list"`
}

// ExternCrate is an `extern crate` declaration.
type ExternCrate struct {
	Envelope

	Attrs      []*Attr     `json:"attrs"`
	Visibility *Visibility `json:"visibility"`
	NameRef    *NameRef    `json:"name_ref"`
	Rename     *Rename     `json:"rename"`
}

// AsmExpr is an `asm!`, `global_asm!` or `naked_asm!` invocation. At item
// level it is a global assembly block.
type AsmExpr struct {
	Envelope

	Attrs []*Attr `json:"attrs"`
	// Macro is the invoked macro name without the bang.
	Macro    string     `json:"macro"`
	Template []Expr     `json:"template"`
	Pieces   []AsmPiece `json:"pieces"`
}

func (*Function) Kind() Kind    { return KindFunction }
func (*Struct) Kind() Kind      { return KindStruct }
func (*Enum) Kind() Kind        { return KindEnum }
func (*Union) Kind() Kind       { return KindUnion }
func (*Trait) Kind() Kind       { return KindTrait }
func (*Impl) Kind() Kind        { return KindImpl }
func (*Module) Kind() Kind      { return KindModule }
func (*Use) Kind() Kind         { return KindUse }
func (*Const) Kind() Kind       { return KindConst }
func (*Static) Kind() Kind      { return KindStatic }
func (*TypeAlias) Kind() Kind   { return KindTypeAlias }
func (*MacroCall) Kind() Kind   { return KindMacroCall }
func (*MacroRules) Kind() Kind  { return KindMacroRules }
func (*MacroDef) Kind() Kind    { return KindMacroDef }
func (*ExternBlock) Kind() Kind { return KindExternBlock }
func (*ExternCrate) Kind() Kind { return KindExternCrate }
func (*AsmExpr) Kind() Kind     { return KindAsmExpr }

func (*Function) item()    {}
func (*Struct) item()      {}
func (*Enum) item()        {}
func (*Union) item()       {}
func (*Trait) item()       {}
func (*Impl) item()        {}
func (*Module) item()      {}
func (*Use) item()         {}
func (*Const) item()       {}
func (*Static) item()      {}
func (*TypeAlias) item()   {}
func (*MacroCall) item()   {}
func (*MacroRules) item()  {}
func (*MacroDef) item()    {}
func (*ExternBlock) item() {}
func (*ExternCrate) item() {}
func (*AsmExpr) item()     {}

func (*Function) stmt()    {}
func (*Struct) stmt()      {}
func (*Enum) stmt()        {}
func (*Union) stmt()       {}
func (*Trait) stmt()       {}
func (*Impl) stmt()        {}
func (*Module) stmt()      {}
func (*Use) stmt()         {}
func (*Const) stmt()       {}
func (*Static) stmt()      {}
func (*TypeAlias) stmt()   {}
func (*MacroCall) stmt()   {}
func (*MacroRules) stmt()  {}
func (*MacroDef) stmt()    {}
func (*ExternBlock) stmt() {}
func (*ExternCrate) stmt() {}
func (*AsmExpr) stmt()     {}

func (*Function) assocItem()  {}
func (*Const) assocItem()     {}
func (*TypeAlias) assocItem() {}
func (*MacroCall) assocItem() {}

func (*Function) externItem()  {}
func (*Static) externItem()    {}
func (*TypeAlias) externItem() {}
func (*MacroCall) externItem() {}

func (*Struct) adt() {}
func (*Enum) adt()   {}
func (*Union) adt()  {}

func (*Struct) variantDef() {}
func (*Union) variantDef()  {}
