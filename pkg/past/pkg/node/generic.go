package node

// GenericArgList is `<A, 'a, N, Item = T>`.
type GenericArgList struct {
	Envelope

	Args []GenericArg `json:"args"`
}

// TypeArg is a type argument.
type TypeArg struct {
	Envelope

	Ty Type `json:"ty"`
}

// LifetimeArg is a lifetime argument.
type LifetimeArg struct {
	Envelope

	Lifetime *Lifetime `json:"lifetime"`
}

// ConstArg is a literal or block const argument.
type ConstArg struct {
	Envelope

	Expr Expr `json:"expr"`
}

// AssocTypeArg binds or constrains an associated type: `Item = T` or
// `Item: Bound`.
type AssocTypeArg struct {
	Envelope

	NameRef     *NameRef        `json:"name_ref"`
	GenericArgs *GenericArgList `json:"generic_args"`
	Ty          Type            `json:"ty"`
	Bounds      *TypeBoundList  `json:"bounds"`
}

// GenericParamList is `<'a, T: Bound, const N: usize>`.
type GenericParamList struct {
	Envelope

	Params []GenericParam `json:"params"`
}

// TypeParam declares a type parameter.
type TypeParam struct {
	Envelope

	Name    *Name          `json:"name"`
	Bounds  *TypeBoundList `json:"bounds"`
	Default Type           `json:"default"`
}

// LifetimeParam declares a lifetime parameter.
type LifetimeParam struct {
	Envelope

	Lifetime *Lifetime      `json:"lifetime"`
	Bounds   *TypeBoundList `json:"bounds"`
}

// ConstParam declares a const generic parameter.
type ConstParam struct {
	Envelope

	Name    *Name `json:"name"`
	Ty      Type  `json:"ty"`
	Default Expr  `json:"default"`
}

// WhereClause is `where T: A, 'a: 'b`. Unmappable predicates are kept
// as Problems.
type WhereClause struct {
	Envelope

	Preds    []*WherePred `json:"preds"`
	Problems []*Problem   `json:"problems"`
}

// WherePred is one predicate of a where clause. Exactly one of Ty and
// Lifetime is set.
type WherePred struct {
	Envelope

	ForLifetimes *GenericParamList `json:"for_lifetimes"`
	Ty           Type              `json:"ty"`
	Lifetime     *Lifetime         `json:"lifetime"`
	Bounds       *TypeBoundList    `json:"bounds"`
}

// TypeBoundList is `A + B + 'a`.
type TypeBoundList struct {
	Envelope

	Bounds []*TypeBound `json:"bounds"`
}

// TypeBound is a single bound. `?Sized` sets Question, `for<'a> Fn(&'a)`
// sets ForLifetimes and `use<'a, T>` sets UseArgs.
type TypeBound struct {
	Envelope

	Question     bool                 `json:"question"`
	ForLifetimes *GenericParamList    `json:"for_lifetimes"`
	Lifetime     *Lifetime            `json:"lifetime"`
	Ty           Type                 `json:"ty"`
	UseArgs      []UseBoundGenericArg `json:"use_args"`
}

func (*GenericArgList) Kind() Kind   { return KindGenericArgList }
func (*TypeArg) Kind() Kind          { return KindTypeArg }
func (*LifetimeArg) Kind() Kind      { return KindLifetimeArg }
func (*ConstArg) Kind() Kind         { return KindConstArg }
func (*AssocTypeArg) Kind() Kind     { return KindAssocTypeArg }
func (*GenericParamList) Kind() Kind { return KindGenericParamList }
func (*TypeParam) Kind() Kind        { return KindTypeParam }
func (*LifetimeParam) Kind() Kind    { return KindLifetimeParam }
func (*ConstParam) Kind() Kind       { return KindConstParam }
func (*WhereClause) Kind() Kind      { return KindWhereClause }
func (*WherePred) Kind() Kind        { return KindWherePred }
func (*TypeBoundList) Kind() Kind    { return KindTypeBoundList }
func (*TypeBound) Kind() Kind        { return KindTypeBound }

func (*TypeArg) genericArg()      {}
func (*LifetimeArg) genericArg()  {}
func (*ConstArg) genericArg()     {}
func (*AssocTypeArg) genericArg() {}

func (*TypeParam) genericParam()     {}
func (*LifetimeParam) genericParam() {}
func (*ConstParam) genericParam()    {}
