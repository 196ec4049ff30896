package node

// Every node encodes through ToMap, so json.Marshal of a node or of a slice
// of nodes carries the kind of each one.

func (n *Abi) MarshalJSON() ([]byte, error)                 { return Marshal(n) }
func (n *ArrayExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *ArrayType) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *AsmClobberAbi) MarshalJSON() ([]byte, error)       { return Marshal(n) }
func (n *AsmConst) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *AsmExpr) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *AsmLabel) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *AsmOperandNamed) MarshalJSON() ([]byte, error)     { return Marshal(n) }
func (n *AsmOptions) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *AsmRegOperand) MarshalJSON() ([]byte, error)       { return Marshal(n) }
func (n *AsmSym) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *AssocItemList) MarshalJSON() ([]byte, error)       { return Marshal(n) }
func (n *AssocTypeArg) MarshalJSON() ([]byte, error)        { return Marshal(n) }
func (n *Attr) MarshalJSON() ([]byte, error)                { return Marshal(n) }
func (n *AwaitExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *BinExpr) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *BlockExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *BoxPat) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *BreakExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *CallExpr) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *CastExpr) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *ClosureExpr) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *Const) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *ConstArg) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *ConstBlockPat) MarshalJSON() ([]byte, error)       { return Marshal(n) }
func (n *ConstParam) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *ContinueExpr) MarshalJSON() ([]byte, error)        { return Marshal(n) }
func (n *DynTraitType) MarshalJSON() ([]byte, error)        { return Marshal(n) }
func (n *Enum) MarshalJSON() ([]byte, error)                { return Marshal(n) }
func (n *ExprStmt) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *ExternBlock) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *ExternCrate) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *ExternItemList) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *FieldExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *FnPtrType) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *ForExpr) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *ForType) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *Function) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *GenericArgList) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *GenericParamList) MarshalJSON() ([]byte, error)    { return Marshal(n) }
func (n *IdentPat) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *IfExpr) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *Impl) MarshalJSON() ([]byte, error)                { return Marshal(n) }
func (n *ImplTraitType) MarshalJSON() ([]byte, error)       { return Marshal(n) }
func (n *IndexExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *InferType) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *ItemList) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *Label) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *LetExpr) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *LetStmt) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *Lifetime) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *LifetimeArg) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *LifetimeParam) MarshalJSON() ([]byte, error)       { return Marshal(n) }
func (n *Literal) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *LiteralPat) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *LoopExpr) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *MacroCall) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *MacroDef) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *MacroExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *MacroPat) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *MacroRules) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *MacroType) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *MatchArm) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *MatchArmList) MarshalJSON() ([]byte, error)        { return Marshal(n) }
func (n *MatchExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *MatchGuard) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *MethodCallExpr) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *Module) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *Name) MarshalJSON() ([]byte, error)                { return Marshal(n) }
func (n *NameRef) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *NeverType) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *OrPat) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *Param) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *ParamList) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *ParenExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *ParenPat) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *ParenType) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *Path) MarshalJSON() ([]byte, error)                { return Marshal(n) }
func (n *PathExpr) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *PathPat) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *PathSegment) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *PathType) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *PrefixExpr) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *Problem) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *PtrType) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *RangeExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *RangePat) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *RecordExpr) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *RecordExprField) MarshalJSON() ([]byte, error)     { return Marshal(n) }
func (n *RecordExprFieldList) MarshalJSON() ([]byte, error) { return Marshal(n) }
func (n *RecordField) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *RecordFieldList) MarshalJSON() ([]byte, error)     { return Marshal(n) }
func (n *RecordPat) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *RecordPatField) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *RecordPatFieldList) MarshalJSON() ([]byte, error)  { return Marshal(n) }
func (n *RefExpr) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *RefPat) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *RefType) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *Rename) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *RestPat) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *RetType) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *ReturnExpr) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *SelfParam) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *SlicePat) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *SliceType) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *Static) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *Struct) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *Trait) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *TryExpr) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *TupleExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *TupleField) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *TupleFieldList) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *TuplePat) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *TupleStructPat) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *TupleType) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *TypeAlias) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *TypeArg) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *TypeBound) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *TypeBoundList) MarshalJSON() ([]byte, error)       { return Marshal(n) }
func (n *TypeParam) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *UnderscoreExpr) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *Union) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *Use) MarshalJSON() ([]byte, error)                 { return Marshal(n) }
func (n *UseTree) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *UseTreeList) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *Variant) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *VariantList) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *Visibility) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *WhereClause) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *WherePred) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *WhileExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *WildcardPat) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *YieldExpr) MarshalJSON() ([]byte, error)           { return Marshal(n) }
