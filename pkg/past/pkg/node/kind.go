package node

import "slices"

// Kind names the concrete variant of a portable node. It is emitted as the
// "kind" member of every encoded node.
type Kind string

// Item kinds.
const (
	KindFunction    Kind = "Function"
	KindStruct      Kind = "Struct"
	KindEnum        Kind = "Enum"
	KindUnion       Kind = "Union"
	KindTrait       Kind = "Trait"
	KindImpl        Kind = "Impl"
	KindModule      Kind = "Module"
	KindUse         Kind = "Use"
	KindConst       Kind = "Const"
	KindStatic      Kind = "Static"
	KindTypeAlias   Kind = "TypeAlias"
	KindMacroCall   Kind = "MacroCall"
	KindMacroDef    Kind = "MacroDef"
	KindMacroRules  Kind = "MacroRules"
	KindExternBlock Kind = "ExternBlock"
	KindExternCrate Kind = "ExternCrate"
	KindAsmExpr     Kind = "AsmExpr"
)

// Expression kinds.
const (
	KindArrayExpr      Kind = "ArrayExpr"
	KindAwaitExpr      Kind = "AwaitExpr"
	KindBinExpr        Kind = "BinExpr"
	KindBlockExpr      Kind = "BlockExpr"
	KindBreakExpr      Kind = "BreakExpr"
	KindCallExpr       Kind = "CallExpr"
	KindCastExpr       Kind = "CastExpr"
	KindClosureExpr    Kind = "ClosureExpr"
	KindContinueExpr   Kind = "ContinueExpr"
	KindFieldExpr      Kind = "FieldExpr"
	KindForExpr        Kind = "ForExpr"
	KindIfExpr         Kind = "IfExpr"
	KindIndexExpr      Kind = "IndexExpr"
	KindLetExpr        Kind = "LetExpr"
	KindLiteral        Kind = "Literal"
	KindLoopExpr       Kind = "LoopExpr"
	KindMacroExpr      Kind = "MacroExpr"
	KindMatchExpr      Kind = "MatchExpr"
	KindMethodCallExpr Kind = "MethodCallExpr"
	KindParenExpr      Kind = "ParenExpr"
	KindPathExpr       Kind = "PathExpr"
	KindPrefixExpr     Kind = "PrefixExpr"
	KindRangeExpr      Kind = "RangeExpr"
	KindRecordExpr     Kind = "RecordExpr"
	KindRefExpr        Kind = "RefExpr"
	KindReturnExpr     Kind = "ReturnExpr"
	KindTryExpr        Kind = "TryExpr"
	KindTupleExpr      Kind = "TupleExpr"
	KindUnderscoreExpr Kind = "UnderscoreExpr"
	KindWhileExpr      Kind = "WhileExpr"
	KindYieldExpr      Kind = "YieldExpr"
)

// Statement kinds. Every item kind is a statement as well.
const (
	KindExprStmt Kind = "ExprStmt"
	KindLetStmt  Kind = "LetStmt"
)

// Pattern kinds.
const (
	KindBoxPat         Kind = "BoxPat"
	KindConstBlockPat  Kind = "ConstBlockPat"
	KindIdentPat       Kind = "IdentPat"
	KindLiteralPat     Kind = "LiteralPat"
	KindMacroPat       Kind = "MacroPat"
	KindOrPat          Kind = "OrPat"
	KindParenPat       Kind = "ParenPat"
	KindPathPat        Kind = "PathPat"
	KindRangePat       Kind = "RangePat"
	KindRecordPat      Kind = "RecordPat"
	KindRefPat         Kind = "RefPat"
	KindRestPat        Kind = "RestPat"
	KindSlicePat       Kind = "SlicePat"
	KindTuplePat       Kind = "TuplePat"
	KindTupleStructPat Kind = "TupleStructPat"
	KindWildcardPat    Kind = "WildcardPat"
)

// Type kinds.
const (
	KindArrayType     Kind = "ArrayType"
	KindDynTraitType  Kind = "DynTraitType"
	KindFnPtrType     Kind = "FnPtrType"
	KindForType       Kind = "ForType"
	KindImplTraitType Kind = "ImplTraitType"
	KindInferType     Kind = "InferType"
	KindMacroType     Kind = "MacroType"
	KindNeverType     Kind = "NeverType"
	KindParenType     Kind = "ParenType"
	KindPathType      Kind = "PathType"
	KindPtrType       Kind = "PtrType"
	KindRefType       Kind = "RefType"
	KindSliceType     Kind = "SliceType"
	KindTupleType     Kind = "TupleType"
)

// Generic argument and parameter kinds.
const (
	KindAssocTypeArg     Kind = "AssocTypeArg"
	KindConstArg         Kind = "ConstArg"
	KindLifetimeArg      Kind = "LifetimeArg"
	KindTypeArg          Kind = "TypeArg"
	KindConstParam       Kind = "ConstParam"
	KindLifetimeParam    Kind = "LifetimeParam"
	KindTypeParam        Kind = "TypeParam"
	KindGenericArgList   Kind = "GenericArgList"
	KindGenericParamList Kind = "GenericParamList"
	KindWhereClause      Kind = "WhereClause"
	KindWherePred        Kind = "WherePred"
	KindTypeBound        Kind = "TypeBound"
	KindTypeBoundList    Kind = "TypeBoundList"
)

// Inline assembly kinds.
const (
	KindAsmClobberAbi   Kind = "AsmClobberAbi"
	KindAsmConst        Kind = "AsmConst"
	KindAsmLabel        Kind = "AsmLabel"
	KindAsmOperandNamed Kind = "AsmOperandNamed"
	KindAsmOptions      Kind = "AsmOptions"
	KindAsmRegOperand   Kind = "AsmRegOperand"
	KindAsmSym          Kind = "AsmSym"
)

// Supporting record kinds.
const (
	KindAbi                 Kind = "Abi"
	KindAssocItemList       Kind = "AssocItemList"
	KindAttr                Kind = "Attr"
	KindExternItemList      Kind = "ExternItemList"
	KindItemList            Kind = "ItemList"
	KindLabel               Kind = "Label"
	KindLifetime            Kind = "Lifetime"
	KindMatchArm            Kind = "MatchArm"
	KindMatchArmList        Kind = "MatchArmList"
	KindMatchGuard          Kind = "MatchGuard"
	KindName                Kind = "Name"
	KindNameRef             Kind = "NameRef"
	KindParam               Kind = "Param"
	KindParamList           Kind = "ParamList"
	KindPath                Kind = "Path"
	KindPathSegment         Kind = "PathSegment"
	KindProblem             Kind = "Problem"
	KindRecordExprField     Kind = "RecordExprField"
	KindRecordExprFieldList Kind = "RecordExprFieldList"
	KindRecordField         Kind = "RecordField"
	KindRecordFieldList     Kind = "RecordFieldList"
	KindRecordPatField      Kind = "RecordPatField"
	KindRecordPatFieldList  Kind = "RecordPatFieldList"
	KindRename              Kind = "Rename"
	KindRetType             Kind = "RetType"
	KindSelfParam           Kind = "SelfParam"
	KindTupleField          Kind = "TupleField"
	KindTupleFieldList      Kind = "TupleFieldList"
	KindUseTree             Kind = "UseTree"
	KindUseTreeList         Kind = "UseTreeList"
	KindVariant             Kind = "Variant"
	KindVariantList         Kind = "VariantList"
	KindVisibility          Kind = "Visibility"
)

var allKinds = []Kind{
	KindFunction, KindStruct, KindEnum, KindUnion, KindTrait, KindImpl, KindModule, KindUse,
	KindConst, KindStatic, KindTypeAlias, KindMacroCall, KindMacroDef, KindMacroRules,
	KindExternBlock, KindExternCrate, KindAsmExpr,

	KindArrayExpr, KindAwaitExpr, KindBinExpr, KindBlockExpr, KindBreakExpr, KindCallExpr,
	KindCastExpr, KindClosureExpr, KindContinueExpr, KindFieldExpr, KindForExpr, KindIfExpr,
	KindIndexExpr, KindLetExpr, KindLiteral, KindLoopExpr, KindMacroExpr, KindMatchExpr,
	KindMethodCallExpr, KindParenExpr, KindPathExpr, KindPrefixExpr, KindRangeExpr,
	KindRecordExpr, KindRefExpr, KindReturnExpr, KindTryExpr, KindTupleExpr,
	KindUnderscoreExpr, KindWhileExpr, KindYieldExpr,

	KindExprStmt, KindLetStmt,

	KindBoxPat, KindConstBlockPat, KindIdentPat, KindLiteralPat, KindMacroPat, KindOrPat,
	KindParenPat, KindPathPat, KindRangePat, KindRecordPat, KindRefPat, KindRestPat,
	KindSlicePat, KindTuplePat, KindTupleStructPat, KindWildcardPat,

	KindArrayType, KindDynTraitType, KindFnPtrType, KindForType, KindImplTraitType,
	KindInferType, KindMacroType, KindNeverType, KindParenType, KindPathType, KindPtrType,
	KindRefType, KindSliceType, KindTupleType,

	KindAssocTypeArg, KindConstArg, KindLifetimeArg, KindTypeArg, KindConstParam,
	KindLifetimeParam, KindTypeParam, KindGenericArgList, KindGenericParamList,
	KindWhereClause, KindWherePred, KindTypeBound, KindTypeBoundList,

	KindAsmClobberAbi, KindAsmConst, KindAsmLabel, KindAsmOperandNamed, KindAsmOptions,
	KindAsmRegOperand, KindAsmSym,

	KindAbi, KindAssocItemList, KindAttr, KindExternItemList, KindItemList, KindLabel,
	KindLifetime, KindMatchArm, KindMatchArmList, KindMatchGuard, KindName, KindNameRef,
	KindParam, KindParamList, KindPath, KindPathSegment, KindProblem, KindRecordExprField,
	KindRecordExprFieldList, KindRecordField, KindRecordFieldList, KindRecordPatField,
	KindRecordPatFieldList, KindRename, KindRetType, KindSelfParam, KindTupleField,
	KindTupleFieldList, KindUseTree, KindUseTreeList, KindVariant, KindVariantList,
	KindVisibility,
}

// AllKinds returns every kind in lexical order.
func AllKinds() []Kind {
	out := slices.Clone(allKinds)
	slices.Sort(out)

	return out
}
