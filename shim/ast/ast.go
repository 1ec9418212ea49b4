// Package ast re-exports the pieces of typescript-go's internal ast package
// needed outside the compiler module.
package ast

import (
	"github.com/microsoft/typescript-go/internal/ast"
)

type (
	Kind                    = ast.Kind
	Node                    = ast.Node
	NodeList                = ast.NodeList
	NodeFlags               = ast.NodeFlags
	NodeFactory             = ast.NodeFactory
	ModifierList            = ast.ModifierList
	ModifierFlags           = ast.ModifierFlags
	SourceFile              = ast.SourceFile
	Diagnostic              = ast.Diagnostic
	CommentRange            = ast.CommentRange
	Visitor                 = ast.Visitor
	HeritageClause          = ast.HeritageClause
	ModuleDeclaration       = ast.ModuleDeclaration
	VariableDeclarationList = ast.VariableDeclarationList
)

var (
	IsDecorator                        = ast.IsDecorator
	IsComputedPropertyName             = ast.IsComputedPropertyName
	IsIdentifier                       = ast.IsIdentifier
	IsPrivateIdentifier                = ast.IsPrivateIdentifier
	IsStringLiteral                    = ast.IsStringLiteral
	IsModuleDeclaration                = ast.IsModuleDeclaration
	IsFunctionTypeNode                 = ast.IsFunctionTypeNode
	IsThisIdentifier                   = ast.IsThisIdentifier
	IsQualifiedName                    = ast.IsQualifiedName
	IsExpressionStatement              = ast.IsExpressionStatement
	IsGlobalScopeAugmentation          = ast.IsGlobalScopeAugmentation
	IsAssignmentOperator               = ast.IsAssignmentOperator
	IsLogicalOrCoalescingBinaryOperator = ast.IsLogicalOrCoalescingBinaryOperator
	IsTokenKind                        = ast.IsTokenKind
	IsClassDeclaration                 = ast.IsClassDeclaration
	IsPrefixUnaryExpression            = ast.IsPrefixUnaryExpression
	IsCaseClause                       = ast.IsCaseClause
)

const (
	NodeFlagsNone       = ast.NodeFlagsNone
	NodeFlagsLet        = ast.NodeFlagsLet
	NodeFlagsConst      = ast.NodeFlagsConst
	NodeFlagsUsing      = ast.NodeFlagsUsing
	NodeFlagsAwaitUsing = ast.NodeFlagsAwaitUsing
	NodeFlagsReparsed   = ast.NodeFlagsReparsed

	ModifierFlagsModifier = ast.ModifierFlagsModifier
)

const (
	KindUnknown                     = ast.KindUnknown
	KindEndOfFile                   = ast.KindEndOfFile
	KindSingleLineCommentTrivia     = ast.KindSingleLineCommentTrivia
	KindMultiLineCommentTrivia      = ast.KindMultiLineCommentTrivia
	KindNumericLiteral              = ast.KindNumericLiteral
	KindBigIntLiteral               = ast.KindBigIntLiteral
	KindStringLiteral               = ast.KindStringLiteral
	KindJsxText                     = ast.KindJsxText
	KindRegularExpressionLiteral    = ast.KindRegularExpressionLiteral
	KindNoSubstitutionTemplateLiteral = ast.KindNoSubstitutionTemplateLiteral
	KindTemplateHead                = ast.KindTemplateHead
	KindTemplateMiddle              = ast.KindTemplateMiddle
	KindTemplateTail                = ast.KindTemplateTail
	KindLessThanToken               = ast.KindLessThanToken
	KindLessThanSlashToken          = ast.KindLessThanSlashToken
	KindSlashToken                  = ast.KindSlashToken
	KindPlusPlusToken               = ast.KindPlusPlusToken
	KindMinusMinusToken             = ast.KindMinusMinusToken
	KindQuestionToken               = ast.KindQuestionToken
	KindExclamationToken            = ast.KindExclamationToken
	KindCommaToken                  = ast.KindCommaToken
	KindQuestionQuestionToken       = ast.KindQuestionQuestionToken
	KindAmpersandAmpersandToken     = ast.KindAmpersandAmpersandToken
	KindBarBarToken                 = ast.KindBarBarToken
	KindInKeyword                   = ast.KindInKeyword
	KindInstanceOfKeyword           = ast.KindInstanceOfKeyword
	KindIdentifier                  = ast.KindIdentifier
	KindPrivateIdentifier           = ast.KindPrivateIdentifier
	KindBreakKeyword                = ast.KindBreakKeyword
	KindCaseKeyword                 = ast.KindCaseKeyword
	KindConstKeyword                = ast.KindConstKeyword
	KindDefaultKeyword              = ast.KindDefaultKeyword
	KindExportKeyword               = ast.KindExportKeyword
	KindFalseKeyword                = ast.KindFalseKeyword
	KindNullKeyword                 = ast.KindNullKeyword
	KindSuperKeyword                = ast.KindSuperKeyword
	KindThisKeyword                 = ast.KindThisKeyword
	KindTrueKeyword                 = ast.KindTrueKeyword
	KindVoidKeyword                 = ast.KindVoidKeyword
	KindImplementsKeyword           = ast.KindImplementsKeyword
	KindPrivateKeyword              = ast.KindPrivateKeyword
	KindProtectedKeyword            = ast.KindProtectedKeyword
	KindPublicKeyword               = ast.KindPublicKeyword
	KindStaticKeyword               = ast.KindStaticKeyword
	KindAbstractKeyword             = ast.KindAbstractKeyword
	KindAccessorKeyword             = ast.KindAccessorKeyword
	KindAsyncKeyword                = ast.KindAsyncKeyword
	KindAwaitKeyword                = ast.KindAwaitKeyword
	KindDeclareKeyword              = ast.KindDeclareKeyword
	KindReadonlyKeyword             = ast.KindReadonlyKeyword
	KindOverrideKeyword             = ast.KindOverrideKeyword
	KindOutKeyword                  = ast.KindOutKeyword
	KindNamespaceKeyword            = ast.KindNamespaceKeyword
	KindGlobalKeyword               = ast.KindGlobalKeyword
	KindExtendsKeyword              = ast.KindExtendsKeyword
	KindImportKeyword               = ast.KindImportKeyword
	KindAnyKeyword                  = ast.KindAnyKeyword
	KindBooleanKeyword              = ast.KindBooleanKeyword
	KindIntrinsicKeyword            = ast.KindIntrinsicKeyword
	KindNeverKeyword                = ast.KindNeverKeyword
	KindNumberKeyword               = ast.KindNumberKeyword
	KindObjectKeyword               = ast.KindObjectKeyword
	KindStringKeyword               = ast.KindStringKeyword
	KindSymbolKeyword               = ast.KindSymbolKeyword
	KindUndefinedKeyword            = ast.KindUndefinedKeyword
	KindUnknownKeyword              = ast.KindUnknownKeyword
	KindBigIntKeyword               = ast.KindBigIntKeyword
	KindQualifiedName               = ast.KindQualifiedName
	KindComputedPropertyName        = ast.KindComputedPropertyName
	KindTypeParameter               = ast.KindTypeParameter
	KindParameter                   = ast.KindParameter
	KindDecorator                   = ast.KindDecorator
	KindPropertySignature           = ast.KindPropertySignature
	KindPropertyDeclaration         = ast.KindPropertyDeclaration
	KindMethodSignature             = ast.KindMethodSignature
	KindMethodDeclaration           = ast.KindMethodDeclaration
	KindClassStaticBlockDeclaration = ast.KindClassStaticBlockDeclaration
	KindConstructor                 = ast.KindConstructor
	KindGetAccessor                 = ast.KindGetAccessor
	KindSetAccessor                 = ast.KindSetAccessor
	KindCallSignature               = ast.KindCallSignature
	KindConstructSignature          = ast.KindConstructSignature
	KindIndexSignature              = ast.KindIndexSignature
	KindTypePredicate               = ast.KindTypePredicate
	KindTypeReference               = ast.KindTypeReference
	KindFunctionType                = ast.KindFunctionType
	KindConstructorType             = ast.KindConstructorType
	KindTypeQuery                   = ast.KindTypeQuery
	KindTypeLiteral                 = ast.KindTypeLiteral
	KindArrayType                   = ast.KindArrayType
	KindTupleType                   = ast.KindTupleType
	KindOptionalType                = ast.KindOptionalType
	KindRestType                    = ast.KindRestType
	KindUnionType                   = ast.KindUnionType
	KindIntersectionType            = ast.KindIntersectionType
	KindConditionalType             = ast.KindConditionalType
	KindInferType                   = ast.KindInferType
	KindParenthesizedType           = ast.KindParenthesizedType
	KindThisType                    = ast.KindThisType
	KindTypeOperator                = ast.KindTypeOperator
	KindIndexedAccessType           = ast.KindIndexedAccessType
	KindMappedType                  = ast.KindMappedType
	KindLiteralType                 = ast.KindLiteralType
	KindNamedTupleMember            = ast.KindNamedTupleMember
	KindTemplateLiteralType         = ast.KindTemplateLiteralType
	KindImportType                  = ast.KindImportType
	KindObjectBindingPattern        = ast.KindObjectBindingPattern
	KindArrayBindingPattern         = ast.KindArrayBindingPattern
	KindBindingElement              = ast.KindBindingElement
	KindArrayLiteralExpression      = ast.KindArrayLiteralExpression
	KindObjectLiteralExpression     = ast.KindObjectLiteralExpression
	KindPropertyAccessExpression    = ast.KindPropertyAccessExpression
	KindElementAccessExpression     = ast.KindElementAccessExpression
	KindCallExpression              = ast.KindCallExpression
	KindNewExpression               = ast.KindNewExpression
	KindTaggedTemplateExpression    = ast.KindTaggedTemplateExpression
	KindTypeAssertionExpression     = ast.KindTypeAssertionExpression
	KindParenthesizedExpression     = ast.KindParenthesizedExpression
	KindFunctionExpression          = ast.KindFunctionExpression
	KindArrowFunction               = ast.KindArrowFunction
	KindDeleteExpression            = ast.KindDeleteExpression
	KindTypeOfExpression            = ast.KindTypeOfExpression
	KindVoidExpression              = ast.KindVoidExpression
	KindAwaitExpression             = ast.KindAwaitExpression
	KindPrefixUnaryExpression       = ast.KindPrefixUnaryExpression
	KindPostfixUnaryExpression      = ast.KindPostfixUnaryExpression
	KindBinaryExpression            = ast.KindBinaryExpression
	KindConditionalExpression       = ast.KindConditionalExpression
	KindTemplateExpression          = ast.KindTemplateExpression
	KindYieldExpression             = ast.KindYieldExpression
	KindSpreadElement               = ast.KindSpreadElement
	KindClassExpression             = ast.KindClassExpression
	KindOmittedExpression           = ast.KindOmittedExpression
	KindExpressionWithTypeArguments = ast.KindExpressionWithTypeArguments
	KindAsExpression                = ast.KindAsExpression
	KindNonNullExpression           = ast.KindNonNullExpression
	KindMetaProperty                = ast.KindMetaProperty
	KindSatisfiesExpression         = ast.KindSatisfiesExpression
	KindTemplateSpan                = ast.KindTemplateSpan
	KindSemicolonClassElement       = ast.KindSemicolonClassElement
	KindBlock                       = ast.KindBlock
	KindEmptyStatement              = ast.KindEmptyStatement
	KindVariableStatement           = ast.KindVariableStatement
	KindExpressionStatement         = ast.KindExpressionStatement
	KindIfStatement                 = ast.KindIfStatement
	KindDoStatement                 = ast.KindDoStatement
	KindWhileStatement              = ast.KindWhileStatement
	KindForStatement                = ast.KindForStatement
	KindForInStatement              = ast.KindForInStatement
	KindForOfStatement              = ast.KindForOfStatement
	KindContinueStatement           = ast.KindContinueStatement
	KindBreakStatement              = ast.KindBreakStatement
	KindReturnStatement             = ast.KindReturnStatement
	KindWithStatement               = ast.KindWithStatement
	KindSwitchStatement             = ast.KindSwitchStatement
	KindLabeledStatement            = ast.KindLabeledStatement
	KindThrowStatement              = ast.KindThrowStatement
	KindTryStatement                = ast.KindTryStatement
	KindDebuggerStatement           = ast.KindDebuggerStatement
	KindVariableDeclaration         = ast.KindVariableDeclaration
	KindVariableDeclarationList     = ast.KindVariableDeclarationList
	KindFunctionDeclaration         = ast.KindFunctionDeclaration
	KindClassDeclaration            = ast.KindClassDeclaration
	KindInterfaceDeclaration        = ast.KindInterfaceDeclaration
	KindTypeAliasDeclaration        = ast.KindTypeAliasDeclaration
	KindEnumDeclaration             = ast.KindEnumDeclaration
	KindModuleDeclaration           = ast.KindModuleDeclaration
	KindModuleBlock                 = ast.KindModuleBlock
	KindCaseBlock                   = ast.KindCaseBlock
	KindNamespaceExportDeclaration  = ast.KindNamespaceExportDeclaration
	KindImportEqualsDeclaration     = ast.KindImportEqualsDeclaration
	KindImportDeclaration           = ast.KindImportDeclaration
	KindImportClause                = ast.KindImportClause
	KindNamespaceImport             = ast.KindNamespaceImport
	KindNamedImports                = ast.KindNamedImports
	KindImportSpecifier             = ast.KindImportSpecifier
	KindExportAssignment            = ast.KindExportAssignment
	KindExportDeclaration           = ast.KindExportDeclaration
	KindNamedExports                = ast.KindNamedExports
	KindNamespaceExport             = ast.KindNamespaceExport
	KindExportSpecifier             = ast.KindExportSpecifier
	KindExternalModuleReference     = ast.KindExternalModuleReference
	KindJsxElement                  = ast.KindJsxElement
	KindJsxSelfClosingElement       = ast.KindJsxSelfClosingElement
	KindJsxOpeningElement           = ast.KindJsxOpeningElement
	KindJsxClosingElement           = ast.KindJsxClosingElement
	KindJsxFragment                 = ast.KindJsxFragment
	KindJsxOpeningFragment          = ast.KindJsxOpeningFragment
	KindJsxClosingFragment          = ast.KindJsxClosingFragment
	KindJsxAttribute                = ast.KindJsxAttribute
	KindJsxAttributes               = ast.KindJsxAttributes
	KindJsxSpreadAttribute          = ast.KindJsxSpreadAttribute
	KindJsxExpression               = ast.KindJsxExpression
	KindJsxNamespacedName           = ast.KindJsxNamespacedName
	KindCaseClause                  = ast.KindCaseClause
	KindDefaultClause               = ast.KindDefaultClause
	KindHeritageClause              = ast.KindHeritageClause
	KindCatchClause                 = ast.KindCatchClause
	KindImportAttributes            = ast.KindImportAttributes
	KindImportAttribute             = ast.KindImportAttribute
	KindPropertyAssignment          = ast.KindPropertyAssignment
	KindShorthandPropertyAssignment = ast.KindShorthandPropertyAssignment
	KindSpreadAssignment            = ast.KindSpreadAssignment
	KindEnumMember                  = ast.KindEnumMember
	KindSourceFile                  = ast.KindSourceFile
	KindJSDocText                   = ast.KindJSDocText

	KindFirstKeyword            = ast.KindFirstKeyword
	KindLastKeyword             = ast.KindLastKeyword
	KindFirstFutureReservedWord = ast.KindFirstFutureReservedWord
	KindLastFutureReservedWord  = ast.KindLastFutureReservedWord
	KindFirstPunctuation        = ast.KindFirstPunctuation
	KindLastPunctuation         = ast.KindLastPunctuation
	KindFirstTemplateToken      = ast.KindFirstTemplateToken
	KindLastTemplateToken       = ast.KindLastTemplateToken
)
