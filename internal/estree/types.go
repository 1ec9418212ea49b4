// Package estree defines the ESTree-shaped generic AST emitted for TypeScript
// source files and the conversion from typescript-go's native tree.
package estree

// Range is a half-open [start, end) pair of byte offsets into the source text.
type Range [2]int

// Position is a 1-based line and 0-based column, per the ESTree convention.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// NodeType tags every generic node. TypeScript-only constructs use the TS
// prefix so dialect-aware consumers can distinguish them.
type NodeType string

// Node is implemented by every generic AST node. The span is always tracked
// internally so containment fixups work even when the caller did not ask for
// ranges; Range and Loc are populated for serialization on demand.
type Node interface {
	GetType() NodeType
	GetRange() Range
	GetLoc() *SourceLocation
	GetParent() Node
	SetParent(Node)

	setSpan(Range)
	emitSpan()
	setLoc(*SourceLocation)
}

// NodeBase carries the pieces shared by every node struct.
type NodeBase struct {
	Range []int           `json:"range,omitempty"`
	Loc   *SourceLocation `json:"loc,omitempty"`

	span   Range
	parent Node
}

func (b *NodeBase) GetRange() Range          { return b.span }
func (b *NodeBase) GetLoc() *SourceLocation  { return b.Loc }
func (b *NodeBase) GetParent() Node          { return b.parent }
func (b *NodeBase) SetParent(p Node)         { b.parent = p }
func (b *NodeBase) setSpan(r Range)          { b.span = r }
func (b *NodeBase) emitSpan()                { b.Range = []int{b.span[0], b.span[1]} }
func (b *NodeBase) setLoc(l *SourceLocation) { b.Loc = l }

const (
	NodeTypeAccessorProperty                NodeType = "AccessorProperty"
	NodeTypeArrayExpression                 NodeType = "ArrayExpression"
	NodeTypeArrayPattern                    NodeType = "ArrayPattern"
	NodeTypeArrowFunctionExpression         NodeType = "ArrowFunctionExpression"
	NodeTypeAssignmentExpression            NodeType = "AssignmentExpression"
	NodeTypeAssignmentPattern               NodeType = "AssignmentPattern"
	NodeTypeAwaitExpression                 NodeType = "AwaitExpression"
	NodeTypeBinaryExpression                NodeType = "BinaryExpression"
	NodeTypeBlockStatement                  NodeType = "BlockStatement"
	NodeTypeBreakStatement                  NodeType = "BreakStatement"
	NodeTypeCallExpression                  NodeType = "CallExpression"
	NodeTypeCatchClause                     NodeType = "CatchClause"
	NodeTypeChainExpression                 NodeType = "ChainExpression"
	NodeTypeClassBody                       NodeType = "ClassBody"
	NodeTypeClassDeclaration                NodeType = "ClassDeclaration"
	NodeTypeClassExpression                 NodeType = "ClassExpression"
	NodeTypeConditionalExpression           NodeType = "ConditionalExpression"
	NodeTypeContinueStatement               NodeType = "ContinueStatement"
	NodeTypeDebuggerStatement               NodeType = "DebuggerStatement"
	NodeTypeDecorator                       NodeType = "Decorator"
	NodeTypeDoWhileStatement                NodeType = "DoWhileStatement"
	NodeTypeEmptyStatement                  NodeType = "EmptyStatement"
	NodeTypeExportAllDeclaration            NodeType = "ExportAllDeclaration"
	NodeTypeExportDefaultDeclaration        NodeType = "ExportDefaultDeclaration"
	NodeTypeExportNamedDeclaration          NodeType = "ExportNamedDeclaration"
	NodeTypeExportSpecifier                 NodeType = "ExportSpecifier"
	NodeTypeExpressionStatement             NodeType = "ExpressionStatement"
	NodeTypeForInStatement                  NodeType = "ForInStatement"
	NodeTypeForOfStatement                  NodeType = "ForOfStatement"
	NodeTypeForStatement                    NodeType = "ForStatement"
	NodeTypeFunctionDeclaration             NodeType = "FunctionDeclaration"
	NodeTypeFunctionExpression              NodeType = "FunctionExpression"
	NodeTypeIdentifier                      NodeType = "Identifier"
	NodeTypeIfStatement                     NodeType = "IfStatement"
	NodeTypeImportAttribute                 NodeType = "ImportAttribute"
	NodeTypeImportExpression                NodeType = "ImportExpression"
	NodeTypeImportDeclaration               NodeType = "ImportDeclaration"
	NodeTypeImportDefaultSpecifier          NodeType = "ImportDefaultSpecifier"
	NodeTypeImportNamespaceSpecifier        NodeType = "ImportNamespaceSpecifier"
	NodeTypeImportSpecifier                 NodeType = "ImportSpecifier"
	NodeTypeJSXAttribute                    NodeType = "JSXAttribute"
	NodeTypeJSXClosingElement               NodeType = "JSXClosingElement"
	NodeTypeJSXClosingFragment              NodeType = "JSXClosingFragment"
	NodeTypeJSXElement                      NodeType = "JSXElement"
	NodeTypeJSXEmptyExpression              NodeType = "JSXEmptyExpression"
	NodeTypeJSXExpressionContainer          NodeType = "JSXExpressionContainer"
	NodeTypeJSXFragment                     NodeType = "JSXFragment"
	NodeTypeJSXIdentifier                   NodeType = "JSXIdentifier"
	NodeTypeJSXMemberExpression             NodeType = "JSXMemberExpression"
	NodeTypeJSXNamespacedName               NodeType = "JSXNamespacedName"
	NodeTypeJSXOpeningElement               NodeType = "JSXOpeningElement"
	NodeTypeJSXOpeningFragment              NodeType = "JSXOpeningFragment"
	NodeTypeJSXSpreadAttribute              NodeType = "JSXSpreadAttribute"
	NodeTypeJSXSpreadChild                  NodeType = "JSXSpreadChild"
	NodeTypeJSXText                         NodeType = "JSXText"
	NodeTypeLabeledStatement                NodeType = "LabeledStatement"
	NodeTypeLiteral                         NodeType = "Literal"
	NodeTypeLogicalExpression               NodeType = "LogicalExpression"
	NodeTypeMemberExpression                NodeType = "MemberExpression"
	NodeTypeMetaProperty                    NodeType = "MetaProperty"
	NodeTypeMethodDefinition                NodeType = "MethodDefinition"
	NodeTypeNewExpression                   NodeType = "NewExpression"
	NodeTypeObjectExpression                NodeType = "ObjectExpression"
	NodeTypeObjectPattern                   NodeType = "ObjectPattern"
	NodeTypePrivateIdentifier               NodeType = "PrivateIdentifier"
	NodeTypeProgram                         NodeType = "Program"
	NodeTypeProperty                        NodeType = "Property"
	NodeTypePropertyDefinition              NodeType = "PropertyDefinition"
	NodeTypeRestElement                     NodeType = "RestElement"
	NodeTypeReturnStatement                 NodeType = "ReturnStatement"
	NodeTypeSequenceExpression              NodeType = "SequenceExpression"
	NodeTypeSpreadElement                   NodeType = "SpreadElement"
	NodeTypeStaticBlock                     NodeType = "StaticBlock"
	NodeTypeSuper                           NodeType = "Super"
	NodeTypeSwitchCase                      NodeType = "SwitchCase"
	NodeTypeSwitchStatement                 NodeType = "SwitchStatement"
	NodeTypeTaggedTemplateExpression        NodeType = "TaggedTemplateExpression"
	NodeTypeTemplateElement                 NodeType = "TemplateElement"
	NodeTypeTemplateLiteral                 NodeType = "TemplateLiteral"
	NodeTypeThisExpression                  NodeType = "ThisExpression"
	NodeTypeThrowStatement                  NodeType = "ThrowStatement"
	NodeTypeTryStatement                    NodeType = "TryStatement"
	NodeTypeUnaryExpression                 NodeType = "UnaryExpression"
	NodeTypeUpdateExpression                NodeType = "UpdateExpression"
	NodeTypeVariableDeclaration             NodeType = "VariableDeclaration"
	NodeTypeVariableDeclarator              NodeType = "VariableDeclarator"
	NodeTypeWhileStatement                  NodeType = "WhileStatement"
	NodeTypeWithStatement                   NodeType = "WithStatement"
	NodeTypeYieldExpression                 NodeType = "YieldExpression"
	NodeTypeTSAbstractAccessorProperty      NodeType = "TSAbstractAccessorProperty"
	NodeTypeTSAbstractMethodDefinition      NodeType = "TSAbstractMethodDefinition"
	NodeTypeTSAbstractPropertyDefinition    NodeType = "TSAbstractPropertyDefinition"
	NodeTypeTSAnyKeyword                    NodeType = "TSAnyKeyword"
	NodeTypeTSArrayType                     NodeType = "TSArrayType"
	NodeTypeTSAsExpression                  NodeType = "TSAsExpression"
	NodeTypeTSBigIntKeyword                 NodeType = "TSBigIntKeyword"
	NodeTypeTSBooleanKeyword                NodeType = "TSBooleanKeyword"
	NodeTypeTSCallSignatureDeclaration      NodeType = "TSCallSignatureDeclaration"
	NodeTypeTSClassImplements               NodeType = "TSClassImplements"
	NodeTypeTSConditionalType               NodeType = "TSConditionalType"
	NodeTypeTSConstructorType               NodeType = "TSConstructorType"
	NodeTypeTSConstructSignatureDeclaration NodeType = "TSConstructSignatureDeclaration"
	NodeTypeTSDeclareFunction               NodeType = "TSDeclareFunction"
	NodeTypeTSEmptyBodyFunctionExpression   NodeType = "TSEmptyBodyFunctionExpression"
	NodeTypeTSEnumBody                      NodeType = "TSEnumBody"
	NodeTypeTSEnumDeclaration               NodeType = "TSEnumDeclaration"
	NodeTypeTSEnumMember                    NodeType = "TSEnumMember"
	NodeTypeTSExportAssignment              NodeType = "TSExportAssignment"
	NodeTypeTSExternalModuleReference       NodeType = "TSExternalModuleReference"
	NodeTypeTSFunctionType                  NodeType = "TSFunctionType"
	NodeTypeTSAbstractKeyword               NodeType = "TSAbstractKeyword"
	NodeTypeTSImportEqualsDeclaration       NodeType = "TSImportEqualsDeclaration"
	NodeTypeTSImportType                    NodeType = "TSImportType"
	NodeTypeTSIndexedAccessType             NodeType = "TSIndexedAccessType"
	NodeTypeTSIndexSignature                NodeType = "TSIndexSignature"
	NodeTypeTSInferType                     NodeType = "TSInferType"
	NodeTypeTSInstantiationExpression       NodeType = "TSInstantiationExpression"
	NodeTypeTSInterfaceBody                 NodeType = "TSInterfaceBody"
	NodeTypeTSInterfaceDeclaration          NodeType = "TSInterfaceDeclaration"
	NodeTypeTSInterfaceHeritage             NodeType = "TSInterfaceHeritage"
	NodeTypeTSIntersectionType              NodeType = "TSIntersectionType"
	NodeTypeTSIntrinsicKeyword              NodeType = "TSIntrinsicKeyword"
	NodeTypeTSLiteralType                   NodeType = "TSLiteralType"
	NodeTypeTSMappedType                    NodeType = "TSMappedType"
	NodeTypeTSMethodSignature               NodeType = "TSMethodSignature"
	NodeTypeTSModifier                      NodeType = "TSModifier"
	NodeTypeTSModuleBlock                   NodeType = "TSModuleBlock"
	NodeTypeTSModuleDeclaration             NodeType = "TSModuleDeclaration"
	NodeTypeTSNamedTupleMember              NodeType = "TSNamedTupleMember"
	NodeTypeTSNamespaceExportDeclaration    NodeType = "TSNamespaceExportDeclaration"
	NodeTypeTSNeverKeyword                  NodeType = "TSNeverKeyword"
	NodeTypeTSNonNullExpression             NodeType = "TSNonNullExpression"
	NodeTypeTSNullKeyword                   NodeType = "TSNullKeyword"
	NodeTypeTSNumberKeyword                 NodeType = "TSNumberKeyword"
	NodeTypeTSObjectKeyword                 NodeType = "TSObjectKeyword"
	NodeTypeTSOptionalType                  NodeType = "TSOptionalType"
	NodeTypeTSParameterProperty             NodeType = "TSParameterProperty"
	NodeTypeTSPropertySignature             NodeType = "TSPropertySignature"
	NodeTypeTSQualifiedName                 NodeType = "TSQualifiedName"
	NodeTypeTSRestType                      NodeType = "TSRestType"
	NodeTypeTSSatisfiesExpression           NodeType = "TSSatisfiesExpression"
	NodeTypeTSStringKeyword                 NodeType = "TSStringKeyword"
	NodeTypeTSSymbolKeyword                 NodeType = "TSSymbolKeyword"
	NodeTypeTSTemplateLiteralType           NodeType = "TSTemplateLiteralType"
	NodeTypeTSThisType                      NodeType = "TSThisType"
	NodeTypeTSTupleType                     NodeType = "TSTupleType"
	NodeTypeTSTypeAliasDeclaration          NodeType = "TSTypeAliasDeclaration"
	NodeTypeTSTypeAnnotation                NodeType = "TSTypeAnnotation"
	NodeTypeTSTypeAssertion                 NodeType = "TSTypeAssertion"
	NodeTypeTSTypeLiteral                   NodeType = "TSTypeLiteral"
	NodeTypeTSTypeOperator                  NodeType = "TSTypeOperator"
	NodeTypeTSTypeParameter                 NodeType = "TSTypeParameter"
	NodeTypeTSTypeParameterDeclaration      NodeType = "TSTypeParameterDeclaration"
	NodeTypeTSTypeParameterInstantiation    NodeType = "TSTypeParameterInstantiation"
	NodeTypeTSTypePredicate                 NodeType = "TSTypePredicate"
	NodeTypeTSTypeQuery                     NodeType = "TSTypeQuery"
	NodeTypeTSTypeReference                 NodeType = "TSTypeReference"
	NodeTypeTSUndefinedKeyword              NodeType = "TSUndefinedKeyword"
	NodeTypeTSUnionType                     NodeType = "TSUnionType"
	NodeTypeTSUnknownKeyword                NodeType = "TSUnknownKeyword"
	NodeTypeTSVoidKeyword                   NodeType = "TSVoidKeyword"
)

type Program struct {
	NodeBase
	Type       NodeType   `json:"type"`
	Body       []any      `json:"body"`
	SourceType string     `json:"sourceType"`
	Comments   []*Comment `json:"comments,omitempty"`
	Tokens     []*Token   `json:"tokens,omitempty"`
}

func (n *Program) GetType() NodeType { return n.Type }

type Identifier struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Name           string            `json:"name"`
	Decorators     []*Decorator      `json:"decorators"`
	Optional       bool              `json:"optional"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
}

func (n *Identifier) GetType() NodeType { return n.Type }

type PrivateIdentifier struct {
	NodeBase
	Type NodeType `json:"type"`
	Name string   `json:"name"`
}

func (n *PrivateIdentifier) GetType() NodeType { return n.Type }

// RegexInfo is the decomposed pattern/flags pair of a regex literal.
type RegexInfo struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

// Literal covers string, numeric, boolean, null, bigint and regex literals.
// Value is null for regex literals (there is no native regex value to carry);
// Regex and Bigint are populated only for their flavors.
type Literal struct {
	NodeBase
	Type   NodeType   `json:"type"`
	Raw    string     `json:"raw"`
	Value  any        `json:"value"`
	Regex  *RegexInfo `json:"regex,omitempty"`
	Bigint string     `json:"bigint,omitempty"`
}

func (n *Literal) GetType() NodeType { return n.Type }

type TemplateElementValue struct {
	Cooked string `json:"cooked"`
	Raw    string `json:"raw"`
}

type TemplateElement struct {
	NodeBase
	Type  NodeType             `json:"type"`
	Tail  bool                 `json:"tail"`
	Value TemplateElementValue `json:"value"`
}

func (n *TemplateElement) GetType() NodeType { return n.Type }

type TemplateLiteral struct {
	NodeBase
	Type        NodeType           `json:"type"`
	Expressions []any              `json:"expressions"`
	Quasis      []*TemplateElement `json:"quasis"`
}

func (n *TemplateLiteral) GetType() NodeType { return n.Type }

type TaggedTemplateExpression struct {
	NodeBase
	Type          NodeType                       `json:"type"`
	Tag           any                            `json:"tag"`
	Quasi         *TemplateLiteral               `json:"quasi"`
	TypeArguments *TSTypeParameterInstantiation  `json:"typeArguments"`
}

func (n *TaggedTemplateExpression) GetType() NodeType { return n.Type }

// Statements

type ExpressionStatement struct {
	NodeBase
	Type       NodeType `json:"type"`
	Expression any      `json:"expression"`
	Directive  any      `json:"directive,omitempty"`
}

func (n *ExpressionStatement) GetType() NodeType { return n.Type }

type BlockStatement struct {
	NodeBase
	Type NodeType `json:"type"`
	Body []any    `json:"body"`
}

func (n *BlockStatement) GetType() NodeType { return n.Type }

type EmptyStatement struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *EmptyStatement) GetType() NodeType { return n.Type }

type DebuggerStatement struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *DebuggerStatement) GetType() NodeType { return n.Type }

type WithStatement struct {
	NodeBase
	Type   NodeType `json:"type"`
	Object any      `json:"object"`
	Body   any      `json:"body"`
}

func (n *WithStatement) GetType() NodeType { return n.Type }

type ReturnStatement struct {
	NodeBase
	Type     NodeType `json:"type"`
	Argument any      `json:"argument"`
}

func (n *ReturnStatement) GetType() NodeType { return n.Type }

type LabeledStatement struct {
	NodeBase
	Type  NodeType    `json:"type"`
	Label *Identifier `json:"label"`
	Body  any         `json:"body"`
}

func (n *LabeledStatement) GetType() NodeType { return n.Type }

type BreakStatement struct {
	NodeBase
	Type  NodeType    `json:"type"`
	Label *Identifier `json:"label"`
}

func (n *BreakStatement) GetType() NodeType { return n.Type }

type ContinueStatement struct {
	NodeBase
	Type  NodeType    `json:"type"`
	Label *Identifier `json:"label"`
}

func (n *ContinueStatement) GetType() NodeType { return n.Type }

type IfStatement struct {
	NodeBase
	Type       NodeType `json:"type"`
	Test       any      `json:"test"`
	Consequent any      `json:"consequent"`
	Alternate  any      `json:"alternate"`
}

func (n *IfStatement) GetType() NodeType { return n.Type }

type SwitchStatement struct {
	NodeBase
	Type         NodeType      `json:"type"`
	Discriminant any           `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

func (n *SwitchStatement) GetType() NodeType { return n.Type }

type SwitchCase struct {
	NodeBase
	Type       NodeType `json:"type"`
	Test       any      `json:"test"`
	Consequent []any    `json:"consequent"`
}

func (n *SwitchCase) GetType() NodeType { return n.Type }

type ThrowStatement struct {
	NodeBase
	Type     NodeType `json:"type"`
	Argument any      `json:"argument"`
}

func (n *ThrowStatement) GetType() NodeType { return n.Type }

type TryStatement struct {
	NodeBase
	Type      NodeType        `json:"type"`
	Block     *BlockStatement `json:"block"`
	Handler   *CatchClause    `json:"handler"`
	Finalizer *BlockStatement `json:"finalizer"`
}

func (n *TryStatement) GetType() NodeType { return n.Type }

type CatchClause struct {
	NodeBase
	Type  NodeType        `json:"type"`
	Param any             `json:"param"`
	Body  *BlockStatement `json:"body"`
}

func (n *CatchClause) GetType() NodeType { return n.Type }

type WhileStatement struct {
	NodeBase
	Type NodeType `json:"type"`
	Test any      `json:"test"`
	Body any      `json:"body"`
}

func (n *WhileStatement) GetType() NodeType { return n.Type }

type DoWhileStatement struct {
	NodeBase
	Type NodeType `json:"type"`
	Test any      `json:"test"`
	Body any      `json:"body"`
}

func (n *DoWhileStatement) GetType() NodeType { return n.Type }

type ForStatement struct {
	NodeBase
	Type   NodeType `json:"type"`
	Init   any      `json:"init"`
	Test   any      `json:"test"`
	Update any      `json:"update"`
	Body   any      `json:"body"`
}

func (n *ForStatement) GetType() NodeType { return n.Type }

type ForInStatement struct {
	NodeBase
	Type  NodeType `json:"type"`
	Left  any      `json:"left"`
	Right any      `json:"right"`
	Body  any      `json:"body"`
}

func (n *ForInStatement) GetType() NodeType { return n.Type }

type ForOfStatement struct {
	NodeBase
	Type  NodeType `json:"type"`
	Await bool     `json:"await"`
	Left  any      `json:"left"`
	Right any      `json:"right"`
	Body  any      `json:"body"`
}

func (n *ForOfStatement) GetType() NodeType { return n.Type }

// Declarations

type FunctionDeclaration struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Id             *Identifier                 `json:"id"`
	Generator      bool                        `json:"generator"`
	Expression     bool                        `json:"expression"`
	Async          bool                        `json:"async"`
	Declare        bool                        `json:"declare"`
	Params         []any                       `json:"params"`
	Body           *BlockStatement             `json:"body"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
	Modifiers      []*TSModifier               `json:"modifiers,omitempty"`
}

func (n *FunctionDeclaration) GetType() NodeType { return n.Type }

type TSDeclareFunction struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Id             *Identifier                 `json:"id"`
	Generator      bool                        `json:"generator"`
	Expression     bool                        `json:"expression"`
	Async          bool                        `json:"async"`
	Declare        bool                        `json:"declare"`
	Params         []any                       `json:"params"`
	Body           any                         `json:"body"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
	Modifiers      []*TSModifier               `json:"modifiers,omitempty"`
}

func (n *TSDeclareFunction) GetType() NodeType { return n.Type }

type VariableDeclaration struct {
	NodeBase
	Type         NodeType      `json:"type"`
	Declarations []any         `json:"declarations"`
	Kind         string        `json:"kind"`
	Declare      bool          `json:"declare"`
	Modifiers    []*TSModifier `json:"modifiers,omitempty"`
}

func (n *VariableDeclaration) GetType() NodeType { return n.Type }

type VariableDeclarator struct {
	NodeBase
	Type     NodeType `json:"type"`
	Id       any      `json:"id"`
	Init     any      `json:"init"`
	Definite bool     `json:"definite"`
}

func (n *VariableDeclarator) GetType() NodeType { return n.Type }

type ClassDeclaration struct {
	NodeBase
	Type               NodeType                      `json:"type"`
	Id                 *Identifier                   `json:"id"`
	Body               *ClassBody                    `json:"body"`
	SuperClass         any                           `json:"superClass"`
	SuperTypeArguments *TSTypeParameterInstantiation `json:"superTypeArguments"`
	Implements         []*TSClassImplements          `json:"implements"`
	Abstract           bool                          `json:"abstract"`
	Declare            bool                          `json:"declare"`
	Decorators         []*Decorator                  `json:"decorators"`
	TypeParameters     *TSTypeParameterDeclaration   `json:"typeParameters"`
	Modifiers          []*TSModifier                 `json:"modifiers,omitempty"`
}

func (n *ClassDeclaration) GetType() NodeType { return n.Type }

type ClassExpression struct {
	NodeBase
	Type               NodeType                      `json:"type"`
	Id                 *Identifier                   `json:"id"`
	Body               *ClassBody                    `json:"body"`
	SuperClass         any                           `json:"superClass"`
	SuperTypeArguments *TSTypeParameterInstantiation `json:"superTypeArguments"`
	Implements         []*TSClassImplements          `json:"implements"`
	Abstract           bool                          `json:"abstract"`
	Declare            bool                          `json:"declare"`
	Decorators         []*Decorator                  `json:"decorators"`
	TypeParameters     *TSTypeParameterDeclaration   `json:"typeParameters"`
	Modifiers          []*TSModifier                 `json:"modifiers,omitempty"`
}

func (n *ClassExpression) GetType() NodeType { return n.Type }

type ClassBody struct {
	NodeBase
	Type NodeType `json:"type"`
	Body []any    `json:"body"`
}

func (n *ClassBody) GetType() NodeType { return n.Type }

type MethodDefinition struct {
	NodeBase
	Type          NodeType     `json:"type"`
	Key           any          `json:"key"`
	Value         any          `json:"value"`
	Kind          string       `json:"kind"`
	Computed      bool         `json:"computed"`
	Static        bool         `json:"static"`
	Optional      bool         `json:"optional"`
	Override      bool         `json:"override"`
	Accessibility any          `json:"accessibility"`
	Decorators    []*Decorator `json:"decorators"`
}

func (n *MethodDefinition) GetType() NodeType { return n.Type }

type TSAbstractMethodDefinition struct {
	NodeBase
	Type          NodeType     `json:"type"`
	Key           any          `json:"key"`
	Value         any          `json:"value"`
	Kind          string       `json:"kind"`
	Computed      bool         `json:"computed"`
	Static        bool         `json:"static"`
	Optional      bool         `json:"optional"`
	Override      bool         `json:"override"`
	Accessibility any          `json:"accessibility"`
	Decorators    []*Decorator `json:"decorators"`
}

func (n *TSAbstractMethodDefinition) GetType() NodeType { return n.Type }

type PropertyDefinition struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Key            any               `json:"key"`
	Value          any               `json:"value"`
	Computed       bool              `json:"computed"`
	Static         bool              `json:"static"`
	Declare        bool              `json:"declare"`
	Definite       bool              `json:"definite"`
	Optional       bool              `json:"optional"`
	Override       bool              `json:"override"`
	Readonly       bool              `json:"readonly"`
	Accessibility  any               `json:"accessibility"`
	Decorators     []*Decorator      `json:"decorators"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
	Modifiers      []*TSModifier     `json:"modifiers,omitempty"`
}

func (n *PropertyDefinition) GetType() NodeType { return n.Type }

type TSAbstractPropertyDefinition struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Key            any               `json:"key"`
	Value          any               `json:"value"`
	Computed       bool              `json:"computed"`
	Static         bool              `json:"static"`
	Declare        bool              `json:"declare"`
	Definite       bool              `json:"definite"`
	Optional       bool              `json:"optional"`
	Override       bool              `json:"override"`
	Readonly       bool              `json:"readonly"`
	Accessibility  any               `json:"accessibility"`
	Decorators     []*Decorator      `json:"decorators"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
	Modifiers      []*TSModifier     `json:"modifiers,omitempty"`
}

func (n *TSAbstractPropertyDefinition) GetType() NodeType { return n.Type }

type AccessorProperty struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Key            any               `json:"key"`
	Value          any               `json:"value"`
	Computed       bool              `json:"computed"`
	Static         bool              `json:"static"`
	Declare        bool              `json:"declare"`
	Definite       bool              `json:"definite"`
	Optional       bool              `json:"optional"`
	Override       bool              `json:"override"`
	Readonly       bool              `json:"readonly"`
	Accessibility  any               `json:"accessibility"`
	Decorators     []*Decorator      `json:"decorators"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
	Modifiers      []*TSModifier     `json:"modifiers,omitempty"`
}

func (n *AccessorProperty) GetType() NodeType { return n.Type }

type TSAbstractAccessorProperty struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Key            any               `json:"key"`
	Value          any               `json:"value"`
	Computed       bool              `json:"computed"`
	Static         bool              `json:"static"`
	Declare        bool              `json:"declare"`
	Definite       bool              `json:"definite"`
	Optional       bool              `json:"optional"`
	Override       bool              `json:"override"`
	Readonly       bool              `json:"readonly"`
	Accessibility  any               `json:"accessibility"`
	Decorators     []*Decorator      `json:"decorators"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
	Modifiers      []*TSModifier     `json:"modifiers,omitempty"`
}

func (n *TSAbstractAccessorProperty) GetType() NodeType { return n.Type }

type StaticBlock struct {
	NodeBase
	Type NodeType `json:"type"`
	Body []any    `json:"body"`
}

func (n *StaticBlock) GetType() NodeType { return n.Type }

// Expressions

type ThisExpression struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *ThisExpression) GetType() NodeType { return n.Type }

type Super struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *Super) GetType() NodeType { return n.Type }

type MetaProperty struct {
	NodeBase
	Type     NodeType    `json:"type"`
	Meta     *Identifier `json:"meta"`
	Property *Identifier `json:"property"`
}

func (n *MetaProperty) GetType() NodeType { return n.Type }

type ArrayExpression struct {
	NodeBase
	Type     NodeType `json:"type"`
	Elements []any    `json:"elements"`
}

func (n *ArrayExpression) GetType() NodeType { return n.Type }

type ObjectExpression struct {
	NodeBase
	Type       NodeType `json:"type"`
	Properties []any    `json:"properties"`
}

func (n *ObjectExpression) GetType() NodeType { return n.Type }

type Property struct {
	NodeBase
	Type      NodeType `json:"type"`
	Key       any      `json:"key"`
	Value     any      `json:"value"`
	Kind      string   `json:"kind"`
	Computed  bool     `json:"computed"`
	Method    bool     `json:"method"`
	Optional  bool     `json:"optional"`
	Shorthand bool     `json:"shorthand"`
}

func (n *Property) GetType() NodeType { return n.Type }

type FunctionExpression struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Id             *Identifier                 `json:"id"`
	Generator      bool                        `json:"generator"`
	Expression     bool                        `json:"expression"`
	Async          bool                        `json:"async"`
	Declare        bool                        `json:"declare"`
	Params         []any                       `json:"params"`
	Body           *BlockStatement             `json:"body"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
}

func (n *FunctionExpression) GetType() NodeType { return n.Type }

type TSEmptyBodyFunctionExpression struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Id             *Identifier                 `json:"id"`
	Generator      bool                        `json:"generator"`
	Expression     bool                        `json:"expression"`
	Async          bool                        `json:"async"`
	Declare        bool                        `json:"declare"`
	Params         []any                       `json:"params"`
	Body           any                         `json:"body"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
}

func (n *TSEmptyBodyFunctionExpression) GetType() NodeType { return n.Type }

type ArrowFunctionExpression struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Id             *Identifier                 `json:"id"`
	Generator      bool                        `json:"generator"`
	Expression     bool                        `json:"expression"`
	Async          bool                        `json:"async"`
	Params         []any                       `json:"params"`
	Body           any                         `json:"body"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
}

func (n *ArrowFunctionExpression) GetType() NodeType { return n.Type }

type YieldExpression struct {
	NodeBase
	Type     NodeType `json:"type"`
	Argument any      `json:"argument"`
	Delegate bool     `json:"delegate"`
}

func (n *YieldExpression) GetType() NodeType { return n.Type }

type AwaitExpression struct {
	NodeBase
	Type     NodeType `json:"type"`
	Argument any      `json:"argument"`
}

func (n *AwaitExpression) GetType() NodeType { return n.Type }

type UnaryExpression struct {
	NodeBase
	Type     NodeType `json:"type"`
	Operator string   `json:"operator"`
	Prefix   bool     `json:"prefix"`
	Argument any      `json:"argument"`
}

func (n *UnaryExpression) GetType() NodeType { return n.Type }

type UpdateExpression struct {
	NodeBase
	Type     NodeType `json:"type"`
	Operator string   `json:"operator"`
	Prefix   bool     `json:"prefix"`
	Argument any      `json:"argument"`
}

func (n *UpdateExpression) GetType() NodeType { return n.Type }

type BinaryExpression struct {
	NodeBase
	Type     NodeType `json:"type"`
	Operator string   `json:"operator"`
	Left     any      `json:"left"`
	Right    any      `json:"right"`
}

func (n *BinaryExpression) GetType() NodeType { return n.Type }

type LogicalExpression struct {
	NodeBase
	Type     NodeType `json:"type"`
	Operator string   `json:"operator"`
	Left     any      `json:"left"`
	Right    any      `json:"right"`
}

func (n *LogicalExpression) GetType() NodeType { return n.Type }

type AssignmentExpression struct {
	NodeBase
	Type     NodeType `json:"type"`
	Operator string   `json:"operator"`
	Left     any      `json:"left"`
	Right    any      `json:"right"`
}

func (n *AssignmentExpression) GetType() NodeType { return n.Type }

type ConditionalExpression struct {
	NodeBase
	Type       NodeType `json:"type"`
	Test       any      `json:"test"`
	Consequent any      `json:"consequent"`
	Alternate  any      `json:"alternate"`
}

func (n *ConditionalExpression) GetType() NodeType { return n.Type }

type CallExpression struct {
	NodeBase
	Type          NodeType                      `json:"type"`
	Callee        any                           `json:"callee"`
	Arguments     []any                         `json:"arguments"`
	Optional      bool                          `json:"optional"`
	TypeArguments *TSTypeParameterInstantiation `json:"typeArguments"`
}

func (n *CallExpression) GetType() NodeType { return n.Type }

type NewExpression struct {
	NodeBase
	Type          NodeType                      `json:"type"`
	Callee        any                           `json:"callee"`
	Arguments     []any                         `json:"arguments"`
	TypeArguments *TSTypeParameterInstantiation `json:"typeArguments"`
}

func (n *NewExpression) GetType() NodeType { return n.Type }

type SequenceExpression struct {
	NodeBase
	Type        NodeType `json:"type"`
	Expressions []any    `json:"expressions"`
}

func (n *SequenceExpression) GetType() NodeType { return n.Type }

type MemberExpression struct {
	NodeBase
	Type     NodeType `json:"type"`
	Object   any      `json:"object"`
	Property any      `json:"property"`
	Computed bool     `json:"computed"`
	Optional bool     `json:"optional"`
}

func (n *MemberExpression) GetType() NodeType { return n.Type }

type ChainExpression struct {
	NodeBase
	Type       NodeType `json:"type"`
	Expression any      `json:"expression"`
}

func (n *ChainExpression) GetType() NodeType { return n.Type }

type SpreadElement struct {
	NodeBase
	Type     NodeType `json:"type"`
	Argument any      `json:"argument"`
}

func (n *SpreadElement) GetType() NodeType { return n.Type }

// Patterns

type ObjectPattern struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Properties     []any             `json:"properties"`
	Optional       bool              `json:"optional"`
	Decorators     []*Decorator      `json:"decorators"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
}

func (n *ObjectPattern) GetType() NodeType { return n.Type }

type ArrayPattern struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Elements       []any             `json:"elements"`
	Optional       bool              `json:"optional"`
	Decorators     []*Decorator      `json:"decorators"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
}

func (n *ArrayPattern) GetType() NodeType { return n.Type }

type RestElement struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Argument       any               `json:"argument"`
	Optional       bool              `json:"optional"`
	Value          any               `json:"value"`
	Decorators     []*Decorator      `json:"decorators"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
}

func (n *RestElement) GetType() NodeType { return n.Type }

type AssignmentPattern struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Left           any               `json:"left"`
	Right          any               `json:"right"`
	Optional       bool              `json:"optional"`
	Decorators     []*Decorator      `json:"decorators"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
}

func (n *AssignmentPattern) GetType() NodeType { return n.Type }

// Modules

type ImportDeclaration struct {
	NodeBase
	Type       NodeType           `json:"type"`
	Source     *Literal           `json:"source"`
	Specifiers []any              `json:"specifiers"`
	ImportKind string             `json:"importKind"`
	Attributes []*ImportAttribute `json:"attributes"`
}

func (n *ImportDeclaration) GetType() NodeType { return n.Type }

type ImportSpecifier struct {
	NodeBase
	Type       NodeType    `json:"type"`
	Imported   any         `json:"imported"`
	Local      *Identifier `json:"local"`
	ImportKind string      `json:"importKind"`
}

func (n *ImportSpecifier) GetType() NodeType { return n.Type }

type ImportDefaultSpecifier struct {
	NodeBase
	Type  NodeType    `json:"type"`
	Local *Identifier `json:"local"`
}

func (n *ImportDefaultSpecifier) GetType() NodeType { return n.Type }

type ImportNamespaceSpecifier struct {
	NodeBase
	Type  NodeType    `json:"type"`
	Local *Identifier `json:"local"`
}

func (n *ImportNamespaceSpecifier) GetType() NodeType { return n.Type }

type ImportAttribute struct {
	NodeBase
	Type  NodeType `json:"type"`
	Key   any      `json:"key"`
	Value any      `json:"value"`
}

func (n *ImportAttribute) GetType() NodeType { return n.Type }

type ExportNamedDeclaration struct {
	NodeBase
	Type        NodeType           `json:"type"`
	Declaration any                `json:"declaration"`
	Specifiers  []any              `json:"specifiers"`
	Source      *Literal           `json:"source"`
	ExportKind  string             `json:"exportKind"`
	Attributes  []*ImportAttribute `json:"attributes"`
}

func (n *ExportNamedDeclaration) GetType() NodeType { return n.Type }

type ExportDefaultDeclaration struct {
	NodeBase
	Type        NodeType `json:"type"`
	Declaration any      `json:"declaration"`
	ExportKind  string   `json:"exportKind"`
}

func (n *ExportDefaultDeclaration) GetType() NodeType { return n.Type }

type ExportAllDeclaration struct {
	NodeBase
	Type       NodeType           `json:"type"`
	Exported   any                `json:"exported"`
	Source     *Literal           `json:"source"`
	ExportKind string             `json:"exportKind"`
	Attributes []*ImportAttribute `json:"attributes"`
}

func (n *ExportAllDeclaration) GetType() NodeType { return n.Type }

type ExportSpecifier struct {
	NodeBase
	Type       NodeType `json:"type"`
	Local      any      `json:"local"`
	Exported   any      `json:"exported"`
	ExportKind string   `json:"exportKind"`
}

func (n *ExportSpecifier) GetType() NodeType { return n.Type }

// JSX

type JSXElement struct {
	NodeBase
	Type           NodeType           `json:"type"`
	OpeningElement *JSXOpeningElement `json:"openingElement"`
	ClosingElement *JSXClosingElement `json:"closingElement"`
	Children       []any              `json:"children"`
}

func (n *JSXElement) GetType() NodeType { return n.Type }

type JSXFragment struct {
	NodeBase
	Type            NodeType            `json:"type"`
	OpeningFragment *JSXOpeningFragment `json:"openingFragment"`
	ClosingFragment *JSXClosingFragment `json:"closingFragment"`
	Children        []any               `json:"children"`
}

func (n *JSXFragment) GetType() NodeType { return n.Type }

type JSXOpeningElement struct {
	NodeBase
	Type          NodeType                      `json:"type"`
	Name          any                           `json:"name"`
	Attributes    []any                         `json:"attributes"`
	SelfClosing   bool                          `json:"selfClosing"`
	TypeArguments *TSTypeParameterInstantiation `json:"typeArguments"`
}

func (n *JSXOpeningElement) GetType() NodeType { return n.Type }

type JSXClosingElement struct {
	NodeBase
	Type NodeType `json:"type"`
	Name any      `json:"name"`
}

func (n *JSXClosingElement) GetType() NodeType { return n.Type }

type JSXOpeningFragment struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *JSXOpeningFragment) GetType() NodeType { return n.Type }

type JSXClosingFragment struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *JSXClosingFragment) GetType() NodeType { return n.Type }

type JSXAttribute struct {
	NodeBase
	Type  NodeType `json:"type"`
	Name  any      `json:"name"`
	Value any      `json:"value"`
}

func (n *JSXAttribute) GetType() NodeType { return n.Type }

type JSXSpreadAttribute struct {
	NodeBase
	Type     NodeType `json:"type"`
	Argument any      `json:"argument"`
}

func (n *JSXSpreadAttribute) GetType() NodeType { return n.Type }

type JSXExpressionContainer struct {
	NodeBase
	Type       NodeType `json:"type"`
	Expression any      `json:"expression"`
}

func (n *JSXExpressionContainer) GetType() NodeType { return n.Type }

type JSXSpreadChild struct {
	NodeBase
	Type       NodeType `json:"type"`
	Expression any      `json:"expression"`
}

func (n *JSXSpreadChild) GetType() NodeType { return n.Type }

type JSXEmptyExpression struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *JSXEmptyExpression) GetType() NodeType { return n.Type }

type JSXIdentifier struct {
	NodeBase
	Type NodeType `json:"type"`
	Name string   `json:"name"`
}

func (n *JSXIdentifier) GetType() NodeType { return n.Type }

type JSXMemberExpression struct {
	NodeBase
	Type     NodeType       `json:"type"`
	Object   any            `json:"object"`
	Property *JSXIdentifier `json:"property"`
}

func (n *JSXMemberExpression) GetType() NodeType { return n.Type }

type JSXNamespacedName struct {
	NodeBase
	Type      NodeType       `json:"type"`
	Namespace *JSXIdentifier `json:"namespace"`
	Name      *JSXIdentifier `json:"name"`
}

func (n *JSXNamespacedName) GetType() NodeType { return n.Type }

type JSXText struct {
	NodeBase
	Type  NodeType `json:"type"`
	Value string   `json:"value"`
	Raw   string   `json:"raw"`
}

func (n *JSXText) GetType() NodeType { return n.Type }

// TypeScript nodes

type Decorator struct {
	NodeBase
	Type       NodeType `json:"type"`
	Expression any      `json:"expression"`
}

func (n *Decorator) GetType() NodeType { return n.Type }

// TSModifier is emitted only in dialect-preserving mode, keeping the raw
// modifier keyword list alongside the flattened boolean fields.
type TSModifier struct {
	NodeBase
	Type NodeType `json:"type"`
	Kind string   `json:"kind"`
}

func (n *TSModifier) GetType() NodeType { return n.Type }

type TSTypeAnnotation struct {
	NodeBase
	Type           NodeType `json:"type"`
	TypeAnnotation any      `json:"typeAnnotation"`
}

func (n *TSTypeAnnotation) GetType() NodeType { return n.Type }

type TSTypeParameterDeclaration struct {
	NodeBase
	Type   NodeType           `json:"type"`
	Params []*TSTypeParameter `json:"params"`
}

func (n *TSTypeParameterDeclaration) GetType() NodeType { return n.Type }

type TSTypeParameter struct {
	NodeBase
	Type       NodeType    `json:"type"`
	Name       *Identifier `json:"name"`
	Constraint any         `json:"constraint"`
	Default    any         `json:"default"`
	In         bool        `json:"in"`
	Out        bool        `json:"out"`
	Const      bool        `json:"const"`
}

func (n *TSTypeParameter) GetType() NodeType { return n.Type }

type TSTypeParameterInstantiation struct {
	NodeBase
	Type   NodeType `json:"type"`
	Params []any    `json:"params"`
}

func (n *TSTypeParameterInstantiation) GetType() NodeType { return n.Type }

type TSQualifiedName struct {
	NodeBase
	Type  NodeType    `json:"type"`
	Left  any         `json:"left"`
	Right *Identifier `json:"right"`
}

func (n *TSQualifiedName) GetType() NodeType { return n.Type }

type TSTypeReference struct {
	NodeBase
	Type          NodeType                      `json:"type"`
	TypeName      any                           `json:"typeName"`
	TypeArguments *TSTypeParameterInstantiation `json:"typeArguments"`
}

func (n *TSTypeReference) GetType() NodeType { return n.Type }

type TSTypeLiteral struct {
	NodeBase
	Type    NodeType `json:"type"`
	Members []any    `json:"members"`
}

func (n *TSTypeLiteral) GetType() NodeType { return n.Type }

type TSArrayType struct {
	NodeBase
	Type        NodeType `json:"type"`
	ElementType any      `json:"elementType"`
}

func (n *TSArrayType) GetType() NodeType { return n.Type }

type TSTupleType struct {
	NodeBase
	Type         NodeType `json:"type"`
	ElementTypes []any    `json:"elementTypes"`
}

func (n *TSTupleType) GetType() NodeType { return n.Type }

type TSNamedTupleMember struct {
	NodeBase
	Type        NodeType    `json:"type"`
	Label       *Identifier `json:"label"`
	ElementType any         `json:"elementType"`
	Optional    bool        `json:"optional"`
}

func (n *TSNamedTupleMember) GetType() NodeType { return n.Type }

type TSOptionalType struct {
	NodeBase
	Type           NodeType `json:"type"`
	TypeAnnotation any      `json:"typeAnnotation"`
}

func (n *TSOptionalType) GetType() NodeType { return n.Type }

type TSRestType struct {
	NodeBase
	Type           NodeType `json:"type"`
	TypeAnnotation any      `json:"typeAnnotation"`
}

func (n *TSRestType) GetType() NodeType { return n.Type }

type TSUnionType struct {
	NodeBase
	Type  NodeType `json:"type"`
	Types []any    `json:"types"`
}

func (n *TSUnionType) GetType() NodeType { return n.Type }

type TSIntersectionType struct {
	NodeBase
	Type  NodeType `json:"type"`
	Types []any    `json:"types"`
}

func (n *TSIntersectionType) GetType() NodeType { return n.Type }

type TSConditionalType struct {
	NodeBase
	Type        NodeType `json:"type"`
	CheckType   any      `json:"checkType"`
	ExtendsType any      `json:"extendsType"`
	TrueType    any      `json:"trueType"`
	FalseType   any      `json:"falseType"`
}

func (n *TSConditionalType) GetType() NodeType { return n.Type }

type TSInferType struct {
	NodeBase
	Type          NodeType         `json:"type"`
	TypeParameter *TSTypeParameter `json:"typeParameter"`
}

func (n *TSInferType) GetType() NodeType { return n.Type }

type TSTypeOperator struct {
	NodeBase
	Type           NodeType `json:"type"`
	Operator       string   `json:"operator"`
	TypeAnnotation any      `json:"typeAnnotation"`
}

func (n *TSTypeOperator) GetType() NodeType { return n.Type }

type TSIndexedAccessType struct {
	NodeBase
	Type       NodeType `json:"type"`
	ObjectType any      `json:"objectType"`
	IndexType  any      `json:"indexType"`
}

func (n *TSIndexedAccessType) GetType() NodeType { return n.Type }

type TSMappedType struct {
	NodeBase
	Type           NodeType    `json:"type"`
	Key            *Identifier `json:"key"`
	Constraint     any         `json:"constraint"`
	NameType       any         `json:"nameType"`
	Optional       any         `json:"optional"`
	Readonly       any         `json:"readonly"`
	TypeAnnotation any         `json:"typeAnnotation"`
}

func (n *TSMappedType) GetType() NodeType { return n.Type }

type TSLiteralType struct {
	NodeBase
	Type    NodeType `json:"type"`
	Literal any      `json:"literal"`
}

func (n *TSLiteralType) GetType() NodeType { return n.Type }

type TSTemplateLiteralType struct {
	NodeBase
	Type   NodeType           `json:"type"`
	Quasis []*TemplateElement `json:"quasis"`
	Types  []any              `json:"types"`
}

func (n *TSTemplateLiteralType) GetType() NodeType { return n.Type }

type TSFunctionType struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Params         []any                       `json:"params"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
}

func (n *TSFunctionType) GetType() NodeType { return n.Type }

type TSConstructorType struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Abstract       bool                        `json:"abstract"`
	Params         []any                       `json:"params"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
}

func (n *TSConstructorType) GetType() NodeType { return n.Type }

type TSTypeQuery struct {
	NodeBase
	Type          NodeType                      `json:"type"`
	ExprName      any                           `json:"exprName"`
	TypeArguments *TSTypeParameterInstantiation `json:"typeArguments"`
}

func (n *TSTypeQuery) GetType() NodeType { return n.Type }

type TSThisType struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSThisType) GetType() NodeType { return n.Type }

type TSTypeAssertion struct {
	NodeBase
	Type           NodeType `json:"type"`
	Expression     any      `json:"expression"`
	TypeAnnotation any      `json:"typeAnnotation"`
}

func (n *TSTypeAssertion) GetType() NodeType { return n.Type }

type TSAsExpression struct {
	NodeBase
	Type           NodeType `json:"type"`
	Expression     any      `json:"expression"`
	TypeAnnotation any      `json:"typeAnnotation"`
}

func (n *TSAsExpression) GetType() NodeType { return n.Type }

type TSSatisfiesExpression struct {
	NodeBase
	Type           NodeType `json:"type"`
	Expression     any      `json:"expression"`
	TypeAnnotation any      `json:"typeAnnotation"`
}

func (n *TSSatisfiesExpression) GetType() NodeType { return n.Type }

type TSNonNullExpression struct {
	NodeBase
	Type       NodeType `json:"type"`
	Expression any      `json:"expression"`
}

func (n *TSNonNullExpression) GetType() NodeType { return n.Type }

type TSInstantiationExpression struct {
	NodeBase
	Type          NodeType                      `json:"type"`
	Expression    any                           `json:"expression"`
	TypeArguments *TSTypeParameterInstantiation `json:"typeArguments"`
}

func (n *TSInstantiationExpression) GetType() NodeType { return n.Type }

type TSInterfaceDeclaration struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Id             *Identifier                 `json:"id"`
	Body           *TSInterfaceBody            `json:"body"`
	Extends        []*TSInterfaceHeritage      `json:"extends"`
	Declare        bool                        `json:"declare"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
	Modifiers      []*TSModifier               `json:"modifiers,omitempty"`
}

func (n *TSInterfaceDeclaration) GetType() NodeType { return n.Type }

type TSInterfaceBody struct {
	NodeBase
	Type NodeType `json:"type"`
	Body []any    `json:"body"`
}

func (n *TSInterfaceBody) GetType() NodeType { return n.Type }

type TSInterfaceHeritage struct {
	NodeBase
	Type          NodeType                      `json:"type"`
	Expression    any                           `json:"expression"`
	TypeArguments *TSTypeParameterInstantiation `json:"typeArguments"`
}

func (n *TSInterfaceHeritage) GetType() NodeType { return n.Type }

type TSClassImplements struct {
	NodeBase
	Type          NodeType                      `json:"type"`
	Expression    any                           `json:"expression"`
	TypeArguments *TSTypeParameterInstantiation `json:"typeArguments"`
}

func (n *TSClassImplements) GetType() NodeType { return n.Type }

type TSTypeAliasDeclaration struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Id             *Identifier                 `json:"id"`
	TypeAnnotation any                         `json:"typeAnnotation"`
	Declare        bool                        `json:"declare"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
	Modifiers      []*TSModifier               `json:"modifiers,omitempty"`
}

func (n *TSTypeAliasDeclaration) GetType() NodeType { return n.Type }

type TSEnumDeclaration struct {
	NodeBase
	Type      NodeType      `json:"type"`
	Id        *Identifier   `json:"id"`
	Body      *TSEnumBody   `json:"body"`
	Const     bool          `json:"const"`
	Declare   bool          `json:"declare"`
	Modifiers []*TSModifier `json:"modifiers,omitempty"`
}

func (n *TSEnumDeclaration) GetType() NodeType { return n.Type }

type TSEnumBody struct {
	NodeBase
	Type    NodeType `json:"type"`
	Members []any    `json:"members"`
}

func (n *TSEnumBody) GetType() NodeType { return n.Type }

type TSEnumMember struct {
	NodeBase
	Type        NodeType `json:"type"`
	Id          any      `json:"id"`
	Initializer any      `json:"initializer"`
	Computed    bool     `json:"computed"`
}

func (n *TSEnumMember) GetType() NodeType { return n.Type }

type TSModuleDeclaration struct {
	NodeBase
	Type      NodeType       `json:"type"`
	Id        any            `json:"id"`
	Body      *TSModuleBlock `json:"body"`
	Kind      string         `json:"kind"`
	Global    bool           `json:"global"`
	Declare   bool           `json:"declare"`
	Modifiers []*TSModifier  `json:"modifiers,omitempty"`
}

func (n *TSModuleDeclaration) GetType() NodeType { return n.Type }

type TSModuleBlock struct {
	NodeBase
	Type NodeType `json:"type"`
	Body []any    `json:"body"`
}

func (n *TSModuleBlock) GetType() NodeType { return n.Type }

type TSImportEqualsDeclaration struct {
	NodeBase
	Type            NodeType    `json:"type"`
	Id              *Identifier `json:"id"`
	ModuleReference any         `json:"moduleReference"`
	ImportKind      string      `json:"importKind"`
}

func (n *TSImportEqualsDeclaration) GetType() NodeType { return n.Type }

type TSExternalModuleReference struct {
	NodeBase
	Type       NodeType `json:"type"`
	Expression *Literal `json:"expression"`
}

func (n *TSExternalModuleReference) GetType() NodeType { return n.Type }

type TSNamespaceExportDeclaration struct {
	NodeBase
	Type NodeType    `json:"type"`
	Id   *Identifier `json:"id"`
}

func (n *TSNamespaceExportDeclaration) GetType() NodeType { return n.Type }

type TSExportAssignment struct {
	NodeBase
	Type       NodeType `json:"type"`
	Expression any      `json:"expression"`
}

func (n *TSExportAssignment) GetType() NodeType { return n.Type }

type TSPropertySignature struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Key            any               `json:"key"`
	Computed       bool              `json:"computed"`
	Optional       bool              `json:"optional"`
	Readonly       bool              `json:"readonly"`
	Static         bool              `json:"static"`
	Accessibility  any               `json:"accessibility"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
}

func (n *TSPropertySignature) GetType() NodeType { return n.Type }

type TSMethodSignature struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Key            any                         `json:"key"`
	Kind           string                      `json:"kind"`
	Computed       bool                        `json:"computed"`
	Optional       bool                        `json:"optional"`
	Readonly       bool                        `json:"readonly"`
	Static         bool                        `json:"static"`
	Accessibility  any                         `json:"accessibility"`
	Params         []any                       `json:"params"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
}

func (n *TSMethodSignature) GetType() NodeType { return n.Type }

type TSIndexSignature struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Parameters     []any             `json:"parameters"`
	Readonly       bool              `json:"readonly"`
	Static         bool              `json:"static"`
	Accessibility  any               `json:"accessibility"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
}

func (n *TSIndexSignature) GetType() NodeType { return n.Type }

type TSCallSignatureDeclaration struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Params         []any                       `json:"params"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
}

func (n *TSCallSignatureDeclaration) GetType() NodeType { return n.Type }

type TSConstructSignatureDeclaration struct {
	NodeBase
	Type           NodeType                    `json:"type"`
	Params         []any                       `json:"params"`
	ReturnType     *TSTypeAnnotation           `json:"returnType"`
	TypeParameters *TSTypeParameterDeclaration `json:"typeParameters"`
}

func (n *TSConstructSignatureDeclaration) GetType() NodeType { return n.Type }

type TSParameterProperty struct {
	NodeBase
	Type          NodeType     `json:"type"`
	Parameter     any          `json:"parameter"`
	Accessibility any          `json:"accessibility"`
	Readonly      bool         `json:"readonly"`
	Static        bool         `json:"static"`
	Override      bool         `json:"override"`
	Decorators    []*Decorator `json:"decorators"`
}

func (n *TSParameterProperty) GetType() NodeType { return n.Type }

// Keyword type nodes.

type TSAnyKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSAnyKeyword) GetType() NodeType { return n.Type }

type TSBigIntKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSBigIntKeyword) GetType() NodeType { return n.Type }

type TSBooleanKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSBooleanKeyword) GetType() NodeType { return n.Type }

type TSIntrinsicKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSIntrinsicKeyword) GetType() NodeType { return n.Type }

type TSNeverKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSNeverKeyword) GetType() NodeType { return n.Type }

type TSNullKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSNullKeyword) GetType() NodeType { return n.Type }

type TSNumberKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSNumberKeyword) GetType() NodeType { return n.Type }

type TSObjectKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSObjectKeyword) GetType() NodeType { return n.Type }

type TSStringKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSStringKeyword) GetType() NodeType { return n.Type }

type TSSymbolKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSSymbolKeyword) GetType() NodeType { return n.Type }

type TSUndefinedKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSUndefinedKeyword) GetType() NodeType { return n.Type }

type TSUnknownKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSUnknownKeyword) GetType() NodeType { return n.Type }

type TSVoidKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSVoidKeyword) GetType() NodeType { return n.Type }

type ImportExpression struct {
	NodeBase
	Type    NodeType `json:"type"`
	Source  any      `json:"source"`
	Options any      `json:"options"`
}

func (n *ImportExpression) GetType() NodeType { return n.Type }

type TSImportType struct {
	NodeBase
	Type          NodeType                      `json:"type"`
	Argument      any                           `json:"argument"`
	Qualifier     any                           `json:"qualifier"`
	Options       *ObjectExpression             `json:"options"`
	TypeArguments *TSTypeParameterInstantiation `json:"typeArguments"`
}

func (n *TSImportType) GetType() NodeType { return n.Type }

type TSTypePredicate struct {
	NodeBase
	Type           NodeType          `json:"type"`
	Asserts        bool              `json:"asserts"`
	ParameterName  any               `json:"parameterName"`
	TypeAnnotation *TSTypeAnnotation `json:"typeAnnotation"`
}

func (n *TSTypePredicate) GetType() NodeType { return n.Type }

type TSAbstractKeyword struct {
	NodeBase
	Type NodeType `json:"type"`
}

func (n *TSAbstractKeyword) GetType() NodeType { return n.Type }

// Tokens and comments.

// TokenType classifies extracted tokens the way ESLint expects them.
type TokenType string

const (
	TokenTypeBoolean           TokenType = "Boolean"
	TokenTypeIdentifier        TokenType = "Identifier"
	TokenTypeJSXIdentifier     TokenType = "JSXIdentifier"
	TokenTypeJSXText           TokenType = "JSXText"
	TokenTypeKeyword           TokenType = "Keyword"
	TokenTypeNull              TokenType = "Null"
	TokenTypeNumeric           TokenType = "Numeric"
	TokenTypePrivateIdentifier TokenType = "PrivateIdentifier"
	TokenTypePunctuator        TokenType = "Punctuator"
	TokenTypeRegularExpression TokenType = "RegularExpression"
	TokenTypeString            TokenType = "String"
	TokenTypeTemplate          TokenType = "Template"
)

const (
	CommentTypeLine    = "Line"
	CommentTypeBlock   = "Block"
	CommentTypeShebang = "Shebang"
)

// Token is one lexed token of the source text. Tokens always carry their
// range and location since they are only produced on request.
type Token struct {
	Type  TokenType       `json:"type"`
	Value string          `json:"value"`
	Regex *RegexInfo      `json:"regex,omitempty"`
	Range []int           `json:"range"`
	Loc   *SourceLocation `json:"loc"`
}

// Comment is one comment of the source text, including a shebang line when
// the file starts with one.
type Comment struct {
	Type  string          `json:"type"`
	Value string          `json:"value"`
	Range []int           `json:"range"`
	Loc   *SourceLocation `json:"loc"`
}

// PassthroughNode stands in for native kinds that have no dedicated builder.
// Its type is "TS" plus the native kind name; Kind repeats the name as data so
// tools can detect it without string-prefix games.
type PassthroughNode struct {
	NodeBase
	Type NodeType `json:"type"`
	Kind string   `json:"kind"`
}

func (n *PassthroughNode) GetType() NodeType { return n.Type }
