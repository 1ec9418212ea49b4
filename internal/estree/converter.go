package estree

import (
	"reflect"
	"slices"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/scanner"
)

// ConvertOptions controls what the conversion emits alongside the tree.
type ConvertOptions struct {
	// Range and Loc gate serialization only. Spans are always tracked
	// internally so range fixups behave the same either way.
	Range bool
	Loc   bool

	// Tokens and Comment attach the token and comment sequences to the
	// emitted Program.
	Tokens  bool
	Comment bool

	// AltJSXText renders JSX text children as plain Literal nodes instead of
	// JSXText, for consumers built against the older representation.
	AltJSXText bool

	// ErrorOnUnknownKind makes conversion fail on a native kind with no
	// dedicated builder instead of emitting a passthrough node.
	ErrorOnUnknownKind bool

	// PreserveModifiers keeps the raw modifier keyword list on declarations
	// in addition to the flattened boolean fields.
	PreserveModifiers bool
}

type converter struct {
	sourceFile   *ast.SourceFile
	spans        *SpanTranslator
	maps         *NodeMaps
	opts         ConvertOptions
	allowPattern bool
}

// Convert builds the generic tree for a parsed source file along with the
// node correspondence maps. With ErrorOnUnknownKind set, an unconvertible
// native kind aborts the whole conversion and is reported as an
// *UnsupportedNodeKindError.
func Convert(sourceFile *ast.SourceFile, opts ConvertOptions) (program *Program, maps *NodeMaps, err error) {
	c := converter{
		sourceFile: sourceFile,
		spans:      NewSpanTranslator(sourceFile.Text),
		maps:       newNodeMaps(),
		opts:       opts,
	}

	defer func() {
		if r := recover(); r != nil {
			unknown, ok := r.(*UnsupportedNodeKindError)
			if !ok {
				panic(r)
			}
			program, maps, err = nil, nil, unknown
		}
	}()

	program = c.converter(sourceFile.AsNode(), nil, false).(*Program)
	return program, c.maps, nil
}

func spanOf(r Range) NodeBase {
	return NodeBase{span: r}
}

func (c *converter) getNodeStart(node *ast.Node) int {
	return scanner.GetTokenPosOfNode(node, c.sourceFile, false)
}

func (c *converter) getRange(node *ast.Node) Range {
	return Range{c.getNodeStart(node), node.End()}
}

// setSpan records the span and refreshes the serialized range/loc per the
// conversion options.
func (c *converter) setSpan(n Node, r Range) {
	n.setSpan(r)
	if c.opts.Range {
		n.emitSpan()
	}
	if c.opts.Loc {
		n.setLoc(c.spans.LocationFor(r))
	}
}

func (c *converter) createNode(node *ast.Node, data Node) Node {
	r := data.GetRange()
	if r[0] == 0 && r[1] == 0 {
		r = c.getRange(node)
	}
	c.setSpan(data, r)
	c.maps.linkESTreeToTS(data, node)
	return data
}

func convertChildT[T any](c *converter, child *ast.Node, parent *ast.Node) T {
	res, ok := c.convertChild(child, parent).(T)
	if child != nil && !ok {
		panic("couldn't assert child to T type")
	}
	return res
}

func (c *converter) convertChild(child *ast.Node, parent *ast.Node) Node {
	return c.converter(child, parent, false)
}

func (c *converter) convertPattern(child, parent *ast.Node) Node {
	return c.converter(child, parent, true)
}

func (c *converter) converter(node, parent *ast.Node, allowPattern bool) Node {
	if node == nil {
		return nil
	}

	pattern := c.allowPattern
	c.allowPattern = allowPattern

	if parent == nil {
		parent = node.Parent
	}
	result := c.convertNode(node, parent)

	c.maps.linkTSToESTree(node, result)

	c.allowPattern = pattern

	return result
}

func hasModifier(modifier ast.Kind, node interface{ Modifiers() *ast.ModifierList }) bool {
	modifiers := node.Modifiers()
	if modifiers == nil {
		return false
	}
	for _, m := range modifiers.NodeList.Nodes {
		if m.Kind == modifier {
			return true
		}
	}
	return false
}

func getModifiers(node *ast.Node) []*ast.Node {
	if node.ModifierFlags()&ast.ModifierFlagsModifier == 0 {
		return nil
	}
	modifiers := node.ModifierNodes()
	if modifiers == nil {
		return nil
	}
	return filterSlice(modifiers, func(n *ast.Node) bool {
		return !ast.IsDecorator(n)
	})
}

func getLastModifier(node *ast.Node) *ast.Node {
	modifiers := node.ModifierNodes()
	if len(modifiers) == 0 {
		return nil
	}
	return modifiers[len(modifiers)-1]
}

// mapSlice never returns nil: sequence fields serialize as [] when empty.
func mapSlice[T, U any](slice []T, f func(T) U) []U {
	result := make([]U, len(slice))
	for i, value := range slice {
		result[i] = f(value)
	}
	return result
}

func filterSlice[T any](slice []T, f func(T) bool) []T {
	for i, value := range slice {
		if !f(value) {
			result := slices.Clone(slice[:i])
			for i++; i < len(slice); i++ {
				value = slice[i]
				if f(value) {
					result = append(result, value)
				}
			}
			return result
		}
	}
	return slice
}

func setProperty(d any, propertyName string, propertyValue any) {
	p := reflect.Indirect(reflect.ValueOf(d))
	p.FieldByName(propertyName).Set(reflect.ValueOf(propertyValue))
}

func (c *converter) convertTypeAnnotation(child, parent *ast.Node) *TSTypeAnnotation {
	if child == nil {
		return nil
	}
	// in FunctionType and ConstructorType the annotation is preceded by the 2
	// characters of `=>`, elsewhere by a single colon
	offset := 1
	if parent != nil && (ast.IsFunctionTypeNode(parent) || parent.Kind == ast.KindConstructorType) {
		offset = 2
	}
	annotationStart := child.Pos() - offset

	result := TSTypeAnnotation{
		Type:           NodeTypeTSTypeAnnotation,
		TypeAnnotation: c.convertChild(child, nil),
	}
	c.setSpan(&result, Range{annotationStart, child.End()})
	return &result
}

func (c *converter) convertTSTypeParametersToTypeParametersDeclaration(typeParameters *ast.NodeList) *TSTypeParameterDeclaration {
	if typeParameters == nil {
		return nil
	}
	greaterThanTokenRange := scanner.GetRangeOfTokenAtPosition(c.sourceFile, typeParameters.End())
	result := TSTypeParameterDeclaration{
		Type:   NodeTypeTSTypeParameterDeclaration,
		Params: convertNodeListToChildren[*TSTypeParameter](c, typeParameters),
	}
	c.setSpan(&result, Range{typeParameters.Pos() - 1, greaterThanTokenRange.End()})
	return &result
}

func (c *converter) convertTypeArgumentsToTypeParameterInstantiation(typeArguments *ast.NodeList, node *ast.Node) *TSTypeParameterInstantiation {
	if typeArguments == nil {
		return nil
	}
	greaterThanTokenRange := scanner.GetRangeOfTokenAtPosition(c.sourceFile, typeArguments.End())

	return c.createNode(node, &TSTypeParameterInstantiation{
		Type:     NodeTypeTSTypeParameterInstantiation,
		NodeBase: spanOf(Range{typeArguments.Pos() - 1, greaterThanTokenRange.End()}),
		Params:   convertNodeListToChildren[any](c, typeArguments),
	}).(*TSTypeParameterInstantiation)
}

func (c *converter) convertDecorators(node *ast.Node) []*Decorator {
	decorators := []*Decorator{}
	if modifiers := node.ModifierNodes(); modifiers != nil {
		for _, m := range modifiers {
			if ast.IsDecorator(m) {
				decorators = append(decorators, c.convertChild(m, nil).(*Decorator))
			}
		}
	}
	return decorators
}

// keepModifiers converts the raw modifier keyword list for dialect-preserving
// mode. It returns nil when the mode is off or the node has no modifiers.
func (c *converter) keepModifiers(node *ast.Node) []*TSModifier {
	if !c.opts.PreserveModifiers {
		return nil
	}
	modifiers := getModifiers(node)
	if len(modifiers) == 0 {
		return nil
	}
	result := make([]*TSModifier, 0, len(modifiers))
	for _, m := range modifiers {
		result = append(result, c.createNode(m, &TSModifier{
			Type: NodeTypeTSModifier,
			Kind: scanner.TokenToString(m.Kind),
		}).(*TSModifier))
	}
	return result
}

func (c *converter) convertParameters(parameters *ast.NodeList) []any {
	if parameters == nil {
		return []any{}
	}

	return mapSlice(parameters.Nodes, func(param *ast.Node) any {
		convertedParam := c.convertChild(param, nil)

		setProperty(convertedParam, "Decorators", c.convertDecorators(param))

		return convertedParam
	})
}

func (c *converter) convertBindingNameWithTypeAnnotation(name *ast.Node, tsType *ast.Node, parent *ast.Node) any {
	id := c.convertPattern(name, nil)

	if tsType != nil {
		typeAnnotation := c.convertTypeAnnotation(tsType, parent)
		setProperty(id, "TypeAnnotation", typeAnnotation)
		c.fixParentLocation(id, typeAnnotation)
	}

	return id
}

func getDeclarationKind(node *ast.VariableDeclarationList) string {
	if node.Flags&ast.NodeFlagsLet != 0 {
		return "let"
	}
	if (node.Flags & ast.NodeFlagsAwaitUsing) == ast.NodeFlagsAwaitUsing {
		return "await using"
	}
	if node.Flags&ast.NodeFlagsConst != 0 {
		return "const"
	}
	if node.Flags&ast.NodeFlagsUsing != 0 {
		return "using"
	}
	return "var"
}

func getTSNodeAccessibility(node *ast.Node) any {
	modifiers := node.ModifierNodes()
	if modifiers == nil {
		return nil
	}
	for _, m := range modifiers {
		switch m.Kind {
		case ast.KindPublicKeyword:
			return "public"
		case ast.KindProtectedKeyword:
			return "protected"
		case ast.KindPrivateKeyword:
			return "private"
		}
	}

	return nil
}

func getNamespaceModifiers(node *ast.ModuleDeclaration) []*ast.Node {
	// Nested namespaces carry their modifiers on the topmost declaration:
	//   export declare namespace foo.bar.baz {}
	modifiers := node.ModifierNodes()
	moduleDeclaration := node.AsNode()
	for len(modifiers) == 0 && ast.IsModuleDeclaration(moduleDeclaration.Parent) {
		parentModifiers := moduleDeclaration.Parent.ModifierNodes()
		if len(parentModifiers) != 0 {
			modifiers = parentModifiers
		}
		moduleDeclaration = moduleDeclaration.Parent
	}
	return modifiers
}

func (c *converter) fixExports(node *ast.Node, result Node) Node {
	isNamespaceNode := ast.IsModuleDeclaration(node) && !ast.IsStringLiteral(node.Name())

	var modifiers []*ast.Node
	if isNamespaceNode {
		modifiers = getNamespaceModifiers(node.AsModuleDeclaration())
	} else {
		modifiers = getModifiers(node)
	}

	if len(modifiers) < 1 || modifiers[0].Kind != ast.KindExportKeyword {
		return result
	}

	// The original declaration owns the native node's map entry, not the
	// export wrapper built around it.
	c.maps.linkTSToESTree(node, result)

	exportKeyword := modifiers[0]
	declarationIsDefault := len(modifiers) >= 2 && modifiers[1].Kind == ast.KindDefaultKeyword

	var varTokenRange core.TextRange
	if declarationIsDefault {
		varTokenRange = scanner.GetRangeOfTokenAtPosition(c.sourceFile, modifiers[1].End())
	} else {
		varTokenRange = scanner.GetRangeOfTokenAtPosition(c.sourceFile, exportKeyword.End())
	}

	r := Range{varTokenRange.Pos(), result.GetRange()[1]}
	c.setSpan(result, r)

	if declarationIsDefault {
		return c.createNode(node, &ExportDefaultDeclaration{
			Type:        NodeTypeExportDefaultDeclaration,
			NodeBase:    spanOf(Range{c.getNodeStart(exportKeyword), r[1]}),
			Declaration: result,
			ExportKind:  "value",
		})
	}

	isType := result.GetType() == NodeTypeTSInterfaceDeclaration || result.GetType() == NodeTypeTSTypeAliasDeclaration
	res := reflect.Indirect(reflect.ValueOf(result))
	isDeclareField := res.FieldByName("Declare")
	isDeclare := isDeclareField.IsValid() && isDeclareField.Bool()

	exportKind := "value"
	if isType || isDeclare {
		exportKind = "type"
	}

	return c.createNode(node, &ExportNamedDeclaration{
		Type:        NodeTypeExportNamedDeclaration,
		NodeBase:    spanOf(Range{c.getNodeStart(exportKeyword), r[1]}),
		Attributes:  []*ImportAttribute{},
		Declaration: result,
		ExportKind:  exportKind,
		Specifiers:  []any{},
	})
}

func (c *converter) convertMethodSignature(node *ast.Node) Node {
	name := node.Name()
	var kind string
	var optional bool
	switch node.Kind {
	case ast.KindGetAccessor:
		kind = "get"
		optional = node.AsGetAccessorDeclaration().PostfixToken != nil && node.AsGetAccessorDeclaration().PostfixToken.Kind == ast.KindQuestionToken
	case ast.KindSetAccessor:
		kind = "set"
		optional = node.AsSetAccessorDeclaration().PostfixToken != nil && node.AsSetAccessorDeclaration().PostfixToken.Kind == ast.KindQuestionToken
	case ast.KindMethodSignature:
		kind = "method"
		optional = node.AsMethodSignatureDeclaration().PostfixToken != nil && node.AsMethodSignatureDeclaration().PostfixToken.Kind == ast.KindQuestionToken
	}
	return c.createNode(node, &TSMethodSignature{
		Type:           NodeTypeTSMethodSignature,
		Accessibility:  getTSNodeAccessibility(node),
		Computed:       ast.IsComputedPropertyName(name),
		Key:            c.convertChild(name, nil),
		Kind:           kind,
		Optional:       optional,
		Params:         c.convertParameters(node.ParameterList()),
		Readonly:       hasModifier(ast.KindReadonlyKeyword, node),
		ReturnType:     c.convertTypeAnnotation(node.Type(), node),
		Static:         hasModifier(ast.KindStaticKeyword, node),
		TypeParameters: c.convertTSTypeParametersToTypeParametersDeclaration(node.TypeParameterList()),
	})
}

// fixParentLocation widens the parent span to contain a child that extends
// past it.
func (c *converter) fixParentLocation(result Node, child Node) {
	r := result.GetRange()
	childRange := child.GetRange()
	changed := false
	if childRange[0] < r[0] {
		r[0] = childRange[0]
		changed = true
	}
	if childRange[1] > r[1] {
		r[1] = childRange[1]
		changed = true
	}
	if changed {
		c.setSpan(result, r)
	}
}

func convertNodeListToChildren[T any](c *converter, list *ast.NodeList) []T {
	if list == nil {
		return []T{}
	}
	return mapSlice(list.Nodes, func(n *ast.Node) T {
		return c.convertChild(n, nil).(T)
	})
}

func convertNodeListToChildrenAllowPattern[T any](c *converter, list *ast.NodeList) []T {
	if list == nil {
		return []T{}
	}
	return mapSlice(list.Nodes, func(n *ast.Node) T {
		return c.convertPattern(n, nil).(T)
	})
}

func isThisInTypeQuery(node *ast.Node) bool {
	if !ast.IsThisIdentifier(node) {
		return false
	}
	for ast.IsQualifiedName(node.Parent) && node.Parent.AsQualifiedName().Left == node {
		node = node.Parent
	}
	return node.Parent.Kind == ast.KindTypeQuery
}

func canContainDirective(node *ast.Node) bool {
	if node.Kind != ast.KindBlock {
		return true
	}

	switch node.Parent.Kind {
	case ast.KindConstructor,
		ast.KindGetAccessor,
		ast.KindSetAccessor,
		ast.KindArrowFunction,
		ast.KindFunctionExpression,
		ast.KindFunctionDeclaration,
		ast.KindMethodDeclaration:
		return true
	}
	return false
}

func (c *converter) convertBodyExpressions(nodes *ast.NodeList, parent *ast.Node) []any {
	allowDirectives := canContainDirective(parent)

	return filterSlice(mapSlice(nodes.Nodes, func(statement *ast.Node) any {
		child := c.convertChild(statement, nil)
		if allowDirectives {
			allowDirectives = false

			if child != nil && ast.IsExpressionStatement(statement) {
				s := statement.AsExpressionStatement()
				if ast.IsStringLiteral(s.Expression) {
					setProperty(child, "Directive", s.Expression.AsStringLiteral().Text)
					return child
				}
			}
		}
		return child
	}), func(c any) bool {
		return c != nil
	})
}

func (c *converter) convertJSXIdentifier(node *ast.Node) Node {
	result := c.createNode(node, &JSXIdentifier{
		Type: NodeTypeJSXIdentifier,
		Name: scanner.GetSourceTextOfNodeFromSourceFile(c.sourceFile, node, false),
	})
	c.maps.linkTSToESTree(node, result)
	return result
}

func (c *converter) convertJSXNamespaceOrIdentifier(node *ast.Node) Node {
	if node.Kind == ast.KindJsxNamespacedName {
		n := node.AsJsxNamespacedName()
		name := n.Name()
		result := c.createNode(node, &JSXNamespacedName{
			Type: NodeTypeJSXNamespacedName,
			Name: c.createNode(name, &JSXIdentifier{
				Type: NodeTypeJSXIdentifier,
				Name: name.Text(),
			}).(*JSXIdentifier),
			Namespace: c.createNode(n.Namespace, &JSXIdentifier{
				Type: NodeTypeJSXIdentifier,
				Name: n.Namespace.Text(),
			}).(*JSXIdentifier),
		})
		c.maps.linkTSToESTree(node, result)
		return result
	}

	return c.convertJSXIdentifier(node)
}

func (c *converter) convertJSXTagName(node *ast.Node, parent *ast.Node) Node {
	var result Node

	switch node.Kind {
	case ast.KindPropertyAccessExpression:
		n := node.AsPropertyAccessExpression()
		result = c.createNode(node, &JSXMemberExpression{
			Type:     NodeTypeJSXMemberExpression,
			Object:   c.convertJSXTagName(n.Expression, parent),
			Property: c.convertJSXIdentifier(n.Name()).(*JSXIdentifier),
		})
	default:
		return c.convertJSXNamespaceOrIdentifier(node)
	}
	c.maps.linkTSToESTree(node, result)
	return result
}

func (c *converter) convertChainExpression(node Node, tsNode *ast.Node) Node {
	var child Node
	var isOptional bool

	t := node.GetType()
	if t == NodeTypeMemberExpression {
		child = node.(*MemberExpression).Object.(Node)
		isOptional = node.(*MemberExpression).Optional
	} else if t == NodeTypeCallExpression {
		child = node.(*CallExpression).Callee.(Node)
		isOptional = node.(*CallExpression).Optional
	} else {
		child = node.(*TSNonNullExpression).Expression.(Node)
		isOptional = false
	}

	// (x?.y).z is semantically different, and as such .z is no longer optional
	isChildUnwrappable := child.GetType() == NodeTypeChainExpression && tsNode.Expression().Kind != ast.KindParenthesizedExpression

	if !isChildUnwrappable && !isOptional {
		return node
	}

	if isChildUnwrappable {
		newChild := child.(*ChainExpression).Expression
		if t == NodeTypeMemberExpression {
			node.(*MemberExpression).Object = newChild
		} else if t == NodeTypeCallExpression {
			node.(*CallExpression).Callee = newChild
		} else {
			node.(*TSNonNullExpression).Expression = newChild
		}
	}

	return c.createNode(tsNode, &ChainExpression{
		Type:       NodeTypeChainExpression,
		Expression: node,
	})
}

func (c *converter) convertNode(node *ast.Node, parent *ast.Node) Node {
	switch node.Kind {
	case ast.KindSourceFile:
		n := node.AsSourceFile()
		sourceType := "script"
		if n.ExternalModuleIndicator != nil {
			sourceType = "module"
		}
		var tokens []*Token
		var comments []*Comment
		if c.opts.Tokens || c.opts.Comment {
			tokens, comments = c.parseTokens()
			if !c.opts.Tokens {
				tokens = nil
			}
			if !c.opts.Comment {
				comments = nil
			}
		}
		return c.createNode(node, &Program{
			Type:       NodeTypeProgram,
			NodeBase:   spanOf(Range{c.getNodeStart(node), node.End()}),
			Body:       c.convertBodyExpressions(n.Statements, node),
			Comments:   comments,
			Tokens:     tokens,
			SourceType: sourceType,
		})

	case ast.KindBlock:
		n := node.AsBlock()
		return c.createNode(node, &BlockStatement{
			Type: NodeTypeBlockStatement,
			Body: c.convertBodyExpressions(n.Statements, node),
		})

	case ast.KindIdentifier:
		if isThisInTypeQuery(node) {
			// `typeof this.foo` parses `this` as an Identifier, but consumers
			// expect a ThisExpression there
			return c.createNode(node, &ThisExpression{
				Type: NodeTypeThisExpression,
			})
		}
		n := node.AsIdentifier()
		return c.createNode(node, &Identifier{
			Type:       NodeTypeIdentifier,
			Decorators: []*Decorator{},
			Name:       n.Text,
		})

	case ast.KindPrivateIdentifier:
		n := node.AsPrivateIdentifier()
		return c.createNode(node, &PrivateIdentifier{
			Type: NodeTypePrivateIdentifier,
			// the native text includes the leading #
			Name: n.Text[1:],
		})

	case ast.KindWithStatement:
		n := node.AsWithStatement()
		return c.createNode(node, &WithStatement{
			Type:   NodeTypeWithStatement,
			Body:   c.convertChild(n.Statement, nil),
			Object: c.convertChild(n.Expression, nil),
		})

	// Control flow

	case ast.KindReturnStatement:
		n := node.AsReturnStatement()
		return c.createNode(node, &ReturnStatement{
			Type:     NodeTypeReturnStatement,
			Argument: c.convertChild(n.Expression, nil),
		})

	case ast.KindLabeledStatement:
		n := node.AsLabeledStatement()
		return c.createNode(node, &LabeledStatement{
			Type:  NodeTypeLabeledStatement,
			Body:  c.convertChild(n.Statement, nil),
			Label: convertChildT[*Identifier](c, n.Label, nil),
		})

	case ast.KindContinueStatement:
		n := node.AsContinueStatement()
		return c.createNode(node, &ContinueStatement{
			Type:  NodeTypeContinueStatement,
			Label: convertChildT[*Identifier](c, n.Label, nil),
		})

	case ast.KindBreakStatement:
		n := node.AsBreakStatement()
		return c.createNode(node, &BreakStatement{
			Type:  NodeTypeBreakStatement,
			Label: convertChildT[*Identifier](c, n.Label, nil),
		})

	// Choice

	case ast.KindIfStatement:
		n := node.AsIfStatement()
		return c.createNode(node, &IfStatement{
			Type:       NodeTypeIfStatement,
			Alternate:  c.convertChild(n.ElseStatement, nil),
			Consequent: c.convertChild(n.ThenStatement, nil),
			Test:       c.convertChild(n.Expression, nil),
		})

	case ast.KindSwitchStatement:
		n := node.AsSwitchStatement()
		return c.createNode(node, &SwitchStatement{
			Type:         NodeTypeSwitchStatement,
			Cases:        convertNodeListToChildren[*SwitchCase](c, n.CaseBlock.AsCaseBlock().Clauses),
			Discriminant: c.convertChild(n.Expression, nil),
		})

	case ast.KindCaseClause, ast.KindDefaultClause:
		var test any
		n := node.AsCaseOrDefaultClause()
		// expression is present in case clauses only
		if ast.IsCaseClause(node) {
			test = c.convertChild(n.Expression, nil)
		}
		return c.createNode(node, &SwitchCase{
			Type:       NodeTypeSwitchCase,
			Consequent: convertNodeListToChildren[any](c, n.Statements),
			Test:       test,
		})

	// Exceptions

	case ast.KindThrowStatement:
		n := node.AsThrowStatement()
		return c.createNode(node, &ThrowStatement{
			Type:     NodeTypeThrowStatement,
			Argument: c.convertChild(n.Expression, nil),
		})

	case ast.KindTryStatement:
		n := node.AsTryStatement()
		return c.createNode(node, &TryStatement{
			Type:      NodeTypeTryStatement,
			Block:     convertChildT[*BlockStatement](c, n.TryBlock, nil),
			Finalizer: convertChildT[*BlockStatement](c, n.FinallyBlock, nil),
			Handler:   convertChildT[*CatchClause](c, n.CatchClause, nil),
		})

	case ast.KindCatchClause:
		n := node.AsCatchClause()
		var param any
		if n.VariableDeclaration != nil {
			param = c.convertBindingNameWithTypeAnnotation(n.VariableDeclaration.Name(), n.VariableDeclaration.Type(), nil)
		}
		return c.createNode(node, &CatchClause{
			Type:  NodeTypeCatchClause,
			Body:  c.convertChild(n.Block, nil).(*BlockStatement),
			Param: param,
		})

	// Loops

	case ast.KindWhileStatement:
		n := node.AsWhileStatement()
		return c.createNode(node, &WhileStatement{
			Type: NodeTypeWhileStatement,
			Body: c.convertChild(n.Statement, nil),
			Test: c.convertChild(n.Expression, nil),
		})

	// TypeScript calls a DoWhileStatement a DoStatement
	case ast.KindDoStatement:
		n := node.AsDoStatement()
		return c.createNode(node, &DoWhileStatement{
			Type: NodeTypeDoWhileStatement,
			Body: c.convertChild(n.Statement, nil),
			Test: c.convertChild(n.Expression, nil),
		})

	case ast.KindForStatement:
		n := node.AsForStatement()
		return c.createNode(node, &ForStatement{
			Type:   NodeTypeForStatement,
			Body:   c.convertChild(n.Statement, nil),
			Init:   c.convertChild(n.Initializer, nil),
			Test:   c.convertChild(n.Condition, nil),
			Update: c.convertChild(n.Incrementor, nil),
		})

	case ast.KindForInStatement:
		n := node.AsForInOrOfStatement()
		return c.createNode(node, &ForInStatement{
			Type:  NodeTypeForInStatement,
			Body:  c.convertChild(n.Statement, nil),
			Left:  c.convertPattern(n.Initializer, nil),
			Right: c.convertChild(n.Expression, nil),
		})

	case ast.KindForOfStatement:
		n := node.AsForInOrOfStatement()
		return c.createNode(node, &ForOfStatement{
			Type:  NodeTypeForOfStatement,
			Await: n.AwaitModifier != nil && n.AwaitModifier.Kind == ast.KindAwaitKeyword,
			Body:  c.convertChild(n.Statement, nil),
			Left:  c.convertPattern(n.Initializer, nil),
			Right: c.convertChild(n.Expression, nil),
		})

	// Declarations

	case ast.KindFunctionDeclaration:
		n := node.AsFunctionDeclaration()
		isDeclare := hasModifier(ast.KindDeclareKeyword, node)
		isAsync := hasModifier(ast.KindAsyncKeyword, node)
		isGenerator := n.AsteriskToken != nil

		var body any
		if n.Body != nil {
			body = c.convertChild(n.Body, nil)
		}
		var returnType *TSTypeAnnotation
		if n.Type != nil {
			returnType = c.convertTypeAnnotation(n.Type, node)
		}
		var typeParameters *TSTypeParameterDeclaration
		if n.TypeParameters != nil {
			typeParameters = c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters)
		}

		var data Node
		if n.Body == nil {
			data = &TSDeclareFunction{
				Type:           NodeTypeTSDeclareFunction,
				Async:          isAsync,
				Body:           body,
				Declare:        isDeclare,
				Expression:     false,
				Generator:      isGenerator,
				Id:             convertChildT[*Identifier](c, n.Name(), nil),
				Params:         c.convertParameters(n.Parameters),
				ReturnType:     returnType,
				TypeParameters: typeParameters,
				Modifiers:      c.keepModifiers(node),
			}
		} else {
			data = &FunctionDeclaration{
				Type:           NodeTypeFunctionDeclaration,
				Async:          isAsync,
				Body:           body.(*BlockStatement),
				Declare:        isDeclare,
				Expression:     false,
				Generator:      isGenerator,
				Id:             convertChildT[*Identifier](c, n.Name(), nil),
				Params:         c.convertParameters(n.Parameters),
				ReturnType:     returnType,
				TypeParameters: typeParameters,
				Modifiers:      c.keepModifiers(node),
			}
		}

		return c.fixExports(node, c.createNode(node, data))

	case ast.KindVariableDeclaration:
		n := node.AsVariableDeclaration()
		return c.createNode(node, &VariableDeclarator{
			Type:     NodeTypeVariableDeclarator,
			Definite: n.ExclamationToken != nil,
			Id:       c.convertBindingNameWithTypeAnnotation(n.Name(), n.Type, node),
			Init:     c.convertChild(n.Initializer, nil),
		})

	case ast.KindVariableStatement:
		n := node.AsVariableStatement()
		declarationList := n.DeclarationList.AsVariableDeclarationList()
		result := c.createNode(node, &VariableDeclaration{
			Type:         NodeTypeVariableDeclaration,
			Declarations: convertNodeListToChildren[any](c, declarationList.Declarations),
			Declare:      hasModifier(ast.KindDeclareKeyword, node),
			Kind:         getDeclarationKind(declarationList),
			Modifiers:    c.keepModifiers(node),
		})

		return c.fixExports(node, result)

	// mostly for for-of, for-in
	case ast.KindVariableDeclarationList:
		n := node.AsVariableDeclarationList()
		return c.createNode(node, &VariableDeclaration{
			Type:         NodeTypeVariableDeclaration,
			Declarations: convertNodeListToChildren[any](c, n.Declarations),
			Declare:      false,
			Kind:         getDeclarationKind(n),
		})

	// Expressions

	case ast.KindExpressionStatement:
		n := node.AsExpressionStatement()
		return c.createNode(node, &ExpressionStatement{
			Type:       NodeTypeExpressionStatement,
			Directive:  nil,
			Expression: c.convertChild(n.Expression, nil),
		})

	case ast.KindThisKeyword:
		return c.createNode(node, &ThisExpression{
			Type: NodeTypeThisExpression,
		})

	case ast.KindArrayLiteralExpression:
		n := node.AsArrayLiteralExpression()
		// array literals also appear on the left of destructuring assignments
		if c.allowPattern {
			return c.createNode(node, &ArrayPattern{
				Type:       NodeTypeArrayPattern,
				Decorators: []*Decorator{},
				Elements: mapSlice(n.Elements.Nodes, func(n *ast.Node) any {
					return c.convertPattern(n, nil)
				}),
				Optional:       false,
				TypeAnnotation: nil,
			})
		}
		return c.createNode(node, &ArrayExpression{
			Type: NodeTypeArrayExpression,
			Elements: mapSlice(n.Elements.Nodes, func(n *ast.Node) any {
				return c.convertChild(n, nil)
			}),
		})

	case ast.KindObjectLiteralExpression:
		n := node.AsObjectLiteralExpression()
		if c.allowPattern {
			return c.createNode(node, &ObjectPattern{
				Type:           NodeTypeObjectPattern,
				Decorators:     []*Decorator{},
				Optional:       false,
				Properties:     convertNodeListToChildrenAllowPattern[any](c, n.Properties),
				TypeAnnotation: nil,
			})
		}
		return c.createNode(node, &ObjectExpression{
			Type:       NodeTypeObjectExpression,
			Properties: convertNodeListToChildren[any](c, n.Properties),
		})

	case ast.KindPropertyAssignment:
		n := node.AsPropertyAssignment()
		name := n.Name()
		return c.createNode(node, &Property{
			Type:      NodeTypeProperty,
			Computed:  ast.IsComputedPropertyName(name),
			Key:       c.convertChild(name, nil),
			Kind:      "init",
			Method:    false,
			Optional:  false,
			Shorthand: false,
			Value:     c.converter(n.Initializer, node, c.allowPattern),
		})

	case ast.KindShorthandPropertyAssignment:
		n := node.AsShorthandPropertyAssignment()
		name := n.Name()
		if n.ObjectAssignmentInitializer != nil {
			return c.createNode(node, &Property{
				Type:      NodeTypeProperty,
				Computed:  false,
				Key:       c.convertChild(name, nil),
				Kind:      "init",
				Method:    false,
				Optional:  false,
				Shorthand: true,
				Value: c.createNode(node, &AssignmentPattern{
					Type:           NodeTypeAssignmentPattern,
					Decorators:     []*Decorator{},
					Left:           c.convertChild(name, nil),
					Optional:       false,
					Right:          c.convertChild(n.ObjectAssignmentInitializer, nil),
					TypeAnnotation: nil,
				}),
			})
		}
		return c.createNode(node, &Property{
			Type:      NodeTypeProperty,
			Computed:  false,
			Key:       c.convertChild(name, nil),
			Kind:      "init",
			Method:    false,
			Optional:  false,
			Shorthand: true,
			Value:     c.convertChild(name, nil),
		})

	case ast.KindComputedPropertyName:
		n := node.AsComputedPropertyName()
		return c.convertChild(n.Expression, nil)

	case ast.KindPropertyDeclaration:
		n := node.AsPropertyDeclaration()
		name := n.Name()

		isAbstract := hasModifier(ast.KindAbstractKeyword, node)
		isAccessor := hasModifier(ast.KindAccessorKeyword, node)

		accessibility := getTSNodeAccessibility(node)
		computed := ast.IsComputedPropertyName(name)
		declare := hasModifier(ast.KindDeclareKeyword, node)
		decorators := c.convertDecorators(node)
		definite := n.PostfixToken != nil && n.PostfixToken.Kind == ast.KindExclamationToken
		key := c.convertChild(name, nil)
		optional := (key.GetType() == NodeTypeLiteral ||
			ast.IsIdentifier(name) ||
			ast.IsComputedPropertyName(name) ||
			ast.IsPrivateIdentifier(name)) && n.PostfixToken != nil && n.PostfixToken.Kind == ast.KindQuestionToken
		override := hasModifier(ast.KindOverrideKeyword, node)
		readonly := hasModifier(ast.KindReadonlyKeyword, node)
		static := hasModifier(ast.KindStaticKeyword, node)
		modifiers := c.keepModifiers(node)
		var typeAnnotation *TSTypeAnnotation
		if n.Type != nil {
			typeAnnotation = c.convertTypeAnnotation(n.Type, node)
		}
		var value any
		if !isAbstract {
			value = c.convertChild(n.Initializer, nil)
		}

		var data Node
		switch {
		case isAccessor && isAbstract:
			data = &TSAbstractAccessorProperty{
				Type:           NodeTypeTSAbstractAccessorProperty,
				Accessibility:  accessibility,
				Computed:       computed,
				Declare:        declare,
				Decorators:     decorators,
				Definite:       definite,
				Key:            key,
				Optional:       optional,
				Override:       override,
				Readonly:       readonly,
				Static:         static,
				TypeAnnotation: typeAnnotation,
				Value:          value,
				Modifiers:      modifiers,
			}
		case isAccessor:
			data = &AccessorProperty{
				Type:           NodeTypeAccessorProperty,
				Accessibility:  accessibility,
				Computed:       computed,
				Declare:        declare,
				Decorators:     decorators,
				Definite:       definite,
				Key:            key,
				Optional:       optional,
				Override:       override,
				Readonly:       readonly,
				Static:         static,
				TypeAnnotation: typeAnnotation,
				Value:          value,
				Modifiers:      modifiers,
			}
		case isAbstract:
			data = &TSAbstractPropertyDefinition{
				Type:           NodeTypeTSAbstractPropertyDefinition,
				Accessibility:  accessibility,
				Computed:       computed,
				Declare:        declare,
				Decorators:     decorators,
				Definite:       definite,
				Key:            key,
				Optional:       optional,
				Override:       override,
				Readonly:       readonly,
				Static:         static,
				TypeAnnotation: typeAnnotation,
				Value:          value,
				Modifiers:      modifiers,
			}
		default:
			data = &PropertyDefinition{
				Type:           NodeTypePropertyDefinition,
				Accessibility:  accessibility,
				Computed:       computed,
				Declare:        declare,
				Decorators:     decorators,
				Definite:       definite,
				Key:            key,
				Optional:       optional,
				Override:       override,
				Readonly:       readonly,
				Static:         static,
				TypeAnnotation: typeAnnotation,
				Value:          value,
				Modifiers:      modifiers,
			}
		}

		return c.createNode(node, data)

	case ast.KindGetAccessor,
		ast.KindSetAccessor:
		if node.Parent.Kind == ast.KindInterfaceDeclaration ||
			node.Parent.Kind == ast.KindTypeLiteral {
			return c.convertMethodSignature(node)
		}
		// otherwise a non-type accessor
		fallthrough
	case ast.KindMethodDeclaration:
		name := node.Name()

		var postfixToken *ast.Node
		var asteriskToken *ast.Node

		switch node.Kind {
		case ast.KindGetAccessor:
			n := node.AsGetAccessorDeclaration()
			asteriskToken = n.AsteriskToken
			postfixToken = n.PostfixToken
		case ast.KindSetAccessor:
			n := node.AsSetAccessorDeclaration()
			asteriskToken = n.AsteriskToken
			postfixToken = n.PostfixToken
		case ast.KindMethodDeclaration:
			n := node.AsMethodDeclaration()
			asteriskToken = n.AsteriskToken
			postfixToken = n.PostfixToken
		}

		r := Range{node.ParameterList().Pos() - 1, node.End()}
		async := hasModifier(ast.KindAsyncKeyword, node)
		body := c.convertChild(node.Body(), nil)
		generator := asteriskToken != nil
		var params []any
		if parent.Kind == ast.KindObjectLiteralExpression {
			params = convertNodeListToChildren[any](c, node.ParameterList())
		} else {
			// unlike object literal methods, class method params can carry
			// decorators
			params = c.convertParameters(node.ParameterList())
		}
		returnType := c.convertTypeAnnotation(node.Type(), node)
		typeParameters := c.convertTSTypeParametersToTypeParametersDeclaration(node.TypeParameterList())

		var method Node
		if body == nil {
			method = c.createNode(node, &TSEmptyBodyFunctionExpression{
				Type:           NodeTypeTSEmptyBodyFunctionExpression,
				NodeBase:       spanOf(r),
				Async:          async,
				Body:           body,
				Declare:        false,
				Expression:     false,
				Generator:      generator,
				Id:             nil,
				Params:         params,
				ReturnType:     returnType,
				TypeParameters: typeParameters,
			})
		} else {
			method = c.createNode(node, &FunctionExpression{
				Type:           NodeTypeFunctionExpression,
				NodeBase:       spanOf(r),
				Async:          async,
				Body:           body.(*BlockStatement),
				Declare:        false,
				Expression:     false,
				Generator:      generator,
				Id:             nil,
				Params:         params,
				ReturnType:     returnType,
				TypeParameters: typeParameters,
			})
		}

		if typeParameters != nil {
			c.fixParentLocation(method, typeParameters)
		}

		var kind string
		if parent.Kind == ast.KindObjectLiteralExpression {
			kind = "init"
		} else {
			kind = "method"
		}

		static := hasModifier(ast.KindStaticKeyword, node)

		if node.Kind == ast.KindGetAccessor {
			kind = "get"
		} else if node.Kind == ast.KindSetAccessor {
			kind = "set"
		} else if !static && name.Kind == ast.KindStringLiteral && name.AsStringLiteral().Text == "constructor" {
			kind = "constructor"
		}

		computed := ast.IsComputedPropertyName(name)
		key := c.convertChild(name, nil)
		optional := postfixToken != nil && postfixToken.Kind == ast.KindQuestionToken

		if parent.Kind == ast.KindObjectLiteralExpression {
			return c.createNode(node, &Property{
				Type:      NodeTypeProperty,
				Computed:  computed,
				Key:       key,
				Kind:      kind,
				Method:    node.Kind == ast.KindMethodDeclaration,
				Optional:  optional,
				Shorthand: false,
				Value:     method,
			})
		}

		accessibility := getTSNodeAccessibility(node)
		decorators := c.convertDecorators(node)
		override := hasModifier(ast.KindOverrideKeyword, node)

		if hasModifier(ast.KindAbstractKeyword, node) {
			return c.createNode(node, &TSAbstractMethodDefinition{
				Type:          NodeTypeTSAbstractMethodDefinition,
				Accessibility: accessibility,
				Computed:      computed,
				Decorators:    decorators,
				Key:           key,
				Kind:          kind,
				Optional:      optional,
				Override:      override,
				Static:        static,
				Value:         method,
			})
		}
		return c.createNode(node, &MethodDefinition{
			Type:          NodeTypeMethodDefinition,
			Accessibility: accessibility,
			Computed:      computed,
			Decorators:    decorators,
			Key:           key,
			Kind:          kind,
			Optional:      optional,
			Override:      override,
			Static:        static,
			Value:         method,
		})

	// TypeScript uses this even for static methods named "constructor"
	case ast.KindConstructor:
		n := node.AsConstructorDeclaration()

		lastModifier := getLastModifier(node)
		var constructorTokenRange core.TextRange
		if lastModifier != nil {
			constructorTokenRange = scanner.GetRangeOfTokenAtPosition(c.sourceFile, lastModifier.End())
		}
		if constructorTokenRange.End() == 0 {
			constructorTokenRange = scanner.GetRangeOfTokenAtPosition(c.sourceFile, node.Pos())
		}

		r := Range{n.Parameters.Pos() - 1, node.End()}
		body := c.convertChild(n.Body, nil)
		params := c.convertParameters(n.Parameters)
		returnType := c.convertTypeAnnotation(n.Type, node)
		typeParameters := c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters)

		var constructor Node
		if n.Body == nil {
			constructor = c.createNode(node, &TSEmptyBodyFunctionExpression{
				Type:           NodeTypeTSEmptyBodyFunctionExpression,
				NodeBase:       spanOf(r),
				Async:          false,
				Body:           body,
				Declare:        false,
				Expression:     false,
				Generator:      false,
				Id:             nil,
				Params:         params,
				ReturnType:     returnType,
				TypeParameters: typeParameters,
			})
		} else {
			constructor = c.createNode(node, &FunctionExpression{
				Type:           NodeTypeFunctionExpression,
				NodeBase:       spanOf(r),
				Async:          false,
				Body:           body.(*BlockStatement),
				Declare:        false,
				Expression:     false,
				Generator:      false,
				Id:             nil,
				Params:         params,
				ReturnType:     returnType,
				TypeParameters: typeParameters,
			})
		}

		if typeParameters != nil {
			c.fixParentLocation(constructor, typeParameters)
		}

		constructorKey := c.createNode(node, &Identifier{
			Type:           NodeTypeIdentifier,
			NodeBase:       spanOf(Range{constructorTokenRange.Pos(), constructorTokenRange.End()}),
			Decorators:     []*Decorator{},
			Name:           "constructor",
			Optional:       false,
			TypeAnnotation: nil,
		})

		isStatic := hasModifier(ast.KindStaticKeyword, node)
		accessibility := getTSNodeAccessibility(node)
		kind := "constructor"
		if isStatic {
			kind = "method"
		}

		if hasModifier(ast.KindAbstractKeyword, node) {
			return c.createNode(node, &TSAbstractMethodDefinition{
				Type:          NodeTypeTSAbstractMethodDefinition,
				Accessibility: accessibility,
				Computed:      false,
				Decorators:    []*Decorator{},
				Key:           constructorKey,
				Kind:          kind,
				Optional:      false,
				Override:      false,
				Static:        isStatic,
				Value:         constructor,
			})
		}
		return c.createNode(node, &MethodDefinition{
			Type:          NodeTypeMethodDefinition,
			Accessibility: accessibility,
			Computed:      false,
			Decorators:    []*Decorator{},
			Key:           constructorKey,
			Kind:          kind,
			Optional:      false,
			Override:      false,
			Static:        isStatic,
			Value:         constructor,
		})

	case ast.KindFunctionExpression:
		n := node.AsFunctionExpression()
		return c.createNode(node, &FunctionExpression{
			Type:           NodeTypeFunctionExpression,
			Async:          hasModifier(ast.KindAsyncKeyword, node),
			Body:           c.convertChild(n.Body, nil).(*BlockStatement),
			Declare:        false,
			Expression:     false,
			Generator:      n.AsteriskToken != nil,
			Id:             convertChildT[*Identifier](c, n.Name(), nil),
			Params:         c.convertParameters(n.Parameters),
			ReturnType:     c.convertTypeAnnotation(n.Type, node),
			TypeParameters: c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters),
		})

	case ast.KindSuperKeyword:
		return c.createNode(node, &Super{
			Type: NodeTypeSuper,
		})

	case ast.KindArrayBindingPattern:
		n := node.AsBindingPattern()
		return c.createNode(node, &ArrayPattern{
			Type:       NodeTypeArrayPattern,
			Decorators: []*Decorator{},
			Elements: mapSlice(n.Elements.Nodes, func(n *ast.Node) any {
				return c.convertPattern(n, nil)
			}),
			Optional:       false,
			TypeAnnotation: nil,
		})

	// occurs with missing array elements like [,]
	case ast.KindOmittedExpression:
		return nil

	case ast.KindObjectBindingPattern:
		n := node.AsBindingPattern()
		return c.createNode(node, &ObjectPattern{
			Type:           NodeTypeObjectPattern,
			Decorators:     []*Decorator{},
			Optional:       false,
			Properties:     convertNodeListToChildrenAllowPattern[any](c, n.Elements),
			TypeAnnotation: nil,
		})

	case ast.KindBindingElement:
		n := node.AsBindingElement()
		name := n.Name()
		if parent.Kind == ast.KindArrayBindingPattern {
			arrayItem := c.convertChild(name, parent)

			if n.Initializer != nil {
				return c.createNode(node, &AssignmentPattern{
					Type:           NodeTypeAssignmentPattern,
					Decorators:     []*Decorator{},
					Left:           arrayItem,
					Optional:       false,
					Right:          c.convertChild(n.Initializer, nil),
					TypeAnnotation: nil,
				})
			}

			if n.DotDotDotToken != nil {
				return c.createNode(node, &RestElement{
					Type:           NodeTypeRestElement,
					Argument:       arrayItem,
					Decorators:     []*Decorator{},
					Optional:       false,
					TypeAnnotation: nil,
					Value:          nil,
				})
			}
			return arrayItem
		}

		var value Node
		if n.Initializer != nil {
			value = c.createNode(node, &AssignmentPattern{
				Type:           NodeTypeAssignmentPattern,
				NodeBase:       spanOf(Range{c.getNodeStart(name), n.Initializer.End()}),
				Decorators:     []*Decorator{},
				Left:           c.convertChild(name, nil),
				Optional:       false,
				Right:          c.convertChild(n.Initializer, nil),
				TypeAnnotation: nil,
			})
		}

		argument := n.PropertyName
		if argument == nil {
			argument = name
		}

		if n.DotDotDotToken != nil {
			return c.createNode(node, &RestElement{
				Type:           NodeTypeRestElement,
				Argument:       c.convertChild(argument, nil),
				Decorators:     []*Decorator{},
				Optional:       false,
				TypeAnnotation: nil,
				Value:          nil,
			})
		}

		if value == nil {
			value = c.convertChild(name, nil)
		}
		return c.createNode(node, &Property{
			Type:      NodeTypeProperty,
			Computed:  n.PropertyName != nil && n.PropertyName.Kind == ast.KindComputedPropertyName,
			Key:       c.convertChild(argument, nil),
			Kind:      "init",
			Method:    false,
			Optional:  false,
			Shorthand: n.PropertyName == nil,
			Value:     value,
		})

	case ast.KindArrowFunction:
		n := node.AsArrowFunction()
		return c.createNode(node, &ArrowFunctionExpression{
			Type:           NodeTypeArrowFunctionExpression,
			Async:          hasModifier(ast.KindAsyncKeyword, node),
			Body:           c.convertChild(n.Body, nil),
			Expression:     n.Body.Kind != ast.KindBlock,
			Generator:      false,
			Id:             nil,
			Params:         c.convertParameters(n.Parameters),
			ReturnType:     c.convertTypeAnnotation(n.Type, node),
			TypeParameters: c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters),
		})

	case ast.KindYieldExpression:
		n := node.AsYieldExpression()
		return c.createNode(node, &YieldExpression{
			Type:     NodeTypeYieldExpression,
			Argument: c.convertChild(n.Expression, nil),
			Delegate: n.AsteriskToken != nil,
		})

	case ast.KindAwaitExpression:
		n := node.AsAwaitExpression()
		return c.createNode(node, &AwaitExpression{
			Type:     NodeTypeAwaitExpression,
			Argument: c.convertChild(n.Expression, nil),
		})

	// Template literals

	case ast.KindNoSubstitutionTemplateLiteral:
		n := node.AsNoSubstitutionTemplateLiteral()
		return c.createNode(node, &TemplateLiteral{
			Type:        NodeTypeTemplateLiteral,
			Expressions: []any{},
			Quasis: []*TemplateElement{
				c.createNode(node, &TemplateElement{
					Type: NodeTypeTemplateElement,
					Tail: true,
					Value: TemplateElementValue{
						Cooked: n.Text,
						Raw:    c.sourceFile.Text[c.getNodeStart(node)+1 : node.End()-1],
					},
				}).(*TemplateElement),
			},
		})

	case ast.KindTemplateExpression:
		n := node.AsTemplateExpression()
		expressions := []any{}
		quasis := []*TemplateElement{c.convertChild(n.Head, nil).(*TemplateElement)}

		for _, templateSpan := range n.TemplateSpans.Nodes {
			s := templateSpan.AsTemplateSpan()
			expressions = append(expressions, c.convertChild(s.Expression, nil))
			quasis = append(quasis, c.convertChild(s.Literal, nil).(*TemplateElement))
		}

		return c.createNode(node, &TemplateLiteral{
			Type:        NodeTypeTemplateLiteral,
			Expressions: expressions,
			Quasis:      quasis,
		})

	case ast.KindTaggedTemplateExpression:
		n := node.AsTaggedTemplateExpression()
		return c.createNode(node, &TaggedTemplateExpression{
			Type:          NodeTypeTaggedTemplateExpression,
			Quasi:         c.convertChild(n.Template, nil).(*TemplateLiteral),
			Tag:           c.convertChild(n.Tag, nil),
			TypeArguments: c.convertTypeArgumentsToTypeParameterInstantiation(n.TypeArguments, node),
		})

	case ast.KindTemplateHead,
		ast.KindTemplateMiddle,
		ast.KindTemplateTail:
		tail := node.Kind == ast.KindTemplateTail

		// head and middle end with ${, tail with a single backtick
		rawEndOffset := 2
		if tail {
			rawEndOffset = 1
		}

		return c.createNode(node, &TemplateElement{
			Type: NodeTypeTemplateElement,
			Tail: tail,
			Value: TemplateElementValue{
				Cooked: node.Text(),
				Raw:    c.sourceFile.Text[c.getNodeStart(node)+1 : node.End()-rawEndOffset],
			},
		})

	// Patterns

	case ast.KindSpreadAssignment,
		ast.KindSpreadElement:
		if c.allowPattern {
			return c.createNode(node, &RestElement{
				Type:           NodeTypeRestElement,
				Argument:       c.convertPattern(node.Expression(), nil),
				Decorators:     []*Decorator{},
				Optional:       false,
				TypeAnnotation: nil,
				Value:          nil,
			})
		}
		return c.createNode(node, &SpreadElement{
			Type:     NodeTypeSpreadElement,
			Argument: c.convertChild(node.Expression(), nil),
		})

	case ast.KindParameter:
		n := node.AsParameterDeclaration()
		name := node.Name()

		var parameter Node
		var result Node
		if n.DotDotDotToken != nil {
			parameter = c.createNode(node, &RestElement{
				Type:           NodeTypeRestElement,
				Argument:       c.convertChild(name, nil),
				Decorators:     []*Decorator{},
				Optional:       false,
				TypeAnnotation: nil,
				Value:          nil,
			})
			result = parameter
		} else if n.Initializer != nil {
			parameter = c.convertChild(name, nil)
			result = c.createNode(node, &AssignmentPattern{
				Type:           NodeTypeAssignmentPattern,
				Decorators:     []*Decorator{},
				Left:           parameter,
				Optional:       false,
				Right:          c.convertChild(n.Initializer, nil),
				TypeAnnotation: nil,
			})

			if modifiers := node.ModifierNodes(); modifiers != nil {
				// AssignmentPattern should not include modifiers in its range
				c.setSpan(result, Range{parameter.GetRange()[0], result.GetRange()[1]})
			}
		} else {
			parameter = c.convertChild(name, parent)
			result = parameter
		}

		typeAnnotation := c.convertTypeAnnotation(n.Type, node)
		if typeAnnotation != nil {
			setProperty(parameter, "TypeAnnotation", typeAnnotation)
			c.fixParentLocation(parameter, typeAnnotation)
		}

		if n.QuestionToken != nil {
			if n.QuestionToken.End() > parameter.GetRange()[1] {
				c.setSpan(parameter, Range{parameter.GetRange()[0], n.QuestionToken.End()})
			}
			setProperty(parameter, "Optional", true)
		}

		if modifiers := getModifiers(node); modifiers != nil {
			return c.createNode(node, &TSParameterProperty{
				Type:          NodeTypeTSParameterProperty,
				Accessibility: getTSNodeAccessibility(node),
				Decorators:    []*Decorator{},
				Override:      hasModifier(ast.KindOverrideKeyword, node),
				Parameter:     result,
				Readonly:      hasModifier(ast.KindReadonlyKeyword, node),
				Static:        hasModifier(ast.KindStaticKeyword, node),
			})
		}
		return result

	// Classes

	case ast.KindClassDeclaration,
		ast.KindClassExpression:
		var heritageClauses *ast.NodeList
		if ast.IsClassDeclaration(node) {
			heritageClauses = node.AsClassDeclaration().HeritageClauses
		} else {
			heritageClauses = node.AsClassExpression().HeritageClauses
		}

		var extendsClause *ast.HeritageClause
		var implementsClause *ast.HeritageClause

		if heritageClauses != nil {
			for _, heritageClause := range heritageClauses.Nodes {
				h := heritageClause.AsHeritageClause()
				if h.Token == ast.KindExtendsKeyword && extendsClause == nil {
					extendsClause = h
				} else if h.Token == ast.KindImplementsKeyword && implementsClause == nil {
					implementsClause = h
				}
			}
		}

		memberList := node.MemberList()
		name := node.Name()

		abstract := hasModifier(ast.KindAbstractKeyword, node)
		body := c.createNode(node, &ClassBody{
			Type:     NodeTypeClassBody,
			NodeBase: spanOf(Range{memberList.Pos() - 1, node.End()}),
			Body: mapSlice(filterSlice(memberList.Nodes, func(m *ast.Node) bool {
				return m.Kind != ast.KindSemicolonClassElement
			}), func(m *ast.Node) any {
				return c.convertChild(m, nil)
			}),
		}).(*ClassBody)
		declare := hasModifier(ast.KindDeclareKeyword, node)
		decorators := c.convertDecorators(node)
		id, _ := c.convertChild(name, nil).(*Identifier)
		implements := []*TSClassImplements{}
		if implementsClause != nil {
			implements = convertNodeListToChildren[*TSClassImplements](c, implementsClause.Types)
		}
		var superClass any
		var superTypeArguments *TSTypeParameterInstantiation
		if extendsClause != nil && len(extendsClause.Types.Nodes) != 0 {
			super := extendsClause.Types.Nodes[0]
			superClass = c.convertChild(super.Expression(), nil)
			superTypeArguments = c.convertTypeArgumentsToTypeParameterInstantiation(super.TypeArgumentList(), super)
		}
		typeParameters := c.convertTSTypeParametersToTypeParametersDeclaration(node.TypeParameterList())
		modifiers := c.keepModifiers(node)

		var result Node
		if ast.IsClassDeclaration(node) {
			result = c.createNode(node, &ClassDeclaration{
				Type:               NodeTypeClassDeclaration,
				Abstract:           abstract,
				Body:               body,
				Declare:            declare,
				Decorators:         decorators,
				Id:                 id,
				Implements:         implements,
				SuperClass:         superClass,
				SuperTypeArguments: superTypeArguments,
				TypeParameters:     typeParameters,
				Modifiers:          modifiers,
			})
		} else {
			result = c.createNode(node, &ClassExpression{
				Type:               NodeTypeClassExpression,
				Abstract:           abstract,
				Body:               body,
				Declare:            declare,
				Decorators:         decorators,
				Id:                 id,
				Implements:         implements,
				SuperClass:         superClass,
				SuperTypeArguments: superTypeArguments,
				TypeParameters:     typeParameters,
				Modifiers:          modifiers,
			})
		}

		return c.fixExports(node, result)

	// Modules

	case ast.KindModuleBlock:
		n := node.AsModuleBlock()
		return c.createNode(node, &TSModuleBlock{
			Type: NodeTypeTSModuleBlock,
			Body: c.convertBodyExpressions(n.Statements, node),
		})

	case ast.KindImportDeclaration:
		n := node.AsImportDeclaration()
		attributes := []*ImportAttribute{}
		if n.Attributes != nil {
			attributes = convertNodeListToChildren[*ImportAttribute](c, n.Attributes.AsImportAttributes().Attributes)
		}

		importKind := "value"
		specifiers := []any{}

		if n.ImportClause != nil {
			importClause := n.ImportClause.AsImportClause()
			if importClause.IsTypeOnly {
				importKind = "type"
			}

			if importClause.Name() != nil {
				specifiers = append(specifiers, c.convertChild(n.ImportClause, nil))
			}

			if importClause.NamedBindings != nil {
				switch importClause.NamedBindings.Kind {
				case ast.KindNamespaceImport:
					specifiers = append(specifiers, c.convertChild(importClause.NamedBindings, nil))
				case ast.KindNamedImports:
					specifiers = append(specifiers, convertNodeListToChildren[any](c, importClause.NamedBindings.AsNamedImports().Elements)...)
				}
			}
		}

		return c.createNode(node, &ImportDeclaration{
			Type:       NodeTypeImportDeclaration,
			Attributes: attributes,
			ImportKind: importKind,
			Source:     c.convertChild(n.ModuleSpecifier, nil).(*Literal),
			Specifiers: specifiers,
		})

	case ast.KindNamespaceImport:
		return c.createNode(node, &ImportNamespaceSpecifier{
			Type:  NodeTypeImportNamespaceSpecifier,
			Local: c.convertChild(node.Name(), nil).(*Identifier),
		})

	case ast.KindImportSpecifier:
		n := node.AsImportSpecifier()
		name := node.Name()
		imported := n.PropertyName
		if imported == nil {
			imported = name
		}
		importKind := "value"
		if n.IsTypeOnly {
			importKind = "type"
		}
		return c.createNode(node, &ImportSpecifier{
			Type:       NodeTypeImportSpecifier,
			Imported:   c.convertChild(imported, nil),
			ImportKind: importKind,
			Local:      c.convertChild(name, nil).(*Identifier),
		})

	case ast.KindImportClause:
		local := c.convertChild(node.Name(), nil)
		return c.createNode(node, &ImportDefaultSpecifier{
			Type:     NodeTypeImportDefaultSpecifier,
			NodeBase: spanOf(local.GetRange()),
			Local:    local.(*Identifier),
		})

	case ast.KindExportDeclaration:
		n := node.AsExportDeclaration()

		attributes := []*ImportAttribute{}
		if n.Attributes != nil {
			attributes = convertNodeListToChildren[*ImportAttribute](c, n.Attributes.AsImportAttributes().Attributes)
		}

		exportKind := "value"
		if n.IsTypeOnly {
			exportKind = "type"
		}

		if n.ExportClause != nil && n.ExportClause.Kind == ast.KindNamedExports {
			return c.createNode(node, &ExportNamedDeclaration{
				Type:        NodeTypeExportNamedDeclaration,
				Attributes:  attributes,
				Declaration: nil,
				ExportKind:  exportKind,
				Source:      convertChildT[*Literal](c, n.ModuleSpecifier, nil),
				Specifiers:  convertNodeListToChildren[any](c, n.ExportClause.AsNamedExports().Elements),
			})
		}

		var exported any
		if n.ExportClause != nil && n.ExportClause.Kind == ast.KindNamespaceExport {
			exported = convertChildT[any](c, n.ExportClause.AsNamespaceExport().Name(), nil)
		}
		return c.createNode(node, &ExportAllDeclaration{
			Type:       NodeTypeExportAllDeclaration,
			Attributes: attributes,
			Exported:   exported,
			ExportKind: exportKind,
			Source:     convertChildT[*Literal](c, n.ModuleSpecifier, nil),
		})

	case ast.KindExportSpecifier:
		n := node.AsExportSpecifier()
		local := n.PropertyName
		if local == nil {
			local = n.Name()
		}
		exportKind := "value"
		if n.IsTypeOnly {
			exportKind = "type"
		}
		return c.createNode(node, &ExportSpecifier{
			Type:       NodeTypeExportSpecifier,
			Exported:   c.convertChild(n.Name(), nil),
			ExportKind: exportKind,
			Local:      c.convertChild(local, nil),
		})

	case ast.KindExportAssignment:
		n := node.AsExportAssignment()
		if n.IsExportEquals {
			return c.createNode(node, &TSExportAssignment{
				Type:       NodeTypeTSExportAssignment,
				Expression: c.convertChild(n.Expression, nil),
			})
		}
		return c.createNode(node, &ExportDefaultDeclaration{
			Type:        NodeTypeExportDefaultDeclaration,
			Declaration: c.convertChild(n.Expression, nil),
			ExportKind:  "value",
		})

	// Unary operations

	case ast.KindPrefixUnaryExpression,
		ast.KindPostfixUnaryExpression:
		var operatorToken ast.Kind
		var operand *ast.Node
		if ast.IsPrefixUnaryExpression(node) {
			n := node.AsPrefixUnaryExpression()
			operatorToken = n.Operator
			operand = n.Operand
		} else {
			n := node.AsPostfixUnaryExpression()
			operatorToken = n.Operator
			operand = n.Operand
		}
		operator := scanner.TokenToString(operatorToken)

		if operatorToken == ast.KindPlusPlusToken || operatorToken == ast.KindMinusMinusToken {
			return c.createNode(node, &UpdateExpression{
				Type:     NodeTypeUpdateExpression,
				Argument: c.convertChild(operand, nil),
				Operator: operator,
				Prefix:   node.Kind == ast.KindPrefixUnaryExpression,
			})
		}
		return c.createNode(node, &UnaryExpression{
			Type:     NodeTypeUnaryExpression,
			Argument: c.convertChild(operand, nil),
			Operator: operator,
			Prefix:   node.Kind == ast.KindPrefixUnaryExpression,
		})

	case ast.KindDeleteExpression:
		return c.createNode(node, &UnaryExpression{
			Type:     NodeTypeUnaryExpression,
			Argument: c.convertChild(node.AsDeleteExpression().Expression, nil),
			Operator: "delete",
			Prefix:   true,
		})

	case ast.KindVoidExpression:
		return c.createNode(node, &UnaryExpression{
			Type:     NodeTypeUnaryExpression,
			Argument: c.convertChild(node.AsVoidExpression().Expression, nil),
			Operator: "void",
			Prefix:   true,
		})

	case ast.KindTypeOfExpression:
		return c.createNode(node, &UnaryExpression{
			Type:     NodeTypeUnaryExpression,
			Argument: c.convertChild(node.AsTypeOfExpression().Expression, nil),
			Operator: "typeof",
			Prefix:   true,
		})

	case ast.KindTypeOperator:
		n := node.AsTypeOperatorNode()
		return c.createNode(node, &TSTypeOperator{
			Type:           NodeTypeTSTypeOperator,
			Operator:       scanner.TokenToString(n.Operator),
			TypeAnnotation: c.convertChild(n.Type, nil),
		})

	// Binary operations

	case ast.KindBinaryExpression:
		n := node.AsBinaryExpression()
		// TypeScript uses BinaryExpression for sequences as well
		if n.OperatorToken.Kind == ast.KindCommaToken {
			expressions := []any{}

			left := c.convertChild(n.Left, nil)

			if left.GetType() == NodeTypeSequenceExpression && n.Left.Kind != ast.KindParenthesizedExpression {
				expressions = append(expressions, left.(*SequenceExpression).Expressions...)
			} else {
				expressions = append(expressions, left)
			}

			expressions = append(expressions, c.convertChild(n.Right, nil))

			return c.createNode(node, &SequenceExpression{
				Type:        NodeTypeSequenceExpression,
				Expressions: expressions,
			})
		}

		if ast.IsAssignmentOperator(n.OperatorToken.Kind) {
			if c.allowPattern {
				return c.createNode(node, &AssignmentPattern{
					Type:           NodeTypeAssignmentPattern,
					Decorators:     []*Decorator{},
					Left:           c.convertPattern(n.Left, node),
					Optional:       false,
					Right:          c.convertChild(n.Right, nil),
					TypeAnnotation: nil,
				})
			}
			return c.createNode(node, &AssignmentExpression{
				Type:     NodeTypeAssignmentExpression,
				Operator: scanner.TokenToString(n.OperatorToken.Kind),
				Left:     c.convertPattern(n.Left, node),
				Right:    c.convertChild(n.Right, nil),
			})
		}

		if ast.IsLogicalOrCoalescingBinaryOperator(n.OperatorToken.Kind) {
			return c.createNode(node, &LogicalExpression{
				Type:     NodeTypeLogicalExpression,
				Operator: scanner.TokenToString(n.OperatorToken.Kind),
				Left:     c.convertChild(n.Left, node),
				Right:    c.convertChild(n.Right, nil),
			})
		}

		return c.createNode(node, &BinaryExpression{
			Type:     NodeTypeBinaryExpression,
			Operator: scanner.TokenToString(n.OperatorToken.Kind),
			Left:     c.convertChild(n.Left, node),
			Right:    c.convertChild(n.Right, nil),
		})

	case ast.KindPropertyAccessExpression:
		n := node.AsPropertyAccessExpression()
		result := c.createNode(node, &MemberExpression{
			Type:     NodeTypeMemberExpression,
			Computed: false,
			Object:   c.convertChild(n.Expression, nil),
			Optional: n.QuestionDotToken != nil,
			Property: c.convertChild(n.Name(), nil),
		})
		return c.convertChainExpression(result, node)

	case ast.KindElementAccessExpression:
		n := node.AsElementAccessExpression()
		result := c.createNode(node, &MemberExpression{
			Type:     NodeTypeMemberExpression,
			Computed: true,
			Object:   c.convertChild(n.Expression, nil),
			Optional: n.QuestionDotToken != nil,
			Property: c.convertChild(n.ArgumentExpression, nil),
		})
		return c.convertChainExpression(result, node)

	case ast.KindCallExpression:
		n := node.AsCallExpression()
		if n.Expression.Kind == ast.KindImportKeyword {
			var options any
			var source any
			if len(n.Arguments.Nodes) >= 2 {
				options = c.convertChild(n.Arguments.Nodes[1], nil)
				source = c.convertChild(n.Arguments.Nodes[0], nil)
			} else if len(n.Arguments.Nodes) >= 1 {
				source = c.convertChild(n.Arguments.Nodes[0], nil)
			}

			return c.createNode(node, &ImportExpression{
				Type:    NodeTypeImportExpression,
				Options: options,
				Source:  source,
			})
		}

		result := c.createNode(node, &CallExpression{
			Type:          NodeTypeCallExpression,
			Arguments:     convertNodeListToChildren[any](c, n.Arguments),
			Callee:        c.convertChild(n.Expression, nil),
			Optional:      n.QuestionDotToken != nil,
			TypeArguments: c.convertTypeArgumentsToTypeParameterInstantiation(n.TypeArguments, node),
		})

		return c.convertChainExpression(result, node)

	case ast.KindNewExpression:
		n := node.AsNewExpression()
		// NewExpression cannot contain an optional chain
		return c.createNode(node, &NewExpression{
			Type:          NodeTypeNewExpression,
			Arguments:     convertNodeListToChildren[any](c, n.Arguments),
			Callee:        c.convertChild(n.Expression, nil),
			TypeArguments: c.convertTypeArgumentsToTypeParameterInstantiation(n.TypeArguments, node),
		})

	case ast.KindConditionalExpression:
		n := node.AsConditionalExpression()
		return c.createNode(node, &ConditionalExpression{
			Type:       NodeTypeConditionalExpression,
			Alternate:  c.convertChild(n.WhenFalse, nil),
			Consequent: c.convertChild(n.WhenTrue, nil),
			Test:       c.convertChild(n.Condition, nil),
		})

	case ast.KindMetaProperty:
		n := node.AsMetaProperty()
		metaRange := scanner.GetRangeOfTokenAtPosition(c.sourceFile, node.Pos())
		return c.createNode(node, &MetaProperty{
			Type: NodeTypeMetaProperty,
			Meta: c.createNode(node, &Identifier{
				Type:           NodeTypeIdentifier,
				NodeBase:       spanOf(Range{metaRange.Pos(), metaRange.End()}),
				Decorators:     []*Decorator{},
				Name:           scanner.TokenToString(n.KeywordToken),
				Optional:       false,
				TypeAnnotation: nil,
			}).(*Identifier),
			Property: c.convertChild(n.Name(), nil).(*Identifier),
		})

	case ast.KindDecorator:
		return c.createNode(node, &Decorator{
			Type:       NodeTypeDecorator,
			Expression: c.convertChild(node.AsDecorator().Expression, nil),
		})

	// Literals

	case ast.KindStringLiteral:
		return c.createNode(node, &Literal{
			Type:  NodeTypeLiteral,
			Raw:   scanner.GetSourceTextOfNodeFromSourceFile(c.sourceFile, node, false),
			Value: node.AsStringLiteral().Text,
		})

	case ast.KindNumericLiteral:
		raw := scanner.GetSourceTextOfNodeFromSourceFile(c.sourceFile, node, false)
		return c.createNode(node, &Literal{
			Type:  NodeTypeLiteral,
			Raw:   raw,
			Value: parseNumericLiteral(raw),
		})

	case ast.KindBigIntLiteral:
		raw := node.AsBigIntLiteral().Text
		v := parseBigIntLiteral(raw)
		var value any
		var bigint string
		if v != nil {
			value = v
			bigint = v.String()
		}
		return c.createNode(node, &Literal{
			Type:   NodeTypeLiteral,
			Raw:    raw,
			Value:  value,
			Bigint: bigint,
		})

	case ast.KindRegularExpressionLiteral:
		n := node.AsRegularExpressionLiteral()
		terminatorIndex := strings.LastIndex(n.Text, "/")
		return c.createNode(node, &Literal{
			Type: NodeTypeLiteral,
			Raw:  n.Text,
			// there is no native regex value to carry across
			Value: nil,
			Regex: &RegexInfo{
				Pattern: n.Text[1:terminatorIndex],
				Flags:   n.Text[terminatorIndex+1:],
			},
		})

	case ast.KindTrueKeyword:
		return c.createNode(node, &Literal{
			Type:  NodeTypeLiteral,
			Raw:   "true",
			Value: true,
		})

	case ast.KindFalseKeyword:
		return c.createNode(node, &Literal{
			Type:  NodeTypeLiteral,
			Raw:   "false",
			Value: false,
		})

	case ast.KindNullKeyword:
		return c.createNode(node, &Literal{
			Type:  NodeTypeLiteral,
			Raw:   "null",
			Value: nil,
		})

	case ast.KindEmptyStatement:
		return c.createNode(node, &EmptyStatement{
			Type: NodeTypeEmptyStatement,
		})

	case ast.KindDebuggerStatement:
		return c.createNode(node, &DebuggerStatement{
			Type: NodeTypeDebuggerStatement,
		})

	// JSX

	case ast.KindJsxElement:
		n := node.AsJsxElement()
		return c.createNode(node, &JSXElement{
			Type:           NodeTypeJSXElement,
			Children:       convertNodeListToChildren[any](c, n.Children),
			ClosingElement: c.convertChild(n.ClosingElement, nil).(*JSXClosingElement),
			OpeningElement: c.convertChild(n.OpeningElement, nil).(*JSXOpeningElement),
		})

	case ast.KindJsxFragment:
		n := node.AsJsxFragment()
		return c.createNode(node, &JSXFragment{
			Type:            NodeTypeJSXFragment,
			Children:        convertNodeListToChildren[any](c, n.Children),
			ClosingFragment: c.convertChild(n.ClosingFragment, nil).(*JSXClosingFragment),
			OpeningFragment: c.convertChild(n.OpeningFragment, nil).(*JSXOpeningFragment),
		})

	case ast.KindJsxSelfClosingElement:
		n := node.AsJsxSelfClosingElement()
		// TypeScript has no openingElement for a self-closing tag, so one is
		// synthesized from the element itself
		return c.createNode(node, &JSXElement{
			Type:           NodeTypeJSXElement,
			Children:       []any{},
			ClosingElement: nil,
			OpeningElement: c.createNode(node, &JSXOpeningElement{
				Type:          NodeTypeJSXOpeningElement,
				Attributes:    convertNodeListToChildren[any](c, n.Attributes.AsJsxAttributes().Properties),
				Name:          c.convertJSXTagName(n.TagName, node),
				SelfClosing:   true,
				TypeArguments: c.convertTypeArgumentsToTypeParameterInstantiation(n.TypeArguments, node),
			}).(*JSXOpeningElement),
		})

	case ast.KindJsxOpeningElement:
		n := node.AsJsxOpeningElement()
		return c.createNode(node, &JSXOpeningElement{
			Type:          NodeTypeJSXOpeningElement,
			Attributes:    convertNodeListToChildren[any](c, n.Attributes.AsJsxAttributes().Properties),
			Name:          c.convertJSXTagName(n.TagName, node),
			SelfClosing:   false,
			TypeArguments: c.convertTypeArgumentsToTypeParameterInstantiation(n.TypeArguments, node),
		})

	case ast.KindJsxClosingElement:
		n := node.AsJsxClosingElement()
		return c.createNode(node, &JSXClosingElement{
			Type: NodeTypeJSXClosingElement,
			Name: c.convertJSXTagName(n.TagName, node),
		})

	case ast.KindJsxOpeningFragment:
		return c.createNode(node, &JSXOpeningFragment{
			Type: NodeTypeJSXOpeningFragment,
		})

	case ast.KindJsxClosingFragment:
		return c.createNode(node, &JSXClosingFragment{
			Type: NodeTypeJSXClosingFragment,
		})

	case ast.KindJsxExpression:
		n := node.AsJsxExpression()
		var expression Node
		if n.Expression != nil {
			expression = c.convertChild(n.Expression, nil)
		} else {
			expression = c.createNode(node, &JSXEmptyExpression{
				Type:     NodeTypeJSXEmptyExpression,
				NodeBase: spanOf(Range{c.getNodeStart(node) + 1, node.End() - 1}),
			})
		}

		if n.DotDotDotToken != nil {
			return c.createNode(node, &JSXSpreadChild{
				Type:       NodeTypeJSXSpreadChild,
				Expression: expression,
			})
		}
		return c.createNode(node, &JSXExpressionContainer{
			Type:       NodeTypeJSXExpressionContainer,
			Expression: expression,
		})

	case ast.KindJsxAttribute:
		n := node.AsJsxAttribute()
		return c.createNode(node, &JSXAttribute{
			Type:  NodeTypeJSXAttribute,
			Name:  c.convertJSXNamespaceOrIdentifier(n.Name()),
			Value: c.convertChild(n.Initializer, nil),
		})

	case ast.KindJsxText:
		start := node.Pos()
		end := node.End()
		text := c.sourceFile.Text[start:end]

		if c.opts.AltJSXText {
			return c.createNode(node, &Literal{
				Type:     NodeTypeLiteral,
				NodeBase: spanOf(Range{start, end}),
				Raw:      text,
				Value:    text,
			})
		}
		return c.createNode(node, &JSXText{
			Type:     NodeTypeJSXText,
			NodeBase: spanOf(Range{start, end}),
			Raw:      text,
			Value:    text,
		})

	case ast.KindJsxSpreadAttribute:
		n := node.AsJsxSpreadAttribute()
		return c.createNode(node, &JSXSpreadAttribute{
			Type:     NodeTypeJSXSpreadAttribute,
			Argument: c.convertChild(n.Expression, nil),
		})

	case ast.KindQualifiedName:
		n := node.AsQualifiedName()
		return c.createNode(node, &TSQualifiedName{
			Type:  NodeTypeTSQualifiedName,
			Left:  c.convertChild(n.Left, nil),
			Right: c.convertChild(n.Right, nil).(*Identifier),
		})

	// TypeScript specific

	case ast.KindTypeReference:
		n := node.AsTypeReference()
		return c.createNode(node, &TSTypeReference{
			Type:          NodeTypeTSTypeReference,
			TypeArguments: c.convertTypeArgumentsToTypeParameterInstantiation(n.TypeArguments, node),
			TypeName:      c.convertChild(n.TypeName, nil),
		})

	case ast.KindTypeParameter:
		n := node.AsTypeParameter()
		return c.createNode(node, &TSTypeParameter{
			Type:       NodeTypeTSTypeParameter,
			Const:      hasModifier(ast.KindConstKeyword, node),
			Constraint: c.convertChild(n.Constraint, nil),
			Default:    c.convertChild(n.DefaultType, nil),
			In:         hasModifier(ast.KindInKeyword, node),
			Name:       c.convertChild(n.Name(), nil).(*Identifier),
			Out:        hasModifier(ast.KindOutKeyword, node),
		})

	case ast.KindThisType:
		return c.createNode(node, &TSThisType{Type: NodeTypeTSThisType})
	case ast.KindAnyKeyword:
		return c.createNode(node, &TSAnyKeyword{Type: NodeTypeTSAnyKeyword})
	case ast.KindBigIntKeyword:
		return c.createNode(node, &TSBigIntKeyword{Type: NodeTypeTSBigIntKeyword})
	case ast.KindBooleanKeyword:
		return c.createNode(node, &TSBooleanKeyword{Type: NodeTypeTSBooleanKeyword})
	case ast.KindNeverKeyword:
		return c.createNode(node, &TSNeverKeyword{Type: NodeTypeTSNeverKeyword})
	case ast.KindNumberKeyword:
		return c.createNode(node, &TSNumberKeyword{Type: NodeTypeTSNumberKeyword})
	case ast.KindObjectKeyword:
		return c.createNode(node, &TSObjectKeyword{Type: NodeTypeTSObjectKeyword})
	case ast.KindStringKeyword:
		return c.createNode(node, &TSStringKeyword{Type: NodeTypeTSStringKeyword})
	case ast.KindSymbolKeyword:
		return c.createNode(node, &TSSymbolKeyword{Type: NodeTypeTSSymbolKeyword})
	case ast.KindUnknownKeyword:
		return c.createNode(node, &TSUnknownKeyword{Type: NodeTypeTSUnknownKeyword})
	case ast.KindVoidKeyword:
		return c.createNode(node, &TSVoidKeyword{Type: NodeTypeTSVoidKeyword})
	case ast.KindUndefinedKeyword:
		return c.createNode(node, &TSUndefinedKeyword{Type: NodeTypeTSUndefinedKeyword})
	case ast.KindIntrinsicKeyword:
		return c.createNode(node, &TSIntrinsicKeyword{Type: NodeTypeTSIntrinsicKeyword})

	case ast.KindNonNullExpression:
		n := node.AsNonNullExpression()
		nnExpr := c.createNode(node, &TSNonNullExpression{
			Type:       NodeTypeTSNonNullExpression,
			Expression: c.convertChild(n.Expression, nil),
		})
		return c.convertChainExpression(nnExpr, node)

	case ast.KindTypeLiteral:
		n := node.AsTypeLiteralNode()
		return c.createNode(node, &TSTypeLiteral{
			Type:    NodeTypeTSTypeLiteral,
			Members: convertNodeListToChildren[any](c, n.Members),
		})

	case ast.KindArrayType:
		n := node.AsArrayTypeNode()
		return c.createNode(node, &TSArrayType{
			Type:        NodeTypeTSArrayType,
			ElementType: c.convertChild(n.ElementType, nil),
		})

	case ast.KindIndexedAccessType:
		n := node.AsIndexedAccessTypeNode()
		return c.createNode(node, &TSIndexedAccessType{
			Type:       NodeTypeTSIndexedAccessType,
			IndexType:  c.convertChild(n.IndexType, nil),
			ObjectType: c.convertChild(n.ObjectType, nil),
		})

	case ast.KindConditionalType:
		n := node.AsConditionalTypeNode()
		return c.createNode(node, &TSConditionalType{
			Type:        NodeTypeTSConditionalType,
			CheckType:   c.convertChild(n.CheckType, nil),
			ExtendsType: c.convertChild(n.ExtendsType, nil),
			FalseType:   c.convertChild(n.FalseType, nil),
			TrueType:    c.convertChild(n.TrueType, nil),
		})

	case ast.KindTypeQuery:
		n := node.AsTypeQueryNode()
		return c.createNode(node, &TSTypeQuery{
			Type:          NodeTypeTSTypeQuery,
			ExprName:      c.convertChild(n.ExprName, nil),
			TypeArguments: c.convertTypeArgumentsToTypeParameterInstantiation(n.TypeArguments, node),
		})

	case ast.KindMappedType:
		n := node.AsMappedTypeNode()
		typeParameter := n.TypeParameter.AsTypeParameter()

		var optional any
		if n.QuestionToken != nil {
			if n.QuestionToken.Kind == ast.KindQuestionToken {
				optional = true
			} else {
				optional = scanner.TokenToString(n.QuestionToken.Kind)
			}
		}

		var readonly any
		if n.ReadonlyToken != nil {
			if n.ReadonlyToken.Kind == ast.KindReadonlyKeyword {
				readonly = true
			} else {
				readonly = scanner.TokenToString(n.ReadonlyToken.Kind)
			}
		}

		return c.createNode(node, &TSMappedType{
			Type:           NodeTypeTSMappedType,
			Constraint:     c.convertChild(typeParameter.Constraint, nil),
			Key:            c.convertChild(typeParameter.Name(), nil).(*Identifier),
			NameType:       c.convertChild(n.NameType, nil),
			Optional:       optional,
			Readonly:       readonly,
			TypeAnnotation: c.convertChild(n.Type, nil),
		})

	case ast.KindParenthesizedExpression:
		n := node.AsParenthesizedExpression()
		return c.convertChild(n.Expression, parent)

	case ast.KindTypeAliasDeclaration:
		n := node.AsTypeAliasDeclaration()
		result := c.createNode(node, &TSTypeAliasDeclaration{
			Type:           NodeTypeTSTypeAliasDeclaration,
			Declare:        hasModifier(ast.KindDeclareKeyword, node),
			Id:             c.convertChild(n.Name(), nil).(*Identifier),
			TypeAnnotation: c.convertChild(n.Type, nil),
			TypeParameters: c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters),
			Modifiers:      c.keepModifiers(node),
		})
		return c.fixExports(node, result)

	case ast.KindMethodSignature:
		return c.convertMethodSignature(node)

	case ast.KindPropertySignature:
		n := node.AsPropertySignatureDeclaration()
		name := n.Name()
		return c.createNode(node, &TSPropertySignature{
			Type:           NodeTypeTSPropertySignature,
			Accessibility:  getTSNodeAccessibility(node),
			Computed:       ast.IsComputedPropertyName(name),
			Key:            c.convertChild(name, nil),
			Optional:       n.PostfixToken != nil && n.PostfixToken.Kind == ast.KindQuestionToken,
			Readonly:       hasModifier(ast.KindReadonlyKeyword, node),
			Static:         hasModifier(ast.KindStaticKeyword, node),
			TypeAnnotation: c.convertTypeAnnotation(n.Type, node),
		})

	case ast.KindIndexSignature:
		n := node.AsIndexSignatureDeclaration()
		return c.createNode(node, &TSIndexSignature{
			Type:           NodeTypeTSIndexSignature,
			Accessibility:  getTSNodeAccessibility(node),
			Parameters:     convertNodeListToChildren[any](c, n.Parameters),
			Readonly:       hasModifier(ast.KindReadonlyKeyword, node),
			Static:         hasModifier(ast.KindStaticKeyword, node),
			TypeAnnotation: c.convertTypeAnnotation(n.Type, node),
		})

	case ast.KindConstructorType:
		n := node.AsConstructorTypeNode()
		return c.createNode(node, &TSConstructorType{
			Type:           NodeTypeTSConstructorType,
			Abstract:       hasModifier(ast.KindAbstractKeyword, node),
			Params:         c.convertParameters(n.Parameters),
			ReturnType:     c.convertTypeAnnotation(n.Type, node),
			TypeParameters: c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters),
		})

	case ast.KindFunctionType:
		n := node.AsFunctionTypeNode()
		return c.createNode(node, &TSFunctionType{
			Type:           NodeTypeTSFunctionType,
			Params:         c.convertParameters(n.Parameters),
			ReturnType:     c.convertTypeAnnotation(n.Type, node),
			TypeParameters: c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters),
		})

	case ast.KindConstructSignature:
		n := node.AsConstructSignatureDeclaration()
		return c.createNode(node, &TSConstructSignatureDeclaration{
			Type:           NodeTypeTSConstructSignatureDeclaration,
			Params:         c.convertParameters(n.Parameters),
			ReturnType:     c.convertTypeAnnotation(n.Type, node),
			TypeParameters: c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters),
		})

	case ast.KindCallSignature:
		n := node.AsCallSignatureDeclaration()
		return c.createNode(node, &TSCallSignatureDeclaration{
			Type:           NodeTypeTSCallSignatureDeclaration,
			Params:         c.convertParameters(n.Parameters),
			ReturnType:     c.convertTypeAnnotation(n.Type, node),
			TypeParameters: c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters),
		})

	case ast.KindExpressionWithTypeArguments:
		n := node.AsExpressionWithTypeArguments()
		expression := c.convertChild(n.Expression, nil)
		typeArguments := c.convertTypeArgumentsToTypeParameterInstantiation(n.TypeArguments, node)

		switch parent.Kind {
		case ast.KindInterfaceDeclaration:
			return c.createNode(node, &TSInterfaceHeritage{
				Type:          NodeTypeTSInterfaceHeritage,
				Expression:    expression,
				TypeArguments: typeArguments,
			})
		case ast.KindHeritageClause:
			return c.createNode(node, &TSClassImplements{
				Type:          NodeTypeTSClassImplements,
				Expression:    expression,
				TypeArguments: typeArguments,
			})
		default:
			return c.createNode(node, &TSInstantiationExpression{
				Type:          NodeTypeTSInstantiationExpression,
				Expression:    expression,
				TypeArguments: typeArguments,
			})
		}

	case ast.KindInterfaceDeclaration:
		n := node.AsInterfaceDeclaration()
		interfaceExtends := []*TSInterfaceHeritage{}
		if n.HeritageClauses != nil {
			for _, heritageClause := range n.HeritageClauses.Nodes {
				h := heritageClause.AsHeritageClause()
				for _, heritageType := range h.Types.Nodes {
					interfaceExtends = append(interfaceExtends, c.convertChild(heritageType, node).(*TSInterfaceHeritage))
				}
			}
		}

		result := c.createNode(node, &TSInterfaceDeclaration{
			Type: NodeTypeTSInterfaceDeclaration,
			Body: c.createNode(node, &TSInterfaceBody{
				Type:     NodeTypeTSInterfaceBody,
				NodeBase: spanOf(Range{n.Members.Pos() - 1, node.End()}),
				Body:     convertNodeListToChildren[any](c, n.Members),
			}).(*TSInterfaceBody),
			Declare:        hasModifier(ast.KindDeclareKeyword, node),
			Extends:        interfaceExtends,
			Id:             c.convertChild(n.Name(), nil).(*Identifier),
			TypeParameters: c.convertTSTypeParametersToTypeParametersDeclaration(n.TypeParameters),
			Modifiers:      c.keepModifiers(node),
		})

		return c.fixExports(node, result)

	case ast.KindTypePredicate:
		n := node.AsTypePredicateNode()
		var typeAnnotation *TSTypeAnnotation
		// type-guard annotations span just the type, not the colon
		if n.Type != nil {
			typeAnnotation = c.convertTypeAnnotation(n.Type, node)
			c.setSpan(typeAnnotation, typeAnnotation.TypeAnnotation.(Node).GetRange())
		}
		return c.createNode(node, &TSTypePredicate{
			Type:           NodeTypeTSTypePredicate,
			Asserts:        n.AssertsModifier != nil,
			ParameterName:  c.convertChild(n.ParameterName, nil),
			TypeAnnotation: typeAnnotation,
		})

	case ast.KindImportType:
		n := node.AsImportTypeNode()

		r := c.getRange(node)
		if n.IsTypeOf {
			r[0] = scanner.GetRangeOfTokenAtPosition(c.sourceFile, scanner.GetRangeOfTokenAtPosition(c.sourceFile, r[0]).End()).Pos()
		}

		var options *ObjectExpression

		if n.Attributes != nil {
			value := c.createNode(n.Attributes, &ObjectExpression{
				Type: NodeTypeObjectExpression,
				Properties: mapSlice(n.Attributes.AsImportAttributes().Attributes.Nodes, func(importAttribute *ast.Node) any {
					i := importAttribute.AsImportAttribute()
					return c.createNode(importAttribute, &Property{
						Type:      NodeTypeProperty,
						Computed:  false,
						Key:       c.convertChild(i.Name(), nil),
						Kind:      "init",
						Method:    false,
						Optional:  false,
						Shorthand: false,
						Value:     c.convertChild(i.Value, nil),
					})
				}),
			})

			commaToken := scanner.GetRangeOfTokenAtPosition(c.sourceFile, n.Argument.End())
			openBraceToken := scanner.GetRangeOfTokenAtPosition(c.sourceFile, commaToken.End())
			closeBraceToken := scanner.GetRangeOfTokenAtPosition(c.sourceFile, n.Attributes.Loc.End())
			withToken := scanner.GetRangeOfTokenAtPosition(c.sourceFile, openBraceToken.End())

			options = c.createNode(node, &ObjectExpression{
				Type:     NodeTypeObjectExpression,
				NodeBase: spanOf(Range{openBraceToken.Pos(), closeBraceToken.End()}),
				Properties: []any{
					c.createNode(node, &Property{
						Type:     NodeTypeProperty,
						NodeBase: spanOf(Range{withToken.Pos(), n.Attributes.End()}),
						Computed: false,
						Key: c.createNode(node, &Identifier{
							Type:           NodeTypeIdentifier,
							NodeBase:       spanOf(Range{withToken.Pos(), withToken.End()}),
							Decorators:     []*Decorator{},
							Name:           "with",
							Optional:       false,
							TypeAnnotation: nil,
						}),
						Kind:      "init",
						Method:    false,
						Optional:  false,
						Shorthand: false,
						Value:     value,
					}),
				},
			}).(*ObjectExpression)
		}

		result := c.createNode(node, &TSImportType{
			Type:          NodeTypeTSImportType,
			NodeBase:      spanOf(r),
			Argument:      c.convertChild(n.Argument, nil),
			Options:       options,
			Qualifier:     c.convertChild(n.Qualifier, nil),
			TypeArguments: c.convertTypeArgumentsToTypeParameterInstantiation(n.TypeArguments, node),
		})

		if n.IsTypeOf {
			return c.createNode(node, &TSTypeQuery{
				Type:          NodeTypeTSTypeQuery,
				ExprName:      result,
				TypeArguments: nil,
			})
		}
		return result

	case ast.KindEnumDeclaration:
		n := node.AsEnumDeclaration()
		result := c.createNode(node, &TSEnumDeclaration{
			Type: NodeTypeTSEnumDeclaration,
			Body: c.createNode(node, &TSEnumBody{
				Type:     NodeTypeTSEnumBody,
				NodeBase: spanOf(Range{n.Members.Pos() - 1, node.End()}),
				Members:  convertNodeListToChildren[any](c, n.Members),
			}).(*TSEnumBody),
			Const:     hasModifier(ast.KindConstKeyword, node),
			Declare:   hasModifier(ast.KindDeclareKeyword, node),
			Id:        c.convertChild(n.Name(), nil).(*Identifier),
			Modifiers: c.keepModifiers(node),
		})
		return c.fixExports(node, result)

	case ast.KindEnumMember:
		n := node.AsEnumMember()
		return c.createNode(node, &TSEnumMember{
			Type:        NodeTypeTSEnumMember,
			Computed:    n.Name().Kind == ast.KindComputedPropertyName,
			Id:          c.convertChild(n.Name(), nil),
			Initializer: c.convertChild(n.Initializer, nil),
		})

	case ast.KindModuleDeclaration:
		n := node.AsModuleDeclaration()

		isDeclare := hasModifier(ast.KindDeclareKeyword, node)
		name := node.Name()

		var id Node
		var kind string

		if ast.IsGlobalScopeAugmentation(node) {
			id = c.convertChild(name, nil)
			kind = "global"
		} else if ast.IsStringLiteral(name) {
			id = c.convertChild(name, nil)
			kind = "module"
		} else {
			// Nested namespaces are nested native nodes. Unravel them into a
			// TSQualifiedName chain with the innermost body as the node body.
			nameRes := c.createNode(name, &Identifier{
				Type:           NodeTypeIdentifier,
				Decorators:     []*Decorator{},
				Name:           name.Text(),
				Optional:       false,
				TypeAnnotation: nil,
			})

			for n.Body != nil && ast.IsModuleDeclaration(n.Body) && n.Body.AsModuleDeclaration().Name() != nil {
				n = n.Body.AsModuleDeclaration()

				isDeclare = isDeclare || hasModifier(ast.KindDeclareKeyword, n)
				nextName := n.Name()

				right := c.createNode(nextName, &Identifier{
					Type:           NodeTypeIdentifier,
					Decorators:     []*Decorator{},
					Name:           nextName.Text(),
					Optional:       false,
					TypeAnnotation: nil,
				})

				nameRes = c.createNode(nextName, &TSQualifiedName{
					Type:     NodeTypeTSQualifiedName,
					NodeBase: spanOf(Range{nameRes.GetRange()[0], right.GetRange()[1]}),
					Left:     nameRes,
					Right:    right.(*Identifier),
				})
			}

			id = nameRes
			kind = "module"
			if n.Keyword == ast.KindNamespaceKeyword {
				kind = "namespace"
			}
		}

		result := c.createNode(node, &TSModuleDeclaration{
			Type:      NodeTypeTSModuleDeclaration,
			Body:      convertChildT[*TSModuleBlock](c, n.Body, nil),
			Global:    n.Keyword == ast.KindGlobalKeyword,
			Declare:   isDeclare,
			Id:        id,
			Kind:      kind,
			Modifiers: c.keepModifiers(node),
		})

		return c.fixExports(node, result)

	// TypeScript specific types

	case ast.KindParenthesizedType:
		return c.convertChild(node.AsParenthesizedTypeNode().Type, nil)

	case ast.KindUnionType:
		n := node.AsUnionTypeNode()
		return c.createNode(node, &TSUnionType{
			Type:  NodeTypeTSUnionType,
			Types: convertNodeListToChildren[any](c, n.Types),
		})

	case ast.KindIntersectionType:
		n := node.AsIntersectionTypeNode()
		return c.createNode(node, &TSIntersectionType{
			Type:  NodeTypeTSIntersectionType,
			Types: convertNodeListToChildren[any](c, n.Types),
		})

	case ast.KindAsExpression:
		n := node.AsAsExpression()
		return c.createNode(node, &TSAsExpression{
			Type:           NodeTypeTSAsExpression,
			Expression:     c.convertChild(n.Expression, nil),
			TypeAnnotation: c.convertChild(n.Type, nil),
		})

	case ast.KindInferType:
		n := node.AsInferTypeNode()
		return c.createNode(node, &TSInferType{
			Type:          NodeTypeTSInferType,
			TypeParameter: c.convertChild(n.TypeParameter, nil).(*TSTypeParameter),
		})

	case ast.KindLiteralType:
		n := node.AsLiteralTypeNode()
		if n.Literal.Kind == ast.KindNullKeyword {
			// null types nest inside a LiteralType node, but the generic tree
			// keeps null as a keyword
			return c.createNode(n.Literal, &TSNullKeyword{
				Type: NodeTypeTSNullKeyword,
			})
		}
		return c.createNode(node, &TSLiteralType{
			Type:    NodeTypeTSLiteralType,
			Literal: c.convertChild(n.Literal, nil),
		})

	case ast.KindTypeAssertionExpression:
		n := node.AsTypeAssertion()
		return c.createNode(node, &TSTypeAssertion{
			Type:           NodeTypeTSTypeAssertion,
			Expression:     c.convertChild(n.Expression, nil),
			TypeAnnotation: c.convertChild(n.Type, nil),
		})

	case ast.KindImportEqualsDeclaration:
		n := node.AsImportEqualsDeclaration()
		importKind := "value"
		if n.IsTypeOnly {
			importKind = "type"
		}
		return c.fixExports(node, c.createNode(node, &TSImportEqualsDeclaration{
			Type:            NodeTypeTSImportEqualsDeclaration,
			Id:              c.convertChild(n.Name(), nil).(*Identifier),
			ImportKind:      importKind,
			ModuleReference: c.convertChild(n.ModuleReference, nil),
		}))

	case ast.KindExternalModuleReference:
		n := node.AsExternalModuleReference()
		return c.createNode(node, &TSExternalModuleReference{
			Type:       NodeTypeTSExternalModuleReference,
			Expression: c.convertChild(n.Expression, nil).(*Literal),
		})

	case ast.KindNamespaceExportDeclaration:
		n := node.AsNamespaceExportDeclaration()
		return c.createNode(node, &TSNamespaceExportDeclaration{
			Type: NodeTypeTSNamespaceExportDeclaration,
			Id:   c.convertChild(n.Name(), nil).(*Identifier),
		})

	case ast.KindAbstractKeyword:
		return c.createNode(node, &TSAbstractKeyword{
			Type: NodeTypeTSAbstractKeyword,
		})

	// Tuples

	case ast.KindTupleType:
		n := node.AsTupleTypeNode()
		return c.createNode(node, &TSTupleType{
			Type:         NodeTypeTSTupleType,
			ElementTypes: convertNodeListToChildren[any](c, n.Elements),
		})

	case ast.KindNamedTupleMember:
		n := node.AsNamedTupleMember()

		label := c.convertChild(n.Name(), node)
		member := c.createNode(node, &TSNamedTupleMember{
			Type:        NodeTypeTSNamedTupleMember,
			ElementType: c.convertChild(n.Type, node),
			Label:       label.(*Identifier),
			Optional:    n.QuestionToken != nil,
		})

		if n.DotDotDotToken != nil {
			// adjust the start to account for the "..."
			c.setSpan(member, Range{label.GetRange()[0], member.GetRange()[1]})
			return c.createNode(node, &TSRestType{
				Type:           NodeTypeTSRestType,
				TypeAnnotation: member,
			})
		}

		return member

	case ast.KindOptionalType:
		n := node.AsOptionalTypeNode()
		return c.createNode(node, &TSOptionalType{
			Type:           NodeTypeTSOptionalType,
			TypeAnnotation: c.convertChild(n.Type, nil),
		})

	case ast.KindRestType:
		n := node.AsRestTypeNode()
		return c.createNode(node, &TSRestType{
			Type:           NodeTypeTSRestType,
			TypeAnnotation: c.convertChild(n.Type, nil),
		})

	// Template literal types

	case ast.KindTemplateLiteralType:
		n := node.AsTemplateLiteralTypeNode()
		types := []any{}
		quasis := []*TemplateElement{c.convertChild(n.Head, nil).(*TemplateElement)}

		for _, templateSpan := range n.TemplateSpans.Nodes {
			t := templateSpan.AsTemplateLiteralTypeSpan()
			types = append(types, c.convertChild(t.Type, nil))
			quasis = append(quasis, c.convertChild(t.Literal, nil).(*TemplateElement))
		}

		return c.createNode(node, &TSTemplateLiteralType{
			Type:   NodeTypeTSTemplateLiteralType,
			Quasis: quasis,
			Types:  types,
		})

	case ast.KindClassStaticBlockDeclaration:
		n := node.AsClassStaticBlockDeclaration()
		return c.createNode(node, &StaticBlock{
			Type: NodeTypeStaticBlock,
			Body: c.convertBodyExpressions(n.Body.AsBlock().Statements, node),
		})

	case ast.KindImportAttribute:
		n := node.AsImportAttribute()
		return c.createNode(node, &ImportAttribute{
			Type:  NodeTypeImportAttribute,
			Key:   c.convertChild(n.Name(), nil),
			Value: c.convertChild(n.Value, nil),
		})

	case ast.KindSatisfiesExpression:
		n := node.AsSatisfiesExpression()
		return c.createNode(node, &TSSatisfiesExpression{
			Type:           NodeTypeTSSatisfiesExpression,
			Expression:     c.convertChild(n.Expression, nil),
			TypeAnnotation: c.convertChild(n.Type, nil),
		})
	}

	if c.opts.ErrorOnUnknownKind {
		panic(&UnsupportedNodeKindError{Kind: node.Kind, Start: c.getNodeStart(node)})
	}
	name := kindName(node.Kind)
	return c.createNode(node, &PassthroughNode{
		Type: NodeType("TS" + name),
		Kind: name,
	})
}
