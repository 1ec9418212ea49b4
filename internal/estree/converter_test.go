package estree

import (
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/binder"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/parser"
	"github.com/microsoft/typescript-go/shim/scanner"
	"github.com/microsoft/typescript-go/shim/tspath"
	"gotest.tools/v3/assert"
)

func parseFixture(t *testing.T, name string, src string) *ast.SourceFile {
	t.Helper()
	fileName := tspath.GetNormalizedAbsolutePath(name, "/")
	filePath := tspath.ToPath(fileName, "/", true)
	sourceFile := parser.ParseSourceFile(fileName, filePath, src, core.ScriptTargetESNext, scanner.JSDocParsingModeParseAll)
	binder.BindSourceFile(sourceFile, &core.CompilerOptions{})
	return sourceFile
}

func convertFixture(t *testing.T, src string, opts ConvertOptions) (*Program, *NodeMaps) {
	t.Helper()
	program, maps, err := Convert(parseFixture(t, "fixture.ts", src), opts)
	assert.NilError(t, err)
	return program, maps
}

func TestConvertVariableDeclaration(t *testing.T) {
	program, _ := convertFixture(t, "const x = 1;", ConvertOptions{Range: true, Loc: true})

	assert.Equal(t, program.Type, NodeTypeProgram)
	assert.Equal(t, program.SourceType, "script")
	assert.Equal(t, len(program.Body), 1)

	decl, ok := program.Body[0].(*VariableDeclaration)
	assert.Assert(t, ok)
	assert.Equal(t, decl.Kind, "const")
	assert.Equal(t, len(decl.Declarations), 1)

	declarator := decl.Declarations[0].(*VariableDeclarator)
	id := declarator.Id.(*Identifier)
	assert.Equal(t, id.Name, "x")
	assert.DeepEqual(t, id.Range, []int{6, 7})
	assert.Equal(t, id.Loc.Start.Line, 1)
	assert.Equal(t, id.Loc.Start.Column, 6)

	init := declarator.Init.(*Literal)
	assert.Equal(t, init.Value, float64(1))
	assert.Equal(t, init.Raw, "1")
}

func TestConvertModuleSourceType(t *testing.T) {
	program, _ := convertFixture(t, "import a from 'b';", ConvertOptions{})
	assert.Equal(t, program.SourceType, "module")
}

func TestSpanEmissionIsOptional(t *testing.T) {
	program, _ := convertFixture(t, "let a;", ConvertOptions{})
	assert.Assert(t, program.Range == nil)
	assert.Assert(t, program.Loc == nil)
	// spans are still tracked internally
	assert.Equal(t, program.GetRange()[1], 6)

	program, _ = convertFixture(t, "let a;", ConvertOptions{Range: true})
	assert.DeepEqual(t, program.Range, []int{0, 6})
	assert.Assert(t, program.Loc == nil)
}

func TestNodeMapsRoundTrip(t *testing.T) {
	sourceFile := parseFixture(t, "fixture.ts", "let a = b;")
	program, maps, err := Convert(sourceFile, ConvertOptions{})
	assert.NilError(t, err)

	esProgram, ok := maps.ESTreeNodeFor(sourceFile.AsNode())
	assert.Assert(t, ok)
	assert.Equal(t, esProgram, Node(program))

	tsProgram, ok := maps.TSNodeFor(program)
	assert.Assert(t, ok)
	assert.Equal(t, tsProgram, sourceFile.AsNode())
}

func TestExportedDeclarationMapsToInnerNode(t *testing.T) {
	sourceFile := parseFixture(t, "fixture.ts", "export const x = 1;")
	program, maps, err := Convert(sourceFile, ConvertOptions{Range: true})
	assert.NilError(t, err)

	export, ok := program.Body[0].(*ExportNamedDeclaration)
	assert.Assert(t, ok)
	assert.DeepEqual(t, export.Range, []int{0, 19})

	decl := export.Declaration.(*VariableDeclaration)
	assert.Equal(t, decl.Kind, "const")
	// the declaration starts past the export keyword
	assert.DeepEqual(t, decl.Range, []int{7, 19})

	// the native statement resolves to the declaration, not the wrapper
	esNode, ok := maps.ESTreeNodeFor(sourceFile.Statements.Nodes[0])
	assert.Assert(t, ok)
	assert.Equal(t, esNode, Node(decl))
}

func TestExportDefaultDeclaration(t *testing.T) {
	program, _ := convertFixture(t, "export default function f() {}", ConvertOptions{})
	export, ok := program.Body[0].(*ExportDefaultDeclaration)
	assert.Assert(t, ok)
	_, ok = export.Declaration.(*FunctionDeclaration)
	assert.Assert(t, ok)
}

func TestExportTypeKind(t *testing.T) {
	program, _ := convertFixture(t, "export interface I { a: string; }", ConvertOptions{})
	export := program.Body[0].(*ExportNamedDeclaration)
	assert.Equal(t, export.ExportKind, "type")
	_, ok := export.Declaration.(*TSInterfaceDeclaration)
	assert.Assert(t, ok)
}

func TestDirectives(t *testing.T) {
	program, _ := convertFixture(t, "'use strict';\nfoo();\n'not a directive';", ConvertOptions{})

	first := program.Body[0].(*ExpressionStatement)
	assert.Equal(t, first.Directive, any("use strict"))

	second := program.Body[1].(*ExpressionStatement)
	assert.Assert(t, second.Directive == nil)

	third := program.Body[2].(*ExpressionStatement)
	assert.Assert(t, third.Directive == nil)
}

func TestChainExpression(t *testing.T) {
	program, _ := convertFixture(t, "a?.b.c;", ConvertOptions{})
	chain, ok := program.Body[0].(*ExpressionStatement).Expression.(*ChainExpression)
	assert.Assert(t, ok)

	outer := chain.Expression.(*MemberExpression)
	assert.Assert(t, !outer.Optional)
	inner := outer.Object.(*MemberExpression)
	assert.Assert(t, inner.Optional)
}

func TestParenthesizedChainStopsUnwrapping(t *testing.T) {
	program, _ := convertFixture(t, "(a?.b).c;", ConvertOptions{})
	member, ok := program.Body[0].(*ExpressionStatement).Expression.(*MemberExpression)
	assert.Assert(t, ok)
	_, ok = member.Object.(*ChainExpression)
	assert.Assert(t, ok)
}

func TestSequenceExpressionFlattening(t *testing.T) {
	program, _ := convertFixture(t, "a, b, c;", ConvertOptions{})
	seq := program.Body[0].(*ExpressionStatement).Expression.(*SequenceExpression)
	assert.Equal(t, len(seq.Expressions), 3)
}

func TestDestructuringPatterns(t *testing.T) {
	program, _ := convertFixture(t, "const [a, ...rest] = xs;", ConvertOptions{})
	decl := program.Body[0].(*VariableDeclaration)
	pattern := decl.Declarations[0].(*VariableDeclarator).Id.(*ArrayPattern)
	assert.Equal(t, len(pattern.Elements), 2)
	_, ok := pattern.Elements[1].(*RestElement)
	assert.Assert(t, ok)
}

func TestAssignmentPatternInsideObjectPattern(t *testing.T) {
	program, _ := convertFixture(t, "({ a = 1 } = obj);", ConvertOptions{})
	assignment := program.Body[0].(*ExpressionStatement).Expression.(*AssignmentExpression)
	pattern := assignment.Left.(*ObjectPattern)
	property := pattern.Properties[0].(*Property)
	_, ok := property.Value.(*AssignmentPattern)
	assert.Assert(t, ok)
}

func TestNumericLiterals(t *testing.T) {
	program, _ := convertFixture(t, "[0x1f, 0b101, 1_000, 1.5e3];", ConvertOptions{})
	elements := program.Body[0].(*ExpressionStatement).Expression.(*ArrayExpression).Elements

	assert.Equal(t, elements[0].(*Literal).Value, float64(31))
	assert.Equal(t, elements[1].(*Literal).Value, float64(5))
	assert.Equal(t, elements[2].(*Literal).Value, float64(1000))
	assert.Equal(t, elements[3].(*Literal).Value, float64(1500))
}

func TestBigIntLiteral(t *testing.T) {
	program, _ := convertFixture(t, "10n;", ConvertOptions{})
	literal := program.Body[0].(*ExpressionStatement).Expression.(*Literal)
	assert.Equal(t, literal.Bigint, "10")
	assert.Equal(t, literal.Value.(*big.Int).Cmp(big.NewInt(10)), 0)
}

func TestRegexLiteral(t *testing.T) {
	program, _ := convertFixture(t, "/ab+c/gi;", ConvertOptions{})
	literal := program.Body[0].(*ExpressionStatement).Expression.(*Literal)
	assert.Assert(t, literal.Regex != nil)
	assert.Equal(t, literal.Regex.Pattern, "ab+c")
	assert.Equal(t, literal.Regex.Flags, "gi")
	assert.Assert(t, literal.Value == nil)
}

func TestBooleanAndNullLiterals(t *testing.T) {
	program, _ := convertFixture(t, "[true, false, null];", ConvertOptions{})
	elements := program.Body[0].(*ExpressionStatement).Expression.(*ArrayExpression).Elements
	assert.Equal(t, elements[0].(*Literal).Value, true)
	assert.Equal(t, elements[1].(*Literal).Value, false)
	assert.Assert(t, elements[2].(*Literal).Value == nil)
	assert.Equal(t, elements[2].(*Literal).Raw, "null")
}

func TestTemplateLiteral(t *testing.T) {
	program, _ := convertFixture(t, "`a${b}c`;", ConvertOptions{})
	template := program.Body[0].(*ExpressionStatement).Expression.(*TemplateLiteral)
	assert.Equal(t, len(template.Quasis), 2)
	assert.Equal(t, len(template.Expressions), 1)
	assert.Equal(t, template.Quasis[0].Value.Cooked, "a")
	assert.Equal(t, template.Quasis[0].Value.Raw, "a")
	assert.Assert(t, !template.Quasis[0].Tail)
	assert.Assert(t, template.Quasis[1].Tail)
}

func TestClassMembers(t *testing.T) {
	program, _ := convertFixture(t, `class A {
  constructor(private x: number) {}
  get y() { return this.x; }
  static m() {}
}`, ConvertOptions{})

	class := program.Body[0].(*ClassDeclaration)
	body := class.Body.Body
	assert.Equal(t, len(body), 3)

	ctor := body[0].(*MethodDefinition)
	assert.Equal(t, ctor.Kind, "constructor")
	assert.Equal(t, ctor.Key.(*Identifier).Name, "constructor")
	param := ctor.Value.(*FunctionExpression).Params[0].(*TSParameterProperty)
	assert.Equal(t, param.Accessibility, any("private"))

	getter := body[1].(*MethodDefinition)
	assert.Equal(t, getter.Kind, "get")

	static := body[2].(*MethodDefinition)
	assert.Equal(t, static.Kind, "method")
	assert.Assert(t, static.Static)
}

func TestAbstractMembers(t *testing.T) {
	program, _ := convertFixture(t, `abstract class A {
  abstract m(): void;
  abstract p: number;
}`, ConvertOptions{})

	class := program.Body[0].(*ClassDeclaration)
	assert.Assert(t, class.Abstract)

	_, ok := class.Body.Body[0].(*TSAbstractMethodDefinition)
	assert.Assert(t, ok)
	_, ok = class.Body.Body[1].(*TSAbstractPropertyDefinition)
	assert.Assert(t, ok)
}

func TestNestedNamespaceUnraveling(t *testing.T) {
	program, _ := convertFixture(t, "declare namespace foo.bar.baz {}", ConvertOptions{})
	module := program.Body[0].(*TSModuleDeclaration)
	assert.Equal(t, module.Kind, "namespace")
	assert.Assert(t, module.Declare)

	qualified := module.Id.(*TSQualifiedName)
	assert.Equal(t, qualified.Right.Name, "baz")
	left := qualified.Left.(*TSQualifiedName)
	assert.Equal(t, left.Right.Name, "bar")
	assert.Equal(t, left.Left.(*Identifier).Name, "foo")
}

func TestEnumDeclaration(t *testing.T) {
	program, _ := convertFixture(t, "const enum E { A, B = 2 }", ConvertOptions{})
	enum := program.Body[0].(*TSEnumDeclaration)
	assert.Assert(t, enum.Const)
	assert.Equal(t, len(enum.Body.Members), 2)

	second := enum.Body.Members[1].(*TSEnumMember)
	assert.Equal(t, second.Initializer.(*Literal).Value, float64(2))
}

func TestTypeAnnotationRangeIncludesColon(t *testing.T) {
	program, _ := convertFixture(t, "let a: string;", ConvertOptions{Range: true})
	decl := program.Body[0].(*VariableDeclaration)
	id := decl.Declarations[0].(*VariableDeclarator).Id.(*Identifier)
	assert.Assert(t, id.TypeAnnotation != nil)
	assert.Equal(t, id.TypeAnnotation.GetRange()[0], 5)
	// the identifier stretches to cover its annotation
	assert.DeepEqual(t, id.Range, []int{4, 13})
}

func TestImportExpression(t *testing.T) {
	program, _ := convertFixture(t, "import('mod');", ConvertOptions{})
	expr := program.Body[0].(*ExpressionStatement).Expression.(*ImportExpression)
	assert.Equal(t, expr.Source.(*Literal).Value, "mod")
	assert.Assert(t, expr.Options == nil)
}

func TestPreserveModifiers(t *testing.T) {
	program, _ := convertFixture(t, "export declare const x: number;", ConvertOptions{PreserveModifiers: true})
	export := program.Body[0].(*ExportNamedDeclaration)
	decl := export.Declaration.(*VariableDeclaration)
	assert.Equal(t, len(decl.Modifiers), 2)
	assert.Equal(t, decl.Modifiers[0].Kind, "export")
	assert.Equal(t, decl.Modifiers[1].Kind, "declare")

	program, _ = convertFixture(t, "declare const x: number;", ConvertOptions{})
	decl = program.Body[0].(*VariableDeclaration)
	assert.Assert(t, decl.Modifiers == nil)
}

func TestUnsupportedNodeKindErrorMessage(t *testing.T) {
	err := &UnsupportedNodeKindError{Kind: ast.KindJsxText, Start: 12}
	assert.ErrorContains(t, err, "JsxText")
	assert.ErrorContains(t, err, "12")
}

func TestConvertJSX(t *testing.T) {
	sourceFile := parseFixture(t, "fixture.tsx", "<div className=\"x\">{y}</div>;")
	program, _, err := Convert(sourceFile, ConvertOptions{})
	assert.NilError(t, err)

	element := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement)
	opening := element.OpeningElement
	assert.Equal(t, opening.Name.(*JSXIdentifier).Name, "div")
	assert.Assert(t, !opening.SelfClosing)

	attribute := opening.Attributes[0].(*JSXAttribute)
	assert.Equal(t, attribute.Name.(*JSXIdentifier).Name, "className")

	container := element.Children[0].(*JSXExpressionContainer)
	assert.Equal(t, container.Expression.(*Identifier).Name, "y")

	assert.Equal(t, element.ClosingElement.Name.(*JSXIdentifier).Name, "div")
}

func TestSelfClosingJSXSynthesizesOpeningElement(t *testing.T) {
	sourceFile := parseFixture(t, "fixture.tsx", "<br />;")
	program, _, err := Convert(sourceFile, ConvertOptions{})
	assert.NilError(t, err)

	element := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement)
	assert.Assert(t, element.OpeningElement.SelfClosing)
	assert.Assert(t, element.ClosingElement == nil)
	assert.Equal(t, len(element.Children), 0)
}

func TestAltJSXTextRepresentation(t *testing.T) {
	sourceFile := parseFixture(t, "fixture.tsx", "<div>text</div>;")

	program, _, err := Convert(sourceFile, ConvertOptions{})
	assert.NilError(t, err)
	element := program.Body[0].(*ExpressionStatement).Expression.(*JSXElement)
	jsxText := element.Children[0].(*JSXText)
	assert.Equal(t, jsxText.Value, "text")

	program, _, err = Convert(sourceFile, ConvertOptions{AltJSXText: true})
	assert.NilError(t, err)
	element = program.Body[0].(*ExpressionStatement).Expression.(*JSXElement)
	literal := element.Children[0].(*Literal)
	assert.Equal(t, literal.Value, "text")
}

func TestOmittedArrayElement(t *testing.T) {
	program, _ := convertFixture(t, "[, a];", ConvertOptions{})
	elements := program.Body[0].(*ExpressionStatement).Expression.(*ArrayExpression).Elements
	assert.Equal(t, len(elements), 2)
	assert.Assert(t, elements[0] == nil)
}

func TestParenthesizedExpressionUnwraps(t *testing.T) {
	program, _ := convertFixture(t, "(a);", ConvertOptions{})
	_, ok := program.Body[0].(*ExpressionStatement).Expression.(*Identifier)
	assert.Assert(t, ok)
}

func TestNullLiteralType(t *testing.T) {
	program, _ := convertFixture(t, "type N = null;", ConvertOptions{})
	alias := program.Body[0].(*TSTypeAliasDeclaration)
	_, ok := alias.TypeAnnotation.(*TSNullKeyword)
	assert.Assert(t, ok)
}

func TestNamedTupleRestMember(t *testing.T) {
	program, _ := convertFixture(t, "type T = [first: string, ...rest: number[]];", ConvertOptions{})
	alias := program.Body[0].(*TSTypeAliasDeclaration)
	tuple := alias.TypeAnnotation.(*TSTupleType)
	assert.Equal(t, len(tuple.ElementTypes), 2)

	_, ok := tuple.ElementTypes[0].(*TSNamedTupleMember)
	assert.Assert(t, ok)
	rest := tuple.ElementTypes[1].(*TSRestType)
	_, ok = rest.TypeAnnotation.(*TSNamedTupleMember)
	assert.Assert(t, ok)
}

func TestConversionIsIdempotent(t *testing.T) {
	sourceFile := parseFixture(t, "fixture.ts", "export const x: number = f(1, 'a');\n")

	first, firstMaps, err := Convert(sourceFile, ConvertOptions{Range: true, Loc: true})
	assert.NilError(t, err)
	second, secondMaps, err := Convert(sourceFile, ConvertOptions{Range: true, Loc: true})
	assert.NilError(t, err)

	firstJSON, err := json.Marshal(first)
	assert.NilError(t, err)
	secondJSON, err := json.Marshal(second)
	assert.NilError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
	assert.Assert(t, firstMaps != secondMaps)
}

func TestRangeContainment(t *testing.T) {
	src := "export class A<T> extends B implements C {\n" +
		"  constructor(private readonly x: T[] = []) { super(); }\n" +
		"  get v(): T { return this.x[0]; }\n" +
		"}\n"
	program, _ := convertFixture(t, src, ConvertOptions{Range: true})
	WireParents(program)

	TraverseAST(program, func(node Node) {
		parent := node.GetParent()
		if parent == nil {
			return
		}
		nr, pr := node.GetRange(), parent.GetRange()
		assert.Assert(t, nr[0] <= nr[1], "inverted range %v on %s", nr, node.GetType())
		assert.Assert(t, nr[0] >= pr[0] && nr[1] <= pr[1],
			"%s %v escapes %s %v", node.GetType(), nr, parent.GetType(), pr)
	}, nil)
}

func TestEmptySequencesSerializeAsArrays(t *testing.T) {
	program, _ := convertFixture(t, "function f() {}\nconst a = [];\n", ConvertOptions{})

	out, err := json.Marshal(program)
	assert.NilError(t, err)
	text := string(out)

	assert.Assert(t, strings.Contains(text, `"params":[]`))
	assert.Assert(t, strings.Contains(text, `"elements":[]`))
	assert.Assert(t, !strings.Contains(text, `"body":null`))
	assert.Assert(t, !strings.Contains(text, `"params":null`))
	assert.Assert(t, !strings.Contains(text, `"elements":null`))

	fn := program.Body[0].(*FunctionDeclaration)
	body := fn.Body
	assert.Assert(t, body.Body != nil)
	assert.Equal(t, len(body.Body), 0)
}

func TestUnknownKindNonStrictEmitsPassthrough(t *testing.T) {
	sourceFile := parseFixture(t, "fixture.ts", "debugger;")
	sourceFile.Statements.Nodes[0].Kind = ast.KindJSDocText

	program, _, err := Convert(sourceFile, ConvertOptions{})
	assert.NilError(t, err)

	pass, ok := program.Body[0].(*PassthroughNode)
	assert.Assert(t, ok)
	assert.Equal(t, pass.Kind, "JSDocText")
	assert.Equal(t, pass.Type, NodeType("TSJSDocText"))
}

func TestUnknownKindStrictFailsConversion(t *testing.T) {
	sourceFile := parseFixture(t, "fixture.ts", "debugger;")
	sourceFile.Statements.Nodes[0].Kind = ast.KindJSDocText

	_, _, err := Convert(sourceFile, ConvertOptions{ErrorOnUnknownKind: true})

	var unsupported *UnsupportedNodeKindError
	assert.Assert(t, errors.As(err, &unsupported))
	assert.Equal(t, unsupported.Kind, ast.KindJSDocText)
}
