// Package tsestree is the public entry point for converting TypeScript source
// into an ESTree-shaped tree, optionally backed by a type-checking Program
// resolved through tsconfig projects.
package tsestree

import (
	"fmt"
	"os"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tspath"

	"github.com/uniqueiniquity/typescript-estree/internal/estree"
	"github.com/uniqueiniquity/typescript-estree/internal/project"
)

// Options controls parsing and conversion.
type Options struct {
	// Range and Loc attach byte ranges and line/column locations to every
	// emitted node.
	Range bool
	Loc   bool

	// Tokens and Comment attach the token and comment streams to the AST root.
	Tokens  bool
	Comment bool

	// Tolerant collects parser diagnostics into Result.Errors instead of
	// failing on the first one.
	Tolerant bool

	// JSX parses the source as TSX.
	JSX bool

	// UseAltJSXTextRepresentation emits JSX text children as Literal nodes.
	UseAltJSXTextRepresentation bool

	// ErrorOnUnknownKind fails conversion on native kinds with no dedicated
	// builder instead of emitting passthrough nodes.
	ErrorOnUnknownKind bool

	// PreserveModifiers keeps raw modifier keyword lists on declarations.
	PreserveModifiers bool

	// FilePath names the virtual (or real, for project resolution) source
	// file. Defaults to estree.ts, or estree.tsx with JSX set.
	FilePath string

	// Projects lists tsconfig paths to resolve the file against, in order.
	Projects []string
}

// SyntaxError is a single parser diagnostic with its source position.
type SyntaxError struct {
	Message string
	Pos     int
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Line, e.Column)
}

// Result is the output of a parse: the converted tree plus whatever services
// the options asked for. Program and Maps are nil unless project resolution
// found a matching project.
type Result struct {
	AST      *estree.Program
	Tokens   []*estree.Token
	Comments []*estree.Comment
	Maps     *estree.NodeMaps
	Program  *compiler.Program
	Errors   []SyntaxError
}

var programCache = project.NewCache()

// SetProgramCache replaces the package-level Program cache and returns the
// previous one.
func SetProgramCache(cache *project.Cache) *project.Cache {
	previous := programCache
	programCache = cache
	return previous
}

// ParseAST parses source in isolation and converts it. No Program is
// attached; node maps are still populated.
func ParseAST(source string, opts Options) (*Result, error) {
	sourceFile := project.ParseIsolated(fileNameFor(opts), source, opts.JSX, core.ScriptTargetESNext)
	result, err := convertParsed(sourceFile, source, opts)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ParseAndGenerateServices parses source and, when Projects is non-empty,
// tries to resolve the file to a Program built from one of the configs. When
// a project matches, the Program's own source file is converted and attached;
// when none matches, the result falls back to an isolated parse with nil
// Program and Maps.
func ParseAndGenerateServices(source string, opts Options) (*Result, error) {
	if len(opts.Projects) == 0 {
		result, err := ParseAST(source, opts)
		if err != nil {
			return nil, err
		}
		result.Maps = nil
		return result, nil
	}

	filePath := tspath.GetNormalizedAbsolutePath(fileNameFor(opts), currentDirectory())
	program, err := project.ResolveForFile(programCache, filePath, opts.Projects)
	if err != nil {
		return nil, err
	}
	if program == nil {
		result, err := ParseAST(source, opts)
		if err != nil {
			return nil, err
		}
		result.Maps = nil
		return result, nil
	}

	sourceFile := program.GetSourceFile(filePath)
	if sourceFile == nil {
		return nil, fmt.Errorf("program built from %v does not contain %s", opts.Projects, filePath)
	}
	result, err := convertParsed(sourceFile, sourceFile.Text, opts)
	if err != nil {
		return nil, err
	}
	result.Program = program
	return result, nil
}

func convertParsed(sourceFile *ast.SourceFile, source string, opts Options) (*Result, error) {
	syntaxErrors, err := collectDiagnostics(sourceFile, source, opts.Tolerant)
	if err != nil {
		return nil, err
	}

	astProgram, maps, err := estree.Convert(sourceFile, estree.ConvertOptions{
		Range:              opts.Range,
		Loc:                opts.Loc,
		Tokens:             opts.Tokens,
		Comment:            opts.Comment,
		AltJSXText:         opts.UseAltJSXTextRepresentation,
		ErrorOnUnknownKind: opts.ErrorOnUnknownKind,
		PreserveModifiers:  opts.PreserveModifiers,
	})
	if err != nil {
		return nil, err
	}
	estree.WireParents(astProgram)

	return &Result{
		AST:      astProgram,
		Tokens:   astProgram.Tokens,
		Comments: astProgram.Comments,
		Maps:     maps,
		Errors:   syntaxErrors,
	}, nil
}

func collectDiagnostics(sourceFile *ast.SourceFile, source string, tolerant bool) ([]SyntaxError, error) {
	diagnostics := sourceFile.Diagnostics()
	if len(diagnostics) == 0 {
		return nil, nil
	}
	translator := estree.NewSpanTranslator(source)
	if !tolerant {
		return nil, syntaxErrorFor(diagnostics[0], translator)
	}
	errs := make([]SyntaxError, 0, len(diagnostics))
	for _, d := range diagnostics {
		errs = append(errs, *syntaxErrorFor(d, translator))
	}
	return errs, nil
}

func syntaxErrorFor(d *ast.Diagnostic, translator *estree.SpanTranslator) *SyntaxError {
	pos := d.Loc().Pos()
	position := translator.PositionFor(pos)
	return &SyntaxError{
		Message: d.Message(),
		Pos:     pos,
		Line:    position.Line,
		Column:  position.Column,
	}
}

func currentDirectory() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "/"
	}
	return tspath.NormalizePath(cwd)
}

func fileNameFor(opts Options) string {
	if opts.FilePath != "" {
		return opts.FilePath
	}
	if opts.JSX {
		return "estree.tsx"
	}
	return "estree.ts"
}
