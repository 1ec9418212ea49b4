package project

import (
	"path"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/binder"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/parser"
	"github.com/microsoft/typescript-go/shim/scanner"
	"github.com/microsoft/typescript-go/shim/tspath"
)

// ParseIsolated parses and binds a single source file without any project
// context. The parser picks the dialect from the file extension, so a jsx
// request rewrites the extension to .tsx when needed.
func ParseIsolated(fileName string, source string, jsx bool, target core.ScriptTarget) *ast.SourceFile {
	if jsx && !strings.HasSuffix(fileName, ".tsx") && !strings.HasSuffix(fileName, ".jsx") {
		fileName = strings.TrimSuffix(fileName, path.Ext(fileName)) + ".tsx"
	}
	fileName = tspath.GetNormalizedAbsolutePath(fileName, "/")
	filePath := tspath.ToPath(fileName, "/", true)
	sourceFile := parser.ParseSourceFile(fileName, filePath, source, target, scanner.JSDocParsingModeParseAll)
	binder.BindSourceFile(sourceFile, &core.CompilerOptions{})
	return sourceFile
}
