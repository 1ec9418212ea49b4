// Package tsoptions re-exports typescript-go's tsconfig parsing surface.
package tsoptions

import (
	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/core"
	"github.com/microsoft/typescript-go/internal/tsoptions"
	"github.com/microsoft/typescript-go/internal/tspath"
)

type (
	ParsedCommandLine        = tsoptions.ParsedCommandLine
	ParseConfigHost          = tsoptions.ParseConfigHost
	ExtendedConfigCacheEntry = tsoptions.ExtendedConfigCacheEntry
)

// GetParsedCommandLineOfConfigFile mirrors the compiler driver's config file
// loading, rebuilt from the exported parsing pieces: read the file, wrap it
// as a tsconfig source file, and parse the content against the host's file
// system.
func GetParsedCommandLineOfConfigFile(configFileName string, options *core.CompilerOptions, host ParseConfigHost, extendedConfigCache map[tspath.Path]*ExtendedConfigCacheEntry) (*ParsedCommandLine, []*ast.Diagnostic) {
	configText, errors := tsoptions.TryReadFile(configFileName, host.FS().ReadFile, nil)
	if len(errors) > 0 {
		return nil, errors
	}

	cwd := host.GetCurrentDirectory()
	absoluteFileName := tspath.GetNormalizedAbsolutePath(configFileName, cwd)
	tsconfigSourceFile := tsoptions.NewTsconfigSourceFileFromFilePath(
		absoluteFileName,
		tspath.ToPath(configFileName, cwd, host.FS().UseCaseSensitiveFileNames()),
		configText,
	)
	parsed := tsoptions.ParseJsonSourceFileConfigFileContent(
		tsconfigSourceFile,
		host,
		tspath.GetDirectoryPath(absoluteFileName),
		options,
		absoluteFileName,
		nil,
		nil,
		extendedConfigCache,
	)
	return parsed, parsed.Errors
}
