package project

import (
	"crypto/sha256"
	"os"

	"github.com/microsoft/typescript-go/shim/bundled"
	"github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs/cachedvfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"
)

// ResolveForFile walks configPaths in order and returns the first Program
// whose file set contains filePath. Programs are built on demand and cached;
// a changed config file rebuilds its Program. When every config loads cleanly
// but none contains the file, both results are nil.
func ResolveForFile(cache *Cache, filePath string, configPaths []string) (*compiler.Program, error) {
	normalizedFilePath := tspath.NormalizePath(filePath)
	for _, configPath := range configPaths {
		program, err := cache.programFor(configPath)
		if err != nil {
			return nil, err
		}
		if program.GetSourceFile(normalizedFilePath) != nil {
			return program, nil
		}
	}
	return nil, nil
}

func (c *Cache) programFor(configPath string) (*compiler.Program, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ProjectNotFoundError{ConfigPath: configPath}
		}
		return nil, &ProjectReadFailureError{ConfigPath: configPath, Err: err}
	}
	hash := sha256.Sum256(content)
	if program, ok := c.lookup(configPath, hash); ok {
		return program, nil
	}

	result, err, _ := c.group.Do(configPath, func() (any, error) {
		if program, ok := c.lookup(configPath, hash); ok {
			return program, nil
		}
		program, err := buildProgram(configPath)
		if err != nil {
			return nil, err
		}
		c.store(configPath, hash, program)
		return program, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*compiler.Program), nil
}

func buildProgram(configPath string) (*compiler.Program, error) {
	fs := bundled.WrapFS(cachedvfs.From(osvfs.FS()))
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	}
	cwd = tspath.NormalizePath(cwd)
	configFileName := tspath.GetNormalizedAbsolutePath(configPath, cwd)

	host := compiler.NewCompilerHost(nil, cwd, fs, bundled.LibPath())
	commandLine, diagnostics := tsoptions.GetParsedCommandLineOfConfigFile(configFileName, &core.CompilerOptions{}, host, nil)
	if len(diagnostics) > 0 {
		return nil, &ProjectMalformedError{ConfigPath: configPath, Diagnostics: diagnostics}
	}

	program := compiler.NewProgram(compiler.ProgramOptions{
		ConfigFileName: configFileName,
		RootFiles:      commandLine.FileNames(),
		Options:        commandLine.CompilerOptions(),
		Host:           host,
		SingleThreaded: true,
	})
	return program, nil
}
