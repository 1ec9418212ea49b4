// Package compiler re-exports typescript-go's program construction surface.
package compiler

import (
	"github.com/microsoft/typescript-go/internal/compiler"
)

type (
	Program        = compiler.Program
	ProgramOptions = compiler.ProgramOptions
	CompilerHost   = compiler.CompilerHost
)

var (
	NewProgram      = compiler.NewProgram
	NewCompilerHost = compiler.NewCompilerHost
)
