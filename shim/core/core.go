// Package core re-exports typescript-go's internal core types.
package core

import (
	"github.com/microsoft/typescript-go/internal/core"
)

type (
	TextRange       = core.TextRange
	ScriptTarget    = core.ScriptTarget
	CompilerOptions = core.CompilerOptions
	Tristate        = core.Tristate
	WorkGroup       = core.WorkGroup
)

var (
	NewTextRange = core.NewTextRange
	NewWorkGroup = core.NewWorkGroup
)

const (
	ScriptTargetESNext = core.ScriptTargetESNext
	ScriptTargetLatest = core.ScriptTargetLatest

	TSTrue    = core.TSTrue
	TSFalse   = core.TSFalse
	TSUnknown = core.TSUnknown
)
