// Package project resolves source files to compiler Programs through tsconfig
// files, caching built Programs per config path.
package project

import (
	"fmt"

	"github.com/microsoft/typescript-go/shim/ast"
)

// ProjectNotFoundError reports a config path that does not exist on disk.
type ProjectNotFoundError struct {
	ConfigPath string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project config %q does not exist", e.ConfigPath)
}

// ProjectReadFailureError reports a config path that exists but could not be
// read, a directory for instance.
type ProjectReadFailureError struct {
	ConfigPath string
	Err        error
}

func (e *ProjectReadFailureError) Error() string {
	return fmt.Sprintf("could not read project config %q: %v", e.ConfigPath, e.Err)
}

func (e *ProjectReadFailureError) Unwrap() error {
	return e.Err
}

// ProjectMalformedError reports a config file that was read but did not parse
// as a valid tsconfig.
type ProjectMalformedError struct {
	ConfigPath  string
	Diagnostics []*ast.Diagnostic
}

func (e *ProjectMalformedError) Error() string {
	if len(e.Diagnostics) > 0 {
		return fmt.Sprintf("project config %q is malformed: %s", e.ConfigPath, e.Diagnostics[0].Message())
	}
	return fmt.Sprintf("project config %q is malformed", e.ConfigPath)
}
