// Package checker re-exports typescript-go's type checker surface.
package checker

import (
	"unsafe"

	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/checker"
)

type (
	Checker   = checker.Checker
	Type      = checker.Type
	TypeFlags = checker.TypeFlags
)

const (
	TypeFlagsNumberLiteral = checker.TypeFlagsNumberLiteral
	TypeFlagsStringLiteral = checker.TypeFlagsStringLiteral
	TypeFlagsNumber        = checker.TypeFlagsNumber
	TypeFlagsString        = checker.TypeFlagsString
)

func Checker_GetTypeAtLocation(c *Checker, node *ast.Node) *Type {
	return c.GetTypeAtLocation(node)
}

// Type_flags reads Type's unexported flags field, which sits first in the
// struct.
func Type_flags(t *Type) TypeFlags {
	return *(*TypeFlags)(unsafe.Pointer(t))
}
