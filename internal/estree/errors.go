package estree

import (
	"fmt"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
)

// UnsupportedNodeKindError reports a native node kind the conversion has no builder
// for. It is only produced when ErrorOnUnknownKind is set; otherwise such
// nodes become passthrough nodes.
type UnsupportedNodeKindError struct {
	Kind  ast.Kind
	Start int
}

func (e *UnsupportedNodeKindError) Error() string {
	return fmt.Sprintf("unknown AST node kind %s at position %d", kindName(e.Kind), e.Start)
}

func kindName(kind ast.Kind) string {
	return strings.TrimPrefix(kind.String(), "Kind")
}
