// Package bundled re-exports typescript-go's embedded standard library files.
package bundled

import (
	"github.com/microsoft/typescript-go/internal/bundled"
)

var (
	WrapFS  = bundled.WrapFS
	LibPath = bundled.LibPath
)
