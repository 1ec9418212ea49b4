// Package stringutil re-exports typescript-go's internal string helpers.
package stringutil

import (
	"github.com/microsoft/typescript-go/internal/stringutil"
)

var IsLineBreak = stringutil.IsLineBreak
