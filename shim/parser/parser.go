// Package parser re-exports typescript-go's internal parser entry points.
package parser

import (
	"github.com/microsoft/typescript-go/internal/parser"
)

var ParseSourceFile = parser.ParseSourceFile
