// Package scanner re-exports typescript-go's internal scanner surface.
package scanner

import (
	"github.com/microsoft/typescript-go/internal/scanner"
)

type Scanner = scanner.Scanner

var (
	NewScanner                          = scanner.NewScanner
	GetTokenPosOfNode                   = scanner.GetTokenPosOfNode
	GetRangeOfTokenAtPosition           = scanner.GetRangeOfTokenAtPosition
	GetSourceTextOfNodeFromSourceFile   = scanner.GetSourceTextOfNodeFromSourceFile
	GetLineAndCharacterOfPosition       = scanner.GetLineAndCharacterOfPosition
	TokenToString                       = scanner.TokenToString
	GetIdentifierToken                  = scanner.GetIdentifierToken
)

const (
	JSDocParsingModeParseAll = scanner.JSDocParsingModeParseAll
)
