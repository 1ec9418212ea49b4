package estree

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// parseNumericLiteral evaluates the raw text of a numeric literal the way a
// JavaScript engine would, including radix prefixes, legacy octal, and
// numeric separators. Values beyond 2^53 lose precision exactly as they would
// as IEEE 754 doubles.
func parseNumericLiteral(raw string) float64 {
	text := strings.ReplaceAll(raw, "_", "")

	if len(text) > 1 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			return parseRadixLiteral(text[2:], 16)
		case 'o', 'O':
			return parseRadixLiteral(text[2:], 8)
		case 'b', 'B':
			return parseRadixLiteral(text[2:], 2)
		}
		// legacy octal, 0644 style; 089 falls through to decimal
		if !strings.ContainsAny(text, "89.eE") {
			return parseRadixLiteral(text[1:], 8)
		}
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

func parseRadixLiteral(digits string, base int) float64 {
	if value, err := strconv.ParseUint(digits, base, 64); err == nil {
		return float64(value)
	}
	// too large for uint64, approximate through a big integer
	if value, ok := new(big.Int).SetString(digits, base); ok {
		approx, _ := new(big.Float).SetInt(value).Float64()
		return approx
	}
	return math.NaN()
}

// parseBigIntLiteral evaluates the raw text of a bigint literal, with or
// without the trailing n. It returns nil if the text is not a valid bigint.
func parseBigIntLiteral(raw string) *big.Int {
	text := strings.ReplaceAll(strings.TrimSuffix(raw, "n"), "_", "")
	if text == "" {
		return nil
	}

	base := 10
	if len(text) > 1 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			base = 16
			text = text[2:]
		case 'o', 'O':
			base = 8
			text = text[2:]
		case 'b', 'B':
			base = 2
			text = text[2:]
		}
	}

	value, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil
	}
	return value
}
