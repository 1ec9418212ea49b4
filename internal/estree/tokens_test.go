package estree

import (
	"testing"

	"gotest.tools/v3/assert"
)

func tokenize(t *testing.T, src string) ([]*Token, []*Comment) {
	t.Helper()
	program, _ := convertFixture(t, src, ConvertOptions{Tokens: true, Comment: true})
	return program.Tokens, program.Comments
}

func TestTokenStream(t *testing.T) {
	tokens, _ := tokenize(t, `const s = "a" + 1;`)

	types := make([]TokenType, 0, len(tokens))
	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
		values = append(values, tok.Value)
	}

	assert.DeepEqual(t, values, []string{"const", "s", "=", `"a"`, "+", "1", ";"})
	assert.DeepEqual(t, types, []TokenType{
		TokenTypeKeyword,
		TokenTypeIdentifier,
		TokenTypePunctuator,
		TokenTypeString,
		TokenTypePunctuator,
		TokenTypeNumeric,
		TokenTypePunctuator,
	})
}

func TestTokenRangesAndLocs(t *testing.T) {
	tokens, _ := tokenize(t, "let x = 1;\nx;")

	assert.DeepEqual(t, tokens[0].Range, []int{0, 3})
	assert.Equal(t, tokens[0].Loc.Start.Line, 1)

	last := tokens[len(tokens)-1]
	assert.Equal(t, last.Value, ";")
	assert.DeepEqual(t, last.Range, []int{12, 13})
	assert.Equal(t, last.Loc.Start.Line, 2)
	assert.Equal(t, last.Loc.Start.Column, 1)
}

func TestBooleanAndNullTokens(t *testing.T) {
	tokens, _ := tokenize(t, "x = true; y = null;")

	byValue := map[string]TokenType{}
	for _, tok := range tokens {
		byValue[tok.Value] = tok.Type
	}
	assert.Equal(t, byValue["true"], TokenTypeBoolean)
	// null scans as a reserved word, not as a reclassified identifier
	assert.Equal(t, byValue["null"], TokenTypeKeyword)
}

func TestRegexToken(t *testing.T) {
	tokens, _ := tokenize(t, "const r = /ab+c/gi;")

	var regex *Token
	for _, tok := range tokens {
		if tok.Type == TokenTypeRegularExpression {
			regex = tok
		}
	}
	assert.Assert(t, regex != nil)
	assert.Equal(t, regex.Value, "/ab+c/gi")
	assert.Equal(t, regex.Regex.Pattern, "ab+c")
	assert.Equal(t, regex.Regex.Flags, "gi")
}

func TestPrivateIdentifierToken(t *testing.T) {
	tokens, _ := tokenize(t, "class C { #x = 1; m() { return this.#x; } }")

	var private *Token
	for _, tok := range tokens {
		if tok.Type == TokenTypePrivateIdentifier {
			private = tok
			break
		}
	}
	assert.Assert(t, private != nil)
	// value drops the #, range keeps it
	assert.Equal(t, private.Value, "x")
	assert.Equal(t, private.Range[1]-private.Range[0], 2)
}

func TestCommentExtraction(t *testing.T) {
	_, comments := tokenize(t, "// first\nconst a = 1; /* middle */ const b = 2;\n// last\n")

	assert.Equal(t, len(comments), 3)
	assert.Equal(t, comments[0].Type, CommentTypeLine)
	assert.Equal(t, comments[0].Value, " first")
	assert.DeepEqual(t, comments[0].Range, []int{0, 8})
	assert.Equal(t, comments[1].Type, CommentTypeBlock)
	assert.Equal(t, comments[1].Value, " middle ")
	assert.Equal(t, comments[2].Type, CommentTypeLine)
	assert.Equal(t, comments[2].Value, " last")
}

func TestShebangComment(t *testing.T) {
	_, comments := tokenize(t, "#!/usr/bin/env node\nconst a = 1;\n")

	assert.Assert(t, len(comments) >= 1)
	assert.Equal(t, comments[0].Type, CommentTypeShebang)
	assert.Equal(t, comments[0].Value, "/usr/bin/env node")
	assert.DeepEqual(t, comments[0].Range, []int{2, 19})
}

func TestShebangWithoutTrailingNewline(t *testing.T) {
	_, comments := tokenize(t, "#!/usr/bin/env node")

	assert.Equal(t, len(comments), 1)
	assert.Equal(t, comments[0].Type, CommentTypeShebang)
	assert.Equal(t, comments[0].Value, "/usr/bin/env node")
}

func TestJSXTokenClassification(t *testing.T) {
	program, _, err := Convert(parseFixture(t, "fixture.tsx", "const el = <div className=\"a\">text</div>;"), ConvertOptions{Tokens: true})
	assert.NilError(t, err)

	counts := map[TokenType]int{}
	for _, tok := range program.Tokens {
		counts[tok.Type]++
	}
	assert.Assert(t, counts[TokenTypeJSXIdentifier] > 0)
	assert.Assert(t, counts[TokenTypeJSXText] > 0)
}
