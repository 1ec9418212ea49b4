package estree

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/scanner"
	"github.com/microsoft/typescript-go/shim/stringutil"
)

func getTokenType(token tsToken, tokenText string) TokenType {
	if token.kind == ast.KindIdentifier {
		keywordKind := scanner.GetIdentifierToken(tokenText)

		if keywordKind != ast.KindIdentifier {
			if keywordKind == ast.KindNullKeyword {
				return TokenTypeNull
			}

			if keywordKind >= ast.KindFirstFutureReservedWord && keywordKind <= ast.KindLastKeyword {
				return TokenTypeIdentifier
			}
			return TokenTypeKeyword
		}
	}

	if token.kind >= ast.KindFirstKeyword && token.kind <= ast.KindLastFutureReservedWord {
		if token.kind == ast.KindFalseKeyword || token.kind == ast.KindTrueKeyword {
			return TokenTypeBoolean
		}
		return TokenTypeKeyword
	}

	if token.kind >= ast.KindFirstPunctuation && token.kind <= ast.KindLastPunctuation {
		return TokenTypePunctuator
	}

	if token.kind >= ast.KindFirstTemplateToken && token.kind <= ast.KindLastTemplateToken {
		return TokenTypeTemplate
	}

	switch token.kind {
	case ast.KindNumericLiteral, ast.KindBigIntLiteral:
		return TokenTypeNumeric
	case ast.KindPrivateIdentifier:
		return TokenTypePrivateIdentifier
	case ast.KindJsxText:
		return TokenTypeJSXText
	case ast.KindStringLiteral:
		// a string directly under a JSX attribute or element reads as JSX text
		if token.parent != nil && (token.parent.Kind == ast.KindJsxAttribute || token.parent.Kind == ast.KindJsxElement) {
			return TokenTypeJSXText
		}
		return TokenTypeString
	case ast.KindRegularExpressionLiteral:
		return TokenTypeRegularExpression
	}
	// some JSX tokens have to be determined based on their parent
	if token.kind == ast.KindIdentifier && token.parent != nil {
		if isJSXToken(token.parent) {
			return TokenTypeJSXIdentifier
		}

		if token.parent.Kind == ast.KindPropertyAccessExpression && hasJSXAncestor(token.parent) {
			return TokenTypeJSXIdentifier
		}
	}
	return TokenTypeIdentifier
}

func isJSXToken(node *ast.Node) bool {
	return node.Kind >= ast.KindJsxElement && node.Kind <= ast.KindJsxAttribute
}

func hasJSXAncestor(node *ast.Node) bool {
	for node != nil {
		if isJSXToken(node) {
			return true
		}
		node = node.Parent
	}

	return false
}

type tsToken struct {
	kind   ast.Kind
	loc    core.TextRange
	parent *ast.Node
}

func (c *converter) collectTokens() (tokens []tsToken, comments []*Comment) {
	tokens = []tsToken{}
	comments = []*Comment{}

	s := scanner.NewScanner()
	s.SetText(c.sourceFile.Text)
	s.SetScriptTarget(c.sourceFile.LanguageVersion)
	s.SetLanguageVariant(c.sourceFile.LanguageVariant)
	s.SetSkipTrivia(true)

	// second scanner for the trivia between tokens
	trivia := scanner.NewScanner()
	trivia.SetText(c.sourceFile.Text)
	trivia.SetScriptTarget(c.sourceFile.LanguageVersion)
	trivia.SetLanguageVariant(c.sourceFile.LanguageVariant)
	trivia.SetSkipTrivia(false)

	pos := 0
	hasShebang := false

	for i, char := range c.sourceFile.Text {
		if i == 0 {
			if char == '#' {
				continue
			}
			break
		} else if i == 1 {
			if char == '!' {
				hasShebang = true
				continue
			}
			break
		}

		if stringutil.IsLineBreak(char) {
			pos = i

			r := Range{2, pos}
			comments = append(comments, &Comment{
				Type:  CommentTypeShebang,
				Value: c.sourceFile.Text[2:pos],
				Range: []int{r[0], r[1]},
				Loc:   c.spans.LocationFor(r),
			})

			break
		}
	}
	// no line break at the end
	if hasShebang && len(comments) == 0 {
		pos = len(c.sourceFile.Text)
		r := Range{2, pos}
		comments = append(comments, &Comment{
			Type:  CommentTypeShebang,
			Value: c.sourceFile.Text[2:pos],
			Range: []int{r[0], r[1]},
			Loc:   c.spans.LocationFor(r),
		})
	}

	scanCommentsInRange := func(start, end int) {
		if start >= end {
			return
		}
		trivia.ResetPos(start)
		for {
			trivia.Scan()
			if trivia.TokenStart() >= end || trivia.Token() == ast.KindEndOfFile {
				return
			}
			kind := trivia.Token()
			if kind != ast.KindSingleLineCommentTrivia && kind != ast.KindMultiLineCommentTrivia {
				continue
			}

			r := Range{trivia.TokenStart(), trivia.TokenEnd()}
			loc := c.spans.LocationFor(r)
			// both comment flavors open with 2 characters, /* or //
			textStart := r[0] + 2

			if kind == ast.KindSingleLineCommentTrivia {
				comments = append(comments, &Comment{
					Type:  CommentTypeLine,
					Value: c.sourceFile.Text[textStart:r[1]],
					Range: []int{r[0], r[1]},
					Loc:   loc,
				})
			} else {
				comments = append(comments, &Comment{
					Type:  CommentTypeBlock,
					Value: c.sourceFile.Text[textStart : r[1]-2],
					Range: []int{r[0], r[1]},
					Loc:   loc,
				})
			}
		}
	}

	pushToken := func(t tsToken) {
		prevTokenEnd := 0
		if len(tokens) != 0 {
			prevTokenEnd = tokens[len(tokens)-1].loc.End()
		}

		tokens = append(tokens, t)

		scanCommentsInRange(prevTokenEnd, t.loc.Pos())
	}

	addSyntheticNodes := func(end int) {
		s.ResetPos(pos)

		for pos < end {
			s.Scan()
			textPos := s.TokenEnd()
			if textPos <= end && ast.IsTokenKind(s.Token()) {
				kind := s.Token()
				// </ reads back as two distinct tokens
				if kind == ast.KindLessThanSlashToken {
					r := s.TokenRange()
					pushToken(tsToken{
						kind: ast.KindLessThanToken,
						loc:  r.WithEnd(r.End() - 1),
					})
					pushToken(tsToken{
						kind: ast.KindSlashToken,
						loc:  r.WithPos(r.End() - 1),
					})
				} else {
					pushToken(tsToken{
						kind: s.Token(),
						loc:  s.TokenRange(),
					})
				}
			}
			pos = textPos
			if s.Token() == ast.KindEndOfFile {
				break
			}
		}
	}

	var visit ast.Visitor
	visit = func(node *ast.Node) bool {
		node.ForEachChild(visit)

		addSyntheticNodes(node.Pos())

		if ast.IsTokenKind(node.Kind) && node.Flags&ast.NodeFlagsReparsed == 0 {
			if node.Kind != ast.KindJsxText {
				s.ResetPos(node.Pos())
				s.Scan()
			}
			pushToken(tsToken{
				kind:   node.Kind,
				loc:    node.Loc.WithPos(s.TokenStart()),
				parent: node.Parent,
			})
			pos = node.End()
		}

		addSyntheticNodes(node.End())

		pos = node.End()

		return false
	}
	c.sourceFile.ForEachChild(visit)
	scanCommentsInRange(pos, c.sourceFile.Loc.End())

	return tokens, comments
}

func (c *converter) parseTokens() (tokens []*Token, comments []*Comment) {
	tokens = []*Token{}

	tsTokens, comments := c.collectTokens()
	for _, tsTok := range tsTokens {
		start, end := tsTok.loc.Pos(), tsTok.loc.End()
		value := c.sourceFile.Text[start:end]
		tokenType := getTokenType(tsTok, value)
		r := Range{start, end}

		token := &Token{
			Type:  tokenType,
			Value: value,
			Range: []int{r[0], r[1]},
			Loc:   c.spans.LocationFor(r),
		}

		switch tokenType {
		case TokenTypeRegularExpression:
			terminatorIndex := strings.LastIndex(value, "/")
			token.Regex = &RegexInfo{
				Pattern: value[1:terminatorIndex],
				Flags:   value[terminatorIndex+1:],
			}
		case TokenTypePrivateIdentifier:
			// range and loc keep the #, value drops it
			token.Value = value[1:]
		}

		tokens = append(tokens, token)
	}
	return tokens, comments
}
