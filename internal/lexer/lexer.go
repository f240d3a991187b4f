// Package lexer tokenizes format descriptions into literal runs and
// bracketed component parts with byte-offset spans.
package lexer

import (
	"tempus/internal/source"
	"tempus/internal/token"
)

// Lexer produces the token stream for one format description.
//
// Two versions of the description language are supported. Version 1 escapes
// an opening bracket by doubling it (`[[`); version 2 instead uses backslash
// escapes (`\[`, `\]`, `\\`) and treats `[[` as a bracket followed by a
// component.
type Lexer struct {
	cursor  Cursor
	version int
	depth   int          // bracket nesting; 0 means literal context
	look    *token.Token // one-token lookahead buffer
}

// New creates a lexer for the description. Version must be 1 or 2.
func New(input []byte, version int) *Lexer {
	return &Lexer{cursor: NewCursor(input), version: version}
}

// Next returns the next token. After the end of input it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	if lx.depth > 0 {
		return lx.nextInBracket()
	}
	return lx.nextLiteralContext()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) nextLiteralContext() token.Token {
	m := lx.cursor.Mark()

	switch ch := lx.cursor.Peek(); {
	case ch == '[':
		if lx.version == 1 {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '[' && b1 == '[' {
				// `[[` is the version-1 escape for a literal bracket.
				lx.cursor.Bump()
				escaped := lx.cursor.Mark()
				lx.cursor.Bump()
				return token.Token{
					Kind: token.Literal,
					Span: lx.cursor.SpanFrom(m),
					Text: lx.cursor.Text(escaped),
				}
			}
		}
		lx.cursor.Bump()
		lx.depth++
		return token.Token{Kind: token.BracketOpen, Span: lx.cursor.SpanFrom(m)}

	case lx.version >= 2 && ch == '\\':
		lx.cursor.Bump()
		if lx.cursor.EOF() {
			return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(m)}
		}
		escaped := lx.cursor.Mark()
		b := lx.cursor.Bump()
		if b != '\\' && b != '[' && b != ']' {
			return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(m)}
		}
		return token.Token{
			Kind: token.Literal,
			Span: lx.cursor.SpanFrom(m),
			Text: lx.cursor.Text(escaped),
		}

	default:
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if b == '[' || (lx.version >= 2 && b == '\\') {
				break
			}
			lx.cursor.Bump()
		}
		return token.Token{
			Kind: token.Literal,
			Span: lx.cursor.SpanFrom(m),
			Text: lx.cursor.Text(m),
		}
	}
}

func (lx *Lexer) nextInBracket() token.Token {
	m := lx.cursor.Mark()

	switch ch := lx.cursor.Peek(); {
	case ch == '[':
		lx.cursor.Bump()
		lx.depth++
		return token.Token{Kind: token.BracketOpen, Span: lx.cursor.SpanFrom(m)}

	case ch == ']':
		lx.cursor.Bump()
		lx.depth--
		return token.Token{Kind: token.BracketClose, Span: lx.cursor.SpanFrom(m)}

	case isWhitespace(ch):
		for !lx.cursor.EOF() && isWhitespace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return token.Token{
			Kind: token.Whitespace,
			Span: lx.cursor.SpanFrom(m),
			Text: lx.cursor.Text(m),
		}

	default:
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if b == '[' || b == ']' || isWhitespace(b) {
				break
			}
			lx.cursor.Bump()
		}
		return token.Token{
			Kind: token.ComponentPart,
			Span: lx.cursor.SpanFrom(m),
			Text: lx.cursor.Text(m),
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	off := uint32(lx.cursor.off)
	return source.Span{Start: off, End: off}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
