// Package token defines the lexical tokens of the format-description
// mini-language.
//
// Invariants:
//   - Token.Text is a slice of the original description (no copies), except
//     for escaped literals where it is the single unescaped byte.
//   - Token.Span matches the source bytes the token was produced from, which
//     for escaped literals is wider than Text.
package token

import (
	"tempus/internal/source"
)

// Kind represents the category of a format-description token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the description.
	EOF
	// Literal is a run of bytes rendered and matched verbatim.
	Literal
	// BracketOpen is a `[` starting a component.
	BracketOpen
	// BracketClose is a `]` ending a component.
	BracketClose
	// ComponentPart is a run of non-whitespace bytes inside brackets:
	// a component name or a modifier.
	ComponentPart
	// Whitespace is a run of whitespace inside brackets, separating the
	// component name and its modifiers.
	Whitespace
)

// Token is a single token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text []byte
}

// IsPart reports whether the token is usable as a component name or
// modifier.
func (t Token) IsPart() bool { return t.Kind == ComponentPart }

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Literal:
		return "Literal"
	case BracketOpen:
		return "BracketOpen"
	case BracketClose:
		return "BracketClose"
	case ComponentPart:
		return "ComponentPart"
	case Whitespace:
		return "Whitespace"
	default:
		return "Invalid"
	}
}
