// Package ast turns the format-description token stream into a structural
// grammar tree. Component names and modifier values are kept as raw bytes
// here; resolving them against the known component set happens one layer up.
package ast

import (
	"fmt"

	"tempus/internal/source"
)

// ItemKind discriminates the AST node variants.
type ItemKind uint8

const (
	// KindLiteral is a verbatim byte run.
	KindLiteral ItemKind = iota
	// KindComponent is a bracketed component with modifiers.
	KindComponent
	// KindOptional is a nested description that may be absent when parsing.
	KindOptional
	// KindFirst is an ordered list of alternative nested descriptions.
	KindFirst
)

// Modifier is one `key:value` pair inside a component.
type Modifier struct {
	Key      []byte
	Value    []byte
	KeySpan  source.Span
	Span     source.Span // covers key, colon and value
}

// Item is a single node of the grammar tree.
type Item struct {
	Kind ItemKind
	Span source.Span

	// Literal payload (KindLiteral).
	Text []byte

	// Component payload (KindComponent).
	Name      []byte
	NameSpan  source.Span
	Modifiers []Modifier

	// Nested descriptions: one for KindOptional, one per alternative for
	// KindFirst.
	Groups [][]Item
}

// Error is a malformed-description diagnostic with its source span.
type Error struct {
	Message string
	Span    source.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Span)
}

func errorAt(message string, span source.Span) *Error {
	return &Error{Message: message, Span: span}
}
