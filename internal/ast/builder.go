package ast

import (
	"bytes"

	"tempus/internal/lexer"
	"tempus/internal/source"
	"tempus/internal/token"
)

// Parse consumes the lexer and produces the grammar tree for a whole
// description. Version must match the version the lexer was created with.
func Parse(lx *lexer.Lexer, version int) ([]Item, error) {
	var items []Item
	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			return items, nil
		case token.Literal:
			if len(tok.Text) > 0 {
				items = append(items, Item{Kind: KindLiteral, Span: tok.Span, Text: tok.Text})
			}
		case token.Invalid:
			return nil, errorAt("invalid escape sequence", tok.Span)
		case token.BracketOpen:
			item, err := parseComponent(lx, version, tok.Span)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		default:
			return nil, errorAt("unexpected token", tok.Span)
		}
	}
}

// parseComponent parses the inside of a bracketed component, the opening
// bracket having already been consumed.
func parseComponent(lx *lexer.Lexer, version int, openSpan source.Span) (Item, error) {
	name := lx.Next()
	for name.Kind == token.Whitespace {
		name = lx.Next()
	}

	switch name.Kind {
	case token.EOF:
		return Item{}, errorAt("unclosed bracket", openSpan)
	case token.BracketClose:
		return Item{}, errorAt("missing component name", name.Span)
	case token.ComponentPart:
		// fall through below
	default:
		return Item{}, errorAt("expected component name", name.Span)
	}

	switch {
	case bytes.Equal(name.Text, []byte("optional")):
		return parseOptional(lx, version, openSpan, name.Span)
	case bytes.Equal(name.Text, []byte("first")):
		return parseFirst(lx, version, openSpan, name.Span)
	default:
		return parsePlainComponent(lx, openSpan, name)
	}
}

func parsePlainComponent(lx *lexer.Lexer, openSpan source.Span, name token.Token) (Item, error) {
	item := Item{
		Kind:     KindComponent,
		Span:     openSpan,
		Name:     name.Text,
		NameSpan: name.Span,
	}

	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.Whitespace:
			continue
		case token.BracketClose:
			item.Span = item.Span.Cover(tok.Span)
			return item, nil
		case token.EOF:
			return Item{}, errorAt("unclosed bracket", openSpan)
		case token.ComponentPart:
			colon := bytes.IndexByte(tok.Text, ':')
			if colon <= 0 || colon == len(tok.Text)-1 {
				return Item{}, errorAt("modifier must be of the form `key:value`", tok.Span)
			}
			item.Modifiers = append(item.Modifiers, Modifier{
				Key:     tok.Text[:colon],
				Value:   tok.Text[colon+1:],
				KeySpan: source.Span{Start: tok.Span.Start, End: tok.Span.Start + uint32(colon)},
				Span:    tok.Span,
			})
		default:
			return Item{}, errorAt("unexpected token in component", tok.Span)
		}
	}
}

func parseOptional(lx *lexer.Lexer, version int, openSpan, nameSpan source.Span) (Item, error) {
	if version < 2 {
		return Item{}, errorAt("optional items are only supported in version 2", nameSpan)
	}
	group, _, err := expectGroup(lx, version, nameSpan)
	if err != nil {
		return Item{}, err
	}

	// Only the single nested description may follow.
	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.Whitespace:
			continue
		case token.BracketClose:
			return Item{
				Kind:   KindOptional,
				Span:   openSpan.Cover(tok.Span),
				Groups: [][]Item{group},
			}, nil
		case token.EOF:
			return Item{}, errorAt("unclosed bracket", openSpan)
		default:
			return Item{}, errorAt("unexpected token after optional item", tok.Span)
		}
	}
}

func parseFirst(lx *lexer.Lexer, version int, openSpan, nameSpan source.Span) (Item, error) {
	if version < 2 {
		return Item{}, errorAt("first items are only supported in version 2", nameSpan)
	}
	item := Item{Kind: KindFirst, Span: openSpan}

	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.Whitespace:
			continue
		case token.BracketClose:
			if len(item.Groups) == 0 {
				return Item{}, errorAt("expected at least one alternative", tok.Span)
			}
			item.Span = item.Span.Cover(tok.Span)
			return item, nil
		case token.BracketOpen:
			group, _, err := parseGroup(lx, version, tok.Span)
			if err != nil {
				return Item{}, err
			}
			item.Groups = append(item.Groups, group)
		case token.EOF:
			return Item{}, errorAt("unclosed bracket", openSpan)
		default:
			return Item{}, errorAt("expected opening bracket", tok.Span)
		}
	}
}

// expectGroup skips whitespace and parses one bracketed nested description.
func expectGroup(lx *lexer.Lexer, version int, after source.Span) ([]Item, source.Span, error) {
	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.Whitespace:
			continue
		case token.BracketOpen:
			return parseGroup(lx, version, tok.Span)
		case token.EOF:
			return nil, source.Span{}, errorAt("unclosed bracket", after)
		default:
			return nil, source.Span{}, errorAt("expected opening bracket", tok.Span)
		}
	}
}

// parseGroup parses a nested description until its closing bracket. Inside a
// group, bare component parts and whitespace are literal text.
func parseGroup(lx *lexer.Lexer, version int, openSpan source.Span) ([]Item, source.Span, error) {
	var items []Item
	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			return nil, source.Span{}, errorAt("unclosed bracket", openSpan)
		case token.BracketClose:
			return items, openSpan.Cover(tok.Span), nil
		case token.BracketOpen:
			item, err := parseComponent(lx, version, tok.Span)
			if err != nil {
				return nil, source.Span{}, err
			}
			items = append(items, item)
		case token.ComponentPart, token.Whitespace, token.Literal:
			items = append(items, Item{Kind: KindLiteral, Span: tok.Span, Text: tok.Text})
		default:
			return nil, source.Span{}, errorAt("invalid escape sequence", tok.Span)
		}
	}
}
