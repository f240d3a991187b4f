// Package format compiles format descriptions into trees of items that the
// formatting and parsing machinery walks. Two front-ends produce the same
// tree shape: Parse for the bracket description language and ParseStrftime
// for C-style conversion specifications.
package format

// ItemKind discriminates the item variants.
type ItemKind uint8

const (
	// ItemLiteral is verbatim text.
	ItemLiteral ItemKind = iota
	// ItemComponent is a single datum.
	ItemComponent
	// ItemCompound is a sequence of items treated as one.
	ItemCompound
	// ItemOptional wraps one item that may be absent when parsing. It has
	// no effect when formatting.
	ItemOptional
	// ItemFirst tries its child items in order when parsing and uses the
	// first that matches. Formatting uses the first child.
	ItemFirst
)

// Item is one node of a compiled format description.
type Item struct {
	Kind      ItemKind
	Literal   []byte    // ItemLiteral
	Component Component // ItemComponent
	Items     []Item    // ItemCompound and ItemFirst children; ItemOptional has exactly one
}

// Literal returns a literal item. The bytes are not copied.
func Literal(text []byte) Item {
	return Item{Kind: ItemLiteral, Literal: text}
}

// LiteralString returns a literal item for the given string.
func LiteralString(text string) Item {
	return Item{Kind: ItemLiteral, Literal: []byte(text)}
}

// Comp returns a component item.
func Comp(c Component) Item {
	return Item{Kind: ItemComponent, Component: c}
}

// Compound groups items into one.
func Compound(items ...Item) Item {
	return Item{Kind: ItemCompound, Items: items}
}

// Optional marks an item as skippable when parsing.
func Optional(item Item) Item {
	return Item{Kind: ItemOptional, Items: []Item{item}}
}

// First tries alternatives in order when parsing.
func First(items ...Item) Item {
	return Item{Kind: ItemFirst, Items: items}
}

// Clone returns a deep copy sharing no memory with the receiver.
func (it Item) Clone() Item {
	out := it
	if it.Literal != nil {
		out.Literal = append([]byte(nil), it.Literal...)
	}
	if it.Items != nil {
		out.Items = CloneItems(it.Items)
	}
	return out
}

// CloneItems deep-copies a slice of items.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
