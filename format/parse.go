package format

import (
	"errors"
	"fmt"

	"tempus/internal/ast"
	"tempus/internal/lexer"
)

// Parse compiles a format description written in the bracket language.
// Version selects the language version: 1 escapes a literal bracket by
// doubling it, 2 uses backslash escapes and admits nested descriptions
// (`[optional [...]]` and `[first [...][...]...]`).
//
// The returned items do not alias the description.
func Parse(description string, version int) ([]Item, error) {
	if version != 1 && version != 2 {
		return nil, fmt.Errorf("unsupported format description version %d", version)
	}

	lx := lexer.New([]byte(description), version)
	tree, err := ast.Parse(lx, version)
	if err != nil {
		var astErr *ast.Error
		if errors.As(err, &astErr) {
			return nil, describeErr(astErr.Message, astErr.Span)
		}
		return nil, err
	}
	return lower(tree)
}
