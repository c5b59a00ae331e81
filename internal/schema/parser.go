package schema

import (
	"encoding/json"
	"errors"
	"strings"
)

// Tree is the generic parse tree of a decoded schema document.
type Tree map[string]any

// Parse parses decoded schema text into a generic tree.
//
// Fails with *ParseError (kind pbidoc.ErrMalformedDocument) when the text
// is not well-formed JSON; a malformed document is fatal to the run since
// no partial tree is usable.
func Parse(text string) (Tree, error) {
	var tree Tree
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()
	if err := decoder.Decode(&tree); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, &ParseError{Offset: syntaxErr.Offset, Err: err}
		}
		return nil, &ParseError{Err: err}
	}
	if decoder.More() {
		return nil, &ParseError{Offset: decoder.InputOffset(), Err: errors.New("trailing data after document")}
	}
	return tree, nil
}
