package schema

import (
	"fmt"

	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

// ParseError reports a malformed schema document. Offset is the byte
// position of the first error when known, 0 otherwise.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("malformed schema document at byte %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("malformed schema document: %v", e.Err)
}

// Unwrap exposes the sentinel for errors.Is classification.
func (e *ParseError) Unwrap() error {
	return pbidoc.ErrMalformedDocument
}
