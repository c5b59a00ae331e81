package textenc

import (
	"strings"

	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

// Error reports that no candidate encoding decoded the payload without
// loss. Tried lists the candidate names in the order they were attempted.
type Error struct {
	Tried []string
}

func (e *Error) Error() string {
	return "no candidate encoding matched (tried: " + strings.Join(e.Tried, ", ") + ")"
}

// Unwrap exposes the sentinel for errors.Is classification.
func (e *Error) Unwrap() error {
	return pbidoc.ErrNoCandidateMatched
}
