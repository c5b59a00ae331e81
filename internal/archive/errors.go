package archive

import "fmt"

// Error is a structured archive failure. Kind is one of the pbidoc
// archive sentinels (ErrNotAnArchive, ErrSchemaMemberNotFound,
// ErrArchiveRead) so callers can classify with errors.Is; Err carries
// the underlying cause when one exists.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Path)
}

// Unwrap exposes the kind sentinel for errors.Is matching. The underlying
// cause is available through the message; classification happens on Kind.
func (e *Error) Unwrap() error {
	return e.Kind
}
