package pbidoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := runner.Run(path)
//	if errors.Is(err, pbidoc.ErrSchemaMemberNotFound) {
//	    // Archive is valid but carries no DataModelSchema member
//	}
var (
	// ErrNotAnArchive indicates the input file could not be opened as a
	// zip container.
	ErrNotAnArchive = errors.New("not a valid template archive")

	// ErrSchemaMemberNotFound indicates the archive has no DataModelSchema member.
	ErrSchemaMemberNotFound = errors.New("schema member not found in archive")

	// ErrArchiveRead indicates an I/O failure while extracting the schema member.
	ErrArchiveRead = errors.New("failed to read schema member")

	// ErrNoCandidateMatched indicates no candidate encoding decoded the
	// schema payload without loss.
	ErrNoCandidateMatched = errors.New("no candidate encoding matched")

	// ErrMalformedDocument indicates the decoded schema text is not
	// well-formed JSON.
	ErrMalformedDocument = errors.New("malformed schema document")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutputWrite indicates the rendered document could not be written.
	ErrOutputWrite = errors.New("failed to write output document")
)

// Stage names a pipeline stage for error reporting.
type Stage string

const (
	StageArchive Stage = "archive"
	StageDecode  Stage = "decode"
	StageParse   Stage = "parse"
)

// PipelineError wraps a fatal stage failure with the stage that produced
// it. The pipeline orchestrator is the only place these are constructed;
// nothing below it exposes raw low-level errors across the boundary.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline failed at stage %q: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrNotAnArchive),
		errors.Is(err, ErrSchemaMemberNotFound),
		errors.Is(err, ErrArchiveRead):
		return ExitArchiveError
	case errors.Is(err, ErrNoCandidateMatched):
		return ExitEncodingError
	case errors.Is(err, ErrMalformedDocument):
		return ExitParseError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrOutputWrite):
		return ExitOutputError
	}

	return ExitGeneralError
}
