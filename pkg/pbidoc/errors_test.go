package pbidoc

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError_Nil(t *testing.T) {
	if code := ExitCodeForError(nil); code != ExitSuccess {
		t.Errorf("Expected %d, got %d", ExitSuccess, code)
	}
}

func TestExitCodeForError_SentinelMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not an archive", ErrNotAnArchive, ExitArchiveError},
		{"schema member not found", ErrSchemaMemberNotFound, ExitArchiveError},
		{"archive read", ErrArchiveRead, ExitArchiveError},
		{"no candidate matched", ErrNoCandidateMatched, ExitEncodingError},
		{"malformed document", ErrMalformedDocument, ExitParseError},
		{"invalid config", ErrInvalidConfig, ExitConfigError},
		{"output write", ErrOutputWrite, ExitOutputError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := ExitCodeForError(tt.err); code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, code)
			}
		})
	}
}

func TestExitCodeForError_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("context: %w", ErrSchemaMemberNotFound)
	if code := ExitCodeForError(err); code != ExitArchiveError {
		t.Errorf("Expected %d for wrapped sentinel, got %d", ExitArchiveError, code)
	}
}

func TestExitCodeForError_PipelineErrorUnwraps(t *testing.T) {
	err := &PipelineError{Stage: StageDecode, Err: ErrNoCandidateMatched}
	if code := ExitCodeForError(err); code != ExitEncodingError {
		t.Errorf("Expected %d, got %d", ExitEncodingError, code)
	}
}

func TestExitCodeForError_Unclassified(t *testing.T) {
	if code := ExitCodeForError(errors.New("mystery")); code != ExitGeneralError {
		t.Errorf("Expected %d, got %d", ExitGeneralError, code)
	}
}

func TestPipelineError_MessageNamesStage(t *testing.T) {
	err := &PipelineError{Stage: StageArchive, Err: ErrSchemaMemberNotFound}

	msg := err.Error()
	if msg == "" || !errors.Is(err, ErrSchemaMemberNotFound) {
		t.Fatalf("PipelineError should wrap its cause, got: %q", msg)
	}
	if want := `pipeline failed at stage "archive"`; len(msg) < len(want) || msg[:len(want)] != want {
		t.Errorf("Expected message to name the stage, got: %q", msg)
	}
}
