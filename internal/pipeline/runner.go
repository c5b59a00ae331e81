package pipeline

import (
	"github.com/vinifborgess/auto-doc-pbi/internal/archive"
	"github.com/vinifborgess/auto-doc-pbi/internal/checksum"
	"github.com/vinifborgess/auto-doc-pbi/internal/files/filesystem"
	"github.com/vinifborgess/auto-doc-pbi/internal/model"
	"github.com/vinifborgess/auto-doc-pbi/internal/render"
	"github.com/vinifborgess/auto-doc-pbi/internal/schema"
	"github.com/vinifborgess/auto-doc-pbi/internal/textenc"
	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

// Result is a completed documentation run: the rendered document, the
// model it was rendered from, and every non-fatal issue collected along
// the way, in pipeline order.
type Result struct {
	Document    string
	Model       pbidoc.Model
	Diagnostics []pbidoc.Diagnostic
}

// Runner sequences the extraction pipeline:
// archive → decode → parse → build → render.
type Runner struct {
	accessor   *archive.Accessor
	resolver   *textenc.Resolver
	calculator checksum.Calculator
	logger     pbidoc.Logger
}

// NewRunner creates a Runner using the given filesystem provider and
// logger. Panics if either is nil.
func NewRunner(fsProvider filesystem.FileSystemProvider, logger pbidoc.Logger) *Runner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Runner{
		accessor:   archive.NewAccessor(fsProvider, logger),
		resolver:   textenc.NewResolver(),
		calculator: checksum.New(),
		logger:     logger,
	}
}

// Run executes the full pipeline for the template at path.
//
// Fatal failures from the archive, decode, and parse stages short-circuit
// and come back as a *pbidoc.PipelineError naming the failing stage. The
// builder never fails; its diagnostics (and the parser's warnings) ride
// along on the successful result.
func (r *Runner) Run(path string) (Result, error) {
	payload, err := r.accessor.ExtractSchemaPayload(path)
	if err != nil {
		return Result{}, &pbidoc.PipelineError{Stage: pbidoc.StageArchive, Err: err}
	}

	text, encoding, err := r.resolver.Decode(payload)
	if err != nil {
		return Result{}, &pbidoc.PipelineError{Stage: pbidoc.StageDecode, Err: err}
	}
	r.logger.Verbose("Schema payload decoded as %s", encoding)

	tree, err := schema.Parse(text)
	if err != nil {
		return Result{}, &pbidoc.PipelineError{Stage: pbidoc.StageParse, Err: err}
	}

	entities, locateDiags := schema.LocateEntities(tree)
	m, buildDiags := model.Build(entities)
	m.Identity = model.Identity(path)
	m.Fingerprint = r.calculator.CalculateRaw(payload)

	diagnostics := append(locateDiags, buildDiags...)
	r.logger.Verbose("Built model %s: %d tables, %d relationships, %d diagnostics",
		m.Identity, len(m.Tables), len(m.Relationships), len(diagnostics))

	return Result{
		Document:    render.Render(m),
		Model:       m,
		Diagnostics: diagnostics,
	}, nil
}
