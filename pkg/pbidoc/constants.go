package pbidoc

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Documentation generated successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration
	ExitArchiveError  = 20 // Input is not an archive or lacks the schema member
	ExitEncodingError = 21 // Schema payload failed every candidate encoding
	ExitParseError    = 22 // Schema payload is not well-formed JSON
	ExitOutputError   = 23 // Rendered document could not be written
)

const (
	// SchemaMemberName is the fixed name of the archive member holding the
	// model schema. Power BI templates store it at the archive root.
	SchemaMemberName = "DataModelSchema"

	// DefaultOutputFileName is the documentation artifact written when the
	// caller supplies no explicit output path.
	DefaultOutputFileName = "pbi_documentation.md"

	// MaxSchemaPayloadSize caps how many bytes of schema payload are read
	// from the archive. Real template schemas are a few megabytes at most;
	// the cap guards against zip bombs.
	MaxSchemaPayloadSize = 256 * 1024 * 1024
)
