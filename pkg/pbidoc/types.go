package pbidoc

import "github.com/google/uuid"

// DataType enumerates the column data types the template's model schema
// declares. Unrecognized source tokens normalize to DataTypeOther.
type DataType string

const (
	DataTypeString   DataType = "string"
	DataTypeInt64    DataType = "int64"
	DataTypeDouble   DataType = "double"
	DataTypeDecimal  DataType = "decimal"
	DataTypeDateTime DataType = "dateTime"
	DataTypeBoolean  DataType = "boolean"
	DataTypeBinary   DataType = "binary"
	DataTypeVariant  DataType = "variant"
	DataTypeOther    DataType = "other"
)

// Column describes a single column of a table in the data model.
type Column struct {
	Name        string
	Type        DataType
	Description string
	Hidden      bool
	Unique      bool
}

// Measure is a named calculated value attached to a table. Expression is
// the raw DAX formula text, preserved verbatim and never parsed.
type Measure struct {
	Name       string
	Expression string
}

// Table is a named collection of columns and measures. Within a Model,
// table names are unique; duplicate declarations in the source are merged
// into the first occurrence.
type Table struct {
	Name        string
	Description string
	Columns     []Column
	Measures    []Measure
}

// Endpoint identifies one side of a relationship by table and column name.
// Unresolved is set when the named table/column pair does not exist in the
// built model; the relationship is retained regardless.
type Endpoint struct {
	Table      string
	Column     string
	Unresolved bool
}

// Relationship links a column in one table to a column in another.
// Cardinality carries the source's declared cardinality token verbatim
// (for example "manyToOne"), or is empty when the source omits it.
type Relationship struct {
	From        Endpoint
	To          Endpoint
	Cardinality string
}

// Severity classifies a Diagnostic.
type Severity string

const (
	SeverityWarning          Severity = "warning"
	SeverityRecoverableError Severity = "recoverable-error"
)

// Diagnostic is a non-fatal issue recorded during extraction. Diagnostics
// are accumulated in pipeline order and always surfaced to the caller
// alongside a successfully produced document.
type Diagnostic struct {
	Severity Severity
	Message  string
	Hint     string
}

// Model is the root aggregate produced by the model builder. It is
// constructed once per extraction pass and read-only afterwards.
//
// Tables preserves source declaration order. Relationships is a flat
// ordered sequence owned by the model, not by any table.
type Model struct {
	// Identity is a deterministic UUIDv5 derived from the normalized
	// input path. The same input path always yields the same identity.
	Identity uuid.UUID

	// Fingerprint is the SHA-256 hex digest of the raw schema payload,
	// recorded for provenance in the rendered document footer.
	Fingerprint string

	Tables        []Table
	Relationships []Relationship
}

// TableNames returns the model's table names in stored order.
func (m *Model) TableNames() []string {
	names := make([]string, len(m.Tables))
	for i, t := range m.Tables {
		names[i] = t.Name
	}
	return names
}

// RelationshipsInvolving returns the relationships that reference the
// given table on either endpoint, in stored order.
func (m *Model) RelationshipsInvolving(table string) []Relationship {
	var out []Relationship
	for _, r := range m.Relationships {
		if r.From.Table == table || r.To.Table == table {
			out = append(out, r)
		}
	}
	return out
}
