// Package model assembles located schema entities into a normalized,
// immutable data model.
//
// # Normalization rules
//
//   - Tables keep source order; names are unique. A duplicate declaration
//     merges its columns and measures into the first occurrence and
//     records a warning — nothing is silently dropped or duplicated.
//   - Columns and measures keep source order within their table and are
//     deduplicated by name under the same merge-and-warn policy.
//   - Declared data-type tokens map to the fixed DataType enumeration;
//     unrecognized tokens become DataTypeOther plus a warning.
//   - Relationship endpoints resolve after all tables exist, so forward
//     references within the source work. An endpoint that names an
//     unknown table or column is flagged unresolved and warned, and the
//     relationship is retained.
//
// Build never fails: it always returns a model, possibly mostly empty,
// plus the accumulated diagnostics. Callers decide whether the
// diagnostics warrant treating the run as failed.
package model
