// Package schema parses the decoded model schema document and locates
// the entity nodes the documentation pipeline consumes.
//
// Parsing happens in two passes. Parse turns the text into a generic
// tree and is the only fatal step: a document that is not well-formed
// JSON cannot yield anything usable. LocateEntities then walks the tree
// under the fixed shape the authoring tool writes (model.tables[],
// model.relationships[]) and is deliberately tolerant — the tool omits
// and varies fields freely across versions, so absent sections become
// empty collections with a warning diagnostic, misshapen nodes are
// skipped with a warning, and unknown fields are ignored.
//
// Measure expressions are carried verbatim. They are DAX formula text
// and this package never interprets them.
package schema
