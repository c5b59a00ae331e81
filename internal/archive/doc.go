// Package archive locates and extracts the model schema payload from a
// packaged report template.
//
// A .pbit template is a zip container; the data model schema lives in a
// member named DataModelSchema at the archive root. The accessor
// materializes that member to a scoped temporary directory, reads it in
// full, and removes the directory on every exit path. No transient state
// survives a call.
//
// Failure classification uses the pbidoc archive sentinels:
//
//	payload, err := accessor.ExtractSchemaPayload(path)
//	if errors.Is(err, pbidoc.ErrSchemaMemberNotFound) {
//	    // valid zip, but not a template archive
//	}
package archive
