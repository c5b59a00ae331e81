// Package pipeline orchestrates the schema-extraction pipeline.
//
// Data flows strictly forward through single-purpose stages:
//
//	archive bytes → decoded text → parse tree → normalized model → document
//
// The whole run is one synchronous pass over one input; there is no
// shared mutable state and no concurrency. The runner is the single
// point that translates internal stage failures into the external
// failure surface (*pbidoc.PipelineError); everything below it keeps
// its errors package-local.
package pipeline
