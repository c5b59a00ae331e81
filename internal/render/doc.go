// Package render emits the Markdown documentation artifact for a
// normalized model.
//
// Render is read-only over the model and fully deterministic: section
// order mirrors the model's stored order, and identical models render to
// byte-identical documents. Each table gets one section with its columns,
// its measures (DAX reproduced verbatim), and the relationships that
// involve it; empty sub-lists get an explicit none marker rather than
// being omitted.
package render
