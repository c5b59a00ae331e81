// Package textenc resolves the text encoding of an extracted schema payload.
//
// Template schemas arrive in a handful of encodings depending on which
// tool wrote the archive: UTF-16 LE with a BOM (Power BI Desktop), UTF-8
// with or without a BOM, or a legacy single-byte codepage. The resolver
// tries a fixed, ordered list of candidate strategies and accepts the
// first one that decodes every byte to a defined character. A candidate
// that would need lossy substitution is treated as failed, never accepted
// silently.
//
// Decoding is a pure function: no side effects, deterministic for a given
// byte sequence and candidate list. Adding a future encoding means adding
// one Candidate value; call sites do not change.
package textenc
