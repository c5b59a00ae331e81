// Package checksum provides schema payload hashing with normalization support.
//
// Two checksum flavors are exposed through the Calculator interface:
//
//   - Raw: SHA-256 of the exact payload bytes, for byte-level provenance.
//   - Normalized: SHA-256 of the payload with insignificant JSON whitespace
//     removed, so a re-saved template with identical structure keeps the
//     same fingerprint.
//
// The raw fingerprint is stamped into the rendered document footer; the
// normalized variant supports comparing schemas across template re-saves.
package checksum
