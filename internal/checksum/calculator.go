package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Calculator is an interface for computing payload checksums.
// This abstraction allows for different checksum strategies and algorithms.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
// Normalization targets JSON schema payloads: whitespace outside string
// literals is collapsed to nothing, so re-indented or re-encoded schemas
// with identical structure produce identical fingerprints.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines. Using value semantics eliminates heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of whitespace-normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// normalize strips insignificant whitespace from a JSON document while
// preserving string literals byte-for-byte (including escape sequences).
// Input that is not valid JSON is normalized on a best-effort basis; the
// fingerprint is for provenance, not validation.
func (c SHA256) normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	inString := false
	escaped := false

	for _, r := range content {
		if inString {
			b.WriteRune(r)
			if escaped {
				escaped = false
			} else if r == '\\' {
				escaped = true
			} else if r == '"' {
				inString = false
			}
			continue
		}

		if unicode.IsSpace(r) {
			continue
		}
		if r == '"' {
			inString = true
		}
		b.WriteRune(r)
	}

	return b.String()
}
