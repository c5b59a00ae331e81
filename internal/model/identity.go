package model

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// namespaceModelIdentity is the fixed UUID namespace for generating
// deterministic model identities from input paths. Derived once at
// startup from the canonical string using UUID v5 with the URL namespace.
var namespaceModelIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("auto-doc-pbi/model-identity/v1"))

// Identity creates a deterministic UUID v5 from a normalized input path.
// The same template path always yields the same identity, which lets
// consumers correlate documentation runs for the same source file.
//
// Path normalization:
//  1. Convert to forward slashes
//  2. Lowercase (case-insensitive filesystems)
//  3. Remove a leading "./" prefix
func Identity(path string) uuid.UUID {
	normalized := strings.ToLower(filepath.ToSlash(path))
	normalized = strings.TrimPrefix(normalized, "./")
	return uuid.NewSHA1(namespaceModelIdentity, []byte(normalized))
}
