package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Candidate is one decode-attempt strategy. Decode must either return the
// fully decoded text or an error; lossy substitution counts as failure.
type Candidate struct {
	Name   string
	Decode func(data []byte) (string, error)
}

// DefaultCandidates is the ordered list of encodings a template's schema
// payload is known to use. Power BI Desktop writes UTF-16 LE with a BOM;
// exported or hand-edited schemas show up as UTF-8 (with or without BOM)
// or as a legacy single-byte encoding.
//
// Order matters: the first candidate that decodes without loss wins.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "utf-8-sig", Decode: decodeUTF8Sig},
		{Name: "utf-16-le", Decode: decodeUTF16LE},
		{Name: "windows-1252", Decode: decodeWindows1252},
	}
}

// Resolver tries candidate encodings in priority order.
type Resolver struct {
	candidates []Candidate
}

// NewResolver creates a Resolver with the default candidate list.
func NewResolver() *Resolver {
	return &Resolver{candidates: DefaultCandidates()}
}

// NewResolverWith creates a Resolver with a custom candidate list.
// Panics if the list is empty.
func NewResolverWith(candidates []Candidate) *Resolver {
	if len(candidates) == 0 {
		panic("candidate list cannot be empty")
	}
	return &Resolver{candidates: candidates}
}

// Decode returns the decoded text and the name of the winning candidate.
// It is pure and deterministic: the same bytes and candidate list always
// produce the same result.
//
// Fails with an *Error wrapping pbidoc.ErrNoCandidateMatched only when
// every candidate rejects the input.
func (r *Resolver) Decode(data []byte) (string, string, error) {
	var tried []string
	for _, c := range r.candidates {
		text, err := c.Decode(data)
		if err == nil {
			return text, c.Name, nil
		}
		tried = append(tried, c.Name)
	}
	return "", "", &Error{Tried: tried}
}

// decodeUTF8Sig decodes strict UTF-8, stripping a leading BOM if present.
// NUL bytes fail the candidate: schema text never contains NUL, but
// UTF-16-encoded ASCII is byte-wise valid UTF-8 full of NULs, and
// accepting it here would shadow the utf-16-le candidate.
func decodeUTF8Sig(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(data) {
		return "", errors.New("invalid UTF-8 sequence")
	}
	if bytes.IndexByte(data, 0x00) >= 0 {
		return "", errors.New("NUL byte in UTF-8 input")
	}
	return string(data), nil
}

// decodeUTF16LE decodes little-endian UTF-16, tolerating an optional BOM.
// Odd-length input and unpaired surrogates fail the candidate.
func decodeUTF16LE(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", errors.New("odd byte count for UTF-16")
	}
	data = bytes.TrimPrefix(data, []byte{0xFF, 0xFE})

	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = uint16(data[2*i]) | uint16(data[2*i+1])<<8
	}

	var b strings.Builder
	b.Grow(len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u < 0xDC00:
			// High surrogate: must be followed by a low surrogate.
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] >= 0xE000 {
				return "", fmt.Errorf("unpaired high surrogate at unit %d", i)
			}
			b.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case u >= 0xDC00 && u < 0xE000:
			return "", fmt.Errorf("unpaired low surrogate at unit %d", i)
		default:
			b.WriteRune(rune(u))
		}
	}
	return b.String(), nil
}

// decodeWindows1252 decodes the legacy single-byte fallback. The five
// code points windows-1252 leaves undefined (0x81 0x8D 0x8F 0x90 0x9D)
// decode to the replacement rune under x/text; treating that as failure
// keeps the candidate strict.
func decodeWindows1252(data []byte) (string, error) {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	text := string(decoded)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", errors.New("input contains bytes undefined in windows-1252")
	}
	return text, nil
}
