package checksum

import (
	"testing"
)

func TestCalculateRaw_KnownVector(t *testing.T) {
	calc := New()

	// sha256("") is a fixed, well-known digest.
	got := calc.CalculateRaw([]byte(""))
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestCalculateRaw_DifferentContentDiffers(t *testing.T) {
	calc := New()

	a := calc.CalculateRaw([]byte(`{"model":{}}`))
	b := calc.CalculateRaw([]byte(`{"model":{ }}`))
	if a == b {
		t.Error("Raw checksums should differ when bytes differ")
	}
}

func TestCalculateNormalized_IgnoresFormatting(t *testing.T) {
	calc := New()

	compact := []byte(`{"model":{"tables":[{"name":"Sales"}]}}`)
	pretty := []byte(`{
  "model": {
    "tables": [
      { "name": "Sales" }
    ]
  }
}`)

	if calc.CalculateNormalized(compact) != calc.CalculateNormalized(pretty) {
		t.Error("Normalized checksums should match for equivalent JSON")
	}
}

func TestCalculateNormalized_PreservesStringContent(t *testing.T) {
	calc := New()

	// Whitespace inside string literals is significant.
	a := calc.CalculateNormalized([]byte(`{"name":"Total Sales"}`))
	b := calc.CalculateNormalized([]byte(`{"name":"TotalSales"}`))
	if a == b {
		t.Error("Whitespace inside strings must not be normalized away")
	}
}

func TestCalculateNormalized_EscapedQuoteInString(t *testing.T) {
	calc := New()

	// The escaped quote must not terminate the string literal, otherwise
	// the trailing space would be stripped.
	a := calc.CalculateNormalized([]byte(`{"expr":"SAY(\" hi\")"}`))
	b := calc.CalculateNormalized([]byte(`{"expr":"SAY(\"hi\")"}`))
	if a == b {
		t.Error("Escape handling lost whitespace inside a string literal")
	}
}
