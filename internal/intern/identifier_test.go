package intern

import "testing"

func TestInternIdentifierNormalizesCanonicallyEquivalentForms(t *testing.T) {
	in := New()
	precomposed := "caf" + string(rune(0x00E9))               // café, precomposed e-acute
	decomposed := "caf" + string(rune(0x0065)) + string(rune(0x0301)) // cafe + combining acute accent

	a := in.InternIdentifier(precomposed)
	b := in.InternIdentifier(decomposed)
	if a != b {
		t.Fatalf("canonically equivalent identifiers should share a StringID, got %v and %v", a, b)
	}
}

func TestInternIdentifierLeavesASCIIUnchanged(t *testing.T) {
	in := New()
	id := in.InternIdentifier("__init__")
	s, ok := in.GetStr(id)
	if !ok || s != "__init__" {
		t.Fatalf("expected ASCII identifier to round-trip unchanged, got %q, ok=%v", s, ok)
	}
}
