package core

import "testing"

func TestPyStrCasefold(t *testing.T) {
	if got, want := PyStrCasefold("STRASSE"), "strasse"; got != want {
		t.Fatalf("casefold: got %q, want %q", got, want)
	}
	// The German sharp s folds to "ss" under full casefolding, unlike lower().
	sharpS := string(rune(0x00DF))
	if got, want := PyStrCasefold(sharpS), "ss"; got != want {
		t.Fatalf("casefold of sharp s: got %q, want %q", got, want)
	}
}

func TestPyStrTitle(t *testing.T) {
	if got, want := PyStrTitle("hello world"), "Hello World"; got != want {
		t.Fatalf("title: got %q, want %q", got, want)
	}
}

func TestPyStrIsPrintable(t *testing.T) {
	if !PyStrIsPrintable("hello world") {
		t.Fatalf("a plain ASCII sentence should be printable")
	}
	if !PyStrIsPrintable("") {
		t.Fatalf("the empty string should be printable")
	}
	if PyStrIsPrintable("hello\nworld") {
		t.Fatalf("a newline should make the string non-printable")
	}
	if PyStrIsPrintable("hello\tworld") {
		t.Fatalf("a tab should make the string non-printable")
	}
}
