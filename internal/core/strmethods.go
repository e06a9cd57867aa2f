package core

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var foldCaser = cases.Fold()
var titleCaser = cases.Title(language.Und)

// PyStrCasefold implements str.casefold(): an aggressive case-insensitive
// fold used for caseless string matching, stricter than lower().
func PyStrCasefold(s string) string {
	return foldCaser.String(s)
}

// PyStrTitle implements str.title(): each word's first letter uppercased,
// the rest lowercased.
func PyStrTitle(s string) string {
	return titleCaser.String(s)
}

// PyStrIsPrintable implements str.isprintable(): every character must be
// printable, where CPython defines printable as "not in the Unicode
// categories Other or Separator, except the ASCII space" — the empty
// string is printable by definition.
func PyStrIsPrintable(s string) bool {
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if !unicode.IsPrint(r) {
			return false
		}
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
