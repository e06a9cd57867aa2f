package intern

import "golang.org/x/text/unicode/norm"

// InternIdentifier interns a Python identifier, first NFKC-normalizing it
// the way CPython does at parse time (PEP 3131): two source files that
// spell a name with different but canonically-equivalent Unicode forms
// must resolve to the same identifier. Plain string/bytes literals go
// through Intern unchanged; only identifier text is normalized.
func (in *Interner) InternIdentifier(name string) StringID {
	return in.Intern(norm.NFKC.String(name))
}
