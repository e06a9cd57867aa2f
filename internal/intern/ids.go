// Package intern implements Ouros's deduplicating interners for strings,
// bytes, long-integer literals, function definitions, and external-call
// names (component A of the interpreter core).
package intern

import "fmt"

// StringID indexes into the string interner's storage.
//
// Layout (see Interner.Intern):
//   - 0..127: the single ASCII character with that byte value, computed on
//     the fly and never stored.
//   - 1000..1000+len(staticStringTable): a closed StaticString, resolved
//     from the enum without touching the session map.
//   - 10000+: per-session interned strings, deduplicated via a hash map.
type StringID uint32

const (
	staticStringOffset = 1000
	internStringOffset = 10_000
)

// IsASCIIFast reports whether id resolves via the zero-allocation ASCII
// fast path (single-byte strings 0..127).
func (id StringID) IsASCIIFast() bool { return id < 128 }

// IsStatic reports whether id names a StaticString.
func (id StringID) IsStatic() bool {
	return id >= staticStringOffset && int(id) < staticStringOffset+len(staticStringTable)
}

// IsInterned reports whether id was allocated by the per-session dedup map.
func (id StringID) IsInterned() bool { return id >= internStringOffset }

func (id StringID) String() string {
	return fmt.Sprintf("StringID(%d)", uint32(id))
}

// BytesID indexes into the append-only bytes table. Entries are never
// deduplicated: distinct bytes literals at distinct source positions get
// distinct ids even if their content matches.
type BytesID uint32

// LongIntID indexes into the append-only big-integer literal table.
// Like BytesID, entries are never deduplicated.
type LongIntID uint32

// FunctionID indexes into the append-only function-definition table.
type FunctionID uint32

// ExtFunctionID indexes into the append-only external-call name table.
type ExtFunctionID uint32
