package intern

// Interner deduplicates strings interned during a session and stores
// bytes/long-integer literals by index. One Interner is owned per session;
// it lives for the lifetime of that session (component A of the
// interpreter core, spec.md §4.A).
type Interner struct {
	userStrings []string
	userIndex   map[string]StringID

	bytesTable   [][]byte
	longIntTable []string // decimal text of the literal; parsed lazily by callers via internal/bignum

	functions  []FunctionDef
	extNames   []string
	extIndex   map[string]ExtFunctionID
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{
		userIndex: make(map[string]StringID, 64),
		extIndex:  make(map[string]ExtFunctionID, 8),
	}
}

// Intern ensures s has a stable StringID for the lifetime of the session.
// Deterministic: repeated calls with the same s return the same id
// (spec.md §8 "Interner idempotence").
func (in *Interner) Intern(s string) StringID {
	if len(s) == 1 && s[0] < 128 {
		return StringID(s[0])
	}
	if ss, ok := lookupStatic(s); ok {
		return ss.StringID()
	}
	if id, ok := in.userIndex[s]; ok {
		return id
	}
	// Copy to avoid retaining the caller's backing array.
	cpy := string([]byte(s))
	id := StringID(internStringOffset + len(in.userStrings))
	in.userStrings = append(in.userStrings, cpy)
	in.userIndex[cpy] = id
	return id
}

// GetStr resolves id back to its text. Total for every id ever returned by
// Intern, plus every ASCII byte and every StaticString, even ones never
// interned (spec.md §4.A "get_str(id) is total for valid ids").
func (in *Interner) GetStr(id StringID) (string, bool) {
	switch {
	case id.IsASCIIFast():
		return string([]byte{byte(id)}), true
	case id.IsStatic():
		return StaticString(uint32(id) - staticStringOffset).Text(), true
	case id.IsInterned():
		idx := int(id) - internStringOffset
		if idx < 0 || idx >= len(in.userStrings) {
			return "", false
		}
		return in.userStrings[idx], true
	default:
		return "", false
	}
}

// MustGetStr panics if id is invalid. Reserved for call sites that already
// hold a StringID known (by construction) to be live.
func (in *Interner) MustGetStr(id StringID) string {
	s, ok := in.GetStr(id)
	if !ok {
		panic("intern: invalid StringID")
	}
	return s
}

// InternBytes appends b to the bytes table without deduplication and
// returns its id.
func (in *Interner) InternBytes(b []byte) BytesID {
	cpy := append([]byte(nil), b...)
	id := BytesID(len(in.bytesTable))
	in.bytesTable = append(in.bytesTable, cpy)
	return id
}

// GetBytes returns the bytes literal stored at id.
func (in *Interner) GetBytes(id BytesID) ([]byte, bool) {
	if int(id) >= len(in.bytesTable) {
		return nil, false
	}
	return in.bytesTable[id], true
}

// InternLongInt appends the decimal text of an arbitrary-precision integer
// literal to the long-int table without deduplication.
func (in *Interner) InternLongInt(decimal string) LongIntID {
	id := LongIntID(len(in.longIntTable))
	in.longIntTable = append(in.longIntTable, decimal)
	return id
}

// GetLongInt returns the decimal text stored at id.
func (in *Interner) GetLongInt(id LongIntID) (string, bool) {
	if int(id) >= len(in.longIntTable) {
		return "", false
	}
	return in.longIntTable[id], true
}

// InternFunction appends a compiled function definition to the function
// table and returns its id.
func (in *Interner) InternFunction(def FunctionDef) FunctionID {
	id := FunctionID(len(in.functions))
	in.functions = append(in.functions, def)
	return id
}

// GetFunction returns the function definition stored at id.
func (in *Interner) GetFunction(id FunctionID) (FunctionDef, bool) {
	if int(id) >= len(in.functions) {
		return FunctionDef{}, false
	}
	return in.functions[id], true
}

// InternExtFunction deduplicates external-call names (the names the VM's
// external-call protocol dispatches by, e.g. "os.getcwd").
func (in *Interner) InternExtFunction(name string) ExtFunctionID {
	if id, ok := in.extIndex[name]; ok {
		return id
	}
	id := ExtFunctionID(len(in.extNames))
	in.extNames = append(in.extNames, name)
	in.extIndex[name] = id
	return id
}

// GetExtFunction returns the external-call name stored at id.
func (in *Interner) GetExtFunction(id ExtFunctionID) (string, bool) {
	if int(id) >= len(in.extNames) {
		return "", false
	}
	return in.extNames[id], true
}

// Snapshot returns the raw tables backing this interner, for the snapshot
// codec (component H). The returned slices are fresh copies; mutating them
// does not affect the interner.
func (in *Interner) Snapshot() (userStrings []string, bytesTable [][]byte, longIntTable []string) {
	userStrings = append([]string(nil), in.userStrings...)
	bytesTable = make([][]byte, len(in.bytesTable))
	for i, b := range in.bytesTable {
		bytesTable[i] = append([]byte(nil), b...)
	}
	longIntTable = append([]string(nil), in.longIntTable...)
	return
}

// Restore rebuilds an Interner's string/bytes/long-int tables from a
// snapshot, reconstructing the dedup map by position (spec.md §4.A
// "reconstruction rebuilds the deduplication map by position").
func Restore(userStrings []string, bytesTable [][]byte, longIntTable []string) *Interner {
	in := New()
	in.userStrings = append([]string(nil), userStrings...)
	for i, s := range in.userStrings {
		in.userIndex[s] = StringID(internStringOffset + i)
	}
	in.bytesTable = make([][]byte, len(bytesTable))
	for i, b := range bytesTable {
		in.bytesTable[i] = append([]byte(nil), b...)
	}
	in.longIntTable = append([]string(nil), longIntTable...)
	return in
}
