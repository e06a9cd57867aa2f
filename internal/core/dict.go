package core

import "ouros/internal/intern"

// dictLookup finds the live entry index for key in d, or (-1, false).
func dictLookup(d *DictData, key Value, hash uint64, heap *Heap, interns *intern.Interner) (int, bool) {
	for _, idx := range d.Index[hash] {
		ent := &d.Entries[idx]
		if !ent.Deleted && PyEq(ent.Key, key, heap, interns) {
			return idx, true
		}
	}
	return -1, false
}

// DictGet returns (value, true) if key is present (spec §4.D Dict lookup).
// Raises TypeError if key is not hashable, mirroring CPython's `d[k]` and
// `k in d` behavior for container keys like lists.
func DictGet(d *DictData, key Value, heap *Heap, interns *intern.Interner) (Value, bool, *RunError) {
	if !Hashable(key, heap) {
		return Value{}, false, NewTypeErrorUnhashable(PyType(key, heap).String())
	}
	h := PyHash(key, heap, interns)
	idx, ok := dictLookup(d, key, h, heap, interns)
	if !ok {
		return Value{}, false, nil
	}
	return d.Entries[idx].Val, true, nil
}

// DictGetByStr is the string-fast-path lookup (spec §4.D "get_by_str")
// that avoids constructing a temporary Value key for attribute-style
// lookups where the key is already known to be an interned string.
// Interned strings are always hashable, so the error DictGet can return is
// never possible here.
func DictGetByStr(d *DictData, name intern.StringID, heap *Heap, interns *intern.Interner) (Value, bool) {
	v, ok, _ := DictGet(d, MakeInternString(name), heap, interns)
	return v, ok
}

// DictSet inserts or updates key -> val, preserving insertion order for new
// keys (spec §4.D "insertion-order preserved"). Returns the previous value
// and whether it existed (for refcount bookkeeping by the caller, which
// owns releasing any displaced old value). Raises TypeError if key is not
// hashable (spec §4.D Dict/Set key hashability contract).
func DictSet(d *DictData, key, val Value, heap *Heap, interns *intern.Interner) (Value, bool, *RunError) {
	if !Hashable(key, heap) {
		return Value{}, false, NewTypeErrorUnhashable(PyType(key, heap).String())
	}
	h := PyHash(key, heap, interns)
	if idx, ok := dictLookup(d, key, h, heap, interns); ok {
		old := d.Entries[idx].Val
		d.Entries[idx].Val = val
		return old, true, nil
	}
	idx := len(d.Entries)
	d.Entries = append(d.Entries, DictEntry{Key: key, Val: val, Hash: h})
	d.Index[h] = append(d.Index[h], idx)
	d.Live++
	return Value{}, false, nil
}

// DictDelete removes key if present, returning its value for the caller to
// release. Raises TypeError if key is not hashable.
func DictDelete(d *DictData, key Value, heap *Heap, interns *intern.Interner) (Value, bool, *RunError) {
	if !Hashable(key, heap) {
		return Value{}, false, NewTypeErrorUnhashable(PyType(key, heap).String())
	}
	h := PyHash(key, heap, interns)
	idx, ok := dictLookup(d, key, h, heap, interns)
	if !ok {
		return Value{}, false, nil
	}
	old := d.Entries[idx].Val
	d.Entries[idx].Deleted = true
	d.Live--
	return old, true, nil
}

// DictKeysInOrder returns the live keys in insertion order (spec §8 "Dict
// order").
func DictKeysInOrder(d *DictData) []Value {
	out := make([]Value, 0, d.Live)
	for _, ent := range d.Entries {
		if !ent.Deleted {
			out = append(out, ent.Key)
		}
	}
	return out
}

// setLookup finds the live entry index for key in s, or (-1, false).
func setLookup(s *SetData, key Value, hash uint64, heap *Heap, interns *intern.Interner) (int, bool) {
	for _, idx := range s.Index[hash] {
		ent := &s.Entries[idx]
		if !ent.Deleted && PyEq(ent.Key, key, heap, interns) {
			return idx, true
		}
	}
	return -1, false
}

// SetContains reports whether key is a member of s. Raises TypeError if key
// is not hashable.
func SetContains(s *SetData, key Value, heap *Heap, interns *intern.Interner) (bool, *RunError) {
	if !Hashable(key, heap) {
		return false, NewTypeErrorUnhashable(PyType(key, heap).String())
	}
	h := PyHash(key, heap, interns)
	_, ok := setLookup(s, key, h, heap, interns)
	return ok, nil
}

// SetAdd inserts key if absent, reporting whether it was newly added. Raises
// TypeError if key is not hashable (spec §4.D Dict/Set key hashability
// contract) instead of silently falling back to identity hashing.
func SetAdd(s *SetData, key Value, heap *Heap, interns *intern.Interner) (bool, *RunError) {
	if !Hashable(key, heap) {
		return false, NewTypeErrorUnhashable(PyType(key, heap).String())
	}
	h := PyHash(key, heap, interns)
	if _, ok := setLookup(s, key, h, heap, interns); ok {
		return false, nil
	}
	idx := len(s.Entries)
	s.Entries = append(s.Entries, DictEntry{Key: key, Hash: h})
	s.Index[h] = append(s.Index[h], idx)
	s.Live++
	return true, nil
}

// SetRemove deletes key if present, returning it for the caller to release.
// Raises TypeError if key is not hashable.
func SetRemove(s *SetData, key Value, heap *Heap, interns *intern.Interner) (Value, bool, *RunError) {
	if !Hashable(key, heap) {
		return Value{}, false, NewTypeErrorUnhashable(PyType(key, heap).String())
	}
	h := PyHash(key, heap, interns)
	idx, ok := setLookup(s, key, h, heap, interns)
	if !ok {
		return Value{}, false, nil
	}
	old := s.Entries[idx].Key
	s.Entries[idx].Deleted = true
	s.Live--
	return old, true, nil
}
