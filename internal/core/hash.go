package core

import (
	"hash/fnv"
	"math"

	"ouros/internal/intern"
)

// Hashable reports whether v can be hashed without raising TypeError,
// matching CPython's "container types are unhashable unless frozen"
// convention (spec §4.D: Dict/Set key hashability contract).
func Hashable(v Value, heap *Heap) bool {
	switch v.Kind {
	case VKNone, VKNotImplemented, VKBool, VKInt, VKFloat,
		VKInternString, VKInternBytes, VKInternLongInt, VKMarker,
		VKBuiltin, VKDefFunction, VKExtFunction, VKModuleFunction:
		return true
	case VKRef:
		e, ok := heap.GetIfLive(v.Ref)
		if !ok {
			return false
		}
		switch e.Kind {
		case HKStr, HKBytes, HKLongInt, HKClassObject, HKModule,
			HKClosure, HKBoundMethod, HKStaticMethod, HKClassMethod, HKSlice:
			return true
		case HKTuple:
			for _, el := range e.Tuple {
				if !Hashable(el, heap) {
					return false
				}
			}
			return true
		case HKFrozenSet:
			return true
		case HKInstance:
			// User classes are hashable by identity unless they define
			// __eq__ without __hash__ (CPython sets __hash__ = None then);
			// the class/MRO engine is responsible for enforcing that rule
			// at class-creation time, so by the time we see an Instance
			// here it is hashable by HeapID identity.
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// PyHash computes spec §4.D/§4.G's py_hash. It never raises for an
// unhashable value: such a heap value gets the identity hash of the default
// branch, so callers must check Hashable first and raise TypeError
// themselves with the exact CPython wording (NewTypeErrorUnhashable),
// matching the teacher's convention of keeping error-message construction
// in the exception layer rather than in low-level helpers. Panics (a Go
// panic, not a Python exception) only on a dead heap reference.
func PyHash(v Value, heap *Heap, interns *intern.Interner) uint64 {
	h := fnv.New64a()
	switch v.Kind {
	case VKNone:
		return 0x9e3779b97f4a7c15
	case VKNotImplemented:
		return 0x1
	case VKBool:
		if v.Bool {
			return 1
		}
		return 0
	case VKInt:
		return hashInt64(v.Int64)
	case VKFloat:
		if v.Float64 == math.Trunc(v.Float64) && !math.IsInf(v.Float64, 0) {
			return hashInt64(int64(v.Float64))
		}
		return hashBits(math.Float64bits(v.Float64))
	case VKInternString:
		s, _ := interns.GetStr(v.Str)
		h.Write([]byte(s))
		return h.Sum64()
	case VKInternBytes:
		b, _ := interns.GetBytes(v.Bytes)
		h.Write(b)
		return h.Sum64()
	case VKInternLongInt:
		s, _ := interns.GetLongInt(v.LongInt)
		h.Write([]byte(s))
		return h.Sum64()
	case VKMarker:
		return hashInt64(int64(v.Marker))
	case VKBuiltin:
		return hashInt64(int64(v.Builtin))
	case VKDefFunction:
		return hashInt64(int64(v.DefFunc))
	case VKExtFunction:
		return hashInt64(int64(v.ExtFunc))
	case VKModuleFunction:
		return hashInt64(int64(v.ModuleFunc))
	case VKRef:
		e, ok := heap.GetIfLive(v.Ref)
		if !ok {
			panicHeap(InvariantUseAfterFree, "PyHash on dead ref %s", v.Ref)
		}
		switch e.Kind {
		case HKStr:
			h.Write([]byte(e.Str))
			return h.Sum64()
		case HKBytes:
			h.Write(e.Bytes)
			return h.Sum64()
		case HKLongInt:
			for _, limb := range e.LongInt.Limbs {
				h.Write([]byte{byte(limb), byte(limb >> 8), byte(limb >> 16), byte(limb >> 24)})
			}
			if e.LongInt.Neg {
				h.Write([]byte{1})
			}
			return h.Sum64()
		case HKTuple:
			acc := uint64(0x345678)
			for _, el := range e.Tuple {
				acc = acc*1000003 ^ PyHash(el, heap, interns)
			}
			return acc
		case HKFrozenSet:
			acc := uint64(1927868237)
			for _, ent := range e.Set.Entries {
				if !ent.Deleted {
					acc ^= ent.Hash
				}
			}
			return acc
		case HKSlice:
			acc := hashValueOrNone(e.Slice.Start, heap, interns)
			acc = acc*1000003 ^ hashValueOrNone(e.Slice.Stop, heap, interns)
			acc = acc*1000003 ^ hashValueOrNone(e.Slice.Step, heap, interns)
			return acc
		default:
			// Identity hash: stable for the object's lifetime, matching
			// CPython's default id()-based __hash__.
			return hashInt64(int64(v.Ref.Slot))
		}
	default:
		return 0
	}
}

func hashValueOrNone(v Value, heap *Heap, interns *intern.Interner) uint64 {
	if v.Kind == VKNone {
		return 0
	}
	return PyHash(v, heap, interns)
}

func hashInt64(n int64) uint64 {
	return hashBits(uint64(n))
}

func hashBits(bits uint64) uint64 {
	bits ^= bits >> 33
	bits *= 0xff51afd7ed558ccd
	bits ^= bits >> 33
	bits *= 0xc4ceb9fe1a85ec53
	bits ^= bits >> 33
	return bits
}

// PyEq implements spec §4.D/§4.G's py_eq: structural equality, delegating
// to the numeric tower when operand types differ (CPython: `1 == 1.0` is
// True, `1 == "1"` is False).
func PyEq(a, b Value, heap *Heap, interns *intern.Interner) bool {
	if numeric(a) && numeric(b) && !(a.Kind == VKInternLongInt && b.Kind == VKInternLongInt) {
		return numericEq(a, b, heap)
	}
	if a.Kind != b.Kind {
		if a.Kind == VKRef || b.Kind == VKRef {
			return refCrossEq(a, b, heap, interns)
		}
		return false
	}
	switch a.Kind {
	case VKNone, VKNotImplemented, VKUndefined:
		return true
	case VKBool:
		return a.Bool == b.Bool
	case VKInternString:
		return a.Str == b.Str || (interns != nil && mustStr(interns, a.Str) == mustStr(interns, b.Str))
	case VKInternBytes:
		return a.Bytes == b.Bytes
	case VKInternLongInt:
		return a.LongInt == b.LongInt
	case VKMarker:
		return a.Marker == b.Marker
	case VKBuiltin:
		return a.Builtin == b.Builtin
	case VKDefFunction:
		return a.DefFunc == b.DefFunc
	case VKExtFunction:
		return a.ExtFunc == b.ExtFunc
	case VKModuleFunction:
		return a.ModuleFunc == b.ModuleFunc
	case VKRef:
		return refEq(a.Ref, b.Ref, heap, interns)
	default:
		return false
	}
}

func mustStr(interns *intern.Interner, id intern.StringID) string {
	s, _ := interns.GetStr(id)
	return s
}

func numeric(v Value) bool {
	return v.Kind == VKInt || v.Kind == VKFloat || v.Kind == VKBool || v.Kind == VKInternLongInt
}

func numericEq(a, b Value, heap *Heap) bool {
	af, aok := numericFloat(a)
	bf, bok := numericFloat(b)
	if aok && bok {
		return af == bf
	}
	return false
}

func numericFloat(v Value) (float64, bool) {
	switch v.Kind {
	case VKInt:
		return float64(v.Int64), true
	case VKBool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	case VKFloat:
		return v.Float64, true
	default:
		return 0, false
	}
}

func refCrossEq(a, b Value, heap *Heap, interns *intern.Interner) bool {
	strOf := func(v Value) (string, bool) {
		switch v.Kind {
		case VKInternString:
			s, _ := interns.GetStr(v.Str)
			return s, true
		case VKRef:
			if e, ok := heap.GetIfLive(v.Ref); ok && e.Kind == HKStr {
				return e.Str, true
			}
		}
		return "", false
	}
	as, aok := strOf(a)
	bs, bok := strOf(b)
	if aok && bok {
		return as == bs
	}
	return false
}

func refEq(ai, bi HeapID, heap *Heap, interns *intern.Interner) bool {
	if ai == bi {
		return true
	}
	ae, aok := heap.GetIfLive(ai)
	be, bok := heap.GetIfLive(bi)
	if !aok || !bok || ae.Kind != be.Kind {
		return false
	}
	switch ae.Kind {
	case HKStr:
		return ae.Str == be.Str
	case HKBytes:
		return string(ae.Bytes) == string(be.Bytes)
	case HKBytearray:
		return string(ae.Bytearray) == string(be.Bytearray)
	case HKLongInt:
		return ae.LongInt.Cmp(be.LongInt) == 0
	case HKTuple:
		return valueSliceEq(ae.Tuple, be.Tuple, heap, interns)
	case HKList:
		return valueSliceEq(ae.List, be.List, heap, interns)
	case HKFrozenSet, HKSet:
		return setEq(ae.Set, be.Set, heap, interns)
	case HKDict:
		return dictEq(ae.Dict, be.Dict, heap, interns)
	default:
		return ai == bi
	}
}

func valueSliceEq(a, b []Value, heap *Heap, interns *intern.Interner) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !PyEq(a[i], b[i], heap, interns) {
			return false
		}
	}
	return true
}

func setEq(a, b *SetData, heap *Heap, interns *intern.Interner) bool {
	if a.Live != b.Live {
		return false
	}
	for _, ent := range a.Entries {
		if ent.Deleted {
			continue
		}
		if _, ok := setLookup(b, ent.Key, ent.Hash, heap, interns); !ok {
			return false
		}
	}
	return true
}

func dictEq(a, b *DictData, heap *Heap, interns *intern.Interner) bool {
	if a.Live != b.Live {
		return false
	}
	for _, ent := range a.Entries {
		if ent.Deleted {
			continue
		}
		idx, ok := dictLookup(b, ent.Key, ent.Hash, heap, interns)
		if !ok || !PyEq(b.Entries[idx].Val, ent.Val, heap, interns) {
			return false
		}
	}
	return true
}
