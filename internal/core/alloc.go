package core

import (
	"ouros/internal/bignum"
	"ouros/internal/intern"
	"ouros/internal/resource"
)

// Each Alloc<Kind> constructor below mirrors the teacher's one-helper-per-
// kind pattern (AllocString/AllocArray/AllocMap/AllocStruct/AllocTag/
// AllocBigInt in heap.go): build the kind-specific payload, hand it to
// Heap.allocate, and let the tracker veto on size. Every element Value the
// caller hands in whose Kind is VKRef must already be a retained owning
// reference — allocate never implicitly retains its arguments, exactly
// like the teacher's AllocArray takes ownership of the slice it's given
// without touching refcounts itself.

func (h *Heap) AllocDict() (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKDict,
		Dict:              &DictData{Index: make(map[uint64][]int, 8)},
		PotentiallyCyclic: true,
		EstimatedSize:     64,
	})
}

func (h *Heap) AllocList(elems []Value) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKList,
		List:              append([]Value(nil), elems...),
		PotentiallyCyclic: true,
		EstimatedSize:     uint32(32 + 16*len(elems)),
	})
}

func (h *Heap) AllocSet() (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKSet,
		Set:               &SetData{Index: make(map[uint64][]int, 8)},
		PotentiallyCyclic: true,
		EstimatedSize:     64,
	})
}

func (h *Heap) AllocFrozenSet(entries []DictEntry) (HeapID, *resource.Error) {
	idx := make(map[uint64][]int, len(entries))
	for i, e := range entries {
		idx[e.Hash] = append(idx[e.Hash], i)
	}
	return h.allocate(HeapEntry{
		Kind:              HKFrozenSet,
		Set:               &SetData{Entries: entries, Index: idx, Live: len(entries)},
		PotentiallyCyclic: true,
		EstimatedSize:     uint32(32 + 16*len(entries)),
	})
}

func (h *Heap) AllocTuple(elems []Value) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKTuple,
		Tuple:             append([]Value(nil), elems...),
		PotentiallyCyclic: true,
		EstimatedSize:     uint32(24 + 16*len(elems)),
	})
}

func (h *Heap) AllocStr(s string) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{Kind: HKStr, Str: s, EstimatedSize: uint32(16 + len(s))})
}

func (h *Heap) AllocBytes(b []byte) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{Kind: HKBytes, Bytes: append([]byte(nil), b...), EstimatedSize: uint32(16 + len(b))})
}

func (h *Heap) AllocBytearray(b []byte) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{Kind: HKBytearray, Bytearray: append([]byte(nil), b...), EstimatedSize: uint32(16 + len(b))})
}

func (h *Heap) AllocLongInt(v bignum.BigInt) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{Kind: HKLongInt, LongInt: v, EstimatedSize: uint32(16 + 4*len(v.Limbs))})
}

func (h *Heap) AllocSlice(start, stop, step Value) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKSlice,
		Slice:             SliceData{Start: start, Stop: stop, Step: step},
		PotentiallyCyclic: true,
		EstimatedSize:     48,
	})
}

func (h *Heap) AllocNamedTuple(fields []Value, names []intern.StringID, typeName intern.StringID) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind: HKNamedTuple,
		NamedTuple: &NamedTupleData{
			Fields:     append([]Value(nil), fields...),
			FieldNames: append([]intern.StringID(nil), names...),
			TypeName:   typeName,
		},
		PotentiallyCyclic: true,
		EstimatedSize:     uint32(32 + 16*len(fields)),
	})
}

func (h *Heap) AllocClass(data ClassData) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKClassObject,
		Class:             &data,
		PotentiallyCyclic: true,
		EstimatedSize:     128,
	})
}

func (h *Heap) AllocInstance(classID HeapID, attrs HeapID, numSlots int) (HeapID, *resource.Error) {
	slots := make([]Value, numSlots)
	for i := range slots {
		slots[i] = Undefined
	}
	return h.allocate(HeapEntry{
		Kind:              HKInstance,
		Instance:          &InstanceData{ClassID: classID, Attrs: attrs, Slots: slots},
		PotentiallyCyclic: true,
		EstimatedSize:     uint32(32 + 16*numSlots),
	})
}

func (h *Heap) AllocModule(name intern.StringID, attrs HeapID) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKModule,
		Module:            &ModuleData{Name: name, Attrs: attrs},
		PotentiallyCyclic: true,
		EstimatedSize:     32,
	})
}

func (h *Heap) AllocPartial(callable Value, args []Value, kwargs HeapID) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKPartial,
		Partial:           &PartialData{Callable: callable, Args: append([]Value(nil), args...), Kwargs: kwargs},
		PotentiallyCyclic: true,
		EstimatedSize:     uint32(32 + 16*len(args)),
	})
}

func (h *Heap) AllocGenericAlias(origin Value, args []Value) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKGenericAlias,
		GenericAlias:      GenericAliasData{Origin: origin, Args: append([]Value(nil), args...)},
		PotentiallyCyclic: true,
		EstimatedSize:     uint32(24 + 16*len(args)),
	})
}

func (h *Heap) AllocIter(kind IterKind, source HeapID) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKIter,
		Iter:              &IterData{IterKind: kind, Source: source},
		PotentiallyCyclic: source.IsValid(),
		EstimatedSize:     32,
	})
}

func (h *Heap) AllocException(raise ExceptionRaise) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{Kind: HKException, Exception: &raise, EstimatedSize: 64})
}

func (h *Heap) AllocClosure(funcID intern.FunctionID, captured []Value, defaults HeapID) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKClosure,
		Closure:           &ClosureData{FuncID: funcID, Captured: append([]Value(nil), captured...), Defaults: defaults},
		PotentiallyCyclic: true,
		EstimatedSize:     uint32(32 + 16*len(captured)),
	})
}

func (h *Heap) AllocFunctionDefaults(defaults []Value) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKFunctionDefaults,
		FunctionDefaults:  append([]Value(nil), defaults...),
		PotentiallyCyclic: true,
		EstimatedSize:     uint32(16 + 16*len(defaults)),
	})
}

func (h *Heap) AllocBoundMethod(self, fn Value) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{
		Kind:              HKBoundMethod,
		BoundMethod:       BoundMethodData{Self: self, Func: fn},
		PotentiallyCyclic: true,
		EstimatedSize:     32,
	})
}

func (h *Heap) AllocStaticMethod(fn Value) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{Kind: HKStaticMethod, StaticMethod: fn, PotentiallyCyclic: true, EstimatedSize: 24})
}

func (h *Heap) AllocClassMethod(fn Value) (HeapID, *resource.Error) {
	return h.allocate(HeapEntry{Kind: HKClassMethod, ClassMethod: fn, PotentiallyCyclic: true, EstimatedSize: 24})
}
