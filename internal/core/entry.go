package core

import (
	"ouros/internal/bignum"
	"ouros/internal/intern"
)

// HeapEntry is the boxed payload behind one HeapID slot. Exactly one of the
// kind-specific fields is meaningful, selected by Kind — mirroring the
// teacher's flat per-kind-field Object struct rather than a Go interface,
// so allocation never needs a separate heap-allocated vtable per object.
type HeapEntry struct {
	Kind       HeapKind
	RefCount   uint32
	Generation uint32
	Freed      bool
	// PotentiallyCyclic is set at allocation for container kinds that can
	// hold a Ref to another heap entry; it arms the opportunistic cycle collector
	// (spec §9) instead of tracing every container on every decref.
	PotentiallyCyclic bool
	// EstimatedSize feeds the resource tracker's byte-budget accounting.
	EstimatedSize uint32
	// ClassID is not set by any Alloc* helper; an Instance's class is
	// recorded in InstanceData.ClassID instead.
	ClassID HeapID

	Dict         *DictData
	List         []Value
	Set          *SetData
	Tuple        []Value
	Str          string
	Bytes        []byte
	Bytearray    []byte
	LongInt      bignum.BigInt
	Slice        SliceData
	NamedTuple   *NamedTupleData
	Class        *ClassData
	Instance     *InstanceData
	Module       *ModuleData
	Partial      *PartialData
	GenericAlias GenericAliasData
	Iter         *IterData

	Exception        *ExceptionRaise
	Closure          *ClosureData
	FunctionDefaults []Value
	BoundMethod      BoundMethodData
	StaticMethod     Value
	ClassMethod      Value
}

// DictEntry is one (possibly tombstoned) slot in a DictData's insertion-
// ordered backing array.
type DictEntry struct {
	Key     Value
	Val     Value
	Hash    uint64
	Deleted bool
}

// DictData backs both the runtime dict type and, via Index, the fast
// string-keyed lookup path (`get_by_str`, spec §4.D) that avoids allocating
// a temporary Value key for attribute-style lookups.
type DictData struct {
	Entries []DictEntry
	// Index maps a key hash to the entry indices sharing that hash
	// (collision chain), mirroring the teacher's Heap OKMap MapIndex/
	// MapEntries split in heap.go.
	Index map[uint64][]int
	// Live is the count of non-tombstoned entries; tombstones stay in the
	// backing array and are never compacted away.
	Live int
}

// SetData backs both Set and FrozenSet; the only difference between the two
// kinds is which Python methods are permitted to mutate it.
type SetData struct {
	Entries []DictEntry // Val is unused; Key/Hash/Deleted carry the semantics.
	Index   map[uint64][]int
	Live    int
}

// SliceData stores a slice literal's three components, each optionally
// absent (VKNone encodes "unspecified"), per spec §4.D.
type SliceData struct {
	Start Value
	Stop  Value
	Step  Value
}

// NamedTupleData is a tuple plus field names plus an owned-or-interned type
// name, per spec §4.D.
type NamedTupleData struct {
	Fields     []Value
	FieldNames []intern.StringID
	TypeName   intern.StringID
}

// SubclassEntry records one registered subclass for §4.E's subclass
// registry (`issubclass` fast paths, `__subclasses__`).
type SubclassEntry struct {
	ID  HeapID
	UID uint64
}

// ClassData is the runtime ClassObject (spec §3.5).
type ClassData struct {
	QualName   intern.StringID
	ClassUID   uint64
	Metaclass  Value
	Namespace  HeapID // Dict
	Bases      []HeapID
	MRO        []HeapID // MRO[0] is self; always ends with `object`.
	Subclasses []SubclassEntry
	SlotLayout []intern.StringID
	// InstanceHasDict and InstanceHasWeakref mirror CPython's __slots__
	// interaction with __dict__/__weakref__.
	InstanceHasDict    bool
	InstanceHasWeakref bool
}

// InstanceData is a Python instance (spec §3.6). Attrs is NoHeapID iff the
// class has __slots__ without __dict__; Slots is always
// len(class.SlotLayout), with Undefined marking "not yet set".
type InstanceData struct {
	ClassID  HeapID
	Attrs    HeapID // Dict, or NoHeapID
	Slots    []Value
	Weakrefs []HeapID
}

// ModuleData backs the three attribute-registration forms named in spec
// §4.D (SetAttrText/SetAttr/SetAttrStr all write into Attrs; the
// distinction is which string table the caller's name came from).
type ModuleData struct {
	Name  intern.StringID
	Attrs HeapID // Dict
}

// PartialData binds arguments in front of a callable (used pervasively to
// build bound methods for module-provided classes, spec §4.D).
type PartialData struct {
	Callable Value
	Args     []Value
	Kwargs   HeapID // Dict, or NoHeapID
}

// GenericAliasData backs `list[int]`, `typing.List[int]`, etc.
type GenericAliasData struct {
	Origin Value
	Args   []Value
}

// IterKind distinguishes the source an OurosIter wraps, since each source
// needs a different for_next strategy.
type IterKind uint8

const (
	IterUnknown IterKind = iota
	IterList
	IterTuple
	IterDict
	IterSet
	IterStr
	IterBytes
	IterRange
)

// IterData implements one-shot forward iteration over any iterable kind
// (spec §4.D's OurosIter). Once Exhausted is true, for_next always returns
// the exhausted signal again — it never resets.
type IterData struct {
	IterKind  IterKind
	Source    HeapID // the container being walked, retained for our lifetime
	Index     int
	Exhausted bool
}

// ClosureData captures a function definition plus its free-variable cells.
type ClosureData struct {
	FuncID   intern.FunctionID
	Captured []Value
	Defaults HeapID // FunctionDefaults, or NoHeapID
}

// BoundMethodData pairs a receiver with an unbound callable.
type BoundMethodData struct {
	Self Value
	Func Value
}
