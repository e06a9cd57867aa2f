package core

import (
	"ouros/internal/resource"
)

// Heap is the reference-counted arena backing every VKRef Value (component
// C). Slots are never reused without bumping Generation, so a stale HeapID
// captured before a Free is detectably invalid rather than silently
// aliasing whatever got allocated into the recycled slot next — this is the
// one behavioral difference from the teacher's Heap, whose Handles are
// simply never reused within a run (spec §3.1 requires generation-tagged
// reuse; the teacher never needed it).
type Heap struct {
	slots    []HeapEntry
	freeList []uint32 // slot indices available for reuse, LIFO

	tracker resource.Tracker

	// cyclicLiveCount is the number of currently-live entries with
	// PotentiallyCyclic set; the opportunistic collector (drop.go) runs
	// when this crosses cycleCollectThreshold.
	cyclicLiveCount int

	// builtinClassIDs maps a builtin Type tag to its pre-allocated
	// ClassObject, populated once at construction (spec §4.C
	// "builtin_class_id").
	builtinClassIDs map[Type]HeapID
}

const cycleCollectThreshold = 256

// NewHeap creates an empty arena gated by tracker. Slot 0 is never used (it
// is the zero HeapID, reserved for "invalid"), matching the teacher's
// Handle(0)-is-invalid convention.
func NewHeap(tracker resource.Tracker) *Heap {
	if tracker == nil {
		tracker = resource.Unbounded{}
	}
	h := &Heap{
		slots:           make([]HeapEntry, 1, 128), // slots[0] is the permanent invalid sentinel
		builtinClassIDs: make(map[Type]HeapID, 32),
	}
	h.tracker = tracker
	return h
}

// allocate reserves a slot for data (whose Kind and payload are set by the
// caller's Alloc* helper; allocate itself sets RefCount to 1) and returns
// its handle. It consults the resource tracker with
// data's estimated size before growing the arena, and never silently drops
// the caller's constructed payload on denial — the caller still owns data
// and may retry, discard it, or propagate the failure (spec §4.C).
func (h *Heap) allocate(data HeapEntry) (HeapID, *resource.Error) {
	if rerr := h.tracker.OnAllocate(data.Kind.String(), data.EstimatedSize); rerr != nil {
		return NoHeapID, rerr
	}
	data.RefCount = 1
	data.Freed = false

	if len(h.freeList) > 0 {
		slot := h.freeList[len(h.freeList)-1]
		h.freeList = h.freeList[:len(h.freeList)-1]
		gen := h.slots[slot].Generation
		data.Generation = gen
		h.slots[slot] = data
		if data.PotentiallyCyclic {
			h.cyclicLiveCount++
		}
		return HeapID{Slot: slot, Generation: gen}, nil
	}

	slot := uint32(len(h.slots))
	data.Generation = 0
	h.slots = append(h.slots, data)
	if data.PotentiallyCyclic {
		h.cyclicLiveCount++
	}
	return HeapID{Slot: slot, Generation: 0}, nil
}

// indexOf validates id against the live arena, panicking on structural
// misuse (invalid slot, generation mismatch, already-freed) — these are
// interpreter bugs, never Python-level errors.
func (h *Heap) indexOf(id HeapID) int {
	if !id.IsValid() || int(id.Slot) >= len(h.slots) {
		panicHeap(InvariantInvalidHeapID, "invalid heap id %s", id)
	}
	e := &h.slots[id.Slot]
	if e.Generation != id.Generation {
		panicHeap(InvariantUseAfterFree, "stale heap id %s (current generation %d)", id, e.Generation)
	}
	if e.Freed || e.RefCount == 0 {
		panicHeap(InvariantUseAfterFree, "use after free: %s", id)
	}
	return int(id.Slot)
}

// Get returns a mutable pointer to the live entry at id. Panics if id is
// stale or the slot is freed.
func (h *Heap) Get(id HeapID) *HeapEntry {
	return &h.slots[h.indexOf(id)]
}

// GetIfLive tolerates a freed or stale slot, returning (nil, false) instead
// of panicking — used by weak-reference-style callers (spec §4.C).
func (h *Heap) GetIfLive(id HeapID) (*HeapEntry, bool) {
	if !id.IsValid() || int(id.Slot) >= len(h.slots) {
		return nil, false
	}
	e := &h.slots[id.Slot]
	if e.Generation != id.Generation || e.Freed || e.RefCount == 0 {
		return nil, false
	}
	return e, true
}

// WithEntryMut re-borrows id for mutation, passing the rest of the heap to
// f so the callback can allocate into other slots while holding a pointer
// to this one (spec §4.C). Re-entrant calls into WithEntryMut for the same
// id are a programming error, but nothing here detects them: Go's aliasing
// rules don't catch this automatically since f receives *Heap by
// value-of-pointer, and a nested Get/WithEntryMut on the same id sees the
// slot is still live and simply re-borrows it without panicking; avoiding
// such nesting is left to the VM (single-threaded cooperative scheduling,
// spec §5).
func (h *Heap) WithEntryMut(id HeapID, f func(entry *HeapEntry, heap *Heap)) {
	f(h.Get(id), h)
}

// Retain increments id's refcount (spec §4.C inc_ref).
func (h *Heap) Retain(id HeapID) {
	e := &h.slots[h.indexOf(id)]
	e.RefCount++
	if e.RefCount == 0 {
		panicHeap(InvariantRefcountOverflow, "refcount overflow: %s", id)
	}
}

// Release decrements id's refcount (spec §4.C dec_ref), freeing the slot
// when it reaches zero. Freeing recursively releases every heap id the
// entry owns via an explicit worklist (drop.go's dropChildren), never Go
// recursion, so a long container chain can't blow the Go stack.
func (h *Heap) Release(id HeapID) {
	e := &h.slots[h.indexOf(id)]
	e.RefCount--
	if e.RefCount == 0 {
		h.free(id)
	}
}

// free finalizes a zero-refcount slot: drops every owned child id, then
// marks the slot free and bumps its generation so any lingering stale
// HeapID referring here is detectable forever after (spec §4.C invariant:
// "a freed slot's generation is always > any generation that ever pointed
// there").
func (h *Heap) free(id HeapID) {
	idx := int(id.Slot)
	e := &h.slots[idx]
	if e.Freed {
		panicHeap(InvariantDoubleFree, "double free: %s", id)
	}
	if e.RefCount != 0 {
		panicHeap(InvariantDoubleFree, "free called with non-zero refcount: %s (rc=%d)", id, e.RefCount)
	}
	if e.PotentiallyCyclic {
		h.cyclicLiveCount--
	}

	h.dropChildren(e)

	e.Freed = true
	e.Generation++
	*e = HeapEntry{Freed: true, Generation: e.Generation}
	h.freeList = append(h.freeList, uint32(idx))
}

// LiveCount returns the number of currently-allocated (non-freed) slots.
// The cycle collector's threshold uses cyclicLiveCount, not this count.
func (h *Heap) LiveCount() int {
	n := 0
	for i := 1; i < len(h.slots); i++ {
		if !h.slots[i].Freed {
			n++
		}
	}
	return n
}

// BuiltinClassID returns the stable, pre-allocated ClassObject id for a
// builtin Type, or NoHeapID if RegisterBuiltinClass was never called for
// it (spec §4.C).
func (h *Heap) BuiltinClassID(t Type) (HeapID, bool) {
	id, ok := h.builtinClassIDs[t]
	return id, ok
}

// RegisterBuiltinClass records id as the stable class object for t. Called
// once per builtin type at heap construction time by the VM's bootstrap.
func (h *Heap) RegisterBuiltinClass(t Type, id HeapID) {
	h.builtinClassIDs[t] = id
}

// MaybeCollectCycles runs the opportunistic trial-deletion collector
// (spec §9) when the live potentially-cyclic population is above
// cycleCollectThreshold. It is a no-op otherwise — cycle
// collection is never mandatory on every decref (spec's Open Question,
// resolved per the source's own suggestion of an opportunistic,
// flag-gated pass).
func (h *Heap) MaybeCollectCycles() {
	if h.cyclicLiveCount <= cycleCollectThreshold {
		return
	}
	h.collectCycles()
}
