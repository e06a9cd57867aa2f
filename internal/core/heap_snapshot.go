package core

import (
	"sort"

	"ouros/internal/resource"
)

// BuiltinClassEntry is one (builtin type, class HeapID) pair in a
// HeapSnapshot. Builtins are stored as a slice sorted by Type rather than a
// Go map: msgpack encodes a map in whatever order the runtime happens to
// iterate it, which would make two snapshots of the same pre-state encode
// to different byte streams and break spec §4.H's "identical pre-states
// produce byte-identical snapshots" guarantee.
type BuiltinClassEntry struct {
	Type uint8
	ID   HeapID
}

// HeapSnapshot is the serializable view of a Heap's arena (component H).
// DictData/SetData's Index maps are deliberately omitted: they are pure
// lookup acceleration over Entries and are rebuilt on restore, exactly the
// way the interner rebuilds its dedup map by position (spec §4.A, §9
// "deterministic ... rebuilds indices rather than serializing them").
type HeapSnapshot struct {
	Slots           []HeapEntry
	FreeList        []uint32
	BuiltinClassIDs []BuiltinClassEntry
}

// Export captures a point-in-time, independently-owned copy of the arena
// suitable for serialization.
func (h *Heap) Export() HeapSnapshot {
	slots := make([]HeapEntry, len(h.slots))
	copy(slots, h.slots)
	for i := range slots {
		rebuildIndexForExport(&slots[i])
	}
	freeList := append([]uint32(nil), h.freeList...)
	builtins := make([]BuiltinClassEntry, 0, len(h.builtinClassIDs))
	for t, id := range h.builtinClassIDs {
		builtins = append(builtins, BuiltinClassEntry{Type: uint8(t), ID: id})
	}
	sort.Slice(builtins, func(i, j int) bool { return builtins[i].Type < builtins[j].Type })
	return HeapSnapshot{Slots: slots, FreeList: freeList, BuiltinClassIDs: builtins}
}

// rebuildIndexForExport nils out derived index maps before encoding; they
// are pure acceleration structures reconstructed from Entries on restore.
func rebuildIndexForExport(e *HeapEntry) {
	switch e.Kind {
	case HKDict:
		if e.Dict != nil {
			cp := *e.Dict
			cp.Index = nil
			e.Dict = &cp
		}
	case HKSet, HKFrozenSet:
		if e.Set != nil {
			cp := *e.Set
			cp.Index = nil
			e.Set = &cp
		}
	}
}

// RestoreHeap rebuilds a Heap from a snapshot, reconstructing every
// derived index map from its Entries slice (spec §9 "snapshot restore
// rebuilds non-serialized derived structures deterministically").
func RestoreHeap(snap HeapSnapshot, tracker resource.Tracker) *Heap {
	if tracker == nil {
		tracker = resource.Unbounded{}
	}
	h := &Heap{
		slots:           append([]HeapEntry(nil), snap.Slots...),
		freeList:        append([]uint32(nil), snap.FreeList...),
		tracker:         tracker,
		builtinClassIDs: make(map[Type]HeapID, len(snap.BuiltinClassIDs)),
	}
	for _, entry := range snap.BuiltinClassIDs {
		h.builtinClassIDs[Type(entry.Type)] = entry.ID
	}
	for i := range h.slots {
		e := &h.slots[i]
		if e.Freed {
			continue
		}
		switch e.Kind {
		case HKDict:
			if e.Dict != nil {
				e.Dict.Index = make(map[uint64][]int, len(e.Dict.Entries))
				for idx, ent := range e.Dict.Entries {
					if !ent.Deleted {
						e.Dict.Index[ent.Hash] = append(e.Dict.Index[ent.Hash], idx)
					}
				}
			}
		case HKSet, HKFrozenSet:
			if e.Set != nil {
				e.Set.Index = make(map[uint64][]int, len(e.Set.Entries))
				for idx, ent := range e.Set.Entries {
					if !ent.Deleted {
						e.Set.Index[ent.Hash] = append(e.Set.Index[ent.Hash], idx)
					}
				}
			}
		}
		if e.PotentiallyCyclic {
			h.cyclicLiveCount++
		}
	}
	return h
}
