package core

import (
	"fmt"
	"sort"
	"strings"
)

// ownedHeapIDs appends every HeapID e directly owns to dst, implementing
// spec §4.G's py_dec_ref_ids contract. It never recurses into grandchildren
// — the caller (dropChildren / the cycle collector) drives the worklist.
func ownedHeapIDs(e *HeapEntry, dst []HeapID) []HeapID {
	appendValue := func(v Value) {
		if v.Kind == VKRef && v.Ref.IsValid() {
			dst = append(dst, v.Ref)
		}
	}
	switch e.Kind {
	case HKList, HKTuple, HKFunctionDefaults:
		vs := e.List
		if e.Kind == HKTuple {
			vs = e.Tuple
		}
		if e.Kind == HKFunctionDefaults {
			vs = e.FunctionDefaults
		}
		for _, v := range vs {
			appendValue(v)
		}
	case HKDict:
		for _, ent := range e.Dict.Entries {
			if ent.Deleted {
				continue
			}
			appendValue(ent.Key)
			appendValue(ent.Val)
		}
	case HKSet, HKFrozenSet:
		for _, ent := range e.Set.Entries {
			if ent.Deleted {
				continue
			}
			appendValue(ent.Key)
		}
	case HKNamedTuple:
		for _, v := range e.NamedTuple.Fields {
			appendValue(v)
		}
	case HKClassObject:
		c := e.Class
		appendValue(c.Metaclass)
		if c.Namespace.IsValid() {
			dst = append(dst, c.Namespace)
		}
		for _, b := range c.Bases {
			dst = append(dst, b)
		}
		for _, m := range c.MRO {
			dst = append(dst, m)
		}
	case HKInstance:
		in := e.Instance
		dst = append(dst, in.ClassID)
		if in.Attrs.IsValid() {
			dst = append(dst, in.Attrs)
		}
		for _, v := range in.Slots {
			appendValue(v)
		}
	case HKModule:
		if e.Module.Attrs.IsValid() {
			dst = append(dst, e.Module.Attrs)
		}
	case HKPartial:
		appendValue(e.Partial.Callable)
		for _, v := range e.Partial.Args {
			appendValue(v)
		}
		if e.Partial.Kwargs.IsValid() {
			dst = append(dst, e.Partial.Kwargs)
		}
	case HKGenericAlias:
		appendValue(e.GenericAlias.Origin)
		for _, v := range e.GenericAlias.Args {
			appendValue(v)
		}
	case HKIter:
		if e.Iter.Source.IsValid() {
			dst = append(dst, e.Iter.Source)
		}
	case HKClosure:
		for _, v := range e.Closure.Captured {
			appendValue(v)
		}
		if e.Closure.Defaults.IsValid() {
			dst = append(dst, e.Closure.Defaults)
		}
	case HKBoundMethod:
		appendValue(e.BoundMethod.Self)
		appendValue(e.BoundMethod.Func)
	case HKStaticMethod:
		appendValue(e.StaticMethod)
	case HKClassMethod:
		appendValue(e.ClassMethod)
	default:
	}
	return dst
}

// dropChildren releases every HeapID e owns. Uses an explicit slice-based
// worklist rather than Go recursion, exactly like the teacher's
// checkLeaksOrPanic/dropValue split in drop.go, so a deeply nested
// container chain can't blow the Go call stack on free.
func (h *Heap) dropChildren(e *HeapEntry) {
	worklist := ownedHeapIDs(e, make([]HeapID, 0, 4))
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if !id.IsValid() {
			continue
		}
		entry, ok := h.GetIfLive(id)
		if !ok {
			continue
		}
		entry.RefCount--
		if entry.RefCount != 0 {
			continue
		}
		if entry.PotentiallyCyclic {
			h.cyclicLiveCount--
		}
		worklist = ownedHeapIDs(entry, worklist)
		idx := int(id.Slot)
		entry.Generation++
		gen := entry.Generation
		h.slots[idx] = HeapEntry{Freed: true, Generation: gen}
		h.freeList = append(h.freeList, uint32(idx))
	}
}

// collectCycles runs one pass of classic trial-deletion over the
// potentially-cyclic subset of the arena (spec §9). It is conservative: a
// slot survives a trial decrement if anything outside the candidate set
// still points to it, matching the textbook "color" algorithm in miniature
// without needing a full mark-sweep over the whole heap.
func (h *Heap) collectCycles() {
	candidates := make(map[uint32]int, h.cyclicLiveCount) // slot -> external refcount remaining
	for i := 1; i < len(h.slots); i++ {
		e := &h.slots[i]
		if e.Freed || !e.PotentiallyCyclic {
			continue
		}
		candidates[uint32(i)] = int(e.RefCount)
	}
	if len(candidates) == 0 {
		return
	}
	// Subtract one internal reference for every candidate-to-candidate edge:
	// if only candidates point at a slot, its "external" count drops to zero.
	// Such a slot is garbage only if no candidate that still has external
	// references can reach it; reachable ones are marked live again below.
	for slot := range candidates {
		e := &h.slots[slot]
		for _, child := range ownedHeapIDs(e, nil) {
			if n, ok := candidates[child.Slot]; ok {
				candidates[child.Slot] = n - 1
			}
		}
	}
	var live []uint32
	for slot, remaining := range candidates {
		if remaining > 0 {
			live = append(live, slot)
		}
	}
	for len(live) > 0 {
		slot := live[len(live)-1]
		live = live[:len(live)-1]
		for _, child := range ownedHeapIDs(&h.slots[slot], nil) {
			if n, ok := candidates[child.Slot]; ok && n <= 0 {
				candidates[child.Slot] = 1
				live = append(live, child.Slot)
			}
		}
	}
	garbage := make([]uint32, 0, len(candidates))
	for slot, remaining := range candidates {
		if remaining <= 0 {
			garbage = append(garbage, slot)
		}
	}
	sort.Slice(garbage, func(i, j int) bool { return garbage[i] < garbage[j] })
	for _, slot := range garbage {
		e := &h.slots[slot]
		if e.Freed || e.RefCount == 0 {
			continue
		}
		e.RefCount = 0
		h.free(HeapID{Slot: slot, Generation: e.Generation})
	}
}

// CheckLeaksOrPanic reports any still-live slot at end-of-session as a
// HeapPanic, grounded on the teacher's checkLeaksOrPanic in drop.go: a
// debug harness (tests, `ouros selftest`) calls this after dropping every
// known root to assert refcount conservation (spec §8).
func (h *Heap) CheckLeaksOrPanic() {
	leakCount := 0
	kindCounts := make(map[HeapKind]int, 8)
	const maxList = 8
	var list []string
	for slot := uint32(1); int(slot) < len(h.slots); slot++ {
		e := &h.slots[slot]
		if e.Freed || e.RefCount == 0 {
			continue
		}
		leakCount++
		kindCounts[e.Kind]++
		if len(list) < maxList {
			list = append(list, fmt.Sprintf("%s#%d(rc=%d)", e.Kind, slot, e.RefCount))
		}
	}
	if leakCount == 0 {
		return
	}
	msg := fmt.Sprintf("heap leak detected: %d objects still alive", leakCount)
	kindList := make([]string, 0, len(kindCounts))
	for k, n := range kindCounts {
		kindList = append(kindList, fmt.Sprintf("%s=%d", k, n))
	}
	sort.Strings(kindList)
	if len(kindList) > 0 {
		msg += " (" + strings.Join(kindList, ", ") + ")"
	}
	if len(list) > 0 {
		msg += ": " + strings.Join(list, ", ")
	}
	panicHeap(InvariantHeapLeak, "%s", msg)
}
