package core

import (
	"testing"

	"ouros/internal/intern"
	"ouros/internal/resource"
)

func TestHeapRefcountConservation(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	id, rerr := heap.AllocTuple(nil)
	if rerr != nil {
		t.Fatalf("AllocTuple: %v", rerr)
	}
	before := heap.LiveCount()
	heap.Retain(id)
	heap.Retain(id)
	heap.Release(id)
	heap.Release(id)
	heap.Release(id)
	if got := heap.LiveCount(); got != before-1 {
		t.Fatalf("expected live count %d, got %d", before-1, got)
	}
}

func TestHeapFreeBumpsGeneration(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	id, rerr := heap.AllocStr("x")
	if rerr != nil {
		t.Fatalf("AllocStr: %v", rerr)
	}
	heap.Release(id)
	if _, ok := heap.GetIfLive(id); ok {
		t.Fatalf("freed id should not be live")
	}
	reused, rerr := heap.AllocStr("y")
	if rerr != nil {
		t.Fatalf("AllocStr: %v", rerr)
	}
	if reused.Slot != id.Slot || reused.Generation == id.Generation {
		t.Fatalf("expected slot %d to be reused with a bumped generation, got %s (was %s)", id.Slot, reused, id)
	}
}

func TestHeapUseAfterFreePanics(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	id, rerr := heap.AllocStr("x")
	if rerr != nil {
		t.Fatalf("AllocStr: %v", rerr)
	}
	heap.Release(id)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on use-after-free")
		}
	}()
	heap.Get(id)
}

func TestNestedContainerReleaseReleasesChildren(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	innerID, rerr := heap.AllocList(nil)
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	outerID, rerr := heap.AllocList([]Value{MakeRef(innerID)})
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	heap.Release(outerID)
	if _, ok := heap.GetIfLive(innerID); ok {
		t.Fatalf("releasing the outer list should have released its child")
	}
}

func TestDictInsertionOrderPreserved(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	dictID, rerr := heap.AllocDict()
	if rerr != nil {
		t.Fatalf("AllocDict: %v", rerr)
	}
	d := heap.Get(dictID).Dict
	for _, k := range []string{"z", "a", "m", "a"} {
		DictSet(d, MakeInternString(interns.Intern(k)), MakeInt(1), heap, interns)
	}
	order := DictKeysInOrder(d)
	want := []string{"z", "a", "m"}
	if len(order) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(order))
	}
	for i, k := range want {
		got, _ := interns.GetStr(order[i].Str)
		if got != k {
			t.Fatalf("position %d: want %q, got %q", i, k, got)
		}
	}
}

func TestSetAddDeduplicates(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	setID, rerr := heap.AllocSet()
	if rerr != nil {
		t.Fatalf("AllocSet: %v", rerr)
	}
	s := heap.Get(setID).Set
	added, rerr := SetAdd(s, MakeInt(1), heap, interns)
	if rerr != nil {
		t.Fatalf("SetAdd: %v", rerr)
	}
	if !added {
		t.Fatalf("first add should report newly added")
	}
	added, rerr = SetAdd(s, MakeInt(1), heap, interns)
	if rerr != nil {
		t.Fatalf("SetAdd: %v", rerr)
	}
	if added {
		t.Fatalf("second add of the same value should not report newly added")
	}
	if s.Live != 1 {
		t.Fatalf("expected 1 live element, got %d", s.Live)
	}
}
