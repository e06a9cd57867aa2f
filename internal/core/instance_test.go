package core

import (
	"testing"

	"ouros/internal/intern"
	"ouros/internal/resource"
)

func newTestClass(t *testing.T, heap *Heap, interns *intern.Interner, name string, bases []HeapID, hasDict bool, slots []string) HeapID {
	t.Helper()
	nsID, rerr := heap.AllocDict()
	if rerr != nil {
		t.Fatalf("AllocDict: %v", rerr)
	}
	slotIDs := make([]intern.StringID, len(slots))
	for i, s := range slots {
		slotIDs[i] = interns.Intern(s)
	}
	classID, rerr := heap.AllocClass(ClassData{
		QualName:        interns.Intern(name),
		Namespace:       nsID,
		Bases:           bases,
		SlotLayout:      slotIDs,
		InstanceHasDict: hasDict,
	})
	if rerr != nil {
		t.Fatalf("AllocClass: %v", rerr)
	}
	heap.Get(classID).Class.MRO = append([]HeapID{classID}, bases...)
	return classID
}

func TestAllocInstanceHasUndefinedSlots(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	classID := newTestClass(t, heap, interns, "Point", nil, false, []string{"x", "y"})

	instVal, rerr := AllocInstance(classID, heap)
	if rerr != nil {
		t.Fatalf("AllocInstance: %v", rerr)
	}
	inst := heap.Get(instVal.Ref).Instance
	if len(inst.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(inst.Slots))
	}
	for i, s := range inst.Slots {
		if s.Kind != VKUndefined {
			t.Fatalf("slot %d should start Undefined, got %v", i, s.Kind)
		}
	}
	if inst.Attrs.IsValid() {
		t.Fatalf("a slots-only class should not allocate an instance dict")
	}
}

func TestAllocInstanceWithDict(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	classID := newTestClass(t, heap, interns, "Bag", nil, true, nil)

	instVal, rerr := AllocInstance(classID, heap)
	if rerr != nil {
		t.Fatalf("AllocInstance: %v", rerr)
	}
	inst := heap.Get(instVal.Ref).Instance
	if !inst.Attrs.IsValid() {
		t.Fatalf("InstanceHasDict class should allocate an instance dict")
	}
}

func TestBeginConstructFindsInit(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	classID := newTestClass(t, heap, interns, "Greeter", nil, true, nil)

	initName := interns.Intern("__init__")
	fn := MakeBuiltin(7)
	ns := heap.Get(classID).Class.Namespace
	DictSet(heap.Get(ns).Dict, MakeInternString(initName), fn, heap, interns)

	result, rerr := BeginConstruct(classID, heap, interns)
	if rerr != nil {
		t.Fatalf("BeginConstruct: %v", rerr)
	}
	if !result.HasInit {
		t.Fatalf("expected __init__ to be found")
	}
	if result.Init.Kind != VKBuiltin {
		t.Fatalf("expected the bound __init__ callable to round-trip")
	}
}

func TestBeginConstructNoInit(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	classID := newTestClass(t, heap, interns, "Empty", nil, true, nil)

	result, rerr := BeginConstruct(classID, heap, interns)
	if rerr != nil {
		t.Fatalf("BeginConstruct: %v", rerr)
	}
	if result.HasInit {
		t.Fatalf("a class with no __init__ in its MRO should report HasInit=false")
	}
}
