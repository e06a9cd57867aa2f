package core

import "ouros/internal/intern"

// NewInstanceResult is the outcome of beginning type.__call__(cls, ...): the
// freshly allocated, zeroed instance plus whatever __init__ method the VM
// must now invoke with it, if any (spec §4.E "__new__ then conditionally
// __init__"). __new__ itself is a plain Python-level method dispatched by
// the VM like any other call; this only performs the mechanical slot/dict
// layout materialization __new__'s default implementation does.
type NewInstanceResult struct {
	Instance Value
	Init     Value // the class's __init__ method, or the zero Value if none
	HasInit  bool
}

// AllocInstance materializes a bare instance of classID: Slots sized to
// SlotLayout with every entry Undefined, and an owned Dict iff the class
// permits __dict__ (spec §4.D "Instance ... Slots is always
// len(class.SlotLayout), with Undefined marking not yet set").
func AllocInstance(classID HeapID, heap *Heap) (Value, *RunError) {
	cls, ok := heap.GetIfLive(classID)
	if !ok || cls.Kind != HKClassObject {
		return Value{}, NewInternalError("AllocInstance: classID does not name a live ClassObject")
	}

	attrs := NoHeapID
	if cls.Class.InstanceHasDict {
		dictID, rerr := heap.AllocDict()
		if rerr != nil {
			return Value{}, AsRunError(rerr)
		}
		attrs = dictID
	}

	id, rerr := heap.AllocInstance(classID, attrs, len(cls.Class.SlotLayout))
	if rerr != nil {
		if attrs.IsValid() {
			heap.Release(attrs)
		}
		return Value{}, AsRunError(rerr)
	}
	heap.Retain(classID)
	return MakeRef(id), nil
}

// BeginConstruct performs type.__call__'s instance-creation half: allocate
// the instance, then look up __init__ on the MRO so the VM can invoke it
// with the original call arguments (spec §4.E). If the class defines no
// __init__, the bare instance is returned as-is, matching
// object.__init__'s no-op default.
func BeginConstruct(classID HeapID, heap *Heap, interns *intern.Interner) (NewInstanceResult, *RunError) {
	inst, rerr := AllocInstance(classID, heap)
	if rerr != nil {
		return NewInstanceResult{}, rerr
	}
	initName := interns.InternIdentifier("__init__")
	if fn, _, found := classDictLookup(classID, initName, heap, interns); found {
		return NewInstanceResult{Instance: inst, Init: fn, HasInit: true}, nil
	}
	return NewInstanceResult{Instance: inst}, nil
}
