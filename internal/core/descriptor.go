package core

import "ouros/internal/intern"

// AttrResultKind distinguishes the three shapes py_getattr can return (spec
// §4.G): a plain value, a descriptor that still needs its __get__ invoked,
// or a bound call the VM must perform (e.g. __getattr__ fallback).
type AttrResultKind uint8

const (
	AttrValue AttrResultKind = iota
	AttrDescriptorGet
	AttrCallFunction
)

// AttrResult is py_getattr's return value (spec §4.G "AttrCallResult").
type AttrResult struct {
	Kind AttrResultKind
	// Value holds the plain attribute value when Kind == AttrValue.
	Value Value
	// Descriptor and Owner hold the descriptor instance and the class it
	// was found on when Kind == AttrDescriptorGet; the VM invokes
	// Descriptor.__get__(instance, Owner).
	Descriptor Value
	Owner      HeapID
	// Callable and Args hold a deferred call (e.g. __getattr__(instance,
	// name)) when Kind == AttrCallFunction.
	Callable Value
	Args     []Value
}

var dunderGet = "__get__"
var dunderSet = "__set__"
var dunderGetattr = "__getattr__"

// classDictLookup walks id's MRO (MRO[0] is id itself) looking up name in
// each ancestor's Namespace dict, returning the first hit and the class it
// was found on.
func classDictLookup(id HeapID, name intern.StringID, heap *Heap, interns *intern.Interner) (Value, HeapID, bool) {
	cls, ok := heap.GetIfLive(id)
	if !ok || cls.Kind != HKClassObject {
		return Value{}, NoHeapID, false
	}
	for _, ancestorID := range cls.Class.MRO {
		ancestor, ok := heap.GetIfLive(ancestorID)
		if !ok || ancestor.Kind != HKClassObject {
			continue
		}
		ns, ok := heap.GetIfLive(ancestor.Class.Namespace)
		if !ok || ns.Kind != HKDict {
			continue
		}
		if v, found := DictGetByStr(ns.Dict, name, heap, interns); found {
			return v, ancestorID, true
		}
	}
	return Value{}, NoHeapID, false
}

// isDescriptor reports whether v's class defines __get__, and whether it
// also defines __set__ (a data descriptor, spec §4.E step 1).
func isDescriptor(v Value, heap *Heap, interns *intern.Interner) (hasGet, hasSet bool) {
	classID, ok := ClassOf(v, heap)
	if !ok {
		return false, false
	}
	getName := interns.InternIdentifier(dunderGet)
	setName := interns.InternIdentifier(dunderSet)
	_, _, hasGet = classDictLookup(classID, getName, heap, interns)
	_, _, hasSet = classDictLookup(classID, setName, heap, interns)
	return hasGet, hasSet
}

// GetAttr implements spec §4.E's attribute lookup protocol:
//  1. data descriptor on the class (or an MRO ancestor) wins outright
//  2. else the instance's own __dict__/slot
//  3. else a non-data descriptor on the class
//  4. else a plain class attribute
//  5. else __getattr__, if the class defines one
//  6. else AttributeError
//
// Builtin exception objects (HKException, not a user-defined class
// instance) take a separate path straight to exceptionGetAttr (spec §4.F)
// since they carry no class namespace to walk.
func GetAttr(instance Value, name intern.StringID, heap *Heap, interns *intern.Interner) (AttrResult, *RunError) {
	if instance.Kind == VKRef {
		if e, ok := heap.GetIfLive(instance.Ref); ok && e.Kind == HKException {
			if res, found, rerr := exceptionGetAttr(e.Exception, name, heap, interns); rerr != nil || found {
				return res, rerr
			}
			return AttrResult{}, NewAttributeErrorOnType(PyType(instance, heap).String(), interns.MustGetStr(name))
		}
	}
	classID, ok := ClassOf(instance, heap)
	if !ok {
		return AttrResult{}, NewAttributeErrorOnType(PyType(instance, heap).String(), interns.MustGetStr(name))
	}
	inst := heap.Get(instance.Ref).Instance

	if classAttr, owner, found := classDictLookup(classID, name, heap, interns); found {
		if hasGet, hasSet := isDescriptor(classAttr, heap, interns); hasGet && hasSet {
			return AttrResult{Kind: AttrDescriptorGet, Descriptor: classAttr, Owner: owner}, nil
		}
	}

	if inst.Attrs.IsValid() {
		if dict, ok := heap.GetIfLive(inst.Attrs); ok && dict.Kind == HKDict {
			if v, found := DictGetByStr(dict.Dict, name, heap, interns); found {
				return AttrResult{Kind: AttrValue, Value: v}, nil
			}
		}
	}
	if cls, ok := heap.GetIfLive(classID); ok && cls.Kind == HKClassObject {
		for i, slotName := range cls.Class.SlotLayout {
			if slotName == name && i < len(inst.Slots) {
				if inst.Slots[i].Kind == VKUndefined {
					break
				}
				return AttrResult{Kind: AttrValue, Value: inst.Slots[i]}, nil
			}
		}
	}

	if classAttr, owner, found := classDictLookup(classID, name, heap, interns); found {
		if hasGet, _ := isDescriptor(classAttr, heap, interns); hasGet {
			return AttrResult{Kind: AttrDescriptorGet, Descriptor: classAttr, Owner: owner}, nil
		}
		return AttrResult{Kind: AttrValue, Value: classAttr}, nil
	}

	getattrName := interns.InternIdentifier(dunderGetattr)
	if fn, _, found := classDictLookup(classID, getattrName, heap, interns); found {
		return AttrResult{Kind: AttrCallFunction, Callable: fn, Args: []Value{instance, MakeInternString(name)}}, nil
	}

	className := "object"
	if cls, ok := heap.GetIfLive(classID); ok {
		className, _ = interns.GetStr(cls.Class.QualName)
	}
	return AttrResult{}, NewAttributeErrorOnType(className, interns.MustGetStr(name))
}

// SetAttr mirrors GetAttr for assignment: a data descriptor's __set__ wins,
// else a declared slot is written directly, else the instance __dict__ is
// updated (spec §4.E "set_attr mirrors this with data descriptors, slots,
// __dict__, and __setattr__").
func SetAttr(instance Value, name intern.StringID, val Value, heap *Heap, interns *intern.Interner) (*AttrResult, *RunError) {
	classID, ok := ClassOf(instance, heap)
	if !ok {
		return nil, NewAttributeErrorOnType(PyType(instance, heap).String(), interns.MustGetStr(name))
	}
	if classAttr, owner, found := classDictLookup(classID, name, heap, interns); found {
		if hasGet, hasSet := isDescriptor(classAttr, heap, interns); hasGet && hasSet {
			return &AttrResult{Kind: AttrDescriptorGet, Descriptor: classAttr, Owner: owner}, nil
		}
	}

	inst := heap.Get(instance.Ref).Instance
	if cls, ok := heap.GetIfLive(classID); ok && cls.Kind == HKClassObject {
		for i, slotName := range cls.Class.SlotLayout {
			if slotName == name && i < len(inst.Slots) {
				inst.Slots[i] = val
				return nil, nil
			}
		}
	}
	if !inst.Attrs.IsValid() {
		return nil, NewAttributeErrorNoSetattr(PyType(instance, heap).String(), interns.MustGetStr(name))
	}
	dict := heap.Get(inst.Attrs)
	// name is always an interned string, so DictSet can never raise here.
	_, _, _ = DictSet(dict.Dict, MakeInternString(name), val, heap, interns)
	return nil, nil
}
