package core

import "fmt"

// Type is the canonical type tag for a value (spec §4.B's py_type
// contract). For VKRef values whose HeapKind is Instance or ClassObject,
// the *dynamic* Python type is a class object (for an Instance, the one
// named by InstanceData.ClassID) rather than one of these fixed tags — PyType returns
// TInstance/TClassObject as the structural tag and callers needing the
// actual class object use ClassOf.
type Type uint8

const (
	TInvalid Type = iota
	TNoneType
	TBool
	TInt
	TFloat
	TStr
	TBytes
	TBytearray
	TList
	TTuple
	TDict
	TSet
	TFrozenSet
	TSlice
	TNamedTuple
	TClassObject // "type"
	TInstance
	TModule
	TFunction
	TBuiltinFunctionOrMethod
	TPartial
	TGenericAlias
	TIterator
	TException
	TNotImplementedType
)

func (t Type) String() string {
	switch t {
	case TNoneType:
		return "NoneType"
	case TBool:
		return "bool"
	case TInt:
		return "int"
	case TFloat:
		return "float"
	case TStr:
		return "str"
	case TBytes:
		return "bytes"
	case TBytearray:
		return "bytearray"
	case TList:
		return "list"
	case TTuple:
		return "tuple"
	case TDict:
		return "dict"
	case TSet:
		return "set"
	case TFrozenSet:
		return "frozenset"
	case TSlice:
		return "slice"
	case TNamedTuple:
		return "namedtuple"
	case TClassObject:
		return "type"
	case TInstance:
		return "instance"
	case TModule:
		return "module"
	case TFunction:
		return "function"
	case TBuiltinFunctionOrMethod:
		return "builtin_function_or_method"
	case TPartial:
		return "partial"
	case TGenericAlias:
		return "generic_alias"
	case TIterator:
		return "iterator"
	case TException:
		return "exception"
	case TNotImplementedType:
		return "NotImplementedType"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}

// heapKindType maps a HeapKind to its fixed structural Type tag.
func heapKindType(k HeapKind) Type {
	switch k {
	case HKDict:
		return TDict
	case HKList:
		return TList
	case HKSet:
		return TSet
	case HKFrozenSet:
		return TFrozenSet
	case HKTuple:
		return TTuple
	case HKStr:
		return TStr
	case HKBytes:
		return TBytes
	case HKBytearray:
		return TBytearray
	case HKLongInt:
		return TInt
	case HKSlice:
		return TSlice
	case HKNamedTuple:
		return TNamedTuple
	case HKClassObject:
		return TClassObject
	case HKInstance:
		return TInstance
	case HKModule:
		return TModule
	case HKPartial:
		return TPartial
	case HKGenericAlias:
		return TGenericAlias
	case HKIter:
		return TIterator
	case HKException:
		return TException
	case HKClosure:
		return TFunction
	case HKBoundMethod, HKStaticMethod, HKClassMethod:
		return TBuiltinFunctionOrMethod
	default:
		return TInvalid
	}
}

// PyType is the total py_type(value) contract of spec §4.B.
func PyType(v Value, heap *Heap) Type {
	switch v.Kind {
	case VKNone:
		return TNoneType
	case VKUndefined:
		return TInvalid
	case VKNotImplemented:
		return TNotImplementedType
	case VKBool:
		return TBool
	case VKInt:
		return TInt
	case VKFloat:
		return TFloat
	case VKInternString:
		return TStr
	case VKInternBytes:
		return TBytes
	case VKInternLongInt:
		return TInt
	case VKDefFunction, VKExtFunction, VKModuleFunction:
		return TFunction
	case VKBuiltin:
		return TBuiltinFunctionOrMethod
	case VKRef:
		e, ok := heap.GetIfLive(v.Ref)
		if !ok {
			return TInvalid
		}
		return heapKindType(e.Kind)
	default:
		return TInvalid
	}
}

// ClassOf returns the dynamic class HeapID of an Instance value, or
// NoHeapID for anything else (builtin scalars have no runtime class
// object; they're classified structurally via PyType instead).
func ClassOf(v Value, heap *Heap) (HeapID, bool) {
	if v.Kind != VKRef {
		return NoHeapID, false
	}
	e, ok := heap.GetIfLive(v.Ref)
	if !ok || e.Kind != HKInstance {
		return NoHeapID, false
	}
	return e.Instance.ClassID, true
}
