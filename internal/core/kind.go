package core

import "fmt"

// HeapKind tags the payload stored in a HeapEntry. One variant per §4.D
// object-model kind plus the runtime-helper kinds named in spec §3.3.
type HeapKind uint8

const (
	HKInvalid HeapKind = iota
	HKDict
	HKList
	HKSet
	HKFrozenSet
	HKTuple
	HKStr
	HKBytes
	HKBytearray
	HKLongInt
	HKSlice
	HKNamedTuple
	HKClassObject
	HKInstance
	HKModule
	HKPartial
	HKGenericAlias
	HKIter
	HKException
	HKClosure
	HKFunctionDefaults
	HKBoundMethod
	HKStaticMethod
	HKClassMethod
)

func (k HeapKind) String() string {
	switch k {
	case HKInvalid:
		return "invalid"
	case HKDict:
		return "dict"
	case HKList:
		return "list"
	case HKSet:
		return "set"
	case HKFrozenSet:
		return "frozenset"
	case HKTuple:
		return "tuple"
	case HKStr:
		return "str"
	case HKBytes:
		return "bytes"
	case HKBytearray:
		return "bytearray"
	case HKLongInt:
		return "int"
	case HKSlice:
		return "slice"
	case HKNamedTuple:
		return "namedtuple"
	case HKClassObject:
		return "type"
	case HKInstance:
		return "instance"
	case HKModule:
		return "module"
	case HKPartial:
		return "partial"
	case HKGenericAlias:
		return "generic_alias"
	case HKIter:
		return "iterator"
	case HKException:
		return "exception"
	case HKClosure:
		return "closure"
	case HKFunctionDefaults:
		return "function_defaults"
	case HKBoundMethod:
		return "bound_method"
	case HKStaticMethod:
		return "staticmethod"
	case HKClassMethod:
		return "classmethod"
	default:
		return fmt.Sprintf("HeapKind(%d)", k)
	}
}
