package core

import (
	"fmt"

	"ouros/internal/intern"
)

// ValueKind tags the variant carried by a Value.
type ValueKind uint8

const (
	VKInvalid ValueKind = iota
	// VKNone is Python's None.
	VKNone
	// VKUndefined marks an uninitialized instance slot. Never user-visible;
	// reading one is an interpreter bug, not a Python-level error.
	VKUndefined
	// VKNotImplemented is the NotImplemented singleton returned by
	// unimplemented binary-operator dunders.
	VKNotImplemented
	VKBool
	VKInt
	VKFloat
	// VKInternString references (A)'s string table.
	VKInternString
	// VKInternBytes references (A)'s bytes table.
	VKInternBytes
	// VKInternLongInt references (A)'s long-int table.
	VKInternLongInt
	// VKMarker names a compile-time singleton (e.g. typing markers) by
	// static string id.
	VKMarker
	// VKBuiltin names a builtin type or function by a small variant index.
	VKBuiltin
	// VKDefFunction indexes into (A)'s function-definition table.
	VKDefFunction
	// VKExtFunction indexes into (A)'s external-call-name table.
	VKExtFunction
	// VKModuleFunction names a module-provided callable by variant index;
	// module dispatch is handled entirely by the external module registry.
	VKModuleFunction
	// VKRef owns a handle into the Heap.
	VKRef
)

func (k ValueKind) String() string {
	switch k {
	case VKInvalid:
		return "invalid"
	case VKNone:
		return "None"
	case VKUndefined:
		return "<undefined>"
	case VKNotImplemented:
		return "NotImplemented"
	case VKBool:
		return "bool"
	case VKInt:
		return "int"
	case VKFloat:
		return "float"
	case VKInternString:
		return "str"
	case VKInternBytes:
		return "bytes"
	case VKInternLongInt:
		return "int"
	case VKMarker:
		return "marker"
	case VKBuiltin:
		return "builtin"
	case VKDefFunction:
		return "function"
	case VKExtFunction:
		return "builtin_function_or_method"
	case VKModuleFunction:
		return "builtin_function_or_method"
	case VKRef:
		return "ref"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// BuiltinTag names one of the small closed set of builtin types/functions
// that don't need heap allocation (e.g. `int`, `len`, `isinstance`).
type BuiltinTag uint16

// ModuleFunctionTag names a module-provided callable; the VM's external
// module registry owns the mapping from tag to handler.
type ModuleFunctionTag uint16

// Value is Ouros's unboxed tagged union. It is cheap to copy as bits, but a
// Value holding VKRef is not "free" to duplicate: every live copy of a
// VKRef must be matched by exactly one Heap.Retain, and every Value that
// goes out of scope holding a VKRef must be routed through Heap.Release
// (see drop.go). Constructing or copying a Value never touches the heap;
// only explicit Retain/Release calls do.
type Value struct {
	Kind ValueKind

	Int64   int64
	Float64 float64
	Bool    bool

	Str     intern.StringID
	Bytes   intern.BytesID
	LongInt intern.LongIntID

	Marker     intern.StaticString
	Builtin    BuiltinTag
	DefFunc    intern.FunctionID
	ExtFunc    intern.ExtFunctionID
	ModuleFunc ModuleFunctionTag

	Ref HeapID
}

// None is the None singleton value.
var None = Value{Kind: VKNone}

// Undefined is the uninitialized-slot sentinel.
var Undefined = Value{Kind: VKUndefined}

// NotImplemented is the NotImplemented singleton value.
var NotImplemented = Value{Kind: VKNotImplemented}

func MakeBool(b bool) Value     { return Value{Kind: VKBool, Bool: b} }
func MakeInt(n int64) Value     { return Value{Kind: VKInt, Int64: n} }
func MakeFloat(f float64) Value { return Value{Kind: VKFloat, Float64: f} }

func MakeInternString(id intern.StringID) Value   { return Value{Kind: VKInternString, Str: id} }
func MakeInternBytes(id intern.BytesID) Value     { return Value{Kind: VKInternBytes, Bytes: id} }
func MakeInternLongInt(id intern.LongIntID) Value { return Value{Kind: VKInternLongInt, LongInt: id} }
func MakeMarker(s intern.StaticString) Value      { return Value{Kind: VKMarker, Marker: s} }
func MakeBuiltin(t BuiltinTag) Value              { return Value{Kind: VKBuiltin, Builtin: t} }
func MakeDefFunction(id intern.FunctionID) Value  { return Value{Kind: VKDefFunction, DefFunc: id} }
func MakeExtFunction(id intern.ExtFunctionID) Value {
	return Value{Kind: VKExtFunction, ExtFunc: id}
}
func MakeModuleFunction(t ModuleFunctionTag) Value {
	return Value{Kind: VKModuleFunction, ModuleFunc: t}
}

// MakeRef wraps an already-retained heap handle. The caller is responsible
// for the +1 refcount this Value now owns (typically because the handle was
// just returned by one of the Heap.Alloc* helpers, which start every object
// at refcount 1).
func MakeRef(id HeapID) Value { return Value{Kind: VKRef, Ref: id} }

// IsZero reports whether v is the zero Value (VKInvalid), which never
// appears in well-formed interpreter state.
func (v Value) IsZero() bool { return v.Kind == VKInvalid }

// IsHeap reports whether v owns a heap reference that must be retained or
// released through the heap.
func (v Value) IsHeap() bool { return v.Kind == VKRef }

func (v Value) String() string {
	switch v.Kind {
	case VKNone:
		return "None"
	case VKUndefined:
		return "<undefined>"
	case VKNotImplemented:
		return "NotImplemented"
	case VKBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case VKInt:
		return fmt.Sprintf("%d", v.Int64)
	case VKFloat:
		return fmt.Sprintf("%g", v.Float64)
	case VKRef:
		return fmt.Sprintf("Ref(%s)", v.Ref)
	default:
		return fmt.Sprintf("%s(...)", v.Kind)
	}
}
