package core

import (
	"fmt"
	"strconv"
	"strings"

	"ouros/internal/bignum"
	"ouros/internal/intern"
)

// PyLen implements spec §4.D/§4.G's py_len, raising TypeError for kinds
// with no __len__.
func PyLen(v Value, heap *Heap, interns *intern.Interner) (int, *RunError) {
	if v.Kind != VKRef {
		return 0, NewTypeErrorNotIterable(PyType(v, heap).String())
	}
	e, ok := heap.GetIfLive(v.Ref)
	if !ok {
		return 0, NewTypeErrorNotIterable("object")
	}
	switch e.Kind {
	case HKDict:
		return e.Dict.Live, nil
	case HKList:
		return len(e.List), nil
	case HKSet, HKFrozenSet:
		return e.Set.Live, nil
	case HKTuple:
		return len(e.Tuple), nil
	case HKStr:
		return len([]rune(e.Str)), nil
	case HKBytes:
		return len(e.Bytes), nil
	case HKBytearray:
		return len(e.Bytearray), nil
	case HKNamedTuple:
		return len(e.NamedTuple.Fields), nil
	default:
		return 0, NewTypeErrorNotIterable(heapKindType(e.Kind).String())
	}
}

// PyBool implements spec §4.D/§4.G's py_bool truthiness rules, which match
// CPython: empty containers, zero numbers, and None are falsy.
func PyBool(v Value, heap *Heap, interns *intern.Interner) bool {
	switch v.Kind {
	case VKNone, VKUndefined:
		return false
	case VKNotImplemented:
		return true
	case VKBool:
		return v.Bool
	case VKInt:
		return v.Int64 != 0
	case VKFloat:
		return v.Float64 != 0
	case VKInternString:
		s, _ := interns.GetStr(v.Str)
		return s != ""
	case VKInternBytes:
		b, _ := interns.GetBytes(v.Bytes)
		return len(b) != 0
	case VKInternLongInt:
		lz, _ := interns.GetLongInt(v.LongInt)
		return lz != "0"
	case VKMarker, VKBuiltin, VKDefFunction, VKExtFunction, VKModuleFunction:
		return true
	case VKRef:
		e, ok := heap.GetIfLive(v.Ref)
		if !ok {
			return false
		}
		switch e.Kind {
		case HKDict:
			return e.Dict.Live != 0
		case HKList:
			return len(e.List) != 0
		case HKSet, HKFrozenSet:
			return e.Set.Live != 0
		case HKTuple:
			return len(e.Tuple) != 0
		case HKStr:
			return e.Str != ""
		case HKBytes:
			return len(e.Bytes) != 0
		case HKBytearray:
			return len(e.Bytearray) != 0
		case HKLongInt:
			return !e.LongInt.IsZero()
		default:
			return true
		}
	default:
		return false
	}
}

// PyRepr implements spec §4.D/§4.G's py_repr(value): the developer-facing
// representation used by repr() and by container elements nested inside
// another repr (CPython always reprs nested elements, even when the
// container itself is being str()'d).
func PyRepr(v Value, heap *Heap, interns *intern.Interner) string {
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
		return strconv.FormatInt(v.Int64, 10)
	case VKFloat:
		return formatPyFloat(v.Float64)
	case VKInternString:
		s, _ := interns.GetStr(v.Str)
		return pyStrRepr(s)
	case VKInternBytes:
		b, _ := interns.GetBytes(v.Bytes)
		return pyBytesRepr(b)
	case VKInternLongInt:
		s, _ := interns.GetLongInt(v.LongInt)
		return s
	case VKMarker:
		return fmt.Sprintf("<marker %d>", v.Marker)
	case VKBuiltin, VKDefFunction, VKExtFunction, VKModuleFunction:
		return "<built-in function>"
	case VKRef:
		return reprHeapEntry(v.Ref, heap, interns)
	default:
		return "<?>"
	}
}

// PyStr implements spec §4.D/§4.G's py_str(value): str()'s top-level
// rendering, which differs from repr only for bare strings (no quoting).
func PyStr(v Value, heap *Heap, interns *intern.Interner) string {
	if v.Kind == VKInternString {
		s, _ := interns.GetStr(v.Str)
		return s
	}
	if v.Kind == VKRef {
		if e, ok := heap.GetIfLive(v.Ref); ok && e.Kind == HKStr {
			return e.Str
		}
	}
	return PyRepr(v, heap, interns)
}

func reprHeapEntry(id HeapID, heap *Heap, interns *intern.Interner) string {
	e, ok := heap.GetIfLive(id)
	if !ok {
		return "<dead reference>"
	}
	switch e.Kind {
	case HKStr:
		return pyStrRepr(e.Str)
	case HKBytes:
		return pyBytesRepr(e.Bytes)
	case HKBytearray:
		return "bytearray(" + pyBytesRepr(e.Bytearray) + ")"
	case HKLongInt:
		return bignum.FormatInt(e.LongInt)
	case HKList:
		parts := make([]string, len(e.List))
		for i, el := range e.List {
			parts[i] = PyRepr(el, heap, interns)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case HKTuple:
		parts := make([]string, len(e.Tuple))
		for i, el := range e.Tuple {
			parts[i] = PyRepr(el, heap, interns)
		}
		if len(parts) == 1 {
			return "(" + parts[0] + ",)"
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case HKDict:
		parts := make([]string, 0, e.Dict.Live)
		for _, ent := range e.Dict.Entries {
			if ent.Deleted {
				continue
			}
			parts = append(parts, PyRepr(ent.Key, heap, interns)+": "+PyRepr(ent.Val, heap, interns))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case HKSet:
		if e.Set.Live == 0 {
			return "set()"
		}
		parts := make([]string, 0, e.Set.Live)
		for _, ent := range e.Set.Entries {
			if !ent.Deleted {
				parts = append(parts, PyRepr(ent.Key, heap, interns))
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case HKFrozenSet:
		parts := make([]string, 0, e.Set.Live)
		for _, ent := range e.Set.Entries {
			if !ent.Deleted {
				parts = append(parts, PyRepr(ent.Key, heap, interns))
			}
		}
		return "frozenset({" + strings.Join(parts, ", ") + "})"
	case HKSlice:
		return "slice(" + sliceComponentRepr(e.Slice.Start, heap, interns) + ", " +
			sliceComponentRepr(e.Slice.Stop, heap, interns) + ", " +
			sliceComponentRepr(e.Slice.Step, heap, interns) + ")"
	case HKNamedTuple:
		typeName, _ := interns.GetStr(e.NamedTuple.TypeName)
		parts := make([]string, len(e.NamedTuple.Fields))
		for i, f := range e.NamedTuple.Fields {
			fname, _ := interns.GetStr(e.NamedTuple.FieldNames[i])
			parts[i] = fname + "=" + PyRepr(f, heap, interns)
		}
		return typeName + "(" + strings.Join(parts, ", ") + ")"
	case HKClassObject:
		name, _ := interns.GetStr(e.Class.QualName)
		return "<class '" + name + "'>"
	case HKInstance:
		className := "object"
		if cls, ok := heap.GetIfLive(e.Instance.ClassID); ok && cls.Kind == HKClassObject {
			className, _ = interns.GetStr(cls.Class.QualName)
		}
		return fmt.Sprintf("<%s object>", className)
	case HKModule:
		name, _ := interns.GetStr(e.Module.Name)
		return "<module '" + name + "'>"
	case HKException:
		return e.Exception.Exc.ClassName() + "(" + e.Exception.Exc.PyRepr() + ")"
	case HKGenericAlias:
		parts := make([]string, len(e.GenericAlias.Args))
		for i, a := range e.GenericAlias.Args {
			parts[i] = PyRepr(a, heap, interns)
		}
		return PyRepr(e.GenericAlias.Origin, heap, interns) + "[" + strings.Join(parts, ", ") + "]"
	case HKPartial:
		return "functools.partial(" + PyRepr(e.Partial.Callable, heap, interns) + ")"
	case HKIter:
		return "<iterator>"
	case HKClosure, HKBoundMethod, HKStaticMethod, HKClassMethod:
		return "<function>"
	default:
		return "<object>"
	}
}

func sliceComponentRepr(v Value, heap *Heap, interns *intern.Interner) string {
	if v.Kind == VKNone || v.Kind == VKUndefined {
		return "None"
	}
	return PyRepr(v, heap, interns)
}

func pyStrRepr(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch r {
		case rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

func pyBytesRepr(b []byte) string {
	var out strings.Builder
	out.WriteByte('b')
	out.WriteByte('\'')
	for _, c := range b {
		switch {
		case c == '\\' || c == '\'':
			out.WriteByte('\\')
			out.WriteByte(c)
		case c == '\n':
			out.WriteString(`\n`)
		case c == '\t':
			out.WriteString(`\t`)
		case c == '\r':
			out.WriteString(`\r`)
		case c >= 0x20 && c < 0x7f:
			out.WriteByte(c)
		default:
			out.WriteString(fmt.Sprintf(`\x%02x`, c))
		}
	}
	out.WriteByte('\'')
	return out.String()
}

func formatPyFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "inf") && !strings.Contains(s, "nan") {
		s += ".0"
	}
	return s
}

// EstimateSize returns the resource tracker's byte estimate for v, used by
// containers that must charge their element sizes on insertion (spec §4.I).
func EstimateSize(v Value, heap *Heap) uint32 {
	if v.Kind != VKRef {
		return 16
	}
	e, ok := heap.GetIfLive(v.Ref)
	if !ok {
		return 0
	}
	return e.EstimatedSize
}
