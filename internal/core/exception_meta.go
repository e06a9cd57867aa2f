package core

import (
	"encoding/json"
	"strconv"

	"ouros/internal/intern"
)

// Exception metadata payloads (spec §4.F "Metadata payloads"), ported from
// the reference SimpleException::with_value/with_exceptions/py_getattr. The
// Value field holds exception-kind-specific tagged data that must survive a
// snapshot round-trip as a plain string rather than a generic Value, which
// would force the exception to carry a live heap reference across
// serialization boundaries.

const (
	reErrorMetaPrefix       = "re_error_meta:"
	jsonDecodeErrorMetaPrefix = "json_decode_error_meta:"
)

// EncodeStopIterationValue renders v as the tagged string StopIteration
// stores for its typed `.value`/`.args[0]` round-trip: `n` for None, `b:` for
// bool, `i:` for int, `f:` for float, `s:` for strings and anything else
// stringified via PyStr.
func EncodeStopIterationValue(v Value, heap *Heap, interns *intern.Interner) string {
	switch v.Kind {
	case VKNone:
		return "n"
	case VKBool:
		if v.Bool {
			return "b:true"
		}
		return "b:false"
	case VKInt:
		return "i:" + strconv.FormatInt(v.Int64, 10)
	case VKFloat:
		return "f:" + strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case VKInternString:
		s, _ := interns.GetStr(v.Str)
		return "s:" + s
	default:
		return "s:" + PyStr(v, heap, interns)
	}
}

// decodeStopIterationValue parses the tagged payload back into a typed
// Value, allocating a string on the heap for the `s:`/legacy-string case.
// Ported from SimpleException::decode_stop_iteration_value, including its
// legacy untagged-payload fallback for older snapshots.
func decodeStopIterationValue(encoded string, heap *Heap) (Value, *RunError) {
	switch encoded {
	case "n", "None":
		return None, nil
	case "True":
		return MakeBool(true), nil
	case "False":
		return MakeBool(false), nil
	}
	if rest, ok := stripPrefix(encoded, "b:"); ok {
		switch rest {
		case "true":
			return MakeBool(true), nil
		case "false":
			return MakeBool(false), nil
		default:
			return allocStrValue(rest, heap)
		}
	}
	if rest, ok := stripPrefix(encoded, "i:"); ok {
		if n, err := strconv.ParseInt(rest, 10, 64); err == nil {
			return MakeInt(n), nil
		}
	}
	if rest, ok := stripPrefix(encoded, "f:"); ok {
		if f, err := strconv.ParseFloat(rest, 64); err == nil {
			return MakeFloat(f), nil
		}
	}
	if rest, ok := stripPrefix(encoded, "s:"); ok {
		return allocStrValue(rest, heap)
	}
	// Legacy untagged payloads from older snapshots.
	if n, err := strconv.ParseInt(encoded, 10, 64); err == nil {
		return MakeInt(n), nil
	}
	if f, err := strconv.ParseFloat(encoded, 64); err == nil {
		return MakeFloat(f), nil
	}
	return allocStrValue(encoded, heap)
}

func stripPrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return "", false
	}
	return s[len(prefix):], true
}

func allocStrValue(s string, heap *Heap) (Value, *RunError) {
	id, rerr := heap.AllocStr(s)
	if rerr != nil {
		return Value{}, NewInternalError(rerr.Msg)
	}
	return MakeRef(id), nil
}

// NewStopIterationWithValue builds a StopIteration carrying a typed return
// value for `.value` (spec §8 scenario 4: `.value` yields the int 42, not a
// string).
func NewStopIterationWithValue(value Value, heap *Heap, interns *intern.Interner) *RunError {
	encoded := EncodeStopIterationValue(value, heap, interns)
	exc := NewSimpleExceptionNoArg(ExcStopIteration)
	exc.Value = &encoded
	return NewExc(exc)
}

// encodeExceptionGroupChildren JSON-encodes child exceptions, the same
// representation exception_private.rs's with_exceptions builds via
// serde_json so the encoded payload is a JSON list of plain SimpleException
// records.
func encodeExceptionGroupChildren(children []SimpleException) string {
	data, err := json.Marshal(children)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeExceptionGroupChildren(encoded string) []SimpleException {
	var children []SimpleException
	if err := json.Unmarshal([]byte(encoded), &children); err != nil {
		return nil
	}
	return children
}

// NewExceptionGroup builds `ExceptionGroup(message, exceptions)` (spec §8
// scenario 3), storing the children as a JSON-encoded list so `.exceptions`
// and `.message` can be recovered by py_getattr.
func NewExceptionGroup(message string, children []SimpleException) *SimpleException {
	encoded := encodeExceptionGroupChildren(children)
	return &SimpleException{ExcTypeVal: ExcExceptionGroup, Arg: &message, Value: &encoded}
}

// Exceptions returns an ExceptionGroup's grouped children, or (nil, false)
// for any other exception type.
func (e *SimpleException) Exceptions() ([]SimpleException, bool) {
	if e.ExcTypeVal != ExcExceptionGroup || e.Value == nil {
		return nil, false
	}
	return decodeExceptionGroupChildren(*e.Value), true
}

// NewRegexError builds a regex compilation/runtime exception carrying
// `.pos`/`.lineno`/`.colno` positional metadata.
func NewRegexError(msg string, pos, lineno, colno int64) *RunError {
	encoded := reErrorMetaPrefix + strconv.FormatInt(pos, 10) + ":" + strconv.FormatInt(lineno, 10) + ":" + strconv.FormatInt(colno, 10)
	exc := NewSimpleException(ExcException, msg)
	exc.Value = &encoded
	return NewExc(exc)
}

// NewJSONDecodeError builds a json.JSONDecodeError carrying
// `.pos`/`.lineno`/`.colno` positional metadata.
func NewJSONDecodeError(msg string, pos, lineno, colno int64) *RunError {
	encoded := jsonDecodeErrorMetaPrefix + strconv.FormatInt(pos, 10) + ":" + strconv.FormatInt(lineno, 10) + ":" + strconv.FormatInt(colno, 10)
	exc := NewSimpleException(ExcJSONDecodeError, msg)
	exc.Value = &encoded
	return NewExc(exc)
}

// positionalMetadata parses a "<prefix><pos>:<lineno>:<colno>" payload.
func positionalMetadata(value *string, prefix string) (pos, lineno, colno int64, ok bool) {
	if value == nil {
		return 0, 0, 0, false
	}
	rest, matched := stripPrefix(*value, prefix)
	if !matched {
		return 0, 0, 0, false
	}
	parts := splitThree(rest)
	if parts == nil {
		return 0, 0, 0, false
	}
	p, err1 := strconv.ParseInt(parts[0], 10, 64)
	l, err2 := strconv.ParseInt(parts[1], 10, 64)
	c, err3 := strconv.ParseInt(parts[2], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return p, l, c, true
}

func splitThree(s string) []string {
	first := -1
	second := -1
	for i, r := range s {
		if r == ':' {
			if first == -1 {
				first = i
			} else {
				second = i
				break
			}
		}
	}
	if first == -1 || second == -1 {
		return nil
	}
	return []string{s[:first], s[first+1 : second], s[second+1:]}
}

// RegexErrorMetadata returns (pos, lineno, colno) for a regex error exception.
func (e *SimpleException) RegexErrorMetadata() (pos, lineno, colno int64, ok bool) {
	return positionalMetadata(e.Value, reErrorMetaPrefix)
}

// JSONDecodeErrorMetadata returns (pos, lineno, colno) for a JSON decode error exception.
func (e *SimpleException) JSONDecodeErrorMetadata() (pos, lineno, colno int64, ok bool) {
	return positionalMetadata(e.Value, jsonDecodeErrorMetaPrefix)
}
