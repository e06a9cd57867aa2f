package core

import (
	"ouros/internal/intern"

	"github.com/vmihailenco/msgpack/v5"
)

// exceptionGetAttr implements py_getattr for exception objects (spec §4.F,
// ported from SimpleException::py_getattr): `.args` for every exception,
// `.value` for StopIteration's typed return value, `.exceptions`/`.message`
// for ExceptionGroup, `.pos`/`.lineno`/`.colno` for regex/JSON decode
// errors, `__cause__`/`__context__`/`__suppress_context__` for chaining, and
// any preserved custom attribute. Returns ok=false when no such attribute
// applies here, leaving the caller to raise AttributeError.
func exceptionGetAttr(raise *ExceptionRaise, name intern.StringID, heap *Heap, interns *intern.Interner) (AttrResult, bool, *RunError) {
	exc := &raise.Exc
	attrName := interns.MustGetStr(name)

	switch attrName {
	case "__cause__":
		return chainedExceptionAttr(exc.Cause, heap)
	case "__context__":
		return chainedExceptionAttr(exc.Context, heap)
	case "__suppress_context__":
		return AttrResult{Kind: AttrValue, Value: MakeBool(exc.SuppressContext)}, true, nil
	case "args":
		v, rerr := exceptionArgsTuple(exc, heap, interns)
		if rerr != nil {
			return AttrResult{}, false, rerr
		}
		return AttrResult{Kind: AttrValue, Value: v}, true, nil
	case "value":
		if exc.ExcTypeVal == ExcStopIteration {
			v, rerr := stopIterationValueForAttr(exc, heap)
			if rerr != nil {
				return AttrResult{}, false, rerr
			}
			return AttrResult{Kind: AttrValue, Value: v}, true, nil
		}
	case "exceptions":
		if exc.ExcTypeVal == ExcExceptionGroup {
			v, rerr := exceptionGroupExceptionsAttr(exc, heap)
			if rerr != nil {
				return AttrResult{}, false, rerr
			}
			return AttrResult{Kind: AttrValue, Value: v}, true, nil
		}
	case "message":
		if exc.ExcTypeVal == ExcExceptionGroup {
			msg := ""
			if exc.Arg != nil {
				msg = *exc.Arg
			}
			v, rerr := allocStrValue(msg, heap)
			if rerr != nil {
				return AttrResult{}, false, rerr
			}
			return AttrResult{Kind: AttrValue, Value: v}, true, nil
		}
	case "pos", "lineno", "colno":
		if pos, lineno, colno, ok := exc.RegexErrorMetadata(); ok {
			return AttrResult{Kind: AttrValue, Value: MakeInt(pickMeta(attrName, pos, lineno, colno))}, true, nil
		}
		if pos, lineno, colno, ok := exc.JSONDecodeErrorMetadata(); ok {
			return AttrResult{Kind: AttrValue, Value: MakeInt(pickMeta(attrName, pos, lineno, colno))}, true, nil
		}
	}

	for _, kv := range exc.CustomAttrs {
		if kv.Key == attrName {
			v, rerr := allocStrValue(kv.Val, heap)
			if rerr != nil {
				return AttrResult{}, false, rerr
			}
			return AttrResult{Kind: AttrValue, Value: v}, true, nil
		}
	}
	return AttrResult{}, false, nil
}

func pickMeta(attrName string, pos, lineno, colno int64) int64 {
	switch attrName {
	case "pos":
		return pos
	case "lineno":
		return lineno
	default:
		return colno
	}
}

func chainedExceptionAttr(chained *SimpleException, heap *Heap) (AttrResult, bool, *RunError) {
	if chained == nil {
		return AttrResult{Kind: AttrValue, Value: None}, true, nil
	}
	id, rerr := heap.AllocException(ExceptionRaise{Exc: *chained})
	if rerr != nil {
		return AttrResult{}, false, NewInternalError(rerr.Msg)
	}
	return AttrResult{Kind: AttrValue, Value: MakeRef(id)}, true, nil
}

// exceptionArgsTuple builds the `.args` tuple: StopIteration reports its
// typed value as a single element, everything else reports its
// msgpack-deserialized positional arguments when present, else falls back to
// a single-element tuple of the exception's plain message string.
func exceptionArgsTuple(exc *SimpleException, heap *Heap, interns *intern.Interner) (Value, *RunError) {
	var elements []Value
	if exc.ExcTypeVal == ExcStopIteration {
		if exc.Value != nil || exc.Arg != nil {
			v, rerr := stopIterationValueForAttr(exc, heap)
			if rerr != nil {
				return Value{}, rerr
			}
			elements = []Value{v}
		}
	} else if len(exc.ArgsSerialized) > 0 {
		if err := msgpack.Unmarshal(exc.ArgsSerialized, &elements); err != nil {
			elements = nil
		}
	} else if exc.Arg != nil {
		v, rerr := allocStrValue(*exc.Arg, heap)
		if rerr != nil {
			return Value{}, rerr
		}
		elements = []Value{v}
	}
	id, rerr := heap.AllocTuple(elements)
	if rerr != nil {
		return Value{}, NewInternalError(rerr.Msg)
	}
	return MakeRef(id), nil
}

// stopIterationValueForAttr resolves StopIteration's `.value`: the decoded
// typed payload if present, else the plain message string, else None
// (matching CPython when the generator returned no value).
func stopIterationValueForAttr(exc *SimpleException, heap *Heap) (Value, *RunError) {
	if exc.Value != nil {
		return decodeStopIterationValue(*exc.Value, heap)
	}
	if exc.Arg != nil {
		return allocStrValue(*exc.Arg, heap)
	}
	return None, nil
}

// exceptionGroupExceptionsAttr builds the `.exceptions` tuple of child
// exception objects (spec §8 scenario 3).
func exceptionGroupExceptionsAttr(exc *SimpleException, heap *Heap) (Value, *RunError) {
	children, _ := exc.Exceptions()
	elements := make([]Value, 0, len(children))
	for _, child := range children {
		id, rerr := heap.AllocException(ExceptionRaise{Exc: child})
		if rerr != nil {
			return Value{}, NewInternalError(rerr.Msg)
		}
		elements = append(elements, MakeRef(id))
	}
	id, rerr := heap.AllocTuple(elements)
	if rerr != nil {
		return Value{}, NewInternalError(rerr.Msg)
	}
	return MakeRef(id), nil
}
