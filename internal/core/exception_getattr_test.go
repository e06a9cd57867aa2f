package core

import (
	"testing"

	"ouros/internal/intern"
	"ouros/internal/resource"
)

func tupleElements(t *testing.T, v Value, heap *Heap) []Value {
	t.Helper()
	if v.Kind != VKRef {
		t.Fatalf("expected a tuple ref, got %+v", v)
	}
	e, ok := heap.GetIfLive(v.Ref)
	if !ok || e.Kind != HKTuple {
		t.Fatalf("expected a live tuple, got kind %v", e.Kind)
	}
	return e.Tuple
}

// TestExceptionGroupExposesMessageAndExceptions covers spec §8 mandatory
// scenario 3: ExceptionGroup('oops', [ValueError('x'), TypeError('y')])
// exposes .message == 'oops' and .exceptions as a 2-tuple of the children.
func TestExceptionGroupExposesMessageAndExceptions(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	children := []SimpleException{
		*NewSimpleException(ExcValueError, "x"),
		*NewSimpleException(ExcTypeError, "y"),
	}
	group := NewExceptionGroup("oops", children)
	id, rerr := heap.AllocException(ExceptionRaise{Exc: *group})
	if rerr != nil {
		t.Fatalf("AllocException: %v", rerr)
	}
	groupVal := MakeRef(id)

	messageRes, runErr := GetAttr(groupVal, interns.InternIdentifier("message"), heap, interns)
	if runErr != nil {
		t.Fatalf("GetAttr(.message): %v", runErr)
	}
	msgEntry := heap.Get(messageRes.Value.Ref)
	if msgEntry.Str != "oops" {
		t.Fatalf("message: got %q, want %q", msgEntry.Str, "oops")
	}

	excsRes, runErr := GetAttr(groupVal, interns.InternIdentifier("exceptions"), heap, interns)
	if runErr != nil {
		t.Fatalf("GetAttr(.exceptions): %v", runErr)
	}
	elements := tupleElements(t, excsRes.Value, heap)
	if len(elements) != 2 {
		t.Fatalf("expected 2 child exceptions, got %d", len(elements))
	}
	first := heap.Get(elements[0].Ref).Exception
	if first.Exc.ExcTypeVal != ExcValueError {
		t.Fatalf("first child: want ValueError, got %v", first.Exc.ExcTypeVal)
	}
	second := heap.Get(elements[1].Ref).Exception
	if second.Exc.ExcTypeVal != ExcTypeError {
		t.Fatalf("second child: want TypeError, got %v", second.Exc.ExcTypeVal)
	}
}

// TestStopIterationValueRoundTripsAsInt covers spec §8 mandatory scenario 4:
// raising StopIteration with return value 42 and reading .value on the
// caught exception yields the int 42, not a string.
func TestStopIterationValueRoundTripsAsInt(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	runErr := NewStopIterationWithValue(MakeInt(42), heap, interns)
	id, rerr := heap.AllocException(*runErr.Raise)
	if rerr != nil {
		t.Fatalf("AllocException: %v", rerr)
	}
	excVal := MakeRef(id)

	res, getErr := GetAttr(excVal, interns.InternIdentifier("value"), heap, interns)
	if getErr != nil {
		t.Fatalf("GetAttr(.value): %v", getErr)
	}
	if res.Value.Kind != VKInt || res.Value.Int64 != 42 {
		t.Fatalf(".value: want int 42, got %+v", res.Value)
	}
}

func TestStopIterationWithNoValueIsNone(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	exc := NewSimpleExceptionNoArg(ExcStopIteration)
	id, rerr := heap.AllocException(ExceptionRaise{Exc: *exc})
	if rerr != nil {
		t.Fatalf("AllocException: %v", rerr)
	}
	res, getErr := GetAttr(MakeRef(id), interns.InternIdentifier("value"), heap, interns)
	if getErr != nil {
		t.Fatalf("GetAttr(.value): %v", getErr)
	}
	if res.Value.Kind != VKNone {
		t.Fatalf(".value: want None, got %+v", res.Value)
	}
}

func TestExceptionArgsTupleFallsBackToMessage(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	exc := NewSimpleException(ExcValueError, "bad value")
	id, rerr := heap.AllocException(ExceptionRaise{Exc: *exc})
	if rerr != nil {
		t.Fatalf("AllocException: %v", rerr)
	}
	res, getErr := GetAttr(MakeRef(id), interns.InternIdentifier("args"), heap, interns)
	if getErr != nil {
		t.Fatalf("GetAttr(.args): %v", getErr)
	}
	elements := tupleElements(t, res.Value, heap)
	if len(elements) != 1 {
		t.Fatalf("expected 1-element args tuple, got %d", len(elements))
	}
	if got := heap.Get(elements[0].Ref).Str; got != "bad value" {
		t.Fatalf("args[0]: got %q, want %q", got, "bad value")
	}
}

func TestRegexErrorExposesPositionalAttrs(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	runErr := NewRegexError("bad pattern", 3, 1, 4)
	id, rerr := heap.AllocException(*runErr.Raise)
	if rerr != nil {
		t.Fatalf("AllocException: %v", rerr)
	}
	excVal := MakeRef(id)

	for attr, want := range map[string]int64{"pos": 3, "lineno": 1, "colno": 4} {
		res, getErr := GetAttr(excVal, interns.InternIdentifier(attr), heap, interns)
		if getErr != nil {
			t.Fatalf("GetAttr(.%s): %v", attr, getErr)
		}
		if res.Value.Kind != VKInt || res.Value.Int64 != want {
			t.Fatalf(".%s: want %d, got %+v", attr, want, res.Value)
		}
	}
}

func TestUnknownExceptionAttrRaisesAttributeError(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	exc := NewSimpleException(ExcValueError, "bad value")
	id, rerr := heap.AllocException(ExceptionRaise{Exc: *exc})
	if rerr != nil {
		t.Fatalf("AllocException: %v", rerr)
	}
	_, getErr := GetAttr(MakeRef(id), interns.InternIdentifier("nonexistent"), heap, interns)
	if getErr == nil || getErr.Kind != RunErrorExc || getErr.Raise.Exc.ExcTypeVal != ExcAttributeError {
		t.Fatalf("expected AttributeError, got %v", getErr)
	}
}
