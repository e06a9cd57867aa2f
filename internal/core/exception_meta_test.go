package core

import (
	"testing"

	"ouros/internal/intern"
	"ouros/internal/resource"
)

func TestEncodeDecodeStopIterationValueRoundTrips(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	cases := []Value{
		None,
		MakeBool(true),
		MakeBool(false),
		MakeInt(-7),
		MakeFloat(2.5),
	}
	for _, v := range cases {
		encoded := EncodeStopIterationValue(v, heap, interns)
		decoded, rerr := decodeStopIterationValue(encoded, heap)
		if rerr != nil {
			t.Fatalf("decode %q: %v", encoded, rerr)
		}
		if decoded.Kind != v.Kind {
			t.Fatalf("encode/decode %+v: got kind %v, want %v (encoded=%q)", v, decoded.Kind, v.Kind, encoded)
		}
	}
}

func TestEncodeDecodeStopIterationValueString(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	strID := interns.Intern("hello")
	encoded := EncodeStopIterationValue(MakeInternString(strID), heap, interns)
	if encoded != "s:hello" {
		t.Fatalf("encode: got %q, want %q", encoded, "s:hello")
	}
	decoded, rerr := decodeStopIterationValue(encoded, heap)
	if rerr != nil {
		t.Fatalf("decode: %v", rerr)
	}
	if decoded.Kind != VKRef {
		t.Fatalf("decoded string should be a heap ref, got %+v", decoded)
	}
	if got := heap.Get(decoded.Ref).Str; got != "hello" {
		t.Fatalf("decoded string: got %q, want %q", got, "hello")
	}
}

func TestDecodeLegacyUntaggedIntPayload(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	decoded, rerr := decodeStopIterationValue("42", heap)
	if rerr != nil {
		t.Fatalf("decode: %v", rerr)
	}
	if decoded.Kind != VKInt || decoded.Int64 != 42 {
		t.Fatalf("legacy untagged int: got %+v", decoded)
	}
}

func TestExceptionGroupChildrenCodecRoundTrips(t *testing.T) {
	children := []SimpleException{
		*NewSimpleException(ExcValueError, "x"),
		*NewSimpleExceptionNoArg(ExcKeyError),
	}
	group := NewExceptionGroup("oops", children)
	decoded, ok := group.Exceptions()
	if !ok {
		t.Fatalf("expected ExceptionGroup to expose children")
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 children, got %d", len(decoded))
	}
	if decoded[0].ExcTypeVal != ExcValueError || *decoded[0].Arg != "x" {
		t.Fatalf("first child mismatch: %+v", decoded[0])
	}
	if decoded[1].ExcTypeVal != ExcKeyError {
		t.Fatalf("second child mismatch: %+v", decoded[1])
	}
}

func TestNonGroupExceptionHasNoChildren(t *testing.T) {
	exc := NewSimpleException(ExcValueError, "x")
	if _, ok := exc.Exceptions(); ok {
		t.Fatalf("a plain ValueError should not expose .exceptions")
	}
}
