package core

import (
	"testing"

	"ouros/internal/intern"
	"ouros/internal/resource"
)

func TestPyLenVariousKinds(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	listID, rerr := heap.AllocList([]Value{MakeInt(1), MakeInt(2), MakeInt(3)})
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	n, runErr := PyLen(MakeRef(listID), heap, intern.New())
	if runErr != nil {
		t.Fatalf("PyLen: %v", runErr)
	}
	if n != 3 {
		t.Fatalf("expected length 3, got %d", n)
	}
}

func TestPyLenNotIterableRaisesTypeError(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	_, runErr := PyLen(MakeInt(5), heap, intern.New())
	if runErr == nil {
		t.Fatalf("expected a TypeError for len() of an int")
	}
	if !runErr.IsCatchableBy(ExcTypeError) {
		t.Fatalf("expected a catchable TypeError, got %v", runErr)
	}
}

func TestPyBoolTruthiness(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	if PyBool(None, heap, interns) {
		t.Fatalf("None should be falsy")
	}
	if PyBool(MakeInt(0), heap, interns) {
		t.Fatalf("0 should be falsy")
	}
	if !PyBool(MakeInt(1), heap, interns) {
		t.Fatalf("1 should be truthy")
	}
	emptyList, rerr := heap.AllocList(nil)
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	if PyBool(MakeRef(emptyList), heap, interns) {
		t.Fatalf("an empty list should be falsy")
	}
	nonEmptyList, rerr := heap.AllocList([]Value{MakeInt(1)})
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	if !PyBool(MakeRef(nonEmptyList), heap, interns) {
		t.Fatalf("a non-empty list should be truthy")
	}
}

func TestPyReprScalars(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	if got, want := PyRepr(None, heap, interns), "None"; got != want {
		t.Fatalf("None repr: got %q, want %q", got, want)
	}
	if got, want := PyRepr(MakeBool(true), heap, interns), "True"; got != want {
		t.Fatalf("bool repr: got %q, want %q", got, want)
	}
	if got, want := PyRepr(MakeInt(42), heap, interns), "42"; got != want {
		t.Fatalf("int repr: got %q, want %q", got, want)
	}
	if got, want := PyRepr(MakeFloat(1), heap, interns), "1.0"; got != want {
		t.Fatalf("float repr: got %q, want %q", got, want)
	}
}

func TestPyReprListNestsElementReprs(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	strID, rerr := heap.AllocStr("hi")
	if rerr != nil {
		t.Fatalf("AllocStr: %v", rerr)
	}
	listID, rerr := heap.AllocList([]Value{MakeInt(1), MakeRef(strID)})
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	got := PyRepr(MakeRef(listID), heap, interns)
	want := "[1, 'hi']"
	if got != want {
		t.Fatalf("list repr: got %q, want %q", got, want)
	}
}

func TestPyStrUnquotesBareStringsButNotNestedOnes(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	strID, rerr := heap.AllocStr("hello")
	if rerr != nil {
		t.Fatalf("AllocStr: %v", rerr)
	}
	if got, want := PyStr(MakeRef(strID), heap, interns), "hello"; got != want {
		t.Fatalf("str() of a bare string: got %q, want %q", got, want)
	}

	listID, rerr := heap.AllocList([]Value{MakeRef(strID)})
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	if got, want := PyStr(MakeRef(listID), heap, interns), "['hello']"; got != want {
		t.Fatalf("str() of a list should still repr its elements: got %q, want %q", got, want)
	}
}
