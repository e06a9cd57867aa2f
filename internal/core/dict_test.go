package core

import (
	"testing"

	"ouros/internal/intern"
	"ouros/internal/resource"
)

func TestDictSetRejectsUnhashableListKey(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	dictID, rerr := heap.AllocDict()
	if rerr != nil {
		t.Fatalf("AllocDict: %v", rerr)
	}
	listID, rerr := heap.AllocList(nil)
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	d := heap.Get(dictID).Dict
	_, _, err := DictSet(d, MakeRef(listID), MakeInt(1), heap, interns)
	if err == nil {
		t.Fatalf("expected TypeError for unhashable list key")
	}
	if err.Kind != RunErrorExc || err.Raise.Exc.ExcTypeVal != ExcTypeError {
		t.Fatalf("expected catchable TypeError, got %v", err)
	}
	if want := "unhashable type: 'list'"; err.Raise.Exc.PyRepr() != want {
		t.Fatalf("message: got %q, want %q", err.Raise.Exc.PyRepr(), want)
	}
}

func TestDictGetRejectsUnhashableListKey(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	dictID, rerr := heap.AllocDict()
	if rerr != nil {
		t.Fatalf("AllocDict: %v", rerr)
	}
	listID, rerr := heap.AllocList(nil)
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	d := heap.Get(dictID).Dict
	_, _, err := DictGet(d, MakeRef(listID), heap, interns)
	if err == nil {
		t.Fatalf("expected TypeError for unhashable list key")
	}
}

func TestSetAddRejectsUnhashableListKey(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	setID, rerr := heap.AllocSet()
	if rerr != nil {
		t.Fatalf("AllocSet: %v", rerr)
	}
	listID, rerr := heap.AllocList(nil)
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	s := heap.Get(setID).Set
	_, err := SetAdd(s, MakeRef(listID), heap, interns)
	if err == nil {
		t.Fatalf("expected TypeError for unhashable list key")
	}
}

func TestDictSetAndGetRoundTripStringKey(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()
	dictID, rerr := heap.AllocDict()
	if rerr != nil {
		t.Fatalf("AllocDict: %v", rerr)
	}
	d := heap.Get(dictID).Dict
	key := MakeInternString(interns.Intern("x"))
	if _, _, err := DictSet(d, key, MakeInt(42), heap, interns); err != nil {
		t.Fatalf("DictSet: %v", err)
	}
	got, ok, err := DictGet(d, key, heap, interns)
	if err != nil {
		t.Fatalf("DictGet: %v", err)
	}
	if !ok || got.Int64 != 42 {
		t.Fatalf("expected 42, got %v ok=%v", got, ok)
	}
}
