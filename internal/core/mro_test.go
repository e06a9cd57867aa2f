package core

import (
	"testing"

	"ouros/internal/intern"
	"ouros/internal/resource"
)

func TestLinearizeMRODiamond(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	object, _ := heap.AllocClass(ClassData{QualName: interns.Intern("object")})
	heap.Get(object).Class.MRO = []HeapID{object}

	a, _ := heap.AllocClass(ClassData{QualName: interns.Intern("A"), Bases: []HeapID{object}})
	heap.Get(a).Class.MRO = []HeapID{a, object}

	b, _ := heap.AllocClass(ClassData{QualName: interns.Intern("B"), Bases: []HeapID{a}})
	heap.Get(b).Class.MRO = []HeapID{b, a, object}

	c, _ := heap.AllocClass(ClassData{QualName: interns.Intern("C"), Bases: []HeapID{a}})
	heap.Get(c).Class.MRO = []HeapID{c, a, object}

	d, _ := heap.AllocClass(ClassData{QualName: interns.Intern("D"), Bases: []HeapID{b, c}})

	mro, rerr := LinearizeMRO(d, [][]HeapID{heap.Get(b).Class.MRO, heap.Get(c).Class.MRO}, []HeapID{b, c})
	if rerr != nil {
		t.Fatalf("LinearizeMRO: %v", rerr)
	}
	want := []HeapID{d, b, c, a, object}
	if len(mro) != len(want) {
		t.Fatalf("expected MRO length %d, got %d", len(want), len(mro))
	}
	for i := range want {
		if mro[i] != want[i] {
			t.Fatalf("MRO[%d]: want %v, got %v", i, want[i], mro[i])
		}
	}
}

func TestLinearizeMROInconsistentOrderFails(t *testing.T) {
	heap := NewHeap(resource.Unbounded{})
	interns := intern.New()

	x, _ := heap.AllocClass(ClassData{QualName: interns.Intern("X")})
	heap.Get(x).Class.MRO = []HeapID{x}
	y, _ := heap.AllocClass(ClassData{QualName: interns.Intern("Y")})
	heap.Get(y).Class.MRO = []HeapID{y}

	// A(X, Y), B(Y, X): merging A and B's base order is inconsistent.
	a, _ := heap.AllocClass(ClassData{QualName: interns.Intern("A"), Bases: []HeapID{x, y}})
	heap.Get(a).Class.MRO = []HeapID{a, x, y}
	b, _ := heap.AllocClass(ClassData{QualName: interns.Intern("B"), Bases: []HeapID{y, x}})
	heap.Get(b).Class.MRO = []HeapID{b, y, x}

	z, _ := heap.AllocClass(ClassData{QualName: interns.Intern("Z"), Bases: []HeapID{a, b}})

	_, rerr := LinearizeMRO(z, [][]HeapID{heap.Get(a).Class.MRO, heap.Get(b).Class.MRO}, []HeapID{a, b})
	if rerr == nil {
		t.Fatalf("expected an MRO error for an inconsistent base order")
	}
	if !rerr.IsCatchableBy(ExcTypeError) {
		t.Fatalf("MRO failure should be a catchable TypeError")
	}
}
