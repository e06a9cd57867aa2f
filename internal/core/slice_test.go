package core

import "testing"

func TestSliceIndicesDefaultsToFullForwardRange(t *testing.T) {
	s := SliceData{Start: None, Stop: None, Step: None}
	idx, rerr := s.Indices(10)
	if rerr != nil {
		t.Fatalf("Indices: %v", rerr)
	}
	if idx != (SliceIndices{Start: 0, Stop: 10, Step: 1}) {
		t.Fatalf("expected the full range 0:10:1, got %+v", idx)
	}
}

func TestSliceIndicesNegativeStep(t *testing.T) {
	s := SliceData{Start: None, Stop: None, Step: MakeInt(-1)}
	idx, rerr := s.Indices(5)
	if rerr != nil {
		t.Fatalf("Indices: %v", rerr)
	}
	if idx != (SliceIndices{Start: 4, Stop: -1, Step: -1}) {
		t.Fatalf("expected reversed range 4:-1:-1, got %+v", idx)
	}
}

func TestSliceIndicesClampsOutOfRange(t *testing.T) {
	s := SliceData{Start: MakeInt(-100), Stop: MakeInt(100), Step: None}
	idx, rerr := s.Indices(3)
	if rerr != nil {
		t.Fatalf("Indices: %v", rerr)
	}
	if idx != (SliceIndices{Start: 0, Stop: 3, Step: 1}) {
		t.Fatalf("expected clamping to 0:3:1, got %+v", idx)
	}
}

func TestSliceIndicesZeroStepRaisesCatchableValueError(t *testing.T) {
	s := SliceData{Start: None, Stop: None, Step: MakeInt(0)}
	_, rerr := s.Indices(10)
	if rerr == nil {
		t.Fatalf("expected an error for a zero step")
	}
	if !rerr.IsCatchableBy(ExcValueError) {
		t.Fatalf("a zero slice step must raise a catchable ValueError, got %v", rerr)
	}
}
