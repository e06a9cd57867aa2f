package snapshot

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"ouros/internal/core"
	"ouros/internal/intern"
	"ouros/internal/resource"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	interns := intern.New()
	heap := core.NewHeap(resource.Unbounded{})

	s := interns.Intern("hello")
	listID, rerr := heap.AllocList([]core.Value{core.MakeInt(1), core.MakeInternString(s)})
	if rerr != nil {
		t.Fatalf("AllocList: %v", rerr)
	}
	_ = listID

	raise := core.NewExceptionRaise(*core.NewSimpleException(core.ExcValueError, "boom"))

	data, err := EncodeBytes(interns, heap, raise)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}

	gotInterns, gotHeap, gotExc, err := DecodeBytes(data, resource.Unbounded{})
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if got, ok := gotInterns.GetStr(s); !ok || got != "hello" {
		t.Fatalf("interned string did not survive round-trip: got %q, ok=%v", got, ok)
	}
	if gotHeap.LiveCount() != heap.LiveCount() {
		t.Fatalf("live heap count changed across round-trip: want %d, got %d", heap.LiveCount(), gotHeap.LiveCount())
	}
	if gotExc == nil {
		t.Fatalf("expected the in-flight exception to survive the round-trip")
	}
	if gotExc.Exc.PyRepr() != "boom" {
		t.Fatalf("exception payload did not survive round-trip: got %q", gotExc.Exc.PyRepr())
	}
}

// TestEncodeIsByteIdentical asserts spec §4.H: encoding the same pre-state
// twice must produce byte-identical output, including when BuiltinClassIDs
// is populated — a Go map encoded without deterministic key ordering would
// make this flaky.
func TestEncodeIsByteIdentical(t *testing.T) {
	build := func() (*intern.Interner, *core.Heap) {
		interns := intern.New()
		heap := core.NewHeap(resource.Unbounded{})
		for t, n := core.Type(0), 40; t < core.Type(n); t++ {
			id, rerr := heap.AllocStr("builtin")
			if rerr != nil {
				continue
			}
			heap.RegisterBuiltinClass(t, id)
		}
		s := interns.Intern("hello")
		_, rerr := heap.AllocList([]core.Value{core.MakeInt(1), core.MakeInternString(s)})
		if rerr != nil {
			t.Fatalf("AllocList: %v", rerr)
		}
		return interns, heap
	}

	interns1, heap1 := build()
	data1, err := EncodeBytes(interns1, heap1, nil)
	if err != nil {
		t.Fatalf("EncodeBytes (1): %v", err)
	}

	interns2, heap2 := build()
	data2, err := EncodeBytes(interns2, heap2, nil)
	if err != nil {
		t.Fatalf("EncodeBytes (2): %v", err)
	}

	if len(data1) != len(data2) {
		t.Fatalf("encodings of identical pre-states differ in length: %d vs %d", len(data1), len(data2))
	}
	for i := range data1 {
		if data1[i] != data2[i] {
			t.Fatalf("encodings of identical pre-states diverge at byte %d", i)
		}
	}
}

func TestDecodeRejectsWrongSchema(t *testing.T) {
	interns := intern.New()
	heap := core.NewHeap(resource.Unbounded{})
	data, err := EncodeBytes(interns, heap, nil)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}

	// A payload stamped with a schema version other than this build's must
	// be rejected with ErrSchemaMismatch.
	wrong, err := msgpack.Marshal(&Payload{Schema: schemaVersion + 1})
	if err != nil {
		t.Fatalf("msgpack.Marshal: %v", err)
	}
	_, _, _, err = DecodeBytes(wrong, resource.Unbounded{})
	if _, ok := err.(*ErrSchemaMismatch); !ok {
		t.Fatalf("expected *ErrSchemaMismatch for schema %d, got %v", schemaVersion+1, err)
	}

	// Decoding an empty buffer must fail rather than silently succeeding.
	if _, _, _, err := DecodeBytes(nil, resource.Unbounded{}); err == nil {
		t.Fatalf("expected decoding an empty buffer to fail")
	}
	_ = data
}
