// Package snapshot serializes a session's interner tables, heap arena, and
// in-flight exception (if any) to a single deterministic byte stream
// (component H), so a suspended session can be resumed bit-for-bit later —
// possibly in a different process. The codec is msgpack over explicit
// struct fields, schema-versioned the way the teacher's disk cache gates
// its own on-disk format (dcache.go's DiskPayload/diskCacheSchemaVersion).
package snapshot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"ouros/internal/core"
	"ouros/internal/intern"
	"ouros/internal/resource"
)

// schemaVersion is bumped whenever Payload's shape changes incompatibly.
const schemaVersion uint16 = 1

// Payload is the on-wire snapshot format. Every field is a concrete struct
// or slice, never a bare interface or map keyed by a non-deterministic
// iteration order that would matter to equality (spec §9 "deterministic
// msgpack-based snapshot codec").
type Payload struct {
	Schema uint16

	UserStrings  []string
	BytesTable   [][]byte
	LongIntTable []string

	Heap core.HeapSnapshot

	HasException bool
	Exception    core.ExceptionRaise
}

// ErrSchemaMismatch is returned by Decode when the payload's schema version
// doesn't match this build's schemaVersion.
type ErrSchemaMismatch struct {
	Got, Want uint16
}

func (e *ErrSchemaMismatch) Error() string {
	return fmt.Sprintf("snapshot: schema version %d does not match expected %d", e.Got, e.Want)
}

// Encode serializes interns, heap, and the optional in-flight exception
// into w.
func Encode(w io.Writer, interns *intern.Interner, heap *core.Heap, exc *core.ExceptionRaise) error {
	userStrings, bytesTable, longIntTable := interns.Snapshot()
	payload := Payload{
		Schema:       schemaVersion,
		UserStrings:  userStrings,
		BytesTable:   bytesTable,
		LongIntTable: longIntTable,
		Heap:         heap.Export(),
	}
	if exc != nil {
		payload.HasException = true
		payload.Exception = *exc
	}
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	return enc.Encode(&payload)
}

// Decode reconstructs an interner, a heap (gated by tracker), and the
// optional in-flight exception from r.
func Decode(r io.Reader, tracker resource.Tracker) (*intern.Interner, *core.Heap, *core.ExceptionRaise, error) {
	var payload Payload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, nil, nil, err
	}
	if payload.Schema != schemaVersion {
		return nil, nil, nil, &ErrSchemaMismatch{Got: payload.Schema, Want: schemaVersion}
	}

	interns := intern.Restore(payload.UserStrings, payload.BytesTable, payload.LongIntTable)
	heap := core.RestoreHeap(payload.Heap, tracker)

	var exc *core.ExceptionRaise
	if payload.HasException {
		e := payload.Exception
		exc = &e
	}
	return interns, heap, exc, nil
}

// EncodeBytes is a convenience wrapper returning the encoded payload as a
// byte slice, used by tests and by callers that manage their own I/O.
func EncodeBytes(interns *intern.Interner, heap *core.Heap, exc *core.ExceptionRaise) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, interns, heap, exc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes is the inverse of EncodeBytes.
func DecodeBytes(data []byte, tracker resource.Tracker) (*intern.Interner, *core.Heap, *core.ExceptionRaise, error) {
	return Decode(bytes.NewReader(data), tracker)
}
