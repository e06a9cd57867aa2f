package core

import "fmt"

// InvariantCode identifies which internal invariant a HeapPanic violates.
// These are never user-visible Python exceptions — they're the "this is an
// interpreter bug" case (spec §7's RunError::Internal), raised as Go
// panics so a debug build fails loudly instead of corrupting the arena.
type InvariantCode int

const (
	InvariantInvalidHeapID InvariantCode = iota + 1
	InvariantUseAfterFree
	InvariantDoubleFree
	InvariantRefcountOverflow
	InvariantHeapLeak
	InvariantReentrantBorrow
)

func (c InvariantCode) String() string {
	switch c {
	case InvariantInvalidHeapID:
		return "invalid heap id"
	case InvariantUseAfterFree:
		return "use after free"
	case InvariantDoubleFree:
		return "double free"
	case InvariantRefcountOverflow:
		return "refcount overflow"
	case InvariantHeapLeak:
		return "heap leak"
	case InvariantReentrantBorrow:
		return "reentrant mutable borrow"
	default:
		return fmt.Sprintf("InvariantCode(%d)", c)
	}
}

// HeapPanic is what a broken invariant in the heap arena panics with. It is
// never recovered by ordinary Python-level exception handling — only a
// debug harness or test catches it.
type HeapPanic struct {
	Code InvariantCode
	Msg  string
}

func (p *HeapPanic) Error() string { return fmt.Sprintf("%s: %s", p.Code, p.Msg) }

func panicHeap(code InvariantCode, format string, args ...any) {
	panic(&HeapPanic{Code: code, Msg: fmt.Sprintf(format, args...)})
}
