// Package resource implements the pluggable policy consulted on every heap
// allocation and on counted VM operations (component I of the interpreter
// core). It is the one place the core touches anything resembling a
// deadline or a byte ceiling; everything else in internal/core is purely
// synchronous and never blocks.
package resource

import (
	"context"
	"fmt"
)

// Kind classifies the resource limit a Tracker denial names.
type Kind uint8

const (
	Memory Kind = iota
	Timeout
	Recursion
)

func (k Kind) String() string {
	switch k {
	case Memory:
		return "Memory"
	case Timeout:
		return "Timeout"
	case Recursion:
		return "Recursion"
	default:
		return "Unknown"
	}
}

// Error reports a resource-policy denial. The core translates this into an
// uncatchable exception (MemoryError/TimeoutError/RecursionError,
// spec §4.I) at the point of denial; it is never itself exposed to user
// code as a Go error.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

// Tracker is consulted at the three points spec §4.I names: every
// allocation, periodic VM ticks, and explicit "starting operation X" hooks
// for costly stdlib calls. A session's Tracker is never shared across
// sessions; the only synchronization concern is the cooperative deadline
// check inside Tick, which mirrors the teacher's applyTimeout pattern of a
// context.Context deadline checked from the calling goroutine rather than
// a background timer that could race a single-threaded session.
type Tracker interface {
	// OnAllocate is consulted before a new heap entry of the given
	// estimated size is created.
	OnAllocate(kind string, estimatedBytes uint32) *Error
	// Tick is called periodically by the VM's bytecode-step loop.
	Tick() *Error
	// OnOperation gates a named costly stdlib operation before it starts.
	OnOperation(name string) *Error
}

// Unbounded never denies anything; useful for embedding contexts (tests,
// the selftest subcommand) that don't want a resource ceiling.
type Unbounded struct{}

func (Unbounded) OnAllocate(string, uint32) *Error { return nil }
func (Unbounded) Tick() *Error                     { return nil }
func (Unbounded) OnOperation(string) *Error         { return nil }

// BudgetTracker enforces a byte ceiling, an operation-count ceiling, and a
// wall-clock deadline, gated cooperatively the way the teacher's
// applyTimeout gates CLI commands via context.Context rather than
// preemption.
type BudgetTracker struct {
	ctx context.Context

	MaxBytes       uint64
	MaxOperations  uint64
	MaxRecursion   int

	usedBytes  uint64
	operations uint64
	depth      int
}

// NewBudgetTracker builds a tracker whose Tick denials fire once ctx is
// done (deadline exceeded or explicitly cancelled).
func NewBudgetTracker(ctx context.Context, maxBytes, maxOperations uint64, maxRecursion int) *BudgetTracker {
	if ctx == nil {
		ctx = context.Background()
	}
	return &BudgetTracker{ctx: ctx, MaxBytes: maxBytes, MaxOperations: maxOperations, MaxRecursion: maxRecursion}
}

func (b *BudgetTracker) OnAllocate(kind string, estimatedBytes uint32) *Error {
	if b.MaxBytes > 0 && b.usedBytes+uint64(estimatedBytes) > b.MaxBytes {
		return &Error{Kind: Memory, Msg: fmt.Sprintf("allocation of %d bytes for %s would exceed the %d byte budget", estimatedBytes, kind, b.MaxBytes)}
	}
	b.usedBytes += uint64(estimatedBytes)
	return nil
}

func (b *BudgetTracker) Tick() *Error {
	select {
	case <-b.ctx.Done():
		return &Error{Kind: Timeout, Msg: "session deadline exceeded"}
	default:
	}
	b.operations++
	if b.MaxOperations > 0 && b.operations > b.MaxOperations {
		return &Error{Kind: Timeout, Msg: fmt.Sprintf("operation budget of %d exceeded", b.MaxOperations)}
	}
	return nil
}

// EnterCall and ExitCall bracket a Python-level call frame so recursion
// depth can be policed independent of the Go call stack (the VM's call
// loop, not recursion in this package, drives the actual nesting).
func (b *BudgetTracker) EnterCall() *Error {
	b.depth++
	if b.MaxRecursion > 0 && b.depth > b.MaxRecursion {
		return &Error{Kind: Recursion, Msg: "maximum recursion depth exceeded"}
	}
	return nil
}

func (b *BudgetTracker) ExitCall() {
	if b.depth > 0 {
		b.depth--
	}
}

func (b *BudgetTracker) OnOperation(name string) *Error {
	return b.Tick()
}
