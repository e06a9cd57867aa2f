package core

import "ouros/internal/resource"

// AsRunError translates a resource-policy denial into the uncatchable
// exception spec §4.I names for it (MemoryError, TimeoutError,
// RecursionError). Returns nil if rerr is nil.
func AsRunError(rerr *resource.Error) *RunError {
	if rerr == nil {
		return nil
	}
	switch rerr.Kind {
	case resource.Memory:
		return NewMemoryError(rerr.Msg)
	case resource.Timeout:
		return NewTimeoutError(rerr.Msg)
	case resource.Recursion:
		return NewRecursionLimitError(rerr.Msg)
	default:
		return NewInternalError(rerr.Error())
	}
}
