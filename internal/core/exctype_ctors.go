package core

import (
	"fmt"
	"strings"
)

// formatParamNames renders a missing/duplicate parameter name list exactly
// as CPython does: `'a'`, `'a' and 'b'`, `'a', 'b' and 'c'` (spec §4.G
// "with the correct punctuation so golden-test diffs match CPython").
func formatParamNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("'%s'", names[0])
	case 2:
		return fmt.Sprintf("'%s' and '%s'", names[0], names[1])
	default:
		last := names[len(names)-1]
		rest := make([]string, len(names)-1)
		for i, n := range names[:len(names)-1] {
			rest[i] = fmt.Sprintf("'%s'", n)
		}
		return fmt.Sprintf("%s and '%s'", strings.Join(rest, ", "), last)
	}
}

// simpleExc is the common helper every factory below uses to build a
// catchable RunError carrying a single-message SimpleException.
func simpleExc(t ExcType, msg string) *RunError {
	return NewExc(NewSimpleException(t, msg))
}

// --- generic per-type constructors -----------------------------------

func NewTypeError(msg string) *RunError      { return simpleExc(ExcTypeError, msg) }
func NewValueError(msg string) *RunError     { return simpleExc(ExcValueError, msg) }
func NewAttributeError(msg string) *RunError { return simpleExc(ExcAttributeError, msg) }
func NewNameError(msg string) *RunError      { return simpleExc(ExcNameError, msg) }
func NewIndexError(msg string) *RunError     { return simpleExc(ExcIndexError, msg) }
func NewKeyError(repr string) *RunError      { return simpleExc(ExcKeyError, repr) }
func NewOverflowError(msg string) *RunError  { return simpleExc(ExcOverflowError, msg) }
func NewZeroDivisionError(msg string) *RunError {
	return simpleExc(ExcZeroDivisionError, msg)
}
// NewStopIteration builds a bare StopIteration with no return value; use
// NewStopIterationWithValue (exception_meta.go) when the generator returned
// a value so `.value` round-trips as a typed Value instead of raw text.
func NewStopIteration() *RunError {
	exc := NewSimpleExceptionNoArg(ExcStopIteration)
	return NewExc(exc)
}
func NewRuntimeError(msg string) *RunError       { return simpleExc(ExcRuntimeError, msg) }
func NewRecursionError(msg string) *RunError     { return simpleExc(ExcRecursionError, msg) }
func NewNotImplementedError(msg string) *RunError { return simpleExc(ExcNotImplementedError, msg) }
func NewAssertionError(msg string) *RunError     { return simpleExc(ExcAssertionError, msg) }
func NewUnboundLocalError(msg string) *RunError  { return simpleExc(ExcUnboundLocalError, msg) }
func NewImportError(msg string) *RunError        { return simpleExc(ExcImportError, msg) }
func NewModuleNotFoundError(msg string) *RunError { return simpleExc(ExcModuleNotFoundError, msg) }

// NewMemoryError / NewTimeoutError / NewRecursionLimitError build the
// uncatchable resource-limit exceptions named in spec §4.I.
func NewMemoryError(msg string) *RunError {
	return NewUncatchableExc(NewSimpleException(ExcMemoryError, msg))
}
func NewTimeoutError(msg string) *RunError {
	return NewUncatchableExc(NewSimpleException(ExcTimeoutError, msg))
}
func NewRecursionLimitError(msg string) *RunError {
	return NewUncatchableExc(NewSimpleException(ExcRecursionError, msg))
}

// --- MRO / class-system errors ----------------------------------------

// NewMROError is raised when C3 linearization has no consistent solution
// (spec §4.E, §8 "ambiguous base order raises TypeError").
func NewMROError() *RunError {
	return simpleExc(ExcTypeError, "Cannot create a consistent method resolution order (MRO)")
}

// --- attribute errors ---------------------------------------------------

func NewAttributeErrorOnType(typeName, attr string) *RunError {
	return simpleExc(ExcAttributeError, fmt.Sprintf("'%s' object has no attribute '%s'", typeName, attr))
}

func NewAttributeErrorModule(moduleName, attr string) *RunError {
	return simpleExc(ExcAttributeError, fmt.Sprintf("module '%s' has no attribute '%s'", moduleName, attr))
}

func NewAttributeErrorNoSetattr(typeName, attr string) *RunError {
	return simpleExc(ExcAttributeError, fmt.Sprintf("'%s' object attribute '%s' is read-only", typeName, attr))
}

// --- key/lookup errors ---------------------------------------------------

// NewKeyErrorPopEmptySet matches CPython's `KeyError: 'pop from an empty set'`.
func NewKeyErrorPopEmptySet() *RunError { return NewKeyError("pop from an empty set") }

func NewIndexErrorPopEmptyList() *RunError {
	return simpleExc(ExcIndexError, "pop from empty list")
}

func NewIndexErrorPopOutOfRange() *RunError {
	return simpleExc(ExcIndexError, "pop index out of range")
}

// --- hashability ---------------------------------------------------------

func NewTypeErrorUnhashable(typeName string) *RunError {
	return simpleExc(ExcTypeError, fmt.Sprintf("unhashable type: '%s'", typeName))
}

// --- slice errors ---------------------------------------------------------

func NewValueErrorSliceStepZero() *RunError {
	return simpleExc(ExcValueError, "slice step cannot be zero")
}

// --- call-argument errors, ported from the reference exception
// constructors named in its doc comments (spec §4.G ArgValues contract) ---

// NewTypeErrorArgCount matches `{name}() takes exactly one argument (N
// given)` for a single expected arg, else `{name} expected {n} arguments,
// got {m}`.
func NewTypeErrorArgCount(name string, expected, actual int) *RunError {
	if expected == 1 {
		return simpleExc(ExcTypeError, fmt.Sprintf("%s() takes exactly one argument (%d given)", name, actual))
	}
	return simpleExc(ExcTypeError, fmt.Sprintf("%s expected %d arguments, got %d", name, expected, actual))
}

func NewTypeErrorNoArgs(name string, actual int) *RunError {
	return simpleExc(ExcTypeError, fmt.Sprintf("%s() takes no arguments (%d given)", name, actual))
}

func NewTypeErrorAtLeast(name string, min, actual int) *RunError {
	noun := "arguments"
	if min == 1 {
		noun = "argument"
	}
	return simpleExc(ExcTypeError, fmt.Sprintf("%s expected at least %d %s, got %d", name, min, noun, actual))
}

func NewTypeErrorAtMost(name string, max, actual int) *RunError {
	noun := "arguments"
	if max == 1 {
		noun = "argument"
	}
	return simpleExc(ExcTypeError, fmt.Sprintf("%s expected at most %d %s, got %d", name, max, noun, actual))
}

// NewTypeErrorMissingPositional matches `{name}() missing N required
// positional argument(s): 'a' and 'b'` (spec §8 scenario 2).
func NewTypeErrorMissingPositional(name string, missing []string) *RunError {
	count := len(missing)
	names := formatParamNames(missing)
	if count == 1 {
		return simpleExc(ExcTypeError, fmt.Sprintf("%s() missing 1 required positional argument: %s", name, names))
	}
	return simpleExc(ExcTypeError, fmt.Sprintf("%s() missing %d required positional arguments: %s", name, count, names))
}

func NewTypeErrorMissingKwonly(name string, missing []string) *RunError {
	count := len(missing)
	names := formatParamNames(missing)
	if count == 1 {
		return simpleExc(ExcTypeError, fmt.Sprintf("%s() missing 1 required keyword-only argument: %s", name, names))
	}
	return simpleExc(ExcTypeError, fmt.Sprintf("%s() missing %d required keyword-only arguments: %s", name, count, names))
}

// NewTypeErrorTooManyPositional matches the three CPython phrasings
// depending on whether any keyword-only arguments were also given.
func NewTypeErrorTooManyPositional(name string, max, actual, kwonlyGiven int) *RunError {
	takesWord := "arguments"
	if max == 1 {
		takesWord = "argument"
	}
	switch {
	case kwonlyGiven > 0:
		givenWord := "arguments"
		if actual == 1 {
			givenWord = "argument"
		}
		kwonlyWord := "arguments"
		if kwonlyGiven == 1 {
			kwonlyWord = "argument"
		}
		return simpleExc(ExcTypeError, fmt.Sprintf(
			"%s() takes %d positional %s but %d positional %s (and %d keyword-only %s) were given",
			name, max, takesWord, actual, givenWord, kwonlyGiven, kwonlyWord))
	case max == 0:
		return simpleExc(ExcTypeError, fmt.Sprintf("%s() takes 0 positional arguments but %d were given", name, actual))
	default:
		return simpleExc(ExcTypeError, fmt.Sprintf("%s() takes %d positional %s but %d were given", name, max, takesWord, actual))
	}
}

func NewTypeErrorPositionalOnly(name, param string) *RunError {
	return simpleExc(ExcTypeError, fmt.Sprintf("%s() got some positional-only arguments passed as keyword arguments: '%s'", name, param))
}

func NewTypeErrorDuplicateArg(name, param string) *RunError {
	return simpleExc(ExcTypeError, fmt.Sprintf("%s() got multiple values for argument '%s'", name, param))
}

func NewTypeErrorUnexpectedKeyword(name, key string) *RunError {
	return simpleExc(ExcTypeError, fmt.Sprintf("%s() got an unexpected keyword argument '%s'", name, key))
}

func NewTypeErrorKwargsNotMapping(name, typeName string) *RunError {
	return simpleExc(ExcTypeError, fmt.Sprintf("%s() argument after ** must be a mapping, not %s", name, typeName))
}

func NewTypeErrorKwargsNonstringKey() *RunError {
	return simpleExc(ExcTypeError, "keywords must be strings")
}

func NewTypeErrorNotCallable(typeName string) *RunError {
	return simpleExc(ExcTypeError, fmt.Sprintf("'%s' object is not callable", typeName))
}

func NewTypeErrorNotIterable(typeName string) *RunError {
	return simpleExc(ExcTypeError, fmt.Sprintf("'%s' object is not iterable", typeName))
}
