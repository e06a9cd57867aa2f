package core

// ExcType is the closed enum of the 43 Python exception kinds the core
// knows about: a subset of the CPython standard hierarchy plus
// FrozenInstanceError, JSONDecodeError and TOMLDecodeError. Exception types
// not listed below have no variant of their own.
type ExcType uint8

const (
	ExcException ExcType = iota
	ExcExceptionGroup

	ExcBaseException
	ExcSystemExit
	ExcKeyboardInterrupt
	ExcGeneratorExit

	// ArithmeticError hierarchy
	ExcArithmeticError
	ExcFloatingPointError
	ExcOverflowError
	ExcZeroDivisionError

	// LookupError hierarchy
	ExcLookupError
	ExcIndexError
	ExcKeyError

	// RuntimeError hierarchy
	ExcRuntimeError
	ExcNotImplementedError
	ExcRecursionError

	// AttributeError hierarchy
	ExcAttributeError
	ExcFrozenInstanceError

	// NameError hierarchy
	ExcNameError
	ExcUnboundLocalError

	// ValueError hierarchy
	ExcValueError
	ExcUnicodeDecodeError
	ExcJSONDecodeError
	ExcTOMLDecodeError

	// ImportError hierarchy
	ExcImportError
	ExcModuleNotFoundError

	// OSError hierarchy
	ExcOSError
	ExcFileNotFoundError
	ExcFileExistsError
	ExcIsADirectoryError
	ExcNotADirectoryError
	ExcPermissionError

	// Standalone exception types
	ExcAssertionError
	ExcBufferError
	ExcEOFError
	ExcMemoryError
	ExcReferenceError
	ExcStopAsyncIteration
	ExcStopIteration
	ExcSyntaxError
	ExcIndentationError
	ExcTimeoutError
	ExcTypeError

	// excTypeCount is a sentinel, not a real exception type.
	excTypeCount
)

var excTypeNames = [excTypeCount]string{
	ExcException:           "Exception",
	ExcExceptionGroup:       "ExceptionGroup",
	ExcBaseException:        "BaseException",
	ExcSystemExit:           "SystemExit",
	ExcKeyboardInterrupt:    "KeyboardInterrupt",
	ExcGeneratorExit:        "GeneratorExit",
	ExcArithmeticError:      "ArithmeticError",
	ExcFloatingPointError:   "FloatingPointError",
	ExcOverflowError:        "OverflowError",
	ExcZeroDivisionError:    "ZeroDivisionError",
	ExcLookupError:          "LookupError",
	ExcIndexError:           "IndexError",
	ExcKeyError:             "KeyError",
	ExcRuntimeError:         "RuntimeError",
	ExcNotImplementedError:  "NotImplementedError",
	ExcRecursionError:       "RecursionError",
	ExcAttributeError:       "AttributeError",
	ExcFrozenInstanceError:  "FrozenInstanceError",
	ExcNameError:            "NameError",
	ExcUnboundLocalError:    "UnboundLocalError",
	ExcValueError:           "ValueError",
	ExcUnicodeDecodeError:   "UnicodeDecodeError",
	ExcJSONDecodeError:      "JSONDecodeError",
	ExcTOMLDecodeError:      "TOMLDecodeError",
	ExcImportError:          "ImportError",
	ExcModuleNotFoundError:  "ModuleNotFoundError",
	ExcOSError:              "OSError",
	ExcFileNotFoundError:    "FileNotFoundError",
	ExcFileExistsError:      "FileExistsError",
	ExcIsADirectoryError:    "IsADirectoryError",
	ExcNotADirectoryError:   "NotADirectoryError",
	ExcPermissionError:      "PermissionError",
	ExcAssertionError:       "AssertionError",
	ExcBufferError:          "BufferError",
	ExcEOFError:             "EOFError",
	ExcMemoryError:          "MemoryError",
	ExcReferenceError:       "ReferenceError",
	ExcStopAsyncIteration:   "StopAsyncIteration",
	ExcStopIteration:        "StopIteration",
	ExcSyntaxError:          "SyntaxError",
	ExcIndentationError:     "IndentationError",
	ExcTimeoutError:         "TimeoutError",
	ExcTypeError:            "TypeError",
}

// String returns the exact CPython class name (spec: "the string
// representation matches the variant name exactly").
func (t ExcType) String() string {
	if int(t) < len(excTypeNames) && excTypeNames[t] != "" {
		return excTypeNames[t]
	}
	return "Exception"
}

// IsSubclassOf implements spec §4.F / §8's fixed dispatch table: "is this
// exception type caught by `except handlerType:`?" Ported condition-for-
// condition from the reference is_subclass_of match.
func (t ExcType) IsSubclassOf(handlerType ExcType) bool {
	if t == handlerType {
		return true
	}
	switch handlerType {
	case ExcBaseException:
		return true
	case ExcException:
		return !(t == ExcBaseException || t == ExcKeyboardInterrupt || t == ExcSystemExit || t == ExcGeneratorExit)
	case ExcLookupError:
		return t == ExcKeyError || t == ExcIndexError
	case ExcArithmeticError:
		return t == ExcFloatingPointError || t == ExcZeroDivisionError || t == ExcOverflowError
	case ExcRuntimeError:
		return t == ExcRecursionError || t == ExcNotImplementedError
	case ExcAttributeError:
		return t == ExcFrozenInstanceError
	case ExcNameError:
		return t == ExcUnboundLocalError
	case ExcValueError:
		return t == ExcUnicodeDecodeError || t == ExcJSONDecodeError || t == ExcTOMLDecodeError
	case ExcImportError:
		return t == ExcModuleNotFoundError
	case ExcOSError:
		return t == ExcFileNotFoundError || t == ExcFileExistsError || t == ExcIsADirectoryError ||
			t == ExcNotADirectoryError || t == ExcPermissionError
	case ExcSyntaxError:
		return t == ExcIndentationError
	default:
		return false
	}
}
