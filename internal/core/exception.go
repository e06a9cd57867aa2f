package core

import (
	"fmt"
	"strings"

	"ouros/internal/intern"
)

// CodePosition is the opaque source-location payload a raise carries. The
// core never interprets it beyond storing and handing it back during
// traceback rendering — slicing actual source text is the host's job
// (spec §4.F "into_python_exception(interns, source)").
type CodePosition struct {
	Line, Col int
	Offset    int
}

// SimpleException is the lightweight, serializable exception payload
// (spec §3.7), ported field-for-field from the reference implementation's
// SimpleException.
type SimpleException struct {
	ExcTypeVal ExcType
	Arg        *string
	// Value carries exception-kind-specific tagged metadata: StopIteration's
	// typed return value, ExceptionGroup's encoded children, regex/JSON
	// decode positional metadata (spec §4.F "Metadata payloads").
	Value            *string
	ArgsSerialized    []byte
	CustomClassName   *string
	CustomMRONames    []string
	Cause             *SimpleException
	Context           *SimpleException
	SuppressContext   bool
	CustomAttrs       []KV
}

// KV is a stringified custom-attribute pair (spec §3.7 custom_attrs).
type KV struct{ Key, Val string }

// NewSimpleException builds a SimpleException with an optional message.
func NewSimpleException(t ExcType, arg string) *SimpleException {
	return &SimpleException{ExcTypeVal: t, Arg: &arg}
}

// NewSimpleExceptionNoArg builds a SimpleException with no message.
func NewSimpleExceptionNoArg(t ExcType) *SimpleException {
	return &SimpleException{ExcTypeVal: t}
}

// PyRepr renders str(exc): KeyError quotes its single string argument the
// way CPython's KeyError.__str__ reprs its args[0], while every other
// built-in exception just prints the raw message (spec §8 scenario 1).
func (e *SimpleException) PyRepr() string {
	msg := ""
	if e.Arg != nil {
		msg = *e.Arg
	}
	if e.ExcTypeVal == ExcKeyError && e.Arg != nil {
		return "'" + strings.ReplaceAll(msg, "'", "\\'") + "'"
	}
	return msg
}

// ClassName returns the name used for isinstance/except matching: the
// custom class name for user-defined exceptions, else the builtin type's
// name.
func (e *SimpleException) ClassName() string {
	if e.CustomClassName != nil {
		return *e.CustomClassName
	}
	return e.ExcTypeVal.String()
}

// MatchesHandler reports whether this exception would be caught by
// `except handlerType:`. Custom exception classes consult their own
// recorded MRO names first (spec §4.F "Custom classes ... persist
// custom_mro_names so except MyError matches after catching as a parent"),
// falling back to the builtin ExcType hierarchy otherwise.
func (e *SimpleException) MatchesHandler(handlerType ExcType) bool {
	if e.CustomClassName != nil {
		for _, name := range e.CustomMRONames {
			if name == handlerType.String() {
				return true
			}
		}
		// Every custom exception still derives from BaseException/Exception.
		return handlerType == ExcBaseException || handlerType == ExcException
	}
	return e.ExcTypeVal.IsSubclassOf(handlerType)
}

// RawStackFrame is a singly-linked traceback chain, innermost frame first
// (spec §3.7), ported from the reference RawStackFrame.
type RawStackFrame struct {
	Position   CodePosition
	FrameName  *intern.StringID
	Parent     *RawStackFrame
	HideCaret  bool
}

func newRawFrame(pos CodePosition, name intern.StringID) *RawStackFrame {
	return &RawStackFrame{Position: pos, FrameName: &name}
}

// FrameFromPosition creates a nameless frame for module-level errors.
func FrameFromPosition(pos CodePosition) *RawStackFrame {
	return &RawStackFrame{Position: pos}
}

// FrameFromRaise creates a frame for a `raise` statement; CPython never shows a
// caret for these.
func FrameFromRaise(pos CodePosition, name intern.StringID) *RawStackFrame {
	f := newRawFrame(pos, name)
	f.HideCaret = true
	return f
}

// ExceptionRaise is a SimpleException plus its traceback frame chain
// (spec §3.7), ported from the reference ExceptionRaise.
type ExceptionRaise struct {
	Exc           SimpleException
	Frame         *RawStackFrame
	HideCaret     bool
	OriginalValue *Value `msgpack:"-"` // not serialized; rebuilt on demand (spec §4.H)
}

// NewExceptionRaise wraps exc with no frame yet.
func NewExceptionRaise(exc SimpleException) *ExceptionRaise {
	return &ExceptionRaise{Exc: exc}
}

// AddCallerFrame prepends one more outer frame as the exception propagates
// through the VM's call stack (spec §3.8, §4.F), or fills in the name of an
// existing nameless innermost frame (the "namespace-lookup" special case).
func (r *ExceptionRaise) AddCallerFrame(pos CodePosition, name intern.StringID) {
	r.addCallerFrameInner(pos, name, false)
}

func (r *ExceptionRaise) addCallerFrameInner(pos CodePosition, name intern.StringID, hideCaret bool) {
	if r.Frame == nil {
		f := newRawFrame(pos, name)
		f.HideCaret = hideCaret
		r.Frame = f
		return
	}
	if r.Frame.FrameName == nil {
		r.Frame.FrameName = &name
		r.Frame.HideCaret = hideCaret
		return
	}
	cur := r.Frame
	for cur.Parent != nil {
		cur = cur.Parent
	}
	newFrame := newRawFrame(pos, name)
	newFrame.HideCaret = hideCaret
	cur.Parent = newFrame
}

// FrameNames resolves the chain outermost-first ("most recent call last"),
// for traceback rendering (spec §4.F).
func (r *ExceptionRaise) FrameNames(interns *intern.Interner) []string {
	var chain []*RawStackFrame
	for f := r.Frame; f != nil; f = f.Parent {
		chain = append(chain, f)
	}
	names := make([]string, len(chain))
	for i, f := range chain {
		name := "<module>"
		if f.FrameName != nil {
			if s, ok := interns.GetStr(*f.FrameName); ok {
				name = s
			}
		}
		// Reverse: chain is innermost-first, traceback wants outermost-first.
		names[len(chain)-1-i] = name
	}
	return names
}

// RunErrorKind distinguishes the three-level taxonomy of spec §7/§4.F.
type RunErrorKind uint8

const (
	RunErrorInternal RunErrorKind = iota
	RunErrorExc
	RunErrorUncatchableExc
)

// RunError is every fallible core operation's error type (spec §6, §7).
type RunError struct {
	Kind     RunErrorKind
	Internal string           // set iff Kind == RunErrorInternal
	Raise    *ExceptionRaise  // set iff Kind == RunErrorExc or RunErrorUncatchableExc
}

func (e *RunError) Error() string {
	switch e.Kind {
	case RunErrorInternal:
		return fmt.Sprintf("Internal error in ouros: %s", e.Internal)
	case RunErrorUncatchableExc:
		return fmt.Sprintf("%s: %s (uncatchable)", e.Raise.Exc.ClassName(), e.Raise.Exc.PyRepr())
	default:
		return fmt.Sprintf("%s: %s", e.Raise.Exc.ClassName(), e.Raise.Exc.PyRepr())
	}
}

// NewInternalError builds the RunError::Internal variant (spec §7.1):
// always fatal, surfaced with no traceback as
// RuntimeError("Internal error in ouros: ...").
func NewInternalError(msg string) *RunError {
	return &RunError{Kind: RunErrorInternal, Internal: msg}
}

// NewExc wraps exc as a normal, catchable Python exception (spec §7.2).
func NewExc(exc *SimpleException) *RunError {
	return &RunError{Kind: RunErrorExc, Raise: NewExceptionRaise(*exc)}
}

// NewUncatchableExc wraps exc as a resource/limit violation that bypasses
// `except` handlers (spec §7.3).
func NewUncatchableExc(exc *SimpleException) *RunError {
	return &RunError{Kind: RunErrorUncatchableExc, Raise: NewExceptionRaise(*exc)}
}

// IsCatchableBy reports whether this error can be caught by a Python-level
// `except handlerType:` clause — false for both Internal and
// UncatchableExc, matching spec §7's propagation policy.
func (e *RunError) IsCatchableBy(handlerType ExcType) bool {
	if e.Kind != RunErrorExc {
		return false
	}
	return e.Raise.Exc.MatchesHandler(handlerType)
}
