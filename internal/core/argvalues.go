package core

import "ouros/internal/intern"

// ArgValuesKind distinguishes the five call-site shapes the calling
// convention special-cases for zero-allocation dispatch on the common
// paths (spec §4.G "ArgValues: Empty | One | Two | Kwargs | ArgsKwargs").
type ArgValuesKind uint8

const (
	ArgsEmpty ArgValuesKind = iota
	ArgsOne
	ArgsTwo
	ArgsKwargsOnly
	ArgsGeneral
)

// KwArg is one `name=value` keyword argument.
type KwArg struct {
	Name intern.StringID
	Val  Value
}

// ArgValues is a call's actual arguments, shaped to avoid a slice
// allocation for the overwhelmingly common zero/one/two-argument calls
// (spec §4.G).
type ArgValues struct {
	Kind   ArgValuesKind
	One    Value
	Two    [2]Value
	Args   []Value
	Kwargs []KwArg
}

func MakeArgsEmpty() ArgValues                  { return ArgValues{Kind: ArgsEmpty} }
func MakeArgsOne(v Value) ArgValues              { return ArgValues{Kind: ArgsOne, One: v} }
func MakeArgsTwo(a, b Value) ArgValues           { return ArgValues{Kind: ArgsTwo, Two: [2]Value{a, b}} }
func MakeArgsKwargsOnly(kw []KwArg) ArgValues    { return ArgValues{Kind: ArgsKwargsOnly, Kwargs: kw} }
func MakeArgsGeneral(args []Value, kw []KwArg) ArgValues {
	return ArgValues{Kind: ArgsGeneral, Args: args, Kwargs: kw}
}

// Positional materializes the positional arguments as a slice regardless of
// which shape they were packed into. Callers on the hot Zero/One/Two paths
// should prefer switching on Kind directly; this exists for the general
// arity-checking helpers below.
func (a ArgValues) Positional() []Value {
	switch a.Kind {
	case ArgsEmpty, ArgsKwargsOnly:
		return nil
	case ArgsOne:
		return []Value{a.One}
	case ArgsTwo:
		return a.Two[:]
	default:
		return a.Args
	}
}

// KeywordArgs returns the keyword arguments regardless of shape.
func (a ArgValues) KeywordArgs() []KwArg {
	switch a.Kind {
	case ArgsKwargsOnly, ArgsGeneral:
		return a.Kwargs
	default:
		return nil
	}
}

// Len reports the positional argument count (CPython's "N given").
func (a ArgValues) Len() int {
	switch a.Kind {
	case ArgsEmpty, ArgsKwargsOnly:
		return 0
	case ArgsOne:
		return 1
	case ArgsTwo:
		return 2
	default:
		return len(a.Args)
	}
}

// CheckArity enforces CPython's exact positional-arity error wording (spec
// §4.G, §8 "missing required positional argument" scenario). Use for
// builtins/extension functions whose positional parameters have no
// defaults: min == max means an exact count is required.
func CheckArity(name string, a ArgValues, min, max int) *RunError {
	n := a.Len()
	switch {
	case min == max && max == 0:
		if n != 0 {
			return NewTypeErrorNoArgs(name, n)
		}
	case min == max:
		if n != max {
			return NewTypeErrorArgCount(name, max, n)
		}
	case n < min:
		return NewTypeErrorAtLeast(name, min, n)
	case max >= 0 && n > max:
		return NewTypeErrorAtMost(name, max, n)
	}
	return nil
}

// CheckNoKeywords rejects any keyword arguments at all, matching CPython's
// message for builtins that take no keyword parameters. The first offending
// keyword is named in the error, matching CPython's own behavior of
// reporting only the first rejected keyword it encounters.
func CheckNoKeywords(name string, a ArgValues, interns *intern.Interner) *RunError {
	kw := a.KeywordArgs()
	if len(kw) == 0 {
		return nil
	}
	return NewTypeErrorUnexpectedKeyword(name, interns.MustGetStr(kw[0].Name))
}

// CheckMissingPositional reports every name in paramNames[given:] as
// missing, matching `f() missing N required positional argument(s): ...`.
func CheckMissingPositional(name string, paramNames []string, given int) *RunError {
	if given >= len(paramNames) {
		return nil
	}
	return NewTypeErrorMissingPositional(name, paramNames[given:])
}
