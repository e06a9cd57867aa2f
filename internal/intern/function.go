package intern

// ParamKind classifies a function parameter for call-argument binding
// (spec.md §4.G's ArgValues/arity-checking contract).
type ParamKind uint8

const (
	ParamPositionalOrKeyword ParamKind = iota
	ParamPositionalOnly
	ParamKeywordOnly
	ParamVarArgs // *args
	ParamVarKwargs
)

// ParamSpec describes one parameter of an interned function.
type ParamSpec struct {
	Name       StringID
	Kind       ParamKind
	HasDefault bool
}

// FunctionDef is the interned, immutable description of a user-defined
// function or method. The compiler/VM (out of scope for this core) owns
// the actual bytecode; CodeRef is an opaque index the VM resolves on its
// own, mirroring the contract in spec.md §2 that the core stores function
// definitions "by index" without interpreting their bodies.
type FunctionDef struct {
	Name     StringID
	QualName StringID
	Params   []ParamSpec
	// IsGenerator and IsAsync affect how the VM constructs the call frame;
	// the core only needs to know so Instance/Closure construction can
	// pick the right heap kind.
	IsGenerator bool
	IsAsync     bool
	CodeRef     uint32
}
