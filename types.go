package argen

import "github.com/new-mentat/argen/core"

// Spec is the in-memory model of one command-line interface: an ordered
// sequence of positional parameters plus a collection of named options.
//
// Positional ordering is significant: required parameters must precede
// optional ones, and a multi-valued parameter may only appear last.
// Spec.Validate enforces both, along with every per-item invariant.
type Spec = core.Spec

// Positional is an argument identified by its place in the non-option
// argument list. A required positional must not carry a default; a
// multi-valued one must be last and of type char*.
type Positional = core.Positional

// Option is an argument identified by a long name (and optionally a short,
// single-character form). Flag options are boolean switches: they take no
// value, must be int-typed, and must not be required or carry a default.
type Option = core.Option

// CType is the C type of a generated variable.
type CType = core.CType

const (
	// CChars is the string type, rendered as char* in generated code.
	CChars = core.CChars
	// CInt is the integer type.
	CInt = core.CInt
)
