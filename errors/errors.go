package errors

import "fmt"

// BadIdentifierError indicates a c_var that is not a valid C identifier.
type BadIdentifierError struct{ Var string }

func (e BadIdentifierError) Error() string {
	return fmt.Sprintf("invalid c variable %q", e.Var)
}

// RequiredDefaultError indicates an item marked required that also carries a
// default value.
type RequiredDefaultError struct{ Var string }

func (e RequiredDefaultError) Error() string {
	return fmt.Sprintf("%s: required items cannot have a default value", e.Var)
}

// MultiNotStringError indicates a multi-valued positional argument declared
// with a type other than char*.
type MultiNotStringError struct{ Var string }

func (e MultiNotStringError) Error() string {
	return fmt.Sprintf("%s: multi-valued arguments must be of type char* (they are stored in char**)", e.Var)
}

// MultiNotLastError indicates a multi-valued positional argument that is not
// the final item in the sequence.
type MultiNotLastError struct{ Var string }

func (e MultiNotLastError) Error() string {
	return fmt.Sprintf("%s: only the last positional argument can take multiple values", e.Var)
}

// RequiredAfterOptionalError indicates a required positional argument
// declared after a non-required one.
type RequiredAfterOptionalError struct{ Var string }

func (e RequiredAfterOptionalError) Error() string {
	return fmt.Sprintf("%s: required positional argument cannot come after a non-required one", e.Var)
}

// BadLongError indicates a long option name containing whitespace.
type BadLongError struct{ Var, Long string }

func (e BadLongError) Error() string {
	return fmt.Sprintf("%s: invalid long name %q", e.Var, e.Long)
}

// BadAliasError indicates an option alias containing whitespace.
type BadAliasError struct{ Var, Alias string }

func (e BadAliasError) Error() string {
	return fmt.Sprintf("%s: invalid alias %q", e.Var, e.Alias)
}

// BadShortError indicates a short option name that is not exactly one
// character.
type BadShortError struct{ Var, Short string }

func (e BadShortError) Error() string {
	return fmt.Sprintf("%s: invalid short name %q", e.Var, e.Short)
}

// FlagTypeError indicates a flag option declared with a type other than int.
type FlagTypeError struct{ Var string }

func (e FlagTypeError) Error() string {
	return fmt.Sprintf("%s: options that are flags must be of c_type int", e.Var)
}

// FlagDefaultError indicates a flag option carrying a default value.
type FlagDefaultError struct{ Var string }

func (e FlagDefaultError) Error() string {
	return fmt.Sprintf("%s: options that are flags cannot have a default value", e.Var)
}

// FlagRequiredError indicates a flag option marked required.
type FlagRequiredError struct{ Var string }

func (e FlagRequiredError) Error() string {
	return fmt.Sprintf("%s: options that are flags cannot also be required", e.Var)
}

// DuplicateVarError indicates two items in the same spec sharing a c_var.
type DuplicateVarError struct{ Var string }

func (e DuplicateVarError) Error() string {
	return fmt.Sprintf("duplicate c variable %q", e.Var)
}

// SelectorPoolError indicates that the spec declares more options without an
// explicit short name than there are free dispatch bytes. Unlike the
// validation errors above it is raised during generation, not validation.
type SelectorPoolError struct{ Count int }

func (e SelectorPoolError) Error() string {
	return fmt.Sprintf("cannot assign dispatch selectors: %d options exceed the available byte pool", e.Count)
}

// Helper constructors
func NewBadIdentifier(v string) error         { return BadIdentifierError{Var: v} }
func NewRequiredDefault(v string) error       { return RequiredDefaultError{Var: v} }
func NewMultiNotString(v string) error        { return MultiNotStringError{Var: v} }
func NewMultiNotLast(v string) error          { return MultiNotLastError{Var: v} }
func NewRequiredAfterOptional(v string) error { return RequiredAfterOptionalError{Var: v} }
func NewBadLong(v, long string) error         { return BadLongError{Var: v, Long: long} }
func NewBadAlias(v, alias string) error       { return BadAliasError{Var: v, Alias: alias} }
func NewBadShort(v, short string) error       { return BadShortError{Var: v, Short: short} }
func NewFlagType(v string) error              { return FlagTypeError{Var: v} }
func NewFlagDefault(v string) error           { return FlagDefaultError{Var: v} }
func NewFlagRequired(v string) error          { return FlagRequiredError{Var: v} }
func NewDuplicateVar(v string) error          { return DuplicateVarError{Var: v} }
func NewSelectorPool(count int) error         { return SelectorPoolError{Count: count} }
