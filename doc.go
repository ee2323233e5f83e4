// Package argen generates C argument parsing code from a declarative
// description of a command-line interface.
//
// A specification lists positional parameters and named options (short and
// long forms, aliases, defaults, required markers, boolean flags, and a
// trailing multi-valued parameter). argen validates it and emits one block
// of C source: include directives, a usage function, a getopt_long parsing
// routine, and a main skeleton ready for the caller's own code.
//
// The generator is a pure function from spec to text: it performs no I/O
// and produces byte-identical output for identical input. Reading spec
// files (TOML, JSON, or YAML) lives in the spec subpackage, and the argen
// command under cmd/argen wires the two together.
package argen

//go:generate gomarkdoc ./ -o docs/argen.md
