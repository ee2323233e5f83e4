package argen

import "github.com/new-mentat/argen/core"

// Generate validates the spec and returns the generated C source as one
// text blob, in fixed order: include directives, the usage function, the
// parse_args routine, and a main skeleton.
//
// Validation is fail-fast and returns a typed error from the errors
// package identifying the offending item and the violated rule. A spec
// declaring more options without explicit short names than there are free
// dispatch bytes fails with errors.SelectorPoolError.
//
// Usage:
//
//	spec := &argen.Spec{
//		Positional: []argen.Positional{
//			{CVar: "in_file", CType: argen.CChars, HelpName: "IN_FILE", Required: true},
//		},
//		NonPositional: []argen.Option{
//			{CVar: "quiet", CType: argen.CInt, Long: "quiet", Short: "q", Flag: true},
//		},
//	}
//
//	src, err := argen.Generate(spec)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(src)
var Generate = core.Generate

// GenerateTo writes the generated source to w. It is a convenience wrapper
// around Generate for callers streaming straight to a file or stdout.
var GenerateTo = core.GenerateTo
