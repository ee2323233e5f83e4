package argen_test

import (
	"fmt"
	"strings"

	"github.com/new-mentat/argen"
)

func Example_generate() {
	def := "world"
	spec := &argen.Spec{
		Positional: []argen.Positional{
			{CVar: "name", CType: argen.CChars, HelpName: "NAME", Default: &def,
				HelpDescr: "who to greet"},
		},
	}

	src, err := argen.Generate(spec)
	if err != nil {
		panic(err)
	}

	lines := strings.Split(src, "\n")
	fmt.Println(lines[0])
	fmt.Println(strings.Count(src, "void parse_args("), "parsing routine")
	// Output: #include<stdlib.h>
	// 1 parsing routine
}

func Example_usageLine() {
	spec := &argen.Spec{
		Positional: []argen.Positional{
			{CVar: "in_file", CType: argen.CChars, HelpName: "IN_FILE", Required: true},
			{CVar: "words", CType: argen.CChars, HelpName: "WORD", Multi: true},
		},
	}

	src, err := argen.Generate(spec)
	if err != nil {
		panic(err)
	}

	for _, line := range strings.Split(src, "\n") {
		if strings.Contains(line, "usage: %s") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output: printf("usage: %s [options] IN_FILE [WORD...]\n%s", progname,
}

func Example_orderingViolation() {
	spec := &argen.Spec{
		Positional: []argen.Positional{
			{CVar: "a", CType: argen.CChars, HelpName: "A"},
			{CVar: "b", CType: argen.CChars, HelpName: "B", Required: true},
		},
	}

	_, err := argen.Generate(spec)
	fmt.Println(err)
	// Output: b: required positional argument cannot come after a non-required one
}

func Example_flagOption() {
	spec := &argen.Spec{
		NonPositional: []argen.Option{
			{CVar: "verbose", CType: argen.CInt, Long: "verbose", Flag: true,
				HelpDescr: "enable verbose output"},
		},
	}

	src, err := argen.Generate(spec)
	if err != nil {
		panic(err)
	}

	for _, line := range strings.Split(src, "\n") {
		if strings.Contains(line, `{"verbose"`) {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output: {"verbose", no_argument, 0, 2},
}
