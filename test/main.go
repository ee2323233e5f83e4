package main

import (
	"fmt"
	"os"

	"github.com/new-mentat/argen"
)

func str(s string) *string { return &s }

func main() {
	spec := &argen.Spec{
		Positional: []argen.Positional{
			{CVar: "in_file", CType: argen.CChars, HelpName: "IN_FILE", Required: true,
				HelpDescr: "an input file for this example program"},
			{CVar: "out_file", CType: argen.CChars, HelpName: "OUT_FILE", Default: str("a.out"),
				HelpDescr: "where we'll put some output"},
			{CVar: "words", CType: argen.CChars, HelpName: "WORD", Multi: true,
				HelpDescr: "word(s) of interest"},
		},
		NonPositional: []argen.Option{
			{CVar: "block_size", CType: argen.CInt, Long: "block-size", Short: "b",
				HelpName: "num", Default: str("12"), Aliases: []string{"blocksize", "bs"},
				HelpDescr: "set the block size, defaults to 12."},
			{CVar: "fave_number", CType: argen.CInt, Long: "fav-number", HelpName: "num",
				Default: str("7"), HelpDescr: "your favorite number"},
			{CVar: "quiet", CType: argen.CInt, Long: "quiet", Short: "q", Flag: true,
				HelpDescr: "disable output"},
			{CVar: "username", CType: argen.CChars, Long: "name", Required: true,
				HelpDescr: "your name"},
		},
	}

	if err := argen.GenerateTo(os.Stdout, spec); err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		os.Exit(1)
	}
}
