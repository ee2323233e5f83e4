package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/new-mentat/argen/display"
)

// Generate validates the spec, assigns dispatch selectors, and emits the
// complete C source: include directives, the usage function, the parse_args
// routine, and a main skeleton, in that order. Output is deterministic for
// a given spec.
func Generate(s *Spec) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	sels, err := assignSelectors(s.NonPositional)
	if err != nil {
		return "", err
	}
	usage := display.BuildUsage(s.usageSpec())
	return s.cHeaders() + "\n\n" + usage + "\n" + s.cParseArgs(sels) + "\n" + s.cMain(), nil
}

// GenerateTo writes the generated source to w.
func GenerateTo(w io.Writer, s *Spec) error {
	out, err := Generate(s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// cParseArgs emits the parsing routine. The body is one fixed sequence of
// fragment appends: tracking flags, default holders, the getopt_long
// dispatch table, the short option descriptor, the option loop, the option
// post-loop pass, then positional consumption (required, optional, multi)
// each followed by its own post-loop pass.
func (s *Spec) cParseArgs(sels []byte) string {
	var b strings.Builder

	b.WriteString("void parse_args(int argc, char **argv")
	for i := range s.Positional {
		b.WriteString(s.Positional[i].arg())
	}
	for i := range s.NonPositional {
		b.WriteString(s.NonPositional[i].arg())
	}
	b.WriteString(") {\n")

	for i := range s.NonPositional {
		b.WriteString(s.NonPositional[i].declIsset())
	}
	for i := range s.Positional {
		b.WriteString(s.Positional[i].declIsset())
	}
	for i := range s.NonPositional {
		b.WriteString(s.NonPositional[i].defDefault())
	}
	for i := range s.Positional {
		b.WriteString(s.Positional[i].defDefault())
	}

	b.WriteString("\tstatic struct option longopts[] = {\n")
	for i := range s.NonPositional {
		b.WriteString(s.NonPositional[i].longOption(sels[i]))
	}
	b.WriteString("\t\t{\"help\", 0, 0, 'h'},\n\t\t{0, 0, 0, 0}\n\t};\n")

	var optstring strings.Builder
	for i := range s.NonPositional {
		o := &s.NonPositional[i]
		if o.Short == "" {
			continue
		}
		optstring.WriteString(o.Short)
		if !o.Flag {
			optstring.WriteByte(':')
		}
	}
	optstring.WriteByte(helpSelector)

	fmt.Fprintf(&b, "\tint ch;\n\twhile ((ch = getopt_long(argc, argv, \"%s\", longopts, NULL)) != -1) {\n\t\tswitch (ch) {\n",
		optstring.String())
	for i := range s.NonPositional {
		fmt.Fprintf(&b, "\t\tcase %d:\n%s\t\t\tbreak;\n", sels[i], s.NonPositional[i].assign())
	}
	b.WriteString("\t\tcase 0:\n\t\t\tbreak;\n\t\tcase 'h':\n\t\tdefault:\n\t\t\tusage(argv[0]);\n\t\t\texit(1);\n\t\t}\n\t}\n")

	for i := range s.NonPositional {
		b.WriteString(s.NonPositional[i].postLoop())
	}

	var required, optional []*Positional
	var multi *Positional
	for i := range s.Positional {
		p := &s.Positional[i]
		switch {
		case p.Multi:
			multi = p
		case p.Required:
			required = append(required, p)
		default:
			optional = append(optional, p)
		}
	}
	nrequired := len(required)
	if multi != nil && multi.Required {
		nrequired++
	}

	fmt.Fprintf(&b, "\n\tif (argc-optind < %d) {\n\t\tusage(argv[0]);\n\t\texit(1);\n\t}\n\targv += optind;\n\targc -= optind;\n\n",
		nrequired)

	for _, p := range required {
		b.WriteString(p.assign())
		b.WriteString("\targv++;\n")
	}
	fmt.Fprintf(&b, "\targc -= %d;\n\n", len(required))
	// Always empty by construction, required parameters cannot carry
	// defaults. Kept for symmetry with the other passes.
	for _, p := range required {
		b.WriteString(p.postLoop())
	}

	for _, p := range optional {
		b.WriteString("\tif (argc > 0) {\n")
		b.WriteString(p.assign())
		b.WriteString("\t\targv++; argc--;\n\t}\n")
	}
	for _, p := range optional {
		b.WriteString(p.postLoop())
	}

	if multi != nil {
		if multi.Required {
			b.WriteString(multi.assign())
		} else {
			b.WriteString("\tif (argc > 0) {\n")
			b.WriteString(multi.assign())
			b.WriteString("\t}\n")
		}
		b.WriteString(multi.postLoop())
	}

	b.WriteString("}\n")
	return b.String()
}

// cMain emits the entry-point skeleton: one storage declaration per item,
// the parse_args call, and a marked insertion point for the caller's code.
func (s *Spec) cMain() string {
	var b strings.Builder
	b.WriteString("int main(int argc, char **argv) {\n")
	for i := range s.Positional {
		b.WriteString(s.Positional[i].declMain())
	}
	for i := range s.NonPositional {
		b.WriteString(s.NonPositional[i].declMain())
	}
	b.WriteString("\n\tparse_args(argc, argv")
	for i := range s.Positional {
		b.WriteString(s.Positional[i].param())
	}
	for i := range s.NonPositional {
		b.WriteString(s.NonPositional[i].param())
	}
	b.WriteString(");\n\n\t/* call your code here */\n\treturn 0;\n}\n")
	return b.String()
}
