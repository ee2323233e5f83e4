package display

import (
	"strings"

	"github.com/new-mentat/argen/internal/common"
)

// UsageSpec is the display model for the generated usage() function: the
// positional summary appended to the usage line, and the help block entries
// in display order.
type UsageSpec struct {
	Line    string
	Entries []Entry
}

// Entry is one help block line: a lead column, and an optional description
// printed indented on the following line.
type Entry struct {
	Lead  string
	Descr string
}

// BuildUsage renders the C usage function for the generated program. Each
// entry becomes one string literal line of the printf, with descriptions
// quoted for embedding in C source.
func BuildUsage(u UsageSpec) string {
	var b strings.Builder
	b.WriteString("static void usage(const char *progname) {\n")
	b.WriteString("\tprintf(\"usage: %s [options]" + u.Line + "\\n%s\", progname,\n")
	for _, e := range u.Entries {
		b.WriteString("\t       \"  " + e.Lead + "\\n\"\n")
		if e.Descr != "" {
			b.WriteString("\t       \"        " + common.CQuote(e.Descr) + "\\n\"\n")
		}
	}
	b.WriteString("\t       );\n}\n")
	return b.String()
}
