package display

import (
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestBuildUsage_Entries(t *testing.T) {
	u := UsageSpec{
		Line: " IN_FILE [WORD...]",
		Entries: []Entry{
			{Lead: "IN_FILE", Descr: "an input file"},
			{Lead: "-h  --help", Descr: "print this usage and exit"},
			{Lead: "-q  --quiet"},
		},
	}
	out := BuildUsage(u)

	assert.StringContains(t, out, "static void usage(const char *progname) {")
	assert.StringContains(t, out, `usage: %s [options] IN_FILE [WORD...]\n`)
	assert.StringContains(t, out, "\t       \"  IN_FILE\\n\"\n")
	assert.StringContains(t, out, "\t       \"        an input file\\n\"\n")
	assert.StringContains(t, out, "\t       \"  -q  --quiet\\n\"\n")
	assert.StringContains(t, out, "\t       );\n}\n")
}

func TestBuildUsage_QuotesDescription(t *testing.T) {
	u := UsageSpec{Entries: []Entry{
		{Lead: "NAME", Descr: `say "hello"`},
	}}
	out := BuildUsage(u)
	assert.StringContains(t, out, `say \"hello\"`)
}

func TestBuildUsage_NoDescriptionNoSecondLine(t *testing.T) {
	u := UsageSpec{Entries: []Entry{{Lead: "NAME"}}}
	out := BuildUsage(u)
	assert.NotStringContains(t, out, "\"        ")
}

func TestBuildVersion_Fallback(t *testing.T) {
	assert.StringContains(t, BuildVersion("argen"), "argen")
}

func TestBuildVersion_Linked(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "1.2.3"
	assert.Equal(t, "argen v1.2.3", BuildVersion("argen"))
}
