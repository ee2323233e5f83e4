package argen_test

import (
	stderrs "errors"
	"strings"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"

	"github.com/new-mentat/argen"
	clierr "github.com/new-mentat/argen/errors"
)

func str(s string) *string { return &s }

func TestGenerate_RoundTrip(t *testing.T) {
	spec := &argen.Spec{
		Positional: []argen.Positional{
			{CVar: "in_file", CType: argen.CChars, HelpName: "IN_FILE", Required: true},
		},
		NonPositional: []argen.Option{
			{CVar: "quiet", CType: argen.CInt, Long: "quiet", Short: "q", Flag: true},
		},
	}

	src, err := argen.Generate(spec)
	vital.Nil(t, err)
	assert.StringContains(t, src, "#include<getopt.h>")
	assert.StringContains(t, src, "static void usage(const char *progname)")
	assert.StringContains(t, src, "void parse_args(int argc, char **argv, char* *in_file, int *quiet)")
	assert.StringContains(t, src, "int main(int argc, char **argv)")

	var b strings.Builder
	vital.Nil(t, argen.GenerateTo(&b, spec))
	assert.Equal(t, src, b.String())
}

func TestGenerate_TypedErrors(t *testing.T) {
	spec := &argen.Spec{
		Positional: []argen.Positional{
			{CVar: "greeting", CType: argen.CChars, HelpName: "GREETING", Default: str("world")},
			{CVar: "name", CType: argen.CChars, HelpName: "NAME", Required: true},
		},
	}
	_, err := argen.Generate(spec)
	var e clierr.RequiredAfterOptionalError
	assert.True(t, stderrs.As(err, &e))
	assert.Equal(t, "name", e.Var)
}
