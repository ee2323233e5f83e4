package spec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"

	"github.com/new-mentat/argen/core"
)

const tomlDoc = `
[[positional]]
c_var = "in_file"
c_type = "char*"
help_name = "IN_FILE"
required = true

[[positional]]
c_var = "words"
c_type = "char*"
help_name = "WORD"
multi = true

[[non_positional]]
c_var = "block_size"
c_type = "int"
long = "block-size"
short = "b"
default = "12"
aliases = ["bs"]

[[non_positional]]
c_var = "quiet"
c_type = "int"
long = "quiet"
flag = true
`

func TestDecode_TOML(t *testing.T) {
	s, err := Decode(strings.NewReader(tomlDoc), TOML)
	vital.Nil(t, err)

	assert.Equal(t, 2, len(s.Positional))
	assert.Equal(t, "in_file", s.Positional[0].CVar)
	assert.Equal(t, core.CChars, s.Positional[0].CType)
	assert.True(t, s.Positional[0].Required)
	assert.True(t, s.Positional[1].Multi)

	assert.Equal(t, 2, len(s.NonPositional))
	assert.Equal(t, "block-size", s.NonPositional[0].Long)
	assert.Equal(t, "b", s.NonPositional[0].Short)
	assert.NotNil(t, s.NonPositional[0].Default)
	assert.Equal(t, "12", *s.NonPositional[0].Default)
	assert.Equal(t, "bs", s.NonPositional[0].Aliases[0])
	assert.True(t, s.NonPositional[1].Flag)

	assert.Nil(t, s.Validate())
}

func TestDecode_JSON(t *testing.T) {
	doc := `{
		"positional": [
			{"c_var": "name", "c_type": "char*", "help_name": "NAME", "default": "world"}
		],
		"non_positional": [
			{"c_var": "count", "c_type": "int", "long": "count", "help_name": "num"}
		]
	}`
	s, err := Decode(strings.NewReader(doc), JSON)
	vital.Nil(t, err)
	assert.Equal(t, "name", s.Positional[0].CVar)
	assert.Equal(t, "world", *s.Positional[0].Default)
	assert.Equal(t, core.CInt, s.NonPositional[0].CType)
}

func TestDecode_YAML(t *testing.T) {
	doc := `
positional:
  - c_var: name
    c_type: char*
    help_name: NAME
non_positional:
  - c_var: verbose
    c_type: int
    long: verbose
    flag: true
`
	s, err := Decode(strings.NewReader(doc), YAML)
	vital.Nil(t, err)
	assert.Equal(t, core.CChars, s.Positional[0].CType)
	assert.True(t, s.NonPositional[0].Flag)
}

func TestDecode_UnknownCType(t *testing.T) {
	doc := `{"positional": [{"c_var": "x", "c_type": "float", "help_name": "X"}], "non_positional": []}`
	_, err := Decode(strings.NewReader(doc), JSON)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "unknown c_type")
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("[[positional"), TOML)
	assert.NotNil(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, TOML, FormatFromPath("cli.toml"))
	assert.Equal(t, JSON, FormatFromPath("cli.json"))
	assert.Equal(t, YAML, FormatFromPath("cli.yaml"))
	assert.Equal(t, YAML, FormatFromPath("cli.yml"))
	assert.Equal(t, TOML, FormatFromPath("cli.spec"))
}

func TestFormatFromName(t *testing.T) {
	f, err := FormatFromName("YAML")
	assert.Nil(t, err)
	assert.Equal(t, YAML, f)

	_, err = FormatFromName("ini")
	assert.NotNil(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.toml")
	vital.Nil(t, os.WriteFile(path, []byte(tomlDoc), 0o644))

	s, err := Load(path)
	vital.Nil(t, err)
	assert.Equal(t, "in_file", s.Positional[0].CVar)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NotNil(t, err)
}
