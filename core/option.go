package core

import (
	"fmt"
	"strings"

	"github.com/new-mentat/argen/display"
	"github.com/new-mentat/argen/errors"
	"github.com/new-mentat/argen/internal/common"
)

// Option is an argument identified by a long name, and optionally a short
// single-character form, supplied with a leading dash on the command line.
type Option struct {
	CVar      string   `toml:"c_var" json:"c_var" yaml:"c_var"`
	CType     CType    `toml:"c_type" json:"c_type" yaml:"c_type"`
	Long      string   `toml:"long" json:"long" yaml:"long"`
	HelpName  string   `toml:"help_name,omitempty" json:"help_name,omitempty" yaml:"help_name,omitempty"`
	HelpDescr string   `toml:"help_descr,omitempty" json:"help_descr,omitempty" yaml:"help_descr,omitempty"`
	Aliases   []string `toml:"aliases,omitempty" json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Short     string   `toml:"short,omitempty" json:"short,omitempty" yaml:"short,omitempty"`
	Required  bool     `toml:"required,omitempty" json:"required,omitempty" yaml:"required,omitempty"`
	Default   *string  `toml:"default,omitempty" json:"default,omitempty" yaml:"default,omitempty"`

	// Flag marks a boolean switch: the option takes no value and its
	// presence sets an int variable to 1.
	Flag bool `toml:"flag,omitempty" json:"flag,omitempty" yaml:"flag,omitempty"`
}

func (o *Option) hasDefault() bool { return o.Default != nil }

// arg is the parse_args parameter declaration fragment. Starts with ", ".
func (o *Option) arg() string {
	return fmt.Sprintf(", %s *%s", o.CType, o.CVar)
}

// param is the parse_args call-site fragment. Starts with ", ".
func (o *Option) param() string {
	return fmt.Sprintf(", &%s", o.CVar)
}

// declMain declares the backing storage in the main skeleton.
func (o *Option) declMain() string {
	return fmt.Sprintf("\t%s %s;\n", o.CType, o.CVar)
}

// declIsset declares the tracking flag. Every non-flag option is tracked:
// the flag drives both requiredness enforcement and default substitution
// after the loop.
func (o *Option) declIsset() string {
	if o.Flag {
		return ""
	}
	return fmt.Sprintf("\tint %s__isset = 0;\n", o.CVar)
}

func (o *Option) defDefault() string {
	if o.Flag || !o.hasDefault() {
		return ""
	}
	return fmt.Sprintf("\tstatic %s %s__default = %s;\n", o.CType, o.CVar, cLiteral(o.CType, *o.Default))
}

// assign is the switch-case body consuming optarg.
func (o *Option) assign() string {
	if o.Flag {
		return fmt.Sprintf("\t\t\t*%s = 1;\n", o.CVar)
	}
	conv := "optarg"
	if o.CType == CInt {
		conv = "atoi(optarg)"
	}
	return fmt.Sprintf("\t\t\t*%s = %s;\n\t\t\t%s__isset = 1;\n", o.CVar, conv, o.CVar)
}

// longOption renders one dispatch table row as per getopt_long(3).
func (o *Option) longOption(sel byte) string {
	arg := "required_argument"
	if o.Flag {
		arg = "no_argument"
	}
	return fmt.Sprintf("\t\t{\"%s\", %s, 0, %d},\n", o.Long, arg, sel)
}

// postLoop enforces requiredness or substitutes the default after the
// option loop.
func (o *Option) postLoop() string {
	if o.Required {
		return fmt.Sprintf("\tif (!%s__isset) {\n\t\tusage(argv[0]);\n\t\texit(1);\n\t}\n", o.CVar)
	}
	if !o.hasDefault() {
		return ""
	}
	return fmt.Sprintf("\tif (!%s__isset) {\n\t\t*%s = %s__default;\n\t}\n", o.CVar, o.CVar, o.CVar)
}

// usageEntry renders the option's help block entry: short form if present,
// long form, value placeholder unless it is a flag, then aliases.
func (o *Option) usageEntry() display.Entry {
	var lead strings.Builder
	if o.Short != "" {
		lead.WriteString("-" + o.Short)
	} else {
		lead.WriteString("  ")
	}
	lead.WriteString("  --" + o.Long)
	if !o.Flag {
		name := o.HelpName
		if name == "" {
			name = "arg"
		}
		lead.WriteString(" <" + name + ">")
	}
	if len(o.Aliases) > 0 {
		lead.WriteString("  (aliased:")
		for _, a := range o.Aliases {
			lead.WriteString(" --" + a)
		}
		lead.WriteString(")")
	}
	return display.Entry{Lead: lead.String(), Descr: o.HelpDescr}
}

func (o *Option) validate() error {
	if !common.IsIdentifier(o.CVar) {
		return errors.NewBadIdentifier(o.CVar)
	}
	if common.HasSpace(o.Long) {
		return errors.NewBadLong(o.CVar, o.Long)
	}
	if o.Flag {
		if o.CType != CInt {
			return errors.NewFlagType(o.CVar)
		}
		if o.Required {
			return errors.NewFlagRequired(o.CVar)
		}
		if o.hasDefault() {
			return errors.NewFlagDefault(o.CVar)
		}
	}
	if o.Required && o.hasDefault() {
		return errors.NewRequiredDefault(o.CVar)
	}
	if o.Short != "" && !common.IsShort(o.Short) {
		return errors.NewBadShort(o.CVar, o.Short)
	}
	for _, a := range o.Aliases {
		if common.HasSpace(a) {
			return errors.NewBadAlias(o.CVar, a)
		}
	}
	return nil
}
