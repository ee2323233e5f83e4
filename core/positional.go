package core

import (
	"fmt"

	"github.com/new-mentat/argen/errors"
	"github.com/new-mentat/argen/internal/common"
)

// Positional is an argument identified by its place in the non-option
// argument list. Ordering inside Spec.Positional is significant: required
// parameters first, then optional ones, with an optional Multi parameter
// allowed only in last place.
type Positional struct {
	CVar      string  `toml:"c_var" json:"c_var" yaml:"c_var"`
	CType     CType   `toml:"c_type" json:"c_type" yaml:"c_type"`
	HelpName  string  `toml:"help_name" json:"help_name" yaml:"help_name"`
	HelpDescr string  `toml:"help_descr,omitempty" json:"help_descr,omitempty" yaml:"help_descr,omitempty"`
	Required  bool    `toml:"required,omitempty" json:"required,omitempty" yaml:"required,omitempty"`
	Default   *string `toml:"default,omitempty" json:"default,omitempty" yaml:"default,omitempty"`

	// Multi marks the parameter as consuming every remaining non-option
	// argument. The generated storage is char** plus a size_t companion,
	// and a default occupies the first (and only) entry.
	Multi bool `toml:"multi,omitempty" json:"multi,omitempty" yaml:"multi,omitempty"`
}

func (p *Positional) hasDefault() bool { return p.Default != nil }

// tracked reports whether the parameter gets an __isset flag: only optional
// parameters with a default need one.
func (p *Positional) tracked() bool { return !p.Required && p.hasDefault() }

// arg is the parse_args parameter declaration fragment. Starts with ", ".
func (p *Positional) arg() string {
	if p.Multi {
		return fmt.Sprintf(", %s **%s, size_t *%s__size", p.CType, p.CVar, p.CVar)
	}
	return fmt.Sprintf(", %s *%s", p.CType, p.CVar)
}

// param is the parse_args call-site fragment. Starts with ", ".
func (p *Positional) param() string {
	if p.Multi {
		return fmt.Sprintf(", &%s, &%s__size", p.CVar, p.CVar)
	}
	return fmt.Sprintf(", &%s", p.CVar)
}

// declMain declares the backing storage in the main skeleton.
func (p *Positional) declMain() string {
	if p.Multi {
		return fmt.Sprintf("\t%s *%s;\n\tsize_t %s__size;\n", p.CType, p.CVar, p.CVar)
	}
	return fmt.Sprintf("\t%s %s;\n", p.CType, p.CVar)
}

func (p *Positional) declIsset() string {
	if !p.tracked() {
		return ""
	}
	return fmt.Sprintf("\tint %s__isset = 0;\n", p.CVar)
}

func (p *Positional) defDefault() string {
	if !p.tracked() {
		return ""
	}
	return fmt.Sprintf("\tstatic %s %s__default = %s;\n", p.CType, p.CVar, cLiteral(p.CType, *p.Default))
}

// assign consumes argv into the parameter. Required parameters sit at one
// indentation level, optional ones inside an if block.
func (p *Positional) assign() string {
	tab := "\t\t"
	if p.Required {
		tab = "\t"
	}
	isset := ""
	if p.tracked() {
		isset = fmt.Sprintf("\t\t%s__isset = 1;\n", p.CVar)
	}
	if p.Multi {
		return fmt.Sprintf("%s*%s = argv;\n%s*%s__size = argc;\n%s", tab, p.CVar, tab, p.CVar, isset)
	}
	if p.CType == CInt {
		return fmt.Sprintf("%s*%s = atoi(argv[0]);\n%s", tab, p.CVar, isset)
	}
	return fmt.Sprintf("%s*%s = argv[0];\n%s", tab, p.CVar, isset)
}

// postLoop substitutes the default when the parameter was never consumed.
// Required parameters produce nothing: they always receive a value or the
// argument-count gate has already exited.
func (p *Positional) postLoop() string {
	if !p.tracked() {
		return ""
	}
	if p.Multi {
		return fmt.Sprintf("\tif (!%s__isset) {\n\t\t*%s = &%s__default;\n\t\t*%s__size = 1;\n\t}\n",
			p.CVar, p.CVar, p.CVar, p.CVar)
	}
	return fmt.Sprintf("\tif (!%s__isset) {\n\t\t*%s = %s__default;\n\t}\n", p.CVar, p.CVar, p.CVar)
}

// validate checks the parameter's own invariants. Cross-item ordering is
// checked by Spec.Validate.
func (p *Positional) validate() error {
	if !common.IsIdentifier(p.CVar) {
		return errors.NewBadIdentifier(p.CVar)
	}
	if p.Required && p.hasDefault() {
		return errors.NewRequiredDefault(p.CVar)
	}
	if p.Multi && p.CType != CChars {
		return errors.NewMultiNotString(p.CVar)
	}
	return nil
}

// cLiteral renders a default value as a C initializer for the given type.
func cLiteral(t CType, v string) string {
	if t == CInt {
		return v
	}
	return fmt.Sprintf("\"%s\\0\"", common.CQuote(v))
}
