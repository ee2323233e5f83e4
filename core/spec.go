package core

import (
	"strings"

	"github.com/new-mentat/argen/display"
	"github.com/new-mentat/argen/errors"
)

// includes lists the headers every generated program depends on.
var includes = [...]string{"stdlib", "stdio", "string", "getopt"}

// Spec is the in-memory model of one command-line interface: an ordered
// sequence of positional parameters plus a collection of named options.
// It is constructed once per generation run, validated once, and consumed
// read-only by the selector allocator and the emitter.
type Spec struct {
	Positional    []Positional `toml:"positional" json:"positional" yaml:"positional"`
	NonPositional []Option     `toml:"non_positional" json:"non_positional" yaml:"non_positional"`
}

// Validate checks every item and the cross-item invariants, stopping at the
// first violation. The returned error is one of the types in the errors
// package.
func (s *Spec) Validate() error {
	sawOptional := false
	for i := range s.Positional {
		p := &s.Positional[i]
		if err := p.validate(); err != nil {
			return err
		}
		if sawOptional && p.Required {
			return errors.NewRequiredAfterOptional(p.CVar)
		}
		if p.Multi && i != len(s.Positional)-1 {
			return errors.NewMultiNotLast(p.CVar)
		}
		if !p.Required {
			sawOptional = true
		}
	}
	for i := range s.NonPositional {
		if err := s.NonPositional[i].validate(); err != nil {
			return err
		}
	}

	// A shared c_var would generate C that declares the same variable
	// twice, so reject it here rather than in the compiler's lap.
	seen := make(map[string]bool, len(s.Positional)+len(s.NonPositional))
	for i := range s.Positional {
		if seen[s.Positional[i].CVar] {
			return errors.NewDuplicateVar(s.Positional[i].CVar)
		}
		seen[s.Positional[i].CVar] = true
	}
	for i := range s.NonPositional {
		if seen[s.NonPositional[i].CVar] {
			return errors.NewDuplicateVar(s.NonPositional[i].CVar)
		}
		seen[s.NonPositional[i].CVar] = true
	}
	return nil
}

// cHeaders emits the include directives.
func (s *Spec) cHeaders() string {
	var b strings.Builder
	for _, h := range includes {
		b.WriteString("#include<" + h + ".h>\n")
	}
	return b.String()
}

// usageSpec assembles the display model for the generated usage function:
// the positional summary appended to the usage line, then one help entry
// per positional, the built-in help entry, and one per option.
func (s *Spec) usageSpec() display.UsageSpec {
	var line strings.Builder
	open := 0
	for i := range s.Positional {
		p := &s.Positional[i]
		line.WriteByte(' ')
		if !p.Required {
			line.WriteByte('[')
			open++
		}
		line.WriteString(p.HelpName)
		if p.Multi {
			line.WriteString("...")
		}
	}
	line.WriteString(strings.Repeat("]", open))

	entries := make([]display.Entry, 0, len(s.Positional)+len(s.NonPositional)+1)
	for i := range s.Positional {
		p := &s.Positional[i]
		entries = append(entries, display.Entry{Lead: p.HelpName, Descr: p.HelpDescr})
	}
	entries = append(entries, display.Entry{Lead: "-h  --help", Descr: "print this usage and exit"})
	for i := range s.NonPositional {
		entries = append(entries, s.NonPositional[i].usageEntry())
	}
	return display.UsageSpec{Line: line.String(), Entries: entries}
}
