package core

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CType is the C type of a generated variable. Exactly two types are
// supported: char* and int.
type CType int

const (
	CChars CType = iota // char*
	CInt                // int
)

func (t CType) String() string {
	if t == CInt {
		return "int"
	}
	return "char*"
}

// UnmarshalText decodes the spec tags "char*" and "int". TOML and JSON
// decoders pick this up automatically.
func (t *CType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "char*":
		*t = CChars
	case "int":
		*t = CInt
	default:
		return fmt.Errorf("unknown c_type %q (want \"char*\" or \"int\")", text)
	}
	return nil
}

// UnmarshalYAML routes YAML scalars through UnmarshalText, which the yaml
// package does not do on its own.
func (t *CType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}
