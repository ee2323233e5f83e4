// Package spec decodes argument specification documents into the core
// model. TOML is the canonical authoring format; JSON and YAML documents
// with the same shape are accepted as well.
package spec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/new-mentat/argen/core"
)

// Format identifies a spec document encoding.
type Format int

const (
	TOML Format = iota
	JSON
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "toml"
	}
}

// FormatFromName resolves a user-supplied format name.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("unknown spec format %q (want toml, json, or yaml)", name)
}

// FormatFromPath picks a Format from the file extension, defaulting to TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// Decode reads one spec document from r. Structural failures (malformed
// document, unknown c_type tag) surface here, before the model is
// validated.
func Decode(r io.Reader, f Format) (*core.Spec, error) {
	var s core.Spec
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode json spec: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode yaml spec: %w", err)
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode toml spec: %w", err)
		}
	}
	return &s, nil
}

// Load reads and decodes the spec file at path, picking the format from
// the file extension.
func Load(path string) (*core.Spec, error) {
	return LoadFormat(path, FormatFromPath(path))
}

// LoadFormat reads and decodes the spec file at path as the given format.
func LoadFormat(path string, f Format) (*core.Spec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
