package descriptor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// fileSpec is the on-disk shape of a descriptor file.
type fileSpec struct {
	Version      string     `yaml:"version"`
	Runtime      string     `yaml:"runtime"`
	MarkerSuffix string     `yaml:"marker_suffix"`
	StrictNames  bool       `yaml:"strict_names"`
	TraceLeading bool       `yaml:"trace_leading"`
	Types        []typeSpec `yaml:"types"`
}

type typeSpec struct {
	Name       string          `yaml:"name"`
	Kind       string          `yaml:"kind"`
	Visibility string          `yaml:"visibility"`
	Scopes     []string        `yaml:"scopes"`
	Types      []paramSpec     `yaml:"types"`
	Where      []predicateSpec `yaml:"where"`
	Derive     []string        `yaml:"derive"`
	Style      string          `yaml:"style"`
	Fields     []fieldSpec     `yaml:"fields"`
	Variants   []variantSpec   `yaml:"variants"`
}

type variantSpec struct {
	Name   string      `yaml:"name"`
	Style  string      `yaml:"style"`
	Fields []fieldSpec `yaml:"fields"`
}

// paramSpec accepts "T: Bound + Other" or {name: T, bounds: [Bound, Other]}.
type paramSpec Param

// UnmarshalYAML implements custom YAML unmarshaling for paramSpec.
func (p *paramSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseParam(node.Value)
		if err != nil {
			return err
		}

		*p = paramSpec(parsed)

		return nil

	case yaml.MappingNode:
		var raw struct {
			Name   string   `yaml:"name"`
			Bounds []string `yaml:"bounds"`
		}

		if err := node.Decode(&raw); err != nil {
			return err
		}

		*p = paramSpec{Name: raw.Name, Bounds: raw.Bounds}

		return nil

	default:
		return fmt.Errorf("line %d: expected type parameter string or mapping", node.Line)
	}
}

// predicateSpec accepts "Subject: Bound" or {subject: S, bounds: [...]}.
type predicateSpec Predicate

// UnmarshalYAML implements custom YAML unmarshaling for predicateSpec.
func (p *predicateSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParsePredicate(node.Value)
		if err != nil {
			return err
		}

		*p = predicateSpec(parsed)

		return nil

	case yaml.MappingNode:
		var raw struct {
			Subject string   `yaml:"subject"`
			Bounds  []string `yaml:"bounds"`
		}

		if err := node.Decode(&raw); err != nil {
			return err
		}

		*p = predicateSpec{Subject: raw.Subject, Bounds: raw.Bounds}

		return nil

	default:
		return fmt.Errorf("line %d: expected where predicate string or mapping", node.Line)
	}
}

// fieldSpec accepts "name: Type", "Type" or {name: n, type: T}.
type fieldSpec Field

// UnmarshalYAML implements custom YAML unmarshaling for fieldSpec.
func (f *fieldSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseField(node.Value)
		if err != nil {
			return err
		}

		*f = fieldSpec(parsed)

		return nil

	case yaml.MappingNode:
		var raw struct {
			Name string `yaml:"name"`
			Type string `yaml:"type"`
		}

		if err := node.Decode(&raw); err != nil {
			return err
		}

		*f = fieldSpec{Name: raw.Name, Type: raw.Type}

		return nil

	default:
		return fmt.Errorf("line %d: expected field string or mapping", node.Line)
	}
}
