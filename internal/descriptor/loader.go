package descriptor

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied to descriptor files.
const (
	DefaultVersion = "1"
	DefaultRuntime = "::gc"
)

// File is a parsed descriptor file.
type File struct {
	Version      string
	Runtime      string // path prefix of the capability traits, e.g. "::gc"
	MarkerSuffix string // empty means the generator default
	StrictNames  bool
	TraceLeading bool
	Types        []Entry
}

// Entry is one described type and the capabilities requested for it.
type Entry struct {
	Descriptor *Descriptor
	Derive     []string
}

// LoadFile loads and parses a YAML descriptor file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var spec fileSpec

	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor YAML: %w", err)
	}

	f := &File{
		Version:      spec.Version,
		Runtime:      spec.Runtime,
		MarkerSuffix: spec.MarkerSuffix,
		StrictNames:  spec.StrictNames,
		TraceLeading: spec.TraceLeading,
	}

	for i := range spec.Types {
		d, err := spec.Types[i].descriptor()
		if err != nil {
			return nil, fmt.Errorf("types[%d] %s: %w", i, spec.Types[i].Name, err)
		}

		f.Types = append(f.Types, Entry{Descriptor: d, Derive: spec.Types[i].Derive})
	}

	applyDefaults(f)

	return f, nil
}

// applyDefaults fills in default values for optional header fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	if f.Runtime == "" {
		f.Runtime = DefaultRuntime
	}
}

// descriptor converts a typeSpec into a Descriptor.
func (ts *typeSpec) descriptor() (*Descriptor, error) {
	kind, err := parseKind(ts.Kind)
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		Name:       ts.Name,
		Kind:       kind,
		Visibility: ts.Visibility,
	}

	for _, s := range ts.Scopes {
		d.Scopes = append(d.Scopes, strings.TrimPrefix(strings.TrimSpace(s), "'"))
	}

	for _, p := range ts.Types {
		d.Types = append(d.Types, Param(p))
	}

	for _, w := range ts.Where {
		d.Where = append(d.Where, Predicate(w))
	}

	switch kind {
	case KindStruct:
		if len(ts.Variants) > 0 {
			return nil, fmt.Errorf("struct declares variants; list its fields under \"fields\"")
		}

		v, err := buildVariant("", ts.Style, ts.Fields)
		if err != nil {
			return nil, err
		}

		d.Variants = []Variant{v}

	case KindEnum:
		if len(ts.Fields) > 0 || ts.Style != "" {
			return nil, fmt.Errorf("enum declares fields; list them under its variants")
		}

		for _, vs := range ts.Variants {
			v, err := buildVariant(vs.Name, vs.Style, vs.Fields)
			if err != nil {
				return nil, fmt.Errorf("variant %s: %w", vs.Name, err)
			}

			d.Variants = append(d.Variants, v)
		}
	}

	return d, nil
}

func buildVariant(name, style string, specs []fieldSpec) (Variant, error) {
	v := Variant{Name: name}
	for _, fs := range specs {
		v.Fields = append(v.Fields, Field(fs))
	}

	s, err := parseStyle(style, v.Fields)
	if err != nil {
		return Variant{}, err
	}

	v.Style = s

	return v, nil
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "", "struct":
		return KindStruct, nil
	case "enum":
		return KindEnum, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (want struct or enum)", s)
	}
}

// parseStyle resolves an explicit style, or infers one from the fields:
// no fields is a unit variant, an unnamed first field a tuple variant.
func parseStyle(s string, fields []Field) (VariantStyle, error) {
	switch s {
	case "named":
		return StyleNamed, nil
	case "tuple":
		return StyleTuple, nil
	case "unit":
		return StyleUnit, nil
	case "":
	default:
		return 0, fmt.Errorf("unknown style %q (want named, tuple or unit)", s)
	}

	switch {
	case len(fields) == 0:
		return StyleUnit, nil
	case fields[0].Name == "":
		return StyleTuple, nil
	default:
		return StyleNamed, nil
	}
}
