package descriptor

import (
	"gc-derive/internal/common"
	"gc-derive/internal/names"
)

// Kind is the declaration kind of a described type.
type Kind int

const (
	KindStruct Kind = iota // product type, exactly one unnamed variant
	KindEnum               // sum type, one named variant per case
)

// String returns the keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	default:
		return common.UnknownStr
	}
}

// VariantStyle is how a variant declares its fields.
type VariantStyle int

const (
	StyleNamed VariantStyle = iota // { a: A, b: B }
	StyleTuple                     // (A, B)
	StyleUnit                      // no fields
)

// String returns the style name.
func (s VariantStyle) String() string {
	switch s {
	case StyleNamed:
		return "named"
	case StyleTuple:
		return "tuple"
	case StyleUnit:
		return "unit"
	default:
		return common.UnknownStr
	}
}

// Param is a generic type parameter with its inline bounds.
type Param struct {
	Name   string
	Bounds []string
}

// Predicate is a where-clause entry: Subject: Bounds[0] + Bounds[1] + ...
type Predicate struct {
	Subject string
	Bounds  []string
}

// Field is a single field of a variant. Tuple fields have no name.
type Field struct {
	Name string
	Type string
}

// Variant is one binding group. Struct variants have an empty name.
type Variant struct {
	Name   string
	Style  VariantStyle
	Fields []Field
}

// Descriptor is the structural description of a type.
type Descriptor struct {
	Name       string
	Kind       Kind
	Visibility string
	Scopes     []string // scope (lifetime) parameters without the ' sigil
	Types      []Param
	Where      []Predicate
	Variants   []Variant
}

// TypeNames returns the names of the generic type parameters in order.
func (d *Descriptor) TypeNames() []string {
	return common.Map(d.Types, func(p Param) string { return p.Name })
}

// Declared returns every identifier the declaration introduces: the type
// name, its scope parameters and its type parameters.
func (d *Descriptor) Declared() names.Set {
	s := names.NewSet(d.Scopes, d.TypeNames())
	s.Add(d.Name)

	return s
}

// IsEnum reports whether the type is a sum type.
func (d *Descriptor) IsEnum() bool {
	return d.Kind == KindEnum
}

// NewStruct builds a struct descriptor with named fields.
// An empty field list yields a unit struct.
func NewStruct(name string, fields ...Field) *Descriptor {
	style := StyleNamed
	if len(fields) == 0 {
		style = StyleUnit
	}

	return &Descriptor{
		Name:     name,
		Kind:     KindStruct,
		Variants: []Variant{{Style: style, Fields: fields}},
	}
}

// NewEnum builds an enum descriptor from its variants.
func NewEnum(name string, variants ...Variant) *Descriptor {
	return &Descriptor{
		Name:     name,
		Kind:     KindEnum,
		Variants: variants,
	}
}

// WithScopes sets the scope parameters and returns d.
func (d *Descriptor) WithScopes(scopes ...string) *Descriptor {
	d.Scopes = scopes
	return d
}

// WithTypes sets the type parameters from their names and returns d.
func (d *Descriptor) WithTypes(types ...string) *Descriptor {
	d.Types = common.Map(types, func(n string) Param { return Param{Name: n} })
	return d
}
