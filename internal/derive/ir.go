package derive

import (
	"strings"

	"gc-derive/internal/common"
	"gc-derive/internal/descriptor"
)

// TypeRef is a structural type expression: Path<'scopes..., args...>.
type TypeRef struct {
	Path   string
	Scopes []string // without the ' sigil
	Args   []TypeRef
}

// Named returns a TypeRef with no generic arguments.
func Named(path string) TypeRef {
	return TypeRef{Path: path}
}

// Generic returns a TypeRef whose type arguments are the named parameters.
func Generic(path string, scopes []string, params []string) TypeRef {
	return TypeRef{
		Path:   path,
		Scopes: scopes,
		Args:   common.Map(params, Named),
	}
}

// String renders the type expression, e.g. Node<'a, C, Gc<'a, T>>.
func (t TypeRef) String() string {
	if len(t.Scopes) == 0 && len(t.Args) == 0 {
		return t.Path
	}

	parts := make([]string, 0, len(t.Scopes)+len(t.Args))
	for _, s := range t.Scopes {
		parts = append(parts, "'"+s)
	}

	for _, a := range t.Args {
		parts = append(parts, a.String())
	}

	return t.Path + "<" + strings.Join(parts, ", ") + ">"
}

// Generics is the generic parameter list of an impl.
type Generics struct {
	Scopes []string
	Types  []descriptor.Param
}

// IsEmpty reports whether there are no parameters at all.
func (g Generics) IsEmpty() bool {
	return len(g.Scopes) == 0 && len(g.Types) == 0
}

// AssocType binds an associated type, e.g. type Aged = Node<'a>.
type AssocType struct {
	Name string
	Type TypeRef
}

// Pattern destructures one variant, binding every field by reference.
type Pattern struct {
	Path     string // Node::Leaf for enum variants, Node for structs
	Style    descriptor.VariantStyle
	Bindings []Binding
}

// Binding is one field bound in a pattern.
type Binding struct {
	Field string // field name; empty for tuple fields
	Var   string // local variable bound by reference
}

// MatchArm is one arm of the trace body.
type MatchArm struct {
	Pattern Pattern
	Visits  []string // bound variables whose trace is invoked, in field order
}

// TraceMethod is the body of the trace implementation.
type TraceMethod struct {
	Attrs       []string // outer attributes without #[...], e.g. inline
	Visitor     string   // parameter name of the shared visitor reference
	VisitorType string   // e.g. *mut ::gc::Tracer
	Arms        []MatchArm
}

// Item is a generated declaration: *Impl or *Marker.
type Item interface {
	item()
}

// Impl is one generated trait implementation.
type Impl struct {
	Attrs    []string // outer attributes without #[...]
	Unsafe   bool
	Generics Generics
	Trait    TypeRef
	Self     TypeRef
	Where    []descriptor.Predicate
	Assoc    []AssocType
	Trace    *TraceMethod
	// Safety documents the obligation an unsafe impl leaves to the runtime.
	Safety string
}

func (*Impl) item() {}

// Marker is the zero-size type standing for a runtime class.
type Marker struct {
	Visibility string
	Name       string
	Scopes     []string
	Types      []string
	Doc        string
}

func (*Marker) item() {}

// Ref returns the marker type applied to its own parameters.
func (m *Marker) Ref() TypeRef {
	return Generic(m.Name, m.Scopes, m.Types)
}

// Block is the complete output of one generator for one type.
type Block struct {
	Capability Capability
	TypeName   string
	Items      []Item
}

// Impls returns the impl items of the block in order.
func (b *Block) Impls() []*Impl {
	var out []*Impl

	for _, it := range b.Items {
		if impl, ok := it.(*Impl); ok {
			out = append(out, impl)
		}
	}

	return out
}

// AssocType returns the associated type bound to name, if any.
func (i *Impl) AssocType(name string) (TypeRef, bool) {
	for _, a := range i.Assoc {
		if a.Name == name {
			return a.Type, true
		}
	}

	return TypeRef{}, false
}

// selfRef is the described type applied to its own declared parameters.
func selfRef(d *descriptor.Descriptor) TypeRef {
	return Generic(d.Name, d.Scopes, d.TypeNames())
}

// declaredGenerics are the descriptor's own parameters as an impl list.
func declaredGenerics(d *descriptor.Descriptor) Generics {
	return Generics{Scopes: d.Scopes, Types: d.Types}
}
