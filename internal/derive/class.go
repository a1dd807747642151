package derive

import (
	"fmt"

	"gc-derive/internal/common"
	"gc-derive/internal/descriptor"
	"gc-derive/internal/diagnostic"
	"gc-derive/internal/names"
)

// ClassGenerator emits a zero-size marker type for the runtime class of a
// type, plus the association from the type to its marker and back.
//
// The first scope and the first type parameter form the instance witness;
// the remaining ones are class parameters carried by the marker. A missing
// witness part is synthesized, so types without parameters work too.
type ClassGenerator struct {
	opts Options
}

// Capability implements Generator.
func (g *ClassGenerator) Capability() Capability { return CapClass }

// Witness is the instance scope and type parameter chosen for a type.
type Witness struct {
	Scope          string
	Type           descriptor.Param
	ScopeDefaulted bool
	TypeDefaulted  bool
}

// Generate implements Generator.
func (g *ClassGenerator) Generate(d *descriptor.Descriptor) (*Block, error) {
	if err := checkDescriptor(d, CapClass); err != nil {
		return nil, err
	}

	taken := d.Declared()

	marker := names.MarkerName(d.Name, g.opts.MarkerSuffix)
	if taken.Has(marker) {
		return nil, diagnostic.Collision(d.Name, CapClass.String(),
			fmt.Sprintf("marker type name %q is already declared on the type", marker))
	}

	w, classScopes, classTypes, err := g.partition(d, taken)
	if err != nil {
		return nil, err
	}

	m := &Marker{
		Visibility: d.Visibility,
		Name:       marker,
		Scopes:     classScopes,
		Types:      common.Map(classTypes, func(p descriptor.Param) string { return p.Name }),
		Doc:        fmt.Sprintf("%s stands for the runtime class of %s.", marker, d.Name),
	}

	self := selfRef(d)

	forward := &Impl{
		Generics: declaredGenerics(d),
		Trait:    Named(g.opts.path(TraitHasClass)),
		Self:     self,
		Where:    mergeWhere(d.Where),
		Assoc:    []AssocType{{Name: AssocClass, Type: m.Ref()}},
	}

	reverse := &Impl{
		Generics: Generics{
			Scopes: append([]string{w.Scope}, classScopes...),
			Types:  append([]descriptor.Param{w.Type}, classTypes...),
		},
		Trait: TypeRef{
			Path:   g.opts.path(TraitClassOf),
			Scopes: []string{w.Scope},
			Args:   []TypeRef{Named(w.Type.Name)},
		},
		Self:  m.Ref(),
		Where: mergeWhere(d.Where),
		Assoc: []AssocType{{Name: AssocInstance, Type: self}},
	}

	return &Block{
		Capability: CapClass,
		TypeName:   d.Name,
		Items:      []Item{m, forward, reverse},
	}, nil
}

// Witness returns the instance witness the generator would choose for d.
func (g *ClassGenerator) Witness(d *descriptor.Descriptor) (Witness, error) {
	w, _, _, err := g.partition(d, d.Declared())
	return w, err
}

// partition splits the declared parameters into the instance witness and
// the class parameters, synthesizing the witness parts that are missing.
func (g *ClassGenerator) partition(d *descriptor.Descriptor, taken names.Set) (Witness, []string, []descriptor.Param, error) {
	var (
		w      Witness
		errOut error
	)

	var classScopes []string

	w.Scope, classScopes, w.ScopeDefaulted = common.SplitLeadingOr(d.Scopes, func() string {
		s, err := g.opts.fresh(baseScope, taken, d.Name, CapClass, "default instance scope")
		errOut = err

		return s
	})
	if errOut != nil {
		return Witness{}, nil, nil, errOut
	}

	var classTypes []descriptor.Param

	w.Type, classTypes, w.TypeDefaulted = common.SplitLeadingOr(d.Types, func() descriptor.Param {
		s, err := g.opts.fresh(baseInstance, taken, d.Name, CapClass, "default instance type")
		errOut = err

		return descriptor.Param{Name: s}
	})
	if errOut != nil {
		return Witness{}, nil, nil, errOut
	}

	return w, classScopes, classTypes, nil
}
