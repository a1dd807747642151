package derive

import (
	"fmt"

	"gc-derive/internal/common"
	"gc-derive/internal/descriptor"
	"gc-derive/internal/diagnostic"
)

const transplantableSafety = "only the heap identity parameter changes. " +
	"The runtime must move every reachable value into the target heap before the result is used."

// TransplantableGenerator emits the heap identity substitution. The sole
// type parameter is the heap identity; the result swaps it for a fresh one
// and keeps every scope parameter.
type TransplantableGenerator struct {
	opts Options
}

// Capability implements Generator.
func (g *TransplantableGenerator) Capability() Capability { return CapTransplantable }

// Generate implements Generator.
func (g *TransplantableGenerator) Generate(d *descriptor.Descriptor) (*Block, error) {
	if err := checkDescriptor(d, CapTransplantable); err != nil {
		return nil, err
	}

	if !common.IsSingle(d.Types) {
		return nil, diagnostic.Arity(d.Name, CapTransplantable.String(),
			fmt.Sprintf("expected exactly 1 type parameter (the heap identity), got %d", len(d.Types)))
	}

	fresh, err := g.opts.fresh(baseHeap, d.Declared(), d.Name, CapTransplantable, "heap identity")
	if err != nil {
		return nil, err
	}

	impl := &Impl{
		Attrs:  []string{AttrAllowUnsafe},
		Unsafe: true,
		Generics: Generics{
			Scopes: d.Scopes,
			Types:  append(append([]descriptor.Param{}, d.Types...), descriptor.Param{Name: fresh}),
		},
		Trait: TypeRef{Path: g.opts.path(TraitTransplantable), Args: []TypeRef{Named(fresh)}},
		Self:  selfRef(d),
		Where: mergeWhere(d.Where),
		Assoc: []AssocType{{
			Name: AssocTransplanted,
			Type: Generic(d.Name, d.Scopes, []string{fresh}),
		}},
		Safety: transplantableSafety,
	}

	return &Block{Capability: CapTransplantable, TypeName: d.Name, Items: []Item{impl}}, nil
}
