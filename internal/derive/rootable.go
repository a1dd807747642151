package derive

import (
	"fmt"

	"gc-derive/internal/common"
	"gc-derive/internal/descriptor"
	"gc-derive/internal/diagnostic"
)

const rootableSafety = "the aged form differs from Self only in its scope parameter. " +
	"The runtime must keep the value rooted for as long as the new scope lasts."

// RootableGenerator emits the aging relation: for any fresh scope 's the
// type re-anchored to 's. Types without a scope parameter age to themselves.
type RootableGenerator struct {
	opts Options
}

// Capability implements Generator.
func (g *RootableGenerator) Capability() Capability { return CapRootable }

// Generate implements Generator.
func (g *RootableGenerator) Generate(d *descriptor.Descriptor) (*Block, error) {
	if err := checkDescriptor(d, CapRootable); err != nil {
		return nil, err
	}

	if common.IsMultiple(d.Scopes) {
		return nil, diagnostic.Arity(d.Name, CapRootable.String(),
			fmt.Sprintf("expected at most 1 scope parameter, got %d", len(d.Scopes)))
	}

	fresh, err := g.opts.fresh(baseScope, d.Declared(), d.Name, CapRootable, "scope")
	if err != nil {
		return nil, err
	}

	self := selfRef(d)
	aged := self
	where := mergeWhere(d.Where)

	if common.IsSingle(d.Scopes) {
		aged = Generic(d.Name, []string{fresh}, d.TypeNames())
		where = mergeWhere(d.Where, bounded(d.TypeNames(), "'"+fresh)...)
	}

	impl := &Impl{
		Attrs:  []string{AttrAllowUnsafe},
		Unsafe: true,
		Generics: Generics{
			Scopes: append([]string{fresh}, d.Scopes...),
			Types:  d.Types,
		},
		Trait:  TypeRef{Path: g.opts.path(TraitRootable), Scopes: []string{fresh}},
		Self:   self,
		Where:  where,
		Assoc:  []AssocType{{Name: AssocAged, Type: aged}},
		Safety: rootableSafety,
	}

	return &Block{Capability: CapRootable, TypeName: d.Name, Items: []Item{impl}}, nil
}
