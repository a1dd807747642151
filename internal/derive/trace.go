package derive

import (
	"gc-derive/internal/descriptor"
	"gc-derive/internal/names"
)

const traceSafety = "every declared field is visited, which is all the generator can check. " +
	"Fields that reach the heap through handles the field types do not trace must be audited by hand."

// TraceGenerator emits the trace implementation: a match over every
// variant that binds each field by reference and calls its trace with the
// shared visitor.
//
// Type parameters after the first must be traceable themselves. The first
// one is left unbounded unless Options.TraceLeading is set.
type TraceGenerator struct {
	opts Options
}

// Capability implements Generator.
func (g *TraceGenerator) Capability() Capability { return CapTrace }

// Generate implements Generator.
func (g *TraceGenerator) Generate(d *descriptor.Descriptor) (*Block, error) {
	if err := checkDescriptor(d, CapTrace); err != nil {
		return nil, err
	}

	bindings := MapFields(d, func(f FieldRef) Binding {
		return Binding{Field: f.Field.Name, Var: f.Binding}
	})

	taken := names.NewSet()
	ForEachField(d, func(f FieldRef) { taken.Add(f.Binding) })

	visitor := names.Claim(baseVisitor, taken)

	arms := make([]MatchArm, len(d.Variants))
	for i, v := range d.Variants {
		path := d.Name
		if d.IsEnum() {
			path += "::" + v.Name
		}

		visits := make([]string, 0, len(bindings[i]))
		for _, b := range bindings[i] {
			visits = append(visits, b.Var)
		}

		arms[i] = MatchArm{
			Pattern: Pattern{Path: path, Style: v.Style, Bindings: bindings[i]},
			Visits:  visits,
		}
	}

	impl := &Impl{
		Attrs:    []string{AttrAllowUnsafe},
		Unsafe:   true,
		Generics: declaredGenerics(d),
		Trait:    Named(g.opts.path(TraitTraceable)),
		Self:     selfRef(d),
		Where:    mergeWhere(d.Where, bounded(g.tracedParams(d), g.opts.path(TraitTraceable))...),
		Trace: &TraceMethod{
			Attrs:       []string{AttrInline, AttrAllowUnused},
			Visitor:     visitor,
			VisitorType: "*mut " + g.opts.path(TypeTracer),
			Arms:        arms,
		},
		Safety: traceSafety,
	}

	return &Block{Capability: CapTrace, TypeName: d.Name, Items: []Item{impl}}, nil
}

// tracedParams returns the type parameters that receive the trace bound.
func (g *TraceGenerator) tracedParams(d *descriptor.Descriptor) []string {
	params := d.TypeNames()
	if g.opts.TraceLeading || len(params) == 0 {
		return params
	}

	return params[1:]
}
