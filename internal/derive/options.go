package derive

import (
	"fmt"

	"gc-derive/internal/diagnostic"
	"gc-derive/internal/names"
)

// Trait and type names of the consuming runtime.
const (
	TraitRootable       = "Rootable"
	TraitTransplantable = "Transplantable"
	TraitHasClass       = "HasClass"
	TraitClassOf        = "ClassOf"
	TraitTraceable      = "Traceable"
	TypeTracer          = "Tracer"

	AssocAged         = "Aged"
	AssocTransplanted = "Transplanted"
	AssocClass        = "Class"
	AssocInstance     = "Instance"
)

// Attributes placed on generated items so the output builds in crates
// that deny unsafe code or warnings.
const (
	AttrAllowUnsafe = "allow(unsafe_code)"
	AttrInline      = "inline"
	AttrAllowUnused = "allow(unused_variables, unused_imports)"
)

// Bases for identifiers introduced by generation.
const (
	baseScope    = "a"
	baseHeap     = "D"
	baseInstance = "C"
	baseVisitor  = "trc"
)

// Options configures all generators.
type Options struct {
	// Runtime is the path prefix of the runtime's traits, e.g. "::gc".
	// Empty means the traits are referenced unqualified.
	Runtime string
	// MarkerSuffix is appended to a type name to name its marker type.
	MarkerSuffix string
	// StrictNames turns a clash between an introduced identifier and a
	// declared one into an error instead of picking the next free name.
	StrictNames bool
	// TraceLeading adds the trace bound to the first type parameter as well.
	TraceLeading bool
}

// path qualifies a runtime item name with the configured prefix.
func (o Options) path(name string) string {
	if o.Runtime == "" {
		return name
	}

	return o.Runtime + "::" + name
}

// fresh introduces an identifier derived from base that avoids taken and
// claims it. In strict mode a taken base is reported as a collision.
func (o Options) fresh(base string, taken names.Set, typeName string, c Capability, what string) (string, error) {
	if o.StrictNames && taken.Has(base) {
		return "", diagnostic.Collision(typeName, c.String(),
			fmt.Sprintf("%s %q is already declared on the type", what, base))
	}

	return names.Claim(base, taken), nil
}
