package descriptor

import (
	"fmt"
	"strconv"

	"gc-derive/internal/common"
	"gc-derive/internal/diagnostic"
	"gc-derive/internal/names"
)

// Validate checks that d is a well-formed descriptor.
// It checks structure only; arity rules belong to each generator.
func Validate(d *Descriptor) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if d == nil {
		res.AddError(diagnostic.CodeNilDescriptor, "descriptor is nil", "", "")
		return res
	}

	validateName(res, d.Name, "type name", d.Name, "")

	seenScopes := map[string]struct{}{}

	for _, s := range d.Scopes {
		validateName(res, s, "scope parameter", d.Name, "'"+s)

		if _, ok := seenScopes[s]; ok {
			res.AddError(diagnostic.CodeDuplicateName, fmt.Sprintf("duplicate scope parameter '%s", s), d.Name, "'"+s)
		}

		seenScopes[s] = struct{}{}
	}

	seenTypes := map[string]struct{}{}

	for _, p := range d.Types {
		validateName(res, p.Name, "type parameter", d.Name, p.Name)

		if _, ok := seenTypes[p.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateName, fmt.Sprintf("duplicate type parameter %q", p.Name), d.Name, p.Name)
		}

		seenTypes[p.Name] = struct{}{}

		for _, b := range p.Bounds {
			if b == "" {
				res.AddError(diagnostic.CodeBadPredicate, fmt.Sprintf("empty bound on type parameter %q", p.Name), d.Name, p.Name)
			}
		}
	}

	for i, w := range d.Where {
		loc := "where[" + strconv.Itoa(i) + "]"
		if w.Subject == "" {
			res.AddError(diagnostic.CodeBadPredicate, "where predicate has no subject", d.Name, loc)
		}

		if len(w.Bounds) == 0 {
			res.AddError(diagnostic.CodeBadPredicate, fmt.Sprintf("where predicate %q has no bounds", w.Subject), d.Name, loc)
		}
	}

	validateShape(res, d)

	return res
}

func validateName(res *diagnostic.Diagnostics, name, what, typeName, loc string) {
	switch {
	case !names.IsIdent(name):
		res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("invalid %s %q", what, name), typeName, loc)
	case names.IsKeyword(name):
		res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("%s %q is a reserved word", what, name), typeName, loc)
	}
}

func validateShape(res *diagnostic.Diagnostics, d *Descriptor) {
	root := NewPath(d.Name)

	switch d.Kind {
	case KindStruct:
		if !common.IsSingle(d.Variants) {
			res.AddError(diagnostic.CodeBadShape,
				fmt.Sprintf("struct must have exactly one variant, got %d", len(d.Variants)), d.Name, "")

			return
		}

		if d.Variants[0].Name != "" {
			res.AddError(diagnostic.CodeBadShape,
				fmt.Sprintf("struct variant must be unnamed, got %q", d.Variants[0].Name), d.Name, "")
		}

	case KindEnum:
		if common.IsEmpty(d.Variants) {
			res.AddWarning(diagnostic.CodeBadShape, "enum has no variants", d.Name, "")
		}

		seen := map[string]struct{}{}

		for _, v := range d.Variants {
			if v.Name == "" {
				res.AddError(diagnostic.CodeBadShape, "enum variant must be named", d.Name, "")
				continue
			}

			validateName(res, v.Name, "variant name", d.Name, root.Variant(v.Name).String())

			if _, ok := seen[v.Name]; ok {
				res.AddError(diagnostic.CodeDuplicateName, fmt.Sprintf("duplicate variant %q", v.Name),
					d.Name, root.Variant(v.Name).String())
			}

			seen[v.Name] = struct{}{}
		}

	default:
		res.AddError(diagnostic.CodeBadShape, fmt.Sprintf("unknown kind %d", d.Kind), d.Name, "")
		return
	}

	for _, v := range d.Variants {
		validateFields(res, d.Name, root.Variant(v.Name), &v)
	}
}

func validateFields(res *diagnostic.Diagnostics, typeName string, at Path, v *Variant) {
	seen := map[string]struct{}{}

	for i, f := range v.Fields {
		loc := at.Field(f.Name)
		if f.Name == "" {
			loc = at.Field(strconv.Itoa(i))
		}

		if f.Type == "" {
			res.AddError(diagnostic.CodeBadShape, "field has no type", typeName, loc.String())
		}

		switch v.Style {
		case StyleUnit:
			res.AddError(diagnostic.CodeBadShape, "unit variant cannot have fields", typeName, loc.String())
			return

		case StyleTuple:
			if f.Name != "" {
				res.AddError(diagnostic.CodeBadShape, fmt.Sprintf("tuple field cannot be named %q", f.Name),
					typeName, loc.String())
			}

		case StyleNamed:
			if f.Name == "" {
				res.AddError(diagnostic.CodeBadShape, "named variant has an unnamed field", typeName, loc.String())
				continue
			}

			validateName(res, f.Name, "field name", typeName, loc.String())

			if _, ok := seen[f.Name]; ok {
				res.AddError(diagnostic.CodeDuplicateName, fmt.Sprintf("duplicate field %q", f.Name),
					typeName, loc.String())
			}

			seen[f.Name] = struct{}{}
		}
	}
}
