package derive

import (
	"strconv"

	"gc-derive/internal/descriptor"
)

// FieldRef locates one field during a traversal.
type FieldRef struct {
	Variant      *descriptor.Variant
	VariantIndex int
	Field        *descriptor.Field
	Index        int
	// Binding is the local name the field is bound to in a pattern: the
	// field name, or __field<Index> for tuple fields.
	Binding string
}

// MapFields applies op to every field of every variant and returns one
// result slice per variant, in declaration order. Variants without fields
// get an empty slice, so the result always has len(d.Variants) entries.
func MapFields[R any](d *descriptor.Descriptor, op func(FieldRef) R) [][]R {
	out := make([][]R, len(d.Variants))

	for vi := range d.Variants {
		v := &d.Variants[vi]
		out[vi] = make([]R, 0, len(v.Fields))

		for fi := range v.Fields {
			f := &v.Fields[fi]
			out[vi] = append(out[vi], op(FieldRef{
				Variant:      v,
				VariantIndex: vi,
				Field:        f,
				Index:        fi,
				Binding:      bindingName(f, fi),
			}))
		}
	}

	return out
}

// ForEachField calls fn for every field of every variant.
func ForEachField(d *descriptor.Descriptor, fn func(FieldRef)) {
	MapFields(d, func(f FieldRef) struct{} {
		fn(f)
		return struct{}{}
	})
}

func bindingName(f *descriptor.Field, index int) string {
	if f.Name != "" {
		return f.Name
	}

	return "__field" + strconv.Itoa(index)
}
