package derive

import (
	"slices"

	"gc-derive/internal/descriptor"
)

// mergeWhere preserves the declared predicates in order and merges the
// added ones into them: bounds for a subject already present are appended
// to that predicate, new subjects are appended at the end. Duplicate bounds
// are dropped. The inputs are not modified.
func mergeWhere(declared []descriptor.Predicate, added ...descriptor.Predicate) []descriptor.Predicate {
	out := make([]descriptor.Predicate, 0, len(declared)+len(added))
	index := make(map[string]int)

	for _, p := range append(slices.Clone(declared), added...) {
		i, ok := index[p.Subject]
		if !ok {
			index[p.Subject] = len(out)
			out = append(out, descriptor.Predicate{Subject: p.Subject, Bounds: slices.Clone(p.Bounds)})

			continue
		}

		for _, b := range p.Bounds {
			if !slices.Contains(out[i].Bounds, b) {
				out[i].Bounds = append(out[i].Bounds, b)
			}
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// bounded builds one predicate per subject, all with the same bound.
func bounded(subjects []string, bound string) []descriptor.Predicate {
	out := make([]descriptor.Predicate, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, descriptor.Predicate{Subject: s, Bounds: []string{bound}})
	}

	return out
}
