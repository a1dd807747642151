package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// SplitLeading partitions s into its first element and the remainder.
// ok is false when s is empty; rest is then nil.
func SplitLeading[S ~[]E, E any](s S) (leading E, rest S, ok bool) {
	leading, ok = First(s)
	if !ok {
		return leading, nil, false
	}

	return leading, s[1:], true
}

// SplitLeadingOr is SplitLeading with a fallback for the empty case.
// The fallback is only invoked when s is empty. defaulted reports whether it was used.
func SplitLeadingOr[S ~[]E, E any](s S, fallback func() E) (leading E, rest S, defaulted bool) {
	leading, rest, ok := SplitLeading(s)
	if !ok {
		return fallback(), nil, true
	}

	return leading, rest, false
}

// Map applies fn to each element of s.
func Map[S ~[]E, E, R any](s S, fn func(E) R) []R {
	if s == nil {
		return nil
	}

	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}

	return out
}
