package descriptor

import (
	"fmt"
	"strings"
)

// ParseParam parses "T" or "T: Bound + Other" into a Param.
func ParseParam(s string) (Param, error) {
	name, bounds, err := splitBounded(s)
	if err != nil {
		return Param{}, err
	}

	return Param{Name: name, Bounds: bounds}, nil
}

// ParsePredicate parses "Subject: Bound + Other" into a Predicate.
// Unlike ParseParam, the bound list is mandatory.
func ParsePredicate(s string) (Predicate, error) {
	subject, bounds, err := splitBounded(s)
	if err != nil {
		return Predicate{}, err
	}

	if len(bounds) == 0 {
		return Predicate{}, fmt.Errorf("where predicate %q has no bounds", s)
	}

	return Predicate{Subject: subject, Bounds: bounds}, nil
}

// ParseField parses "name: Type" or "Type" into a Field.
func ParseField(s string) (Field, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Field{}, fmt.Errorf("empty field")
	}

	i := loneColon(s)
	if i < 0 {
		return Field{Type: s}, nil
	}

	f := Field{
		Name: strings.TrimSpace(s[:i]),
		Type: strings.TrimSpace(s[i+1:]),
	}
	if f.Name == "" || f.Type == "" {
		return Field{}, fmt.Errorf("field %q must be \"name: Type\" or \"Type\"", s)
	}

	return f, nil
}

// String renders the param as it appears in a generics list.
func (p Param) String() string {
	if len(p.Bounds) == 0 {
		return p.Name
	}

	return p.Name + ": " + strings.Join(p.Bounds, " + ")
}

// String renders the predicate as it appears in a where clause.
func (p Predicate) String() string {
	return p.Subject + ": " + strings.Join(p.Bounds, " + ")
}

func splitBounded(s string) (string, []string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil, fmt.Errorf("empty parameter")
	}

	i := loneColon(s)
	if i < 0 {
		return s, nil, nil
	}

	head := strings.TrimSpace(s[:i])
	if head == "" {
		return "", nil, fmt.Errorf("%q is missing the bounded name", s)
	}

	var bounds []string

	for _, b := range splitTopLevel(s[i+1:], '+') {
		b = strings.TrimSpace(b)
		if b == "" {
			return "", nil, fmt.Errorf("%q has an empty bound", s)
		}

		bounds = append(bounds, b)
	}

	return head, bounds, nil
}

// loneColon returns the index of the first ':' that is neither part of
// "::" nor nested inside <...>, (...) or [...]. It returns -1 if none.
func loneColon(s string) int {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			// "->" is not a closing bracket
			if s[i] == '>' && i > 0 && s[i-1] == '-' {
				continue
			}

			depth--
		case ':':
			if i+1 < len(s) && s[i+1] == ':' {
				i++
				continue
			}

			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// splitTopLevel splits s on sep occurrences outside any brackets.
func splitTopLevel(s string, sep byte) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if s[i] == '>' && i > 0 && s[i-1] == '-' {
				continue
			}

			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}
