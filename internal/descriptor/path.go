package descriptor

import "strings"

// Path builds a readable location string inside a descriptor.
// Examples:
//   - "Node" for the type itself
//   - "Node::Branch" for an enum variant
//   - "Node::Branch.left" for a field of a variant
//   - "Point.0" for a tuple struct field
type Path struct {
	parts []string
}

// NewPath creates a Path rooted at a type name.
func NewPath(root string) Path {
	return Path{parts: []string{root}}
}

// Variant appends an enum variant. Empty names (struct variants) are skipped.
func (p Path) Variant(name string) Path {
	if name == "" || len(p.parts) == 0 {
		return p
	}

	parts := append([]string{}, p.parts...)
	parts[len(parts)-1] += "::" + name

	return Path{parts: parts}
}

// Field appends a field name or tuple index.
func (p Path) Field(name string) Path {
	return Path{parts: append(append([]string{}, p.parts...), name)}
}

// String returns the full path string.
func (p Path) String() string {
	return strings.Join(p.parts, ".")
}
