package names

import (
	"strconv"
	"unicode"
)

// Set is a set of identifiers already in use.
type Set map[string]struct{}

// NewSet creates a Set from the given identifier groups.
func NewSet(groups ...[]string) Set {
	s := make(Set)
	for _, g := range groups {
		s.Add(g...)
	}

	return s
}

// Add marks identifiers as taken. Empty names are ignored.
func (s Set) Add(names ...string) {
	for _, n := range names {
		if n == "" {
			continue
		}

		s[n] = struct{}{}
	}
}

// Has reports whether name is taken.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Fresh returns an identifier derived from base that is not in taken.
// base itself is returned when free, otherwise base1, base2, ... in order.
// The result is not added to taken.
func Fresh(base string, taken Set) string {
	if !taken.Has(base) {
		return base
	}

	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !taken.Has(candidate) {
			return candidate
		}
	}
}

// Claim is Fresh followed by adding the result to taken, so repeated
// claims against the same set never return the same identifier twice.
func Claim(base string, taken Set) string {
	name := Fresh(base, taken)
	taken.Add(name)

	return name
}

// IsIdent reports whether s is a valid identifier: a letter or underscore
// followed by letters, digits or underscores. A lone "_" is rejected.
func IsIdent(s string) bool {
	if s == "" || s == "_" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

// IsKeyword reports whether s is reserved in the host language and
// cannot be used as a binding or parameter name.
func IsKeyword(s string) bool {
	return keywords[s]
}

var keywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true,
}
