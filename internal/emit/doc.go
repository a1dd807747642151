// Package emit renders generated capability blocks as source text.
//
// Rendering uses text/template with small helper functions for generic
// lists, type expressions and where clauses. Output is deterministic: the
// same blocks always render to the same bytes.
//
// The package also parses rendered type expressions back into
// derive.TypeRef values, so callers can check that what was emitted
// still names the type it was generated from.
package emit
