// Package names provides identifier handling for generated code.
//
// Key capabilities:
//   - Identifier syntax checks for the host language
//   - A set of taken identifiers built from a type's declared parameters
//   - Collision-checked fresh identifier generation
//   - Deterministic marker type name derivation
package names
