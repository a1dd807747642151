// Package match provides fuzzy name matching used for "did you mean"
// suggestions on unknown names.
package match
