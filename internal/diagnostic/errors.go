package diagnostic

import (
	"errors"
	"strings"
)

// Sentinel errors for the generation error taxonomy.
var (
	// ErrArity indicates a wrong number of scope or type parameters.
	ErrArity = errors.New("gc-derive: arity violation")
	// ErrCollision indicates that an introduced identifier clashes with a declared one.
	ErrCollision = errors.New("gc-derive: identifier collision")
	// ErrMalformed indicates a descriptor that is not well formed.
	ErrMalformed = errors.New("gc-derive: malformed descriptor")
)

// Error is a fatal generation error for one type and capability.
type Error struct {
	Type       string // Type name
	Capability string // Capability being generated (empty for validation)
	Code       string // One of the Code* constants
	Message    string
	// Diagnostics carries the validation problems behind a malformed descriptor.
	Diagnostics *Diagnostics
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("gc-derive")

	if e.Capability != "" {
		b.WriteString(": cannot derive ")
		b.WriteString(e.Capability)

		if e.Type != "" {
			b.WriteString(" for type ")
			b.WriteString(e.Type)
		}
	} else if e.Type != "" {
		b.WriteString(": invalid type ")
		b.WriteString(e.Type)
	}

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	return b.String()
}

// Is reports whether target is the sentinel matching the error code.
func (e *Error) Is(target error) bool {
	switch e.Code {
	case CodeArity:
		return target == ErrArity
	case CodeCollision:
		return target == ErrCollision
	default:
		return target == ErrMalformed
	}
}

// Arity creates an arity violation error.
func Arity(typeName, capability, message string) *Error {
	return &Error{Type: typeName, Capability: capability, Code: CodeArity, Message: message}
}

// Collision creates an identifier collision error.
func Collision(typeName, capability, message string) *Error {
	return &Error{Type: typeName, Capability: capability, Code: CodeCollision, Message: message}
}

// Malformed turns validation diagnostics into a malformed descriptor error.
// It returns nil when diags has no errors.
func Malformed(typeName, capability string, diags *Diagnostics) *Error {
	if diags == nil || diags.IsValid() {
		return nil
	}

	return &Error{
		Type:        typeName,
		Capability:  capability,
		Code:        CodeMalformed,
		Message:     diags.Error().Error(),
		Diagnostics: diags,
	}
}
