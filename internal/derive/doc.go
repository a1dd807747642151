// Package derive generates the capability implementations a garbage
// collected runtime needs for a user type.
//
// There are four generators, one per capability:
//   - Rootable: the aging relation that re-anchors a value to a fresh scope
//   - Transplantable: substitution of the heap identity type parameter
//   - ClassAssociation: a zero-size marker type and the two-way
//     instance/class association
//   - Trace: a visitation body calling trace on every field of every variant
//
// Every generator is pure. It reads one descriptor.Descriptor and returns
// one Block, or a *diagnostic.Error and no output at all. Blocks are plain
// data (see Impl and Marker); the emit package turns them into source text.
//
// Generated trace and rooting impls are unsafe. The generator guarantees
// that every declared field is visited and every scope is substituted; it
// cannot see whether a field hides a heap reference behind an opaque
// handle. That check is an audit obligation of the runtime that consumes
// the output, and each unsafe impl carries a SAFETY note saying so.
package derive
