// Package diagnostic provides structured diagnostics and the fatal
// generation error for gc-derive.
//
// Key capabilities:
//   - Collecting descriptor validation problems with codes and field paths
//   - Typed generation errors naming the offending type and capability
//   - Sentinels for the error taxonomy: arity, collision, malformed
package diagnostic
