// Package conv provides safe integer conversion and sizing utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned integer types or turning an element
// count into a byte size.
//
// Use cases:
//   - Sizing storage blocks from caller-supplied capacities
//   - Converting between Go's int (platform-dependent) and fixed-width types
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
