// Package storage provides the raw storage owner behind a vector.
//
// A Buffer owns one block of element slots plus the count of slots that
// hold live elements. The package allocates, releases and swaps blocks;
// it never constructs or destroys elements. Slots that are not live hold
// the zero value of the element type.
//
// # Memory Accounting
//
// Blocks are charged against an optional MemoryAcquirer (typically a
// *resource.Controller) before the backing slice is made, and refunded on
// Release. A refused charge, an overflowing byte size or a block larger
// than the addressable maximum all fail with ErrAllocation and leave no
// state behind.
package storage
