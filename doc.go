// Package vector provides Vector, a growable contiguous container with
// explicit failure guarantees.
//
// Vector manages its own storage block: it tracks how many slots are
// allocated (Cap) and how many hold live elements (Len), constructs
// elements into free slots and destroys them explicitly. Every mutating
// operation either completes or leaves the vector exactly as it was, even
// when the element type's construction, copy or move fails partway through
// a bulk operation.
//
// # Quick Start
//
//	v, _ := vector.Of(1, 2, 3)
//	_ = v.PushBack(4)
//	_ = v.Resize(8)              // appends four zero values
//	p, err := v.At(10)           // errors.Is(err, vector.ErrOutOfRange)
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// # Element Types
//
// Any type can be stored. By default elements are constructed as the zero
// value, copied and moved by assignment and never fail. Element types opt
// into richer behaviour by implementing optional interfaces:
//
//	Initializer  Init() error           default construction
//	Cloner[T]    Clone() (T, error)     copy construction
//	Mover[T]     MoveOut() (T, error)   move construction that can fail
//	Destroyer    Destroy()              destruction
//	MoveOnly     MoveOnly()             the type cannot be copied
//
// The interfaces are resolved on *T. A vector of pointers *U therefore
// treats its elements as plain values and never calls methods of U; the
// pointees stay owned by the caller.
//
// # Relocation
//
// Growing Reserve, growing Resize, a PushBack on a full vector and
// ShrinkToFit relocate the live elements into a new block. The move-or-copy
// rule picks the strategy: elements are moved when moving cannot fail or
// the type is MoveOnly, and copied otherwise, so a failure can always be
// undone by discarding the new block. The only operations that may lose
// contents are relocations of MoveOnly types whose Mover fails twice (once
// forward, once while moving back); they report ErrContentsLost.
//
// # Errors
//
//   - ErrOutOfRange: At with an index outside [0, Len())
//   - ErrUnderflow: Front, Back or PopBack on an empty vector
//   - ErrAllocation: a block could not be obtained (see WithResourceController)
//   - *ElementError (matches ErrElementOperation): an element operation failed
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Iterators and pointers into the
// vector are invalidated by any operation that reallocates the block.
package vector
