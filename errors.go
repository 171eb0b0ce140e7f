package vector

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vector/internal/storage"
)

var (
	// ErrOutOfRange is returned by checked access with an index outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnderflow is returned by Front, Back and PopBack on an empty vector.
	ErrUnderflow = errors.New("vector is empty")

	// ErrAllocation is returned when a storage block cannot be obtained,
	// either because its size is not representable or because the memory
	// budget refused it. The vector is unchanged.
	ErrAllocation = storage.ErrAllocation

	// ErrInvalidLength is returned for negative lengths and capacities and
	// for ranges whose end precedes their start.
	ErrInvalidLength = errors.New("invalid length")

	// ErrNotCopyable is returned by operations that copy elements of a
	// move-only element type.
	ErrNotCopyable = errors.New("element type is not copyable")

	// ErrElementOperation matches every *ElementError.
	ErrElementOperation = errors.New("element operation failed")

	// ErrContentsLost is returned alongside an element error when a
	// relocation of a move-only element type failed and the moved elements
	// could not be moved back. All elements were destroyed and the vector
	// was left empty.
	ErrContentsLost = errors.New("vector contents lost")
)

// ElementOp names the element operation that failed.
type ElementOp uint8

const (
	// OpConstruct is default construction (Initializer).
	OpConstruct ElementOp = iota
	// OpCopy is copy construction (Cloner).
	OpCopy
	// OpMove is move construction (Mover).
	OpMove
)

func (op ElementOp) String() string {
	switch op {
	case OpConstruct:
		return "construct"
	case OpCopy:
		return "copy"
	case OpMove:
		return "move"
	default:
		return fmt.Sprintf("ElementOp(%d)", uint8(op))
	}
}

// ElementError reports an element operation that failed during a vector
// operation. Index is the slot that was being constructed.
//
// The original underlying error can be accessed via errors.Unwrap.
type ElementError struct {
	Op    ElementOp
	Index int
	cause error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%s of element %d failed: %v", e.Op, e.Index, e.cause)
}

func (e *ElementError) Unwrap() error { return e.cause }

// Is reports whether target is ErrElementOperation.
func (e *ElementError) Is(target error) bool { return target == ErrElementOperation }

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, length)
}

func invalidLength(n int) error {
	return fmt.Errorf("%w: %d", ErrInvalidLength, n)
}
