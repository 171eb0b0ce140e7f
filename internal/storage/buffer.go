package storage

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/vector/internal/conv"
)

// ErrAllocation is returned when a block cannot be obtained.
var ErrAllocation = errors.New("allocation failed")

// maxBlockBytes bounds a single block below the runtime's allocation limit
// so that oversized requests surface as errors instead of runtime panics.
var maxBlockBytes = func() int64 {
	if math.MaxInt > 1<<47 {
		return 1 << 47
	}
	return math.MaxInt >> 1
}()

// MemoryAcquirer is an interface for acquiring memory.
type MemoryAcquirer interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Buffer is a block of slots and the number of leading slots that are live.
//
// The zero value is the empty buffer: no block, capacity 0, length 0.
type Buffer[T any] struct {
	data []T // len(data) == cap(data) == capacity
	used int
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Len returns the number of live slots.
func (b *Buffer[T]) Len() int { return b.used }

// SetLen records n leading slots as live. The caller must have constructed
// exactly those slots.
func (b *Buffer[T]) SetLen(n int) { b.used = n }

// Slots returns the whole block, live and unused slots alike.
func (b *Buffer[T]) Slots() []T { return b.data }

// Live returns the live prefix of the block.
func (b *Buffer[T]) Live() []T { return b.data[:b.used:b.used] }

// Slot returns a pointer to slot i without checking it against the length.
func (b *Buffer[T]) Slot(i int) *T { return &b.data[i] }

// Base returns the address of the first slot, or nil without a block.
// Two buffers with the same base share the same block.
func (b *Buffer[T]) Base() *T {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.SliceData(b.data)
}

// IndexOf returns the index of the slot p points to, if p points into the
// block.
func (b *Buffer[T]) IndexOf(p *T) (int, bool) {
	size := unsafe.Sizeof(*p)
	if p == nil || size == 0 || len(b.data) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	addr := uintptr(unsafe.Pointer(p))
	if addr < base || addr-base >= uintptr(len(b.data))*size {
		return 0, false
	}
	return int((addr - base) / size), true
}

// Offset returns the slot n positions away from p. p and the result must
// lie in the same block.
func Offset[T any](p *T, n int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), n*int(unsafe.Sizeof(*p))))
}

// Swap exchanges block, capacity and length with other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
	b.used, other.used = other.used, b.used
}

// Take transfers ownership of the block to the returned buffer and leaves
// b empty.
func (b *Buffer[T]) Take() Buffer[T] {
	var out Buffer[T]
	out.Swap(b)
	return out
}

// Allocator hands out blocks for element type T and accounts them against
// an optional MemoryAcquirer.
type Allocator[T any] struct {
	acquirer MemoryAcquirer
	elemSize uintptr
}

// NewAllocator creates an allocator. acquirer may be nil.
func NewAllocator[T any](acquirer MemoryAcquirer) Allocator[T] {
	var zero T
	return Allocator[T]{
		acquirer: acquirer,
		elemSize: unsafe.Sizeof(zero),
	}
}

// Bytes returns the number of bytes a block of capacity slots is charged.
func (a Allocator[T]) Bytes(capacity int) (int64, error) {
	return conv.MulSize(capacity, a.elemSize)
}

// Allocate returns an empty buffer with a block of capacity slots and the
// number of bytes requested for it (0 if that size is not representable).
// A capacity of 0 yields the empty buffer without a block.
func (a Allocator[T]) Allocate(capacity int) (Buffer[T], int64, error) {
	if capacity == 0 {
		return Buffer[T]{}, 0, nil
	}
	if capacity < 0 {
		return Buffer[T]{}, 0, fmt.Errorf("%w: negative capacity %d", ErrAllocation, capacity)
	}

	size, err := a.Bytes(capacity)
	if err != nil {
		return Buffer[T]{}, 0, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	if size > maxBlockBytes {
		return Buffer[T]{}, size, fmt.Errorf("%w: %d slots need %d bytes, limit is %d", ErrAllocation, capacity, size, maxBlockBytes)
	}

	if a.acquirer != nil {
		if err := a.acquirer.AcquireMemory(size); err != nil {
			return Buffer[T]{}, size, fmt.Errorf("%w: %w", ErrAllocation, err)
		}
	}

	return Buffer[T]{data: make([]T, capacity)}, size, nil
}

// Release frees the block, refunds its memory and returns the number of
// bytes released. Live elements are not destroyed; the caller must have
// done that first.
func (a Allocator[T]) Release(b *Buffer[T]) int64 {
	if b.data == nil {
		b.used = 0
		return 0
	}
	// Every block came from Allocate, so its size is representable.
	size := int64(uintptr(len(b.data)) * a.elemSize)
	if a.acquirer != nil {
		a.acquirer.ReleaseMemory(size)
	}
	b.data = nil
	b.used = 0
	return size
}
