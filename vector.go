package vector

import (
	"github.com/hupe1980/vector/internal/storage"
)

// Vector is a growable sequence of T stored in one contiguous block.
//
// Slots [0, Len()) hold live elements and slots [Len(), Cap()) hold the
// zero value of T. Every operation that can fail either completes or
// leaves the vector as it was; the single exception is documented on
// ErrContentsLost.
//
// A Vector is not safe for concurrent use. The zero value is an empty
// vector without options.
type Vector[T any] struct {
	buf    storage.Buffer[T]
	alloc  storage.Allocator[T]
	traits *traits[T]
	opts   options
}

func newVector[T any](opts options) *Vector[T] {
	return &Vector[T]{
		alloc:  storage.NewAllocator[T](opts.acquirer()),
		traits: traitsOf[T](),
		opts:   opts,
	}
}

// sibling returns an empty vector with the same configuration as v.
func (v *Vector[T]) sibling() *Vector[T] {
	return &Vector[T]{
		alloc:  v.alloc,
		traits: v.ops(),
		opts:   v.opts,
	}
}

// ops returns the element traits, setting up a zero Vector on first use.
func (v *Vector[T]) ops() *traits[T] {
	if v.traits == nil {
		v.traits = traitsOf[T]()
		v.alloc = storage.NewAllocator[T](nil)
		v.opts = applyOptions(nil)
	}
	return v.traits
}

// New creates an empty vector: capacity 0, length 0, no block.
func New[T any](opts ...Option) *Vector[T] {
	return newVector[T](applyOptions(opts))
}

// NewWithCapacity creates an empty vector with a block of n slots.
func NewWithCapacity[T any](n int, opts ...Option) (*Vector[T], error) {
	if n < 0 {
		return nil, invalidLength(n)
	}
	v := New[T](opts...)
	if err := v.Reserve(n); err != nil {
		return nil, err
	}
	return v, nil
}

// NewSized creates a vector of n default-constructed elements with
// capacity n. If constructing element k fails, elements [0, k) are
// destroyed, the block is released and the error is returned.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	t := v.traits
	if err := v.build("new", n, OpConstruct, func(_ int, dst *T) error {
		return t.construct(dst)
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFilled creates a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	t := v.traits
	if !t.copyable {
		return nil, ErrNotCopyable
	}
	if err := v.build("new", n, OpCopy, func(_ int, dst *T) error {
		return t.copy(dst, &value)
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice creates a vector holding copies of src, with capacity len(src).
func FromSlice[T any](src []T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.buildFrom(src); err != nil {
		return nil, err
	}
	return v, nil
}

// Of creates a vector holding copies of values, in order.
func Of[T any](values ...T) (*Vector[T], error) {
	return FromSlice(values)
}

// NewFromRange creates a vector holding copies of the elements in
// [first, last), with capacity Distance(first, last).
func NewFromRange[T any](first, last Iterator[T], opts ...Option) (*Vector[T], error) {
	n := Distance(first, last)
	if n < 0 {
		return nil, invalidLength(n)
	}
	v := New[T](opts...)
	t := v.traits
	if !t.copyable {
		return nil, ErrNotCopyable
	}
	if err := v.build("new", n, OpCopy, func(i int, dst *T) error {
		return t.copy(dst, first.At(i))
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// Clone returns a copy of v with capacity v.Len() and v's options. v is
// never modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := v.sibling()
	if err := c.buildFrom(v.buf.Live()); err != nil {
		return nil, err
	}
	return c, nil
}

// Take transfers v's block, length and options to a new vector in constant
// time and leaves v empty (capacity 0, length 0, no block).
func (v *Vector[T]) Take() *Vector[T] {
	out := v.sibling()
	out.buf = v.buf.Take()
	return out
}

// Assign replaces v's elements with copies of src's. The copy is built
// before v is touched: if it fails, v is unchanged.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	tmp := v.sibling()
	if err := tmp.buildFrom(src.buf.Live()); err != nil {
		return err
	}
	v.buf.Swap(&tmp.buf)
	tmp.Free()
	return nil
}

// MoveAssign exchanges v and src, so src ends up holding what v held.
// It never fails.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	v.Swap(src)
}

// Swap exchanges the contents and options of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.buf.Len() }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// Empty reports whether v has no live elements.
func (v *Vector[T]) Empty() bool { return v.buf.Len() == 0 }

// Index returns a pointer to element i without checking i against Len.
// Indexing past Len yields an unused slot; indexing past Cap panics.
func (v *Vector[T]) Index(i int) *T { return v.buf.Slot(i) }

// At returns a pointer to element i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.buf.Len() {
		return nil, outOfRange(i, v.buf.Len())
	}
	return v.buf.Slot(i), nil
}

// Front returns a pointer to the first element, or ErrUnderflow.
func (v *Vector[T]) Front() (*T, error) {
	if v.buf.Len() == 0 {
		return nil, ErrUnderflow
	}
	return v.buf.Slot(0), nil
}

// Back returns a pointer to the last element, or ErrUnderflow.
func (v *Vector[T]) Back() (*T, error) {
	if v.buf.Len() == 0 {
		return nil, ErrUnderflow
	}
	return v.buf.Slot(v.buf.Len() - 1), nil
}

// Data returns the live elements as a slice sharing v's block, or nil when
// v is empty. The slice is invalidated like an iterator.
func (v *Vector[T]) Data() []T {
	if v.buf.Len() == 0 {
		return nil
	}
	return v.buf.Live()
}

// PushBack appends a copy of value. The copy is made into a temporary
// first and then moved into place by PushBackMove.
func (v *Vector[T]) PushBack(value T) error {
	t := v.ops()
	if !t.copyable {
		return ErrNotCopyable
	}
	var tmp T
	if err := t.copy(&tmp, &value); err != nil {
		return &ElementError{Op: OpCopy, Index: v.buf.Len(), cause: err}
	}
	err := v.PushBackMove(&tmp)
	t.destroy(&tmp)
	return err
}

// PushBackMove appends an element moved out of src. When v is full the
// block grows to 2*Cap()+1 first. src may point at an element of v, which
// is left moved-from. On failure v and *src are unchanged.
func (v *Vector[T]) PushBackMove(src *T) error {
	t := v.ops()
	n := v.buf.Len()
	if n < v.buf.Cap() {
		if err := t.move(v.buf.Slot(n), src); err != nil {
			return &ElementError{Op: OpMove, Index: n, cause: err}
		}
		v.buf.SetLen(n + 1)
		return nil
	}
	if k, ok := v.buf.IndexOf(src); ok {
		// src is relocated with the rest of the block; take it from its new slot.
		back := n - k
		return v.regrow("push_back", 2*v.buf.Cap()+1, n+1, OpMove, func(_ int, dst *T) error {
			return t.move(dst, storage.Offset(dst, -back))
		})
	}
	return v.regrow("push_back", 2*v.buf.Cap()+1, n+1, OpMove, func(_ int, dst *T) error {
		return t.move(dst, src)
	})
}

// EmplaceBack appends a default-constructed element.
func (v *Vector[T]) EmplaceBack() error {
	t := v.ops()
	n := v.buf.Len()
	if n < v.buf.Cap() {
		return v.grow("emplace_back", n+1, OpConstruct, func(_ int, dst *T) error {
			return t.construct(dst)
		})
	}
	return v.regrow("emplace_back", 2*v.buf.Cap()+1, n+1, OpConstruct, func(_ int, dst *T) error {
		return t.construct(dst)
	})
}

// PopBack destroys the last element, or returns ErrUnderflow. It never
// reallocates.
func (v *Vector[T]) PopBack() error {
	t := v.ops()
	n := v.buf.Len()
	if n == 0 {
		return ErrUnderflow
	}
	t.destroy(v.buf.Slot(n - 1))
	v.buf.SetLen(n - 1)
	return nil
}

// Reserve grows the block to at least n slots. It never shrinks: n <= Cap()
// is a no-op. On failure v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	v.ops()
	if n <= v.buf.Cap() {
		return nil
	}
	return v.regrow("reserve", n, v.buf.Len(), OpConstruct, nil)
}

// Resize sets the length to n, destroying surplus elements or appending
// default-constructed ones. Growing past Cap reallocates to exactly n
// slots. On failure v is unchanged.
func (v *Vector[T]) Resize(n int) error {
	t := v.ops()
	return v.resize(n, OpConstruct, func(_ int, dst *T) error {
		return t.construct(dst)
	})
}

// ResizeWith is Resize appending copies of value.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	t := v.ops()
	if !t.copyable {
		return ErrNotCopyable
	}
	return v.resize(n, OpCopy, func(_ int, dst *T) error {
		return t.copy(dst, &value)
	})
}

func (v *Vector[T]) resize(n int, op ElementOp, ctor func(i int, dst *T) error) error {
	if n < 0 {
		return invalidLength(n)
	}
	switch l := v.buf.Len(); {
	case n <= l:
		v.destroyRange(&v.buf, n, l)
		v.buf.SetLen(n)
		return nil
	case n <= v.buf.Cap():
		return v.grow("resize", n, op, ctor)
	default:
		return v.regrow("resize", n, n, op, ctor)
	}
}

// ShrinkToFit reallocates the block to exactly Len() slots, releasing it
// entirely when v is empty. On failure v is unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	v.ops()
	n := v.buf.Len()
	if n == v.buf.Cap() {
		return nil
	}
	if n == 0 {
		v.release(&v.buf)
		return nil
	}
	return v.regrow("shrink_to_fit", n, n, OpConstruct, nil)
}

// Clear destroys all elements. The capacity is kept.
func (v *Vector[T]) Clear() {
	v.ops()
	v.destroyRange(&v.buf, 0, v.buf.Len())
	v.buf.SetLen(0)
}

// Free destroys all elements and releases the block, refunding it to the
// resource controller. v is left empty and remains usable.
func (v *Vector[T]) Free() {
	v.Clear()
	v.release(&v.buf)
}
