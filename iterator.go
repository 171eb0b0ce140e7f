package vector

import (
	"iter"
)

// Iterator is a random-access cursor into a vector's block.
//
// An Iterator does not own anything and is not checked: moving it outside
// [Begin(), End()] or dereferencing End() is undefined. It is invalidated
// by every operation that reallocates the block (growing Reserve, Resize
// or PushBack, ShrinkToFit, Free) and by Take, Swap and MoveAssign.
type Iterator[T any] struct {
	data []T
	pos  int
}

// Deref returns a pointer to the element under the cursor.
func (it Iterator[T]) Deref() *T {
	return &it.data[it.pos]
}

// Value returns a copy of the element under the cursor.
func (it Iterator[T]) Value() T {
	return it.data[it.pos]
}

// At returns a pointer to the element n positions away.
func (it Iterator[T]) At(n int) *T {
	return &it.data[it.pos+n]
}

// Inc advances the cursor by one and returns it (pre-increment).
func (it *Iterator[T]) Inc() Iterator[T] {
	it.pos++
	return *it
}

// PostInc advances the cursor by one and returns its previous position.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.pos++
	return old
}

// Dec moves the cursor back by one and returns it (pre-decrement).
func (it *Iterator[T]) Dec() Iterator[T] {
	it.pos--
	return *it
}

// PostDec moves the cursor back by one and returns its previous position.
func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.pos--
	return old
}

// AddAssign moves the cursor by n (which may be negative) and returns it.
func (it *Iterator[T]) AddAssign(n int) Iterator[T] {
	it.pos += n
	return *it
}

// SubAssign moves the cursor by -n and returns it.
func (it *Iterator[T]) SubAssign(n int) Iterator[T] {
	it.pos -= n
	return *it
}

// Add returns a cursor n positions after it.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns a cursor n positions before it.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.pos -= n
	return it
}

// Diff returns the signed distance it - other. Both must come from the same
// block.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.pos - other.pos
}

// Compare returns -1, 0 or +1 as it is before, at or after other.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	switch {
	case it.pos < other.pos:
		return -1
	case it.pos > other.pos:
		return 1
	default:
		return 0
	}
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.pos < other.pos
}

func (it Iterator[T]) LessEqual(other Iterator[T]) bool {
	return it.pos <= other.pos
}

func (it Iterator[T]) Greater(other Iterator[T]) bool {
	return it.pos > other.pos
}

func (it Iterator[T]) GreaterEqual(other Iterator[T]) bool {
	return it.pos >= other.pos
}

// Distance returns the number of increments from first to last.
func Distance[T any](first, last Iterator[T]) int {
	return last.Diff(first)
}

// ReverseIterator walks a vector's block from back to front. It refers to
// the element before its base position, so RBegin() refers to the last
// element and REnd() sits before the first.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Base returns the forward cursor one position after the referenced element.
func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}

func (r ReverseIterator[T]) Deref() *T {
	return r.base.At(-1)
}

func (r ReverseIterator[T]) Value() T {
	return *r.base.At(-1)
}

func (r ReverseIterator[T]) At(n int) *T {
	return r.base.At(-n - 1)
}

func (r *ReverseIterator[T]) Inc() ReverseIterator[T] {
	r.base.pos--
	return *r
}

func (r *ReverseIterator[T]) PostInc() ReverseIterator[T] {
	old := *r
	r.base.pos--
	return old
}

func (r *ReverseIterator[T]) Dec() ReverseIterator[T] {
	r.base.pos++
	return *r
}

func (r *ReverseIterator[T]) PostDec() ReverseIterator[T] {
	old := *r
	r.base.pos++
	return old
}

func (r *ReverseIterator[T]) AddAssign(n int) ReverseIterator[T] {
	r.base.pos -= n
	return *r
}

func (r *ReverseIterator[T]) SubAssign(n int) ReverseIterator[T] {
	r.base.pos += n
	return *r
}

func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	r.base.pos -= n
	return r
}

func (r ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	r.base.pos += n
	return r
}

// Diff returns the signed distance r - other in reverse order.
func (r ReverseIterator[T]) Diff(other ReverseIterator[T]) int {
	return other.base.pos - r.base.pos
}

func (r ReverseIterator[T]) Compare(other ReverseIterator[T]) int {
	return other.base.Compare(r.base)
}

func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.pos == other.base.pos
}

func (r ReverseIterator[T]) Less(other ReverseIterator[T]) bool {
	return r.base.pos > other.base.pos
}

func (r ReverseIterator[T]) LessEqual(other ReverseIterator[T]) bool {
	return r.base.pos >= other.base.pos
}

func (r ReverseIterator[T]) Greater(other ReverseIterator[T]) bool {
	return r.base.pos < other.base.pos
}

func (r ReverseIterator[T]) GreaterEqual(other ReverseIterator[T]) bool {
	return r.base.pos <= other.base.pos
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{data: v.buf.Slots()}
}

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{data: v.buf.Slots(), pos: v.buf.Len()}
}

// RBegin returns a reverse cursor at the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.End()}
}

// REnd returns a reverse cursor one before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.Begin()}
}

// All returns an iterator over index-value pairs in order.
// The vector must not be resized while iterating.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.buf.Live() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.buf.Live() {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := v.buf.Live()
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}
