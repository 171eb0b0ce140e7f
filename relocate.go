package vector

import (
	"fmt"
	"time"

	"github.com/hupe1980/vector/internal/storage"
)

func (v *Vector[T]) allocate(n int) (storage.Buffer[T], error) {
	b, bytes, err := v.alloc.Allocate(n)
	if n > 0 {
		v.opts.metricsCollector.RecordAllocation(n, bytes, err)
	}
	return b, err
}

func (v *Vector[T]) release(b *storage.Buffer[T]) {
	n := b.Cap()
	if n == 0 {
		return
	}
	bytes := v.alloc.Release(b)
	v.opts.metricsCollector.RecordRelease(n, bytes)
}

func (v *Vector[T]) rolledBack(op string, err error) {
	v.opts.metricsCollector.RecordRollback(op, err)
	v.opts.logger.LogRollback(op, v.buf.Len(), v.buf.Cap(), err)
}

func (v *Vector[T]) destroyRange(b *storage.Buffer[T], from, to int) {
	for i := from; i < to; i++ {
		v.traits.destroy(b.Slot(i))
	}
}

// fill constructs slots [from, to) of b. If slot k fails, slots [from, k)
// are destroyed and slot k is zeroed again.
func (v *Vector[T]) fill(b *storage.Buffer[T], from, to int, op ElementOp, ctor func(i int, dst *T) error) error {
	for i := from; i < to; i++ {
		if err := ctor(i-from, b.Slot(i)); err != nil {
			var zero T
			*b.Slot(i) = zero
			v.destroyRange(b, from, i)
			return &ElementError{Op: op, Index: i, cause: err}
		}
	}
	return nil
}

// build allocates exactly n slots and constructs all of them into v, which
// must not hold a block yet.
func (v *Vector[T]) build(op string, n int, eop ElementOp, ctor func(i int, dst *T) error) error {
	if n < 0 {
		return invalidLength(n)
	}
	b, err := v.allocate(n)
	if err != nil {
		return err
	}
	if err := v.fill(&b, 0, n, eop, ctor); err != nil {
		v.release(&b)
		v.rolledBack(op, err)
		return err
	}
	b.SetLen(n)
	v.buf = b
	return nil
}

// buildFrom is build with copies of src.
func (v *Vector[T]) buildFrom(src []T) error {
	t := v.ops()
	if !t.copyable {
		return ErrNotCopyable
	}
	return v.build("copy", len(src), OpCopy, func(i int, dst *T) error {
		return t.copy(dst, &src[i])
	})
}

// grow constructs [Len(), n) in place; n must not exceed Cap().
func (v *Vector[T]) grow(op string, n int, eop ElementOp, ctor func(i int, dst *T) error) error {
	if err := v.fill(&v.buf, v.buf.Len(), n, eop, ctor); err != nil {
		v.rolledBack(op, err)
		return err
	}
	v.buf.SetLen(n)
	return nil
}

// regrow moves v into a new block of newCap slots and constructs the slots
// [Len(), newLen) there with ctor (if any). The new block is adopted only
// when every step succeeded; otherwise the relocation is undone and the
// new block released.
func (v *Vector[T]) regrow(op string, newCap, newLen int, eop ElementOp, ctor func(i int, dst *T) error) error {
	t := v.ops()
	nb, err := v.allocate(newCap)
	if err != nil {
		return err
	}

	n := v.buf.Len()
	s := t.strategy()
	start := time.Now()

	done, err := v.relocate(&nb, n, s)
	if err == nil && ctor != nil {
		err = v.fill(&nb, n, newLen, eop, ctor)
	}
	v.opts.metricsCollector.RecordRelocation(n, s, time.Since(start), err)
	if err != nil {
		err = v.unrelocate(&nb, done, s, err)
		v.release(&nb)
		v.rolledBack(op, err)
		return err
	}

	// The originals are copied-from or moved-from now.
	oldCap := v.buf.Cap()
	v.destroyRange(&v.buf, 0, n)
	nb.SetLen(newLen)
	v.buf.Swap(&nb)
	v.release(&nb)

	v.opts.logger.LogReallocation(op, oldCap, newCap, newLen, s)
	return nil
}

// relocate constructs the first n elements of v into nb using s and
// returns how many succeeded.
func (v *Vector[T]) relocate(nb *storage.Buffer[T], n int, s Strategy) (int, error) {
	t := v.traits
	op, transfer := OpMove, t.move
	if s == StrategyCopy {
		op, transfer = OpCopy, t.copy
	}
	for i := 0; i < n; i++ {
		if err := transfer(nb.Slot(i), v.buf.Slot(i)); err != nil {
			return i, &ElementError{Op: op, Index: i, cause: err}
		}
	}
	return n, nil
}

// unrelocate undoes the first done relocations into nb and returns the
// error to report. Copies are simply destroyed. Moved elements are moved
// back; if that fails too, everything left is destroyed, v is emptied and
// the returned error matches ErrContentsLost.
func (v *Vector[T]) unrelocate(nb *storage.Buffer[T], done int, s Strategy, cause error) error {
	t := v.traits
	if s == StrategyCopy {
		v.destroyRange(nb, 0, done)
		return cause
	}

	for i := 0; i < done; i++ {
		t.destroy(v.buf.Slot(i))
		if err := t.move(v.buf.Slot(i), nb.Slot(i)); err != nil {
			n := v.buf.Len()
			v.destroyRange(&v.buf, 0, i)
			v.destroyRange(&v.buf, i+1, n)
			v.destroyRange(nb, i, done)
			v.buf.SetLen(0)
			v.release(&v.buf)
			back := &ElementError{Op: OpMove, Index: i, cause: err}
			return fmt.Errorf("%w: %w (restoring: %w)", ErrContentsLost, cause, back)
		}
		t.destroy(nb.Slot(i))
	}
	return cause
}
