package vector

// Initializer is implemented by element types whose default construction
// does more than produce the zero value, or can fail. Init is called on a
// pointer to a zeroed slot.
type Initializer interface {
	Init() error
}

// Cloner is implemented by element types whose copy construction does more
// than assignment, or can fail. Clone must not modify the receiver.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is implemented by element types whose move construction can fail.
// On success the receiver is left in a moved-from state that is still
// destroyed later; on failure the receiver must be unchanged.
//
// Types without Mover are moved by assignment followed by zeroing the
// source, which never fails.
type Mover[T any] interface {
	MoveOut() (T, error)
}

// Destroyer is implemented by element types that release resources when
// destroyed. Destroy is also called on moved-from and zero values.
type Destroyer interface {
	Destroy()
}

// MoveOnly marks element types that cannot be copy-constructed.
type MoveOnly interface {
	MoveOnly()
}

// Strategy is how live elements are relocated into a replacement block.
type Strategy uint8

const (
	// StrategyMove relocates by move construction.
	StrategyMove Strategy = iota
	// StrategyCopy relocates by copy construction, leaving the sources intact
	// until the replacement block is adopted.
	StrategyCopy
)

func (s Strategy) String() string {
	if s == StrategyCopy {
		return "copy"
	}
	return "move"
}

// traits is the per element type dispatch table, resolved once from the
// optional interfaces above.
type traits[T any] struct {
	construct func(dst *T) error
	copy      func(dst, src *T) error
	move      func(dst, src *T) error
	destroy   func(p *T)

	copyable       bool
	moveNeverFails bool
}

// strategy applies the move-or-copy rule: move when moving cannot fail or
// copying is impossible, copy otherwise.
func (t *traits[T]) strategy() Strategy {
	if t.moveNeverFails || !t.copyable {
		return StrategyMove
	}
	return StrategyCopy
}

// lookup resolves I on the method set of *T, which is what a slot pointer
// carries, and returns an accessor binding a slot pointer to I. For a
// pointer element type *U the slot is **U, so methods of U are not
// inherited: the vector owns the pointer, not the pointee.
func lookup[I any, T any]() (func(p *T) I, bool) {
	var p *T
	if _, ok := any(p).(I); !ok {
		return nil, false
	}
	return func(p *T) I { return any(p).(I) }, true
}

func traitsOf[T any]() *traits[T] {
	t := &traits[T]{
		construct: func(*T) error { return nil },
		copy: func(dst, src *T) error {
			*dst = *src
			return nil
		},
		move: func(dst, src *T) error {
			var zero T
			*dst = *src
			*src = zero
			return nil
		},
		destroy: func(p *T) {
			var zero T
			*p = zero
		},
		copyable:       true,
		moveNeverFails: true,
	}

	if as, ok := lookup[Initializer, T](); ok {
		t.construct = func(dst *T) error {
			return as(dst).Init()
		}
	}

	if as, ok := lookup[Cloner[T], T](); ok {
		t.copy = func(dst, src *T) error {
			v, err := as(src).Clone()
			if err != nil {
				return err
			}
			*dst = v
			return nil
		}
	}

	if _, ok := lookup[MoveOnly, T](); ok {
		t.copyable = false
		t.copy = func(*T, *T) error { return ErrNotCopyable }
	}

	if as, ok := lookup[Mover[T], T](); ok {
		t.moveNeverFails = false
		t.move = func(dst, src *T) error {
			v, err := as(src).MoveOut()
			if err != nil {
				return err
			}
			*dst = v
			return nil
		}
	}

	if as, ok := lookup[Destroyer, T](); ok {
		t.destroy = func(p *T) {
			as(p).Destroy()
			var zero T
			*p = zero
		}
	}

	return t
}
