package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[T any](v *Vector[T]) []T {
	out := make([]T, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}

func TestConstruction(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		v := New[int]()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())
		assert.True(t, v.Empty())
		assert.Nil(t, v.Data())
	})

	t.Run("WithCapacity", func(t *testing.T) {
		v, err := NewWithCapacity[int](5)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 5, v.Cap())
	})

	t.Run("Sized", func(t *testing.T) {
		v, err := NewSized[int](5)
		require.NoError(t, err)
		assert.Equal(t, 5, v.Len())
		assert.Equal(t, 5, v.Cap())
		assert.Equal(t, []int{0, 0, 0, 0, 0}, values(v))
	})

	t.Run("Filled", func(t *testing.T) {
		v, err := NewFilled(42, 5)
		require.NoError(t, err)
		assert.Equal(t, 42, v.Len())
		assert.Equal(t, 42, v.Cap())
		for x := range v.Values() {
			assert.Equal(t, 5, x)
		}
	})

	t.Run("InitializerList", func(t *testing.T) {
		src := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
		v, err := Of(src...)
		require.NoError(t, err)
		assert.Equal(t, 9, v.Len())
		assert.Equal(t, 9, v.Cap())
		assert.Equal(t, src, values(v))
	})

	t.Run("FromSlice", func(t *testing.T) {
		src := []string{"a", "b", "c"}
		v, err := FromSlice(src)
		require.NoError(t, err)
		assert.Equal(t, src, values(v))

		src[0] = "z"
		assert.Equal(t, "a", *v.Index(0))
	})

	t.Run("Range", func(t *testing.T) {
		src, err := Of(1, 2, 3, 4, 5)
		require.NoError(t, err)

		v, err := NewFromRange(src.Begin().Add(1), src.End().Sub(1))
		require.NoError(t, err)
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 3, v.Cap())
		assert.Equal(t, []int{2, 3, 4}, values(v))

		empty, err := NewFromRange(src.Begin(), src.Begin())
		require.NoError(t, err)
		assert.Equal(t, 0, empty.Cap())

		_, err = NewFromRange(src.End(), src.Begin())
		assert.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("NegativeLength", func(t *testing.T) {
		_, err := NewSized[int](-1)
		assert.ErrorIs(t, err, ErrInvalidLength)

		_, err = NewFilled(-3, 1)
		assert.ErrorIs(t, err, ErrInvalidLength)

		_, err = NewWithCapacity[int](-1)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var v Vector[int]
		require.NoError(t, v.PushBack(1))
		require.NoError(t, v.PushBack(2))
		assert.Equal(t, []int{1, 2}, values(&v))

		c, err := v.Clone()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, values(c))
	})
}

func TestElementAccess(t *testing.T) {
	v, err := Of(10, 20, 30)
	require.NoError(t, err)

	t.Run("Index", func(t *testing.T) {
		assert.Equal(t, 20, *v.Index(1))
		*v.Index(1) = 21
		assert.Equal(t, 21, *v.Index(1))
		*v.Index(1) = 20
	})

	t.Run("At", func(t *testing.T) {
		p, err := v.At(2)
		require.NoError(t, err)
		assert.Equal(t, 30, *p)

		for _, i := range []int{-1, 3, 100} {
			p, err := v.At(i)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.Nil(t, p)
		}
		assert.Equal(t, 3, v.Len())
	})

	t.Run("FrontBack", func(t *testing.T) {
		f, err := v.Front()
		require.NoError(t, err)
		assert.Equal(t, 10, *f)

		b, err := v.Back()
		require.NoError(t, err)
		assert.Equal(t, 30, *b)
	})

	t.Run("Underflow", func(t *testing.T) {
		e := New[int]()

		_, err := e.Front()
		assert.ErrorIs(t, err, ErrUnderflow)
		_, err = e.Back()
		assert.ErrorIs(t, err, ErrUnderflow)
		assert.ErrorIs(t, e.PopBack(), ErrUnderflow)
		assert.Equal(t, 0, e.Len())
		assert.Equal(t, 0, e.Cap())
	})

	t.Run("Data", func(t *testing.T) {
		d := v.Data()
		assert.Equal(t, []int{10, 20, 30}, d)
		assert.Equal(t, 3, cap(d))
		assert.Same(t, v.Index(0), &d[0])
	})
}

func TestPushPop(t *testing.T) {
	v, err := NewWithCapacity[int](5)
	require.NoError(t, err)

	require.NoError(t, v.PushBack(0))
	assert.Equal(t, 1, v.Len())
	require.NoError(t, v.PushBack(1))
	assert.Equal(t, 2, v.Len())

	for i := 2; i < 10; i++ {
		require.NoError(t, v.PushBack(i))
	}

	assert.Equal(t, 10, v.Len())
	assert.Less(t, v.Len(), v.Cap())

	for i := 0; i < v.Len(); i++ {
		assert.Equal(t, i, *v.Index(i))
	}

	f, _ := v.Front()
	b, _ := v.Back()
	assert.Equal(t, 0, *f)
	assert.Equal(t, 9, *b)

	capBefore := v.Cap()
	for i := 0; i < 10; i++ {
		b, err := v.Back()
		require.NoError(t, err)
		assert.Equal(t, 9-i, *b)
		require.NoError(t, v.PopBack())
	}
	assert.True(t, v.Empty())
	assert.Equal(t, capBefore, v.Cap())
}

func TestPushGrowth(t *testing.T) {
	v := New[int]()

	var caps []int
	for i := 0; i < 20; i++ {
		require.NoError(t, v.PushBack(i))
		if len(caps) == 0 || caps[len(caps)-1] != v.Cap() {
			caps = append(caps, v.Cap())
		}
		assert.LessOrEqual(t, v.Len(), v.Cap())
	}

	assert.Equal(t, []int{1, 3, 7, 15, 31}, caps)
	assert.Equal(t, 20, v.Len())
	for i := 0; i < 20; i++ {
		assert.Equal(t, i, *v.Index(i))
	}
}

func TestPushBackMove(t *testing.T) {
	v := New[[]int]()

	src := []int{1, 2, 3}
	require.NoError(t, v.PushBackMove(&src))
	assert.Nil(t, src)
	assert.Equal(t, []int{1, 2, 3}, *v.Index(0))
}

func TestEmplaceBack(t *testing.T) {
	v, err := Of(1, 2)
	require.NoError(t, err)

	require.NoError(t, v.EmplaceBack())
	assert.Equal(t, []int{1, 2, 0}, values(v))
	assert.Equal(t, 5, v.Cap())

	require.NoError(t, v.EmplaceBack())
	assert.Equal(t, []int{1, 2, 0, 0}, values(v))
	assert.Equal(t, 5, v.Cap())
}

func TestReserve(t *testing.T) {
	t.Run("NeverShrinks", func(t *testing.T) {
		v := New[int]()
		require.NoError(t, v.Reserve(10))
		require.NoError(t, v.Reserve(5))
		assert.Equal(t, 10, v.Cap())
		assert.Equal(t, 0, v.Len())
	})

	t.Run("KeepsElements", func(t *testing.T) {
		v, err := Of(1, 2, 3)
		require.NoError(t, err)
		base := v.buf.Base()

		require.NoError(t, v.Reserve(3))
		assert.Same(t, base, v.buf.Base())

		require.NoError(t, v.Reserve(100))
		assert.NotSame(t, base, v.buf.Base())
		assert.Equal(t, 100, v.Cap())
		assert.Equal(t, []int{1, 2, 3}, values(v))
		for _, x := range v.buf.Slots()[3:] {
			assert.Zero(t, x)
		}
	})
}

func TestResize(t *testing.T) {
	t.Run("MemWork", func(t *testing.T) {
		v, err := NewWithCapacity[int](10)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			require.NoError(t, v.PushBack(i))
		}

		require.NoError(t, v.ShrinkToFit())
		assert.Equal(t, 4, v.Cap())
		assert.Equal(t, 4, v.Len())

		require.NoError(t, v.Resize(10))
		assert.Equal(t, 10, v.Len())
		assert.LessOrEqual(t, v.Len(), v.Cap())
		for i := 0; i < 4; i++ {
			assert.Equal(t, i, *v.Index(i))
		}
		for i := 4; i < v.Len(); i++ {
			assert.Equal(t, 0, *v.Index(i))
		}

		require.NoError(t, v.Resize(2))
		assert.Equal(t, 2, v.Len())
		for i := 0; i < v.Len(); i++ {
			assert.Equal(t, i, *v.Index(i))
		}

		require.NoError(t, v.ResizeWith(15, 3))
		assert.Equal(t, 15, v.Len())
		for i := 2; i < v.Len(); i++ {
			assert.Equal(t, 3, *v.Index(i))
		}
	})

	t.Run("Sequence", func(t *testing.T) {
		v := New[int]()
		require.NoError(t, v.ResizeWith(42, 42))
		require.NoError(t, v.Resize(80))
		require.NoError(t, v.ResizeWith(100, 42))

		require.Equal(t, 100, v.Len())
		for i := 0; i < 42; i++ {
			assert.Equal(t, 42, *v.Index(i))
		}
		for i := 42; i < 80; i++ {
			assert.Equal(t, 0, *v.Index(i))
		}
		for i := 80; i < 100; i++ {
			assert.Equal(t, 42, *v.Index(i))
		}
	})

	t.Run("Truncate", func(t *testing.T) {
		v, err := Of(1, 2, 3, 4, 5)
		require.NoError(t, err)
		base := v.buf.Base()

		require.NoError(t, v.Resize(2))
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, 5, v.Cap())
		assert.Same(t, base, v.buf.Base())
		assert.Equal(t, []int{1, 2}, values(v))
		assert.Equal(t, []int{0, 0, 0}, v.buf.Slots()[2:])
	})

	t.Run("ExtendInCapacity", func(t *testing.T) {
		v, err := NewWithCapacity[int](8)
		require.NoError(t, err)
		require.NoError(t, v.PushBack(7))
		base := v.buf.Base()

		require.NoError(t, v.ResizeWith(8, 9))
		assert.Same(t, base, v.buf.Base())
		assert.Equal(t, 8, v.Cap())
		assert.Equal(t, []int{7, 9, 9, 9, 9, 9, 9, 9}, values(v))
	})

	t.Run("ExtendPastCapacity", func(t *testing.T) {
		v, err := Of(1, 2)
		require.NoError(t, err)

		require.NoError(t, v.Resize(7))
		assert.Equal(t, 7, v.Cap())
		assert.Equal(t, []int{1, 2, 0, 0, 0, 0, 0}, values(v))
	})

	t.Run("Negative", func(t *testing.T) {
		v, err := Of(1)
		require.NoError(t, err)
		assert.ErrorIs(t, v.Resize(-1), ErrInvalidLength)
		assert.Equal(t, 1, v.Len())
	})
}

func TestShrinkToFit(t *testing.T) {
	t.Run("NoOp", func(t *testing.T) {
		v, err := Of(1, 2)
		require.NoError(t, err)
		base := v.buf.Base()
		require.NoError(t, v.ShrinkToFit())
		assert.Same(t, base, v.buf.Base())
	})

	t.Run("Empty", func(t *testing.T) {
		v, err := NewWithCapacity[int](16)
		require.NoError(t, err)
		require.NoError(t, v.ShrinkToFit())
		assert.Equal(t, 0, v.Cap())
		assert.Nil(t, v.buf.Base())
	})

	t.Run("Shrinks", func(t *testing.T) {
		v, err := NewWithCapacity[string](16)
		require.NoError(t, err)
		require.NoError(t, v.PushBack("x"))
		require.NoError(t, v.PushBack("y"))
		require.NoError(t, v.ShrinkToFit())
		assert.Equal(t, 2, v.Cap())
		assert.Equal(t, []string{"x", "y"}, values(v))
	})
}

func TestClearAndFree(t *testing.T) {
	v, err := Of(1, 2, 3)
	require.NoError(t, err)

	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []int{0, 0, 0}, v.buf.Slots())

	require.NoError(t, v.PushBack(4))
	v.Free()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())

	require.NoError(t, v.PushBack(5))
	assert.Equal(t, []int{5}, values(v))
}

func TestCopyAndMove(t *testing.T) {
	t.Run("CloneIndependence", func(t *testing.T) {
		v, err := Of(1, 2, 3)
		require.NoError(t, err)
		require.NoError(t, v.Reserve(10))

		c, err := v.Clone()
		require.NoError(t, err)
		assert.Equal(t, 3, c.Cap())
		require.NoError(t, c.PushBack(4))
		*c.Index(0) = 100

		assert.Equal(t, []int{1, 2, 3}, values(v))
		assert.Equal(t, []int{100, 2, 3, 4}, values(c))
	})

	t.Run("Assign", func(t *testing.T) {
		v, err := Of(1, 2, 3)
		require.NoError(t, err)
		w, err := Of(9)
		require.NoError(t, err)

		require.NoError(t, w.Assign(v))
		require.NoError(t, w.PushBack(4))
		assert.Equal(t, []int{1, 2, 3, 4}, values(w))
		assert.Equal(t, []int{1, 2, 3}, values(v))

		require.NoError(t, w.Assign(w))
		assert.Equal(t, []int{1, 2, 3, 4}, values(w))
	})

	t.Run("Take", func(t *testing.T) {
		a, err := Of(1, 2, 3)
		require.NoError(t, err)
		base := a.buf.Base()

		b := a.Take()
		assert.Equal(t, 0, a.Len())
		assert.Equal(t, 0, a.Cap())
		assert.Nil(t, a.buf.Base())
		assert.Equal(t, []int{1, 2, 3}, values(b))
		assert.Same(t, base, b.buf.Base())

		require.NoError(t, a.PushBack(7))
		assert.Equal(t, []int{7}, values(a))
	})

	t.Run("MoveAssign", func(t *testing.T) {
		a, err := Of(1, 2)
		require.NoError(t, err)
		b, err := Of(3, 4, 5)
		require.NoError(t, err)

		a.MoveAssign(b)
		assert.Equal(t, []int{3, 4, 5}, values(a))
		assert.Equal(t, []int{1, 2}, values(b))
	})

	t.Run("Swap", func(t *testing.T) {
		a := New[int]()
		b, err := Of(1)
		require.NoError(t, err)

		a.Swap(b)
		assert.Equal(t, []int{1}, values(a))
		assert.True(t, b.Empty())
		assert.Equal(t, 0, b.Cap())
	})
}

type handle struct {
	fd int
}

func (handle) MoveOnly() {}

type counted struct {
	n *int
}

func (c *counted) Destroy() {
	if c.n != nil {
		*c.n++
	}
}

func TestTraits(t *testing.T) {
	t.Run("Strategy", func(t *testing.T) {
		assert.Equal(t, StrategyMove, traitsOf[int]().strategy())
		assert.Equal(t, StrategyMove, traitsOf[handle]().strategy())
		assert.Equal(t, StrategyMove, traitsOf[*handle]().strategy())
		assert.False(t, traitsOf[handle]().copyable)
		assert.Equal(t, "move", StrategyMove.String())
		assert.Equal(t, "copy", StrategyCopy.String())
	})

	t.Run("MoveOnlyWithoutMover", func(t *testing.T) {
		v := New[handle]()
		for i := 0; i < 5; i++ {
			h := handle{fd: i}
			require.NoError(t, v.PushBackMove(&h))
			assert.Zero(t, h)
		}
		require.NoError(t, v.Reserve(20))
		require.NoError(t, v.ShrinkToFit())
		assert.Equal(t, 5, v.Cap())
		for i := 0; i < 5; i++ {
			assert.Equal(t, i, v.Index(i).fd)
		}

		assert.ErrorIs(t, v.PushBack(handle{}), ErrNotCopyable)
		assert.ErrorIs(t, v.ResizeWith(10, handle{}), ErrNotCopyable)
		_, err := v.Clone()
		assert.ErrorIs(t, err, ErrNotCopyable)
		assert.ErrorIs(t, New[handle]().Assign(v), ErrNotCopyable)
		_, err = NewFilled(3, handle{})
		assert.ErrorIs(t, err, ErrNotCopyable)
		_, err = Of(handle{})
		assert.ErrorIs(t, err, ErrNotCopyable)
		assert.Equal(t, 5, v.Len())

		require.NoError(t, v.Resize(7))
		assert.Equal(t, 7, v.Len())
	})

	t.Run("DestroyCalled", func(t *testing.T) {
		n := 0
		v := New[counted]()
		for i := 0; i < 4; i++ {
			require.NoError(t, v.PushBack(counted{n: &n}))
		}
		// Growth relocates by move, so destroyed originals are zero.
		assert.Equal(t, 0, n)

		require.NoError(t, v.PopBack())
		assert.Equal(t, 1, n)
		require.NoError(t, v.Resize(1))
		assert.Equal(t, 3, n)
		v.Clear()
		assert.Equal(t, 4, n)
	})
}

func TestErrorsWrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(&ElementError{Op: OpCopy, Index: 3, cause: cause})

	assert.ErrorIs(t, err, ErrElementOperation)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "copy of element 3 failed: boom", err.Error())

	var ee *ElementError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, OpCopy, ee.Op)
	assert.Equal(t, 3, ee.Index)
	assert.Equal(t, "ElementOp(9)", ElementOp(9).String())
}
