package vector

import (
	"testing"

	"github.com/hupe1980/vector/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomOperations runs seeded operation sequences with random failure
// injection against a slice model.
func TestRandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		rng := testutil.NewRNG(seed)
		ledger := testutil.Default
		ledger.Reset()

		v := New[testutil.Item]()
		var model []int

		for step := 0; step < 500; step++ {
			var value int
			var proto testutil.Item
			op := rng.Intn(8)
			if op == 0 || op == 7 {
				value = rng.Intn(1000)
				var err error
				proto, err = testutil.NewItem(value)
				require.NoError(t, err)
			}

			if rng.Chance(0.3) {
				ledger.FailOn(1+rng.Intn(4), testutil.FaultAny)
			}
			before := snap(v)

			var err error
			var next []int
			switch op {
			case 0:
				err = v.PushBack(proto)
				next = append(append([]int(nil), model...), value)
			case 1:
				err = v.PopBack()
				if len(model) == 0 {
					require.ErrorIs(t, err, ErrUnderflow)
					next = model
				} else {
					next = model[:len(model)-1]
				}
			case 2:
				n := rng.Intn(24)
				err = v.Resize(n)
				next = resizeModel(model, n, 0)
			case 3:
				n := rng.Intn(32)
				err = v.Reserve(n)
				next = model
			case 4:
				err = v.ShrinkToFit()
				next = model
			case 5:
				v.Clear()
				next = nil
			case 6:
				err = v.EmplaceBack()
				next = append(append([]int(nil), model...), 0)
			case 7:
				n := rng.Intn(24)
				err = v.ResizeWith(n, proto)
				next = resizeModel(model, n, value)
			}
			ledger.ClearFaults()
			proto.Destroy()

			if err != nil {
				if op != 1 {
					requireUnchanged(t, before, v)
				}
			} else {
				model = next
			}

			require.LessOrEqual(t, v.Len(), v.Cap(), "seed %d step %d", seed, step)
			require.Equal(t, len(model), v.Len(), "seed %d step %d", seed, step)
			if len(model) > 0 {
				require.Equal(t, model, itemValues(v), "seed %d step %d", seed, step)
			}
			require.Equal(t, v.Len(), ledger.Live(), "seed %d step %d", seed, step)
			if op == 4 && err == nil {
				require.Equal(t, v.Len(), v.Cap())
			}
		}

		v.Free()
		assert.Equal(t, 0, ledger.Live())
		assert.Equal(t, 0, ledger.DoubleDestroys())
	}
}

func resizeModel(model []int, n, fill int) []int {
	if n <= len(model) {
		return model[:n]
	}
	out := append([]int(nil), model...)
	for len(out) < n {
		out = append(out, fill)
	}
	return out
}
