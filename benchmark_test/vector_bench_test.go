package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/vector"
	"github.com/hupe1980/vector/resource"
	"github.com/hupe1980/vector/testutil"
)

// BenchmarkPushBack measures amortized append cost with and without a
// pre-sized block.
func BenchmarkPushBack(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("Grow/%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := vector.New[int64]()
				for j := 0; j < n; j++ {
					if err := v.PushBack(int64(j)); err != nil {
						b.Fatal(err)
					}
				}
			}
		})

		b.Run(fmt.Sprintf("Reserved/%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v, err := vector.NewWithCapacity[int64](n)
				if err != nil {
					b.Fatal(err)
				}
				for j := 0; j < n; j++ {
					if err := v.PushBack(int64(j)); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

// BenchmarkRelocation compares the move and copy strategies on a single
// reallocation of n elements.
func BenchmarkRelocation(b *testing.B) {
	const n = 4096

	b.Run("Move", func(b *testing.B) {
		testutil.Default.Reset()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v, err := vector.NewSized[testutil.Item](n)
			if err != nil {
				b.Fatal(err)
			}
			if err := v.Reserve(2 * n); err != nil {
				b.Fatal(err)
			}
			v.Free()
		}
	})

	b.Run("Copy", func(b *testing.B) {
		testutil.Default.Reset()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v, err := vector.NewSized[testutil.FragileItem](n)
			if err != nil {
				b.Fatal(err)
			}
			if err := v.Reserve(2 * n); err != nil {
				b.Fatal(err)
			}
			v.Free()
		}
	})
}

// BenchmarkObservability measures the overhead of metrics collection and a
// resource budget on a growing vector.
func BenchmarkObservability(b *testing.B) {
	cases := []struct {
		name string
		opts func() []vector.Option
	}{
		{"None", func() []vector.Option { return nil }},
		{"Metrics", func() []vector.Option {
			return []vector.Option{vector.WithMetricsCollector(&vector.BasicMetricsCollector{})}
		}},
		{"Budget", func() []vector.Option {
			rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 30})
			return []vector.Option{vector.WithResourceController(rc)}
		}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			opts := tc.opts()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := vector.New[int64](opts...)
				for j := 0; j < 1024; j++ {
					if err := v.PushBack(int64(j)); err != nil {
						b.Fatal(err)
					}
				}
				v.Free()
			}
		})
	}
}
