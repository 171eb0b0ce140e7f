// Package resource implements a memory budget shared by vectors.
//
// Every storage block a vector allocates is charged against the
// Controller it was configured with, and refunded when the block is
// released. When a hard limit is configured, an allocation that would
// exceed it fails fast with ErrMemoryLimitExceeded and the vector
// operation that needed the block reports an allocation failure without
// changing state:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB for all vectors using rc
//	})
//
//	v := vector.New[int](vector.WithResourceController(rc))
//	if err := v.Reserve(1 << 30); errors.Is(err, vector.ErrAllocation) {
//	    // v is unchanged
//	}
//	defer v.Free()
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use. The underlying
// implementations use a weighted semaphore and atomic counters.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
