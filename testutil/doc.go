// Package testutil provides testing utilities for vector.
//
// This package is intended for use in tests and benchmarks only.
// It provides element types that count their live instances in a Ledger
// and fail on demand, plus a seeded RNG for randomized operation
// sequences.
//
// # Leak Checking
//
//	testutil.Default.Reset()
//	testutil.Default.FailOn(50, testutil.FaultConstruct)
//	_, err := vector.NewSized[testutil.Item](51)  // fails
//	testutil.Default.Live()                       // 0
//
// # Element Types
//
//   - Item: construct and copy may fail, move never fails.
//   - FragileItem: construct, copy and move may fail (relocated by copy).
//   - MoveOnlyItem: cannot be copied, move may fail (relocated by move).
//
// The types register with Default. Tests using them must not run in
// parallel with each other.
package testutil
