// Package ga solves the Travelling Salesman Problem heuristically with a
// generational genetic algorithm over a precomputed distance.Table.
//
// A tour is a slice of city indices of length n+1 that starts and ends at the
// anchor (index 0 of the table) and visits every other city exactly once.
// One generation of the Solver:
//
//  1. Tournament selection: PopulationSize trials, each sampling k distinct
//     individuals and keeping the shortest. Winners may repeat across trials.
//  2. Order crossover (OX) of sequential pairs (i, i+1 mod size), producing
//     two children per pair, one for each parent order.
//  3. Swap mutation of every child with probability MutationRate.
//  4. Replacement of the whole population (no elitism).
//  5. Evaluation and best-so-far tracking (strict improvement only).
//
// Operators are pure: they never modify their input tours and always return
// fresh slices when the result differs, so a parent selected several times
// in one generation is never aliased by its children.
//
// Determinism: all randomness flows through an explicit *rand.Rand. Use
// WithSeed or WithRand to make a run reproducible; a Solver must not be
// shared between goroutines, but independent Solvers over the same Table can
// run concurrently.
//
// Errors:
//   - ErrInvalidInput        - malformed parameters, tables, or tours.
//   - ErrInvariantViolation  - an operator produced an invalid tour (a bug).
//   - distance.ErrUnknownCity is propagated from fitness lookups.
package ga
