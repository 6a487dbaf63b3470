// Package exact computes the optimal round trip over a small distance.Table
// with the Held–Karp dynamic program. It serves as a reference point for the
// heuristic results of package ga: the CLI reports the gap to the optimum
// when a map is small enough.
//
// Tours follow the ga.Tour conventions: they start and end at the anchor
// (index 0) and visit every other city exactly once.
//
// Complexity: O(n²·2ⁿ) time and O(n·2ⁿ) memory, so Solve refuses tables
// with more than MaxCities cities.
package exact
