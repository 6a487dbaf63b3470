package ga

import (
	"fmt"
	"math/rand"
)

// unset marks an empty child slot during crossover.
const unset = -1

// OrderCrossover draws two distinct cut points from [1, len-1), sorts them
// into start < end, and returns OrderCrossoverAt(p1, p2, start, end).
//
// With fewer than two interior positions there is exactly one valid tour,
// so a copy of p1 is returned without consuming randomness.
// A nil r uses the default deterministic stream.
//
// Complexity: O(n).
func OrderCrossover(p1, p2 Tour, r *rand.Rand) (Tour, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, err
	}
	size := len(p1)
	if size-2 < 2 {
		return p1.Clone(), nil
	}

	start, end := twoDistinct(1, size-1, orDefault(r))
	if start > end {
		start, end = end, start
	}
	return OrderCrossoverAt(p1, p2, start, end)
}

// OrderCrossoverAt is order crossover (OX) with fixed cut points:
//
//  1. child[0] and child[len-1] are the anchor;
//  2. child[start:end] = p1[start:end];
//  3. the remaining slots, left to right from index 1, receive p2's cities
//     in p2's order, skipping cities already in the child.
//
// Contract:
//   - p1, p2 are valid tours over the same cities and anchor;
//   - 1 ≤ start < end ≤ len-2.
//
// Neither parent is modified. Errors: ErrInvalidInput for bad parents or cut
// points; ErrInvariantViolation if the child breaks the tour invariants.
//
// Complexity: O(n) time and space.
func OrderCrossoverAt(p1, p2 Tour, start, end int) (Tour, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, err
	}
	var (
		size = len(p1)
		n    = size - 1
	)
	if start < 1 || end > size-2 || start >= end {
		return nil, fmt.Errorf("%w: cut points [%d,%d) outside [1,%d)", ErrInvalidInput, start, end, size-1)
	}

	var (
		child   = make(Tour, size)
		present = make([]bool, n)
		anchor  = p1[0]
		i       int
		slot    = 1
		c       int
	)
	for i = range child {
		child[i] = unset
	}
	child[0], child[n] = anchor, anchor
	present[anchor] = true

	for i = start; i < end; i++ {
		child[i] = p1[i]
		present[p1[i]] = true
	}

	for _, c = range p2 {
		if present[c] {
			continue
		}
		for slot < n && child[slot] != unset {
			slot++
		}
		if slot >= n {
			return nil, fmt.Errorf("%w: crossover ran out of slots", ErrInvariantViolation)
		}
		child[slot] = c
		present[c] = true
	}

	if err := ValidateTour(child, n, anchor); err != nil {
		return nil, fmt.Errorf("%w: crossover child: %v", ErrInvariantViolation, err)
	}
	return child, nil
}

// checkParents requires two valid tours of equal length sharing an anchor.
func checkParents(p1, p2 Tour) error {
	if len(p1) < 2 || len(p1) != len(p2) {
		return fmt.Errorf("%w: parent lengths %d and %d", ErrInvalidInput, len(p1), len(p2))
	}
	var (
		n      = len(p1) - 1
		anchor = p1[0]
		err    error
	)
	if err = ValidateTour(p1, n, anchor); err != nil {
		return fmt.Errorf("parent 1: %w", err)
	}
	if err = ValidateTour(p2, n, anchor); err != nil {
		return fmt.Errorf("parent 2: %w", err)
	}
	return nil
}
