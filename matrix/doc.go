// SPDX-License-Identifier: MIT

// Package matrix provides the flat, row-major Dense matrix used as backing
// storage for precomputed distance tables.
//
// Dense keeps r*c float64 values in a single slice, so an (i, j) lookup is a
// bounds check plus one multiply-add. Values written through Set must be
// finite; square matrices may be filled pairwise with SetSymmetric.
//
// Dense is not safe for concurrent mutation. Once filled, concurrent readers
// are fine.
package matrix
