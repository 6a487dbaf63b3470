// Package distance provides the precomputed Euclidean distance table used by
// tour fitness evaluation.
//
// A Table is built once from an ordered city set. Every city receives a
// stable integer index equal to its position in the input; index 0 is the
// anchor city that every tour starts and ends at. Distances live in a flat
// row-major matrix.Dense, so both index lookups (At) and identifier lookups
// (Lookup) are O(1).
//
// Contract:
//   - IDs are unique and non-empty; coordinates are finite.
//   - The table is symmetric and complete, with an exact zero diagonal.
//   - A Table is immutable after New and safe for concurrent readers.
//
// Errors: ErrInvalidInput for malformed city sets, ErrUnknownCity for
// lookups of identifiers or indices that are not in the table.
package distance
