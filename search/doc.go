// Package search implements binary search in its classic forms: exact
// lookup, boundary positions, rotated arrays, sorted matrices, and
// search over an answer space.
//
// What:
//
//   - Binary — exact-match search in an ascending slice, -1 when absent.
//   - LowerBound / UpperBound — first position ≥ / > a target.
//   - Rotated — exact-match search in an ascending slice rotated at an
//     unknown pivot.
//   - Matrix — exact-match search in a fully row-wise sorted matrix.
//   - MinEatingSpeed — smallest feasible rate via binary search on the
//     answer space rather than on the data.
//
// Why:
//
//   - Halving the candidate range each step turns linear scans into
//     logarithmic ones wherever order (or monotone feasibility) exists.
//
// Complexity:
//
//   - Binary, LowerBound, UpperBound, Rotated: O(log n), Memory: O(1).
//   - Matrix: O(log(rows·cols)), Memory: O(1).
//   - MinEatingSpeed: O(n log max(piles)), Memory: O(1).
//
// Sortedness is a precondition throughout and is never verified; the
// logarithmic bound leaves no room for checking it.
//
// Errors:
//
//   - ErrEmptyInput: MinEatingSpeed got no piles.
//   - ErrInfeasible: MinEatingSpeed got fewer hours than piles.
package search
