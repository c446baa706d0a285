// Package twopointers implements the classic index-pair scans that turn
// quadratic nested loops into single linear passes.
//
// What:
//
//   - IsPalindrome — case-insensitive palindrome check over alphanumerics.
//   - PairSum — two elements of a sorted slice summing to a target.
//   - ThreeSum — all unique zero-sum triples.
//   - MaxArea — the container-with-most-water maximization.
//   - TrapRain — total trapped rain water between height bars.
//   - ReverseInPlace — generic in-place slice reversal.
//
// Why:
//
//   - Text: palindrome and symmetry checks without allocation.
//   - Sorted data: pair/triple searches without a hash map.
//   - Geometry-flavored scans: area and water volume in one pass.
//
// Complexity:
//
//   - IsPalindrome, PairSum, MaxArea, TrapRain, ReverseInPlace:
//     O(n), Memory: O(1).
//   - ThreeSum: O(n²) after an O(n log n) sort, Memory: O(n) for the
//     sorted copy (output excluded).
//
// Errors:
//
//   - ErrNoPair: PairSum found no two elements with the requested sum.
package twopointers
