// Package window implements fixed and variable sliding-window scans over
// sequences: a contiguous range [left, right] expanded and contracted to
// keep a validity predicate true in O(n) amortized time.
//
// What:
//
//   - MaxProfit — best single buy/sell profit over a price series.
//   - MaxSumFixed / MaxAverageFixed — best window of exactly k elements.
//   - LongestUnique — longest substring without repeated runes.
//   - MinWindow — shortest substring of s covering all runes of t.
//   - ContainsPermutation — whether s contains any permutation of pattern.
//   - MaxSliding — maximum of every k-window via a monotonic deque.
//
// Why:
//
//   - Streams and series: the window touches each element a constant
//     number of times, so every operation stays linear.
//   - The pattern generalizes from sums to frequency maps to deques.
//
// Complexity:
//
//   - MaxProfit, MaxSumFixed, MaxAverageFixed: O(n), Memory: O(1).
//   - LongestUnique, MinWindow, ContainsPermutation: O(n) amortized,
//     Memory: O(Σ) for the alphabet seen.
//   - MaxSliding: O(n) amortized, Memory: O(k).
//
// Errors:
//
//   - ErrEmptyInput: an operation that needs at least one element got none.
//   - ErrBadWindow: a fixed window size k < 1 or k > len(input).
package window
