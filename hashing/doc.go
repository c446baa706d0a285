// Package hashing implements set- and frequency-map-based lookups:
// duplicate detection, complement search, anagram grouping, top-K
// selection, consecutive-run measurement and prefix-sum counting.
//
// What:
//
//   - HasDuplicate — early-exit duplicate scan over any comparable type.
//   - TwoSum — indices of two elements summing to a target, via a
//     complement map, single pass.
//   - IsAnagram / GroupAnagrams — rune-frequency comparison and
//     signature-based grouping.
//   - TopKFrequent — K most frequent values via a size-K min-heap.
//   - LongestConsecutive — longest run of consecutive integers, O(n).
//   - CountSubarraysWithSum — number of contiguous subarrays with a given
//     sum, via prefix-sum occurrence counting.
//
// Why:
//
//   - Expected O(1) lookup replaces a nested O(n²) scan.
//   - Grouping and counting are the bread and butter of log analysis,
//     deduplication and histogramming.
//
// Complexity:
//
//   - HasDuplicate, TwoSum, LongestConsecutive, CountSubarraysWithSum:
//     O(n) expected, Memory: O(n).
//   - IsAnagram: O(n), Memory: O(Σ) for the alphabet seen.
//   - GroupAnagrams: O(Σ words · w log w) for per-word signatures.
//   - TopKFrequent: O(n log k), Memory: O(n).
//
// Errors:
//
//   - ErrNoPair: TwoSum found no two elements with the requested sum.
//   - ErrBadK: TopKFrequent was asked for k < 1 or more values than exist.
package hashing
