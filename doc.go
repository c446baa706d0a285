// Package algoprep is an in-memory toolbox of the classic algorithmic
// patterns behind coding-interview problems — stacks, two pointers,
// arrays & hashing, sliding windows, binary search and linked lists.
//
// 🚀 What is algoprep?
//
//	A small, zero-surprise library that brings together:
//		• Stacks: bracket matching, monotonic stacks, RPN evaluation
//		• Two pointers: palindromes, pair sums, container & rain water
//		• Hashing: duplicates, anagram grouping, top-K, prefix-sum counting
//		• Sliding window: stock profit, unique substrings, window maxima
//		• Binary search: bounds, rotated arrays, search on the answer
//		• Linked lists: reversal, middle, cycle detection, sorted merge
//
// ✨ Why choose algoprep?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Every function documented with its time & memory complexity
//   - Pure Go – no cgo, no hidden deps
//   - Each technique lives in its own package, tested and benchmarked
//
// Under the hood, everything is organized one subpackage per technique:
//
//	stack/       — LIFO container, bracket & monotonic-stack algorithms
//	twopointers/ — inward/parallel index-pair scans
//	hashing/     — set & frequency-map based lookups and grouping
//	window/      — fixed and variable sliding windows
//	search/      — binary search over arrays, matrices and answers
//	list/        — generic singly linked list operations
//
// Dive into each package's doc.go for the full contract, complexity notes
// and sentinel errors, and into examples/ for runnable walkthroughs.
package algoprep
