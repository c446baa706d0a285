package hashing

import "container/heap"

// TopKFrequent returns the k most frequent values of nums, most frequent
// first. Ties break toward the smaller value so the result is
// deterministic. Returns ErrBadK when k < 1 or k exceeds the number of
// distinct values.
//
// Algorithm Outline:
//  1. Count occurrences in a frequency map.
//  2. Stream the (value, count) pairs through a min-heap capped at k
//     entries; the heap root is always the weakest survivor.
//  3. Pop the heap and reverse for most-frequent-first order.
//
// Time Complexity: O(n log k), Memory: O(n).
func TopKFrequent(nums []int, k int) ([]int, error) {
	if k < 1 {
		return nil, ErrBadK
	}
	counts := make(map[int]int, len(nums))
	for _, v := range nums {
		counts[v]++
	}
	if k > len(counts) {
		return nil, ErrBadK
	}

	pq := make(freqPQ, 0, k+1)
	heap.Init(&pq)
	for v, c := range counts {
		heap.Push(&pq, freqItem{value: v, count: c})
		if pq.Len() > k {
			heap.Pop(&pq) // evict the weakest survivor
		}
	}

	out := make([]int, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = heap.Pop(&pq).(freqItem).value
	}

	return out, nil
}

// Frequencies returns the occurrence count of every value in items.
// Time Complexity: O(n) expected, Memory: O(distinct values).
func Frequencies[T comparable](items []T) map[T]int {
	counts := make(map[T]int, len(items))
	for _, v := range items {
		counts[v]++
	}

	return counts
}

// freqItem pairs a value with its occurrence count for the top-K heap.
type freqItem struct {
	value int
	count int
}

// freqPQ implements heap.Interface as a min-heap by count, larger value
// first among equal counts (so the smaller value survives eviction).
type freqPQ []freqItem

func (pq freqPQ) Len() int { return len(pq) }
func (pq freqPQ) Less(i, j int) bool {
	if pq[i].count != pq[j].count {
		return pq[i].count < pq[j].count
	}

	return pq[i].value > pq[j].value
}
func (pq freqPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *freqPQ) Push(x interface{}) {
	*pq = append(*pq, x.(freqItem))
}
func (pq *freqPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
